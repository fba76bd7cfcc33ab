package domain

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestRiskInvariants verifies properties that must hold for every sequence
// of risk mutations, not just the fixtures the other tests pin down.
func TestRiskInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("stored RPN always equals likelihood times impact", prop.ForAll(
		func(likelihood, impact, bogus int) bool {
			snap := SeedSnapshot()
			created := snap.AddThreat(Threat{
				Name:       "generated",
				Category:   "Synthetic",
				Likelihood: likelihood,
				Impact:     impact,
				RPN:        bogus, // supplied values must be ignored
			})
			return created.RPN == likelihood*impact
		},
		gen.IntRange(1, 5),
		gen.IntRange(1, 5),
		gen.IntRange(-100, 100),
	))

	properties.Property("updating either factor rewrites RPN", prop.ForAll(
		func(likelihood, impact int) bool {
			snap := SeedSnapshot()
			updated, err := snap.UpdateThreat("th3", func(th *Threat) {
				th.Likelihood = likelihood
				th.Impact = impact
				th.RPN = 0
			})
			if err != nil {
				return false
			}
			return updated.RPN == likelihood*impact
		},
		gen.IntRange(1, 5),
		gen.IntRange(1, 5),
	))

	properties.Property("add then delete leaves the threat list unchanged", prop.ForAll(
		func(name string, likelihood, impact int) bool {
			snap := SeedSnapshot()
			before := len(snap.Threats)
			created := snap.AddThreat(Threat{Name: name, Likelihood: likelihood, Impact: impact})
			if err := snap.DeleteThreat(created.ID); err != nil {
				return false
			}
			if len(snap.Threats) != before {
				return false
			}
			for _, th := range snap.Threats {
				if th.ID == created.ID {
					return false
				}
			}
			return true
		},
		gen.AlphaString(),
		gen.IntRange(1, 5),
		gen.IntRange(1, 5),
	))

	properties.TestingRun(t)
}
