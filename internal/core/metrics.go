package core

import (
	"fmt"
	"sort"
	"strings"

	"continuitycore/pkg/domain"
)

// Severity band labels shared by the two banding scales.
const (
	BandCritical = "Critical"
	BandHigh     = "High"
	BandMedium   = "Medium"
)

// ThreatBand maps an RPN onto the threat-list severity scale.
func ThreatBand(rpn int) string {
	switch {
	case rpn >= 15:
		return BandCritical
	case rpn >= 8:
		return BandHigh
	default:
		return BandMedium
	}
}

// TopRiskBand maps an RPN onto the dashboard top-risk severity scale. The
// dashboard uses a higher High threshold than the threat list; the two scales
// are intentionally kept separate.
func TopRiskBand(rpn int) string {
	switch {
	case rpn >= 15:
		return BandCritical
	case rpn >= 10:
		return BandHigh
	default:
		return BandMedium
	}
}

// Overview holds the headline dashboard counts.
type Overview struct {
	Departments     int
	Processes       int
	CriticalVendors int
	OpenIssues      int
	Threats         int
	Incidents       int
}

// ComputeOverview derives the headline counts from a snapshot.
func ComputeOverview(snap domain.Snapshot) Overview {
	o := Overview{
		Departments: len(snap.Departments),
		Threats:     len(snap.Threats),
		Incidents:   len(snap.Incidents),
	}
	for _, d := range snap.Departments {
		o.Processes += len(d.Processes)
	}
	for _, v := range snap.Vendors {
		if v.Critical {
			o.CriticalVendors++
		}
	}
	for _, i := range snap.Issues {
		if i.Status == "Open" {
			o.OpenIssues++
		}
	}
	return o
}

// FlatProcess is a process annotated with its owning department, produced by
// flattening the nested per-department lists for table views.
type FlatProcess struct {
	domain.Process
	DepartmentID   string
	DepartmentName string
}

// FlattenProcesses projects every department's process list into one flat
// sequence, preserving department order then process order.
func FlattenProcesses(snap domain.Snapshot) []FlatProcess {
	var out []FlatProcess
	for _, d := range snap.Departments {
		for _, p := range d.Processes {
			out = append(out, FlatProcess{Process: p, DepartmentID: d.ID, DepartmentName: d.Name})
		}
	}
	return out
}

// BucketCount pairs a label with a count for ordered distributions.
type BucketCount struct {
	Label string
	Count int
}

// RTODistribution counts processes per recovery-time bucket, in the fixed
// bucket display order.
func RTODistribution(snap domain.Snapshot) []BucketCount {
	buckets := domain.RTOBuckets()
	out := make([]BucketCount, len(buckets))
	for i, b := range buckets {
		out[i].Label = b
	}
	for _, d := range snap.Departments {
		for _, p := range d.Processes {
			for i, b := range buckets {
				if p.RTO == b {
					out[i].Count++
				}
			}
		}
	}
	return out
}

// DepartmentLoad summarizes one department's process footprint. SameDay
// counts processes that must recover the same day, surfaced as the
// department's critical count on the dashboard.
type DepartmentLoad struct {
	ID        string
	Name      string
	Processes int
	SameDay   int
}

// DepartmentProcessCounts derives per-department process counts in stored
// department order.
func DepartmentProcessCounts(snap domain.Snapshot) []DepartmentLoad {
	out := make([]DepartmentLoad, 0, len(snap.Departments))
	for _, d := range snap.Departments {
		load := DepartmentLoad{ID: d.ID, Name: d.Name, Processes: len(d.Processes)}
		for _, p := range d.Processes {
			if p.RTO == domain.RTOSameDay {
				load.SameDay++
			}
		}
		out = append(out, load)
	}
	return out
}

// ThreatCategoryCounts counts threats per category, categories ordered by
// first appearance in the threat list.
func ThreatCategoryCounts(snap domain.Snapshot) []BucketCount {
	var out []BucketCount
	index := map[string]int{}
	for _, t := range snap.Threats {
		i, ok := index[t.Category]
		if !ok {
			i = len(out)
			index[t.Category] = i
			out = append(out, BucketCount{Label: t.Category})
		}
		out[i].Count++
	}
	return out
}

// RiskMatrix builds the 5x5 grid of threat counts indexed by
// [likelihood-1][impact-1]. Threats with factors outside 1-5 are ignored.
func RiskMatrix(snap domain.Snapshot) [5][5]int {
	var grid [5][5]int
	for _, t := range snap.Threats {
		if t.Likelihood < 1 || t.Likelihood > 5 || t.Impact < 1 || t.Impact > 5 {
			continue
		}
		grid[t.Likelihood-1][t.Impact-1]++
	}
	return grid
}

// TopRisks returns the n highest-RPN threats in descending order. Ties keep
// the stored threat order, so equal scores rank by insertion.
func TopRisks(snap domain.Snapshot, n int) []domain.Threat {
	ranked := make([]domain.Threat, len(snap.Threats))
	copy(ranked, snap.Threats)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RPN > ranked[j].RPN
	})
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// MonthCriticalDates returns the critical dates falling in the given month,
// sorted ascending by date. Dates are compared lexically in their stored
// ISO form.
func MonthCriticalDates(snap domain.Snapshot, year int, month int) []domain.CriticalDate {
	prefix := fmt.Sprintf("%04d-%02d", year, month)
	var out []domain.CriticalDate
	for _, cd := range snap.CriticalDates {
		if strings.HasPrefix(cd.Date, prefix) {
			out = append(out, cd)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// AssistantContext renders the one-line data summary handed to the external
// planning assistant alongside an operator question.
func AssistantContext(snap domain.Snapshot) string {
	processes := 0
	for _, d := range snap.Departments {
		processes += len(d.Processes)
	}
	return fmt.Sprintf("Company: %s, %d departments, %d processes, %d assessments, %d incidents.",
		snap.Company.Name, len(snap.Departments), processes, len(snap.Assessments), len(snap.Incidents))
}
