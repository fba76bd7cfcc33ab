// Package report renders a store snapshot into a deterministic plain-text
// business continuity plan document.
package report

import (
	"fmt"
	"strings"
	"time"

	"continuitycore/pkg/domain"
)

// PhaseLabels returns the display labels for the four response phases, in
// chronological order.
func PhaseLabels() [4]string {
	return [4]string{"Early Closure", "0-24 Hours", "2-5 Days", "6+ Days"}
}

// Filename builds the export filename for a company and date:
// BCP_<company with whitespace collapsed to underscores>_<ISO date>.txt.
func Filename(companyName string, date time.Time) string {
	sanitized := strings.Join(strings.Fields(companyName), "_")
	return fmt.Sprintf("BCP_%s_%s.txt", sanitized, date.Format("2006-01-02"))
}

// Generate renders the snapshot as UTF-8 text. The same snapshot always
// yields byte-identical output: sections appear in a fixed order and entities
// within each section follow the snapshot's stored order. Callers wanting a
// different order must sort before generating.
func Generate(snap domain.Snapshot) []byte {
	var b strings.Builder

	header(&b, "BUSINESS CONTINUITY PLAN", '=')
	b.WriteString(snap.Company.Name + "\n\n")

	header(&b, "COMPANY PROFILE", '-')
	fmt.Fprintf(&b, "Name:      %s\n", snap.Company.Name)
	fmt.Fprintf(&b, "Address:   %s, %s, %s %s\n", snap.Company.Address, snap.Company.City, snap.Company.State, snap.Company.Zip)
	fmt.Fprintf(&b, "Phone:     %s\n", snap.Company.Phone)
	fmt.Fprintf(&b, "Industry:  %s\n", snap.Company.Industry)
	fmt.Fprintf(&b, "Employees: %d\n", snap.Company.Employees)
	fmt.Fprintf(&b, "Fiscal Year Start: %s\n\n", snap.Company.FiscalStart)

	header(&b, "DEPARTMENTS & PROCESSES", '-')
	for _, d := range snap.Departments {
		fmt.Fprintf(&b, "%s (Lead: %s, Headcount: %d)\n", d.Name, snap.UserName(d.LeadID), d.Headcount)
		for _, p := range d.Processes {
			fmt.Fprintf(&b, "  - %s [%s] RTO: %s | RPO: %s | MTD: %s\n", p.Name, p.Priority, p.RTO, p.RPO, p.MTD)
			if p.Strategy != "" {
				fmt.Fprintf(&b, "    Strategy: %s\n", p.Strategy)
			}
			if len(p.Dependencies) > 0 {
				fmt.Fprintf(&b, "    Dependencies: %s\n", strings.Join(p.Dependencies, ", "))
			}
			if p.Workaround != "" {
				fmt.Fprintf(&b, "    Workaround: %s\n", p.Workaround)
			}
		}
		b.WriteString("\n")
	}

	header(&b, "BUSINESS IMPACT ANALYSIS", '-')
	for _, bia := range snap.BIA {
		fmt.Fprintf(&b, "- %s / %s\n", snap.DepartmentName(bia.DepartmentID), snap.ProcessName(bia.ProcessID))
		fmt.Fprintf(&b, "  Financial: $%s | Operational: %s | Reputational: %s | Regulatory: %s\n",
			formatMoney(bia.FinancialImpact), bia.OperationalImpact, bia.ReputationalImpact, bia.RegulatoryImpact)
		if bia.Notes != "" {
			fmt.Fprintf(&b, "  Notes: %s\n", bia.Notes)
		}
	}
	b.WriteString("\n")

	header(&b, "THREAT ASSESSMENT", '-')
	for _, t := range snap.Threats {
		fmt.Fprintf(&b, "- %s (%s): Likelihood %d, Impact %d, RPN %d, Trend %s\n",
			t.Name, t.Category, t.Likelihood, t.Impact, t.RPN, t.Trend)
	}
	b.WriteString("\n")

	header(&b, "VENDORS", '-')
	for _, v := range snap.Vendors {
		criticality := "Standard"
		if v.Critical {
			criticality = "Critical"
		}
		fmt.Fprintf(&b, "- %s [%s] SLA %s | %s, %s, %s | Contract ends %s\n",
			v.Name, criticality, v.SLA, v.Contact, v.Phone, v.Email, v.ContractEnd)
	}
	b.WriteString("\n")

	header(&b, "RISK ASSESSMENTS", '-')
	for _, a := range snap.Assessments {
		fmt.Fprintf(&b, "- %s (%s): Likelihood %d, Impact %d, RPN %d\n",
			a.Name, a.Status, a.Likelihood, a.Impact, a.RPN)
		if a.Mitigation != "" {
			fmt.Fprintf(&b, "  Mitigation: %s\n", a.Mitigation)
		}
		fmt.Fprintf(&b, "  Date: %s | Reviewer: %s\n", a.Date, snap.UserName(a.ReviewerID))
	}
	b.WriteString("\n")

	header(&b, "TRAINING & EXERCISES", '-')
	for _, t := range snap.Training {
		fmt.Fprintf(&b, "- %s (%s, %s): last %s, next %s, status %s\n",
			t.Name, t.Type, t.Frequency, t.Last, t.Next, t.Status)
	}
	b.WriteString("\n")

	header(&b, "CRITICAL DATES", '-')
	for _, cd := range snap.CriticalDates {
		fmt.Fprintf(&b, "- %s  %s (%s, %s)\n", cd.Date, cd.Name, cd.Department, cd.Type)
	}
	b.WriteString("\n")

	header(&b, "RESPONSE TASKS", '-')
	labels := PhaseLabels()
	phases := [4][]string{snap.Tasks.Early, snap.Tasks.Immediate, snap.Tasks.ShortTerm, snap.Tasks.LongTerm}
	for i, label := range labels {
		fmt.Fprintf(&b, "%s:\n", label)
		for n, task := range phases[i] {
			fmt.Fprintf(&b, "  %d. %s\n", n+1, task)
		}
		if i < len(labels)-1 {
			b.WriteString("\n")
		}
	}

	return []byte(b.String())
}

func header(b *strings.Builder, title string, rule byte) {
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat(string(rule), len(title)) + "\n")
}

// formatMoney renders an integer amount with thousands separators.
func formatMoney(amount int) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}
	digits := fmt.Sprintf("%d", amount)
	var parts []string
	for len(digits) > 3 {
		parts = append([]string{digits[len(digits)-3:]}, parts...)
		digits = digits[:len(digits)-3]
	}
	parts = append([]string{digits}, parts...)
	out := strings.Join(parts, ",")
	if negative {
		out = "-" + out
	}
	return out
}
