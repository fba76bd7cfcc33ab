package core

import (
	"testing"

	"continuitycore/pkg/domain"
)

func TestThreatBandThresholds(t *testing.T) {
	cases := []struct {
		rpn  int
		want string
	}{
		{25, BandCritical},
		{15, BandCritical},
		{14, BandHigh},
		{8, BandHigh},
		{7, BandMedium},
		{1, BandMedium},
	}
	for _, tc := range cases {
		if got := ThreatBand(tc.rpn); got != tc.want {
			t.Fatalf("ThreatBand(%d) = %q, want %q", tc.rpn, got, tc.want)
		}
	}
}

func TestTopRiskBandThresholds(t *testing.T) {
	cases := []struct {
		rpn  int
		want string
	}{
		{15, BandCritical},
		{14, BandHigh},
		{10, BandHigh},
		{9, BandMedium},
	}
	for _, tc := range cases {
		if got := TopRiskBand(tc.rpn); got != tc.want {
			t.Fatalf("TopRiskBand(%d) = %q, want %q", tc.rpn, got, tc.want)
		}
	}
	// RPN 9 lands in different bands on the two scales.
	if ThreatBand(9) != BandHigh || TopRiskBand(9) != BandMedium {
		t.Fatalf("expected the scales to diverge at RPN 9")
	}
}

func TestComputeOverview(t *testing.T) {
	o := ComputeOverview(domain.SeedSnapshot())
	want := Overview{
		Departments:     7,
		Processes:       15,
		CriticalVendors: 4,
		OpenIssues:      2,
		Threats:         8,
		Incidents:       2,
	}
	if o != want {
		t.Fatalf("overview = %+v, want %+v", o, want)
	}
}

func TestFlattenProcessesPreservesOrder(t *testing.T) {
	flat := FlattenProcesses(domain.SeedSnapshot())
	if len(flat) != 15 {
		t.Fatalf("expected 15 flat processes, got %d", len(flat))
	}
	if flat[0].ID != "p1" || flat[0].DepartmentName != "Executive" {
		t.Fatalf("unexpected first entry: %+v", flat[0])
	}
	if flat[2].ID != "p3" || flat[2].DepartmentID != "d2" {
		t.Fatalf("department order not preserved: %+v", flat[2])
	}
	if flat[14].ID != "p15" {
		t.Fatalf("unexpected last entry: %+v", flat[14])
	}
}

func TestRTODistribution(t *testing.T) {
	dist := RTODistribution(domain.SeedSnapshot())
	want := []BucketCount{
		{Label: domain.RTOSameDay, Count: 5},
		{Label: domain.RTOOneDay, Count: 6},
		{Label: domain.RTOShort, Count: 3},
		{Label: domain.RTOExtended, Count: 1},
	}
	if len(dist) != len(want) {
		t.Fatalf("expected %d buckets, got %d", len(want), len(dist))
	}
	for i := range want {
		if dist[i] != want[i] {
			t.Fatalf("bucket %d = %+v, want %+v", i, dist[i], want[i])
		}
	}
}

// Adding a same-day process to a department must show up in both the
// department load and the recovery-time distribution.
func TestProcessAdditionShiftsDistribution(t *testing.T) {
	snap := domain.SeedSnapshot()
	if _, err := snap.AddProcess("d2", domain.Process{Name: "Identity Management", Priority: "Critical", RTO: domain.RTOSameDay}); err != nil {
		t.Fatalf("add process: %v", err)
	}

	for _, load := range DepartmentProcessCounts(snap) {
		if load.ID != "d2" {
			continue
		}
		if load.Processes != 4 {
			t.Fatalf("expected 4 processes in d2, got %d", load.Processes)
		}
		if load.SameDay != 3 {
			t.Fatalf("expected 3 same-day processes in d2, got %d", load.SameDay)
		}
	}
	dist := RTODistribution(snap)
	if dist[0].Count != 6 {
		t.Fatalf("same-day bucket = %d, want 6", dist[0].Count)
	}
}

func TestDepartmentProcessCounts(t *testing.T) {
	loads := DepartmentProcessCounts(domain.SeedSnapshot())
	if len(loads) != 7 {
		t.Fatalf("expected 7 departments, got %d", len(loads))
	}
	if loads[1].ID != "d2" || loads[1].Processes != 3 || loads[1].SameDay != 2 {
		t.Fatalf("unexpected d2 load: %+v", loads[1])
	}
}

func TestThreatCategoryCountsFirstAppearanceOrder(t *testing.T) {
	counts := ThreatCategoryCounts(domain.SeedSnapshot())
	want := []BucketCount{
		{Label: "Cyber", Count: 2},
		{Label: "Infrastructure", Count: 1},
		{Label: "Natural", Count: 2},
		{Label: "Health", Count: 1},
		{Label: "Operational", Count: 1},
		{Label: "Personnel", Count: 1},
	}
	if len(counts) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(counts))
	}
	for i := range want {
		if counts[i] != want[i] {
			t.Fatalf("category %d = %+v, want %+v", i, counts[i], want[i])
		}
	}
}

func TestRiskMatrix(t *testing.T) {
	snap := domain.SeedSnapshot()
	grid := RiskMatrix(snap)
	if grid[3][4] != 2 { // likelihood 4, impact 5: ransomware and data breach
		t.Fatalf("grid[3][4] = %d, want 2", grid[3][4])
	}
	if grid[2][3] != 2 || grid[2][2] != 2 || grid[1][4] != 1 || grid[0][4] != 1 {
		t.Fatalf("unexpected grid: %v", grid)
	}
	total := 0
	for _, row := range grid {
		for _, n := range row {
			total += n
		}
	}
	if total != len(snap.Threats) {
		t.Fatalf("grid total %d does not cover all %d threats", total, len(snap.Threats))
	}

	snap.Threats = append(snap.Threats, domain.Threat{ID: "x", Likelihood: 0, Impact: 9})
	if RiskMatrix(snap) != grid {
		t.Fatalf("out-of-range factors should be ignored")
	}
}

func TestTopRisksStableTieBreak(t *testing.T) {
	top := TopRisks(domain.SeedSnapshot(), 5)
	if len(top) != 5 {
		t.Fatalf("expected 5 threats, got %d", len(top))
	}
	if top[0].ID != "th1" || top[1].ID != "th6" {
		t.Fatalf("ties must keep stored order: got %s then %s", top[0].ID, top[1].ID)
	}
	if top[2].ID != "th2" || top[3].ID != "th4" || top[4].ID != "th3" {
		t.Fatalf("unexpected ranking tail: %s %s %s", top[2].ID, top[3].ID, top[4].ID)
	}
	for i := 1; i < len(top); i++ {
		if top[i].RPN > top[i-1].RPN {
			t.Fatalf("ranking not descending at %d", i)
		}
	}
	if got := TopRisks(domain.SeedSnapshot(), 100); len(got) != 8 {
		t.Fatalf("oversized n should return all threats, got %d", len(got))
	}
}

func TestMonthCriticalDates(t *testing.T) {
	snap := domain.SeedSnapshot()
	june := MonthCriticalDates(snap, 2025, 6)
	if len(june) != 1 || june[0].ID != "cd1" {
		t.Fatalf("unexpected june dates: %+v", june)
	}
	if got := MonthCriticalDates(snap, 2025, 2); len(got) != 0 {
		t.Fatalf("expected no february dates, got %+v", got)
	}

	snap.CriticalDates = append(snap.CriticalDates, domain.CriticalDate{ID: "cdX", Name: "Early June Check", Date: "2025-06-01"})
	june = MonthCriticalDates(snap, 2025, 6)
	if len(june) != 2 || june[0].ID != "cdX" || june[1].ID != "cd1" {
		t.Fatalf("dates not sorted ascending: %+v", june)
	}
}

func TestAssistantContext(t *testing.T) {
	got := AssistantContext(domain.SeedSnapshot())
	want := "Company: Acme Corporation, 7 departments, 15 processes, 3 assessments, 2 incidents."
	if got != want {
		t.Fatalf("context = %q, want %q", got, want)
	}
}
