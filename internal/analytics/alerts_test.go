package analytics

import (
	"strings"
	"testing"

	"github.com/JanviMahajan/watts-wise-flow/internal/models"
)

// flatSeries builds n newest-first records with the same value.
func flatSeries(n int, value float64) []models.EnergyRecord {
	recs := make([]models.EnergyRecord, n)
	for i := 0; i < n; i++ {
		recs[i] = models.EnergyRecord{Date: dateAt(i), KWhConsumed: value}
	}
	return recs
}

func TestEvaluateAlerts_TooFewRecords(t *testing.T) {
	if got := EvaluateAlerts(flatSeries(6, 50)); len(got) != 0 {
		t.Fatalf("expected no alerts for 6 records, got %d", len(got))
	}
}

func TestEvaluateAlerts_SteadyUsageIsQuiet(t *testing.T) {
	// ratio is exactly 1.0, inside both thresholds
	if got := EvaluateAlerts(flatSeries(30, 42.5)); len(got) != 0 {
		t.Fatalf("expected no alerts for identical records, got %+v", got)
	}
}

func TestEvaluateAlerts_ZeroBaselineSkipsComparison(t *testing.T) {
	if got := EvaluateAlerts(flatSeries(30, 0)); len(got) != 0 {
		t.Fatalf("expected no alerts for an all-zero window, got %+v", got)
	}
}

func TestEvaluateAlerts_OverallHighUsage(t *testing.T) {
	// 3 newest at 125, 27 older at 100. The recent mean is 25% above the
	// older records, but the baseline is the mean of all 30 (102.5), so
	// the reported deviation is 125/102.5 - 1 = 21.95% -> 22%.
	recs := make([]models.EnergyRecord, 0, 30)
	for i := 0; i < 30; i++ {
		v := 100.0
		if i < RecentCount {
			v = 125.0
		}
		recs = append(recs, models.EnergyRecord{Date: dateAt(i), KWhConsumed: v})
	}

	alerts := EvaluateAlerts(recs)
	if len(alerts) != 1 {
		t.Fatalf("expected 1 alert, got %d: %+v", len(alerts), alerts)
	}
	a := alerts[0]
	if a.Type != "high_usage" || a.Severity != "warning" {
		t.Errorf("got %s/%s, want high_usage/warning", a.Type, a.Severity)
	}
	if a.Location != "Overall" {
		t.Errorf("location = %q, want Overall", a.Location)
	}
	if a.ID != 1 {
		t.Errorf("id = %d, want 1", a.ID)
	}
	if !strings.Contains(a.Description, "22%") {
		t.Errorf("description %q should report 22%% against the mean-of-30 baseline", a.Description)
	}
}

func TestEvaluateAlerts_OverallEfficiency(t *testing.T) {
	// 3 newest at 50, 27 older at 100. Baseline = 95, 50/95 -> 47% below.
	recs := make([]models.EnergyRecord, 0, 30)
	for i := 0; i < 30; i++ {
		v := 100.0
		if i < RecentCount {
			v = 50.0
		}
		recs = append(recs, models.EnergyRecord{Date: dateAt(i), KWhConsumed: v})
	}

	alerts := EvaluateAlerts(recs)
	if len(alerts) != 1 {
		t.Fatalf("expected 1 alert, got %d: %+v", len(alerts), alerts)
	}
	a := alerts[0]
	if a.Type != "efficiency" || a.Severity != "info" {
		t.Errorf("got %s/%s, want efficiency/info", a.Type, a.Severity)
	}
	if !strings.Contains(a.Description, "47%") {
		t.Errorf("description %q should report 47%% below baseline", a.Description)
	}
}

func TestEvaluateAlerts_BranchRules(t *testing.T) {
	// Downtown: 4 records, 2 newest at 100 vs branch mean 55 -> fires.
	// Mall: only 3 records -> never evaluated.
	recs := []models.EnergyRecord{
		{Date: "2025-01-10", KWhConsumed: 100, BranchName: "Downtown"},
		{Date: "2025-01-09", KWhConsumed: 100, BranchName: "Downtown"},
		{Date: "2025-01-08", KWhConsumed: 10, BranchName: "Mall"},
		{Date: "2025-01-07", KWhConsumed: 10, BranchName: "Downtown"},
		{Date: "2025-01-06", KWhConsumed: 10, BranchName: "Downtown"},
		{Date: "2025-01-05", KWhConsumed: 10, BranchName: "Mall"},
		{Date: "2025-01-04", KWhConsumed: 10, BranchName: "Mall"},
	}

	alerts := EvaluateAlerts(recs)
	if len(alerts) != 2 {
		t.Fatalf("expected overall + Downtown alerts, got %d: %+v", len(alerts), alerts)
	}

	if alerts[0].Location != "Overall" || alerts[0].Type != "high_usage" {
		t.Errorf("first alert = %+v, want overall high_usage", alerts[0])
	}
	if alerts[1].Location != "Downtown" || alerts[1].Type != "high_usage" || alerts[1].Severity != "warning" {
		t.Errorf("second alert = %+v, want Downtown high_usage/warning", alerts[1])
	}
	if alerts[0].ID != 1 || alerts[1].ID != 2 {
		t.Errorf("ids = %d,%d, want sequential 1,2", alerts[0].ID, alerts[1].ID)
	}
	for _, a := range alerts {
		if a.Location == "Mall" {
			t.Errorf("Mall has only 3 windowed records and must not alert: %+v", a)
		}
	}
}

func TestEvaluateAlerts_BranchBelowThresholdIsQuiet(t *testing.T) {
	// Branch ratio 100/70 = 1.43 fires; 80/70 = 1.14 must not.
	recs := []models.EnergyRecord{
		{Date: "2025-01-10", KWhConsumed: 80, BranchName: "Depot"},
		{Date: "2025-01-09", KWhConsumed: 80, BranchName: "Depot"},
		{Date: "2025-01-08", KWhConsumed: 60, BranchName: "Depot"},
		{Date: "2025-01-07", KWhConsumed: 60, BranchName: "Depot"},
		{Date: "2025-01-06", KWhConsumed: 70},
		{Date: "2025-01-05", KWhConsumed: 70},
		{Date: "2025-01-04", KWhConsumed: 70},
	}

	for _, a := range EvaluateAlerts(recs) {
		if a.Location == "Depot" {
			t.Errorf("Depot recent/avg ratio is below 1.3 and must not alert: %+v", a)
		}
	}
}
