package analytics

import (
	"fmt"
	"math"
	"sort"

	"github.com/JanviMahajan/watts-wise-flow/internal/models"
)

const (
	// HighUsageRatio flags the overall recent average when it exceeds
	// the baseline by more than this factor.
	HighUsageRatio = 1.2
	// EfficiencyRatio flags the overall recent average when it drops
	// below the baseline by more than this factor.
	EfficiencyRatio = 0.8
	// BranchHighUsageRatio is the per-branch spike threshold.
	BranchHighUsageRatio = 1.3

	// RecentCount is how many of the newest records form the overall
	// recent average.
	RecentCount = 3
	// BranchRecentCount is the per-branch equivalent.
	BranchRecentCount = 2
	// BranchMinRecords: a branch needs strictly more windowed records
	// than this before it is evaluated at all.
	BranchMinRecords = 3
)

type Alert struct {
	ID          int    `json:"id"`
	Type        string `json:"type"`     // "high_usage" | "efficiency"
	Severity    string `json:"severity"` // "warning" | "info"
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

// EvaluateAlerts runs the overall and per-branch usage rules over the
// newest Window records. Records are expected newest-first. IDs are
// assigned in emission order and are not stable across calls.
//
// The baseline average deliberately includes the recent records it is
// compared against; the reported deviation is therefore smaller than a
// recent-vs-older split would give. That matches the product's original
// alert sensitivity and must not be "fixed" silently.
func EvaluateAlerts(records []models.EnergyRecord) []Alert {
	alerts := []Alert{}
	if len(records) < MinHistory {
		return alerts
	}

	window := records
	if len(window) > Window {
		window = window[:Window]
	}

	nextID := 1

	baseline := meanKWh(window)
	recent := meanKWh(window[:RecentCount])

	// a zero baseline makes the ratio undefined, skip the comparison
	if baseline > 0 {
		if recent > baseline*HighUsageRatio {
			pct := int(math.Round((recent/baseline - 1) * 100))
			alerts = append(alerts, Alert{
				ID:          nextID,
				Type:        "high_usage",
				Severity:    "warning",
				Title:       "High energy usage detected",
				Description: fmt.Sprintf("Your recent usage is %d%% above your average", pct),
				Location:    "Overall",
			})
			nextID++
		} else if recent < baseline*EfficiencyRatio {
			pct := int(math.Round((1 - recent/baseline) * 100))
			alerts = append(alerts, Alert{
				ID:          nextID,
				Type:        "efficiency",
				Severity:    "info",
				Title:       "Great energy savings",
				Description: fmt.Sprintf("Your recent usage is %d%% below your average, keep it up", pct),
				Location:    "Overall",
			})
			nextID++
		}
	}

	// per-branch spikes, in addition to the overall alert
	byBranch := map[string][]models.EnergyRecord{}
	for _, r := range window {
		if r.BranchName == "" {
			continue
		}
		byBranch[r.BranchName] = append(byBranch[r.BranchName], r)
	}

	names := make([]string, 0, len(byBranch))
	for name := range byBranch {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		recs := byBranch[name]
		if len(recs) <= BranchMinRecords {
			continue
		}
		branchAvg := meanKWh(recs)
		if branchAvg <= 0 {
			continue
		}
		branchRecent := meanKWh(recs[:BranchRecentCount])
		if branchRecent > branchAvg*BranchHighUsageRatio {
			pct := int(math.Round((branchRecent/branchAvg - 1) * 100))
			alerts = append(alerts, Alert{
				ID:          nextID,
				Type:        "high_usage",
				Severity:    "warning",
				Title:       fmt.Sprintf("Usage spike at %s", name),
				Description: fmt.Sprintf("%s is using %d%% more energy than its average", name, pct),
				Location:    name,
			})
			nextID++
		}
	}

	return alerts
}

func meanKWh(records []models.EnergyRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	var sum float64
	for _, r := range records {
		sum += r.KWhConsumed
	}
	return sum / float64(len(records))
}
