package analytics

import (
	"math"
	"time"

	"github.com/JanviMahajan/watts-wise-flow/internal/models"
)

const (
	// Window is how many of the newest records feed the model.
	Window = 30
	// MinHistory is the smallest history that produces any output.
	MinHistory = 7
	// Horizon is how many days ahead a forecast predicts.
	Horizon = 7
)

const dateLayout = "2006-01-02"

type ForecastPoint struct {
	Date         string  `json:"date"`
	PredictedKWh float64 `json:"predicted_kwh"`
}

// ForecastResult carries either predictions or an advisory message.
// Insufficient history is a normal outcome, not an error.
type ForecastResult struct {
	Points  []ForecastPoint `json:"predictions"`
	Message string          `json:"message,omitempty"`
}

// Forecast fits a least-squares line through the newest Window records
// and extrapolates Horizon days past the last observed date. Records are
// expected newest-first, as the store returns them.
func Forecast(records []models.EnergyRecord) ForecastResult {
	if len(records) < MinHistory {
		return ForecastResult{
			Points:  []ForecastPoint{},
			Message: "Not enough data for a forecast, at least 7 records are required",
		}
	}

	window := records
	if len(window) > Window {
		window = window[:Window]
	}

	// newest-first -> oldest-first, so the record index is the model's x axis
	asc := make([]models.EnergyRecord, len(window))
	for i, r := range window {
		asc[len(window)-1-i] = r
	}

	n := float64(len(asc))
	var sumX, sumY, sumXY, sumXX float64
	for i, r := range asc {
		x := float64(i)
		sumX += x
		sumY += r.KWhConsumed
		sumXY += x * r.KWhConsumed
		sumXX += x * x
	}

	denom := n*sumXX - sumX*sumX
	var slope float64
	if denom != 0 {
		slope = (n*sumXY - sumX*sumY) / denom
	}
	intercept := (sumY - slope*sumX) / n

	lastDate, err := time.Parse(dateLayout, asc[len(asc)-1].Date)
	if err != nil {
		return ForecastResult{
			Points:  []ForecastPoint{},
			Message: "Records contain an unreadable date, cannot project future dates",
		}
	}

	points := make([]ForecastPoint, 0, Horizon)
	for step := 1; step <= Horizon; step++ {
		x := float64(len(asc)-1) + float64(step)
		predicted := slope*x + intercept
		if predicted < 0 {
			predicted = 0
		}
		points = append(points, ForecastPoint{
			Date:         lastDate.AddDate(0, 0, step).Format(dateLayout),
			PredictedKWh: round2(predicted),
		})
	}

	return ForecastResult{Points: points}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
