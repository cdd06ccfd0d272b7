package stats

import (
	"github.com/JanviMahajan/watts-wise-flow/internal/analytics"
	"github.com/JanviMahajan/watts-wise-flow/internal/auth"
	"github.com/JanviMahajan/watts-wise-flow/internal/database"
	"github.com/JanviMahajan/watts-wise-flow/internal/energy"
	"github.com/JanviMahajan/watts-wise-flow/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type SummaryResponse struct {
	RecordCount   int     `json:"record_count"`
	TotalKWh      float64 `json:"total_kwh"`
	AverageKWh    float64 `json:"average_kwh"`
	EstimatedCost float64 `json:"estimated_cost"` // total_kwh * electricity_rate
}

// GET /usage-summary?branch_id=
// Totals over the same 30-record window the forecaster and alerts use.
func UsageSummaryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.UserID(c)
		if err != nil {
			return err
		}

		var user models.User
		if err := database.DB.First(&user, userID).Error; err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unknown user")
		}

		branchName, err := energy.BranchNameFromQuery(c, userID)
		if err != nil {
			return err
		}

		records, err := energy.FetchWindow(userID, branchName, analytics.Window)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load records")
		}

		total := decimal.Zero
		for _, r := range records {
			total = total.Add(decimal.NewFromFloat(r.KWhConsumed))
		}

		resp := SummaryResponse{RecordCount: len(records)}
		if len(records) > 0 {
			avg := total.Div(decimal.NewFromInt(int64(len(records)))).Round(2)
			cost := total.Mul(decimal.NewFromFloat(user.ElectricityRate)).Round(2)
			resp.TotalKWh, _ = total.Round(2).Float64()
			resp.AverageKWh, _ = avg.Float64()
			resp.EstimatedCost, _ = cost.Float64()
		}

		return c.JSON(resp)
	}
}
