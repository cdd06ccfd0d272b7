package analytics

import (
	"github.com/JanviMahajan/watts-wise-flow/internal/auth"
	"github.com/JanviMahajan/watts-wise-flow/internal/energy"

	"github.com/gofiber/fiber/v2"
)

// GET /predictions?branch_id=
func PredictionsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.UserID(c)
		if err != nil {
			return err
		}

		branchName, err := energy.BranchNameFromQuery(c, userID)
		if err != nil {
			return err
		}

		records, err := energy.FetchWindow(userID, branchName, Window)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load records")
		}

		return c.JSON(Forecast(records))
	}
}

// GET /alerts?branch_id=
func AlertsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.UserID(c)
		if err != nil {
			return err
		}

		branchName, err := energy.BranchNameFromQuery(c, userID)
		if err != nil {
			return err
		}

		records, err := energy.FetchWindow(userID, branchName, Window)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load records")
		}

		return c.JSON(fiber.Map{"alerts": EvaluateAlerts(records)})
	}
}
