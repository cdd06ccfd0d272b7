package energy

import (
	"time"

	"github.com/JanviMahajan/watts-wise-flow/internal/auth"
	"github.com/JanviMahajan/watts-wise-flow/internal/database"
	"github.com/JanviMahajan/watts-wise-flow/internal/models"

	"github.com/gofiber/fiber/v2"
)

type ManualEntryRequest struct {
	Date        string  `json:"date"` // "2025-08-29"
	KWhConsumed float64 `json:"kwh_consumed"`
	BranchName  string  `json:"branch_name"`
	PeriodType  string  `json:"period_type"` // defaults to "daily"
}

type RecordResponse struct {
	ID          uint    `json:"id"`
	Date        string  `json:"date"`
	KWhConsumed float64 `json:"kwh_consumed"`
	BranchName  string  `json:"branch_name,omitempty"`
	PeriodType  string  `json:"period_type"`
}

func recordJSON(r models.EnergyRecord) RecordResponse {
	return RecordResponse{
		ID:          r.ID,
		Date:        r.Date,
		KWhConsumed: r.KWhConsumed,
		BranchName:  r.BranchName,
		PeriodType:  r.PeriodType,
	}
}

// POST /manual-entry
func ManualEntryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.UserID(c)
		if err != nil {
			return err
		}

		var body ManualEntryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if _, err := time.Parse("2006-01-02", body.Date); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "date must be in YYYY-MM-DD format")
		}
		if body.KWhConsumed < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "kwh_consumed cannot be negative")
		}
		if body.PeriodType == "" {
			body.PeriodType = models.PeriodTypeDaily
		}

		if err := EnsureBranch(userID, body.BranchName); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not save branch")
		}

		record := models.EnergyRecord{
			UserID:      userID,
			Date:        body.Date,
			KWhConsumed: body.KWhConsumed,
			BranchName:  body.BranchName,
			PeriodType:  body.PeriodType,
		}
		if err := database.DB.Create(&record).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not save record")
		}

		return c.Status(fiber.StatusCreated).JSON(recordJSON(record))
	}
}

// GET /energy-data?branch_id=
func EnergyDataHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.UserID(c)
		if err != nil {
			return err
		}

		branchName, err := BranchNameFromQuery(c, userID)
		if err != nil {
			return err
		}

		q := database.DB.Where("user_id = ?", userID)
		if branchName != "" {
			q = q.Where("branch_name = ?", branchName)
		}

		var records []models.EnergyRecord
		if err := q.Order("date DESC").Find(&records).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load records")
		}

		out := make([]RecordResponse, 0, len(records))
		for _, r := range records {
			out = append(out, recordJSON(r))
		}
		return c.JSON(fiber.Map{"records": out})
	}
}

// GET /branches
func ListBranchesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.UserID(c)
		if err != nil {
			return err
		}

		var branches []models.Branch
		if err := database.DB.
			Where("user_id = ?", userID).
			Order("name ASC").
			Find(&branches).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load branches")
		}

		out := make([]fiber.Map, 0, len(branches))
		for _, b := range branches {
			out = append(out, fiber.Map{"id": b.ID, "name": b.Name})
		}
		return c.JSON(fiber.Map{"branches": out})
	}
}
