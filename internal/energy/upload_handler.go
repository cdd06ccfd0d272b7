package energy

import (
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/JanviMahajan/watts-wise-flow/internal/auth"
	"github.com/JanviMahajan/watts-wise-flow/internal/database"
	"github.com/JanviMahajan/watts-wise-flow/internal/logger"
	"github.com/JanviMahajan/watts-wise-flow/internal/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type UploadResponse struct {
	RowsIngested int `json:"rows_ingested"`
	RowsSkipped  int `json:"rows_skipped"`
}

// POST /upload-csv/
// Multipart upload; "file" is .csv or .xlsx, optional "branch_name" form
// field applies to rows that carry no branch column of their own.
func UploadHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.UserID(c)
		if err != nil {
			return err
		}

		fileHeader, err := c.FormFile("file")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "A file upload is required")
		}

		f, err := fileHeader.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Could not read uploaded file")
		}
		defer f.Close()

		var rows []ParsedRow
		var skipped int
		switch strings.ToLower(filepath.Ext(fileHeader.Filename)) {
		case ".xlsx":
			data, readErr := io.ReadAll(f)
			if readErr != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Could not read uploaded file")
			}
			rows, skipped, err = ParseXLSX(data)
		default:
			rows, skipped, err = ParseCSV(f)
		}
		if err != nil {
			if errors.Is(err, ErrMissingColumns) {
				return fiber.NewError(fiber.StatusBadRequest, ErrMissingColumns.Error())
			}
			return fiber.NewError(fiber.StatusBadRequest, "Could not parse uploaded file")
		}

		defaultBranch := strings.TrimSpace(c.FormValue("branch_name"))

		records := make([]models.EnergyRecord, 0, len(rows))
		branchesSeen := map[string]bool{}
		for _, row := range rows {
			branch := row.BranchName
			if branch == "" {
				branch = defaultBranch
			}
			branchesSeen[branch] = true
			records = append(records, models.EnergyRecord{
				UserID:      userID,
				Date:        row.Date,
				KWhConsumed: row.KWh,
				BranchName:  branch,
				PeriodType:  row.PeriodType,
			})
		}

		for branch := range branchesSeen {
			if err := EnsureBranch(userID, branch); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Could not save branch")
			}
		}

		if len(records) > 0 {
			if err := database.DB.Create(&records).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Could not save records")
			}
		}

		logger.L.Info("csv upload ingested",
			zap.Uint("user_id", userID),
			zap.Int("rows", len(records)),
			zap.Int("skipped", skipped),
		)

		return c.JSON(UploadResponse{RowsIngested: len(records), RowsSkipped: skipped})
	}
}
