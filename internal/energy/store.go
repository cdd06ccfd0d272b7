package energy

import (
	"github.com/JanviMahajan/watts-wise-flow/internal/database"
	"github.com/JanviMahajan/watts-wise-flow/internal/models"

	"github.com/gofiber/fiber/v2"
)

// FetchWindow returns the user's newest records, optionally scoped to
// one branch, newest-first and capped for the analytics window.
func FetchWindow(userID uint, branchName string, limit int) ([]models.EnergyRecord, error) {
	q := database.DB.Where("user_id = ?", userID)
	if branchName != "" {
		q = q.Where("branch_name = ?", branchName)
	}

	// lexicographic order equals calendar order for YYYY-MM-DD strings
	var records []models.EnergyRecord
	err := q.Order("date DESC").Limit(limit).Find(&records).Error
	return records, err
}

// EnsureBranch creates the branch row for a label the first time it is
// seen for this user. Empty labels mean "no branch" and are ignored.
func EnsureBranch(userID uint, name string) error {
	if name == "" {
		return nil
	}
	var count int64
	if err := database.DB.Model(&models.Branch{}).
		Where("user_id = ? AND name = ?", userID, name).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return database.DB.Create(&models.Branch{UserID: userID, Name: name}).Error
}

// BranchNameFromQuery resolves an optional ?branch_id= query parameter
// into the branch's label, enforcing that the branch belongs to the
// requesting user.
func BranchNameFromQuery(c *fiber.Ctx, userID uint) (string, error) {
	branchID := c.QueryInt("branch_id", 0)
	if branchID <= 0 {
		return "", nil
	}

	var branch models.Branch
	if err := database.DB.
		Where("id = ? AND user_id = ?", branchID, userID).
		First(&branch).Error; err != nil {
		return "", fiber.NewError(fiber.StatusNotFound, "Branch not found")
	}
	return branch.Name, nil
}
