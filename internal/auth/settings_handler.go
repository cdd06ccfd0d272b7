package auth

import (
	"github.com/JanviMahajan/watts-wise-flow/internal/database"
	"github.com/JanviMahajan/watts-wise-flow/internal/models"

	"github.com/gofiber/fiber/v2"
)

type UpdateSettingsRequest struct {
	Name            *string  `json:"name"`
	ElectricityRate *float64 `json:"electricity_rate"`
}

// PUT /user-settings
func UpdateSettingsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := UserID(c)
		if err != nil {
			return err
		}

		var body UpdateSettingsRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		var user models.User
		if err := database.DB.First(&user, userID).Error; err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unknown user")
		}

		if body.Name != nil {
			if *body.Name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Name cannot be empty")
			}
			user.Name = *body.Name
		}
		if body.ElectricityRate != nil {
			if *body.ElectricityRate <= 0 {
				return fiber.NewError(fiber.StatusBadRequest, "electricity_rate must be greater than 0")
			}
			user.ElectricityRate = *body.ElectricityRate
		}

		if err := database.DB.Save(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update settings")
		}

		return c.JSON(userJSON(&user))
	}
}
