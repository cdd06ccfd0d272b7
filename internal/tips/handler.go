package tips

import (
	"github.com/JanviMahajan/watts-wise-flow/internal/auth"
	"github.com/JanviMahajan/watts-wise-flow/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GET /optimization-tips?user_type=
// The query parameter mirrors the frontend; when absent the
// authenticated user's own type is used.
func OptimizationTipsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userType := models.UserType(c.Query("user_type"))
		if userType != models.UserTypeHouse && userType != models.UserTypeShop {
			if t, ok := c.Locals(auth.CtxUserTypeKey).(models.UserType); ok {
				userType = t
			} else {
				userType = models.UserTypeHouse
			}
		}

		return c.JSON(fiber.Map{"tips": For(userType)})
	}
}
