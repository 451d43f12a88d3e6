// internals/route/base_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// BaseRoutes: endpoint publik tanpa auth (root + health check).
func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"success": true,
			"message": "AbsensiKu API aktif 🚀",
		})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.UserContext())
		}
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"success": false,
				"status":  "degraded",
				"db":      "down",
			})
		}
		return c.JSON(fiber.Map{
			"success": true,
			"status":  "ok",
			"db":      "up",
		})
	})
}
