// internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "absensiku_backend/internals/features/attendance/route"

	"absensiku_backend/internals/constants"
	authMiddleware "absensiku_backend/internals/middlewares/auth"
)

// SetupRoutes mendaftarkan seluruh route aplikasi.
// Prefix: /api/u (semua user login), /api/t (guru & admin), /api/a (admin).
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	api := app.Group("/api")

	// 🔓 semua user login
	user := api.Group("/u", authMiddleware.AuthMiddleware())
	attendanceRoute.AttendanceUserRoutes(user, db)

	// 🧑‍🏫 guru & admin
	teacher := api.Group("/t",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles(
			constants.RoleErrorTeacher("absensi"),
			constants.TeacherAndAbove...,
		),
	)
	attendanceRoute.AttendanceTeacherRoutes(teacher, db)

	// 🛡️ admin saja
	admin := api.Group("/a",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles(
			constants.RoleErrorAdmin("manajemen data"),
			constants.AdminOnly...,
		),
	)
	attendanceRoute.AttendanceAdminRoutes(admin, db)
}
