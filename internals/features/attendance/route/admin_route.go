// internals/features/attendance/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceController "absensiku_backend/internals/features/attendance/controller"
)

// AttendanceAdminRoutes: utilitas data master untuk admin.
func AttendanceAdminRoutes(admin fiber.Router, db *gorm.DB) {
	reportCtrl := attendanceController.NewReportController(db)

	admin.Get("/classes", reportCtrl.GetClassOptions)
}
