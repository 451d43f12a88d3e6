// internals/features/attendance/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceController "absensiku_backend/internals/features/attendance/controller"
)

// AttendanceUserRoutes: endpoint yang boleh diakses semua user login.
// Isi respons tetap di-scope per role di level service.
func AttendanceUserRoutes(user fiber.Router, db *gorm.DB) {
	dashboardCtrl := attendanceController.NewDashboardController(db)
	reportCtrl := attendanceController.NewReportController(db)

	user.Get("/dashboard", dashboardCtrl.GetDashboard)
	user.Get("/attendance-reports", reportCtrl.GetReports)
}
