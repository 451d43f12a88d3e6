// internals/features/attendance/route/teacher_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceController "absensiku_backend/internals/features/attendance/controller"
)

// AttendanceTeacherRoutes: pencatatan absensi (guru & admin).
func AttendanceTeacherRoutes(teacher fiber.Router, db *gorm.DB) {
	attendanceCtrl := attendanceController.NewAttendanceController(db)

	teacher.Get("/attendances/form/:schedule_id", attendanceCtrl.CreateForm)
	teacher.Post("/attendances", attendanceCtrl.Store)
}
