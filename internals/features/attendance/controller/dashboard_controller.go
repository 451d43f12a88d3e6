// internals/features/attendance/controller/dashboard_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"absensiku_backend/internals/features/attendance/service"
	helper "absensiku_backend/internals/helpers"
	helperAuth "absensiku_backend/internals/helpers/auth"
)

type DashboardController struct {
	DB      *gorm.DB
	Service *service.DashboardService
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db, Service: service.NewDashboardService(db)}
}

// GetDashboard: satu endpoint, isi mengikuti role di token. Role yang
// tidak dikenal tetap 200 dengan payload kosong (FE menampilkan shell).
func (ctrl *DashboardController) GetDashboard(c *fiber.Ctx) error {
	actor, err := helperAuth.FromFiber(c, ctrl.DB)
	if err != nil {
		switch {
		case errors.Is(err, helperAuth.ErrNoActor):
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
		case errors.Is(err, helperAuth.ErrProfileNotFound):
			return helper.JsonError(c, fiber.StatusForbidden, "Profil pengguna tidak ditemukan")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat profil pengguna")
		}
	}

	ctx := c.UserContext()
	switch {
	case actor.IsAdmin():
		data, err := ctrl.Service.AdminSnapshot(ctx)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat dashboard")
		}
		return helper.JsonOK(c, "Dashboard admin berhasil dimuat", fiber.Map{
			"role":      actor.Role,
			"dashboard": data,
		})

	case actor.IsTeacher():
		data, err := ctrl.Service.TeacherSnapshot(ctx, actor.Teacher)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat dashboard")
		}
		return helper.JsonOK(c, "Dashboard guru berhasil dimuat", fiber.Map{
			"role":      actor.Role,
			"dashboard": data,
		})

	case actor.IsStudent():
		data, err := ctrl.Service.StudentSnapshot(ctx, actor.Student)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat dashboard")
		}
		return helper.JsonOK(c, "Dashboard siswa berhasil dimuat", fiber.Map{
			"role":      actor.Role,
			"dashboard": data,
		})

	default:
		return helper.JsonOK(c, "Dashboard berhasil dimuat", fiber.Map{
			"role":      actor.Role,
			"dashboard": nil,
		})
	}
}
