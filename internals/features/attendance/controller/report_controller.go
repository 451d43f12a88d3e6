// internals/features/attendance/controller/report_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"absensiku_backend/internals/features/attendance/service"
	helper "absensiku_backend/internals/helpers"
	helperAuth "absensiku_backend/internals/helpers/auth"
	"absensiku_backend/internals/helpers/dbtime"
)

type ReportController struct {
	DB      *gorm.DB
	Reports *service.ReportService
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db, Reports: service.NewReportService(db)}
}

// GetReports: laporan ber-halaman (20/baris, tetap) dengan filter
// opsional ?class_id=&date_from=&date_to=&page=. Scoping per role
// dikerjakan di service; filter invalid dijawab 422, bukan diabaikan.
func (ctrl *ReportController) GetReports(c *fiber.Ctx) error {
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

	filter, ferr := parseReportFilter(c)
	if len(ferr) > 0 {
		return helper.JsonValidationError(c, ferr)
	}

	rows, total, err := ctrl.Reports.ListForActor(c.UserContext(), actor, filter)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat laporan")
	}

	options, err := ctrl.Reports.ClassOptions(c.UserContext(), actor)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat daftar kelas")
	}

	pagination := helper.BuildPaginationFromPage(total, filter.Page, service.ReportPageSize)

	includes := fiber.Map{
		"class_options": options,
		"page_links":    helper.BuildPageLinks(pagination),
		"filters": fiber.Map{
			"class_id":  c.Query("class_id"),
			"date_from": c.Query("date_from"),
			"date_to":   c.Query("date_to"),
		},
	}

	return helper.JsonListEx(c, "Laporan absensi berhasil dimuat", rows, pagination, includes)
}

// GetClassOptions: daftar kelas untuk dropdown filter (admin).
func (ctrl *ReportController) GetClassOptions(c *fiber.Ctx) error {
	actor, err := helperAuth.FromFiber(c, ctrl.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	options, err := ctrl.Reports.ClassOptions(c.UserContext(), actor)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat daftar kelas")
	}
	return helper.JsonOK(c, "Daftar kelas berhasil dimuat", options)
}

func parseReportFilter(c *fiber.Ctx) (service.ReportFilter, map[string][]string) {
	ferr := map[string][]string{}
	filter := service.ReportFilter{Page: c.QueryInt("page", 1)}
	if filter.Page < 1 {
		filter.Page = 1
	}

	if raw := strings.TrimSpace(c.Query("class_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			ferr["class_id"] = append(ferr["class_id"], "Kelas tidak valid.")
		} else {
			filter.ClassID = &id
		}
	}

	if raw := strings.TrimSpace(c.Query("date_from")); raw != "" {
		d, err := dbtime.ParseDate(raw)
		if err != nil {
			ferr["date_from"] = append(ferr["date_from"], "Format tanggal tidak valid.")
		} else {
			filter.DateFrom = &d
		}
	}

	if raw := strings.TrimSpace(c.Query("date_to")); raw != "" {
		d, err := dbtime.ParseDate(raw)
		if err != nil {
			ferr["date_to"] = append(ferr["date_to"], "Format tanggal tidak valid.")
		} else {
			filter.DateTo = &d
		}
	}

	return filter, ferr
}
