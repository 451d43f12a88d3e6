// internals/features/attendance/controller/attendance_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	attDTO "absensiku_backend/internals/features/attendance/dto"
	"absensiku_backend/internals/features/attendance/service"
	helper "absensiku_backend/internals/helpers"
	helperAuth "absensiku_backend/internals/helpers/auth"
	"absensiku_backend/internals/helpers/dbtime"
)

type AttendanceController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Recorder  *service.AttendanceRecorder
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{
		DB:        db,
		Validator: validator.New(),
		Recorder:  service.NewAttendanceRecorder(db),
	}
}

/* =========================================================
   GET /attendances/form/:schedule_id
   Data form absensi: jadwal + roster kelas + status tersimpan hari ini
   ========================================================= */

type formScheduleScan struct {
	ScheduleID  uuid.UUID  `gorm:"column:schedule_id"`
	ClassID     uuid.UUID  `gorm:"column:class_id"`
	SubjectName string     `gorm:"column:subject_name"`
	ClassName   string     `gorm:"column:class_name"`
	DayOfWeek   string     `gorm:"column:day_of_week"`
	StartTime   dbtime.Tod `gorm:"column:start_time"`
	EndTime     dbtime.Tod `gorm:"column:end_time"`
	Room        *string    `gorm:"column:room"`
}

type formRosterScan struct {
	StudentID   uuid.UUID `gorm:"column:student_id"`
	StudentName string    `gorm:"column:student_name"`
	StudentNISN string    `gorm:"column:student_nisn"`
}

type formExistingScan struct {
	StudentID   uuid.UUID   `gorm:"column:attendance_student_id"`
	Status      string      `gorm:"column:attendance_status"`
	Method      string      `gorm:"column:attendance_method"`
	CheckInTime *dbtime.Tod `gorm:"column:attendance_check_in_time"`
	Notes       *string     `gorm:"column:attendance_notes"`
}

func (ctrl *AttendanceController) CreateForm(c *fiber.Ctx) error {
	scheduleID, err := uuid.Parse(c.Params("schedule_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID jadwal tidak valid")
	}

	var sched formScheduleScan
	err = ctrl.DB.WithContext(c.UserContext()).Table("schedules AS sch").
		Select(`sch.schedule_id, cls.class_id, sub.subject_name, cls.class_name,
			sch.schedule_day_of_week AS day_of_week,
			sch.schedule_start_time AS start_time,
			sch.schedule_end_time AS end_time,
			sch.schedule_room AS room`).
		Joins("JOIN subjects sub ON sub.subject_id = sch.schedule_subject_id").
		Joins("JOIN classes cls ON cls.class_id = sch.schedule_class_id").
		Where("sch.schedule_id = ?", scheduleID).
		Take(&sched).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Jadwal tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat jadwal")
	}

	var roster []formRosterScan
	err = ctrl.DB.WithContext(c.UserContext()).Table("students AS st").
		Select("st.student_id, su.user_name AS student_name, st.student_nisn").
		Joins("JOIN users su ON su.user_id = st.student_user_id").
		Where("st.student_class_id = ?", sched.ClassID).
		Order("su.user_name ASC").
		Scan(&roster).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat daftar siswa")
	}

	today := dbtime.DateOnly(ctrl.Recorder.Now())
	var existingRows []formExistingScan
	err = ctrl.DB.WithContext(c.UserContext()).Table("attendances").
		Select("attendance_student_id, attendance_status, attendance_method, attendance_check_in_time, attendance_notes").
		Where("attendance_schedule_id = ? AND attendance_date = ?", scheduleID, today).
		Scan(&existingRows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat absensi tersimpan")
	}

	students := make([]attDTO.StudentItem, 0, len(roster))
	for _, r := range roster {
		students = append(students, attDTO.StudentItem{
			StudentID:   r.StudentID,
			StudentName: r.StudentName,
			StudentNISN: r.StudentNISN,
		})
	}

	existing := make(map[string]attDTO.ExistingAttendance, len(existingRows))
	for _, r := range existingRows {
		existing[r.StudentID.String()] = attDTO.ExistingAttendance{
			Status:      r.Status,
			Method:      r.Method,
			CheckInTime: todHHMM(r.CheckInTime),
			Notes:       r.Notes,
		}
	}

	data := attDTO.AttendanceFormData{
		Schedule: attDTO.ScheduleItem{
			ScheduleID:  sched.ScheduleID,
			SubjectName: sched.SubjectName,
			ClassName:   sched.ClassName,
			DayOfWeek:   sched.DayOfWeek,
			StartTime:   sched.StartTime.Format("15:04"),
			EndTime:     sched.EndTime.Format("15:04"),
			Room:        sched.Room,
		},
		AttendanceDate: dbtime.FormatDate(today),
		Students:       students,
		Existing:       existing,
	}

	return helper.JsonOK(c, "Form absensi berhasil dimuat", data)
}

/* =========================================================
   POST /attendances
   ========================================================= */

func (ctrl *AttendanceController) Store(c *fiber.Ctx) error {
	var req attDTO.StoreAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()

	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, attDTO.ValidationMessages(err))
	}

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

	if err := ctrl.Recorder.Record(c.UserContext(), actor, &req); err != nil {
		var ferr service.FieldErrors
		switch {
		case errors.Is(err, service.ErrRecorderForbidden):
			return helper.JsonError(c, fiber.StatusForbidden, "❌ Hanya guru atau admin yang boleh mencatat absensi")
		case errors.As(err, &ferr):
			return helper.JsonValidationError(c, ferr)
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan absensi")
		}
	}

	return helper.JsonOK(c, "Absensi berhasil disimpan", fiber.Map{
		"schedule_id":     req.ScheduleID,
		"attendance_date": req.AttendanceDate,
		"count":           len(req.Attendances),
	})
}

func todHHMM(t *dbtime.Tod) *string {
	if t == nil {
		return nil
	}
	s := t.Format("15:04")
	return &s
}
