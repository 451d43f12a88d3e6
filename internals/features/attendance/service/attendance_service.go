// internals/features/attendance/service/attendance_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	attDTO "absensiku_backend/internals/features/attendance/dto"
	attModel "absensiku_backend/internals/features/attendance/model"
	acadModel "absensiku_backend/internals/features/academics/model"
	usersModel "absensiku_backend/internals/features/users/model"
	helperAuth "absensiku_backend/internals/helpers/auth"
	"absensiku_backend/internals/helpers/dbtime"
)

// ErrRecorderForbidden: actor bukan guru/admin.
var ErrRecorderForbidden = errors.New("hanya guru atau admin yang boleh mencatat absensi")

// FieldErrors: error validasi per field (key sama dengan payload,
// entry pakai index: "attendances.0.student_id").
type FieldErrors map[string][]string

func (e FieldErrors) Error() string { return "validation failed" }

func (e FieldErrors) add(key, msg string) {
	e[key] = append(e[key], msg)
}

// AttendanceRecorder menyimpan batch keputusan absensi untuk satu jadwal
// pada satu tanggal. Semua entry divalidasi dulu; baru setelah lolos,
// tiap entry di-upsert secara independen (bukan satu transaksi batch).
type AttendanceRecorder struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewAttendanceRecorder(db *gorm.DB) *AttendanceRecorder {
	return &AttendanceRecorder{DB: db, Now: dbtime.Now}
}

// Record meng-upsert satu baris per (schedule, student, date). Submit
// ulang triple yang sama menimpa status/method/notes/check-in dan
// recorded_by (last write wins, tanpa audit trail).
func (s *AttendanceRecorder) Record(ctx context.Context, actor helperAuth.Actor, req *attDTO.StoreAttendanceRequest) error {
	if !actor.IsTeacher() && !actor.IsAdmin() {
		return ErrRecorderForbidden
	}

	date, err := dbtime.ParseDate(req.AttendanceDate)
	if err != nil {
		return FieldErrors{"attendance_date": {"Format tanggal tidak valid."}}
	}

	// ---- validasi referensial, sebelum tulis apa pun ----
	ferr := FieldErrors{}

	var schedCount int64
	if err := s.DB.WithContext(ctx).
		Model(&acadModel.ScheduleModel{}).
		Where("schedule_id = ?", req.ScheduleID).
		Count(&schedCount).Error; err != nil {
		return fmt.Errorf("cek jadwal: %w", err)
	}
	if schedCount == 0 {
		ferr.add("schedule_id", "Jadwal pelajaran tidak valid.")
	}

	ids := make([]uuid.UUID, 0, len(req.Attendances))
	for _, e := range req.Attendances {
		ids = append(ids, e.StudentID)
	}
	var found []uuid.UUID
	if err := s.DB.WithContext(ctx).
		Model(&usersModel.StudentModel{}).
		Where("student_id IN ?", ids).
		Pluck("student_id", &found).Error; err != nil {
		return fmt.Errorf("cek siswa: %w", err)
	}
	known := make(map[uuid.UUID]struct{}, len(found))
	for _, id := range found {
		known[id] = struct{}{}
	}
	for i, e := range req.Attendances {
		if _, ok := known[e.StudentID]; !ok {
			ferr.add(fmt.Sprintf("attendances.%d.student_id", i), "Siswa tidak ditemukan.")
		}
	}

	if len(ferr) > 0 {
		return ferr
	}

	// ---- upsert per entry ----
	now := s.Now()
	for _, e := range req.Attendances {
		var checkIn *dbtime.Tod
		if e.Status == attModel.AttendancePresent {
			tod := dbtime.From(now.Truncate(time.Minute))
			checkIn = &tod
		}

		row := attModel.AttendanceModel{
			AttendanceScheduleID:  req.ScheduleID,
			AttendanceStudentID:   e.StudentID,
			AttendanceDate:        date,
			AttendanceStatus:      e.Status,
			AttendanceMethod:      e.Method,
			AttendanceCheckInTime: checkIn,
			AttendanceNotes:       e.Notes,
			AttendanceProofFile:   e.ProofFile,
			AttendanceRecordedBy:  actor.UserID,
		}

		err := s.DB.WithContext(ctx).Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "attendance_schedule_id"},
				{Name: "attendance_student_id"},
				{Name: "attendance_date"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"attendance_status",
				"attendance_method",
				"attendance_notes",
				"attendance_proof_file",
				"attendance_check_in_time",
				"attendance_recorded_by",
				"attendance_updated_at",
			}),
		}).Create(&row).Error
		if err != nil {
			// duplikat logis sudah diserap ON CONFLICT; yang sampai sini
			// adalah kegagalan storage sungguhan
			return fmt.Errorf("simpan absensi siswa %s: %w", e.StudentID, err)
		}
	}

	return nil
}
