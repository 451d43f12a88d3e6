// internals/features/attendance/service/report_service.go
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	attDTO "absensiku_backend/internals/features/attendance/dto"
	acadModel "absensiku_backend/internals/features/academics/model"
	helperAuth "absensiku_backend/internals/helpers/auth"
	"absensiku_backend/internals/helpers/dbtime"
)

// ReportPageSize: ukuran halaman laporan, tetap (tidak bisa diatur client).
const ReportPageSize = 20

// ReportFilter: filter opsional laporan. Rentang tanggal inklusif di
// kedua ujung; nil berarti tidak difilter.
type ReportFilter struct {
	ClassID  *uuid.UUID
	DateFrom *datatypes.Date
	DateTo   *datatypes.Date
	Page     int
}

// ReportService menjawab laporan absensi ber-halaman dengan scoping per
// role: siswa hanya barisnya sendiri, guru hanya baris jadwal yang dia
// ampu, admin semua.
type ReportService struct {
	DB *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{DB: db}
}

type reportScan struct {
	AttendanceID   uuid.UUID      `gorm:"column:attendance_id"`
	Date           datatypes.Date `gorm:"column:attendance_date"`
	Status         string         `gorm:"column:attendance_status"`
	Method         string         `gorm:"column:attendance_method"`
	CheckInTime    *dbtime.Tod    `gorm:"column:attendance_check_in_time"`
	Notes          *string        `gorm:"column:attendance_notes"`
	StudentName    string         `gorm:"column:student_name"`
	StudentNISN    string         `gorm:"column:student_nisn"`
	SubjectName    string         `gorm:"column:subject_name"`
	ClassName      string         `gorm:"column:class_name"`
	RecordedByName string         `gorm:"column:recorded_by_name"`
}

// scoped membangun query dasar (join lengkap + scoping role + filter).
// Dipanggil dua kali per request: sekali untuk COUNT, sekali untuk page.
func (s *ReportService) scoped(ctx context.Context, actor helperAuth.Actor, f ReportFilter) *gorm.DB {
	q := s.DB.WithContext(ctx).Table("attendances AS a").
		Joins("JOIN students st ON st.student_id = a.attendance_student_id").
		Joins("JOIN users su ON su.user_id = st.student_user_id").
		Joins("JOIN schedules sch ON sch.schedule_id = a.attendance_schedule_id").
		Joins("JOIN subjects sub ON sub.subject_id = sch.schedule_subject_id").
		Joins("JOIN classes cls ON cls.class_id = sch.schedule_class_id").
		Joins("LEFT JOIN users ru ON ru.user_id = a.attendance_recorded_by")

	switch {
	case actor.IsStudent() && actor.Student != nil:
		q = q.Where("a.attendance_student_id = ?", actor.Student.StudentID)
	case actor.IsTeacher() && actor.Teacher != nil:
		q = q.Where("sch.schedule_teacher_id = ?", actor.Teacher.TeacherID)
	}

	if f.ClassID != nil {
		q = q.Where("sch.schedule_class_id = ?", *f.ClassID)
	}
	if f.DateFrom != nil {
		q = q.Where("a.attendance_date >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		q = q.Where("a.attendance_date <= ?", *f.DateTo)
	}
	return q
}

// ListForActor mengembalikan satu halaman laporan (urut tanggal terbaru)
// beserta total baris yang lolos filter.
func (s *ReportService) ListForActor(ctx context.Context, actor helperAuth.Actor, f ReportFilter) ([]attDTO.ReportRow, int64, error) {
	page := f.Page
	if page < 1 {
		page = 1
	}

	var total int64
	if err := s.scoped(ctx, actor, f).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("hitung laporan: %w", err)
	}

	var rows []reportScan
	err := s.scoped(ctx, actor, f).
		Select(`a.attendance_id, a.attendance_date, a.attendance_status,
			a.attendance_method, a.attendance_check_in_time, a.attendance_notes,
			su.user_name AS student_name, st.student_nisn,
			sub.subject_name, cls.class_name,
			ru.user_name AS recorded_by_name`).
		Order("a.attendance_date DESC").
		Order("a.attendance_created_at DESC").
		Limit(ReportPageSize).
		Offset((page - 1) * ReportPageSize).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("ambil laporan: %w", err)
	}

	out := make([]attDTO.ReportRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, attDTO.ReportRow{
			AttendanceID:   r.AttendanceID,
			AttendanceDate: dbtime.FormatDate(r.Date),
			Status:         r.Status,
			Method:         r.Method,
			CheckInTime:    todHHMM(r.CheckInTime),
			Notes:          r.Notes,
			StudentName:    r.StudentName,
			StudentNISN:    r.StudentNISN,
			SubjectName:    r.SubjectName,
			ClassName:      r.ClassName,
			RecordedByName: r.RecordedByName,
		})
	}
	return out, total, nil
}

// ClassOptions: pilihan filter kelas sesuai role. Siswa tidak dapat
// opsi (laporannya sudah terkunci ke dirinya sendiri).
func (s *ReportService) ClassOptions(ctx context.Context, actor helperAuth.Actor) ([]attDTO.ClassOption, error) {
	out := []attDTO.ClassOption{}

	switch {
	case actor.IsAdmin():
		var classes []acadModel.SchoolClassModel
		if err := s.DB.WithContext(ctx).
			Order("class_name ASC").
			Find(&classes).Error; err != nil {
			return nil, fmt.Errorf("ambil daftar kelas: %w", err)
		}
		for _, c := range classes {
			out = append(out, attDTO.ClassOption{ClassID: c.ClassID, ClassName: c.ClassName})
		}

	case actor.IsTeacher() && actor.Teacher != nil:
		var rows []attDTO.ClassOption
		err := s.DB.WithContext(ctx).Table("classes AS cls").
			Select("DISTINCT cls.class_id, cls.class_name").
			Joins("JOIN schedules sch ON sch.schedule_class_id = cls.class_id").
			Where("sch.schedule_teacher_id = ?", actor.Teacher.TeacherID).
			Order("cls.class_name ASC").
			Scan(&rows).Error
		if err != nil {
			return nil, fmt.Errorf("ambil kelas yang diampu: %w", err)
		}
		out = rows
	}

	return out, nil
}
