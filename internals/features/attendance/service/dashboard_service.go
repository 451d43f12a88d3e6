// internals/features/attendance/service/dashboard_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	attDTO "absensiku_backend/internals/features/attendance/dto"
	attModel "absensiku_backend/internals/features/attendance/model"
	acadModel "absensiku_backend/internals/features/academics/model"
	usersModel "absensiku_backend/internals/features/users/model"
	"absensiku_backend/internals/helpers/dbtime"
)

// recentDaysWindow: jangkauan riwayat absensi siswa di dashboard.
const recentDaysWindow = 7

// recentAttendanceLimit: jumlah aktivitas terakhir di dashboard admin.
const recentAttendanceLimit = 10

// DashboardService merakit snapshot dashboard per role. Semua hitungan
// "hari ini" memakai tanggal di zona aplikasi, bukan zona server.
type DashboardService struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{DB: db, Now: dbtime.Now}
}

/* =========================================================
   Scan rows (hasil join, flat)
   ========================================================= */

type scheduleScan struct {
	ScheduleID  uuid.UUID  `gorm:"column:schedule_id"`
	SubjectName string     `gorm:"column:subject_name"`
	ClassName   string     `gorm:"column:class_name"`
	TeacherName string     `gorm:"column:teacher_name"`
	DayOfWeek   string     `gorm:"column:day_of_week"`
	StartTime   dbtime.Tod `gorm:"column:start_time"`
	EndTime     dbtime.Tod `gorm:"column:end_time"`
	Room        *string    `gorm:"column:room"`
}

func (r scheduleScan) toItem() attDTO.ScheduleItem {
	return attDTO.ScheduleItem{
		ScheduleID:  r.ScheduleID,
		SubjectName: r.SubjectName,
		ClassName:   r.ClassName,
		TeacherName: r.TeacherName,
		DayOfWeek:   r.DayOfWeek,
		StartTime:   r.StartTime.Format("15:04"),
		EndTime:     r.EndTime.Format("15:04"),
		Room:        r.Room,
	}
}

type recentScan struct {
	AttendanceID uuid.UUID      `gorm:"column:attendance_id"`
	Date         datatypes.Date `gorm:"column:attendance_date"`
	Status       string         `gorm:"column:attendance_status"`
	Method       string         `gorm:"column:attendance_method"`
	CheckInTime  *dbtime.Tod    `gorm:"column:attendance_check_in_time"`
	Notes        *string        `gorm:"column:attendance_notes"`
	StudentName  string         `gorm:"column:student_name"`
	SubjectName  string         `gorm:"column:subject_name"`
	ClassName    string         `gorm:"column:class_name"`
}

func todHHMM(t *dbtime.Tod) *string {
	if t == nil {
		return nil
	}
	s := t.Format("15:04")
	return &s
}

/* =========================================================
   ADMIN
   ========================================================= */

// AdminSnapshot: statistik hari ini + 10 pencatatan terakhir hari ini.
// "Tidak hadir" menjumlahkan absent + sick + permission.
func (s *DashboardService) AdminSnapshot(ctx context.Context) (*attDTO.AdminDashboard, error) {
	today := dbtime.DateOnly(s.Now())
	db := s.DB.WithContext(ctx)

	var stats attDTO.AdminDashboardStats
	if err := db.Model(&usersModel.StudentModel{}).Count(&stats.TotalStudents).Error; err != nil {
		return nil, fmt.Errorf("hitung siswa: %w", err)
	}
	if err := db.Model(&attModel.AttendanceModel{}).
		Where("attendance_date = ?", today).
		Count(&stats.TodayAttendances).Error; err != nil {
		return nil, fmt.Errorf("hitung absensi hari ini: %w", err)
	}
	if err := db.Model(&attModel.AttendanceModel{}).
		Where("attendance_date = ? AND attendance_status = ?", today, attModel.AttendancePresent).
		Count(&stats.PresentToday).Error; err != nil {
		return nil, fmt.Errorf("hitung hadir hari ini: %w", err)
	}
	if err := db.Model(&attModel.AttendanceModel{}).
		Where("attendance_date = ? AND attendance_status IN ?", today, []attModel.AttendanceStatus{
			attModel.AttendanceAbsent, attModel.AttendanceSick, attModel.AttendancePermission,
		}).
		Count(&stats.AbsentToday).Error; err != nil {
		return nil, fmt.Errorf("hitung tidak hadir hari ini: %w", err)
	}

	var rows []recentScan
	err := db.Table("attendances AS a").
		Select(`a.attendance_id, a.attendance_date, a.attendance_status, a.attendance_method,
			a.attendance_check_in_time, su.user_name AS student_name,
			sub.subject_name, cls.class_name`).
		Joins("JOIN students st ON st.student_id = a.attendance_student_id").
		Joins("JOIN users su ON su.user_id = st.student_user_id").
		Joins("JOIN schedules sch ON sch.schedule_id = a.attendance_schedule_id").
		Joins("JOIN subjects sub ON sub.subject_id = sch.schedule_subject_id").
		Joins("JOIN classes cls ON cls.class_id = sch.schedule_class_id").
		Where("a.attendance_date = ?", today).
		Order("a.attendance_created_at DESC").
		Limit(recentAttendanceLimit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("ambil aktivitas terakhir: %w", err)
	}

	recent := make([]attDTO.RecentAttendanceRow, 0, len(rows))
	for _, r := range rows {
		recent = append(recent, attDTO.RecentAttendanceRow{
			AttendanceID:   r.AttendanceID,
			AttendanceDate: dbtime.FormatDate(r.Date),
			Status:         r.Status,
			Method:         r.Method,
			CheckInTime:    todHHMM(r.CheckInTime),
			StudentName:    r.StudentName,
			SubjectName:    r.SubjectName,
			ClassName:      r.ClassName,
		})
	}

	return &attDTO.AdminDashboard{Stats: stats, RecentAttendances: recent}, nil
}

/* =========================================================
   TEACHER
   ========================================================= */

// TeacherSnapshot: jadwal aktif guru untuk hari ini (urut jam mulai)
// plus kelas perwaliannya beserta daftar siswa.
func (s *DashboardService) TeacherSnapshot(ctx context.Context, teacher *usersModel.TeacherModel) (*attDTO.TeacherDashboard, error) {
	now := s.Now()
	dayToken := dbtime.DayOfWeekToken(now)
	db := s.DB.WithContext(ctx)

	var schedRows []scheduleScan
	err := db.Table("schedules AS sch").
		Select(`sch.schedule_id, sub.subject_name, cls.class_name,
			sch.schedule_day_of_week AS day_of_week,
			sch.schedule_start_time AS start_time,
			sch.schedule_end_time AS end_time,
			sch.schedule_room AS room`).
		Joins("JOIN subjects sub ON sub.subject_id = sch.schedule_subject_id").
		Joins("JOIN classes cls ON cls.class_id = sch.schedule_class_id").
		Where("sch.schedule_teacher_id = ?", teacher.TeacherID).
		Where("sch.schedule_day_of_week = ?", dayToken).
		Where("sch.schedule_status = ?", acadModel.ScheduleActive).
		Order("sch.schedule_start_time ASC").
		Scan(&schedRows).Error
	if err != nil {
		return nil, fmt.Errorf("ambil jadwal hari ini: %w", err)
	}

	schedules := make([]attDTO.ScheduleItem, 0, len(schedRows))
	for _, r := range schedRows {
		schedules = append(schedules, r.toItem())
	}

	var classes []acadModel.SchoolClassModel
	if err := db.
		Where("class_homeroom_teacher_id = ?", teacher.TeacherID).
		Order("class_name ASC").
		Find(&classes).Error; err != nil {
		return nil, fmt.Errorf("ambil kelas perwalian: %w", err)
	}

	homerooms := make([]attDTO.HomeroomClass, 0, len(classes))
	for _, cls := range classes {
		students, err := s.classRoster(ctx, cls.ClassID)
		if err != nil {
			return nil, err
		}
		homerooms = append(homerooms, attDTO.HomeroomClass{
			ClassID:    cls.ClassID,
			ClassName:  cls.ClassName,
			GradeLevel: cls.ClassGradeLevel,
			Students:   students,
		})
	}

	return &attDTO.TeacherDashboard{TodaySchedules: schedules, HomeroomClasses: homerooms}, nil
}

type rosterScan struct {
	StudentID   uuid.UUID `gorm:"column:student_id"`
	StudentName string    `gorm:"column:student_name"`
	StudentNISN string    `gorm:"column:student_nisn"`
}

func (s *DashboardService) classRoster(ctx context.Context, classID uuid.UUID) ([]attDTO.StudentItem, error) {
	var rows []rosterScan
	err := s.DB.WithContext(ctx).Table("students AS st").
		Select("st.student_id, su.user_name AS student_name, st.student_nisn").
		Joins("JOIN users su ON su.user_id = st.student_user_id").
		Where("st.student_class_id = ?", classID).
		Order("su.user_name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("ambil daftar siswa kelas: %w", err)
	}
	items := make([]attDTO.StudentItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, attDTO.StudentItem{
			StudentID:   r.StudentID,
			StudentName: r.StudentName,
			StudentNISN: r.StudentNISN,
		})
	}
	return items, nil
}

/* =========================================================
   STUDENT
   ========================================================= */

// StudentSnapshot: absensi siswa 7 hari terakhir (terbaru dulu) plus
// jadwal kelasnya untuk hari ini.
func (s *DashboardService) StudentSnapshot(ctx context.Context, student *usersModel.StudentModel) (*attDTO.StudentDashboard, error) {
	now := s.Now()
	today := dbtime.DateOnly(now)
	since := dbtime.DateOnly(time.Time(today).AddDate(0, 0, -recentDaysWindow))
	db := s.DB.WithContext(ctx)

	var attRows []recentScan
	err := db.Table("attendances AS a").
		Select(`a.attendance_id, a.attendance_date, a.attendance_status, a.attendance_method,
			a.attendance_check_in_time, a.attendance_notes, sub.subject_name`).
		Joins("JOIN schedules sch ON sch.schedule_id = a.attendance_schedule_id").
		Joins("JOIN subjects sub ON sub.subject_id = sch.schedule_subject_id").
		Where("a.attendance_student_id = ?", student.StudentID).
		Where("a.attendance_date >= ?", since).
		Order("a.attendance_date DESC").
		Order("a.attendance_created_at DESC").
		Scan(&attRows).Error
	if err != nil {
		return nil, fmt.Errorf("ambil riwayat absensi: %w", err)
	}

	mine := make([]attDTO.StudentAttendanceRow, 0, len(attRows))
	for _, r := range attRows {
		mine = append(mine, attDTO.StudentAttendanceRow{
			AttendanceDate: dbtime.FormatDate(r.Date),
			Status:         r.Status,
			Method:         r.Method,
			CheckInTime:    todHHMM(r.CheckInTime),
			SubjectName:    r.SubjectName,
			Notes:          r.Notes,
		})
	}

	var schedRows []scheduleScan
	err = db.Table("schedules AS sch").
		Select(`sch.schedule_id, sub.subject_name, cls.class_name,
			tu.user_name AS teacher_name,
			sch.schedule_day_of_week AS day_of_week,
			sch.schedule_start_time AS start_time,
			sch.schedule_end_time AS end_time,
			sch.schedule_room AS room`).
		Joins("JOIN subjects sub ON sub.subject_id = sch.schedule_subject_id").
		Joins("JOIN classes cls ON cls.class_id = sch.schedule_class_id").
		Joins("JOIN teachers t ON t.teacher_id = sch.schedule_teacher_id").
		Joins("JOIN users tu ON tu.user_id = t.teacher_user_id").
		Where("sch.schedule_class_id = ?", student.StudentClassID).
		Where("sch.schedule_day_of_week = ?", dbtime.DayOfWeekToken(now)).
		Where("sch.schedule_status = ?", acadModel.ScheduleActive).
		Order("sch.schedule_start_time ASC").
		Scan(&schedRows).Error
	if err != nil {
		return nil, fmt.Errorf("ambil jadwal kelas hari ini: %w", err)
	}

	schedules := make([]attDTO.ScheduleItem, 0, len(schedRows))
	for _, r := range schedRows {
		schedules = append(schedules, r.toItem())
	}

	return &attDTO.StudentDashboard{MyAttendances: mine, TodaySchedules: schedules}, nil
}
