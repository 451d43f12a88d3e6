// internals/features/attendance/service/testdb_test.go
package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	attModel "absensiku_backend/internals/features/attendance/model"
	acadModel "absensiku_backend/internals/features/academics/model"
	usersModel "absensiku_backend/internals/features/users/model"
	helperAuth "absensiku_backend/internals/helpers/auth"
	"absensiku_backend/internals/helpers/dbtime"
)

// fixedNow: Senin pagi, dipakai semua test supaya "hari ini" deterministik.
var fixedNow = time.Date(2024, 3, 4, 8, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("buka sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("ambil sql.DB: %v", err)
	}
	// :memory: per koneksi; satu koneksi supaya semua query lihat DB yang sama
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&usersModel.UserRoleModel{},
		&usersModel.UserModel{},
		&usersModel.TeacherModel{},
		&usersModel.StudentModel{},
		&acadModel.SchoolClassModel{},
		&acadModel.SubjectModel{},
		&acadModel.ScheduleModel{},
		&attModel.AttendanceModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

/* =========================================================
   Fixture: 1 admin, 1 guru (wali kelas), 1 kelas, 1 mapel,
   1 jadwal Senin 08:00-09:30, n siswa.
   ========================================================= */

type fixture struct {
	DB *gorm.DB

	AdminUser   usersModel.UserModel
	TeacherUser usersModel.UserModel
	Teacher     usersModel.TeacherModel

	Class    acadModel.SchoolClassModel
	Subject  acadModel.SubjectModel
	Schedule acadModel.ScheduleModel

	Students     []usersModel.StudentModel
	StudentUsers []usersModel.UserModel
}

func (f *fixture) adminActor() helperAuth.Actor {
	return helperAuth.Actor{UserID: f.AdminUser.UserID, Role: "admin"}
}

func (f *fixture) teacherActor() helperAuth.Actor {
	return helperAuth.Actor{UserID: f.TeacherUser.UserID, Role: "teacher", Teacher: &f.Teacher}
}

func (f *fixture) studentActor(i int) helperAuth.Actor {
	return helperAuth.Actor{
		UserID:  f.StudentUsers[i].UserID,
		Role:    "student",
		Student: &f.Students[i],
	}
}

func newFixture(t *testing.T, db *gorm.DB, numStudents int) *fixture {
	t.Helper()
	f := &fixture{DB: db}

	f.AdminUser = seedUser(t, db, "Bu Kepala", "kepala@sekolah.test", "admin")
	f.TeacherUser = seedUser(t, db, "Pak Budi", "budi@sekolah.test", "teacher")

	f.Teacher = usersModel.TeacherModel{
		TeacherUserID:     f.TeacherUser.UserID,
		TeacherNIP:        "19800101-001",
		TeacherEmployeeID: "EMP-001",
		TeacherHireDate:   dbtime.DateOnly(time.Date(2015, 7, 1, 0, 0, 0, 0, time.UTC)),
		TeacherStatus:     usersModel.TeacherActive,
	}
	mustCreate(t, db, &f.Teacher)

	f.Class = acadModel.SchoolClassModel{
		ClassName:              "X IPA 1",
		ClassGradeLevel:        "10",
		ClassHomeroomTeacherID: &f.Teacher.TeacherID,
	}
	mustCreate(t, db, &f.Class)

	f.Subject = acadModel.SubjectModel{SubjectCode: "MAT-10", SubjectName: "Matematika"}
	mustCreate(t, db, &f.Subject)

	f.Schedule = seedSchedule(t, db, f.Teacher.TeacherID, f.Subject.SubjectID, f.Class.ClassID,
		acadModel.Monday, "08:00", "09:30", acadModel.ScheduleActive)

	for i := 0; i < numStudents; i++ {
		name := fmt.Sprintf("Siswa %02d", i+1)
		u := seedUser(t, db, name, fmt.Sprintf("siswa%02d@sekolah.test", i+1), "student")
		st := usersModel.StudentModel{
			StudentUserID:    u.UserID,
			StudentClassID:   f.Class.ClassID,
			StudentNISN:      fmt.Sprintf("00512%04d", i+1),
			StudentNISNumber: fmt.Sprintf("24%03d", i+1),
		}
		mustCreate(t, db, &st)
		f.StudentUsers = append(f.StudentUsers, u)
		f.Students = append(f.Students, st)
	}

	return f
}

func seedUser(t *testing.T, db *gorm.DB, name, email, role string) usersModel.UserModel {
	t.Helper()
	u := usersModel.UserModel{
		UserName:     name,
		UserEmail:    email,
		UserPassword: "x",
		UserRole:     role,
	}
	mustCreate(t, db, &u)
	return u
}

func seedSchedule(t *testing.T, db *gorm.DB, teacherID, subjectID, classID uuid.UUID,
	day acadModel.DayOfWeek, start, end string, status acadModel.ScheduleStatus) acadModel.ScheduleModel {
	t.Helper()
	startTod, err := dbtime.Parse(start)
	if err != nil {
		t.Fatalf("parse jam mulai: %v", err)
	}
	endTod, err := dbtime.Parse(end)
	if err != nil {
		t.Fatalf("parse jam selesai: %v", err)
	}
	sch := acadModel.ScheduleModel{
		ScheduleTeacherID: teacherID,
		ScheduleSubjectID: subjectID,
		ScheduleClassID:   classID,
		ScheduleDayOfWeek: day,
		ScheduleStartTime: startTod,
		ScheduleEndTime:   endTod,
		ScheduleStatus:    status,
	}
	mustCreate(t, db, &sch)
	return sch
}

func mustCreate(t *testing.T, db *gorm.DB, v any) {
	t.Helper()
	if err := db.Create(v).Error; err != nil {
		t.Fatalf("create %T: %v", v, err)
	}
}

func countAttendances(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&attModel.AttendanceModel{}).Count(&n).Error; err != nil {
		t.Fatalf("hitung attendances: %v", err)
	}
	return n
}
