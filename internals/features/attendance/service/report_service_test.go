// internals/features/attendance/service/report_service_test.go
package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	attModel "absensiku_backend/internals/features/attendance/model"
	acadModel "absensiku_backend/internals/features/academics/model"
	usersModel "absensiku_backend/internals/features/users/model"
	"absensiku_backend/internals/helpers/dbtime"
	"gorm.io/datatypes"
)

func dateOf(t *testing.T, s string) datatypes.Date {
	t.Helper()
	d, err := dbtime.ParseDate(s)
	if err != nil {
		t.Fatalf("parse tanggal %s: %v", s, err)
	}
	return d
}

func TestReportStudentScopeFixedPageSize(t *testing.T) {
	db := openTestDB(t)
	f := newFixture(t, db, 2)
	svc := NewReportService(db)
	rb := f.TeacherUser.UserID

	// 25 baris milik siswa 0 (tanggal berjalan mundur dari 2024-03-04)
	base := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 25; i++ {
		date := base.AddDate(0, 0, -i).Format("2006-01-02")
		seedAttendance(t, db, f.Schedule.ScheduleID, f.Students[0].StudentID, rb, date, attModel.AttendancePresent)
	}
	// milik siswa lain, tidak boleh bocor
	seedAttendance(t, db, f.Schedule.ScheduleID, f.Students[1].StudentID, rb, "2024-03-04", attModel.AttendanceAbsent)

	rows, total, err := svc.ListForActor(context.Background(), f.studentActor(0), ReportFilter{Page: 1})
	if err != nil {
		t.Fatalf("ListForActor: %v", err)
	}
	if total != 25 {
		t.Errorf("total = %d, mau 25 (hanya milik sendiri)", total)
	}
	if len(rows) != ReportPageSize {
		t.Fatalf("halaman 1 = %d baris, mau %d", len(rows), ReportPageSize)
	}
	if rows[0].AttendanceDate != "2024-03-04" {
		t.Errorf("baris pertama = %s, mau tanggal terbaru 2024-03-04", rows[0].AttendanceDate)
	}
	if rows[0].StudentName != "Siswa 01" {
		t.Errorf("nama siswa = %s", rows[0].StudentName)
	}

	rows2, _, err := svc.ListForActor(context.Background(), f.studentActor(0), ReportFilter{Page: 2})
	if err != nil {
		t.Fatalf("ListForActor page 2: %v", err)
	}
	if len(rows2) != 5 {
		t.Errorf("halaman 2 = %d baris, mau 5", len(rows2))
	}
}

func TestReportTeacherScopedToOwnSchedules(t *testing.T) {
	db := openTestDB(t)
	f := newFixture(t, db, 1)
	svc := NewReportService(db)

	// guru kedua dengan kelas & jadwal sendiri
	otherUser := seedUser(t, db, "Bu Sari", "sari@sekolah.test", "teacher")
	other := usersModel.TeacherModel{
		TeacherUserID:     otherUser.UserID,
		TeacherNIP:        "19850101-002",
		TeacherEmployeeID: "EMP-002",
		TeacherHireDate:   dbtime.DateOnly(time.Date(2018, 7, 1, 0, 0, 0, 0, time.UTC)),
		TeacherStatus:     usersModel.TeacherActive,
	}
	mustCreate(t, db, &other)
	otherClass := acadModel.SchoolClassModel{ClassName: "X IPS 1", ClassGradeLevel: "10"}
	mustCreate(t, db, &otherClass)
	otherSched := seedSchedule(t, db, other.TeacherID, f.Subject.SubjectID, otherClass.ClassID,
		acadModel.Tuesday, "10:00", "11:30", acadModel.ScheduleActive)

	otherStudentUser := seedUser(t, db, "Siswa IPS", "ips01@sekolah.test", "student")
	otherStudent := usersModel.StudentModel{
		StudentUserID:    otherStudentUser.UserID,
		StudentClassID:   otherClass.ClassID,
		StudentNISN:      "0051299991",
		StudentNISNumber: "24901",
	}
	mustCreate(t, db, &otherStudent)

	seedAttendance(t, db, f.Schedule.ScheduleID, f.Students[0].StudentID, f.TeacherUser.UserID, "2024-03-04", attModel.AttendancePresent)
	seedAttendance(t, db, otherSched.ScheduleID, otherStudent.StudentID, otherUser.UserID, "2024-03-04", attModel.AttendanceAbsent)

	rows, total, err := svc.ListForActor(context.Background(), f.teacherActor(), ReportFilter{Page: 1})
	if err != nil {
		t.Fatalf("ListForActor: %v", err)
	}
	if total != 1 || len(rows) != 1 {
		t.Fatalf("guru melihat %d baris (total %d), mau 1 (hanya jadwal sendiri)", len(rows), total)
	}
	if rows[0].ClassName != "X IPA 1" {
		t.Errorf("kelas = %s, mau X IPA 1", rows[0].ClassName)
	}

	// admin melihat keduanya
	adminRows, adminTotal, err := svc.ListForActor(context.Background(), f.adminActor(), ReportFilter{Page: 1})
	if err != nil {
		t.Fatalf("ListForActor admin: %v", err)
	}
	if adminTotal != 2 || len(adminRows) != 2 {
		t.Errorf("admin melihat %d baris (total %d), mau 2", len(adminRows), adminTotal)
	}

	// filter kelas mempersempit pandangan admin
	filtered, filteredTotal, err := svc.ListForActor(context.Background(), f.adminActor(), ReportFilter{
		Page:    1,
		ClassID: &otherClass.ClassID,
	})
	if err != nil {
		t.Fatalf("ListForActor filter kelas: %v", err)
	}
	if filteredTotal != 1 || len(filtered) != 1 {
		t.Fatalf("filter kelas: %d baris (total %d), mau 1", len(filtered), filteredTotal)
	}
	if filtered[0].ClassName != "X IPS 1" {
		t.Errorf("kelas = %s, mau X IPS 1", filtered[0].ClassName)
	}
}

func TestReportDateRangeInclusive(t *testing.T) {
	db := openTestDB(t)
	f := newFixture(t, db, 1)
	svc := NewReportService(db)
	rb := f.TeacherUser.UserID

	for _, d := range []string{"2024-03-01", "2024-03-02", "2024-03-03", "2024-03-04"} {
		seedAttendance(t, db, f.Schedule.ScheduleID, f.Students[0].StudentID, rb, d, attModel.AttendancePresent)
	}

	from := dateOf(t, "2024-03-02")
	to := dateOf(t, "2024-03-03")
	rows, total, err := svc.ListForActor(context.Background(), f.adminActor(), ReportFilter{
		Page:     1,
		DateFrom: &from,
		DateTo:   &to,
	})
	if err != nil {
		t.Fatalf("ListForActor: %v", err)
	}
	if total != 2 {
		t.Fatalf("total = %d, mau 2 (rentang inklusif)", total)
	}
	got := []string{rows[0].AttendanceDate, rows[1].AttendanceDate}
	want := []string{"2024-03-03", "2024-03-02"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("rows[%d] = %s, mau %s", i, got[i], want[i])
		}
	}
}

func TestReportRecordedByName(t *testing.T) {
	db := openTestDB(t)
	f := newFixture(t, db, 1)
	svc := NewReportService(db)

	seedAttendance(t, db, f.Schedule.ScheduleID, f.Students[0].StudentID, f.TeacherUser.UserID, "2024-03-04", attModel.AttendancePresent)

	rows, _, err := svc.ListForActor(context.Background(), f.adminActor(), ReportFilter{Page: 1})
	if err != nil {
		t.Fatalf("ListForActor: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("baris = %d, mau 1", len(rows))
	}
	if rows[0].RecordedByName != "Pak Budi" {
		t.Errorf("pencatat = %s, mau Pak Budi", rows[0].RecordedByName)
	}
}

func TestClassOptionsPerRole(t *testing.T) {
	db := openTestDB(t)
	f := newFixture(t, db, 1)
	svc := NewReportService(db)

	// kelas tanpa jadwal: hanya terlihat oleh admin
	idle := acadModel.SchoolClassModel{ClassName: "XII Bahasa", ClassGradeLevel: "12"}
	mustCreate(t, db, &idle)

	adminOpts, err := svc.ClassOptions(context.Background(), f.adminActor())
	if err != nil {
		t.Fatalf("ClassOptions admin: %v", err)
	}
	if len(adminOpts) != 2 {
		t.Errorf("opsi admin = %d, mau 2 (semua kelas)", len(adminOpts))
	}

	teacherOpts, err := svc.ClassOptions(context.Background(), f.teacherActor())
	if err != nil {
		t.Fatalf("ClassOptions guru: %v", err)
	}
	if len(teacherOpts) != 1 {
		t.Fatalf("opsi guru = %d, mau 1 (kelas yang diampu)", len(teacherOpts))
	}
	if teacherOpts[0].ClassName != "X IPA 1" {
		t.Errorf("opsi guru = %s", teacherOpts[0].ClassName)
	}

	studentOpts, err := svc.ClassOptions(context.Background(), f.studentActor(0))
	if err != nil {
		t.Fatalf("ClassOptions siswa: %v", err)
	}
	if len(studentOpts) != 0 {
		t.Errorf("siswa tidak dapat opsi kelas, dapat %d", len(studentOpts))
	}
}

func TestReportPageBeyondLastIsEmpty(t *testing.T) {
	db := openTestDB(t)
	f := newFixture(t, db, 1)
	svc := NewReportService(db)

	for i := 0; i < 3; i++ {
		date := fmt.Sprintf("2024-03-0%d", i+1)
		seedAttendance(t, db, f.Schedule.ScheduleID, f.Students[0].StudentID, f.TeacherUser.UserID, date, attModel.AttendancePresent)
	}

	rows, total, err := svc.ListForActor(context.Background(), f.adminActor(), ReportFilter{Page: 5})
	if err != nil {
		t.Fatalf("ListForActor: %v", err)
	}
	if total != 3 {
		t.Errorf("total = %d, mau 3", total)
	}
	if len(rows) != 0 {
		t.Errorf("halaman lewat batas = %d baris, mau 0", len(rows))
	}
}
