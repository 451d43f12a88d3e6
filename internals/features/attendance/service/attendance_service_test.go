// internals/features/attendance/service/attendance_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	attDTO "absensiku_backend/internals/features/attendance/dto"
	attModel "absensiku_backend/internals/features/attendance/model"
)

func newRecorder(f *fixture) *AttendanceRecorder {
	return &AttendanceRecorder{DB: f.DB, Now: fixedClock}
}

func strPtr(s string) *string { return &s }

func storeReq(f *fixture, date string, entries ...attDTO.StoreAttendanceEntry) *attDTO.StoreAttendanceRequest {
	return &attDTO.StoreAttendanceRequest{
		ScheduleID:     f.Schedule.ScheduleID,
		AttendanceDate: date,
		Attendances:    entries,
	}
}

func TestRecordCreatesOneRowPerStudent(t *testing.T) {
	db := openTestDB(t)
	f := newFixture(t, db, 3)
	rec := newRecorder(f)

	req := storeReq(f, "2024-03-04",
		attDTO.StoreAttendanceEntry{StudentID: f.Students[0].StudentID, Status: attModel.AttendancePresent, Method: attModel.MethodManual},
		attDTO.StoreAttendanceEntry{StudentID: f.Students[1].StudentID, Status: attModel.AttendanceAbsent, Method: attModel.MethodManual},
		attDTO.StoreAttendanceEntry{StudentID: f.Students[2].StudentID, Status: attModel.AttendanceSick, Method: attModel.MethodManual, Notes: strPtr("demam")},
	)

	if err := rec.Record(context.Background(), f.teacherActor(), req); err != nil {
		t.Fatalf("Record: %v", err)
	}

	if n := countAttendances(t, db); n != 3 {
		t.Fatalf("jumlah baris = %d, mau 3", n)
	}

	var present attModel.AttendanceModel
	if err := db.Where("attendance_student_id = ?", f.Students[0].StudentID).Take(&present).Error; err != nil {
		t.Fatalf("ambil baris hadir: %v", err)
	}
	if present.AttendanceCheckInTime == nil {
		t.Fatal("status present harus punya check-in time")
	}
	if got := present.AttendanceCheckInTime.Format("15:04"); got != "08:30" {
		t.Errorf("check-in = %s, mau 08:30", got)
	}
	if present.AttendanceRecordedBy != f.TeacherUser.UserID {
		t.Errorf("recorded_by = %s, mau user guru", present.AttendanceRecordedBy)
	}

	var absent attModel.AttendanceModel
	if err := db.Where("attendance_student_id = ?", f.Students[1].StudentID).Take(&absent).Error; err != nil {
		t.Fatalf("ambil baris absen: %v", err)
	}
	if absent.AttendanceCheckInTime != nil {
		t.Error("status absent tidak boleh punya check-in time")
	}

	var sick attModel.AttendanceModel
	if err := db.Where("attendance_student_id = ?", f.Students[2].StudentID).Take(&sick).Error; err != nil {
		t.Fatalf("ambil baris sakit: %v", err)
	}
	if sick.AttendanceNotes == nil || *sick.AttendanceNotes != "demam" {
		t.Errorf("notes = %v, mau %q", sick.AttendanceNotes, "demam")
	}
}

func TestRecordResubmitOverwritesSameRow(t *testing.T) {
	db := openTestDB(t)
	f := newFixture(t, db, 1)
	rec := newRecorder(f)

	first := storeReq(f, "2024-03-04",
		attDTO.StoreAttendanceEntry{StudentID: f.Students[0].StudentID, Status: attModel.AttendancePresent, Method: attModel.MethodBarcode},
	)
	if err := rec.Record(context.Background(), f.teacherActor(), first); err != nil {
		t.Fatalf("Record pertama: %v", err)
	}

	// koreksi: ternyata sakit, dicatat ulang oleh admin
	second := storeReq(f, "2024-03-04",
		attDTO.StoreAttendanceEntry{StudentID: f.Students[0].StudentID, Status: attModel.AttendanceSick, Method: attModel.MethodManual, Notes: strPtr("izin orang tua via telepon")},
	)
	if err := rec.Record(context.Background(), f.adminActor(), second); err != nil {
		t.Fatalf("Record kedua: %v", err)
	}

	if n := countAttendances(t, db); n != 1 {
		t.Fatalf("jumlah baris = %d, mau 1 (upsert, bukan duplikat)", n)
	}

	var row attModel.AttendanceModel
	if err := db.Take(&row).Error; err != nil {
		t.Fatalf("ambil baris: %v", err)
	}
	if row.AttendanceStatus != attModel.AttendanceSick {
		t.Errorf("status = %s, mau sick", row.AttendanceStatus)
	}
	if row.AttendanceMethod != attModel.MethodManual {
		t.Errorf("method = %s, mau manual", row.AttendanceMethod)
	}
	if row.AttendanceCheckInTime != nil {
		t.Error("check-in harus di-null-kan saat status bukan present")
	}
	if row.AttendanceNotes == nil || *row.AttendanceNotes != "izin orang tua via telepon" {
		t.Errorf("notes tidak ikut tertimpa: %v", row.AttendanceNotes)
	}
	if row.AttendanceRecordedBy != f.AdminUser.UserID {
		t.Errorf("recorded_by = %s, mau user admin (penulis terakhir)", row.AttendanceRecordedBy)
	}
}

func TestRecordDifferentDatesKeepSeparateRows(t *testing.T) {
	db := openTestDB(t)
	f := newFixture(t, db, 1)
	rec := newRecorder(f)
	entry := attDTO.StoreAttendanceEntry{StudentID: f.Students[0].StudentID, Status: attModel.AttendancePresent, Method: attModel.MethodManual}

	for _, date := range []string{"2024-03-04", "2024-03-05"} {
		if err := rec.Record(context.Background(), f.teacherActor(), storeReq(f, date, entry)); err != nil {
			t.Fatalf("Record %s: %v", date, err)
		}
	}

	if n := countAttendances(t, db); n != 2 {
		t.Fatalf("jumlah baris = %d, mau 2 (tanggal beda = baris beda)", n)
	}
}

func TestRecordStudentForbidden(t *testing.T) {
	db := openTestDB(t)
	f := newFixture(t, db, 1)
	rec := newRecorder(f)

	req := storeReq(f, "2024-03-04",
		attDTO.StoreAttendanceEntry{StudentID: f.Students[0].StudentID, Status: attModel.AttendancePresent, Method: attModel.MethodManual},
	)
	err := rec.Record(context.Background(), f.studentActor(0), req)
	if !errors.Is(err, ErrRecorderForbidden) {
		t.Fatalf("err = %v, mau ErrRecorderForbidden", err)
	}
	if n := countAttendances(t, db); n != 0 {
		t.Fatalf("siswa tidak boleh menulis, tapi ada %d baris", n)
	}
}

func TestRecordUnknownScheduleRejected(t *testing.T) {
	db := openTestDB(t)
	f := newFixture(t, db, 1)
	rec := newRecorder(f)

	req := storeReq(f, "2024-03-04",
		attDTO.StoreAttendanceEntry{StudentID: f.Students[0].StudentID, Status: attModel.AttendancePresent, Method: attModel.MethodManual},
	)
	req.ScheduleID = uuid.New()

	err := rec.Record(context.Background(), f.teacherActor(), req)
	var ferr FieldErrors
	if !errors.As(err, &ferr) {
		t.Fatalf("err = %v, mau FieldErrors", err)
	}
	if len(ferr["schedule_id"]) == 0 {
		t.Fatalf("tidak ada pesan untuk schedule_id: %v", ferr)
	}
}

func TestRecordValidatesAllEntriesBeforeAnyWrite(t *testing.T) {
	db := openTestDB(t)
	f := newFixture(t, db, 1)
	rec := newRecorder(f)

	req := storeReq(f, "2024-03-04",
		attDTO.StoreAttendanceEntry{StudentID: f.Students[0].StudentID, Status: attModel.AttendancePresent, Method: attModel.MethodManual},
		attDTO.StoreAttendanceEntry{StudentID: uuid.New(), Status: attModel.AttendanceAbsent, Method: attModel.MethodManual},
	)

	err := rec.Record(context.Background(), f.teacherActor(), req)
	var ferr FieldErrors
	if !errors.As(err, &ferr) {
		t.Fatalf("err = %v, mau FieldErrors", err)
	}
	if len(ferr["attendances.1.student_id"]) == 0 {
		t.Fatalf("key error salah: %v", ferr)
	}
	// entry valid di index 0 pun belum boleh tertulis
	if n := countAttendances(t, db); n != 0 {
		t.Fatalf("validasi gagal tapi ada %d baris tertulis", n)
	}
}
