// internals/features/attendance/dto/attendance_dto.go
package dto

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	attModel "absensiku_backend/internals/features/attendance/model"
)

/* =========================================================
   STORE (batch absensi satu jadwal + satu tanggal)
   ========================================================= */

type StoreAttendanceEntry struct {
	StudentID uuid.UUID                 `json:"student_id" validate:"required"`
	Status    attModel.AttendanceStatus `json:"status" validate:"required,oneof=present absent sick permission"`
	Method    attModel.AttendanceMethod `json:"method" validate:"required,oneof=manual barcode fingerprint"`
	Notes     *string                   `json:"notes" validate:"omitempty,max=500"`
	ProofFile *string                   `json:"proof_file" validate:"omitempty,max=255"`
}

type StoreAttendanceRequest struct {
	ScheduleID     uuid.UUID              `json:"schedule_id" validate:"required"`
	AttendanceDate string                 `json:"attendance_date" validate:"required,datetime=2006-01-02"`
	Attendances    []StoreAttendanceEntry `json:"attendances" validate:"required,min=1,dive"`
}

// Normalize merapikan input sebelum validasi (trim + lowercase enum).
func (r *StoreAttendanceRequest) Normalize() {
	r.AttendanceDate = strings.TrimSpace(r.AttendanceDate)
	for i := range r.Attendances {
		e := &r.Attendances[i]
		e.Status = attModel.AttendanceStatus(strings.ToLower(strings.TrimSpace(string(e.Status))))
		e.Method = attModel.AttendanceMethod(strings.ToLower(strings.TrimSpace(string(e.Method))))
		e.Notes = trimPtr(e.Notes)
		e.ProofFile = trimPtr(e.ProofFile)
	}
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

/* =========================================================
   Pesan validasi (per field, key pakai index entry:
   "attendances.0.status" dst.)
   ========================================================= */

var storeFieldNames = map[string]string{
	"ScheduleID":     "schedule_id",
	"AttendanceDate": "attendance_date",
	"Attendances":    "attendances",
	"StudentID":      "student_id",
	"Status":         "status",
	"Method":         "method",
	"Notes":          "notes",
	"ProofFile":      "proof_file",
}

var storeMessages = map[string]string{
	"schedule_id.required":     "Jadwal pelajaran harus dipilih.",
	"attendance_date.required": "Tanggal absensi harus diisi.",
	"attendance_date.datetime": "Format tanggal tidak valid.",
	"attendances.required":     "Data absensi harus diisi.",
	"attendances.min":          "Minimal harus ada satu data absensi.",
	"student_id.required":      "ID siswa harus diisi.",
	"status.required":          "Status kehadiran harus dipilih.",
	"status.oneof":             "Status kehadiran tidak valid.",
	"method.required":          "Metode absensi harus dipilih.",
	"method.oneof":             "Metode absensi tidak valid.",
	"notes.max":                "Keterangan maksimal 500 karakter.",
	"proof_file.max":           "Nama berkas bukti terlalu panjang.",
}

// ValidationMessages menerjemahkan error validator ke map per-field.
func ValidationMessages(err error) map[string][]string {
	out := map[string][]string{}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_"] = []string{"Payload tidak valid."}
		return out
	}
	for _, fe := range ve {
		key := fieldKey(fe.Namespace())
		short := storeFieldNames[fe.Field()]
		if short == "" {
			short = strings.ToLower(fe.Field())
		}
		msg, ok := storeMessages[short+"."+fe.Tag()]
		if !ok {
			msg = "Nilai tidak valid."
		}
		out[key] = append(out[key], msg)
	}
	return out
}

// fieldKey: "StoreAttendanceRequest.Attendances[2].Status" → "attendances.2.status"
func fieldKey(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:] // buang nama struct root
	}
	keys := make([]string, 0, len(parts)+1)
	for _, p := range parts {
		name := p
		if i := strings.IndexByte(p, '['); i >= 0 {
			idx := strings.TrimSuffix(p[i+1:], "]")
			name = p[:i]
			if short, ok := storeFieldNames[name]; ok {
				name = short
			} else {
				name = strings.ToLower(name)
			}
			if _, err := strconv.Atoi(idx); err == nil {
				keys = append(keys, name, idx)
				continue
			}
		}
		if short, ok := storeFieldNames[name]; ok {
			name = short
		} else {
			name = strings.ToLower(name)
		}
		keys = append(keys, name)
	}
	return strings.Join(keys, ".")
}

/* =========================================================
   RESPONSE shapes (sudah di-join dengan konteks)
   ========================================================= */

type ClassOption struct {
	ClassID   uuid.UUID `json:"class_id"`
	ClassName string    `json:"class_name"`
}

type StudentItem struct {
	StudentID   uuid.UUID `json:"student_id"`
	StudentName string    `json:"student_name"`
	StudentNISN string    `json:"student_nisn"`
}

type ScheduleItem struct {
	ScheduleID  uuid.UUID `json:"schedule_id"`
	SubjectName string    `json:"subject_name"`
	ClassName   string    `json:"class_name"`
	TeacherName string    `json:"teacher_name,omitempty"`
	DayOfWeek   string    `json:"day_of_week"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	Room        *string   `json:"room,omitempty"`
}

// ReportRow: satu baris laporan, sudah diperluas dengan identitas siswa,
// mapel, kelas, dan pencatatnya.
type ReportRow struct {
	AttendanceID   uuid.UUID `json:"attendance_id"`
	AttendanceDate string    `json:"attendance_date"`
	Status         string    `json:"status"`
	Method         string    `json:"method"`
	CheckInTime    *string   `json:"check_in_time,omitempty"`
	Notes          *string   `json:"notes,omitempty"`
	StudentName    string    `json:"student_name"`
	StudentNISN    string    `json:"student_nisn"`
	SubjectName    string    `json:"subject_name"`
	ClassName      string    `json:"class_name"`
	RecordedByName string    `json:"recorded_by_name"`
}

type RecentAttendanceRow struct {
	AttendanceID   uuid.UUID `json:"attendance_id"`
	AttendanceDate string    `json:"attendance_date"`
	Status         string    `json:"status"`
	Method         string    `json:"method"`
	CheckInTime    *string   `json:"check_in_time,omitempty"`
	StudentName    string    `json:"student_name"`
	SubjectName    string    `json:"subject_name"`
	ClassName      string    `json:"class_name"`
}

type AdminDashboardStats struct {
	TotalStudents    int64 `json:"total_students"`
	TodayAttendances int64 `json:"today_attendances"`
	PresentToday     int64 `json:"present_today"`
	AbsentToday      int64 `json:"absent_today"`
}

type AdminDashboard struct {
	Stats             AdminDashboardStats   `json:"stats"`
	RecentAttendances []RecentAttendanceRow `json:"recent_attendances"`
}

type HomeroomClass struct {
	ClassID    uuid.UUID     `json:"class_id"`
	ClassName  string        `json:"class_name"`
	GradeLevel string        `json:"grade_level"`
	Students   []StudentItem `json:"students"`
}

type TeacherDashboard struct {
	TodaySchedules  []ScheduleItem  `json:"today_schedules"`
	HomeroomClasses []HomeroomClass `json:"homeroom_classes"`
}

type StudentAttendanceRow struct {
	AttendanceDate string  `json:"attendance_date"`
	Status         string  `json:"status"`
	Method         string  `json:"method"`
	CheckInTime    *string `json:"check_in_time,omitempty"`
	SubjectName    string  `json:"subject_name"`
	Notes          *string `json:"notes,omitempty"`
}

type StudentDashboard struct {
	MyAttendances  []StudentAttendanceRow `json:"my_attendances"`
	TodaySchedules []ScheduleItem         `json:"today_schedules"`
}

// ExistingAttendance: status tersimpan per siswa di form absensi.
type ExistingAttendance struct {
	Status      string  `json:"status"`
	Method      string  `json:"method"`
	CheckInTime *string `json:"check_in_time,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

type AttendanceFormData struct {
	Schedule       ScheduleItem                  `json:"schedule"`
	AttendanceDate string                        `json:"attendance_date"`
	Students       []StudentItem                 `json:"students"`
	Existing       map[string]ExistingAttendance `json:"existing_attendances"`
}
