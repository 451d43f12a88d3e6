// internals/features/attendance/model/attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"absensiku_backend/internals/helpers/dbtime"
)

type AttendanceStatus string

const (
	AttendancePresent    AttendanceStatus = "present"
	AttendanceAbsent     AttendanceStatus = "absent"
	AttendanceSick       AttendanceStatus = "sick"
	AttendancePermission AttendanceStatus = "permission"
)

// Valid returns true when the status is a supported value.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceSick, AttendancePermission:
		return true
	default:
		return false
	}
}

type AttendanceMethod string

const (
	MethodManual      AttendanceMethod = "manual"
	MethodBarcode     AttendanceMethod = "barcode"
	MethodFingerprint AttendanceMethod = "fingerprint"
)

func (m AttendanceMethod) Valid() bool {
	switch m {
	case MethodManual, MethodBarcode, MethodFingerprint:
		return true
	default:
		return false
	}
}

// AttendanceModel: tabel fakta kehadiran. Maksimal satu baris per
// (schedule, student, date) — dasar idempotensi pencatatan; submit ulang
// meng-update baris yang sama (last write wins, tanpa riwayat).
type AttendanceModel struct {
	// PK
	AttendanceID uuid.UUID `gorm:"type:uuid;default:(gen_random_uuid());primaryKey;column:attendance_id" json:"attendance_id"`

	// Kunci unik komposit
	AttendanceScheduleID uuid.UUID      `gorm:"type:uuid;not null;column:attendance_schedule_id;uniqueIndex:uq_attendance_schedule_student_date,priority:1;index:idx_attendance_schedule" json:"attendance_schedule_id"`
	AttendanceStudentID  uuid.UUID      `gorm:"type:uuid;not null;column:attendance_student_id;uniqueIndex:uq_attendance_schedule_student_date,priority:2;index:idx_attendance_student" json:"attendance_student_id"`
	AttendanceDate       datatypes.Date `gorm:"not null;column:attendance_date;uniqueIndex:uq_attendance_schedule_student_date,priority:3;index:idx_attendance_date" json:"attendance_date"`

	AttendanceStatus AttendanceStatus `gorm:"type:varchar(16);not null;column:attendance_status;index:idx_attendance_status" json:"attendance_status"`
	AttendanceMethod AttendanceMethod `gorm:"type:varchar(16);not null;column:attendance_method;index:idx_attendance_method" json:"attendance_method"`

	// Terisi hanya saat status = present; status lain selalu NULL.
	AttendanceCheckInTime *dbtime.Tod `gorm:"column:attendance_check_in_time" json:"attendance_check_in_time,omitempty"`

	AttendanceNotes     *string `gorm:"type:text;column:attendance_notes" json:"attendance_notes,omitempty"`
	AttendanceProofFile *string `gorm:"type:varchar(255);column:attendance_proof_file" json:"attendance_proof_file,omitempty"`

	// Selalu ditimpa dengan actor terakhir yang menulis (tanpa audit trail).
	AttendanceRecordedBy uuid.UUID `gorm:"type:uuid;not null;column:attendance_recorded_by" json:"attendance_recorded_by"`

	AttendanceCreatedAt time.Time `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt time.Time `gorm:"column:attendance_updated_at;autoUpdateTime" json:"attendance_updated_at"`
}

func (AttendanceModel) TableName() string { return "attendances" }

func (m *AttendanceModel) BeforeCreate(tx *gorm.DB) error {
	if m.AttendanceID == uuid.Nil {
		m.AttendanceID = uuid.New()
	}
	return nil
}
