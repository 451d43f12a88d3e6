// internals/features/academics/model/schedule_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"absensiku_backend/internals/helpers/dbtime"
)

type DayOfWeek string

const (
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
)

// Valid returns true when the day token is a supported value (mon–sat,
// tidak ada jadwal hari minggu).
func (d DayOfWeek) Valid() bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday:
		return true
	default:
		return false
	}
}

type ScheduleStatus string

const (
	ScheduleActive   ScheduleStatus = "active"
	ScheduleInactive ScheduleStatus = "inactive"
)

func (s ScheduleStatus) Valid() bool {
	return s == ScheduleActive || s == ScheduleInactive
}

// ScheduleModel: slot mingguan berulang — guru × mapel × kelas × hari × jam.
// Boleh ada lebih dari satu jadwal per kelas per hari.
type ScheduleModel struct {
	// PK
	ScheduleID uuid.UUID `gorm:"type:uuid;default:(gen_random_uuid());primaryKey;column:schedule_id" json:"schedule_id"`

	// FKs
	ScheduleTeacherID uuid.UUID `gorm:"type:uuid;not null;column:schedule_teacher_id;index" json:"schedule_teacher_id"`
	ScheduleSubjectID uuid.UUID `gorm:"type:uuid;not null;column:schedule_subject_id;index" json:"schedule_subject_id"`
	ScheduleClassID   uuid.UUID `gorm:"type:uuid;not null;column:schedule_class_id;index" json:"schedule_class_id"`

	ScheduleDayOfWeek DayOfWeek  `gorm:"type:varchar(10);not null;column:schedule_day_of_week;index" json:"schedule_day_of_week"`
	ScheduleStartTime dbtime.Tod `gorm:"not null;column:schedule_start_time" json:"schedule_start_time"`
	ScheduleEndTime   dbtime.Tod `gorm:"not null;column:schedule_end_time" json:"schedule_end_time"`

	ScheduleRoom   *string        `gorm:"type:varchar(30);column:schedule_room" json:"schedule_room,omitempty"`
	ScheduleStatus ScheduleStatus `gorm:"type:varchar(10);not null;default:active;column:schedule_status;index" json:"schedule_status"`

	ScheduleCreatedAt time.Time `gorm:"column:schedule_created_at;autoCreateTime" json:"schedule_created_at"`
	ScheduleUpdatedAt time.Time `gorm:"column:schedule_updated_at;autoUpdateTime" json:"schedule_updated_at"`
}

func (ScheduleModel) TableName() string { return "schedules" }

func (m *ScheduleModel) BeforeCreate(tx *gorm.DB) error {
	if m.ScheduleID == uuid.Nil {
		m.ScheduleID = uuid.New()
	}
	return nil
}
