// internals/features/users/model/teacher_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TeacherStatus string

const (
	TeacherActive   TeacherStatus = "active"
	TeacherInactive TeacherStatus = "inactive"
)

// TeacherModel: profil 1:1 dengan UserModel untuk role teacher.
type TeacherModel struct {
	// PK
	TeacherID uuid.UUID `gorm:"type:uuid;default:(gen_random_uuid());primaryKey;column:teacher_id" json:"teacher_id"`

	// FK
	TeacherUserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:teacher_user_id" json:"teacher_user_id"`

	// Identitas kepegawaian
	TeacherNIP           string  `gorm:"type:varchar(30);not null;uniqueIndex;column:teacher_nip" json:"teacher_nip"`
	TeacherEmployeeID    string  `gorm:"type:varchar(30);not null;uniqueIndex;column:teacher_employee_id" json:"teacher_employee_id"`
	TeacherQualification *string `gorm:"type:varchar(120);column:teacher_qualification" json:"teacher_qualification,omitempty"`

	TeacherHireDate datatypes.Date `gorm:"not null;column:teacher_hire_date" json:"teacher_hire_date"`
	TeacherStatus   TeacherStatus  `gorm:"type:varchar(10);not null;default:active;column:teacher_status;index" json:"teacher_status"`

	TeacherCreatedAt time.Time `gorm:"column:teacher_created_at;autoCreateTime" json:"teacher_created_at"`
	TeacherUpdatedAt time.Time `gorm:"column:teacher_updated_at;autoUpdateTime" json:"teacher_updated_at"`
}

func (TeacherModel) TableName() string { return "teachers" }

func (m *TeacherModel) BeforeCreate(tx *gorm.DB) error {
	if m.TeacherID == uuid.Nil {
		m.TeacherID = uuid.New()
	}
	return nil
}
