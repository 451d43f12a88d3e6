// internals/features/academics/model/class_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SchoolClassModel: rombongan belajar (mis. "X IPA 1").
// Kapasitas bersifat informatif, tidak dipaksa terhadap jumlah siswa.
type SchoolClassModel struct {
	// PK
	ClassID uuid.UUID `gorm:"type:uuid;default:(gen_random_uuid());primaryKey;column:class_id" json:"class_id"`

	ClassName       string  `gorm:"type:varchar(60);not null;column:class_name" json:"class_name"`
	ClassGradeLevel string  `gorm:"type:varchar(10);not null;column:class_grade_level;index" json:"class_grade_level"`
	ClassProgram    *string `gorm:"type:varchar(30);column:class_program" json:"class_program,omitempty"`

	// Wali kelas (opsional)
	ClassHomeroomTeacherID *uuid.UUID `gorm:"type:uuid;column:class_homeroom_teacher_id;index" json:"class_homeroom_teacher_id,omitempty"`

	ClassCapacity int `gorm:"not null;default:30;column:class_capacity" json:"class_capacity"`

	ClassCreatedAt time.Time `gorm:"column:class_created_at;autoCreateTime" json:"class_created_at"`
	ClassUpdatedAt time.Time `gorm:"column:class_updated_at;autoUpdateTime" json:"class_updated_at"`
}

func (SchoolClassModel) TableName() string { return "classes" }

func (m *SchoolClassModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClassID == uuid.Nil {
		m.ClassID = uuid.New()
	}
	return nil
}
