// internals/features/academics/model/subject_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubjectModel struct {
	// PK
	SubjectID uuid.UUID `gorm:"type:uuid;default:(gen_random_uuid());primaryKey;column:subject_id" json:"subject_id"`

	SubjectCode string `gorm:"type:varchar(20);not null;uniqueIndex;column:subject_code" json:"subject_code"`
	SubjectName string `gorm:"type:varchar(80);not null;column:subject_name" json:"subject_name"`

	SubjectCreatedAt time.Time `gorm:"column:subject_created_at;autoCreateTime" json:"subject_created_at"`
	SubjectUpdatedAt time.Time `gorm:"column:subject_updated_at;autoUpdateTime" json:"subject_updated_at"`
}

func (SubjectModel) TableName() string { return "subjects" }

func (m *SubjectModel) BeforeCreate(tx *gorm.DB) error {
	if m.SubjectID == uuid.Nil {
		m.SubjectID = uuid.New()
	}
	return nil
}
