// internals/features/users/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudentModel: profil 1:1 dengan UserModel untuk role student.
// NISN = Nomor Induk Siswa Nasional, NIS = nomor induk sekolah.
type StudentModel struct {
	// PK
	StudentID uuid.UUID `gorm:"type:uuid;default:(gen_random_uuid());primaryKey;column:student_id" json:"student_id"`

	// FKs
	StudentUserID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:student_user_id" json:"student_user_id"`
	StudentClassID uuid.UUID `gorm:"type:uuid;not null;column:student_class_id;index" json:"student_class_id"`

	StudentNISN      string `gorm:"type:varchar(20);not null;uniqueIndex;column:student_nisn" json:"student_nisn"`
	StudentNISNumber string `gorm:"type:varchar(20);not null;uniqueIndex;column:student_nis_number" json:"student_nis_number"`

	// Barcode untuk check-in cepat (scanner)
	StudentBarcode *string `gorm:"type:varchar(40);uniqueIndex;column:student_barcode" json:"student_barcode,omitempty"`

	StudentParentName   *string `gorm:"type:varchar(100);column:student_parent_name" json:"student_parent_name,omitempty"`
	StudentParentPhone  *string `gorm:"type:varchar(20);column:student_parent_phone" json:"student_parent_phone,omitempty"`
	StudentMedicalNotes *string `gorm:"type:text;column:student_medical_notes" json:"student_medical_notes,omitempty"`

	StudentCreatedAt time.Time `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at"`
}

func (StudentModel) TableName() string { return "students" }

func (m *StudentModel) BeforeCreate(tx *gorm.DB) error {
	if m.StudentID == uuid.Nil {
		m.StudentID = uuid.New()
	}
	return nil
}
