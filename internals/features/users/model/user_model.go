// internals/features/users/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"absensiku_backend/internals/constants"
)

// UserRoleModel: master role (admin/teacher/student) + label tampilan.
type UserRoleModel struct {
	RoleID          uuid.UUID `gorm:"type:uuid;default:(gen_random_uuid());primaryKey;column:role_id" json:"role_id"`
	RoleName        string    `gorm:"type:varchar(16);not null;uniqueIndex;column:role_name" json:"role_name"`
	RoleDisplayName string    `gorm:"type:varchar(40);not null;column:role_display_name" json:"role_display_name"`

	RoleCreatedAt time.Time `gorm:"column:role_created_at;autoCreateTime" json:"role_created_at"`
	RoleUpdatedAt time.Time `gorm:"column:role_updated_at;autoUpdateTime" json:"role_updated_at"`
}

func (UserRoleModel) TableName() string { return "user_roles" }

func (m *UserRoleModel) BeforeCreate(tx *gorm.DB) error {
	if m.RoleID == uuid.Nil {
		m.RoleID = uuid.New()
	}
	return nil
}

type UserModel struct {
	// PK
	UserID uuid.UUID `gorm:"type:uuid;default:(gen_random_uuid());primaryKey;column:user_id" json:"user_id"`

	UserName     string `gorm:"type:varchar(100);not null;column:user_name" json:"user_name"`
	UserEmail    string `gorm:"type:varchar(120);not null;uniqueIndex;column:user_email" json:"user_email"`
	UserPassword string `gorm:"type:varchar(100);not null;column:user_password" json:"-"`

	// Satu role per user. user_role menyimpan tag-nya (denormalisasi dari
	// user_roles) karena semua cek otorisasi adalah predikat atas tag.
	UserRoleID *uuid.UUID `gorm:"type:uuid;column:user_role_id;index" json:"user_role_id,omitempty"`
	UserRole   string     `gorm:"type:varchar(16);not null;default:student;column:user_role;index" json:"user_role"`

	// Profil umum (opsional)
	UserPhone     *string    `gorm:"type:varchar(20);column:user_phone" json:"user_phone,omitempty"`
	UserAddress   *string    `gorm:"type:text;column:user_address" json:"user_address,omitempty"`
	UserBirthDate *time.Time `gorm:"type:date;column:user_birth_date" json:"user_birth_date,omitempty"`
	UserGender    *string    `gorm:"type:varchar(6);column:user_gender" json:"user_gender,omitempty"`

	UserCreatedAt time.Time `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
}

func (UserModel) TableName() string { return "users" }

func (m *UserModel) BeforeCreate(tx *gorm.DB) error {
	if m.UserID == uuid.Nil {
		m.UserID = uuid.New()
	}
	return nil
}

// Predikat role (lihat constants.AllRoles)
func (m *UserModel) IsAdmin() bool   { return m.UserRole == constants.RoleAdmin }
func (m *UserModel) IsTeacher() bool { return m.UserRole == constants.RoleTeacher }
func (m *UserModel) IsStudent() bool { return m.UserRole == constants.RoleStudent }
