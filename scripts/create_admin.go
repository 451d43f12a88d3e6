// scripts/create_admin.go
//
// Seeder akun awal: membuat master role (admin/teacher/student) dan satu
// akun admin supaya instalasi baru bisa langsung login.
//
//	go run scripts/create_admin.go
//
// Email & password bisa dioverride lewat env ADMIN_EMAIL / ADMIN_PASSWORD.
package main

import (
	"errors"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"absensiku_backend/internals/configs"
	"absensiku_backend/internals/databases"
	usersModel "absensiku_backend/internals/features/users/model"
)

func main() {
	configs.LoadEnv()
	database.ConnectDB()
	db := database.DB

	if err := seedRoles(db); err != nil {
		log.Fatalf("❌ Gagal seed role: %v", err)
	}

	email := configs.GetEnv("ADMIN_EMAIL", "admin@sekolah.sch.id")
	password := configs.GetEnv("ADMIN_PASSWORD", "admin12345")

	if err := createAdmin(db, email, password); err != nil {
		log.Fatalf("❌ Gagal membuat admin: %v", err)
	}
}

func seedRoles(db *gorm.DB) error {
	roles := []usersModel.UserRoleModel{
		{RoleName: "admin", RoleDisplayName: "Administrator"},
		{RoleName: "teacher", RoleDisplayName: "Guru"},
		{RoleName: "student", RoleDisplayName: "Siswa"},
	}
	for _, r := range roles {
		var existing usersModel.UserRoleModel
		err := db.Where("role_name = ?", r.RoleName).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := db.Create(&r).Error; err != nil {
			return err
		}
		log.Printf("✅ Role %s dibuat", r.RoleName)
	}
	return nil
}

func createAdmin(db *gorm.DB, email, password string) error {
	var existing usersModel.UserModel
	err := db.Where("user_email = ?", email).First(&existing).Error
	if err == nil {
		log.Printf("ℹ️ Akun %s sudah ada, tidak dibuat ulang", email)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	var adminRole usersModel.UserRoleModel
	if err := db.Where("role_name = ?", "admin").First(&adminRole).Error; err != nil {
		return fmt.Errorf("role admin belum ada: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := usersModel.UserModel{
		UserName:     "Administrator",
		UserEmail:    email,
		UserPassword: string(hash),
		UserRoleID:   &adminRole.RoleID,
		UserRole:     "admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("✅ Admin dibuat: %s (ganti password setelah login pertama)", email)
	return nil
}
