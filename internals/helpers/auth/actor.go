// internals/helpers/auth/actor.go
package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"absensiku_backend/internals/constants"
	usersModel "absensiku_backend/internals/features/users/model"
)

var (
	ErrNoActor         = errors.New("actor tidak ditemukan di context")
	ErrProfileNotFound = errors.New("profil untuk role ini tidak ditemukan")
)

// Actor adalah identitas request aktif: tag role dari klaim token plus
// baris profil (teacher/student) kalau role-nya punya ekstensi profil.
type Actor struct {
	UserID uuid.UUID
	Role   string

	Teacher *usersModel.TeacherModel
	Student *usersModel.StudentModel
}

func (a Actor) IsAdmin() bool   { return a.Role == constants.RoleAdmin }
func (a Actor) IsTeacher() bool { return a.Role == constants.RoleTeacher }
func (a Actor) IsStudent() bool { return a.Role == constants.RoleStudent }

// FromFiber membangun Actor dari locals yang diisi AuthMiddleware.
// Untuk teacher/student ikut memuat baris profilnya (scoping laporan
// dan dashboard butuh teacher_id/student_id, bukan user_id).
func FromFiber(c *fiber.Ctx, db *gorm.DB) (Actor, error) {
	rawID, _ := c.Locals("user_id").(string)
	rawID = strings.TrimSpace(rawID)
	if rawID == "" {
		return Actor{}, ErrNoActor
	}
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return Actor{}, ErrNoActor
	}

	role, _ := c.Locals("userRole").(string)
	actor := Actor{UserID: userID, Role: strings.ToLower(strings.TrimSpace(role))}

	switch actor.Role {
	case constants.RoleTeacher:
		var t usersModel.TeacherModel
		if err := db.WithContext(c.UserContext()).
			Where("teacher_user_id = ?", userID).
			First(&t).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return Actor{}, ErrProfileNotFound
			}
			return Actor{}, err
		}
		actor.Teacher = &t
	case constants.RoleStudent:
		var s usersModel.StudentModel
		if err := db.WithContext(c.UserContext()).
			Where("student_user_id = ?", userID).
			First(&s).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return Actor{}, ErrProfileNotFound
			}
			return Actor{}, err
		}
		actor.Student = &s
	}

	return actor, nil
}
