package services

import (
	"fmt"

	"github.com/jackmarxreacher-creator/rby-sub000/app/models"
	"github.com/jackmarxreacher-creator/rby-sub000/app/repositories"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/auth"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/logger"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/orm"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/validate"
)

// UserInput is the admin-facing shape for creating or editing staff users.
type UserInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password"` // required on create, optional on update
	Phone    string `json:"phone"`
	Role     string `json:"role" validate:"required,in=ADMIN,MANAGER,STAFF"`
}

// UserService owns staff-account management. Admin only; the route layer
// enforces the role, the service enforces the self-delete rule.
type UserService struct {
	repo     *repositories.UserRepository
	activity *ActivityService
}

func NewUserService() *UserService {
	return &UserService{
		repo:     repositories.NewUserRepository(),
		activity: NewActivityService(),
	}
}

// List returns one page of staff users.
func (s *UserService) List(page, limit int) ([]models.User, orm.Pagination, error) {
	return s.repo.All(page, limit)
}

// Get loads one user.
func (s *UserService) Get(id uint) (models.User, error) {
	return s.repo.FindByID(id)
}

// Create stores a new staff user with a hashed password.
func (s *UserService) Create(in UserInput, actor *Actor) Result {
	if errs := validate.Struct(&in); validate.HasErrors(errs) {
		for _, msg := range errs {
			return fail(msg)
		}
	}
	if len(in.Password) < 8 {
		return fail("password must be at least 8 characters")
	}
	if _, err := s.repo.FindByEmail(in.Email); err == nil {
		return fail(fmt.Sprintf("a user with email %s already exists", in.Email))
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return fail("could not hash the password")
	}

	user := models.User{Name: in.Name, Email: in.Email, Password: hash, Phone: in.Phone, Role: in.Role}
	if err := s.repo.Create(&user); err != nil {
		logger.Error("user: create failed", "email", in.Email, "error", err)
		return fail("could not save the user")
	}

	s.record(actor, "user.create", fmt.Sprintf("User %s (%s) created", in.Name, in.Role), user.ID)
	return ok(fmt.Sprintf("User %s created", in.Name))
}

// Update edits a staff user; an empty password leaves the hash untouched.
func (s *UserService) Update(id uint, in UserInput, actor *Actor) Result {
	if errs := validate.Struct(&in); validate.HasErrors(errs) {
		for _, msg := range errs {
			return fail(msg)
		}
	}

	user, err := s.repo.FindByID(id)
	if err != nil {
		return fail("user not found")
	}

	user.Name = in.Name
	user.Email = in.Email
	user.Phone = in.Phone
	user.Role = in.Role
	if in.Password != "" {
		if len(in.Password) < 8 {
			return fail("password must be at least 8 characters")
		}
		hash, err := auth.HashPassword(in.Password)
		if err != nil {
			return fail("could not hash the password")
		}
		user.Password = hash
	}

	if err := s.repo.Update(&user); err != nil {
		logger.Error("user: update failed", "id", id, "error", err)
		return fail("could not update the user")
	}

	s.record(actor, "user.update", fmt.Sprintf("User %s updated", user.Name), id)
	return ok(fmt.Sprintf("User %s updated", user.Name))
}

// Delete removes a staff user. Admins cannot delete their own account.
func (s *UserService) Delete(id uint, actor *Actor) Result {
	if actor != nil && actor.ID == id {
		return fail("you cannot delete your own account")
	}

	user, err := s.repo.FindByID(id)
	if err != nil {
		return fail("user not found")
	}

	if err := s.repo.Delete(id); err != nil {
		logger.Error("user: delete failed", "id", id, "error", err)
		return fail("could not delete the user")
	}

	s.record(actor, "user.delete", fmt.Sprintf("User %s deleted", user.Name), id)
	return ok(fmt.Sprintf("User %s deleted", user.Name))
}

func (s *UserService) record(actor *Actor, action, message string, userID uint) {
	var actorID *uint
	if actor != nil {
		actorID = &actor.ID
	}
	s.activity.Record(actorID, action, message, map[string]interface{}{"userId": userID})
}
