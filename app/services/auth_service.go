package services

import (
	"github.com/jackmarxreacher-creator/rby-sub000/app/models"
	"github.com/jackmarxreacher-creator/rby-sub000/app/repositories"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/auth"
)

// AuthService issues tokens for staff users.
type AuthService struct {
	users *repositories.UserRepository
}

func NewAuthService() *AuthService {
	return &AuthService{users: repositories.NewUserRepository()}
}

// LoginResult carries the tokens and the signed-in user.
type LoginResult struct {
	Token        string      `json:"token"`
	RefreshToken string      `json:"refreshToken"`
	User         models.User `json:"user"`
}

// Login verifies credentials and returns a JWT pair. The error is generic on
// purpose; callers must not learn whether the email exists.
func (s *AuthService) Login(email, password string) (LoginResult, Result) {
	user, err := s.users.FindByEmail(email)
	if err != nil || !auth.CheckPassword(user.Password, password) {
		return LoginResult{}, fail("invalid email or password")
	}

	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return LoginResult{}, fail("could not issue a session token")
	}
	refresh, err := auth.GenerateRefreshToken(user.ID, user.Role)
	if err != nil {
		return LoginResult{}, fail("could not issue a session token")
	}

	return LoginResult{Token: token, RefreshToken: refresh, User: user}, ok("signed in")
}
