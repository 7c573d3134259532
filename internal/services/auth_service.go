package services

import (
	"errors"

	"gorm.io/gorm"

	"webchat/internal/models"
	"webchat/internal/repositories"
	"webchat/internal/utils"
)

type AuthService struct {
	users  repositories.UserRepository
	tokens *utils.TokenManager
}

func NewAuthService(users repositories.UserRepository, tokens *utils.TokenManager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register creates the account and logs it in by issuing a session token.
// A previously used email fails with ErrEmailTaken and creates nothing.
func (s *AuthService) Register(email, password string) (token string, user *models.User, err error) {
	if _, err := s.users.FindByEmail(email); err == nil {
		return "", nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return "", nil, err
	}
	u := models.User{Email: email, Password: hashed}
	if err := s.users.Create(&u); err != nil {
		// Two concurrent signups can both pass the lookup above; the unique
		// index on email decides the loser.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", nil, ErrEmailTaken
		}
		return "", nil, err
	}

	token, err = s.tokens.Generate(u.Email)
	if err != nil {
		return "", nil, err
	}
	return token, &u, nil
}

// Login verifies the credentials and issues a session token. A missing
// account and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(email, password string) (token string, user *models.User, err error) {
	u, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !utils.CheckPasswordHash(password, u.Password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err = s.tokens.Generate(u.Email)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}
