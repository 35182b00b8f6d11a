package service

import (
	"strings"

	"rentacar/internal/apperr"
	"rentacar/internal/auth"
	"rentacar/internal/db"
	"rentacar/internal/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

type SignupParams struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Role     string
}

type AuthService struct {
	users  repository.UserRepository
	secret string
	log    *logrus.Logger
}

func NewAuthService(users repository.UserRepository, secret string, log *logrus.Logger) *AuthService {
	return &AuthService{users: users, secret: secret, log: log}
}

func (s *AuthService) Signup(params SignupParams) (*db.User, error) {
	if params.Name == "" {
		return nil, apperr.New(apperr.KindInvalidArgument, "name is required")
	}
	if len(params.Password) < 6 {
		return nil, apperr.New(apperr.KindInvalidArgument, "password must be at least 6 characters")
	}
	email := strings.ToLower(strings.TrimSpace(params.Email))
	if email == "" {
		return nil, apperr.New(apperr.KindInvalidArgument, "email is required")
	}

	role := db.RoleCustomer
	if params.Role == db.RoleAdmin || params.Role == db.RoleCustomer {
		role = params.Role
	}

	hash, err := hashPassword(params.Password)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "hash password", err)
	}

	user := &db.User{
		Name:         params.Name,
		Email:        email,
		PasswordHash: hash,
		Phone:        params.Phone,
		Role:         role,
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{"user_id": user.ID, "role": user.Role}).Info("user registered")
	return user, nil
}

// Signin verifies credentials and issues a signed session token.
func (s *AuthService) Signin(email, password string) (string, *db.User, error) {
	user, err := s.users.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, apperr.New(apperr.KindNotFound, "user not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperr.New(apperr.KindUnauthorized, "invalid email or password")
	}

	token, err := auth.IssueToken(s.secret, user.ID, user.Email, user.Role)
	if err != nil {
		return "", nil, apperr.Wrap(apperr.KindInternal, "issue token", err)
	}
	return token, user, nil
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(bytes), err
}
