package services

import (
	"errors"
	"gin-storefront/models"
	"gin-storefront/repositories"

	"gorm.io/gorm"
)

type IAuthService interface {
	Register(username string, password string) error
	Login(username string, password string) (*models.User, error)
}

type AuthService struct {
	repository repositories.IAuthRepository
	hasher     IPasswordHasher
}

func NewAuthService(repository repositories.IAuthRepository, hasher IPasswordHasher) IAuthService {
	return &AuthService{
		repository: repository,
		hasher:     hasher,
	}
}

func (s *AuthService) Register(username string, password string) error {
	_, err := s.repository.FindUser(username)
	if err == nil {
		return ErrDuplicateUser
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashedPassword, err := s.hasher.Hash([]byte(password))
	if err != nil {
		return err
	}

	user := models.User{
		Username: username,
		Password: string(hashedPassword),
	}
	// 同時登録の競合はユニーク制約で検出する
	if err := s.repository.CreateUser(user); err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateUser
		}
		return err
	}
	return nil
}

// Login ユーザー名とパスワードのどちらが誤っているかは区別しない
func (s *AuthService) Login(username string, password string) (*models.User, error) {
	foundUser, err := s.repository.FindUser(username)
	if err != nil {
		return nil, translateNotFound(err, ErrInvalidCredentials)
	}

	if err := s.hasher.Compare([]byte(foundUser.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return foundUser, nil
}
