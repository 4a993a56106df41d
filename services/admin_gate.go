package services

import (
	"errors"
	"gin-storefront/models"
	"gin-storefront/repositories"

	"gorm.io/gorm"
)

type Authorization int

const (
	AuthorizationAllowed Authorization = iota
	AuthorizationRedirectToLogin
	AuthorizationRedirectToHome
)

func (a Authorization) String() string {
	switch a {
	case AuthorizationAllowed:
		return "allowed"
	case AuthorizationRedirectToLogin:
		return "redirect_to_login"
	case AuthorizationRedirectToHome:
		return "redirect_to_home"
	}
	return "unknown"
}

type IAdminGate interface {
	Authorize(session *models.Session) (Authorization, error)
}

type AdminGate struct {
	repository repositories.IAuthRepository
}

func NewAdminGate(repository repositories.IAuthRepository) IAdminGate {
	return &AdminGate{repository: repository}
}

// Authorize 重要: セッションにキャッシュしたis_adminではなく、毎回usersテーブルの値を使用する
func (g *AdminGate) Authorize(session *models.Session) (Authorization, error) {
	if session == nil || !session.IsAuthenticated() {
		return AuthorizationRedirectToLogin, nil
	}

	user, err := g.repository.FindUserByID(*session.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AuthorizationRedirectToHome, nil
		}
		return AuthorizationRedirectToHome, err
	}
	if !user.IsAdmin {
		return AuthorizationRedirectToHome, nil
	}
	return AuthorizationAllowed, nil
}
