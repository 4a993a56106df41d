package services

import (
	"fmt"
	"gin-storefront/models"
	"gin-storefront/repositories"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type ISessionService interface {
	New() *models.Session
	Load(tokenString string) (*models.Session, error)
	Save(session *models.Session) (*string, error)
	Destroy(session *models.Session) error
	CleanExpired() (int64, error)
	TTL() time.Duration
}

type SessionService struct {
	repository repositories.ISessionRepository
	secret     []byte
	ttl        time.Duration
}

func NewSessionService(repository repositories.ISessionRepository, secret []byte, ttl time.Duration) ISessionService {
	return &SessionService{
		repository: repository,
		secret:     secret,
		ttl:        ttl,
	}
}

// New 未保存の空セッションを作成する
func (s *SessionService) New() *models.Session {
	return &models.Session{ID: uuid.New().String()}
}

// Load 署名済みトークンからセッションを復元する
func (s *SessionService) Load(tokenString string) (*models.Session, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid session token claims")
	}
	sessionID, ok := claims["sid"].(string)
	if !ok || sessionID == "" {
		return nil, fmt.Errorf("session token has no sid")
	}

	return s.repository.FindActive(sessionID)
}

// Save セッションを保存し、有効期限を延長したトークンを返す
func (s *SessionService) Save(session *models.Session) (*string, error) {
	expiresAt := time.Now().Add(s.ttl).Unix()
	session.ExpiresAt = expiresAt
	if err := s.repository.Save(session); err != nil {
		return nil, err
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": session.ID,
		"exp": expiresAt,
	})
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return nil, err
	}
	return &tokenString, nil
}

func (s *SessionService) Destroy(session *models.Session) error {
	session.Clear()
	return s.repository.Delete(session.ID)
}

func (s *SessionService) CleanExpired() (int64, error) {
	return s.repository.CleanExpiredSessions()
}

func (s *SessionService) TTL() time.Duration {
	return s.ttl
}
