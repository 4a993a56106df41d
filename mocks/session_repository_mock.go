package mocks

import (
	"gin-storefront/models"

	"github.com/stretchr/testify/mock"
)

type SessionRepository struct{ mock.Mock }

func (m *SessionRepository) Save(session *models.Session) error { return m.Called(session).Error(0) }

func (m *SessionRepository) FindActive(sessionID string) (*models.Session, error) {
	args := m.Called(sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *SessionRepository) Delete(sessionID string) error { return m.Called(sessionID).Error(0) }

func (m *SessionRepository) CleanExpiredSessions() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}
