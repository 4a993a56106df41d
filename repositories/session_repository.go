package repositories

import (
	"gin-storefront/models"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ISessionRepository interface {
	Save(session *models.Session) error
	FindActive(sessionID string) (*models.Session, error)
	Delete(sessionID string) error
	CleanExpiredSessions() (int64, error)
}

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) ISessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Save(session *models.Session) error {
	result := r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(session)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func (r *SessionRepository) FindActive(sessionID string) (*models.Session, error) {
	var session models.Session
	result := r.db.Where("id = ? AND expires_at >= ?", sessionID, time.Now().Unix()).First(&session)
	if result.Error != nil {
		return nil, result.Error
	}
	return &session, nil
}

func (r *SessionRepository) Delete(sessionID string) error {
	return r.db.Delete(&models.Session{}, "id = ?", sessionID).Error
}

func (r *SessionRepository) CleanExpiredSessions() (int64, error) {
	now := time.Now().Unix()
	result := r.db.Where("expires_at < ?", now).Delete(&models.Session{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
