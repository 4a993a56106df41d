package repositories

import (
	"gin-storefront/dto"
	"gin-storefront/models"
	"time"

	"gorm.io/gorm"
)

type IUserRepository interface {
	FindAllWithStats() (*[]dto.UserStats, error)
	Delete(userID uint) error
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) IUserRepository {
	return &UserRepository{db: db}
}

type orderCount struct {
	UserID     uint
	OrderCount int64
}

type lastOrder struct {
	UserID uint
	Date   time.Time
}

// FindAllWithStats 注文のないユーザーも件数0・最終注文日nullで含める（id昇順）
func (r *UserRepository) FindAllWithStats() (*[]dto.UserStats, error) {
	var users []models.User
	if err := r.db.Order("id").Find(&users).Error; err != nil {
		return nil, err
	}

	var counts []orderCount
	if err := r.db.Model(&models.Order{}).
		Select("user_id, COUNT(id) AS order_count").
		Group("user_id").
		Scan(&counts).Error; err != nil {
		return nil, err
	}

	// MAX(date)の結果はSQLiteで型情報を失うため、日付列そのものを取得する
	var latest []lastOrder
	if err := r.db.Raw(`SELECT o.user_id, o.date FROM orders o
		WHERE o.date = (SELECT MAX(o2.date) FROM orders o2 WHERE o2.user_id = o.user_id)`).
		Scan(&latest).Error; err != nil {
		return nil, err
	}

	countByUser := make(map[uint]int64, len(counts))
	for _, c := range counts {
		countByUser[c.UserID] = c.OrderCount
	}
	lastByUser := make(map[uint]time.Time, len(latest))
	for _, l := range latest {
		lastByUser[l.UserID] = l.Date
	}

	stats := make([]dto.UserStats, 0, len(users))
	for _, u := range users {
		s := dto.UserStats{
			ID:         u.ID,
			Username:   u.Username,
			IsAdmin:    u.IsAdmin,
			CreatedAt:  u.CreatedAt,
			OrderCount: countByUser[u.ID],
		}
		if d, ok := lastByUser[u.ID]; ok {
			s.LastOrderDate = &d
		}
		stats = append(stats, s)
	}
	return &stats, nil
}

// Delete ユーザーの注文は外部キーのON DELETE CASCADEで削除される
func (r *UserRepository) Delete(userID uint) error {
	result := r.db.Delete(&models.User{}, "id = ?", userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
