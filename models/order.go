package models

import "time"

// Order カートの1行 = 1件の注文。登録後は更新しない
type Order struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	ProductID uint      `gorm:"not null;index" json:"product_id"`
	Product   Product   `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Date      time.Time `gorm:"autoCreateTime" json:"date"`
}
