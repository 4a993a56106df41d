package dto

import "time"

type UserStats struct {
	ID            uint       `json:"id"`
	Username      string     `json:"username"`
	IsAdmin       bool       `json:"is_admin"`
	CreatedAt     time.Time  `json:"created_at"`
	OrderCount    int64      `json:"order_count"`
	LastOrderDate *time.Time `json:"last_order_date"`
}

type DashboardCounts struct {
	ProductCount int64 `json:"product_count"`
	OrderCount   int64 `json:"order_count"`
	UserCount    int64 `json:"user_count"`
}
