package dto

import "time"

type OrderHistoryEntry struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	ProductID   uint      `json:"product_id"`
	Quantity    int       `json:"quantity"`
	Date        time.Time `json:"date"`
	ProductName string    `json:"product_name"`
}
