package dto

import "gin-storefront/models"

type CartLine struct {
	Product  models.Product `json:"product"`
	Quantity int            `json:"quantity"`
	Subtotal float64        `json:"subtotal"`
}

type CartView struct {
	Items []CartLine `json:"items"`
	Total float64    `json:"total"`
}
