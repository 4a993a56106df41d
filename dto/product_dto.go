package dto

// ProductInput 追加・編集共通の入力。0円・在庫0でもrequiredを満たすようポインタにしている
type ProductInput struct {
	Name  string   `form:"name" json:"name" binding:"required"`
	Price *float64 `form:"price" json:"price" binding:"required"`
	Stock *int     `form:"stock" json:"stock" binding:"required"`
}
