package dto

type RegisterInput struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

type LoginInput struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

// FormDescriptor フォーム画面が送信する項目
type FormDescriptor struct {
	Form   string   `json:"form"`
	Action string   `json:"action"`
	Fields []string `json:"fields"`
}
