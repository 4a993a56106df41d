package constants

// 初期管理者
const (
	AdminUsername        = "admin"
	DefaultAdminPassword = "admin123"
)

// セッション
const (
	SessionCookieName = "session"
	ContextSessionKey = "session"
)

// リダイレクト先
const (
	PathHome          = "/"
	PathLogin         = "/login"
	PathCart          = "/cart"
	PathOrders        = "/orders"
	PathAdminProducts = "/admin/products"
	PathAdminUsers    = "/admin/users"
)

// エラーメッセージ
const (
	ErrProductNotFound    = "Product not found"
	ErrUserNotFound       = "User not found"
	ErrDuplicateUser      = "Username already exists"
	ErrInvalidCredentials = "Invalid username or password"
	ErrNotAuthenticated   = "Login required"
	ErrEmptyCart          = "Cart is empty"
	ErrUnexpected         = "Unexpected error"
	ErrInvalidID          = "Invalid id"
	ErrInvalidInput       = "Invalid input"
)
