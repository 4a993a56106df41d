package middlewares

import (
	"errors"
	"gin-storefront/constants"
	"gin-storefront/models"
	"gin-storefront/services"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SessionMiddleware Cookieのトークンからセッションを復元し、ctxに"session"として設定する
// トークンが無効・期限切れの場合は未保存の新しいセッションを設定する
func SessionMiddleware(sessionService services.ISessionService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		session := sessionService.New()

		if tokenString, err := ctx.Cookie(constants.SessionCookieName); err == nil && tokenString != "" {
			loaded, err := sessionService.Load(tokenString)
			switch {
			case err == nil:
				session = loaded
			case errors.Is(err, gorm.ErrRecordNotFound):
			default:
				log.Printf("SessionMiddleware: discarding session token: %v", err)
			}
		}

		ctx.Set(constants.ContextSessionKey, session)
		ctx.Next()
	}
}

// CurrentSession SessionMiddlewareの後に使用することを想定
func CurrentSession(ctx *gin.Context) *models.Session {
	if value, exists := ctx.Get(constants.ContextSessionKey); exists {
		if session, ok := value.(*models.Session); ok {
			return session
		}
	}
	return nil
}

// SaveSession レスポンスを書き込む前に呼び出す（Cookieはヘッダーで送るため）
func SaveSession(ctx *gin.Context, sessionService services.ISessionService) error {
	session := CurrentSession(ctx)
	if session == nil {
		return errors.New("no session in context")
	}

	tokenString, err := sessionService.Save(session)
	if err != nil {
		return err
	}

	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(constants.SessionCookieName, *tokenString, int(sessionService.TTL().Seconds()), "/", "", false, true)
	return nil
}

// DestroySession セッションを無条件に破棄し、Cookieを失効させる
func DestroySession(ctx *gin.Context, sessionService services.ISessionService) error {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(constants.SessionCookieName, "", -1, "/", "", false, true)

	session := CurrentSession(ctx)
	if session == nil {
		return nil
	}
	return sessionService.Destroy(session)
}
