package middlewares

import (
	"gin-storefront/constants"
	"net/http"

	"github.com/gin-gonic/gin"
)

// LoginRequired 未ログインの場合はエラーではなくログイン画面へリダイレクトする
func LoginRequired() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		session := CurrentSession(ctx)
		if session == nil || !session.IsAuthenticated() {
			ctx.Redirect(http.StatusFound, constants.PathLogin)
			ctx.Abort()
			return
		}

		ctx.Next()
	}
}
