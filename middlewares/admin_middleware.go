package middlewares

import (
	"gin-storefront/constants"
	"gin-storefront/services"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminRequired 管理者のみアクセスを許可するミドルウェア
// 権限がない場合は403ではなくトップページへリダイレクトする
func AdminRequired(gate services.IAdminGate) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		decision, err := gate.Authorize(CurrentSession(ctx))
		if err != nil {
			log.Printf("AdminRequired: authorization lookup failed: %v", err)
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
			return
		}

		switch decision {
		case services.AuthorizationAllowed:
			ctx.Next()
		case services.AuthorizationRedirectToLogin:
			ctx.Redirect(http.StatusFound, constants.PathLogin)
			ctx.Abort()
		default:
			log.Printf("AdminRequired: access denied (%s) for %s", decision, ctx.Request.URL.Path)
			ctx.Redirect(http.StatusFound, constants.PathHome)
			ctx.Abort()
		}
	}
}
