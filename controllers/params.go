package controllers

import (
	"gin-storefront/constants"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseID パスパラメータを正の整数として取得する。失敗時は400を返す
func parseID(ctx *gin.Context, key string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(key), 10, 64)
	if err != nil || id == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
		return 0, false
	}
	return uint(id), true
}
