package controllers

import (
	"errors"
	"gin-storefront/constants"
	"gin-storefront/services"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type IUserController interface {
	FindAll(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type UserController struct {
	service services.IUserService
}

func NewUserController(service services.IUserService) IUserController {
	return &UserController{service: service}
}

func (c *UserController) FindAll(ctx *gin.Context) {
	users, err := c.service.ListWithStats()
	if err != nil {
		log.Printf("List users error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": users})
}

func (c *UserController) Delete(ctx *gin.Context) {
	userID, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	if err := c.service.Delete(userID); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrUserNotFound})
			return
		}
		log.Printf("Delete user error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.Redirect(http.StatusFound, constants.PathAdminUsers)
}
