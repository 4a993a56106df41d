package controllers

import (
	"errors"
	"gin-storefront/constants"
	"gin-storefront/dto"
	"gin-storefront/middlewares"
	"gin-storefront/services"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type IAuthController interface {
	RegisterForm(ctx *gin.Context)
	Register(ctx *gin.Context)
	LoginForm(ctx *gin.Context)
	Login(ctx *gin.Context)
	Logout(ctx *gin.Context)
}

type AuthController struct {
	service        services.IAuthService
	sessionService services.ISessionService
}

func NewAuthController(service services.IAuthService, sessionService services.ISessionService) IAuthController {
	return &AuthController{service: service, sessionService: sessionService}
}

func (c *AuthController) RegisterForm(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"data": dto.FormDescriptor{
		Form:   "register",
		Action: "/register",
		Fields: []string{"username", "password"},
	}})
}

func (c *AuthController) Register(ctx *gin.Context) {
	var input dto.RegisterInput
	if err := ctx.ShouldBind(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	err := c.service.Register(input.Username, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateUser) {
			ctx.JSON(http.StatusConflict, gin.H{"error": constants.ErrDuplicateUser})
			return
		}
		log.Printf("Register error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}
	ctx.Redirect(http.StatusFound, constants.PathLogin)
}

func (c *AuthController) LoginForm(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"data": dto.FormDescriptor{
		Form:   "login",
		Action: "/login",
		Fields: []string{"username", "password"},
	}})
}

func (c *AuthController) Login(ctx *gin.Context) {
	var input dto.LoginInput
	if err := ctx.ShouldBind(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	user, err := c.service.Login(input.Username, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": constants.ErrInvalidCredentials})
			return
		}
		log.Printf("Login error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	middlewares.CurrentSession(ctx).SetIdentity(*user)
	if err := middlewares.SaveSession(ctx, c.sessionService); err != nil {
		log.Printf("Login session error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}
	ctx.Redirect(http.StatusFound, constants.PathHome)
}

func (c *AuthController) Logout(ctx *gin.Context) {
	if err := middlewares.DestroySession(ctx, c.sessionService); err != nil {
		log.Printf("Logout error: %v", err)
	}
	ctx.Redirect(http.StatusFound, constants.PathHome)
}
