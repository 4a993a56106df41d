package controllers

import (
	"gin-storefront/constants"
	"gin-storefront/middlewares"
	"gin-storefront/services"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ICartController interface {
	AddToCart(ctx *gin.Context)
	View(ctx *gin.Context)
}

type CartController struct {
	service        services.ICartService
	sessionService services.ISessionService
}

func NewCartController(service services.ICartService, sessionService services.ISessionService) ICartController {
	return &CartController{service: service, sessionService: sessionService}
}

func (c *CartController) AddToCart(ctx *gin.Context) {
	productID, ok := parseID(ctx, "product_id")
	if !ok {
		return
	}

	c.service.AddToCart(middlewares.CurrentSession(ctx), productID)
	if err := middlewares.SaveSession(ctx, c.sessionService); err != nil {
		log.Printf("AddToCart session error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.Redirect(http.StatusFound, constants.PathCart)
}

func (c *CartController) View(ctx *gin.Context) {
	view, err := c.service.ViewCart(middlewares.CurrentSession(ctx))
	if err != nil {
		log.Printf("ViewCart error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": view})
}
