package controllers

import (
	"errors"
	"gin-storefront/constants"
	"gin-storefront/middlewares"
	"gin-storefront/services"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type IOrderController interface {
	Checkout(ctx *gin.Context)
	History(ctx *gin.Context)
}

type OrderController struct {
	service        services.IOrderService
	sessionService services.ISessionService
}

func NewOrderController(service services.IOrderService, sessionService services.ISessionService) IOrderController {
	return &OrderController{service: service, sessionService: sessionService}
}

func (c *OrderController) Checkout(ctx *gin.Context) {
	session := middlewares.CurrentSession(ctx)

	orders, err := c.service.Checkout(session)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotAuthenticated):
			ctx.Redirect(http.StatusFound, constants.PathLogin)
		case errors.Is(err, services.ErrEmptyCart):
			ctx.Redirect(http.StatusFound, constants.PathCart)
		default:
			log.Printf("Checkout error: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		}
		return
	}

	// 注文は確定済み。ここで失敗するとカートが残るため、ログに残す
	if err := middlewares.SaveSession(ctx, c.sessionService); err != nil {
		log.Printf("Checkout: %d orders created but cart could not be cleared: %v", len(orders), err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.Redirect(http.StatusFound, constants.PathOrders)
}

func (c *OrderController) History(ctx *gin.Context) {
	session := middlewares.CurrentSession(ctx)

	orders, err := c.service.History(*session.UserID)
	if err != nil {
		log.Printf("Order history error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": orders})
}
