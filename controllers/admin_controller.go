package controllers

import (
	"gin-storefront/constants"
	"gin-storefront/services"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type IAdminController interface {
	Dashboard(ctx *gin.Context)
}

type AdminController struct {
	service services.IDashboardService
}

func NewAdminController(service services.IDashboardService) IAdminController {
	return &AdminController{service: service}
}

func (c *AdminController) Dashboard(ctx *gin.Context) {
	counts, err := c.service.Counts()
	if err != nil {
		log.Printf("Dashboard error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": counts})
}
