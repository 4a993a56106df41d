package controllers

import (
	"errors"
	"gin-storefront/constants"
	"gin-storefront/dto"
	"gin-storefront/services"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type IProductController interface {
	FindAll(ctx *gin.Context)
	AddForm(ctx *gin.Context)
	Create(ctx *gin.Context)
	Edit(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type ProductController struct {
	service services.IProductService
}

func NewProductController(service services.IProductService) IProductController {
	return &ProductController{service: service}
}

func (c *ProductController) FindAll(ctx *gin.Context) {
	products, err := c.service.FindAll()
	if err != nil {
		log.Printf("FindAll products error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": products})
}

func (c *ProductController) AddForm(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"data": dto.FormDescriptor{
		Form:   "add_product",
		Action: "/admin/products/add",
		Fields: []string{"name", "price", "stock"},
	}})
}

func (c *ProductController) Create(ctx *gin.Context) {
	var input dto.ProductInput
	if err := ctx.ShouldBind(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	if _, err := c.service.Create(input); err != nil {
		log.Printf("Create product error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.Redirect(http.StatusFound, constants.PathAdminProducts)
}

func (c *ProductController) Edit(ctx *gin.Context) {
	productID, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	product, err := c.service.FindById(productID)
	if err != nil {
		c.respondError(ctx, "Edit product", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": product})
}

func (c *ProductController) Update(ctx *gin.Context) {
	productID, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var input dto.ProductInput
	if err := ctx.ShouldBind(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	if _, err := c.service.Update(productID, input); err != nil {
		c.respondError(ctx, "Update product", err)
		return
	}

	ctx.Redirect(http.StatusFound, constants.PathAdminProducts)
}

func (c *ProductController) Delete(ctx *gin.Context) {
	productID, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	if err := c.service.Delete(productID); err != nil {
		c.respondError(ctx, "Delete product", err)
		return
	}

	ctx.Redirect(http.StatusFound, constants.PathAdminProducts)
}

func (c *ProductController) respondError(ctx *gin.Context, op string, err error) {
	if errors.Is(err, services.ErrProductNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrProductNotFound})
		return
	}
	log.Printf("%s error: %v", op, err)
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
}
