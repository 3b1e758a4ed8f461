package api

import (
	"alcyxob/nutrition-app/internal/domain"
	"alcyxob/nutrition-app/internal/service"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	barcodeService service.BarcodeService
}

func NewProductHandler(barcodeService service.BarcodeService) *ProductHandler {
	return &ProductHandler{barcodeService: barcodeService}
}

type ProductRequest struct {
	Barcode       string  `json:"barcode" binding:"required"`
	Name          string  `json:"name" binding:"required"`
	Calories      float64 `json:"calories" binding:"min=0"`
	Proteins      float64 `json:"proteins" binding:"min=0"`
	Carbohydrates float64 `json:"carbohydrates" binding:"min=0"`
	Fats          float64 `json:"fats" binding:"min=0"`
}

// ProductLookupResponse is a product plus a meal log ready to submit.
type ProductLookupResponse struct {
	Product domain.Product `json:"product"`
	MealLog MealLogRequest `json:"mealLog"`
}

// LookupProduct godoc
// @Summary Find a product by barcode
// @Tags Products
// @Produce json
// @Param barcode path string true "EAN/UPC code"
// @Param mealType query string false "meal type for the pre-filled entry, default snack"
// @Param date query string false "date for the pre-filled entry, default today"
// @Success 200 {object} ProductLookupResponse
// @Failure 404 {object} gin.H "Product not found"
// @Router /products/{barcode} [get]
func (h *ProductHandler) LookupProduct(c *gin.Context) {
	product, err := h.barcodeService.LookupProduct(c.Request.Context(), c.Param("barcode"))
	if err != nil {
		writeProductError(c, err)
		return
	}

	now := time.Now()
	in := service.MealLogInputFromProduct(
		*product,
		c.DefaultQuery("mealType", string(domain.MealSnack)),
		c.DefaultQuery("date", now.Format(domain.DateLayout)),
		now.Format("15:04"),
	)
	c.JSON(http.StatusOK, ProductLookupResponse{
		Product: *product,
		MealLog: MealLogRequest{
			MealType:      in.MealType,
			MealDate:      in.MealDate,
			MealTime:      in.MealTime,
			Calories:      in.Calories,
			Proteins:      in.Proteins,
			Fats:          in.Fats,
			Carbohydrates: in.Carbohydrates,
			Description:   in.Description,
		},
	})
}

// SaveProduct adds or replaces a catalog entry. Admin only.
func (h *ProductHandler) SaveProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	product := &domain.Product{
		Barcode:       req.Barcode,
		Name:          req.Name,
		Calories:      req.Calories,
		Proteins:      req.Proteins,
		Carbohydrates: req.Carbohydrates,
		Fats:          req.Fats,
	}
	if err := h.barcodeService.SaveProduct(c.Request.Context(), product); err != nil {
		writeProductError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func writeProductError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProductNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidBarcode), errors.Is(err, service.ErrInvalidProduct):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		abortWithInternal(c, err, "Failed to process product")
	}
}
