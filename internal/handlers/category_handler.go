package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fintrack/internal/models"
)

// CategoryResponse represents a category in the response
type CategoryResponse struct {
	Name  models.Category `json:"name" example:"dining"`
	Color string          `json:"color" example:"#f97316"`
}

// CategoriesResponse lists the fixed enumerations used by the forms.
type CategoriesResponse struct {
	Categories []CategoryResponse       `json:"categories"`
	Types      []models.TransactionType `json:"types"`
}

// ListCategories returns the fixed categories and transaction types
// @Summary     List categories
// @Description The fixed transaction categories with their chart colors, and the transaction types.
// @Tags        categories
// @Produce     json
// @Success     200 {object} CategoriesResponse "Enumerations"
// @Router      /categories [get]
func ListCategories(c *gin.Context) {
	categories := make([]CategoryResponse, len(models.Categories))
	for i, cat := range models.Categories {
		categories[i] = CategoryResponse{Name: cat, Color: cat.Color()}
	}
	c.JSON(http.StatusOK, CategoriesResponse{
		Categories: categories,
		Types:      models.TransactionTypes,
	})
}
