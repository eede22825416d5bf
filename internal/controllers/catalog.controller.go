package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"moodlog/internal/catalog"
)

type CatalogController struct{}

func NewCatalogController() *CatalogController {
	return &CatalogController{}
}

// GetCatalog handles GET /catalog
func (cc *CatalogController) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Catalog retrieved successfully",
		"data":    catalog.Categories,
	})
}

// GetCategory handles GET /catalog/:id
func (cc *CatalogController) GetCategory(c *gin.Context) {
	category, ok := catalog.Find(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Category not found",
			"error":   "No category exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Category retrieved successfully",
		"data":    category,
	})
}
