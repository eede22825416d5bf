package routes

import (
	"moodlog/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterCatalogRoutes(router *gin.Engine, catalogController *controllers.CatalogController) {
	catalogRoutes := router.Group("/catalog")
	{
		catalogRoutes.GET("/", catalogController.GetCatalog)
		catalogRoutes.GET("/:id", catalogController.GetCategory)
	}
}
