package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/imrishuroy/go-catalog-orderflow/internal/catalog"
	"github.com/imrishuroy/go-catalog-orderflow/internal/validation"
)

// CatalogConfig groups dependencies for the catalog handlers.
type CatalogConfig struct {
	Store  *catalog.Store
	Logger *zap.Logger
}

// RegisterCatalogRoutes registers routes for the product API.
func RegisterCatalogRoutes(r *gin.Engine, cfg CatalogConfig) {
	v := validation.New()

	r.GET("/products", func(c *gin.Context) {
		c.JSON(http.StatusOK, cfg.Store.List(c.Query("category")))
	})

	r.GET("/products/:id", func(c *gin.Context) {
		p, err := cfg.Store.Get(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "product_not_found"})
			return
		}
		c.JSON(http.StatusOK, p)
	})

	r.POST("/products", func(c *gin.Context) {
		var req validation.CreateProductRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			// BindAndValidate already wrote a 422
			return
		}

		p := cfg.Store.Create(req.Name, req.Price, req.Category)
		cfg.Logger.Info("product created",
			zap.String("product_id", p.ID),
			zap.String("name", p.Name),
		)
		c.JSON(http.StatusCreated, p)
	})

	r.PUT("/products/:id", func(c *gin.Context) {
		var req validation.CreateProductRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		p, err := cfg.Store.Update(c.Param("id"), req.Name, req.Price, req.Category)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "product_not_found"})
			return
		}
		c.JSON(http.StatusOK, p)
	})

	r.DELETE("/products/:id", func(c *gin.Context) {
		if err := cfg.Store.Delete(c.Param("id")); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "product_not_found"})
			return
		}
		cfg.Logger.Info("product deleted", zap.String("product_id", c.Param("id")))
		c.JSON(http.StatusOK, gin.H{"message": "product deleted successfully"})
	})
}
