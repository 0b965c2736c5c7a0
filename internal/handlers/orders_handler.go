package handlers

import (
	"errors"
	"fmt"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/imrishuroy/go-catalog-orderflow/internal/catalogclient"
	"github.com/imrishuroy/go-catalog-orderflow/internal/orders"
	"github.com/imrishuroy/go-catalog-orderflow/internal/validation"
)

// OrdersConfig groups dependencies for the order handlers.
type OrdersConfig struct {
	Store   *orders.Store
	Catalog *catalogclient.Client
	Logger  *zap.Logger
}

// RegisterOrdersRoutes registers routes for the order API.
func RegisterOrdersRoutes(r *gin.Engine, cfg OrdersConfig) {
	v := validation.New()

	r.POST("/orders", func(c *gin.Context) {
		ctx := c.Request.Context()

		var req validation.CreateOrderRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			// BindAndValidate already wrote a 422
			return
		}

		// Validate every line item against the catalog and accumulate the
		// total. Nothing is persisted until all lookups succeed.
		var total float64
		items := make([]orders.LineItem, 0, len(req.Items))
		for _, it := range req.Items {
			p, err := cfg.Catalog.GetProduct(ctx, it.ProductID)
			if err != nil {
				writeLookupError(c, cfg.Logger, it.ProductID, err)
				return
			}
			total += p.Price * float64(it.Quantity)
			items = append(items, orders.LineItem{ProductID: it.ProductID, Quantity: it.Quantity})
		}

		o := cfg.Store.Create(req.CustomerID, items, roundCents(total))
		cfg.Logger.Info("order created",
			zap.String("order_id", o.ID),
			zap.String("customer_id", o.CustomerID),
			zap.Float64("total", o.Total),
		)

		c.Header("Location", fmt.Sprintf("/orders/%s", o.ID))
		c.JSON(http.StatusCreated, o)
	})

	r.GET("/orders/:id", func(c *gin.Context) {
		o, err := cfg.Store.Get(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order_not_found"})
			return
		}
		c.JSON(http.StatusOK, o)
	})

	r.GET("/orders", func(c *gin.Context) {
		c.JSON(http.StatusOK, cfg.Store.List(c.Query("customer_id")))
	})

	r.PATCH("/orders/:id/status", func(c *gin.Context) {
		status := c.Query("status")

		o, err := cfg.Store.UpdateStatus(c.Param("id"), status)
		switch {
		case errors.Is(err, orders.ErrInvalidStatus):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "invalid_status",
				"msg":   fmt.Sprintf("status %q is not one of pending, confirmed, shipped, delivered, canceled", status),
			})
		case errors.Is(err, orders.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "order_not_found"})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "status_update_failed"})
		default:
			cfg.Logger.Info("order status updated",
				zap.String("order_id", o.ID),
				zap.String("status", o.Status),
			)
			c.JSON(http.StatusOK, o)
		}
	})
}

// writeLookupError maps catalog lookup failures onto the order API surface:
// missing product -> 404 naming the id, anything else -> 503.
func writeLookupError(c *gin.Context, logger *zap.Logger, productID string, err error) {
	var notFound *catalogclient.ProductNotFoundError
	if errors.As(err, &notFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "product_not_found",
			"msg":   notFound.Error(),
		})
		return
	}

	logger.Warn("catalog lookup failed",
		zap.String("product_id", productID),
		zap.Error(err),
	)
	c.JSON(http.StatusServiceUnavailable, gin.H{
		"error": "product_service_unavailable",
		"msg":   fmt.Sprintf("product service unavailable while validating product %s", productID),
	})
}

// roundCents keeps totals at two decimal places.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
