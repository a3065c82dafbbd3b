package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MamangRust/simple-microservice-ecommerce-go/services/gateway/internal/transport/http/handler"
	"github.com/MamangRust/simple-microservice-ecommerce-go/services/gateway/middleware"
)

type Handlers struct {
	Order   *handler.OrderHandler
	Product *handler.ProductHandler
}

func RegisterRoutes(app *fiber.App, h Handlers, jwtSecret string) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api", middleware.NewAuthMiddleware(jwtSecret))

	orders := api.Group("/orders")
	orders.Post("", h.Order.Create)
	orders.Get("", h.Order.List)
	orders.Post("/restore-all", h.Order.RestoreAll)
	orders.Delete("/trash", h.Order.DeleteAll)
	orders.Get("/:id", h.Order.FindByID)
	orders.Put("/:id", h.Order.Update)
	orders.Post("/:id/trash", h.Order.Trash)
	orders.Post("/:id/restore", h.Order.Restore)
	orders.Delete("/:id", h.Order.Delete)

	products := api.Group("/products")
	products.Post("", h.Product.Create)
	products.Get("", h.Product.List)
	products.Get("/:id", h.Product.FindByID)
	products.Post("/:id/decrease-stock", h.Product.DecreaseStock)
	products.Delete("/:id", h.Product.Delete)
}
