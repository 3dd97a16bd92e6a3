package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/satellitegroup/printshop/internal/handlers"
	"github.com/satellitegroup/printshop/internal/service/token"
)

type Deps struct {
	Auth     *handlers.AuthHandler
	Products *handlers.ProductHandler
	Search   *handlers.SearchHandler
	Cart     *handlers.CartHandler
	Orders   *handlers.OrderHandler
	Receipts *handlers.ReceiptHandler
	Wishlist *handlers.WishlistHandler
	Quotes   *handlers.QuoteHandler
	Admin    *handlers.AdminHandler
	Tokens   *token.TokenService
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	api := e.Group("/api/v1")

	api.POST("/register", d.Auth.Register)
	api.POST("/login", d.Auth.Login)
	api.POST("/logout", d.Auth.LogOut)

	api.GET("/products", d.Products.GetProducts)
	api.GET("/products/:slug", d.Products.GetProduct)
	api.GET("/search", d.Search.Search)

	api.POST("/quotes", d.Quotes.Create)

	api.GET("/orders/track/:number", d.Orders.Track)
	api.GET("/receipts/:number", d.Receipts.Status)

	auth := api.Group("", d.Tokens.AutoRefreshMiddleware)
	auth.GET("/cart", d.Cart.GetCart)
	auth.PUT("/cart", d.Cart.ReplaceCart)
	auth.POST("/orders", d.Orders.CreateOrder)
	auth.GET("/orders", d.Orders.ListMine)
	auth.POST("/receipts", d.Receipts.Upload)
	auth.GET("/wishlist", d.Wishlist.Get)
	auth.POST("/wishlist", d.Wishlist.Toggle)

	admin := api.Group("/admin", d.Tokens.AutoRefreshMiddlewareAdmin)
	admin.GET("/orders", d.Admin.ListOrders)
	admin.PATCH("/orders/:id", d.Admin.UpdateStatus)
	admin.GET("/quotes", d.Quotes.ListAll)
	admin.GET("/stats", d.Admin.Stats)
}
