package routes

import (
	"mobistore/controllers"
	"mobistore/middleware"

	"github.com/gorilla/mux"
)

// Controllers bundles everything the router wires up.
type Controllers struct {
	Users      *controllers.UserController
	Products   *controllers.ProductController
	Carts      *controllers.CartController
	Orders     *controllers.OrderController
	Banners    *controllers.BannerController
	Brands     *controllers.BrandController
	Navigation *controllers.NavigationController
	Popups     *controllers.PopupController
}

// RegisterRoutes sets up all the routes for the application. Registration
// order matters: /orders/my must be seen before the public /orders/{id}.
func RegisterRoutes(router *mux.Router, c *Controllers, superAdminEmail string) {
	// Public account routes
	router.HandleFunc("/register", c.Users.Register).Methods("POST")
	router.HandleFunc("/login", c.Users.Login).Methods("POST")

	// Authenticated routes
	protected := router.PathPrefix("/").Subrouter()
	protected.Use(middleware.AuthMiddleware)
	protected.HandleFunc("/me", c.Users.Me).Methods("GET")
	protected.HandleFunc("/logout", c.Users.Logout).Methods("POST")
	protected.HandleFunc("/cart", c.Carts.GetCart).Methods("GET")
	protected.HandleFunc("/cart", c.Carts.AddToCart).Methods("POST")
	protected.HandleFunc("/cart", c.Carts.ClearCart).Methods("DELETE")
	protected.HandleFunc("/cart/{product_id}", c.Carts.UpdateQuantity).Methods("PUT")
	protected.HandleFunc("/cart/{product_id}", c.Carts.RemoveFromCart).Methods("DELETE")
	protected.HandleFunc("/orders/my", c.Orders.MyOrders).Methods("GET")

	// Admin routes
	admin := router.PathPrefix("/").Subrouter()
	admin.Use(middleware.AuthMiddleware, middleware.AdminMiddleware)
	admin.HandleFunc("/orders", c.Orders.GetOrders).Methods("GET")
	admin.HandleFunc("/orders/{id}/status", c.Orders.UpdateStatus).Methods("PUT")
	admin.HandleFunc("/orders/{id}/payment", c.Orders.UpdatePaymentStatus).Methods("PUT")
	admin.HandleFunc("/users", c.Users.ListUsers).Methods("GET")
	admin.HandleFunc("/products", c.Products.CreateProduct).Methods("POST")
	admin.HandleFunc("/products/{id}", c.Products.UpdateProduct).Methods("PUT")
	admin.HandleFunc("/products/{id}", c.Products.DeleteProduct).Methods("DELETE")
	admin.HandleFunc("/banners", c.Banners.CreateBanner).Methods("POST")
	admin.HandleFunc("/banners/{id}", c.Banners.UpdateBanner).Methods("PUT")
	admin.HandleFunc("/banners/{id}", c.Banners.DeleteBanner).Methods("DELETE")
	admin.HandleFunc("/brands", c.Brands.CreateBrand).Methods("POST")
	admin.HandleFunc("/brands/{id}", c.Brands.DeleteBrand).Methods("DELETE")
	admin.HandleFunc("/navigation", c.Navigation.CreateNavigation).Methods("POST")
	admin.HandleFunc("/navigation/{id}", c.Navigation.UpdateNavigation).Methods("PUT")
	admin.HandleFunc("/navigation/{id}", c.Navigation.DeleteNavigation).Methods("DELETE")
	admin.HandleFunc("/popup", c.Popups.UpdatePopup).Methods("PUT")

	// Role changes are reserved for the configured super admin.
	superAdmin := router.PathPrefix("/users").Subrouter()
	superAdmin.Use(middleware.AuthMiddleware, middleware.SuperAdminMiddleware(superAdminEmail))
	superAdmin.HandleFunc("/{id}/role", c.Users.UpdateRole).Methods("PUT")

	// Public storefront routes; guest checkout and the order-success lookup
	// stay open.
	router.HandleFunc("/products", c.Products.GetProducts).Methods("GET")
	router.HandleFunc("/products/{id}", c.Products.GetProductByID).Methods("GET")
	router.HandleFunc("/banners", c.Banners.GetBanners).Methods("GET")
	router.HandleFunc("/brands", c.Brands.GetBrands).Methods("GET")
	router.HandleFunc("/navigation", c.Navigation.GetNavigation).Methods("GET")
	router.HandleFunc("/popup", c.Popups.GetPopup).Methods("GET")
	router.HandleFunc("/orders", c.Orders.PlaceOrder).Methods("POST")
	router.HandleFunc("/orders/{id}", c.Orders.GetOrder).Methods("GET")
}
