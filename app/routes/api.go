// Package routes registers every HTTP route against the shared router.
package routes

import (
	"net/http"

	"github.com/jackmarxreacher-creator/rby-sub000/app/controllers"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/logger"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/middleware"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/rbac"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/response"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/router"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/ws"
)

// RegisterAPI mounts the public, staff and admin route groups.
func RegisterAPI(r *router.Router) {
	authController := controllers.NewAuthController()
	requestController := controllers.NewRequestController()
	productController := controllers.NewProductController()
	blogController := controllers.NewBlogController()
	galleryController := controllers.NewGalleryController()
	userController := controllers.NewUserController()

	api := r.Group("/api")

	// Public: the order-intake form, catalogue and site content.
	api.Post("/login", "auth.login", authController.Login)
	api.Post("/requests", "requests.create", requestController.Create, middleware.OptionalAuth)
	api.Get("/catalog", "catalog.list", productController.Catalog)
	api.Get("/blogs", "blogs.list", blogController.List)
	api.Get("/blogs/{id}", "blogs.get", blogController.Get)
	api.Get("/gallery", "gallery.list", galleryController.List)

	if catalogQL, err := controllers.NewCatalogGraphQL(); err != nil {
		logger.Error("routes: catalog graphql disabled", "error", err)
	} else {
		api.Post("/graphql", "catalog.graphql", catalogQL)
		api.Get("/graphql", "catalog.graphql.get", catalogQL)
	}

	// Staff: everything behind a valid JWT.
	staff := api.Group("", middleware.Auth)
	staff.Get("/requests", "requests.list", requestController.List)
	staff.Get("/requests/recent", "requests.recent", requestController.Recent)
	staff.Get("/requests/{id}", "requests.get", requestController.Get)
	staff.Put("/requests/{id}", "requests.update", requestController.Update)
	staff.Delete("/requests/{id}", "requests.delete", requestController.Delete)
	staff.Patch("/requests/{id}/status", "requests.status", requestController.UpdateStatus)
	staff.Get("/requests/{id}/export", "requests.export", requestController.Export)

	staff.Get("/products", "products.list", productController.List)
	staff.Get("/products/{id}", "products.get", productController.Get)
	staff.Post("/products", "products.create", productController.Create)
	staff.Put("/products/{id}", "products.update", productController.Update)
	staff.Delete("/products/{id}", "products.delete", productController.Delete)

	staff.Post("/blogs", "blogs.create", blogController.Create)
	staff.Put("/blogs/{id}", "blogs.update", blogController.Update)
	staff.Delete("/blogs/{id}", "blogs.delete", blogController.Delete)

	staff.Post("/gallery", "gallery.create", galleryController.Upload)
	staff.Put("/gallery/{id}", "gallery.update", galleryController.Update)
	staff.Delete("/gallery/{id}", "gallery.delete", galleryController.Delete)

	staff.Get("/profile", "auth.profile", func(w http.ResponseWriter, r *http.Request) {
		id, _ := middleware.UserIDFromCtx(r)
		role, _ := middleware.RoleFromCtx(r)
		response.Success(w, map[string]interface{}{"id": id, "role": role})
	})

	// Admin: staff-account management and the audit trail.
	admin := staff.Group("", rbac.HasRole("ADMIN"))
	admin.Get("/users", "users.list", userController.List)
	admin.Get("/users/{id}", "users.get", userController.Get)
	admin.Post("/users", "users.create", userController.Create)
	admin.Put("/users/{id}", "users.update", userController.Update)
	admin.Delete("/users/{id}", "users.delete", userController.Delete)
	admin.Get("/activity", "activity.list", userController.Activity)

	// Live order feed for the staff dashboard.
	r.Get("/ws/orders", "ws.orders", func(w http.ResponseWriter, req *http.Request) {
		ws.Upgrade(w, req, ws.OrderFeed)
	}, middleware.Auth)
}
