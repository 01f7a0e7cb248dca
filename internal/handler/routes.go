package handler

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"carmatch-service/internal/middleware"
)

// Handlers groups every HTTP handler of the service.
type Handlers struct {
	Auth        *AuthHandler
	Cars        *CarHandler
	Deals       *DealsHandler
	Preferences *PreferenceHandler
	Swipe       *SwipeHandler
	Listings    *ListingsHandler
}

// RouteOptions holds the optional pieces of the router.
type RouteOptions struct {
	// Resolver authenticates bearer tokens. Required.
	Resolver middleware.SessionResolver
	// RateLimit is applied to /api/v1 when set.
	RateLimit fiber.Handler
	// SwaggerYAML is served under /swagger when non-empty.
	SwaggerYAML []byte
}

const swaggerHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>CarMatch API - Swagger UI</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script>
        SwaggerUIBundle({ url: '/swagger/doc.yaml', dom_id: '#swagger-ui' });
    </script>
</body>
</html>`

// Register mounts the API, metrics and docs on app.
func Register(app *fiber.App, h Handlers, opts RouteOptions) {
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	if len(opts.SwaggerYAML) > 0 {
		app.Get("/swagger/doc.yaml", func(c fiber.Ctx) error {
			c.Set("Content-Type", "application/yaml")
			return c.Send(opts.SwaggerYAML)
		})
		app.Get("/swagger/*", func(c fiber.Ctx) error {
			c.Set("Content-Type", "text/html")
			return c.SendString(swaggerHTML)
		})
	}

	api := app.Group("/api/v1")
	if opts.RateLimit != nil {
		api.Use(opts.RateLimit)
	}
	api.Use(middleware.AuthMiddleware(opts.Resolver, "/api/v1/health", "/api/v1/auth/login"))

	api.Get("/health", Health)

	// Auth
	api.Post("/auth/login", h.Auth.Login)
	api.Post("/auth/logout", h.Auth.Logout)
	api.Get("/auth/me", h.Auth.Me)

	// Catalog
	api.Get("/cars", h.Cars.ListCars)
	api.Post("/cars", h.Cars.CreateCar)
	api.Get("/cars/:id", h.Cars.GetCar)
	api.Get("/cars/:id/deals", h.Deals.GetDeals)
	api.Patch("/cars/:id", h.Cars.UpdateCar)
	api.Delete("/cars/:id", h.Cars.DeleteCar)
	api.Post("/admin/catalog/reset", h.Cars.ResetCatalog)

	// Preferences
	api.Get("/preferences", h.Preferences.GetPreferences)
	api.Patch("/preferences", h.Preferences.UpdatePreferences)
	api.Post("/preferences/onboarding", h.Preferences.Onboard)
	api.Post("/preferences/reset", h.Preferences.ResetPreferences)

	// Swiping
	api.Get("/swipe/stack", h.Swipe.GetStack)
	api.Post("/swipe/stack/filter", h.Swipe.FilterStack)
	api.Post("/swipe/stack/reset", h.Swipe.ResetStack)
	api.Post("/swipe/decisions", h.Swipe.Decide)
	api.Post("/swipe/gestures", h.Swipe.Gesture)
	api.Get("/swipe/history", h.Swipe.GetHistory)
	api.Delete("/swipe/history", h.Swipe.ClearHistory)
	api.Get("/liked", h.Swipe.GetLiked)
	api.Delete("/liked/:id", h.Swipe.Unlike)

	// Map
	api.Get("/listings", h.Listings.GetListings)
	api.Get("/listings/viewport", h.Listings.GetViewport)
	api.Post("/listings/viewport", h.Listings.ViewportIdle)
	api.Post("/listings/viewport/click/:id", h.Listings.ClickListing)
}
