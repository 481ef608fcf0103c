// interfaces/api/routes/gig_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zydnet/CineMystApp-sub002/interfaces/api/handler"
)

// SetupGigRoutes เส้นทางของประกาศ casting call
func SetupGigRoutes(api fiber.Router, protected fiber.Handler, h *handler.GigHandler) {
	gigs := api.Group("/gigs", protected)

	gigs.Post("/", h.CreateGig)
	gigs.Get("/", h.ListGigs)
	gigs.Get("/:gigId", h.GetGig)
	gigs.Put("/:gigId", h.UpdateGig)
	gigs.Delete("/:gigId", h.DeleteGig)
}
