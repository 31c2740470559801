package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"campusevents/internal/delivery/http/controllers"
	"campusevents/internal/delivery/http/middleware"
	"campusevents/internal/domain"

	_ "campusevents/docs"
)

// Controllers bundles everything the router mounts.
type Controllers struct {
	Timeline     *controllers.TimelineController
	Relationship *controllers.RelationshipController
	Search       *controllers.SearchController
	Auth         *controllers.AuthController
	Event        *controllers.EventController
}

// NewRouter initializes the HTTP router with all application routes.
func NewRouter(c Controllers, verifier domain.TokenVerifier) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier)
	optional := middleware.OptionalAuth(verifier)

	// Timeline. Anonymous viewers get the public slice.
	mux.HandleFunc("GET /timeline", optional(c.Timeline.GetTimeline))
	mux.HandleFunc("GET /timeline.ics", optional(c.Timeline.ExportTimelineICS))

	// Saved events and followed clubs
	mux.HandleFunc("POST /me/saved-events/{eventID}", auth(c.Relationship.SaveEvent))
	mux.HandleFunc("DELETE /me/saved-events/{eventID}", auth(c.Relationship.UnsaveEvent))
	mux.HandleFunc("GET /me/saved-events", auth(c.Relationship.ListSaved))
	mux.HandleFunc("POST /me/following/{clubID}", auth(c.Relationship.FollowClub))
	mux.HandleFunc("DELETE /me/following/{clubID}", auth(c.Relationship.UnfollowClub))
	mux.HandleFunc("GET /me/following", auth(c.Relationship.ListFollowing))
	mux.HandleFunc("GET /clubs/{clubID}/followers/count", c.Relationship.FollowerCount)

	// Search
	mux.HandleFunc("GET /search", c.Search.Search)

	// Events
	mux.HandleFunc("POST /events", auth(c.Event.CreateEvent))
	mux.HandleFunc("GET /events/{eventID}", c.Event.GetEvent)
	mux.HandleFunc("PATCH /events/{eventID}", auth(c.Event.UpdateEvent))
	mux.HandleFunc("DELETE /events/{eventID}", auth(c.Event.DeleteEvent))
	mux.HandleFunc("GET /me/events", auth(c.Event.ListMyEvents))

	// Auth
	mux.HandleFunc("POST /auth/signup", c.Auth.SignUp)
	mux.HandleFunc("POST /auth/login", c.Auth.Login)
	mux.HandleFunc("GET /me", auth(c.Auth.Me))
	mux.HandleFunc("POST /admin/clubs/{clubID}/approve", auth(c.Auth.ApproveClub))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
