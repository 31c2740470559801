package controllers

import (
	"log/slog"
	"net/http"

	"campusevents/internal/delivery/http/helpers"
	"campusevents/internal/delivery/http/middleware"
	"campusevents/internal/domain"
)

// RelationshipController serves the save/follow relations. Every route acts
// on the authenticated viewer's own relations.
type RelationshipController struct {
	Logger  *slog.Logger
	Service domain.RelationshipService
}

func NewRelationshipController(logger *slog.Logger, svc domain.RelationshipService) *RelationshipController {
	return &RelationshipController{Logger: logger, Service: svc}
}

// SaveEvent godoc
// @Summary Save an event
// @Description Adds the event to the viewer's saved set. Saving an already-saved event is a no-op and still returns 204.
// @Tags relationships
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 204 "saved"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /me/saved-events/{eventID} [post]
func (c *RelationshipController) SaveEvent(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.ViewerFromContext(r.Context())
	err := c.Service.SaveEvent(r.Context(), viewer, viewer.AccountID, r.PathValue("eventID"))
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UnsaveEvent godoc
// @Summary Unsave an event
// @Description Removes the event from the viewer's saved set. Removing an absent entry is a no-op and still returns 204.
// @Tags relationships
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 204 "removed"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /me/saved-events/{eventID} [delete]
func (c *RelationshipController) UnsaveEvent(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.ViewerFromContext(r.Context())
	err := c.Service.UnsaveEvent(r.Context(), viewer, viewer.AccountID, r.PathValue("eventID"))
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListSavedSuccessResponse is the success response envelope for GET /me/saved-events (200).
type ListSavedSuccessResponse struct {
	Data  []string          `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListSaved godoc
// @Summary List saved event ids
// @Tags relationships
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.ListSavedSuccessResponse "data contains the saved event ids"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /me/saved-events [get]
func (c *RelationshipController) ListSaved(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.ViewerFromContext(r.Context())
	ids, err := c.Service.ListSaved(r.Context(), viewer, viewer.AccountID)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ids)
}

// FollowClub godoc
// @Summary Follow a club
// @Description Adds the club to the viewer's following set. Idempotent.
// @Tags relationships
// @Security BearerAuth
// @Param clubID path string true "Club account ID"
// @Success 204 "following"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /me/following/{clubID} [post]
func (c *RelationshipController) FollowClub(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.ViewerFromContext(r.Context())
	err := c.Service.FollowClub(r.Context(), viewer, viewer.AccountID, r.PathValue("clubID"))
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UnfollowClub godoc
// @Summary Unfollow a club
// @Tags relationships
// @Security BearerAuth
// @Param clubID path string true "Club account ID"
// @Success 204 "unfollowed"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /me/following/{clubID} [delete]
func (c *RelationshipController) UnfollowClub(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.ViewerFromContext(r.Context())
	err := c.Service.UnfollowClub(r.Context(), viewer, viewer.AccountID, r.PathValue("clubID"))
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListFollowing godoc
// @Summary List followed club ids
// @Tags relationships
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.ListSavedSuccessResponse "data contains the followed club ids"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /me/following [get]
func (c *RelationshipController) ListFollowing(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.ViewerFromContext(r.Context())
	ids, err := c.Service.ListFollowing(r.Context(), viewer, viewer.AccountID)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ids)
}

// FollowerCountResponse is the response body for GET /clubs/{clubID}/followers/count.
type FollowerCountResponse struct {
	Count int `json:"count"`
}

// FollowerCount godoc
// @Summary Count a club's followers
// @Tags relationships
// @Produce json
// @Param clubID path string true "Club account ID"
// @Success 200 {object} controllers.FollowerCountResponse
// @Router /clubs/{clubID}/followers/count [get]
func (c *RelationshipController) FollowerCount(w http.ResponseWriter, r *http.Request) {
	count, err := c.Service.FollowerCount(r.Context(), r.PathValue("clubID"))
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, FollowerCountResponse{Count: count})
}
