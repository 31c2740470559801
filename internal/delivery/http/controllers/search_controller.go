package controllers

import (
	"log/slog"
	"net/http"

	"campusevents/internal/delivery/http/helpers"
	"campusevents/internal/domain"
)

type SearchController struct {
	Logger  *slog.Logger
	Service domain.SearchService
}

func NewSearchController(logger *slog.Logger, svc domain.SearchService) *SearchController {
	return &SearchController{Logger: logger, Service: svc}
}

// SearchSuccessResponse is the success response envelope for GET /search (200).
type SearchSuccessResponse struct {
	Data  *domain.SearchResult `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// Search godoc
// @Summary Search events and clubs
// @Description Case-insensitive substring search. Events match on title, location, description, or category; clubs on name. A blank query is rejected.
// @Tags search
// @Produce json
// @Param q query string true "Search query"
// @Param limit query int false "Maximum results per bucket" default(20)
// @Success 200 {object} controllers.SearchSuccessResponse "data contains matched events and clubs"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /search [get]
func (c *SearchController) Search(w http.ResponseWriter, r *http.Request) {
	result, err := c.Service.Search(r.Context(), r.URL.Query().Get("q"), helpers.ParseLimit(r))
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, result)
}
