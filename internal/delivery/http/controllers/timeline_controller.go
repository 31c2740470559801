package controllers

import (
	"log/slog"
	"net/http"
	"time"

	ics "github.com/arran4/golang-ical"

	"campusevents/internal/delivery/http/helpers"
	"campusevents/internal/delivery/http/middleware"
	"campusevents/internal/domain"
)

type TimelineController struct {
	Logger  *slog.Logger
	Service domain.TimelineService
}

func NewTimelineController(logger *slog.Logger, svc domain.TimelineService) *TimelineController {
	return &TimelineController{Logger: logger, Service: svc}
}

// TimelineSuccessResponse is the success response envelope for GET /timeline (200).
type TimelineSuccessResponse struct {
	Data  []*domain.TimelineEntry `json:"data"`
	Error *helpers.APIError       `json:"error"`
}

// GetTimeline godoc
// @Summary Materialize the event timeline
// @Description Returns the viewer's aggregated timeline, sorted ascending by start instant. The mode query parameter selects the sources: all (default), saved, following. Club accounts always receive their own events regardless of mode. Anonymous viewers receive the public timeline.
// @Tags timeline
// @Produce json
// @Security BearerAuth
// @Param mode query string false "View mode: all, saved, following" default(all)
// @Success 200 {object} controllers.TimelineSuccessResponse "data contains the timeline entries"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 503 {object} helpers.APIResponse "error.code: sources_unavailable"
// @Router /timeline [get]
func (c *TimelineController) GetTimeline(w http.ResponseWriter, r *http.Request) {
	entries, err := c.materialize(r)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, entries)
}

// ExportTimelineICS godoc
// @Summary Export the timeline as an iCalendar feed
// @Description Same source selection as GET /timeline, rendered as text/calendar. Entries without a time of day become all-day events.
// @Tags timeline
// @Produce plain
// @Security BearerAuth
// @Param mode query string false "View mode: all, saved, following" default(all)
// @Success 200 {string} string "iCalendar document"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /timeline.ics [get]
func (c *TimelineController) ExportTimelineICS(w http.ResponseWriter, r *http.Request) {
	entries, err := c.materialize(r)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//campusevents//timeline//EN")
	now := time.Now()
	for _, entry := range entries {
		ev := cal.AddEvent(entry.Event.ID)
		ev.SetDtStampTime(now)
		ev.SetSummary(entry.Title)
		if entry.Event.Location != "" {
			ev.SetLocation(entry.Event.Location)
		}
		if entry.Event.Description != "" {
			ev.SetDescription(entry.Event.Description)
		}
		if entry.TimeTBD {
			ev.SetAllDayStartAt(entry.StartsAt)
			ev.SetAllDayEndAt(entry.StartsAt.AddDate(0, 0, 1))
			continue
		}
		ev.SetStartAt(entry.StartsAt)
		ev.SetEndAt(entry.EndsAt)
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="timeline.ics"`)
	if err := cal.SerializeTo(w); err != nil {
		c.Logger.ErrorContext(r.Context(), "ics serialization failed", "err", err)
	}
}

func (c *TimelineController) materialize(r *http.Request) ([]*domain.TimelineEntry, error) {
	mode := r.URL.Query().Get("mode")
	if mode == "" {
		mode = domain.ModeAll
	}
	viewer := middleware.ViewerFromContext(r.Context())
	return c.Service.Materialize(r.Context(), viewer, mode)
}
