package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"campusevents/internal/delivery/http/helpers"
	"campusevents/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSearchService implements domain.SearchService for handler tests.
type fakeSearchService struct {
	result    *domain.SearchResult
	err       error
	lastQuery string
	lastLimit int
}

func (f *fakeSearchService) Search(ctx context.Context, query string, limit int) (*domain.SearchResult, error) {
	f.lastQuery = query
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func TestSearchController_Search(t *testing.T) {
	t.Run("returns both buckets", func(t *testing.T) {
		svc := &fakeSearchService{result: &domain.SearchResult{
			Events: []*domain.Event{{ID: "ev-1", Title: "Free Food Friday"}},
			Clubs:  []*domain.Account{{ID: "club-1", Name: "Food Co-op", Role: domain.RoleClub}},
		}}
		c := NewSearchController(testLogger, svc)

		rec := httptest.NewRecorder()
		c.Search(rec, httptest.NewRequest(http.MethodGet, "/search?q=food", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "food", svc.lastQuery)
		assert.Equal(t, helpers.DefaultLimit, svc.lastLimit)

		var resp struct {
			Data domain.SearchResult `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Data.Events, 1)
		require.Len(t, resp.Data.Clubs, 1)
		assert.Equal(t, "Free Food Friday", resp.Data.Events[0].Title)
	})

	t.Run("blank query is a 400", func(t *testing.T) {
		svc := &fakeSearchService{err: fmt.Errorf("%w: query must not be blank", domain.ErrInvalidInput)}
		c := NewSearchController(testLogger, svc)

		rec := httptest.NewRecorder()
		c.Search(rec, httptest.NewRequest(http.MethodGet, "/search?q=", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("limit is clamped", func(t *testing.T) {
		svc := &fakeSearchService{result: &domain.SearchResult{Events: []*domain.Event{}, Clubs: []*domain.Account{}}}
		c := NewSearchController(testLogger, svc)

		c.Search(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/search?q=x&limit=500", nil))
		assert.Equal(t, helpers.MaxLimit, svc.lastLimit)

		c.Search(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/search?q=x&limit=junk", nil))
		assert.Equal(t, helpers.DefaultLimit, svc.lastLimit)
	})
}
