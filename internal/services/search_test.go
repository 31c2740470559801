package services

import (
	"context"
	"testing"
	"time"

	"campusevents/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchService_Search(t *testing.T) {
	ctx := context.Background()
	er := newFakeEventRepo()
	ar := newFakeAccountRepo()
	er.addEvent(&domain.Event{ID: "ev-1", Title: "Free Food Friday", Location: "Quad", Category: "social", OwnerID: "club-a", Date: "2025-10-03"})
	er.addEvent(&domain.Event{ID: "ev-2", Title: "Robotics Demo", Location: "Lab 2", Category: "academic", OwnerID: "club-b", Date: "2025-10-04"})
	ar.addAccount(&domain.Account{ID: "club-a", Email: "fc@uni.edu", Name: "Food Co-op", Role: domain.RoleClub, Approved: true})
	ar.addAccount(&domain.Account{ID: "club-b", Email: "rb@uni.edu", Name: "Robotics Society", Role: domain.RoleClub, Approved: true})

	svc := NewSearchService(er, ar, 5*time.Second)

	res, err := svc.Search(ctx, "food", 5)
	require.NoError(t, err)
	require.Len(t, res.Events, 1)
	assert.Equal(t, "Free Food Friday", res.Events[0].Title)
	require.Len(t, res.Clubs, 1)
	assert.Equal(t, "Food Co-op", res.Clubs[0].Name)
}

func TestSearchService_Search_BlankQueryRejected(t *testing.T) {
	ctx := context.Background()
	svc := NewSearchService(newFakeEventRepo(), newFakeAccountRepo(), 5*time.Second)

	for _, q := range []string{"", "   ", "\t\n"} {
		res, err := svc.Search(ctx, q, 5)
		require.Error(t, err, "query %q", q)
		require.ErrorIs(t, err, domain.ErrInvalidInput)
		require.Nil(t, res)
	}
}

func TestSearchService_Search_NoMatchesReturnsEmptyBuckets(t *testing.T) {
	ctx := context.Background()
	svc := NewSearchService(newFakeEventRepo(), newFakeAccountRepo(), 5*time.Second)

	res, err := svc.Search(ctx, "nothing here", 5)
	require.NoError(t, err)
	assert.NotNil(t, res.Events)
	assert.NotNil(t, res.Clubs)
	assert.Empty(t, res.Events)
	assert.Empty(t, res.Clubs)
}

func TestSearchService_Search_MatchesLocationDescriptionCategory(t *testing.T) {
	ctx := context.Background()
	er := newFakeEventRepo()
	er.addEvent(&domain.Event{ID: "ev-1", Title: "Weekly Run", Location: "Stadium Gate", Description: "bring water", Category: "sports", OwnerID: "club-a", Date: "2025-10-03"})
	svc := NewSearchService(er, newFakeAccountRepo(), 5*time.Second)

	for _, q := range []string{"stadium", "WATER", "sports"} {
		res, err := svc.Search(ctx, q, 5)
		require.NoError(t, err, "query %q", q)
		assert.Len(t, res.Events, 1, "query %q", q)
	}
}
