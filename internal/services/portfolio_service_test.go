package services

import (
	"context"
	"testing"
	"time"

	"photofolio_backend/internal/models"
	"photofolio_backend/internal/services/dto"
	"photofolio_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPortfolioFixture(items ...*models.PortfolioItem) (PortfolioService, *fakePortfolioRepo, *fakeRecorder, *fakeStorage) {
	repo := newFakePortfolioRepo(items...)
	recorder := &fakeRecorder{}
	store := newFakeStorage()
	return NewPortfolioService(repo, recorder, store, "portfolio-images"), repo, recorder, store
}

func portfolioItem(id string, orderIndex int, visible bool, createdAt time.Time) *models.PortfolioItem {
	return &models.PortfolioItem{
		ID:         id,
		Title:      "Item " + id,
		ImageURL:   "https://cdn.test/portfolio-images/" + id + ".jpg",
		OrderIndex: orderIndex,
		Visible:    visible,
		CreatedAt:  createdAt,
	}
}

func TestPortfolioMutationsRejectNonAdmin(t *testing.T) {
	svc, repo, recorder, _ := newPortfolioFixture(portfolioItem("p1", 0, true, time.Now()))
	ctx := context.Background()
	before := repo.calls

	_, err := svc.CreatePortfolioItem(ctx, nil, viewerActor(), &dto.CreatePortfolioItemRequest{Title: "x", ImageURL: "u"})
	assert.ErrorIs(t, err, apperrors.ErrAdminRequired)

	_, err = svc.UpdatePortfolioItem(ctx, nil, nil, "p1", &dto.UpdatePortfolioItemRequest{})
	assert.ErrorIs(t, err, apperrors.ErrAdminRequired)

	err = svc.DeletePortfolioItem(ctx, nil, viewerActor(), "p1")
	assert.ErrorIs(t, err, apperrors.ErrAdminRequired)

	_, err = svc.PortfolioStats(ctx, nil, nil)
	assert.ErrorIs(t, err, apperrors.ErrAdminRequired)

	assert.Equal(t, before, repo.calls)
	assert.Empty(t, recorder.entries)
}

func TestListPortfolioOrdering(t *testing.T) {
	now := time.Now()
	older := now.Add(-time.Hour)

	// Two items share order_index 1; the newer one wins the tiebreak.
	svc, _, _, _ := newPortfolioFixture(
		portfolioItem("c", 2, true, now),
		portfolioItem("a", 1, true, older),
		portfolioItem("b", 1, true, now),
	)

	items, err := svc.ListPortfolio(context.Background(), nil, nil, &dto.ListPortfolioRequest{})
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "b", items[0].ID)
	assert.Equal(t, "a", items[1].ID)
	assert.Equal(t, "c", items[2].ID)
}

func TestListPortfolioHiddenVisibility(t *testing.T) {
	svc, _, _, _ := newPortfolioFixture(
		portfolioItem("visible", 0, true, time.Now()),
		portfolioItem("hidden", 1, false, time.Now()),
	)
	ctx := context.Background()

	// Anonymous callers never see hidden items, flag or not.
	items, err := svc.ListPortfolio(ctx, nil, nil, &dto.ListPortfolioRequest{IncludeHidden: true})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "visible", items[0].ID)

	// Same for ordinary authenticated viewers.
	items, err = svc.ListPortfolio(ctx, nil, viewerActor(), &dto.ListPortfolioRequest{IncludeHidden: true})
	require.NoError(t, err)
	require.Len(t, items, 1)

	// Admins get hidden items only when they ask.
	items, err = svc.ListPortfolio(ctx, nil, adminActor(), &dto.ListPortfolioRequest{})
	require.NoError(t, err)
	require.Len(t, items, 1)

	items, err = svc.ListPortfolio(ctx, nil, adminActor(), &dto.ListPortfolioRequest{IncludeHidden: true})
	require.NoError(t, err)
	require.Len(t, items, 2)
}

func TestCreatePortfolioItemDefaultsVisible(t *testing.T) {
	svc, _, recorder, _ := newPortfolioFixture()

	resp, err := svc.CreatePortfolioItem(context.Background(), nil, adminActor(), &dto.CreatePortfolioItemRequest{
		Title:    "New",
		ImageURL: "https://cdn.test/portfolio-images/new.jpg",
	})
	require.NoError(t, err)
	assert.True(t, resp.Visible)
	assert.Equal(t, 0, resp.OrderIndex)
	require.Len(t, recorder.entries, 1)
	assert.Equal(t, "portfolio", recorder.entries[0].table)
}

func TestDeletePortfolioItemRemovesOwnBucketBlobOnly(t *testing.T) {
	inBucket := portfolioItem("p1", 0, true, time.Now())
	external := portfolioItem("p2", 1, true, time.Now())
	external.ImageURL = "https://images.example.com/other/p2.jpg"

	svc, repo, _, store := newPortfolioFixture(inBucket, external)
	ctx := context.Background()
	admin := adminActor()

	require.NoError(t, svc.DeletePortfolioItem(ctx, nil, admin, "p1"))
	require.Len(t, store.ops, 1)
	assert.Equal(t, "delete", store.ops[0].op)
	assert.Equal(t, "portfolio-images", store.ops[0].bucket)
	assert.Equal(t, "p1.jpg", store.ops[0].path)

	// External image URL: row goes, blob store untouched.
	require.NoError(t, svc.DeletePortfolioItem(ctx, nil, admin, "p2"))
	assert.Len(t, store.ops, 1)
	assert.Empty(t, repo.items)
}

func TestPortfolioStats(t *testing.T) {
	now := time.Now()
	svc, _, _, _ := newPortfolioFixture(
		portfolioItem("p1", 0, true, now),
		portfolioItem("p2", 1, false, now.Add(-30*24*time.Hour)),
	)

	stats, err := svc.PortfolioStats(context.Background(), nil, adminActor())
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalItems)
	assert.Equal(t, int64(1), stats.VisibleItems)
	assert.Equal(t, int64(1), stats.HiddenItems)
	assert.Equal(t, int64(1), stats.RecentItems)
}
