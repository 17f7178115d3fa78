package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStatsZeroFilledOnEmptyStore(t *testing.T) {
	svc := NewDashboardService(&fakeDashboardRepo{})

	stats, err := svc.Stats(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, stats.Users)
	assert.Zero(t, stats.Locations)
	assert.Zero(t, stats.Workshops)
	assert.Zero(t, stats.PortfolioItems)
	assert.Zero(t, stats.BTSVideos)
	assert.Zero(t, stats.Coupons)
	assert.Zero(t, stats.Comments)
}

func TestDashboardStatsCollectsAllCounts(t *testing.T) {
	svc := NewDashboardService(&fakeDashboardRepo{
		profiles:  3,
		locations: 5,
		workshops: 2,
		portfolio: 7,
		videos:    1,
		coupons:   4,
		comments:  9,
	})

	stats, err := svc.Stats(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Users)
	assert.Equal(t, int64(5), stats.Locations)
	assert.Equal(t, int64(2), stats.Workshops)
	assert.Equal(t, int64(7), stats.PortfolioItems)
	assert.Equal(t, int64(1), stats.BTSVideos)
	assert.Equal(t, int64(4), stats.Coupons)
	assert.Equal(t, int64(9), stats.Comments)
}
