package services

import (
	"context"

	"photofolio_backend/internal/repositories"
	"photofolio_backend/internal/services/dto"
	"photofolio_backend/pkg/apperrors"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type DashboardService interface {
	Stats(ctx context.Context, db *gorm.DB) (*dto.DashboardStatsResponse, error)
}

type dashboardService struct {
	dashboardRepo repositories.DashboardRepository
}

func NewDashboardService(dashboardRepo repositories.DashboardRepository) DashboardService {
	return &dashboardService{dashboardRepo: dashboardRepo}
}

// Stats fans out the seven content counts concurrently. Empty tables yield
// zeros, never an error.
func (s *dashboardService) Stats(ctx context.Context, db *gorm.DB) (*dto.DashboardStatsResponse, error) {
	var stats dto.DashboardStatsResponse

	g, _ := errgroup.WithContext(ctx)

	counts := []struct {
		dst   *int64
		count func(*gorm.DB) (int64, error)
	}{
		{&stats.Users, s.dashboardRepo.CountProfiles},
		{&stats.Locations, s.dashboardRepo.CountLocations},
		{&stats.Workshops, s.dashboardRepo.CountWorkshops},
		{&stats.PortfolioItems, s.dashboardRepo.CountPortfolioItems},
		{&stats.BTSVideos, s.dashboardRepo.CountVideos},
		{&stats.Coupons, s.dashboardRepo.CountCoupons},
		{&stats.Comments, s.dashboardRepo.CountVisibleComments},
	}

	for _, c := range counts {
		c := c
		g.Go(func() error {
			// Each goroutine gets its own session so the queries do not
			// share statement state.
			handle := db
			if handle != nil {
				handle = db.Session(&gorm.Session{NewDB: true})
			}
			n, err := c.count(handle)
			if err != nil {
				return err
			}
			*c.dst = n
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, apperrors.StoreError(err, "dashboard")
	}

	return &stats, nil
}
