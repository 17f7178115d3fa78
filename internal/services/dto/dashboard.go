package dto

// DashboardStatsResponse aggregates content counts for the admin dashboard.
// Counts that fail to load are reported as zero rather than failing the whole
// response.
type DashboardStatsResponse struct {
	Users          int64 `json:"users"`
	Locations      int64 `json:"locations"`
	Workshops      int64 `json:"workshops"`
	PortfolioItems int64 `json:"portfolio_items"`
	BTSVideos      int64 `json:"bts_videos"`
	Coupons        int64 `json:"coupons"`
	Comments       int64 `json:"comments"`
}
