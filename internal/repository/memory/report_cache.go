package memory

import (
	"time"

	"motoservice-be/internal/dto"

	"github.com/patrickmn/go-cache"
)

const (
	abuseReportKey   = "abuse-report"
	highRiskShopsKey = "high-risk-shops"
)

// ReportCache keeps the admin abuse aggregates, which scan every shop, for a short TTL.
type ReportCache struct {
	cache *cache.Cache
}

func NewReportCache(ttl time.Duration) *ReportCache {
	// Expired items are purged every two TTLs
	return &ReportCache{
		cache: cache.New(ttl, 2*ttl),
	}
}

func (r *ReportCache) SaveAbuseReport(report *dto.AbuseReportResponse) {
	r.cache.Set(abuseReportKey, report, cache.DefaultExpiration)
}

func (r *ReportCache) GetAbuseReport() (*dto.AbuseReportResponse, bool) {
	if x, found := r.cache.Get(abuseReportKey); found {
		return x.(*dto.AbuseReportResponse), true
	}
	return nil, false
}

func (r *ReportCache) SaveHighRiskShops(shops []dto.HighRiskShopResponse) {
	r.cache.Set(highRiskShopsKey, shops, cache.DefaultExpiration)
}

func (r *ReportCache) GetHighRiskShops() ([]dto.HighRiskShopResponse, bool) {
	if x, found := r.cache.Get(highRiskShopsKey); found {
		return x.([]dto.HighRiskShopResponse), true
	}
	return nil, false
}

func (r *ReportCache) Invalidate() {
	r.cache.Flush()
}
