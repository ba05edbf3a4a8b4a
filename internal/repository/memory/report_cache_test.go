package memory

import (
	"testing"
	"time"

	"motoservice-be/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportCache_SaveGetInvalidate(t *testing.T) {
	c := NewReportCache(time.Minute)

	_, found := c.GetAbuseReport()
	assert.False(t, found)

	report := &dto.AbuseReportResponse{GeneratedAt: time.Now(), Flags: []dto.AbuseFlagResponse{{ShopId: uuid.New(), Type: "High No-Show Rate"}}}
	c.SaveAbuseReport(report)
	c.SaveHighRiskShops([]dto.HighRiskShopResponse{{ShopId: uuid.New()}})

	got, found := c.GetAbuseReport()
	require.True(t, found)
	assert.Same(t, report, got)

	shops, found := c.GetHighRiskShops()
	require.True(t, found)
	assert.Len(t, shops, 1)

	c.Invalidate()
	_, found = c.GetAbuseReport()
	assert.False(t, found)
}

func TestReportCache_Expires(t *testing.T) {
	c := NewReportCache(20 * time.Millisecond)
	c.SaveAbuseReport(&dto.AbuseReportResponse{})

	time.Sleep(40 * time.Millisecond)

	_, found := c.GetAbuseReport()
	assert.False(t, found)
}
