// Package abuse flags shops whose recent bookings look like abuse.
package abuse

import (
	"context"
	"math"
	"sort"
	"time"

	"motoservice-be/internal/entity"
	"motoservice-be/internal/pkg/logger"
	"motoservice-be/internal/repository/specification"
	"motoservice-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const (
	RecentBookingLimit = 100
	RecentWindow       = 30 * 24 * time.Hour
	ReportLimit        = 20

	noShowThreshold       = 0.20
	noShowHighThreshold   = 0.40
	cancelThreshold       = 0.15
	cancelHighThreshold   = 0.30
	lowRatingThreshold    = 3.0
	lowRatingHighBoundary = 2.0
	highRiskNoShowShare   = 0.70
)

type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

var severityRank = map[Severity]int{
	SeverityHigh:   0,
	SeverityMedium: 1,
	SeverityLow:    2,
}

const (
	FlagHighNoShow       = "High No-Show Rate"
	FlagHighCancellation = "High Cancellation Rate"
	FlagLowRating        = "Low Customer Rating"
)

type Flag struct {
	ShopId   uuid.UUID
	ShopName string
	Type     string
	Severity Severity
	// Count is the number of offending bookings, or a synthetic weight for rating flags
	Count int
	Rate  float64
}

type HighRiskShop struct {
	ShopId      uuid.UUID
	ShopName    string
	NoShowCount int64
	TotalCount  int64
	NoShowRate  float64
}

// Scorer reads shops and bookings through the caller's unit of work.
type Scorer struct {
	logger logger.ILogger
}

func NewScorer(logger logger.ILogger) *Scorer {
	return &Scorer{logger: logger}
}

// ScoreShop returns the flags of one shop given its recent bookings.
// Bookings created before now-RecentWindow are ignored.
func ScoreShop(shop *entity.Shop, bookings []*entity.Booking, now time.Time) []Flag {
	var flags []Flag

	cutoff := now.Add(-RecentWindow)
	var recent, noShows, cancelled int
	for _, b := range bookings {
		if b.CreatedAt.Before(cutoff) {
			continue
		}
		recent++
		switch b.Status {
		case entity.BookingStatusNoShow:
			noShows++
		case entity.BookingStatusCancelled:
			cancelled++
		}
	}

	if recent > 0 {
		noShowRate := float64(noShows) / float64(recent)
		if noShowRate > noShowThreshold {
			severity := SeverityMedium
			if noShowRate > noShowHighThreshold {
				severity = SeverityHigh
			}
			flags = append(flags, Flag{ShopId: shop.Id, ShopName: shop.Name, Type: FlagHighNoShow, Severity: severity, Count: noShows, Rate: noShowRate})
		}

		cancelRate := float64(cancelled) / float64(recent)
		if cancelRate > cancelThreshold {
			severity := SeverityMedium
			if cancelRate > cancelHighThreshold {
				severity = SeverityHigh
			}
			flags = append(flags, Flag{ShopId: shop.Id, ShopName: shop.Name, Type: FlagHighCancellation, Severity: severity, Count: cancelled, Rate: cancelRate})
		}
	}

	if shop.Rating < lowRatingThreshold {
		severity := SeverityMedium
		if shop.Rating < lowRatingHighBoundary {
			severity = SeverityHigh
		}
		flags = append(flags, Flag{
			ShopId:   shop.Id,
			ShopName: shop.Name,
			Type:     FlagLowRating,
			Severity: severity,
			Count:    int(math.Floor((5 - shop.Rating) * 10)),
			Rate:     shop.Rating,
		})
	}

	return flags
}

// Rank sorts flags by severity, keeping input order within a severity, and keeps the first ReportLimit.
func Rank(flags []Flag) []Flag {
	sort.SliceStable(flags, func(i, j int) bool {
		return severityRank[flags[i].Severity] < severityRank[flags[j].Severity]
	})
	if len(flags) > ReportLimit {
		flags = flags[:ReportLimit]
	}
	return flags
}

// Report scores every shop and returns the merged, ranked flags.
func (s *Scorer) Report(ctx context.Context, uow unitofwork.UnitOfWork, now time.Time) ([]Flag, error) {
	shops, err := uow.ShopRepository().FindAll(ctx, specification.OrderBy{Field: "created_at"})
	if err != nil {
		return nil, err
	}

	var flags []Flag
	for _, shop := range shops {
		bookings, err := uow.BookingRepository().FindAll(ctx,
			specification.ByShopID{ShopID: shop.Id},
			specification.OrderBy{Field: "created_at", Desc: true},
			specification.Limit{N: RecentBookingLimit},
		)
		if err != nil {
			return nil, err
		}
		flags = append(flags, ScoreShop(shop, bookings, now)...)
	}

	ranked := Rank(flags)
	s.logger.Info("ABUSE", "Abuse report generated", map[string]interface{}{
		"shops":    len(shops),
		"flags":    len(flags),
		"returned": len(ranked),
	})
	return ranked, nil
}

// HighRiskShops returns shops whose all-time no-show share exceeds 70%.
func (s *Scorer) HighRiskShops(ctx context.Context, uow unitofwork.UnitOfWork) ([]HighRiskShop, error) {
	shops, err := uow.ShopRepository().FindAll(ctx, specification.OrderBy{Field: "created_at"})
	if err != nil {
		return nil, err
	}

	result := []HighRiskShop{}
	for _, shop := range shops {
		total, err := uow.BookingRepository().Count(ctx, specification.ByShopID{ShopID: shop.Id})
		if err != nil {
			return nil, err
		}
		if total == 0 {
			continue
		}
		noShows, err := uow.BookingRepository().Count(ctx,
			specification.ByShopID{ShopID: shop.Id},
			specification.ByStatus{Status: entity.BookingStatusNoShow},
		)
		if err != nil {
			return nil, err
		}

		rate := float64(noShows) / float64(total)
		if rate > highRiskNoShowShare {
			result = append(result, HighRiskShop{
				ShopId:      shop.Id,
				ShopName:    shop.Name,
				NoShowCount: noShows,
				TotalCount:  total,
				NoShowRate:  rate,
			})
		}
	}
	return result, nil
}
