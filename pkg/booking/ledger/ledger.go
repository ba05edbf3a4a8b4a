// Package ledger keeps the monthly cancellation quota of each customer.
package ledger

import (
	"context"
	"time"

	"motoservice-be/internal/entity"
	"motoservice-be/internal/pkg/apperror"
	"motoservice-be/internal/pkg/logger"
	"motoservice-be/internal/repository/specification"
	"motoservice-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const MonthlyQuota = 3

// Ledger reads and spends cancellation tokens through the caller's unit of work.
type Ledger struct {
	logger logger.ILogger
}

func NewLedger(logger logger.ILogger) *Ledger {
	return &Ledger{logger: logger}
}

// NeedsReset reports whether the calendar month of lastReset differs from now's.
func NeedsReset(lastReset, now time.Time) bool {
	lastReset = lastReset.In(now.Location())
	return lastReset.Year() != now.Year() || lastReset.Month() != now.Month()
}

// MonthStart is the first instant of now's calendar month.
func MonthStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}

// Current returns the customer's token row, creating it on first read and
// applying the monthly reset before anything looks at the balance.
func (l *Ledger) Current(ctx context.Context, uow unitofwork.UnitOfWork, customerId uuid.UUID, now time.Time) (*entity.CancellationToken, error) {
	repo := uow.CancellationRepository()

	token, err := repo.FindToken(ctx, customerId)
	if err != nil {
		return nil, apperror.DependencyFailure("failed to load cancellation tokens", err)
	}

	if token == nil {
		token = &entity.CancellationToken{
			CustomerId:      customerId,
			TokensAvailable: MonthlyQuota,
			TokensUsed:      0,
			LastResetDate:   now,
		}
		if err := repo.CreateToken(ctx, token); err != nil {
			return nil, apperror.DependencyFailure("failed to create cancellation tokens", err)
		}
		token, err = repo.FindToken(ctx, customerId)
		if err != nil || token == nil {
			return nil, apperror.DependencyFailure("failed to load cancellation tokens", err)
		}
		return token, nil
	}

	if NeedsReset(token.LastResetDate, now) {
		if err := repo.ResetToken(ctx, customerId, MonthlyQuota, now); err != nil {
			return nil, apperror.DependencyFailure("failed to reset cancellation tokens", err)
		}
		l.logger.Info("LEDGER", "Monthly cancellation quota reset", map[string]interface{}{
			"customer_id":     customerId.String(),
			"last_reset_date": token.LastResetDate,
		})
		token, err = repo.FindToken(ctx, customerId)
		if err != nil || token == nil {
			return nil, apperror.DependencyFailure("failed to load cancellation tokens", err)
		}
	}

	return token, nil
}

// Consume spends one token. It must run inside the transaction that also writes
// the cancellation record and the booking status, so all three commit together.
func (l *Ledger) Consume(ctx context.Context, uow unitofwork.UnitOfWork, customerId uuid.UUID, now time.Time) (*entity.CancellationToken, error) {
	token, err := l.Current(ctx, uow, customerId, now)
	if err != nil {
		return nil, err
	}
	if token.TokensAvailable <= 0 {
		return nil, apperror.QuotaExhausted("no cancellation tokens left this month")
	}

	ok, err := uow.CancellationRepository().ConsumeToken(ctx, customerId)
	if err != nil {
		return nil, apperror.DependencyFailure("failed to consume cancellation token", err)
	}
	if !ok {
		// Another cancellation spent the last token between read and update
		return nil, apperror.QuotaExhausted("no cancellation tokens left this month")
	}

	token.TokensAvailable--
	token.TokensUsed++
	return token, nil
}

// ConsecutiveCancellations counts the customer's cancellations since the start of now's month.
func (l *Ledger) ConsecutiveCancellations(ctx context.Context, uow unitofwork.UnitOfWork, customerId uuid.UUID, now time.Time) (int64, error) {
	count, err := uow.CancellationRepository().CountRecords(ctx,
		specification.ByCustomerID{CustomerID: customerId},
		specification.Since{Field: "cancelled_at", Time: MonthStart(now)},
	)
	if err != nil {
		return 0, apperror.DependencyFailure("failed to count cancellations", err)
	}
	return count, nil
}
