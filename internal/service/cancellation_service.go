package service

import (
	"context"
	"time"

	"motoservice-be/internal/dto"
	"motoservice-be/internal/entity"
	"motoservice-be/internal/pkg/apperror"
	"motoservice-be/internal/repository/unitofwork"
	"motoservice-be/pkg/access"
	"motoservice-be/pkg/booking/ledger"
)

type ICancellationService interface {
	Status(ctx context.Context, actor entity.Actor) (*dto.CancellationStatusResponse, error)
}

type cancellationService struct {
	uowFactory unitofwork.RepositoryFactory
	ledger     *ledger.Ledger
	now        func() time.Time
}

func NewCancellationService(uowFactory unitofwork.RepositoryFactory, ledger *ledger.Ledger, now func() time.Time) ICancellationService {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &cancellationService{
		uowFactory: uowFactory,
		ledger:     ledger,
		now:        now,
	}
}

func (s *cancellationService) Status(ctx context.Context, actor entity.Actor) (*dto.CancellationStatusResponse, error) {
	if !access.ReadOwnLedger.Allows(actor, access.Subject{}) {
		return nil, apperror.AuthorizationDenied("only customers have a cancellation ledger")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	now := s.now()

	token, err := s.ledger.Current(ctx, uow, actor.Id, now)
	if err != nil {
		return nil, err
	}
	streak, err := s.ledger.ConsecutiveCancellations(ctx, uow, actor.Id, now)
	if err != nil {
		return nil, err
	}

	return &dto.CancellationStatusResponse{
		TokensAvailable:          token.TokensAvailable,
		TokensUsed:               token.TokensUsed,
		LastResetDate:            token.LastResetDate,
		ConsecutiveCancellations: streak,
		CanCancel:                token.TokensAvailable > 0,
	}, nil
}
