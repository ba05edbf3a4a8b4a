// Package assignment picks the worker for a confirmed booking.
package assignment

import (
	"context"

	"motoservice-be/internal/entity"
	"motoservice-be/internal/repository/specification"
	"motoservice-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// CandidateLimit caps how many available workers are considered.
const CandidateLimit = 5

type Policy struct{}

func NewPolicy() *Policy {
	return &Policy{}
}

// Candidates returns up to CandidateLimit available workers of the shop,
// best rated first and lowest id first among equal ratings.
func (p *Policy) Candidates(ctx context.Context, uow unitofwork.UnitOfWork, shopId uuid.UUID) ([]*entity.Worker, error) {
	return uow.WorkerRepository().FindAll(ctx,
		specification.ByShopID{ShopID: shopId},
		specification.AvailableWorkers{},
		specification.OrderBy{Field: "rating", Desc: true},
		specification.OrderBy{Field: "id"},
		specification.Limit{N: CandidateLimit},
	)
}

// Select returns the chosen worker, or nil when the shop has nobody available.
// The assignment is then deferred to the next sweep.
func (p *Policy) Select(ctx context.Context, uow unitofwork.UnitOfWork, shopId uuid.UUID) (*entity.Worker, error) {
	candidates, err := p.Candidates(ctx, uow, shopId)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	return candidates[0], nil
}
