package service

import (
	"context"
	"encoding/json"

	"motoservice-be/internal/dto"
	"motoservice-be/internal/entity"
	"motoservice-be/internal/pkg/apperror"
	"motoservice-be/internal/pkg/logger"
	"motoservice-be/internal/repository/specification"
	"motoservice-be/internal/repository/unitofwork"
	"motoservice-be/pkg/access"
	"motoservice-be/pkg/admin/audit"

	"github.com/google/uuid"
)

type IWorkerService interface {
	SetAvailability(ctx context.Context, actor entity.Actor, workerId uuid.UUID, req *dto.UpdateAvailabilityRequest) (*dto.WorkerResponse, error)
}

type workerService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	recorder         audit.Recorder
	logger           logger.ILogger
}

func NewWorkerService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	recorder audit.Recorder,
	logger logger.ILogger,
) IWorkerService {
	return &workerService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		recorder:         recorder,
		logger:           logger,
	}
}

func (s *workerService) SetAvailability(ctx context.Context, actor entity.Actor, workerId uuid.UUID, req *dto.UpdateAvailabilityRequest) (*dto.WorkerResponse, error) {
	if req.IsAvailable == nil {
		return nil, apperror.ValidationFailure("is_available is required")
	}
	available := *req.IsAvailable

	uow := s.uowFactory.NewUnitOfWork(ctx)

	worker, err := uow.WorkerRepository().FindOne(ctx, specification.ByID{ID: workerId})
	if err != nil {
		return nil, apperror.DependencyFailure("failed to load worker", err)
	}
	if worker == nil {
		return nil, apperror.NotFound("worker not found")
	}

	subject := access.Subject{}
	if access.ManageWorker.NeedsShop(actor.Role) {
		shop, err := uow.ShopRepository().FindOne(ctx, specification.ByID{ID: worker.ShopId})
		if err != nil {
			return nil, apperror.DependencyFailure("failed to load shop", err)
		}
		subject.Shop = shop
	}
	if !access.ManageWorker.Allows(actor, subject) {
		return nil, apperror.AuthorizationDenied("you do not manage this worker")
	}

	if worker.IsAvailable == available {
		res := toWorkerResponse(worker)
		return &res, nil
	}

	if err := uow.WorkerRepository().UpdateAvailability(ctx, worker.Id, available); err != nil {
		return nil, apperror.DependencyFailure("failed to update worker availability", err)
	}
	worker.IsAvailable = available

	s.logger.Info("ASSIGNMENT", "Worker availability changed", map[string]interface{}{
		"worker_id":    worker.Id.String(),
		"shop_id":      worker.ShopId.String(),
		"is_available": available,
	})
	s.recorder.Record(ctx, actor, "worker.availability", worker.Id, map[string]interface{}{
		"is_available": available,
	})

	if available {
		payload, err := json.Marshal(dto.WorkerAvailableMessage{
			WorkerId: worker.Id,
			ShopId:   worker.ShopId,
		})
		if err == nil {
			err = s.publisherService.Publish(ctx, payload)
		}
		if err != nil {
			// The periodic sweep still picks the shop up
			s.logger.Warn("ASSIGNMENT", "Failed to publish worker availability", map[string]interface{}{
				"worker_id": worker.Id.String(),
				"error":     err.Error(),
			})
		}
	}

	res := toWorkerResponse(worker)
	return &res, nil
}
