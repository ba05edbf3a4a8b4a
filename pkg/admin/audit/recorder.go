// Package audit appends admin log entries for booking transitions.
package audit

import (
	"context"
	"time"

	"motoservice-be/internal/entity"
	"motoservice-be/internal/pkg/logger"
	"motoservice-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type Recorder interface {
	Record(ctx context.Context, actor entity.Actor, action string, subjectId uuid.UUID, details map[string]interface{})
}

// StoreRecorder writes entries outside of any business transaction.
// Call it only after the transition it describes has committed.
type StoreRecorder struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewStoreRecorder(uowFactory unitofwork.RepositoryFactory, logger logger.ILogger) *StoreRecorder {
	return &StoreRecorder{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Record never fails the caller; a failed append is logged and dropped.
func (r *StoreRecorder) Record(ctx context.Context, actor entity.Actor, action string, subjectId uuid.UUID, details map[string]interface{}) {
	uow := r.uowFactory.NewUnitOfWork(ctx)

	entry := &entity.AdminLog{
		Id:        uuid.New(),
		ActorId:   actor.Id,
		ActorRole: actor.Role,
		Action:    action,
		SubjectId: subjectId,
		Details:   details,
		CreatedAt: time.Now().UTC(),
	}

	if err := uow.AdminLogRepository().Create(ctx, entry); err != nil {
		r.logger.Error("AUDIT", "Failed to append admin log", map[string]interface{}{
			"error":      err.Error(),
			"action":     action,
			"subject_id": subjectId.String(),
			"actor_id":   actor.Id.String(),
		})
	}
}
