package service

import (
	"context"
	"encoding/json"

	"motoservice-be/internal/dto"
	"motoservice-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService retries assignment for a shop whenever one of its workers becomes available.
type consumerService struct {
	subscriber message.Subscriber
	topicName  string
	assigner   IAssignmentService
	logger     logger.ILogger
}

func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	assigner IAssignmentService,
	logger logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		topicName:  topicName,
		assigner:   assigner,
		logger:     logger,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.WorkerAvailableMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("SWEEPER", "Failed to unmarshal worker message", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		// Malformed payloads would never succeed on redelivery
		msg.Ack()
		return
	}

	res, err := cs.assigner.SweepShop(ctx, payload.ShopId)
	if err != nil {
		cs.logger.Error("SWEEPER", "Shop sweep failed", map[string]interface{}{
			"shop_id":   payload.ShopId.String(),
			"worker_id": payload.WorkerId.String(),
			"error":     err.Error(),
		})
		// Left to the periodic sweep
		msg.Ack()
		return
	}

	cs.logger.Debug("SWEEPER", "Shop sweep after worker became available", map[string]interface{}{
		"shop_id":  payload.ShopId.String(),
		"scanned":  res.Scanned,
		"assigned": res.Assigned,
	})
	msg.Ack()
}
