package dto

import "github.com/google/uuid"

type UpdateAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" validate:"required"`
}

type WorkerResponse struct {
	Id          uuid.UUID `json:"id"`
	ShopId      uuid.UUID `json:"shop_id"`
	Name        string    `json:"name"`
	Rating      float64   `json:"rating"`
	IsAvailable bool      `json:"is_available"`
}

// WorkerAvailableMessage is published on the worker events topic when a worker becomes available.
type WorkerAvailableMessage struct {
	WorkerId uuid.UUID `json:"worker_id"`
	ShopId   uuid.UUID `json:"shop_id"`
}
