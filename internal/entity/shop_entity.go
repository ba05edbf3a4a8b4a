package entity

import (
	"time"

	"github.com/google/uuid"
)

type Shop struct {
	Id        uuid.UUID
	OwnerId   uuid.UUID
	Name      string
	Rating    float64
	CreatedAt time.Time
}

type Worker struct {
	Id          uuid.UUID
	ShopId      uuid.UUID
	Name        string
	Rating      float64
	IsAvailable bool
	Phone       string
	Location    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ShopService is an entry of a shop's service catalog.
type ShopService struct {
	Id     uuid.UUID
	ShopId uuid.UUID
	Name   string
	Price  float64
}
