package model

import (
	"time"

	"github.com/google/uuid"
)

type Shop struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerId   uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Rating    float64   `gorm:"type:decimal(3,2);not null;default:0"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Shop) TableName() string {
	return "shops"
}

type Worker struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShopId      uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Rating      float64   `gorm:"type:decimal(3,2);not null;default:0"`
	IsAvailable bool      `gorm:"not null;default:false;index"`
	Phone       string    `gorm:"type:varchar(32)"`
	Location    string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Worker) TableName() string {
	return "workers"
}

type ShopService struct {
	Id     uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShopId uuid.UUID `gorm:"type:uuid;not null;index"`
	Name   string    `gorm:"type:varchar(255);not null"`
	Price  float64   `gorm:"type:decimal(10,2);not null"`
}

func (ShopService) TableName() string {
	return "services"
}
