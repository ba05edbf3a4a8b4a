package specification

import (
	"motoservice-be/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByShopID struct {
	ShopID uuid.UUID
}

func (s ByShopID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("shop_id = ?", s.ShopID)
}

type ByCustomerID struct {
	CustomerID uuid.UUID
}

func (s ByCustomerID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("customer_id = ?", s.CustomerID)
}

type ByBookingID struct {
	BookingID uuid.UUID
}

func (s ByBookingID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("booking_id = ?", s.BookingID)
}

type BySubjectID struct {
	SubjectID uuid.UUID
}

func (s BySubjectID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("subject_id = ?", s.SubjectID)
}

type ByStatus struct {
	Status entity.BookingStatus
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", string(s.Status))
}

// AvailableWorkers keeps workers that may receive a new assignment
type AvailableWorkers struct{}

func (s AvailableWorkers) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_available = ?", true)
}
