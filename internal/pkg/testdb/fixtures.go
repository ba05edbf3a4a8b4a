package testdb

import (
	"context"
	"testing"
	"time"

	"motoservice-be/internal/entity"
	"motoservice-be/internal/repository/implementation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Shop inserts a shop owned by ownerId.
func Shop(t testing.TB, db *gorm.DB, ownerId uuid.UUID, rating float64) *entity.Shop {
	t.Helper()
	shop := &entity.Shop{OwnerId: ownerId, Name: "Shop " + ownerId.String()[:8], Rating: rating}
	if err := implementation.NewShopRepository(db).Create(context.Background(), shop); err != nil {
		t.Fatalf("create shop: %v", err)
	}
	return shop
}

// Service inserts a catalog entry for the shop.
func Service(t testing.TB, db *gorm.DB, shopId uuid.UUID, price float64) *entity.ShopService {
	t.Helper()
	svc := &entity.ShopService{ShopId: shopId, Name: "Oil change", Price: price}
	if err := implementation.NewShopRepository(db).CreateService(context.Background(), svc); err != nil {
		t.Fatalf("create service: %v", err)
	}
	return svc
}

// Worker inserts a worker of the shop.
func Worker(t testing.TB, db *gorm.DB, shopId uuid.UUID, rating float64, available bool) *entity.Worker {
	t.Helper()
	w := &entity.Worker{ShopId: shopId, Name: "Mechanic", Rating: rating, IsAvailable: available}
	if err := implementation.NewWorkerRepository(db).Create(context.Background(), w); err != nil {
		t.Fatalf("create worker: %v", err)
	}
	return w
}

// Booking inserts a booking row as-is, including historical statuses such as no-show.
func Booking(t testing.TB, db *gorm.DB, b *entity.Booking) *entity.Booking {
	t.Helper()
	if b.CustomerId == uuid.Nil {
		b.CustomerId = uuid.New()
	}
	if b.ServiceId == uuid.Nil {
		b.ServiceId = uuid.New()
	}
	if b.Status == "" {
		b.Status = entity.BookingStatusPending
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
	if err := implementation.NewBookingRepository(db).Create(context.Background(), b); err != nil {
		t.Fatalf("create booking: %v", err)
	}
	return b
}
