package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"motoservice-be/internal/entity"
	"motoservice-be/internal/pkg/logger"
	"motoservice-be/internal/pkg/testdb"
	"motoservice-be/internal/repository/memory"
	"motoservice-be/internal/repository/unitofwork"
	"motoservice-be/pkg/admin/abuse"
	"motoservice-be/pkg/admin/audit"
	adminEvents "motoservice-be/pkg/admin/events"
	"motoservice-be/pkg/booking/assignment"
	"motoservice-be/pkg/booking/ledger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeLease struct {
	granted bool
	calls   int
}

func (l *fakeLease) Acquire(context.Context) (bool, error) {
	l.calls++
	return l.granted, nil
}

type fakePublisherService struct {
	mu       sync.Mutex
	payloads [][]byte
}

func (p *fakePublisherService) Publish(_ context.Context, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.payloads = append(p.payloads, payload)
	return nil
}

type clock struct {
	now time.Time
}

func (c *clock) Now() time.Time {
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

type fixture struct {
	db           *gorm.DB
	log          logger.ILogger
	uowFactory   unitofwork.RepositoryFactory
	clock        *clock
	lease        *fakeLease
	publisher    *fakePublisherService
	assigner     IAssignmentService
	bookings     IBookingService
	cancellation ICancellationService
	workers      IWorkerService
	admin        IAdminService

	customer entity.Actor
	owner    entity.Actor
	admin0   entity.Actor
	shop     *entity.Shop
	service  *entity.ShopService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := testdb.New(t)
	log := logger.NewNopLogger()
	uowFactory := unitofwork.NewRepositoryFactory(db)
	c := &clock{now: time.Date(2025, 3, 5, 9, 0, 0, 0, time.UTC)}
	lease := &fakeLease{granted: true}
	pub := &fakePublisherService{}

	recorder := audit.NewStoreRecorder(uowFactory, log)
	events := adminEvents.NewNatsPublisher(nil, log)
	ldg := ledger.NewLedger(log)

	assigner := NewAssignmentService(uowFactory, assignment.NewPolicy(), recorder, events, lease, 50, log)

	f := &fixture{
		db:           db,
		log:          log,
		uowFactory:   uowFactory,
		clock:        c,
		lease:        lease,
		publisher:    pub,
		assigner:     assigner,
		bookings:     NewBookingService(uowFactory, assigner, ldg, recorder, events, log, c.Now),
		cancellation: NewCancellationService(uowFactory, ldg, c.Now),
		workers:      NewWorkerService(uowFactory, pub, recorder, log),
		admin:        NewAdminService(uowFactory, abuse.NewScorer(log), memory.NewReportCache(time.Minute), assigner, log, c.Now),
		customer:     entity.Actor{Id: uuid.New(), Role: entity.RoleCustomer},
		owner:        entity.Actor{Id: uuid.New(), Role: entity.RoleOwner},
		admin0:       entity.Actor{Id: uuid.New(), Role: entity.RoleAdmin},
	}
	f.shop = testdb.Shop(t, db, f.owner.Id, 4.5)
	f.service = testdb.Service(t, db, f.shop.Id, 100)
	return f
}

func workerActor(w *entity.Worker) entity.Actor {
	return entity.Actor{Id: w.Id, Role: entity.RoleWorker}
}

func (f *fixture) reload(t *testing.T, id uuid.UUID) *entity.Booking {
	t.Helper()
	b, err := findBooking(context.Background(), f.uowFactory.NewUnitOfWork(context.Background()).BookingRepository(), id)
	if err != nil {
		t.Fatalf("reload booking: %v", err)
	}
	return b
}
