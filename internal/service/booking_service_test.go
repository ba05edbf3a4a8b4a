package service

import (
	"context"
	"testing"
	"time"

	"motoservice-be/internal/dto"
	"motoservice-be/internal/entity"
	"motoservice-be/internal/pkg/apperror"
	"motoservice-be/internal/pkg/testdb"
	"motoservice-be/internal/repository/specification"
	"motoservice-be/pkg/booking/ledger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *fixture) createBooking(t *testing.T) *dto.BookingResponse {
	t.Helper()
	res, err := f.bookings.Create(context.Background(), f.customer, &dto.CreateBookingRequest{
		ShopId:    f.shop.Id,
		ServiceId: f.service.Id,
	})
	require.NoError(t, err)
	return res
}

func extra(v float64) *float64 {
	return &v
}

func TestBookingLifecycle_HappyPath(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	testdb.Worker(t, f.db, f.shop.Id, 3.9, true)
	best := testdb.Worker(t, f.db, f.shop.Id, 4.8, true)

	created := f.createBooking(t)
	assert.Equal(t, string(entity.BookingStatusPending), created.Status)
	assert.Equal(t, 100.0, created.ServiceCost)
	assert.Equal(t, 0.0, created.ExtraCharges)
	assert.Nil(t, created.WorkerId)

	confirmed, err := f.bookings.Confirm(ctx, f.customer, created.Id)
	require.NoError(t, err)
	assert.True(t, confirmed.Assigned)
	assert.Equal(t, string(entity.BookingStatusAssigned), confirmed.Booking.Status)
	require.NotNil(t, confirmed.Booking.WorkerId)
	assert.Equal(t, best.Id, *confirmed.Booking.WorkerId)

	started, err := f.bookings.Start(ctx, workerActor(best), created.Id)
	require.NoError(t, err)
	assert.Equal(t, string(entity.BookingStatusStarted), started.Status)
	require.NotNil(t, started.StartedAt)
	require.NotNil(t, started.EstimatedCompletionTime)
	assert.Equal(t, 30*time.Minute, started.EstimatedCompletionTime.Sub(*started.StartedAt))

	f.clock.Advance(45 * time.Minute)

	completed, err := f.bookings.Complete(ctx, workerActor(best), created.Id, &dto.CompleteBookingRequest{ExtraCharges: extra(50)})
	require.NoError(t, err)
	assert.Equal(t, string(entity.BookingStatusCompleted), completed.Booking.Status)
	assert.Equal(t, 45, completed.DurationMinutes)
	require.NotNil(t, completed.Booking.TotalCost)
	assert.Equal(t, 150.0, *completed.Booking.TotalCost)

	inv := completed.Invoice
	assert.Equal(t, created.Id, inv.BookingId)
	assert.Equal(t, 100.0, inv.BaseCost)
	assert.Equal(t, 50.0, inv.ExtraCharges)
	assert.Equal(t, 150.0, inv.TotalAmount)
	assert.Equal(t, 45.0, inv.PlatformCommission)
	assert.Equal(t, 105.0, inv.ShopCommission)
	assert.Equal(t, string(entity.InvoiceStatusIssued), inv.Status)

	stored := f.reload(t, created.Id)
	assert.Equal(t, entity.BookingStatusCompleted, stored.Status)
	require.NotNil(t, stored.CompletedAt)
	assert.Equal(t, 50.0, stored.ExtraCharges)

	fetched, err := f.bookings.GetInvoice(ctx, f.customer, created.Id)
	require.NoError(t, err)
	assert.Equal(t, inv.Id, fetched.Id)

	logs, err := f.admin.Logs(ctx, f.admin0, &dto.AdminLogListRequest{SubjectId: created.Id.String()})
	require.NoError(t, err)
	actions := make([]string, 0, len(logs.Items))
	for _, l := range logs.Items {
		actions = append(actions, l.Action)
	}
	assert.ElementsMatch(t, []string{
		"booking.create", "booking.confirm", "booking.assign", "booking.start", "booking.complete",
	}, actions)
}

func TestComplete_KeepsStoredExtraChargesWhenOmitted(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	w := testdb.Worker(t, f.db, f.shop.Id, 4, true)

	b := testdb.Booking(t, f.db, &entity.Booking{
		CustomerId:   f.customer.Id,
		ShopId:       f.shop.Id,
		ServiceId:    f.service.Id,
		WorkerId:     &w.Id,
		Status:       entity.BookingStatusStarted,
		ServiceCost:  99,
		ExtraCharges: 1,
	})

	res, err := f.bookings.Complete(ctx, workerActor(w), b.Id, &dto.CompleteBookingRequest{})
	require.NoError(t, err)
	assert.Equal(t, 100.0, res.Invoice.TotalAmount)
	assert.Equal(t, 30.0, res.Invoice.PlatformCommission)
	assert.Equal(t, 70.0, res.Invoice.ShopCommission)
	assert.Equal(t, 0, res.DurationMinutes)
}

func TestComplete_TwiceIssuesOneInvoice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	w := testdb.Worker(t, f.db, f.shop.Id, 4, true)

	created := f.createBooking(t)
	_, err := f.bookings.Confirm(ctx, f.customer, created.Id)
	require.NoError(t, err)
	_, err = f.bookings.Start(ctx, workerActor(w), created.Id)
	require.NoError(t, err)

	_, err = f.bookings.Complete(ctx, workerActor(w), created.Id, nil)
	require.NoError(t, err)

	_, err = f.bookings.Complete(ctx, f.admin0, created.Id, &dto.CompleteBookingRequest{ExtraCharges: extra(10)})
	require.Error(t, err)
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindInvalidStateTransition, appErr.Kind)
	assert.Equal(t, string(entity.BookingStatusCompleted), appErr.CurrentStatus)

	count, err := f.uowFactory.NewUnitOfWork(ctx).InvoiceRepository().Count(ctx, specification.ByBookingID{BookingID: created.Id})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestConfirm_NoWorkerLeavesBookingConfirmed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	testdb.Worker(t, f.db, f.shop.Id, 5, false)

	created := f.createBooking(t)
	res, err := f.bookings.Confirm(ctx, f.customer, created.Id)
	require.NoError(t, err)
	assert.False(t, res.Assigned)
	assert.Equal(t, string(entity.BookingStatusConfirmed), res.Booking.Status)
	assert.Nil(t, res.Booking.WorkerId)

	_, err = f.bookings.Confirm(ctx, f.customer, created.Id)
	assert.True(t, apperror.Is(err, apperror.KindInvalidStateTransition))
}

func TestStateMachine_RejectsSkippedSteps(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	w := testdb.Worker(t, f.db, f.shop.Id, 4, true)

	b := testdb.Booking(t, f.db, &entity.Booking{
		CustomerId:  f.customer.Id,
		ShopId:      f.shop.Id,
		ServiceId:   f.service.Id,
		WorkerId:    &w.Id,
		Status:      entity.BookingStatusAssigned,
		ServiceCost: 100,
	})

	_, err := f.bookings.Complete(ctx, workerActor(w), b.Id, nil)
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindInvalidStateTransition, appErr.Kind)
	assert.Equal(t, string(entity.BookingStatusAssigned), appErr.CurrentStatus)
	assert.Equal(t, entity.BookingStatusAssigned, f.reload(t, b.Id).Status)
}

func TestCancel_ConsumesTokenAndRefunds(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created := f.createBooking(t)
	res, err := f.bookings.Cancel(ctx, f.customer, created.Id, &dto.CancelBookingRequest{Reason: "changed plans"})
	require.NoError(t, err)
	assert.Equal(t, string(entity.BookingStatusCancelled), res.Booking.Status)
	assert.Equal(t, 100.0, res.RefundAmount)
	assert.Equal(t, 1, res.TokensDeducted)
	assert.Equal(t, ledger.MonthlyQuota-1, res.TokensAvailable)

	records, err := f.uowFactory.NewUnitOfWork(ctx).CancellationRepository().FindRecords(ctx, specification.ByBookingID{BookingID: created.Id})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "changed plans", records[0].Reason)
	assert.Equal(t, res.RecordId, records[0].Id)
}

func TestCancel_QuotaExhausted(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for i := 0; i < ledger.MonthlyQuota; i++ {
		b := f.createBooking(t)
		_, err := f.bookings.Cancel(ctx, f.customer, b.Id, nil)
		require.NoError(t, err)
	}

	last := f.createBooking(t)
	_, err := f.bookings.Cancel(ctx, f.customer, last.Id, nil)
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindQuotaExhausted))
	assert.Equal(t, entity.BookingStatusPending, f.reload(t, last.Id).Status)

	count, err := f.uowFactory.NewUnitOfWork(ctx).CancellationRepository().CountRecords(ctx, specification.ByCustomerID{CustomerID: f.customer.Id})
	require.NoError(t, err)
	assert.Equal(t, int64(ledger.MonthlyQuota), count)

	status, err := f.cancellation.Status(ctx, f.customer)
	require.NoError(t, err)
	assert.Equal(t, 0, status.TokensAvailable)
	assert.Equal(t, ledger.MonthlyQuota, status.TokensUsed)
	assert.False(t, status.CanCancel)
	assert.Equal(t, int64(ledger.MonthlyQuota), status.ConsecutiveCancellations)
}

func TestCancel_QuotaRefillsNextMonth(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for i := 0; i < ledger.MonthlyQuota; i++ {
		b := f.createBooking(t)
		_, err := f.bookings.Cancel(ctx, f.customer, b.Id, nil)
		require.NoError(t, err)
	}

	f.clock.Advance(31 * 24 * time.Hour)

	b := f.createBooking(t)
	res, err := f.bookings.Cancel(ctx, f.customer, b.Id, nil)
	require.NoError(t, err)
	assert.Equal(t, ledger.MonthlyQuota-1, res.TokensAvailable)
}

func TestCancel_AssignedBookingIsRejectedWithoutSpendingToken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	testdb.Worker(t, f.db, f.shop.Id, 4, true)

	created := f.createBooking(t)
	confirmed, err := f.bookings.Confirm(ctx, f.customer, created.Id)
	require.NoError(t, err)
	require.True(t, confirmed.Assigned)

	_, err = f.bookings.Cancel(ctx, f.customer, created.Id, nil)
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindInvalidStateTransition, appErr.Kind)
	assert.Equal(t, 409, appErr.HTTPStatus())
	assert.Equal(t, string(entity.BookingStatusAssigned), appErr.CurrentStatus)

	status, err := f.cancellation.Status(ctx, f.customer)
	require.NoError(t, err)
	assert.Equal(t, ledger.MonthlyQuota, status.TokensAvailable)
	assert.True(t, status.CanCancel)
}

func TestBookingAccess(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	w := testdb.Worker(t, f.db, f.shop.Id, 4, true)
	other := testdb.Worker(t, f.db, f.shop.Id, 1, false)

	created := f.createBooking(t)
	stranger := entity.Actor{Id: uuid.New(), Role: entity.RoleCustomer}
	otherOwner := entity.Actor{Id: uuid.New(), Role: entity.RoleOwner}

	_, err := f.bookings.Confirm(ctx, stranger, created.Id)
	assert.True(t, apperror.Is(err, apperror.KindAuthorizationDenied))

	_, err = f.bookings.Create(ctx, f.owner, &dto.CreateBookingRequest{ShopId: f.shop.Id, ServiceId: f.service.Id})
	assert.True(t, apperror.Is(err, apperror.KindAuthorizationDenied))

	_, err = f.bookings.Confirm(ctx, f.customer, created.Id)
	require.NoError(t, err)

	_, err = f.bookings.Start(ctx, workerActor(other), created.Id)
	assert.True(t, apperror.Is(err, apperror.KindAuthorizationDenied))

	_, err = f.bookings.Start(ctx, f.customer, created.Id)
	assert.True(t, apperror.Is(err, apperror.KindAuthorizationDenied))

	_, err = f.bookings.Get(ctx, f.owner, created.Id)
	assert.NoError(t, err)
	_, err = f.bookings.Get(ctx, workerActor(w), created.Id)
	assert.NoError(t, err)
	_, err = f.bookings.Get(ctx, otherOwner, created.Id)
	assert.True(t, apperror.Is(err, apperror.KindAuthorizationDenied))

	_, err = f.bookings.GetInvoice(ctx, f.customer, created.Id)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}

func TestCreate_RejectsServiceOfAnotherShop(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	otherShop := testdb.Shop(t, f.db, uuid.New(), 4)
	foreign := testdb.Service(t, f.db, otherShop.Id, 80)

	_, err := f.bookings.Create(ctx, f.customer, &dto.CreateBookingRequest{ShopId: f.shop.Id, ServiceId: foreign.Id})
	assert.True(t, apperror.Is(err, apperror.KindValidationFailure))

	_, err = f.bookings.Create(ctx, f.customer, &dto.CreateBookingRequest{ShopId: uuid.New(), ServiceId: foreign.Id})
	assert.True(t, apperror.Is(err, apperror.KindNotFound))

	_, err = f.bookings.Get(ctx, f.customer, uuid.New())
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}
