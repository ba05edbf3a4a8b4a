package assignment

import (
	"context"
	"testing"

	"motoservice-be/internal/pkg/testdb"
	"motoservice-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_BestAvailableWorker(t *testing.T) {
	db := testdb.New(t)
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(context.Background())
	shop := testdb.Shop(t, db, uuid.New(), 4.5)

	best := testdb.Worker(t, db, shop.Id, 4.8, true)
	testdb.Worker(t, db, shop.Id, 4.9, false)
	testdb.Worker(t, db, shop.Id, 4.5, true)

	// a better worker in another shop is never considered
	other := testdb.Shop(t, db, uuid.New(), 4.0)
	testdb.Worker(t, db, other.Id, 5.0, true)

	got, err := NewPolicy().Select(context.Background(), uow, shop.Id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, best.Id, got.Id)
}

func TestSelect_NobodyAvailable(t *testing.T) {
	db := testdb.New(t)
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(context.Background())
	shop := testdb.Shop(t, db, uuid.New(), 4.5)
	testdb.Worker(t, db, shop.Id, 4.9, false)

	got, err := NewPolicy().Select(context.Background(), uow, shop.Id)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCandidates_TieBreakAndLimit(t *testing.T) {
	db := testdb.New(t)
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(context.Background())
	shop := testdb.Shop(t, db, uuid.New(), 4.5)

	var ids []uuid.UUID
	for i := 0; i < CandidateLimit+2; i++ {
		w := testdb.Worker(t, db, shop.Id, 4.0, true)
		ids = append(ids, w.Id)
	}

	got, err := NewPolicy().Candidates(context.Background(), uow, shop.Id)
	require.NoError(t, err)
	require.Len(t, got, CandidateLimit)

	lowest := ids[0]
	for _, id := range ids[1:] {
		if id.String() < lowest.String() {
			lowest = id
		}
	}
	assert.Equal(t, lowest, got[0].Id, "equal ratings resolve to the lowest worker id")
	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i-1].Id.String(), got[i].Id.String())
	}
}
