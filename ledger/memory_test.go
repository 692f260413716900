package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"privacypage-api/models"
)

func TestMemoryStoreRejectsDuplicatePair(t *testing.T) {
	store := NewMemoryStore()
	rec := models.PurchaseRecord{
		OrderID:    "o1",
		PaymentID:  "p1",
		LicenseKey: "PP-AAAA",
		CreatedAt:  time.Now().UTC(),
	}
	require.NoError(t, store.Insert(context.Background(), rec))

	rec.LicenseKey = "PP-BBBB"
	assert.Error(t, store.Insert(context.Background(), rec))
}

func TestMemoryStoreListByEmailOrdering(t *testing.T) {
	store := NewMemoryStore()
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	// inserted oldest-last to prove ordering is by timestamp, not insertion
	require.NoError(t, store.Insert(context.Background(), models.PurchaseRecord{
		Email: "a@b.com", OrderID: "o1", PaymentID: "p1", CreatedAt: base.Add(time.Hour),
	}))
	require.NoError(t, store.Insert(context.Background(), models.PurchaseRecord{
		Email: "a@b.com", OrderID: "o2", PaymentID: "p2", CreatedAt: base,
	}))

	recs, err := store.ListByEmail(context.Background(), "a@b.com")
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "o1", recs[0].OrderID)
	assert.Equal(t, "o2", recs[1].OrderID)
}

func TestMemoryStoreLookups(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Insert(context.Background(), models.PurchaseRecord{
		Email: "a@b.com", OrderID: "o1", PaymentID: "p1", LicenseKey: "PP-AAAA",
	}))

	rec, err := store.GetByLicenseKey(context.Background(), "PP-AAAA")
	require.NoError(t, err)
	assert.Equal(t, "o1", rec.OrderID)

	_, err = store.GetByLicenseKey(context.Background(), "PP-NOPE")
	assert.ErrorIs(t, err, ErrNotFound)

	rec, err = store.GetByOrderAndPayment(context.Background(), "o1", "p1")
	require.NoError(t, err)
	assert.Equal(t, "PP-AAAA", rec.LicenseKey)

	_, err = store.GetByOrderAndPayment(context.Background(), "o1", "p2")
	assert.ErrorIs(t, err, ErrNotFound)
}
