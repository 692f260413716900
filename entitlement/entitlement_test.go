package entitlement

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"privacypage-api/ledger"
	"privacypage-api/models"
)

func TestIsDocUnlockedORSemantics(t *testing.T) {
	var s State
	for _, docType := range models.DocumentTypes {
		assert.False(t, s.IsDocUnlocked(docType))
	}

	// bundle alone unlocks every document type
	s = State{BundleUnlocked: true}
	for _, docType := range models.DocumentTypes {
		assert.True(t, s.IsDocUnlocked(docType))
	}

	// the single pass alone also unlocks everything
	s = State{SinglePassUnlocked: true}
	for _, docType := range models.DocumentTypes {
		assert.True(t, s.IsDocUnlocked(docType))
	}

	// a per-type flag unlocks only its own type
	s = State{Docs: map[string]bool{models.DocTypeEula: true}}
	assert.True(t, s.IsDocUnlocked(models.DocTypeEula))
	assert.False(t, s.IsDocUnlocked(models.DocTypePrivacy))
	assert.False(t, s.IsDocUnlocked(models.DocTypeCookie))
}

func TestApplyPurchase(t *testing.T) {
	var s State
	s.ApplyPurchase(models.PurchaseRecord{DocType: models.DocTypeTos, LicenseKey: "PP-AAAA"})
	assert.True(t, s.IsDocUnlocked(models.DocTypeTos))
	assert.False(t, s.BundleUnlocked)
	assert.Equal(t, "PP-AAAA", s.LicenseKey)

	s.ApplyPurchase(models.PurchaseRecord{DocType: models.DocTypeProSingle, LicenseKey: "PP-BBBB"})
	assert.True(t, s.SinglePassUnlocked)
	// the first key wins
	assert.Equal(t, "PP-AAAA", s.LicenseKey)

	s.ApplyPurchase(models.PurchaseRecord{DocType: models.DocTypeBundle, LicenseKey: "PP-CCCC"})
	assert.True(t, s.BundleUnlocked)
}

func TestStateFrom(t *testing.T) {
	s := StateFrom([]models.PurchaseRecord{
		{DocType: models.DocTypeBundle, LicenseKey: "PP-NEWEST"},
		{DocType: models.DocTypePrivacy, LicenseKey: "PP-OLDER"},
	})
	assert.True(t, s.BundleUnlocked)
	assert.True(t, s.Docs[models.DocTypePrivacy])
	assert.Equal(t, "PP-NEWEST", s.LicenseKey)
}

func seedStore(t *testing.T) *ledger.MemoryStore {
	t.Helper()
	store := ledger.NewMemoryStore()
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	recs := []models.PurchaseRecord{
		{Email: "buyer@example.com", LicenseKey: "PP-1111111111111111", OrderID: "o1", PaymentID: "p1", DocType: models.DocTypePrivacy, CreatedAt: base},
		{Email: "buyer@example.com", LicenseKey: "PP-2222222222222222", OrderID: "o2", PaymentID: "p2", DocType: models.DocTypeTos, CreatedAt: base.Add(24 * time.Hour)},
		{Email: "buyer@example.com", LicenseKey: "PP-3333333333333333", OrderID: "o3", PaymentID: "p3", DocType: models.DocTypeBundle, CreatedAt: base.Add(48 * time.Hour)},
		{Email: "other@example.com", LicenseKey: "PP-4444444444444444", OrderID: "o4", PaymentID: "p4", DocType: models.DocTypeEula, CreatedAt: base},
	}
	for _, rec := range recs {
		require.NoError(t, store.Insert(context.Background(), rec))
	}
	return store
}

func TestRestoreByLicenseKey(t *testing.T) {
	svc := NewService(seedStore(t))

	resp, err := svc.Restore(context.Background(), models.RestoreRequest{LicenseKey: "PP-2222222222222222"})
	require.NoError(t, err)
	assert.True(t, resp.Found)
	require.Len(t, resp.Purchases, 1)
	assert.Equal(t, models.DocTypeTos, resp.Purchases[0].DocType)
	assert.Equal(t, "PP-2222222222222222", resp.Purchases[0].LicenseKey)
}

func TestRestoreByEmailReturnsAllNewestFirst(t *testing.T) {
	svc := NewService(seedStore(t))

	resp, err := svc.Restore(context.Background(), models.RestoreRequest{Email: "buyer@example.com"})
	require.NoError(t, err)
	assert.True(t, resp.Found)
	require.Len(t, resp.Purchases, 3)
	assert.Equal(t, models.DocTypeBundle, resp.Purchases[0].DocType)
	assert.Equal(t, models.DocTypeTos, resp.Purchases[1].DocType)
	assert.Equal(t, models.DocTypePrivacy, resp.Purchases[2].DocType)
}

func TestRestoreKeyTakesPrecedenceOverEmail(t *testing.T) {
	svc := NewService(seedStore(t))

	resp, err := svc.Restore(context.Background(), models.RestoreRequest{
		LicenseKey: "PP-4444444444444444",
		Email:      "buyer@example.com",
	})
	require.NoError(t, err)
	require.Len(t, resp.Purchases, 1)
	assert.Equal(t, models.DocTypeEula, resp.Purchases[0].DocType)
}

func TestRestoreUnknownKeyFallsBackToEmail(t *testing.T) {
	svc := NewService(seedStore(t))

	resp, err := svc.Restore(context.Background(), models.RestoreRequest{
		LicenseKey: "PP-DOESNOTEXIST0000",
		Email:      "other@example.com",
	})
	require.NoError(t, err)
	assert.True(t, resp.Found)
	require.Len(t, resp.Purchases, 1)
	assert.Equal(t, models.DocTypeEula, resp.Purchases[0].DocType)
}

func TestRestoreNotFound(t *testing.T) {
	svc := NewService(seedStore(t))

	resp, err := svc.Restore(context.Background(), models.RestoreRequest{Email: "nobody@example.com"})
	require.NoError(t, err)
	assert.False(t, resp.Found)
	assert.Empty(t, resp.Purchases)
}

func TestRestoreRequiresKeyOrEmail(t *testing.T) {
	svc := NewService(seedStore(t))
	_, err := svc.Restore(context.Background(), models.RestoreRequest{})
	assert.Error(t, err)
}
