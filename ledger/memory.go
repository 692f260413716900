package ledger

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"privacypage-api/models"
)

// MemoryStore is an in-process PurchaseStore. It backs tests and local runs
// that have no database.
type MemoryStore struct {
	mu   sync.Mutex
	recs []models.PurchaseRecord

	// FailInserts makes the next N Insert calls fail, for exercising the
	// verifier's retry and recorded:false paths.
	FailInserts int
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Insert(ctx context.Context, rec models.PurchaseRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailInserts > 0 {
		s.FailInserts--
		return fmt.Errorf("insert unavailable")
	}
	for _, existing := range s.recs {
		if existing.OrderID == rec.OrderID && existing.PaymentID == rec.PaymentID {
			return fmt.Errorf("duplicate purchase for order %v payment %v", rec.OrderID, rec.PaymentID)
		}
	}
	s.recs = append(s.recs, rec)
	return nil
}

func (s *MemoryStore) GetByLicenseKey(ctx context.Context, key string) (models.PurchaseRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.recs {
		if rec.LicenseKey == key {
			return rec, nil
		}
	}
	return models.PurchaseRecord{}, ErrNotFound
}

func (s *MemoryStore) ListByEmail(ctx context.Context, email string) ([]models.PurchaseRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var recs []models.PurchaseRecord
	for _, rec := range s.recs {
		if rec.Email == email {
			recs = append(recs, rec)
		}
	}
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].CreatedAt.After(recs[j].CreatedAt)
	})
	return recs, nil
}

func (s *MemoryStore) GetByOrderAndPayment(ctx context.Context, orderID, paymentID string) (models.PurchaseRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.recs {
		if rec.OrderID == orderID && rec.PaymentID == paymentID {
			return rec, nil
		}
	}
	return models.PurchaseRecord{}, ErrNotFound
}
