// Package ledger persists completed purchases. Rows are append-only: a
// purchase is written once when payment verification succeeds and only ever
// read afterwards, for idempotent re-verification and purchase restore.
package ledger

import (
	"context"
	"errors"

	"privacypage-api/models"
)

// ErrNotFound is returned by lookups that match no purchase row.
var ErrNotFound = errors.New("purchase not found")

// PurchaseStore is the persistence boundary for the purchase ledger.
type PurchaseStore interface {
	// Insert writes one purchase row. Inserting the same (orderID,
	// paymentID) pair twice is a conflict error.
	Insert(ctx context.Context, rec models.PurchaseRecord) error

	// GetByLicenseKey returns the purchase minted with the given key.
	GetByLicenseKey(ctx context.Context, key string) (models.PurchaseRecord, error)

	// ListByEmail returns every purchase for the email, newest first.
	ListByEmail(ctx context.Context, email string) ([]models.PurchaseRecord, error)

	// GetByOrderAndPayment returns the purchase recorded for the gateway
	// pair, used to make payment verification idempotent.
	GetByOrderAndPayment(ctx context.Context, orderID, paymentID string) (models.PurchaseRecord, error)
}
