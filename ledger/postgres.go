package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"privacypage-api/models"
)

// purchasesSchema is applied statement by statement at startup. The UNIQUE
// pair constraint is what makes double-recording a verified payment
// impossible even under races.
var purchasesSchema = []string{
	`CREATE TABLE IF NOT EXISTS purchases (
	id UUID PRIMARY KEY,
	email TEXT NOT NULL DEFAULT '',
	license_key TEXT NOT NULL,
	payment_id TEXT NOT NULL,
	order_id TEXT NOT NULL,
	doc_type TEXT NOT NULL,
	amount BIGINT NOT NULL DEFAULT 0,
	currency TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (order_id, payment_id)
)`,
	`CREATE INDEX IF NOT EXISTS purchases_license_key_idx ON purchases (license_key)`,
	`CREATE INDEX IF NOT EXISTS purchases_email_idx ON purchases (email)`,
}

// PostgresStore is the production PurchaseStore, backed by a pgx pool.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects to the database and ensures the purchases table
// exists.
func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.Connect(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %v", err.Error())
	}
	for _, stmt := range purchasesSchema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to ensure purchases schema: %v", err.Error())
		}
	}
	return &PostgresStore{pool: pool}, nil
}

// Close releases the underlying pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

func (s *PostgresStore) Insert(ctx context.Context, rec models.PurchaseRecord) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO purchases (id, email, license_key, payment_id, order_id, doc_type, amount, currency, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		uuid.NewString(), rec.Email, rec.LicenseKey, rec.PaymentID, rec.OrderID,
		rec.DocType, rec.Amount, rec.Currency, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert purchase: %v", err.Error())
	}
	return nil
}

func (s *PostgresStore) GetByLicenseKey(ctx context.Context, key string) (models.PurchaseRecord, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT email, license_key, payment_id, order_id, doc_type, amount, currency, created_at
		 FROM purchases WHERE license_key = $1 LIMIT 1`, key)
	return scanPurchase(row)
}

func (s *PostgresStore) ListByEmail(ctx context.Context, email string) ([]models.PurchaseRecord, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT email, license_key, payment_id, order_id, doc_type, amount, currency, created_at
		 FROM purchases WHERE email = $1 ORDER BY created_at DESC`, email)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchases: %v", err.Error())
	}
	defer rows.Close()

	var recs []models.PurchaseRecord
	for rows.Next() {
		var rec models.PurchaseRecord
		if err := rows.Scan(&rec.Email, &rec.LicenseKey, &rec.PaymentID, &rec.OrderID,
			&rec.DocType, &rec.Amount, &rec.Currency, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan purchase: %v", err.Error())
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read purchases: %v", err.Error())
	}
	return recs, nil
}

func (s *PostgresStore) GetByOrderAndPayment(ctx context.Context, orderID, paymentID string) (models.PurchaseRecord, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT email, license_key, payment_id, order_id, doc_type, amount, currency, created_at
		 FROM purchases WHERE order_id = $1 AND payment_id = $2 LIMIT 1`, orderID, paymentID)
	return scanPurchase(row)
}

func scanPurchase(row pgx.Row) (models.PurchaseRecord, error) {
	var rec models.PurchaseRecord
	err := row.Scan(&rec.Email, &rec.LicenseKey, &rec.PaymentID, &rec.OrderID,
		&rec.DocType, &rec.Amount, &rec.Currency, &rec.CreatedAt)
	if err == pgx.ErrNoRows {
		return rec, ErrNotFound
	}
	if err != nil {
		return rec, fmt.Errorf("failed to scan purchase: %v", err.Error())
	}
	return rec, nil
}
