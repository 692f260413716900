package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"strings"
	"time"

	"github.com/thanhpk/randstr"

	"privacypage-api/ledger"
	"privacypage-api/models"
)

// licenseKeyBytes yields 16 hex characters per key.
const licenseKeyBytes = 8

// Verifier checks gateway payment signatures, mints license keys, and records
// verified purchases in the ledger.
type Verifier struct {
	keySecret string
	keyPrefix string
	store     ledger.PurchaseStore
	now       func() time.Time
}

// NewVerifier builds a verifier over the gateway secret and purchase store.
func NewVerifier(keySecret, keyPrefix string, store ledger.PurchaseStore) *Verifier {
	return &Verifier{keySecret: keySecret, keyPrefix: keyPrefix, store: store, now: time.Now}
}

// VerifySignature reports whether the signature matches
// HMAC-SHA256(secret, orderID + "|" + paymentID) in lowercase hex.
func (v *Verifier) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(v.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// MintLicenseKey returns a fresh license key: the configured prefix followed
// by uppercase hex.
func (v *Verifier) MintLicenseKey() string {
	return v.keyPrefix + strings.ToUpper(randstr.Hex(licenseKeyBytes))
}

// Verify checks the payment signature and, on success, issues a license key
// and records the purchase. Re-verifying an already-recorded payment returns
// the original key instead of minting a second one. A ledger failure after a
// valid signature still returns the key, flagged recorded:false.
func (v *Verifier) Verify(ctx context.Context, req models.VerifyPaymentRequest) models.VerifyPaymentResponse {
	if req.OrderID == "" || req.PaymentID == "" || req.Signature == "" {
		return models.VerifyPaymentResponse{Verified: false, Error: "Missing payment details"}
	}
	if !v.VerifySignature(req.OrderID, req.PaymentID, req.Signature) {
		return models.VerifyPaymentResponse{Verified: false, Error: "Invalid signature"}
	}

	if existing, err := v.store.GetByOrderAndPayment(ctx, req.OrderID, req.PaymentID); err == nil {
		return models.VerifyPaymentResponse{
			Verified:   true,
			LicenseKey: existing.LicenseKey,
			Recorded:   true,
		}
	} else if err != ledger.ErrNotFound {
		log.Printf("failed to look up purchase for order %v: %v", req.OrderID, err.Error())
	}

	rec := models.PurchaseRecord{
		Email:      req.Email,
		LicenseKey: v.MintLicenseKey(),
		PaymentID:  req.PaymentID,
		OrderID:    req.OrderID,
		DocType:    req.DocType,
		Amount:     req.Amount,
		Currency:   req.Currency,
		CreatedAt:  v.now().UTC(),
	}

	recorded := true
	if err := v.store.Insert(ctx, rec); err != nil {
		log.Printf("failed to record purchase for order %v, retrying: %v", req.OrderID, err.Error())
		if err := v.store.Insert(ctx, rec); err != nil {
			log.Printf("failed to record purchase for order %v: %v", req.OrderID, err.Error())
			recorded = false
		}
	}

	return models.VerifyPaymentResponse{
		Verified:   true,
		LicenseKey: rec.LicenseKey,
		Recorded:   recorded,
	}
}
