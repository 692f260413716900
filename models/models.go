package models

import "time"

// Document types supported by the generators and the purchase flow.
const (
	DocTypePrivacy    = "privacy"
	DocTypeTos        = "tos"
	DocTypeEula       = "eula"
	DocTypeCookie     = "cookie"
	DocTypeDisclaimer = "disclaimer"

	// Purchase-only types: the bundle unlocks everything, pro-single is a
	// one-time purchase whose unlock flag is not tied to a document type.
	DocTypeBundle    = "bundle"
	DocTypeProSingle = "pro-single"
)

// DocumentTypes lists the five generatable document types.
var DocumentTypes = []string{
	DocTypePrivacy,
	DocTypeTos,
	DocTypeEula,
	DocTypeCookie,
	DocTypeDisclaimer,
}

// IsDocumentType reports whether t names a generatable document.
func IsDocumentType(t string) bool {
	for _, d := range DocumentTypes {
		if d == t {
			return true
		}
	}
	return false
}

// DocumentRequest is the structured answer set for a single generation
// request. Fields maps wizard field ids to their raw values; multi-select
// answers arrive comma-joined and are split via Selected.
type DocumentRequest struct {
	DocType string
	Fields  map[string]string
}

// Field returns the raw value for id, or fallback when empty or missing.
func (r DocumentRequest) Field(id, fallback string) string {
	if v, ok := r.Fields[id]; ok && v != "" {
		return v
	}
	return fallback
}

// Selected parses a multi-select field into its ordered option labels.
// The wizard joins selections with ", ".
func (r DocumentRequest) Selected(id string) []string {
	raw, ok := r.Fields[id]
	if !ok || raw == "" {
		return nil
	}
	return SplitSelections(raw)
}

// GeneratedDocument pairs a rendered markdown document with the request
// that produced it.
type GeneratedDocument struct {
	DocType  string          `json:"docType"`
	Markdown string          `json:"markdown"`
	Request  DocumentRequest `json:"-"`
}

// GenerateResponse is the wire shape for every generation endpoint. The
// field name is "policy" for all document types.
type GenerateResponse struct {
	Policy string `json:"policy"`
}

// PriceQuote is the localized price pair shown to a visitor.
type PriceQuote struct {
	Currency      string  `json:"currency"`
	Symbol        string  `json:"symbol"`
	SinglePrice   float64 `json:"singlePrice"`
	BundlePrice   float64 `json:"bundlePrice"`
	SingleDisplay string  `json:"singleDisplay"`
	BundleDisplay string  `json:"bundleDisplay"`
}

// CreateOrderRequest is the untrusted order-creation payload. Amount is in
// the currency's smallest unit and must match the server-side price table.
type CreateOrderRequest struct {
	DocType  string `json:"docType"`
	Currency string `json:"currency"`
	Amount   int64  `json:"amount"`
}

// CreateOrderResponse returns the gateway order to hand to the checkout UI.
type CreateOrderResponse struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// VerifyPaymentRequest carries the gateway callback triple plus optional
// purchase metadata used for the ledger row.
type VerifyPaymentRequest struct {
	OrderID   string `json:"orderId"`
	PaymentID string `json:"paymentId"`
	Signature string `json:"signature"`
	Email     string `json:"email,omitempty"`
	DocType   string `json:"docType,omitempty"`
	Amount    int64  `json:"amount,omitempty"`
	Currency  string `json:"currency,omitempty"`
}

// VerifyPaymentResponse reports the signature check outcome. Recorded is
// false when the ledger write failed after a verified payment; the license
// key is still valid.
type VerifyPaymentResponse struct {
	Verified   bool   `json:"verified"`
	LicenseKey string `json:"licenseKey,omitempty"`
	Recorded   bool   `json:"recorded,omitempty"`
	Error      string `json:"error,omitempty"`
}

// PurchaseRecord is one row of the purchase ledger. Rows are written once
// and never mutated.
type PurchaseRecord struct {
	Email      string    `json:"email"`
	LicenseKey string    `json:"licenseKey"`
	PaymentID  string    `json:"paymentId"`
	OrderID    string    `json:"orderId"`
	DocType    string    `json:"docType"`
	Amount     int64     `json:"amount"`
	Currency   string    `json:"currency"`
	CreatedAt  time.Time `json:"createdAt"`
}

// RestoreRequest asks for past purchases by license key or email. At least
// one of the two is required.
type RestoreRequest struct {
	LicenseKey string `json:"licenseKey,omitempty"`
	Email      string `json:"email,omitempty"`
}

// RestoredPurchase is one entry of a successful restore response.
type RestoredPurchase struct {
	DocType    string    `json:"docType"`
	LicenseKey string    `json:"licenseKey"`
	CreatedAt  time.Time `json:"createdAt"`
}

// RestoreResponse lists every purchase found for the given key or email.
type RestoreResponse struct {
	Found     bool               `json:"found"`
	Purchases []RestoredPurchase `json:"purchases,omitempty"`
	Error     string             `json:"error,omitempty"`
}
