// Package entitlement turns the purchase ledger into unlock decisions: which
// document types a buyer may export, and which purchases a license key or
// email can restore.
package entitlement

import (
	"context"
	"fmt"

	"privacypage-api/ledger"
	"privacypage-api/models"
)

// State is the unlock state derived from a set of purchases. The zero value
// unlocks nothing.
type State struct {
	// BundleUnlocked grants every document type.
	BundleUnlocked bool `json:"bundleUnlocked"`

	// SinglePassUnlocked is the pro-single purchase: one flag that is not
	// tied to a specific document type and unlocks export everywhere.
	SinglePassUnlocked bool `json:"singlePassUnlocked"`

	// Docs holds per-document unlocks from individual purchases.
	Docs map[string]bool `json:"docs,omitempty"`

	// LicenseKey is the most recent key among the purchases.
	LicenseKey string `json:"licenseKey,omitempty"`
}

// IsDocUnlocked reports whether the document type may be exported. Any one of
// the bundle, the single pass, or a per-document purchase suffices.
func (s State) IsDocUnlocked(docType string) bool {
	return s.BundleUnlocked || s.SinglePassUnlocked || s.Docs[docType]
}

// ApplyPurchase folds one purchase into the state.
func (s *State) ApplyPurchase(rec models.PurchaseRecord) {
	switch rec.DocType {
	case models.DocTypeBundle:
		s.BundleUnlocked = true
	case models.DocTypeProSingle:
		s.SinglePassUnlocked = true
	default:
		if s.Docs == nil {
			s.Docs = make(map[string]bool)
		}
		s.Docs[rec.DocType] = true
	}
	if s.LicenseKey == "" {
		s.LicenseKey = rec.LicenseKey
	}
}

// StateFrom derives the unlock state for purchases ordered newest first.
func StateFrom(recs []models.PurchaseRecord) State {
	var s State
	for _, rec := range recs {
		s.ApplyPurchase(rec)
	}
	return s
}

// Service answers restore requests against the ledger.
type Service struct {
	store ledger.PurchaseStore
}

// NewService wraps the purchase store.
func NewService(store ledger.PurchaseStore) *Service {
	return &Service{store: store}
}

// Restore looks up purchases by license key first, then by email. A license
// key matches exactly one purchase; an email returns every purchase made with
// it, newest first.
func (s *Service) Restore(ctx context.Context, req models.RestoreRequest) (models.RestoreResponse, error) {
	if req.LicenseKey == "" && req.Email == "" {
		return models.RestoreResponse{}, fmt.Errorf("license key or email is required")
	}

	var recs []models.PurchaseRecord
	if req.LicenseKey != "" {
		rec, err := s.store.GetByLicenseKey(ctx, req.LicenseKey)
		if err == nil {
			recs = append(recs, rec)
		} else if err != ledger.ErrNotFound {
			return models.RestoreResponse{}, err
		}
	}
	if len(recs) == 0 && req.Email != "" {
		byEmail, err := s.store.ListByEmail(ctx, req.Email)
		if err != nil {
			return models.RestoreResponse{}, err
		}
		recs = byEmail
	}

	if len(recs) == 0 {
		return models.RestoreResponse{Found: false}, nil
	}

	resp := models.RestoreResponse{Found: true}
	for _, rec := range recs {
		resp.Purchases = append(resp.Purchases, models.RestoredPurchase{
			DocType:    rec.DocType,
			LicenseKey: rec.LicenseKey,
			CreatedAt:  rec.CreatedAt,
		})
	}
	return resp, nil
}
