package payments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"privacypage-api/models"
	"privacypage-api/pricing"
)

var (
	// ErrInvalidAmount means the client-sent amount does not match the
	// server-side price table. The order is refused; the client never
	// chooses its own price.
	ErrInvalidAmount = errors.New("amount does not match price table")

	// ErrInvalidDocType means the order names no purchasable product.
	ErrInvalidDocType = errors.New("invalid document type")

	// ErrNotConfigured means the service was built without gateway
	// credentials.
	ErrNotConfigured = errors.New("payment gateway not configured")
)

// OrderService validates purchase requests against the price table and
// creates gateway orders.
type OrderService struct {
	gateway Gateway
	prices  *pricing.Resolver
	now     func() time.Time
}

// NewOrderService wires the gateway and price resolver together.
func NewOrderService(gateway Gateway, prices *pricing.Resolver) *OrderService {
	return &OrderService{gateway: gateway, prices: prices, now: time.Now}
}

func purchasable(docType string) bool {
	return models.IsDocumentType(docType) ||
		docType == models.DocTypeBundle || docType == models.DocTypeProSingle
}

// CreateOrder checks the doc type, currency, and amount, then registers the
// order with the gateway. The client-supplied amount is advisory only; a
// mismatch with the server price is an error, never a repricing.
func (s *OrderService) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (models.CreateOrderResponse, error) {
	if s.gateway == nil {
		return models.CreateOrderResponse{}, ErrNotConfigured
	}
	if !purchasable(req.DocType) {
		return models.CreateOrderResponse{}, ErrInvalidDocType
	}

	expected, err := s.prices.ExpectedAmount(req.DocType, req.Currency)
	if err != nil {
		return models.CreateOrderResponse{}, err
	}
	if req.Amount != expected {
		return models.CreateOrderResponse{}, ErrInvalidAmount
	}

	receipt := fmt.Sprintf("%v_%v", req.DocType, s.now().UnixMilli())
	orderID, err := s.gateway.CreateOrder(ctx, expected, req.Currency, receipt)
	if err != nil {
		return models.CreateOrderResponse{}, fmt.Errorf("failed to create order: %v", err.Error())
	}

	return models.CreateOrderResponse{
		OrderID:  orderID,
		Amount:   expected,
		Currency: req.Currency,
	}, nil
}
