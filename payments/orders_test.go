package payments

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"privacypage-api/models"
	"privacypage-api/pricing"
)

// fakeTransport cans the gateway's HTTP response and captures the request.
type fakeTransport struct {
	status int
	body   string
	err    error
	got    *http.Request
	sent   []byte
}

func (f *fakeTransport) Do(req *http.Request) (*http.Response, error) {
	f.got = req
	if req.Body != nil {
		f.sent, _ = io.ReadAll(req.Body)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &http.Response{
		StatusCode: f.status,
		Body:       io.NopCloser(bytes.NewReader([]byte(f.body))),
	}, nil
}

type fakeGateway struct {
	orderID  string
	err      error
	amount   int64
	currency string
	receipt  string
}

func (g *fakeGateway) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (string, error) {
	g.amount = amount
	g.currency = currency
	g.receipt = receipt
	if g.err != nil {
		return "", g.err
	}
	return g.orderID, nil
}

func TestCreateOrderHappyPath(t *testing.T) {
	gw := &fakeGateway{orderID: "order_abc"}
	s := NewOrderService(gw, pricing.NewResolver(nil))

	resp, err := s.CreateOrder(context.Background(), models.CreateOrderRequest{
		DocType:  models.DocTypePrivacy,
		Currency: "INR",
		Amount:   84900,
	})
	require.NoError(t, err)
	assert.Equal(t, "order_abc", resp.OrderID)
	assert.Equal(t, int64(84900), resp.Amount)
	assert.Equal(t, "INR", resp.Currency)

	assert.Equal(t, int64(84900), gw.amount)
	assert.True(t, strings.HasPrefix(gw.receipt, "privacy_"))
}

func TestCreateOrderRejectsWrongAmount(t *testing.T) {
	s := NewOrderService(&fakeGateway{orderID: "order_abc"}, pricing.NewResolver(nil))

	// every doc type and currency, off-by-one both ways
	docTypes := append([]string{}, models.DocumentTypes...)
	docTypes = append(docTypes, models.DocTypeBundle, models.DocTypeProSingle)
	for _, docType := range docTypes {
		for _, currency := range []string{"INR", "USD", "EUR", "GBP"} {
			for _, delta := range []int64{-1, 1, 100000} {
				expected, err := pricing.NewResolver(nil).ExpectedAmount(docType, currency)
				require.NoError(t, err)
				_, err = s.CreateOrder(context.Background(), models.CreateOrderRequest{
					DocType:  docType,
					Currency: currency,
					Amount:   expected + delta,
				})
				assert.ErrorIs(t, err, ErrInvalidAmount, "%v/%v delta %v", docType, currency, delta)
			}
		}
	}
}

func TestCreateOrderRejectsUnsupportedCurrency(t *testing.T) {
	s := NewOrderService(&fakeGateway{orderID: "order_abc"}, pricing.NewResolver(nil))
	_, err := s.CreateOrder(context.Background(), models.CreateOrderRequest{
		DocType:  models.DocTypePrivacy,
		Currency: "JPY",
		Amount:   84900,
	})
	assert.ErrorIs(t, err, pricing.ErrUnsupportedCurrency)
}

func TestCreateOrderRejectsUnknownDocType(t *testing.T) {
	s := NewOrderService(&fakeGateway{orderID: "order_abc"}, pricing.NewResolver(nil))
	_, err := s.CreateOrder(context.Background(), models.CreateOrderRequest{
		DocType:  "poem",
		Currency: "USD",
		Amount:   999,
	})
	assert.ErrorIs(t, err, ErrInvalidDocType)
}

func TestCreateOrderNotConfigured(t *testing.T) {
	s := NewOrderService(nil, pricing.NewResolver(nil))
	_, err := s.CreateOrder(context.Background(), models.CreateOrderRequest{
		DocType:  models.DocTypePrivacy,
		Currency: "USD",
		Amount:   999,
	})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestCreateOrderGatewayFailure(t *testing.T) {
	s := NewOrderService(&fakeGateway{err: fmt.Errorf("gateway down")}, pricing.NewResolver(nil))
	_, err := s.CreateOrder(context.Background(), models.CreateOrderRequest{
		DocType:  models.DocTypeBundle,
		Currency: "USD",
		Amount:   2499,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create order")
}

func TestRazorpayGatewayRequest(t *testing.T) {
	ft := &fakeTransport{
		status: 200,
		body:   `{"id":"order_xyz","amount":999,"currency":"USD","status":"created"}`,
	}
	gw := NewRazorpayGateway("rzp_key", "rzp_secret")
	gw.client = ft

	id, err := gw.CreateOrder(context.Background(), 999, "USD", "privacy_123")
	require.NoError(t, err)
	assert.Equal(t, "order_xyz", id)

	user, pass, ok := ft.got.BasicAuth()
	require.True(t, ok)
	assert.Equal(t, "rzp_key", user)
	assert.Equal(t, "rzp_secret", pass)
	assert.Contains(t, string(ft.sent), `"amount":999`)
	assert.Contains(t, string(ft.sent), `"receipt":"privacy_123"`)
}

func TestRazorpayGatewayErrorResponses(t *testing.T) {
	gw := NewRazorpayGateway("rzp_key", "rzp_secret")

	gw.client = &fakeTransport{status: 401, body: `{"error":{"description":"bad key"}}`}
	_, err := gw.CreateOrder(context.Background(), 999, "USD", "r1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")

	gw.client = &fakeTransport{status: 200, body: `{"amount":999}`}
	_, err = gw.CreateOrder(context.Background(), 999, "USD", "r2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no id")
}
