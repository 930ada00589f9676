//go:build unit

package billing_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"nagoyameshi/internal/infra/billing"
	"nagoyameshi/internal/infra/metrics"
	"nagoyameshi/internal/pkg/config"
	"nagoyameshi/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStripe answers a fixed set of API paths and records what it saw.
type fakeStripe struct {
	mu       sync.Mutex
	requests []string
	forms    map[string]url.Values
	routes   map[string]fakeResponse
}

type fakeResponse struct {
	status int
	body   string
}

func newFakeStripe(t *testing.T, routes map[string]fakeResponse) (*fakeStripe, *httptest.Server) {
	t.Helper()
	f := &fakeStripe{routes: routes, forms: map[string]url.Values{}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path
		body, _ := io.ReadAll(r.Body)
		form, _ := url.ParseQuery(string(body))
		if r.Method == http.MethodGet {
			form = r.URL.Query()
		}

		f.mu.Lock()
		f.requests = append(f.requests, key)
		f.forms[key] = form
		f.mu.Unlock()

		resp, ok := f.routes[key]
		if !ok {
			resp = fakeResponse{status: http.StatusNotFound, body: `{"error":{"type":"invalid_request_error","message":"no route"}}`}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(resp.status)
		_, _ = io.WriteString(w, resp.body)
	}))
	t.Cleanup(srv.Close)
	return f, srv
}

func newGateway(srv *httptest.Server) *billing.StripeGateway {
	cfg := config.BillingConfig{
		SecretKey:  "sk_test_dummy",
		PriceID:    "price_premium",
		APIBaseURL: srv.URL,
		RatePerSec: 100,
		Burst:      10,
	}
	return billing.NewStripeGateway(cfg, metrics.NewRegistry(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCreateCustomer(t *testing.T) {
	fake, srv := newFakeStripe(t, map[string]fakeResponse{
		"POST /v1/customers": {status: 200, body: `{"id":"cus_123","object":"customer"}`},
	})
	gw := newGateway(srv)

	id, err := gw.CreateCustomer(context.Background(), "taro@example.com", "名古屋 太郎")

	require.NoError(t, err)
	assert.Equal(t, "cus_123", id)
	form := fake.forms["POST /v1/customers"]
	assert.Equal(t, "taro@example.com", form.Get("email"))
	assert.Equal(t, "名古屋 太郎", form.Get("name"))
}

func TestSubscribeFlowCalls(t *testing.T) {
	fake, srv := newFakeStripe(t, map[string]fakeResponse{
		"POST /v1/payment_methods/pm_1/attach": {status: 200, body: `{"id":"pm_1","object":"payment_method"}`},
		"POST /v1/customers/cus_1":             {status: 200, body: `{"id":"cus_1","object":"customer"}`},
		"POST /v1/subscriptions":               {status: 200, body: `{"id":"sub_9","object":"subscription","status":"active"}`},
	})
	gw := newGateway(srv)
	ctx := context.Background()

	require.NoError(t, gw.AttachPaymentMethod(ctx, "cus_1", "pm_1"))
	require.NoError(t, gw.SetDefaultPaymentMethod(ctx, "cus_1", "pm_1"))
	subID, err := gw.CreateSubscription(ctx, "cus_1", "price_premium")
	require.NoError(t, err)

	assert.Equal(t, "sub_9", subID)
	assert.Equal(t, "cus_1", fake.forms["POST /v1/payment_methods/pm_1/attach"].Get("customer"))
	assert.Equal(t, "pm_1", fake.forms["POST /v1/customers/cus_1"].Get("invoice_settings[default_payment_method]"))
	assert.Equal(t, "price_premium", fake.forms["POST /v1/subscriptions"].Get("items[0][price]"))
}

func TestListActiveSubscriptions(t *testing.T) {
	fake, srv := newFakeStripe(t, map[string]fakeResponse{
		"GET /v1/subscriptions": {status: 200, body: `{
			"object":"list","url":"/v1/subscriptions","has_more":false,
			"data":[{"id":"sub_1","object":"subscription"},{"id":"sub_2","object":"subscription"}]
		}`},
	})
	gw := newGateway(srv)

	ids, err := gw.ListActiveSubscriptions(context.Background(), "cus_1")

	require.NoError(t, err)
	assert.Equal(t, []string{"sub_1", "sub_2"}, ids)
	q := fake.forms["GET /v1/subscriptions"]
	assert.Equal(t, "cus_1", q.Get("customer"))
	assert.Equal(t, "active", q.Get("status"))
}

func TestDefaultPaymentMethod(t *testing.T) {
	tests := []struct {
		name string
		body string
		want *commands.PaymentMethodSummary
	}{
		{
			name: "card on file",
			body: `{"id":"cus_1","object":"customer","invoice_settings":{"default_payment_method":{
				"id":"pm_1","object":"payment_method","type":"card",
				"card":{"brand":"visa","last4":"4242","exp_month":12,"exp_year":2030}}}}`,
			want: &commands.PaymentMethodSummary{ID: "pm_1", Brand: "visa", Last4: "4242", ExpMonth: 12, ExpYear: 2030},
		},
		{
			name: "none",
			body: `{"id":"cus_1","object":"customer","invoice_settings":{"default_payment_method":null}}`,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake, srv := newFakeStripe(t, map[string]fakeResponse{
				"GET /v1/customers/cus_1": {status: 200, body: tt.body},
			})
			gw := newGateway(srv)

			got, err := gw.DefaultPaymentMethod(context.Background(), "cus_1")

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "invoice_settings.default_payment_method", fake.forms["GET /v1/customers/cus_1"].Get("expand[0]"))
		})
	}
}

func TestProviderErrorIsSingleAttempt(t *testing.T) {
	fake, srv := newFakeStripe(t, map[string]fakeResponse{
		"POST /v1/payment_methods/pm_bad/attach": {
			status: http.StatusPaymentRequired,
			body:   `{"error":{"type":"card_error","code":"card_declined","message":"Your card was declined."}}`,
		},
	})
	gw := newGateway(srv)

	err := gw.AttachPaymentMethod(context.Background(), "cus_1", "pm_bad")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "attach_payment_method")
	assert.Len(t, fake.requests, 1)
}

func TestCancelAndDetach(t *testing.T) {
	fake, srv := newFakeStripe(t, map[string]fakeResponse{
		"DELETE /v1/subscriptions/sub_1":       {status: 200, body: `{"id":"sub_1","object":"subscription","status":"canceled"}`},
		"POST /v1/payment_methods/pm_1/detach": {status: 200, body: `{"id":"pm_1","object":"payment_method"}`},
	})
	gw := newGateway(srv)
	ctx := context.Background()

	require.NoError(t, gw.CancelSubscription(ctx, "sub_1"))
	require.NoError(t, gw.DetachPaymentMethod(ctx, "pm_1"))

	assert.Equal(t, []string{"DELETE /v1/subscriptions/sub_1", "POST /v1/payment_methods/pm_1/detach"}, fake.requests)
}
