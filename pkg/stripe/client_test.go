package stripe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCheckoutSession_EncodesFormFields(t *testing.T) {
	var gotForm map[string][]string
	var gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotForm = r.PostForm
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "cs_test_1", "url": "https://checkout.stripe.com/pay/cs_test_1"}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL("sk_test_key", server.URL)
	session, err := client.CreateCheckoutSession(context.Background(), CheckoutSessionParams{
		LineItems: []LineItem{{
			Name:       "Morning Light",
			Currency:   "jpy",
			UnitAmount: 85000,
			Quantity:   1,
		}},
		SuccessURL:               "https://shop.example.com/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:                "https://shop.example.com/cart",
		CustomerEmail:            "buyer@example.com",
		AllowedShippingCountries: []string{"JP"},
		Metadata:                 map[string]string{"customerName": "Hanako Sato"},
	})
	require.NoError(t, err)

	assert.Equal(t, "cs_test_1", session.ID)
	assert.Equal(t, "https://checkout.stripe.com/pay/cs_test_1", session.URL)
	assert.Equal(t, "Bearer sk_test_key", gotAuth)

	assert.Equal(t, []string{"payment"}, gotForm["mode"])
	assert.Equal(t, []string{"jpy"}, gotForm["line_items[0][price_data][currency]"])
	assert.Equal(t, []string{"85000"}, gotForm["line_items[0][price_data][unit_amount]"])
	assert.Equal(t, []string{"Morning Light"}, gotForm["line_items[0][price_data][product_data][name]"])
	assert.Equal(t, []string{"1"}, gotForm["line_items[0][quantity]"])
	assert.Equal(t, []string{"JP"}, gotForm["shipping_address_collection[allowed_countries][0]"])
	assert.Equal(t, []string{"Hanako Sato"}, gotForm["metadata[customerName]"])
	assert.Equal(t, []string{"buyer@example.com"}, gotForm["customer_email"])
}

func TestCreateCheckoutSession_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error": {"type": "card_error", "message": "Your card was declined."}}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL("sk_test_key", server.URL)
	_, err := client.CreateCheckoutSession(context.Background(), CheckoutSessionParams{
		SuccessURL: "https://shop.example.com/success",
		CancelURL:  "https://shop.example.com/cart",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Your card was declined.")
}
