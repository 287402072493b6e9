package netbank

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"voucher-settlement/internal/core/domain"
	"voucher-settlement/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.Form.Get("grant_type"))
		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "test-token",
			"expires_in":   3600,
		})
	})
	mux.HandleFunc("/", handler)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return NewClient(Config{
		BaseURL:       srv.URL,
		TokenURL:      srv.URL + "/oauth/token",
		ClientID:      "client",
		ClientSecret:  "secret",
		SourceAccount: "113-001-00001-9",
		SenderName:    "Voucher Platform Inc",
		InstaPayFee:   1000,
		PESONetFee:    2500,
	}, zerolog.Nop())
}

func TestClient_Disburse_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/transact/payments", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "ABC123-09173011987", payload["reference_id"])
		assert.Equal(t, "INSTAPAY", payload["settlement_rail"])
		amount := payload["amount"].(map[string]any)
		assert.Equal(t, "2500000", amount["num"])

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"transaction_id": 987654,
			"uuid":           "uuid-001",
			"status":         "Pending",
			"reference_id":   "ABC123-09173011987",
		})
	})

	receipt, err := client.Disburse(context.Background(), ports.Actor{ID: "user-1"}, ports.DisburseOrder{
		Reference:     "ABC123-09173011987",
		Amount:        2500000,
		BankCode:      "GXCHPHM2XXX",
		AccountNumber: "09173011987",
		Rail:          domain.RailInstaPay,
	})
	require.NoError(t, err)
	require.NotNil(t, receipt)
	assert.Equal(t, "987654", receipt.TransactionID)
	assert.Equal(t, "uuid-001", receipt.UUID)
	assert.Equal(t, "Pending", receipt.Status)
	assert.NotEmpty(t, receipt.Raw)
}

func TestClient_Disburse_DeclinedIsNilReceipt(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]any{"error": "invalid destination account"})
	})

	receipt, err := client.Disburse(context.Background(), ports.Actor{}, ports.DisburseOrder{
		Reference: "REF", Amount: 100, BankCode: "X", AccountNumber: "1", Rail: domain.RailInstaPay,
	})
	require.NoError(t, err)
	assert.Nil(t, receipt)
}

func TestClient_CheckDisbursementStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transact/payments/987654", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"status":           "For Settlement",
			"reference_number": "NB-REF-991",
			"status_details": []map[string]any{
				{"status": "ForSettlement", "updated": "2026-08-30T10:05:00Z"},
			},
		})
	})

	report, err := client.CheckDisbursementStatus(context.Background(), "987654")
	require.NoError(t, err)
	assert.Equal(t, "For Settlement", report.Status)
	assert.Contains(t, string(report.Raw), "NB-REF-991")
}

func TestClient_CheckAccountBalance_ConvertsPesosToCentavos(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts/113-001-00001-9/balance", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"account_number":    "113-001-00001-9",
			"balance":           "150000.25",
			"available_balance": "149000.5",
			"currency":          "PHP",
		})
	})

	report, err := client.CheckAccountBalance(context.Background(), "113-001-00001-9")
	require.NoError(t, err)
	assert.Equal(t, int64(15000025), report.Balance)
	assert.Equal(t, int64(14900050), report.AvailableBalance)
	assert.Equal(t, "PHP", report.Currency)
}

func TestClient_RailFee(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

	fee, err := client.RailFee(context.Background(), domain.RailInstaPay)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), fee)

	fee, err = client.RailFee(context.Background(), domain.RailPESONet)
	require.NoError(t, err)
	assert.Equal(t, int64(2500), fee)

	_, err = client.RailFee(context.Background(), domain.SettlementRail("SWIFT"))
	assert.Error(t, err)
}

func TestPesosToCentavos(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"0", 0},
		{"1", 100},
		{"1500.25", 150025},
		{"1500.5", 150050},
		{"1500.259", 150025},
		{"-10.75", -1075},
	}
	for _, tc := range cases {
		got, err := pesosToCentavos(json.Number(tc.in))
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestClient_TokenIsCached(t *testing.T) {
	tokenCalls := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		tokenCalls++
		json.NewEncoder(w).Encode(map[string]any{"access_token": "tok", "expires_in": 3600})
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"status": "Pending"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := NewClient(Config{
		BaseURL:  srv.URL,
		TokenURL: srv.URL + "/oauth/token",
	}, zerolog.Nop())

	_, err := client.CheckDisbursementStatus(context.Background(), "1")
	require.NoError(t, err)
	_, err = client.CheckDisbursementStatus(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, 1, tokenCalls)
}
