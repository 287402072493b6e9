package netbank

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"voucher-settlement/internal/core/domain"
	"voucher-settlement/internal/core/ports"

	"github.com/rs/zerolog"
)

// Config carries the NetBank virtual-account API settings. Fees are
// centavos per settlement rail.
type Config struct {
	BaseURL        string
	TokenURL       string
	ClientID       string
	ClientSecret   string
	SourceAccount  string
	SenderName     string
	InstaPayFee    int64
	PESONetFee     int64
	RequestTimeout time.Duration
}

// Client implements ports.PaymentGateway against the NetBank
// account-to-account API.
type Client struct {
	cfg  Config
	http *http.Client
	log  zerolog.Logger

	tokenMu     sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// NewClient creates a NetBank gateway client.
func NewClient(cfg Config, log zerolog.Logger) *Client {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: timeout},
		log:  log,
	}
}

// Name identifies this gateway for status classification.
func (c *Client) Name() string { return "netbank" }

// RailFee returns the configured per-rail fee in centavos.
func (c *Client) RailFee(_ context.Context, rail domain.SettlementRail) (int64, error) {
	switch rail {
	case domain.RailInstaPay:
		return c.cfg.InstaPayFee, nil
	case domain.RailPESONet:
		return c.cfg.PESONetFee, nil
	default:
		return 0, fmt.Errorf("no fee configured for rail %q", rail)
	}
}

type disbursePayload struct {
	ReferenceID    string        `json:"reference_id"`
	Amount         amountPayload `json:"amount"`
	SettlementRail string        `json:"settlement_rail"`
	Source         string        `json:"source_account_number"`
	Destination    destPayload   `json:"destination"`
	Sender         senderPayload `json:"sender"`
}

type amountPayload struct {
	Num string `json:"num"`
	Cur string `json:"cur"`
}

type destPayload struct {
	BankCode      string `json:"bank_code"`
	AccountNumber string `json:"account_number"`
}

type senderPayload struct {
	Name string `json:"name"`
}

type disburseResponse struct {
	TransactionID json.Number `json:"transaction_id"`
	UUID          string      `json:"uuid"`
	Status        string      `json:"status"`
	ReferenceID   string      `json:"reference_id"`
}

// Disburse submits an outbound transfer. A non-2xx response is a
// decline: nil receipt, nil error. Transport failures return an error.
func (c *Client) Disburse(ctx context.Context, actor ports.Actor, order ports.DisburseOrder) (*ports.DisburseReceipt, error) {
	payload := disbursePayload{
		ReferenceID:    order.Reference,
		Amount:         amountPayload{Num: strconv.FormatInt(order.Amount, 10), Cur: "PHP"},
		SettlementRail: string(order.Rail),
		Source:         c.cfg.SourceAccount,
		Destination: destPayload{
			BankCode:      order.BankCode,
			AccountNumber: order.AccountNumber,
		},
		Sender: senderPayload{Name: c.cfg.SenderName},
	}

	body, status, err := c.post(ctx, "/transact/payments", payload)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		c.log.Warn().
			Int("status_code", status).
			Str("reference", order.Reference).
			Str("actor", actor.ID).
			Str("response", string(body)).
			Msg("netbank declined disbursement")
		return nil, nil
	}

	var resp disburseResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode disburse response: %w", err)
	}

	return &ports.DisburseReceipt{
		TransactionID: resp.TransactionID.String(),
		UUID:          resp.UUID,
		Status:        resp.Status,
		ReferenceID:   resp.ReferenceID,
		Raw:           body,
	}, nil
}

type statusResponse struct {
	Status string `json:"status"`
}

// CheckDisbursementStatus polls one transaction's state.
func (c *Client) CheckDisbursementStatus(ctx context.Context, transactionID string) (*ports.StatusReport, error) {
	body, status, err := c.get(ctx, "/transact/payments/"+url.PathEscape(transactionID))
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("netbank status check returned %d", status)
	}

	var resp statusResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode status response: %w", err)
	}

	return &ports.StatusReport{Status: resp.Status, Raw: body}, nil
}

type balanceResponse struct {
	AccountNumber    string      `json:"account_number"`
	Balance          json.Number `json:"balance"`
	AvailableBalance json.Number `json:"available_balance"`
	Currency         string      `json:"currency"`
}

// CheckAccountBalance queries the custodial account. NetBank reports
// decimal pesos; the report carries centavos.
func (c *Client) CheckAccountBalance(ctx context.Context, accountNumber string) (*ports.BalanceReport, error) {
	body, status, err := c.get(ctx, "/accounts/"+url.PathEscape(accountNumber)+"/balance")
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("netbank balance check returned %d", status)
	}

	var resp balanceResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode balance response: %w", err)
	}

	balance, err := pesosToCentavos(resp.Balance)
	if err != nil {
		return nil, fmt.Errorf("parse balance: %w", err)
	}
	available, err := pesosToCentavos(resp.AvailableBalance)
	if err != nil {
		return nil, fmt.Errorf("parse available balance: %w", err)
	}

	return &ports.BalanceReport{
		Balance:          balance,
		AvailableBalance: available,
		Currency:         resp.Currency,
		Raw:              body,
	}, nil
}

// pesosToCentavos converts a decimal peso amount ("1500.25") to
// centavos without floating point.
func pesosToCentavos(n json.Number) (int64, error) {
	s := n.String()
	if s == "" {
		return 0, nil
	}
	whole, frac, _ := strings.Cut(s, ".")
	neg := strings.HasPrefix(whole, "-")
	whole = strings.TrimPrefix(whole, "-")

	pesos, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, err
	}
	var centavos int64
	if frac != "" {
		if len(frac) > 2 {
			frac = frac[:2]
		}
		for len(frac) < 2 {
			frac += "0"
		}
		centavos, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, err
		}
	}
	total := pesos*100 + centavos
	if neg {
		total = -total
	}
	return total, nil
}

func (c *Client) post(ctx context.Context, path string, payload any) ([]byte, int, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, 0, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(raw))
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(ctx, req)
}

func (c *Client) get(ctx context.Context, path string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+path, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	return c.do(ctx, req)
}

func (c *Client) do(ctx context.Context, req *http.Request) ([]byte, int, error) {
	token, err := c.token(ctx)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("netbank request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("read netbank response: %w", err)
	}
	return body, resp.StatusCode, nil
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// token returns a cached OAuth2 client-credentials token, refreshing
// one minute before expiry.
func (c *Client) token(ctx context.Context) (string, error) {
	c.tokenMu.Lock()
	defer c.tokenMu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry.Add(-time.Minute)) {
		return c.accessToken, nil
	}

	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {c.cfg.ClientID},
		"client_secret": {c.cfg.ClientSecret},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.TokenURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("netbank token request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("netbank token request returned %d", resp.StatusCode)
	}

	var tok tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("netbank token response missing access_token")
	}

	c.accessToken = tok.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(tok.ExpiresIn) * time.Second)
	c.log.Debug().Msg("netbank access token refreshed")
	return c.accessToken, nil
}
