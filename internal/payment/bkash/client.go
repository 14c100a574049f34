package bkash

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// statusOK is the gateway's success code for every tokenized-checkout call.
const statusOK = "0000"

// tokenTTL is the soft expiry applied to cached grant tokens. The gateway
// issues tokens valid for 60 minutes; refreshing at 45 keeps a margin.
const tokenTTL = 45 * time.Minute

// Config carries the gateway credentials, all environment-driven.
type Config struct {
	BaseURL   string
	AppKey    string
	AppSecret string
	Username  string
	Password  string
}

// Gateway is the part of the client the payment service depends on; tests
// substitute a fake.
type Gateway interface {
	CreatePayment(ctx context.Context, req CreateRequest) (CreateResponse, error)
	ExecutePayment(ctx context.Context, paymentID string) (ExecuteResponse, error)
}

// Client talks to the bKash tokenized checkout API. The grant token is held
// in the injected TokenCache and refreshed lazily on expiry.
type Client struct {
	cfg    Config
	http   *http.Client
	tokens TokenCache
}

func NewClient(cfg Config, tokens TokenCache) *Client {
	if tokens == nil {
		tokens = NewMemoryTokenCache()
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: 30 * time.Second},
		tokens: tokens,
	}
}

type tokenGrantRequest struct {
	AppKey    string `json:"app_key"`
	AppSecret string `json:"app_secret"`
}

type tokenGrantResponse struct {
	IDToken       string `json:"id_token"`
	TokenType     string `json:"token_type"`
	ExpiresIn     int64  `json:"expires_in"`
	StatusCode    string `json:"statusCode"`
	StatusMessage string `json:"statusMessage"`
}

// CreateRequest is the tokenized-checkout create payload.
type CreateRequest struct {
	Mode                  string `json:"mode"`
	PayerReference        string `json:"payerReference"`
	CallbackURL           string `json:"callbackURL"`
	Amount                string `json:"amount"`
	Currency              string `json:"currency"`
	Intent                string `json:"intent"`
	MerchantInvoiceNumber string `json:"merchantInvoiceNumber"`
}

type CreateResponse struct {
	PaymentID     string `json:"paymentID"`
	BkashURL      string `json:"bkashURL"`
	StatusCode    string `json:"statusCode"`
	StatusMessage string `json:"statusMessage"`
}

type executeRequest struct {
	PaymentID string `json:"paymentID"`
}

// ExecuteResponse is the server-to-server verification result; StatusCode
// "0000" means the payment completed.
type ExecuteResponse struct {
	PaymentID             string `json:"paymentID"`
	TrxID                 string `json:"trxID"`
	TransactionStatus     string `json:"transactionStatus"`
	Amount                string `json:"amount"`
	Currency              string `json:"currency"`
	MerchantInvoiceNumber string `json:"merchantInvoiceNumber"`
	StatusCode            string `json:"statusCode"`
	StatusMessage         string `json:"statusMessage"`
}

// token returns a valid grant token, requesting a fresh one from the gateway
// when the cache is empty or expired.
func (c *Client) token(ctx context.Context) (string, error) {
	if cached, err := c.tokens.Get(ctx); err == nil && cached != "" {
		return cached, nil
	}

	body, err := json.Marshal(tokenGrantRequest{AppKey: c.cfg.AppKey, AppSecret: c.cfg.AppSecret})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+"/tokenized/checkout/token/grant", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("username", c.cfg.Username)
	req.Header.Set("password", c.cfg.Password)
	req.Header.Set("X-Request-Id", uuid.NewString())

	res, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("token grant: %w", err)
	}
	defer res.Body.Close()

	var grant tokenGrantResponse
	if err := json.NewDecoder(res.Body).Decode(&grant); err != nil {
		return "", fmt.Errorf("token grant decode: %w", err)
	}
	if grant.IDToken == "" {
		return "", fmt.Errorf("token grant rejected: %s %s", grant.StatusCode, grant.StatusMessage)
	}

	if err := c.tokens.Set(ctx, grant.IDToken, tokenTTL); err != nil {
		return "", err
	}
	return grant.IDToken, nil
}

func (c *Client) CreatePayment(ctx context.Context, createReq CreateRequest) (CreateResponse, error) {
	var out CreateResponse
	if err := c.post(ctx, "/tokenized/checkout/create", createReq, &out); err != nil {
		return CreateResponse{}, err
	}
	if out.StatusCode != statusOK {
		return CreateResponse{}, fmt.Errorf("create payment rejected: %s %s", out.StatusCode, out.StatusMessage)
	}
	return out, nil
}

func (c *Client) ExecutePayment(ctx context.Context, paymentID string) (ExecuteResponse, error) {
	var out ExecuteResponse
	if err := c.post(ctx, "/tokenized/checkout/execute", executeRequest{PaymentID: paymentID}, &out); err != nil {
		return ExecuteResponse{}, err
	}
	return out, nil
}

func (c *Client) post(ctx context.Context, path string, payload, out interface{}) error {
	token, err := c.token(ctx)
	if err != nil {
		return err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", token)
	req.Header.Set("X-App-Key", c.cfg.AppKey)
	req.Header.Set("X-Request-Id", uuid.NewString())

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("gateway %s: %w", path, err)
	}
	defer res.Body.Close()

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("gateway %s decode: %w", path, err)
	}
	return nil
}
