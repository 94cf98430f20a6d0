package avatax

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/ravenmoor/taxbridge/internal/taxes"
	"github.com/ravenmoor/taxbridge/internal/telemetry"
)

const (
	sandboxBaseURL    = "https://sandbox-rest.avatax.com"
	productionBaseURL = "https://rest.avatax.com"

	// clientTimeout bounds every provider round trip. Expiry surfaces as
	// a provider error; no retry happens at this layer.
	clientTimeout = 5 * time.Second

	apiDateFormat = "2006-01-02"

	appName    = "taxbridge"
	appVersion = "1.0"
)

// Client is a thin façade over the AvaTax REST v2 API. Every method is a
// single synchronous request/response round trip; failures propagate
// unchanged to the caller as provider errors.
type Client struct {
	httpClient *http.Client
	baseURL    string
	username   string
	password   string
	logger     *slog.Logger
}

// ClientConfig contains credentials and environment selection for the
// AvaTax client.
type ClientConfig struct {
	Username  string
	Password  string
	IsSandbox bool
	Logger    *slog.Logger // Optional: defaults to slog.Default()
}

// NewClient creates an AvaTax API client.
func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.Username == "" || cfg.Password == "" {
		return nil, taxes.NewConfigurationError("AvaTax credentials are required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	baseURL := productionBaseURL
	if cfg.IsSandbox {
		baseURL = sandboxBaseURL
	}

	return &Client{
		httpClient: &http.Client{
			Timeout:   clientTimeout,
			Transport: &telemetry.HTTPTransport{Transport: http.DefaultTransport},
		},
		baseURL:    baseURL,
		username:   cfg.Username,
		password:   cfg.Password,
		logger:     logger,
	}, nil
}

// CreateTransaction creates or adjusts a transaction. The create-or-adjust
// endpoint is used instead of plain create so that re-sending the same
// transaction code updates the existing transaction rather than
// duplicating it: an upsert keyed by transaction code.
func (c *Client) CreateTransaction(ctx context.Context, model CreateTransactionModel) (*TransactionModel, error) {
	c.logger.Debug("creating avatax transaction",
		"type", model.Type,
		"code", model.Code,
		"company_code", model.CompanyCode,
		"line_count", len(model.Lines),
	)

	var out TransactionModel
	body := createOrAdjustTransactionModel{CreateTransactionModel: model}
	if err := c.do(ctx, "create_transaction", http.MethodPost, "/api/v2/transactions/createoradjust", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CommitTransaction marks a transaction as finalized for reporting.
func (c *Client) CommitTransaction(ctx context.Context, companyCode, transactionCode string, documentType DocumentType) (*TransactionModel, error) {
	path := fmt.Sprintf("/api/v2/companies/%s/transactions/%s/commit",
		url.PathEscape(companyCode), url.PathEscape(transactionCode))

	query := url.Values{}
	query.Set("documentType", string(documentType))

	var out TransactionModel
	if err := c.do(ctx, "commit", http.MethodPost, path, query, commitTransactionModel{Commit: true}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// VoidTransaction voids a transaction with the fixed DocVoided reason.
func (c *Client) VoidTransaction(ctx context.Context, companyCode, transactionCode string) (*TransactionModel, error) {
	path := fmt.Sprintf("/api/v2/companies/%s/transactions/%s/void",
		url.PathEscape(companyCode), url.PathEscape(transactionCode))

	var out TransactionModel
	if err := c.do(ctx, "void", http.MethodPost, path, nil, voidTransactionModel{Code: voidReasonDocVoided}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RefundTransaction refunds a committed transaction, fully or partially.
func (c *Client) RefundTransaction(ctx context.Context, companyCode, transactionCode string, model RefundTransactionModel) (*TransactionModel, error) {
	path := fmt.Sprintf("/api/v2/companies/%s/transactions/%s/refund",
		url.PathEscape(companyCode), url.PathEscape(transactionCode))

	var out TransactionModel
	if err := c.do(ctx, "refund", http.MethodPost, path, nil, model, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResolveAddress validates an address against the provider.
func (c *Client) ResolveAddress(ctx context.Context, address AddressLocationInfo) (*AddressResolutionModel, error) {
	var out AddressResolutionModel
	if err := c.do(ctx, "resolve_address", http.MethodPost, "/api/v2/addresses/resolve", nil, address, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListEntityUseCodes lists entity-use codes filtered by exact code match.
func (c *Client) ListEntityUseCodes(ctx context.Context, code string) (*FetchResult[EntityUseCodeModel], error) {
	query := url.Values{}
	query.Set("$filter", fmt.Sprintf("code eq %s", code))

	var out FetchResult[EntityUseCodeModel]
	if err := c.do(ctx, "list_entity_use_codes", http.MethodGet, "/api/v2/definitions/entityusecodes", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Ping verifies connectivity and credentials.
func (c *Client) Ping(ctx context.Context) (*PingResultModel, error) {
	var out PingResultModel
	if err := c.do(ctx, "ping", http.MethodGet, "/api/v2/utilities/ping", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do executes one API call and records its latency and outcome under the
// given operation label.
func (c *Client) do(ctx context.Context, operation, method, path string, query url.Values, body, out any) error {
	start := time.Now()
	err := c.roundTrip(ctx, method, path, query, body, out)
	telemetry.RecordProviderCall("avatax", operation, start, err)
	return err
}

// roundTrip performs one request/response cycle: marshal, send, decode,
// and map failures to provider errors.
func (c *Client) roundTrip(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode avatax request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build avatax request: %w", err)
	}
	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Avalara-Client", fmt.Sprintf("%s; %s; Go; %s", appName, appVersion, appName))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return taxes.NewProviderError(err, "AvaTax request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.errorFromResponse(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return taxes.NewProviderError(err, "Failed to decode AvaTax response")
		}
	}

	return nil
}

// errorFromResponse converts a non-2xx response into a provider error,
// preserving the provider's own error code and message when present.
func (c *Client) errorFromResponse(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))

	var result errorResult
	if err := json.Unmarshal(raw, &result); err == nil && result.Error.Code != "" {
		c.logger.Debug("avatax request rejected",
			"status", resp.StatusCode,
			"code", result.Error.Code,
			"message", result.Error.Message,
		)
		return taxes.NewProviderError(
			fmt.Errorf("%s: %s", result.Error.Code, result.Error.Message),
			"AvaTax rejected the request",
		)
	}

	return taxes.NewProviderError(
		fmt.Errorf("unexpected status %d", resp.StatusCode),
		"AvaTax rejected the request",
	)
}
