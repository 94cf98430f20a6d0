package taxjar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/ravenmoor/taxbridge/internal/taxes"
	"github.com/ravenmoor/taxbridge/internal/telemetry"
)

const (
	sandboxBaseURL    = "https://api.sandbox.taxjar.com"
	productionBaseURL = "https://api.taxjar.com"

	clientTimeout = 5 * time.Second
)

// Client is a thin façade over the TaxJar SmartCalcs API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiToken   string
	logger     *slog.Logger
}

// ClientConfig contains credentials and environment selection for the
// TaxJar client.
type ClientConfig struct {
	APIToken  string
	IsSandbox bool
	Logger    *slog.Logger // Optional: defaults to slog.Default()
}

// NewClient creates a TaxJar API client.
func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.APIToken == "" {
		return nil, taxes.NewConfigurationError("TaxJar API token is required")
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
		apiToken:   cfg.APIToken,
		logger:     logger,
	}, nil
}

// TaxForOrder calculates sales tax for an order or checkout.
func (c *Client) TaxForOrder(ctx context.Context, params TaxForOrderParams) (*TaxForOrderResult, error) {
	c.logger.Debug("calculating taxjar taxes",
		"to_country", params.ToCountry,
		"to_zip", params.ToZip,
		"line_count", len(params.LineItems),
	)

	var out TaxForOrderResult
	if err := c.do(ctx, "tax_for_order", http.MethodPost, "/v2/taxes", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateOrderTransaction records a completed order transaction.
func (c *Client) CreateOrderTransaction(ctx context.Context, params OrderTransactionParams) (*OrderTransactionResult, error) {
	c.logger.Debug("recording taxjar order transaction", "transaction_id", params.TransactionID)

	var out OrderTransactionResult
	if err := c.do(ctx, "create_order_transaction", http.MethodPost, "/v2/transactions/orders", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Categories lists TaxJar product tax categories.
func (c *Client) Categories(ctx context.Context) (*CategoriesResult, error) {
	var out CategoriesResult
	if err := c.do(ctx, "categories", http.MethodGet, "/v2/categories", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do executes one API call and records its latency and outcome under the
// given operation label.
func (c *Client) do(ctx context.Context, operation, method, path string, body, out any) error {
	start := time.Now()
	err := c.roundTrip(ctx, method, path, body, out)
	telemetry.RecordProviderCall("taxjar", operation, start, err)
	return err
}

func (c *Client) roundTrip(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode taxjar request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build taxjar request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return taxes.NewProviderError(err, "TaxJar request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))

		var result errorResult
		if err := json.Unmarshal(raw, &result); err == nil && result.Error != "" {
			return taxes.NewProviderError(
				fmt.Errorf("%s: %s", result.Error, result.Detail),
				"TaxJar rejected the request",
			)
		}
		return taxes.NewProviderError(
			fmt.Errorf("unexpected status %d", resp.StatusCode),
			"TaxJar rejected the request",
		)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return taxes.NewProviderError(err, "Failed to decode TaxJar response")
		}
	}

	return nil
}
