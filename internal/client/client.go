package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tuanvumaihuynh/product-catalog/internal/config"
	"github.com/tuanvumaihuynh/product-catalog/internal/model"
	"github.com/tuanvumaihuynh/product-catalog/pkg/correlationid"
)

// ProductPayload is the body sent on create and update. Count travels as
// typed and the server ignores it.
type ProductPayload struct {
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price"`
	Taxes    decimal.Decimal `json:"taxes"`
	Ads      decimal.Decimal `json:"ads"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
	Count    string          `json:"count"`
	Category string          `json:"category"`
}

// Error is a non-2xx answer from the API, or a transport failure when
// StatusCode is zero.
type Error struct {
	StatusCode int
	Message    string
	parent     error
}

func (e *Error) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("request failed: %s", e.Message)
	}
	return fmt.Sprintf("status %d: %s", e.StatusCode, e.Message)
}

func (e *Error) Unwrap() error {
	return e.parent
}

// Client talks to the product API. Requests are never retried.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(cfg config.Client) *Client {
	return NewWithHTTPClient(cfg.APIURL, &http.Client{Timeout: cfg.Timeout})
}

func NewWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

type writeResponse struct {
	Message string            `json:"message"`
	Result  model.WriteResult `json:"result"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (c *Client) ListProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := c.do(ctx, http.MethodGet, "/product", nil, &products); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (c *Client) CreateProduct(ctx context.Context, payload ProductPayload) (model.WriteResult, error) {
	var res writeResponse
	if err := c.do(ctx, http.MethodPost, "/product", payload, &res); err != nil {
		return model.WriteResult{}, fmt.Errorf("create product: %w", err)
	}
	return res.Result, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id int64, payload ProductPayload) (model.WriteResult, error) {
	var res writeResponse
	if err := c.do(ctx, http.MethodPut, productPath(id), payload, &res); err != nil {
		return model.WriteResult{}, fmt.Errorf("update product %d: %w", id, err)
	}
	return res.Result, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id int64) (model.WriteResult, error) {
	var res writeResponse
	if err := c.do(ctx, http.MethodDelete, productPath(id), nil, &res); err != nil {
		return model.WriteResult{}, fmt.Errorf("delete product %d: %w", id, err)
	}
	return res.Result, nil
}

func productPath(id int64) string {
	return "/product/" + strconv.FormatInt(id, 10)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if id, ok := correlationid.FromContext(ctx); ok {
		req.Header.Set(correlationid.Header, id)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Message: err.Error(), parent: err}
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return responseError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}

// responseError reads a failed response. A body that cannot be read is
// reported as a transport failure.
func responseError(resp *http.Response) *Error {
	b, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return &Error{Message: fmt.Sprintf("read %d response: %v", resp.StatusCode, err), parent: err}
	}

	var res errorResponse
	if err := json.Unmarshal(b, &res); err == nil && res.Error != "" {
		return &Error{StatusCode: resp.StatusCode, Message: res.Error}
	}

	msg := strings.TrimSpace(string(b))
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return &Error{StatusCode: resp.StatusCode, Message: msg}
}
