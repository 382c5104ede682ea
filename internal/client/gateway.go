// Package client provides an HTTP client for the ZenFinance gateway API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// User represents an authenticated user returned by the gateway.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Transaction represents a transaction row returned by the gateway.
type Transaction struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	Amount    float64 `json:"amount"`
	Type      string  `json:"type"`
	Category  string  `json:"category"`
	CreatedAt string  `json:"created_at"` // RFC3339
}

// Category represents a category row returned by the gateway.
type Category struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Icon   string `json:"icon"`
	Type   string `json:"type"`
}

// CreateTransactionEntry represents a single transaction to submit to the gateway.
type CreateTransactionEntry struct {
	Amount   float64 `json:"amount"`
	Type     string  `json:"type"`
	Category string  `json:"category"`
}

// CreateCategoryEntry represents a single category to submit to the gateway.
type CreateCategoryEntry struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Icon string `json:"icon,omitempty"`
}

// UpdateCategoryEntry holds the fields of a category that can change.
type UpdateCategoryEntry struct {
	Name string `json:"name,omitempty"`
	Icon string `json:"icon,omitempty"`
}

// GatewayClient communicates with the ZenFinance gateway API.
type GatewayClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewGatewayClient creates a new gateway API client.
func NewGatewayClient(baseURL string, httpClient *http.Client) *GatewayClient {
	return &GatewayClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Token returns the bearer token from the last sign-in, or empty when signed out.
func (c *GatewayClient) Token() string {
	return c.token
}

// SetToken restores a previously issued bearer token, e.g. from saved state.
func (c *GatewayClient) SetToken(token string) {
	c.token = token
}

// SignUp registers a new account and stores the issued token.
func (c *GatewayClient) SignUp(ctx context.Context, email, password string) (*User, error) {
	return c.authenticate(ctx, "/api/v1/auth/register", email, password)
}

// SignIn exchanges credentials for a bearer token and stores it.
func (c *GatewayClient) SignIn(ctx context.Context, email, password string) (*User, error) {
	return c.authenticate(ctx, "/api/v1/auth/login", email, password)
}

func (c *GatewayClient) authenticate(ctx context.Context, path, email, password string) (*User, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var result struct {
		Token string `json:"token"`
		User  User   `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, path, body, &result); err != nil {
		return nil, err
	}
	c.token = result.Token
	return &result.User, nil
}

// SignOut invalidates the session on the gateway and clears the stored token.
// The token is cleared even when the request fails.
func (c *GatewayClient) SignOut(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/api/v1/auth/logout", nil, nil)
	c.token = ""
	return err
}

// Session fetches the user for the stored token.
func (c *GatewayClient) Session(ctx context.Context) (*User, error) {
	var result struct {
		User User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/auth/session", nil, &result); err != nil {
		return nil, err
	}
	return &result.User, nil
}

// ListTransactions fetches the user's transactions, newest first.
func (c *GatewayClient) ListTransactions(ctx context.Context) ([]Transaction, error) {
	var result struct {
		Transactions struct {
			Data []Transaction `json:"data"`
		} `json:"transactions"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/transactions", nil, &result); err != nil {
		return nil, err
	}
	return result.Transactions.Data, nil
}

// CreateTransaction submits a transaction and returns the stored row.
func (c *GatewayClient) CreateTransaction(ctx context.Context, entry CreateTransactionEntry) (*Transaction, error) {
	var result struct {
		Transaction Transaction `json:"transaction"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/transactions", entry, &result); err != nil {
		return nil, err
	}
	return &result.Transaction, nil
}

// DeleteTransaction removes a transaction. A transaction that no longer
// exists on the gateway is treated as already deleted.
func (c *GatewayClient) DeleteTransaction(ctx context.Context, id string) error {
	err := c.do(ctx, http.MethodDelete, "/api/v1/transactions/"+id, nil, nil)
	if isNotFound(err) {
		return nil
	}
	return err
}

// ListCategories fetches the user's categories.
func (c *GatewayClient) ListCategories(ctx context.Context) ([]Category, error) {
	var result struct {
		Categories struct {
			Data []Category `json:"data"`
		} `json:"categories"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/categories", nil, &result); err != nil {
		return nil, err
	}
	return result.Categories.Data, nil
}

// CreateCategory submits a category and returns the stored row.
func (c *GatewayClient) CreateCategory(ctx context.Context, entry CreateCategoryEntry) (*Category, error) {
	var result struct {
		Category Category `json:"category"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/categories", entry, &result); err != nil {
		return nil, err
	}
	return &result.Category, nil
}

// UpdateCategory renames a category or changes its icon. Renames rewrite the
// category label on the user's existing transactions gateway-side.
func (c *GatewayClient) UpdateCategory(ctx context.Context, id string, entry UpdateCategoryEntry) (*Category, error) {
	var result struct {
		Category Category `json:"category"`
	}
	if err := c.do(ctx, http.MethodPut, "/api/v1/categories/"+id, entry, &result); err != nil {
		return nil, err
	}
	return &result.Category, nil
}

// DeleteCategory removes a category. The user's transaction history keeps
// its labels.
func (c *GatewayClient) DeleteCategory(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/categories/"+id, nil, nil)
}

// StatusError is returned when the gateway responds with a non-success status.
type StatusError struct {
	StatusCode int
	Method     string
	Path       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.Path, e.StatusCode)
}

func isNotFound(err error) bool {
	statusErr, ok := err.(*StatusError)
	return ok && statusErr.StatusCode == http.StatusNotFound
}

func (c *GatewayClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader *strings.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reader = strings.NewReader(string(jsonBody))
	} else {
		reader = strings.NewReader("")
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &StatusError{StatusCode: resp.StatusCode, Method: method, Path: path}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}
