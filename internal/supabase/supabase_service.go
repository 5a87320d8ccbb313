package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// Client talks to the hosted auth/database service: session identity
// and per-user shipping-info persistence. The shipping-info upsert is
// idempotent (insert-if-absent, else update), keyed by user identity.
//
//go:generate mockgen -source=supabase_service.go -destination=../mock/supabase/supabase_service_mock.go -package=mock
type Client interface {
	CurrentUser(ctx context.Context, accessToken string) (User, error)
	UpsertShippingInfo(ctx context.Context, accessToken, userID string, info ShippingInfo) error
}

type client struct {
	baseURL string
	anonKey string
	http    *http.Client
}

func NewClientFromEnv() (Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(os.Getenv("SUPABASE_URL")), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("SUPABASE_URL is not configured")
	}

	anonKey := strings.Trim(os.Getenv("SUPABASE_ANON_KEY"), "\"")
	if anonKey == "" {
		return nil, fmt.Errorf("SUPABASE_ANON_KEY is not configured")
	}

	return &client{
		baseURL: baseURL,
		anonKey: anonKey,
		http:    &http.Client{Timeout: 15 * time.Second},
	}, nil
}

func NewClient(baseURL, anonKey string, httpClient *http.Client) Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &client{
		baseURL: strings.TrimRight(baseURL, "/"),
		anonKey: anonKey,
		http:    httpClient,
	}
}

func (c *client) CurrentUser(ctx context.Context, accessToken string) (User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return User{}, err
	}
	c.setHeaders(req, accessToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return User{}, fmt.Errorf("auth gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return User{}, ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return User{}, c.statusError(resp)
	}

	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return User{}, fmt.Errorf("decode user failed: %w", err)
	}
	return user, nil
}

// UpsertShippingInfo checks whether a profile row exists for the user
// and updates it, inserting a new row otherwise.
func (c *client) UpsertShippingInfo(ctx context.Context, accessToken, userID string, info ShippingInfo) error {
	exists, err := c.profileExists(ctx, accessToken, userID)
	if err != nil {
		return err
	}

	if exists {
		return c.updateProfile(ctx, accessToken, userID, info)
	}
	return c.insertProfile(ctx, accessToken, userID, info)
}

func (c *client) profileExists(ctx context.Context, accessToken, userID string) (bool, error) {
	endpoint := fmt.Sprintf("%s/rest/v1/user_profiles?user_id=eq.%s&select=user_id",
		c.baseURL, url.QueryEscape(userID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, err
	}
	c.setHeaders(req, accessToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return false, fmt.Errorf("profile lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false, c.statusError(resp)
	}

	var rows []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return false, fmt.Errorf("decode profiles failed: %w", err)
	}
	return len(rows) > 0, nil
}

func (c *client) updateProfile(ctx context.Context, accessToken, userID string, info ShippingInfo) error {
	endpoint := fmt.Sprintf("%s/rest/v1/user_profiles?user_id=eq.%s",
		c.baseURL, url.QueryEscape(userID))

	body, err := json.Marshal(map[string]any{"shipping_info": info})
	if err != nil {
		return err
	}

	return c.write(ctx, http.MethodPatch, endpoint, accessToken, body)
}

func (c *client) insertProfile(ctx context.Context, accessToken, userID string, info ShippingInfo) error {
	body, err := json.Marshal(userProfile{UserID: userID, ShippingInfo: info})
	if err != nil {
		return err
	}

	return c.write(ctx, http.MethodPost, c.baseURL+"/rest/v1/user_profiles", accessToken, body)
}

func (c *client) write(ctx context.Context, method, endpoint, accessToken string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	c.setHeaders(req, accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("profile write failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.statusError(resp)
	}
	return nil
}

func (c *client) setHeaders(req *http.Request, accessToken string) {
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+accessToken)
}

func (c *client) statusError(resp *http.Response) error {
	raw, _ := io.ReadAll(resp.Body)
	msg := strings.TrimSpace(string(raw))
	if len(msg) > 500 {
		msg = msg[:500]
	}
	if msg == "" {
		return fmt.Errorf("auth gateway returned status %d", resp.StatusCode)
	}
	return fmt.Errorf("auth gateway returned status %d: %s", resp.StatusCode, msg)
}
