package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

type checkoutRequest struct {
	Plan       string `json:"plan"`
	SuccessURL string `json:"success_url"`
	CancelURL  string `json:"cancel_url"`
}

type checkoutResponse struct {
	CheckoutURL string `json:"checkout_url"`
}

type portalRequest struct {
	ReturnURL string `json:"return_url"`
}

type portalResponse struct {
	PortalURL string `json:"portal_url"`
}

// CreateCheckoutSession starts a hosted checkout for the given plan and
// returns the provider URL the user must visit.
func (c *Client) CreateCheckoutSession(ctx context.Context, plan, successURL, cancelURL string) (string, error) {
	if strings.TrimSpace(plan) == "" {
		return "", errors.New("checkout: plan required")
	}
	var parsed checkoutResponse
	err := c.do(ctx, http.MethodPost, "/api/subscription/checkout", checkoutRequest{
		Plan:       plan,
		SuccessURL: successURL,
		CancelURL:  cancelURL,
	}, &parsed)
	if err != nil {
		return "", err
	}
	return parsed.CheckoutURL, nil
}

// CreatePortalSession returns the provider-hosted billing management URL.
func (c *Client) CreatePortalSession(ctx context.Context, returnURL string) (string, error) {
	var parsed portalResponse
	err := c.do(ctx, http.MethodPost, "/api/subscription/portal", portalRequest{ReturnURL: returnURL}, &parsed)
	if err != nil {
		return "", err
	}
	return parsed.PortalURL, nil
}

// SubscriptionStatus fetches the current plan, status, and renewal state.
func (c *Client) SubscriptionStatus(ctx context.Context) (*Subscription, error) {
	var sub Subscription
	if err := c.do(ctx, http.MethodGet, "/api/subscription/status", nil, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// UsageStats fetches per-feature {used, limit} pairs for the current period.
func (c *Client) UsageStats(ctx context.Context) (Usage, error) {
	var usage Usage
	if err := c.do(ctx, http.MethodGet, "/api/subscription/usage", nil, &usage); err != nil {
		return nil, err
	}
	return usage, nil
}
