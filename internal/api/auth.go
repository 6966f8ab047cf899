package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

type registerRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type refreshResponse struct {
	Tokens Tokens `json:"tokens"`
}

// Register creates a new account and returns the user plus issued tokens.
func (c *Client) Register(ctx context.Context, email, name, password string) (*Credentials, error) {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return nil, errors.New("register: email and password required")
	}
	var creds Credentials
	err := c.do(ctx, http.MethodPost, "/api/auth/register", registerRequest{
		Email:    email,
		Name:     name,
		Password: password,
	}, &creds)
	if err != nil {
		return nil, err
	}
	return &creds, nil
}

// Login exchanges credentials for the user plus issued tokens.
func (c *Client) Login(ctx context.Context, email, password string) (*Credentials, error) {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return nil, errors.New("login: email and password required")
	}
	var creds Credentials
	err := c.do(ctx, http.MethodPost, "/api/auth/login", loginRequest{
		Email:    email,
		Password: password,
	}, &creds)
	if err != nil {
		return nil, err
	}
	return &creds, nil
}

// Refresh exchanges the stored refresh token for a fresh token pair.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*Tokens, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, errors.New("refresh: refresh token required")
	}
	var parsed refreshResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/refresh", refreshRequest{RefreshToken: refreshToken}, &parsed)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(parsed.Tokens.AccessToken) == "" {
		return nil, errors.New("refresh: response carried no access token")
	}
	return &parsed.Tokens, nil
}

// CurrentUser fetches the authenticated account.
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
