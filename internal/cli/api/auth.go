package api

import (
	"context"
	"errors"
	"fmt"
)

// ErrInvalidCredentials — неверная пара логин/пароль.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Register creates an account with the identity provider and returns an
// access token.
func (c *Client) Register(ctx context.Context, email, password string) (string, error) {
	ar, err := c.call(ctx, actionRequest{Action: "register", UserEmail: email, Password: password})
	if err != nil {
		return "", err
	}
	if !ar.Success || ar.AccessToken == "" {
		return "", fmt.Errorf("register rejected: %s", ar.Error)
	}
	return ar.AccessToken, nil
}

// Login authenticates against the identity provider and returns an access token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	ar, err := c.call(ctx, actionRequest{Action: "login", UserEmail: email, Password: password})
	if err != nil {
		return "", err
	}
	if !ar.Success || ar.AccessToken == "" {
		return "", ErrInvalidCredentials
	}
	return ar.AccessToken, nil
}

// VerifyPassword re-checks the account password before a gated operation.
// Результат возвращается вызывающему явно; никакого глобального
// отложенного действия здесь нет — продолжение выбирает сам вызывающий.
func (c *Client) VerifyPassword(ctx context.Context, email, password string) (bool, error) {
	ar, err := c.call(ctx, actionRequest{Action: "verify_password", UserEmail: email, Password: password})
	if err != nil {
		return false, err
	}
	return ar.Success, nil
}
