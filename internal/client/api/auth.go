package api

import (
	"context"
	"net/http"

	"github.com/afristyle/afristyle/internal/client/models"
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates an account and signs it in. On success the returned
// session token is attached to subsequent requests.
func (c *HTTPClient) Register(ctx context.Context, email, password, name string) (*models.Session, error) {
	var session models.Session
	_, err := c.do(ctx, http.MethodPost, "/api/v1/auth/register", nil, registerRequest{Email: email, Password: password, Name: name}, &session)
	if err != nil {
		return nil, err
	}
	c.token = session.Token
	return &session, nil
}

// Login authenticates and attaches the returned token to subsequent requests.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.Session, error) {
	var session models.Session
	_, err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", nil, loginRequest{Email: email, Password: password}, &session)
	if err != nil {
		return nil, err
	}
	c.token = session.Token
	return &session, nil
}

// Logout revokes the server-side session. The caller clears local state
// whether or not this call succeeds.
func (c *HTTPClient) Logout(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/api/v1/auth/logout", nil, nil, nil)
	c.token = ""
	return err
}

// Me returns the account behind the current token. Used as the liveness
// check during bootstrap: the returned user is fresher than any persisted
// record and wins over it.
func (c *HTTPClient) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if _, err := c.do(ctx, http.MethodGet, "/api/v1/auth/me", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
