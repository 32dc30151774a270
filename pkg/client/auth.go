package client

import "context"

// SignupInput is the payload for creating an account.
type SignupInput struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Signup creates an account and stores the returned session token, so
// the client is logged in when it returns.
func (c *Client) Signup(ctx context.Context, input SignupInput) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.post(ctx, "/auth/signup", input, &resp); err != nil {
		return nil, err
	}
	if err := c.Sessions.SetToken(resp.Token); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login authenticates and stores the returned session token.
func (c *Client) Login(ctx context.Context, username, password string) (*AuthResponse, error) {
	body := map[string]string{
		"username": username,
		"password": password,
	}
	var resp AuthResponse
	if err := c.post(ctx, "/auth/login", body, &resp); err != nil {
		return nil, err
	}
	if err := c.Sessions.SetToken(resp.Token); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout revokes the session server-side and clears the stored token.
// The local token is cleared even when the server call fails, so a dead
// server can never leave the client stuck logged in.
func (c *Client) Logout(ctx context.Context) error {
	if c.Sessions.Token() != "" {
		// Best effort; the local session is cleared regardless
		_ = c.post(ctx, "/auth/logout", nil, nil)
	}
	return c.Sessions.SetToken("")
}

// Me fetches the profile of the logged-in user.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.get(ctx, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Activity fetches the recent account activity log.
func (c *Client) Activity(ctx context.Context) ([]AuditEntry, error) {
	var entries []AuditEntry
	if err := c.get(ctx, "/auth/activity", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// IsLoggedIn reports whether a session token is stored. It does not
// verify the token with the server; use Me for that.
func (c *Client) IsLoggedIn() bool {
	return c.Sessions.IsAuthenticated()
}
