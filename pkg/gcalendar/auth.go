package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
)

// TokenPath is where installed-app credentials look for their cached token.
const TokenPath = defaultTokenPath

// Authorizer runs the one-time installed-app OAuth flow that produces TokenPath.
type Authorizer struct {
	cfg *oauth2.Config
}

// NewAuthorizer reads installed-app credentials. Service account keys need no
// authorization step and are rejected.
func NewAuthorizer(credentialsJSON []byte) (*Authorizer, error) {
	cfg, err := installedAppConfig(credentialsJSON)
	if err != nil {
		return nil, err
	}
	return &Authorizer{cfg: cfg}, nil
}

// AuthCodeURL is the consent page the user opens in a browser.
func (a *Authorizer) AuthCodeURL(state string) string {
	return a.cfg.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// Exchange trades the pasted authorization code for a token.
func (a *Authorizer) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	tok, err := a.cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	return tok, nil
}

// SaveToken writes tok where NewClientFromCredentialsJSON will find it.
func SaveToken(path string, tok *oauth2.Token) error {
	data, err := json.Marshal(tok)
	if err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
