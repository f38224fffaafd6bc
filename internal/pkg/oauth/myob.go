package oauth

import (
	"context"
	"crypto/rand"
	"encoding/base64"

	"golang.org/x/oauth2"
)

// MYOB OAuth2 endpoints for the AccountRight API.
var myobEndpoint = oauth2.Endpoint{
	AuthURL:  "https://secure.myob.com/oauth2/account/authorize",
	TokenURL: "https://secure.myob.com/oauth2/v1/authorize",
}

type MYOBService interface {
	// GenerateState generates a random state string for OAuth2 flows.
	GenerateState() string
	// RedirectURL generates the OAuth2 redirect URL with a state.
	RedirectURL(state string) string
	// Exchange trades the authorization code for a token.
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
	// Refresh returns a fresh token, using the refresh token when the
	// current one has expired.
	Refresh(ctx context.Context, token *oauth2.Token) (*oauth2.Token, error)
}

type MYOBServiceImpl struct {
	config *oauth2.Config
}

func NewMYOBService(clientID string, clientSecret string, redirectURL string) MYOBService {
	config := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Scopes:       []string{"CompanyFile"},
		Endpoint:     myobEndpoint,
	}
	return &MYOBServiceImpl{config: config}
}

func (m *MYOBServiceImpl) GenerateState() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return ""
	}
	return base64.URLEncoding.EncodeToString(b)
}

func (m *MYOBServiceImpl) RedirectURL(state string) string {
	return m.config.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

func (m *MYOBServiceImpl) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	return m.config.Exchange(ctx, code)
}

func (m *MYOBServiceImpl) Refresh(ctx context.Context, token *oauth2.Token) (*oauth2.Token, error) {
	return m.config.TokenSource(ctx, token).Token()
}
