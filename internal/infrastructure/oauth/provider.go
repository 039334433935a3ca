package oauth

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/JGS-JAVA/albaing-personalpart/domain"
)

// Provider implements domain.OAuthProvider for one identity source. The
// authorization-code exchange goes through x/oauth2; profile fetching and
// field mapping are provider-specific.
type Provider struct {
	name          string
	config        *oauth2.Config
	profileURL    string
	profileMethod string
	httpClient    *http.Client
	parse         func(body []byte) (*domain.SocialProfile, error)
}

// Name implements domain.OAuthProvider
func (p *Provider) Name() string { return p.name }

// AuthCodeURL implements domain.OAuthProvider
func (p *Provider) AuthCodeURL(state string) string {
	return p.config.AuthCodeURL(state)
}

// Exchange implements domain.OAuthProvider. An exchange that yields no
// access token is a token-stage provider failure.
func (p *Provider) Exchange(ctx context.Context, code string) (string, error) {
	if p.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)
	}
	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return "", &domain.ProviderError{Provider: p.name, Stage: domain.StageToken, Message: err.Error()}
	}
	if token.AccessToken == "" {
		return "", &domain.ProviderError{Provider: p.name, Stage: domain.StageToken, Message: "no access token returned"}
	}
	return token.AccessToken, nil
}

// FetchProfile implements domain.OAuthProvider
func (p *Provider) FetchProfile(ctx context.Context, accessToken string) (*domain.SocialProfile, error) {
	req, err := http.NewRequestWithContext(ctx, p.profileMethod, p.profileURL, nil)
	if err != nil {
		return nil, &domain.ProviderError{Provider: p.name, Stage: domain.StageProfile, Message: err.Error()}
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	client := p.httpClient
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &domain.ProviderError{Provider: p.name, Stage: domain.StageProfile, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &domain.ProviderError{
			Provider: p.name,
			Stage:    domain.StageProfile,
			Message:  fmt.Sprintf("profile endpoint returned %d", resp.StatusCode),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil || len(body) == 0 {
		return nil, &domain.ProviderError{Provider: p.name, Stage: domain.StageProfile, Message: "empty profile response"}
	}

	profile, err := p.parse(body)
	if err != nil {
		return nil, &domain.ProviderError{Provider: p.name, Stage: domain.StageProfile, Message: err.Error()}
	}
	profile.Provider = p.name
	return profile, nil
}

func getString(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	if v, ok := m[key]; ok && v != nil {
		return fmt.Sprintf("%v", v)
	}
	return ""
}

var _ domain.OAuthProvider = (*Provider)(nil)
