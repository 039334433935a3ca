package oauth

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/oauth2"

	"github.com/JGS-JAVA/albaing-personalpart/domain"
	"github.com/JGS-JAVA/albaing-personalpart/internal/config"
)

const (
	naverAuthURL    = "https://nid.naver.com/oauth2.0/authorize"
	naverTokenURL   = "https://nid.naver.com/oauth2.0/token"
	naverProfileURL = "https://openapi.naver.com/v1/nid/me"
)

// NewNaverProvider builds the Naver identity provider. URL fields in cfg
// override the production endpoints (used by tests).
func NewNaverProvider(cfg config.OAuthProviderConfig, httpClient *http.Client) *Provider {
	authURL := cfg.AuthURL
	if authURL == "" {
		authURL = naverAuthURL
	}
	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		tokenURL = naverTokenURL
	}
	profileURL := cfg.ProfileURL
	if profileURL == "" {
		profileURL = naverProfileURL
	}

	return &Provider{
		name: "naver",
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Endpoint: oauth2.Endpoint{
				AuthURL:   authURL,
				TokenURL:  tokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		profileURL:    profileURL,
		profileMethod: http.MethodGet,
		httpClient:    httpClient,
		parse:         parseNaverProfile,
	}
}

// parseNaverProfile extracts the normalized profile. Naver nests every
// field one level down under "response"; birthdays arrive as "MM-DD" and
// are normalized to "MMDD".
func parseNaverProfile(body []byte) (*domain.SocialProfile, error) {
	var raw struct {
		Response map[string]any `json:"response"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("unparseable naver profile: %w", err)
	}
	if raw.Response == nil {
		return nil, fmt.Errorf("naver profile has no response payload")
	}

	return &domain.SocialProfile{
		ExternalID:   getString(raw.Response, "id"),
		Nickname:     getString(raw.Response, "nickname"),
		ProfileImage: getString(raw.Response, "profile_image"),
		Email:        getString(raw.Response, "email"),
		Gender:       getString(raw.Response, "gender"),
		Birthday:     strings.ReplaceAll(getString(raw.Response, "birthday"), "-", ""),
		Birthyear:    getString(raw.Response, "birthyear"),
	}, nil
}
