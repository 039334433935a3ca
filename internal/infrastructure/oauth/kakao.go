package oauth

import (
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/JGS-JAVA/albaing-personalpart/domain"
	"github.com/JGS-JAVA/albaing-personalpart/internal/config"
)

const (
	kakaoAuthURL    = "https://kauth.kakao.com/oauth/authorize"
	kakaoTokenURL   = "https://kauth.kakao.com/oauth/token"
	kakaoProfileURL = "https://kapi.kakao.com/v2/user/me"
)

var kakaoScopes = []string{
	"profile_nickname", "profile_image", "account_email",
	"name", "gender", "birthday", "birthyear",
}

// NewKakaoProvider builds the Kakao identity provider. URL fields in cfg
// override the production endpoints (used by tests).
func NewKakaoProvider(cfg config.OAuthProviderConfig, httpClient *http.Client) *Provider {
	authURL := cfg.AuthURL
	if authURL == "" {
		authURL = kakaoAuthURL
	}
	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		tokenURL = kakaoTokenURL
	}
	profileURL := cfg.ProfileURL
	if profileURL == "" {
		profileURL = kakaoProfileURL
	}

	return &Provider{
		name: "kakao",
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Scopes:       kakaoScopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:   authURL,
				TokenURL:  tokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		profileURL:    profileURL,
		profileMethod: http.MethodPost,
		httpClient:    httpClient,
		parse:         parseKakaoProfile,
	}
}

// parseKakaoProfile extracts the normalized profile. Kakao nests the
// nickname and image under "properties" and the rest under "kakao_account".
func parseKakaoProfile(body []byte) (*domain.SocialProfile, error) {
	var raw struct {
		ID         json.Number    `json:"id"`
		Properties map[string]any `json:"properties"`
		Account    map[string]any `json:"kakao_account"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("unparseable kakao profile: %w", err)
	}
	if raw.ID.String() == "" {
		return nil, fmt.Errorf("kakao profile has no id")
	}

	return &domain.SocialProfile{
		ExternalID:   raw.ID.String(),
		Nickname:     getString(raw.Properties, "nickname"),
		ProfileImage: getString(raw.Properties, "profile_image"),
		Email:        getString(raw.Account, "email"),
		Gender:       getString(raw.Account, "gender"),
		Birthday:     getString(raw.Account, "birthday"),
		Birthyear:    getString(raw.Account, "birthyear"),
	}, nil
}
