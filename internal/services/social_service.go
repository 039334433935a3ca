package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/JGS-JAVA/albaing-personalpart/domain"
)

// SocialServiceImpl implements domain.SocialService: it drives the
// authorization-code dance for each registered provider and decides
// where the browser goes next.
type SocialServiceImpl struct {
	providers   map[string]domain.OAuthProvider
	userRepo    domain.UserRepository
	sessions    domain.SessionGateway
	frontendURL string
}

// NewSocialService creates a new social login service
func NewSocialService(
	providers []domain.OAuthProvider,
	userRepo domain.UserRepository,
	sessions domain.SessionGateway,
	frontendURL string,
) domain.SocialService {
	byName := make(map[string]domain.OAuthProvider, len(providers))
	for _, p := range providers {
		byName[p.Name()] = p
	}
	return &SocialServiceImpl{
		providers:   byName,
		userRepo:    userRepo,
		sessions:    sessions,
		frontendURL: frontendURL,
	}
}

// AuthCodeURL implements domain.SocialService
func (s *SocialServiceImpl) AuthCodeURL(provider, state string) (string, error) {
	p, ok := s.providers[provider]
	if !ok {
		return "", fmt.Errorf("unknown oauth provider %q", provider)
	}
	return p.AuthCodeURL(state), nil
}

// HandleCallback implements domain.SocialService. A profile whose email
// matches an existing account logs that account in; otherwise the browser
// is sent to the registration form with the profile prefilled.
func (s *SocialServiceImpl) HandleCallback(ctx context.Context, provider, code, sessionID string) (string, error) {
	p, ok := s.providers[provider]
	if !ok {
		return "", fmt.Errorf("unknown oauth provider %q", provider)
	}

	token, err := p.Exchange(ctx, code)
	if err != nil {
		return "", err
	}

	profile, err := p.FetchProfile(ctx, token)
	if err != nil {
		return "", err
	}

	if profile.Email != "" {
		exists, err := s.userRepo.ExistsByEmail(ctx, profile.Email)
		if err != nil {
			return "", fmt.Errorf("failed to look up account: %w", err)
		}
		if exists {
			user, err := s.userRepo.FindByEmail(ctx, profile.Email)
			if err != nil {
				return "", err
			}
			if err := s.sessions.Login(ctx, sessionID, domain.RolePerson, user.ID); err != nil {
				return "", fmt.Errorf("failed to open session: %w", err)
			}
			return s.frontendURL, nil
		}
	}

	return s.registrationURL(profile), nil
}

// registrationURL builds the prefilled signup redirect. The provider id
// parameter name tells the frontend which provider the account came from.
func (s *SocialServiceImpl) registrationURL(profile *domain.SocialProfile) string {
	q := url.Values{}
	q.Set("nickname", profile.Nickname)
	q.Set("email", profile.Email)
	switch profile.Provider {
	case "naver":
		q.Set("naverId", profile.ExternalID)
	default:
		q.Set("kakaoId", profile.ExternalID)
	}
	if profile.Gender != "" {
		q.Set("gender", profile.Gender)
	}
	if profile.Birthday != "" {
		q.Set("birthday", profile.Birthday)
	}
	if profile.Birthyear != "" {
		q.Set("birthyear", profile.Birthyear)
	}
	if profile.ProfileImage != "" {
		q.Set("profileImage", profile.ProfileImage)
	}
	return s.frontendURL + "/register/person?" + q.Encode()
}
