// Package identity talks to the external identity API used to refresh agent profiles.
package identity

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"album/config"
	"album/internal/domain/service"

	"github.com/pkg/errors"
)

// userInfo is the OpenID Connect userinfo payload.
type userInfo struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
	Picture       string `json:"picture"`
	Locale        string `json:"locale"`
}

type profileFetcher struct {
	enabled     bool
	userInfoURL string
	token       string
	client      *http.Client
	logger      *slog.Logger
}

// NewProfileFetcher returns a ProfileFetcher backed by the userinfo endpoint in identityApi.
func NewProfileFetcher(cfg *config.Config, logger *slog.Logger) service.ProfileFetcher {
	api := cfg.IdentityAPI

	return &profileFetcher{
		enabled:     api.Enabled && api.UserInfoURL != "",
		userInfoURL: api.UserInfoURL,
		token:       api.Token,
		client:      &http.Client{Timeout: api.Timeout},
		logger:      logger,
	}
}

func (f *profileFetcher) Enabled() bool {
	return f.enabled
}

func (f *profileFetcher) FetchProfile(ctx context.Context, email string) (*service.ExternalProfile, error) {
	if !f.enabled {
		return nil, errors.New("identity API is disabled")
	}

	endpoint, err := url.Parse(f.userInfoURL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid identity API url")
	}
	query := endpoint.Query()
	query.Set("email", email)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build identity API request")
	}
	req.Header.Set("Accept", "application/json")
	if f.token != "" {
		req.Header.Set("Authorization", "Bearer "+f.token)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "identity API request failed")
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			f.logger.Warn("Failed to close identity API response", slog.Any("error", cerr))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return nil, errors.Errorf("identity API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var info userInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, errors.Wrap(err, "failed to decode identity API response")
	}
	if info.Email != "" && !strings.EqualFold(info.Email, email) {
		return nil, errors.Errorf("identity API answered for %q instead of %q", info.Email, email)
	}

	return &service.ExternalProfile{
		Subject:       info.Sub,
		Email:         email,
		EmailVerified: info.EmailVerified,
		Name:          info.Name,
		GivenName:     info.GivenName,
		FamilyName:    info.FamilyName,
		Picture:       info.Picture,
		Locale:        info.Locale,
	}, nil
}
