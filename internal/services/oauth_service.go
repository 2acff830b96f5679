package services

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

// OAuthProfile is the identity returned by the provider.
type OAuthProfile struct {
	Email         string
	Name          string
	VerifiedEmail bool
}

type OAuthExchanger interface {
	Exchange(ctx context.Context, code string) (*OAuthProfile, error)
}

type GoogleOAuthExchanger struct {
	config *oauth2.Config
}

func NewGoogleOAuthExchanger(clientID, clientSecret, redirectURL string) *GoogleOAuthExchanger {
	return &GoogleOAuthExchanger{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"openid", oauth2api.UserinfoEmailScope, oauth2api.UserinfoProfileScope},
			Endpoint:     endpoints.Google,
		},
	}
}

func (g *GoogleOAuthExchanger) Exchange(ctx context.Context, code string) (*OAuthProfile, error) {
	token, err := g.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange code: %w", err)
	}

	svc, err := oauth2api.NewService(ctx, option.WithTokenSource(g.config.TokenSource(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("userinfo client: %w", err)
	}
	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("fetch userinfo: %w", err)
	}

	profile := &OAuthProfile{Email: info.Email, Name: info.Name}
	if info.VerifiedEmail != nil {
		profile.VerifiedEmail = *info.VerifiedEmail
	}
	if !profile.VerifiedEmail {
		return nil, fmt.Errorf("email %q is not verified", info.Email)
	}
	return profile, nil
}
