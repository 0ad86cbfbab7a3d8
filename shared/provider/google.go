package provider

import (
	"context"
	"errors"
	"net/http"
	"time"

	"google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

var (
	ErrGoogleDisabled        = errors.New("google sign-in is not configured")
	ErrInvalidGoogleAudience = errors.New("invalid google audience")
	ErrGoogleEmailMissing    = errors.New("google account has no verified email")
)

// GoogleIdentity is the subset of a Google account this service cares about.
type GoogleIdentity struct {
	Subject    string
	Email      string
	GivenName  string
	FamilyName string
	Picture    string
}

type GoogleOAuthProvider struct {
	clientID string
	opts     []option.ClientOption
}

// NewGoogleOAuthProvider creates a provider for the given OAuth client id.
// Extra options are appended after the default HTTP client, so tests can redirect the endpoint.
func NewGoogleOAuthProvider(clientID string, opts ...option.ClientOption) *GoogleOAuthProvider {
	defaults := []option.ClientOption{
		option.WithHTTPClient(&http.Client{Timeout: 10 * time.Second}),
	}

	return &GoogleOAuthProvider{
		clientID: clientID,
		opts:     append(defaults, opts...),
	}
}

func (p *GoogleOAuthProvider) Enabled() bool {
	return p != nil && p.clientID != ""
}

// Authenticate validates idToken against Google and, when accessToken is set, enriches the
// identity with profile names from the userinfo endpoint.
func (p *GoogleOAuthProvider) Authenticate(ctx context.Context, idToken, accessToken string) (*GoogleIdentity, error) {
	if !p.Enabled() {
		return nil, ErrGoogleDisabled
	}

	oauth2Service, err := oauth2.NewService(ctx, p.opts...)
	if err != nil {
		return nil, err
	}

	tokenInfo, err := oauth2Service.Tokeninfo().IdToken(idToken).Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	if tokenInfo.Audience != p.clientID {
		return nil, ErrInvalidGoogleAudience
	}

	if tokenInfo.Email == "" || !tokenInfo.VerifiedEmail {
		return nil, ErrGoogleEmailMissing
	}

	identity := &GoogleIdentity{
		Subject: tokenInfo.UserId,
		Email:   tokenInfo.Email,
	}

	if accessToken == "" {
		return identity, nil
	}

	call := oauth2Service.Userinfo.Get().Context(ctx)
	call.Header().Set("Authorization", "Bearer "+accessToken)

	userInfo, err := call.Do()
	if err != nil {
		return nil, err
	}

	identity.GivenName = userInfo.GivenName
	identity.FamilyName = userInfo.FamilyName
	identity.Picture = userInfo.Picture

	return identity, nil
}
