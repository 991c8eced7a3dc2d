package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"motmystere/config"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	goauth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

const (
	stateValidity   = 10 * time.Minute
	exchangeTimeout = 10 * time.Second
)

var googleOauthConfig *oauth2.Config

// pendingStates holds the nonces of handshakes that were started but not yet
// resolved. A state is single-use and expires with the handshake.
var pendingStates = struct {
	mu     sync.Mutex
	states map[string]time.Time
}{states: make(map[string]time.Time)}

func InitGoogleAuth(cfg *config.Config) {
	googleOauthConfig = &oauth2.Config{
		ClientID:     cfg.Google.ClientId,
		ClientSecret: cfg.Google.ClientSecret,
		RedirectURL:  cfg.Google.RedirectURL,
		Scopes:       []string{"openid", "profile", "email"},
		Endpoint:     google.Endpoint,
	}
}

// BeginGoogleAuth issues a fresh state nonce and returns the provider URL to
// redirect the client to.
func BeginGoogleAuth() string {
	state := uuid.NewString()

	pendingStates.mu.Lock()
	now := time.Now()
	for s, issued := range pendingStates.states {
		if now.Sub(issued) > stateValidity {
			delete(pendingStates.states, s)
		}
	}
	pendingStates.states[state] = now
	pendingStates.mu.Unlock()

	return googleOauthConfig.AuthCodeURL(state)
}

// ConsumeState validates and retires a state nonce from the callback.
func ConsumeState(state string) bool {
	pendingStates.mu.Lock()
	defer pendingStates.mu.Unlock()

	issued, ok := pendingStates.states[state]
	if !ok {
		return false
	}
	delete(pendingStates.states, state)
	return time.Since(issued) <= stateValidity
}

// GoogleProfile is what the provider asserts about the user on login. The
// provider is the source of truth for these fields on every login.
type GoogleProfile struct {
	ID      string
	Email   string
	Name    string
	Picture string
}

// ExchangeCode trades the authorization code for the user's profile claims.
// Every outbound hop runs under a timeout; a timeout is a regular failure of
// the exchange, not a hang.
func ExchangeCode(ctx context.Context, code string) (*GoogleProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, exchangeTimeout)
	defer cancel()

	token, err := googleOauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("code exchange failed: %w", err)
	}

	service, err := goauth2.NewService(ctx,
		option.WithTokenSource(googleOauthConfig.TokenSource(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("failed to create oauth2 service: %w", err)
	}

	info, err := service.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("userinfo lookup failed: %w", err)
	}
	if info.Id == "" {
		return nil, fmt.Errorf("provider returned an empty subject id")
	}

	return &GoogleProfile{
		ID:      info.Id,
		Email:   info.Email,
		Name:    info.Name,
		Picture: info.Picture,
	}, nil
}
