package auth

import (
	"context"
	"errors"
	"fmt"
)

// Strategy selects the verification path for a request. Strategies are an
// explicit tagged variant selected per route; both expose the same
// verify-and-resolve contract through Authenticator.Verify.
type Strategy int

const (
	// StrategyLocal verifies an email and password against the identity store
	StrategyLocal Strategy = iota
	// StrategyBearer verifies a signed token and re-resolves its subject
	StrategyBearer
)

func (s Strategy) String() string {
	switch s {
	case StrategyLocal:
		return "local"
	case StrategyBearer:
		return "bearer"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// Credentials carries the inputs for either strategy. Local reads Email and
// Password, bearer reads Token.
type Credentials struct {
	Email    string
	Password string
	Token    string
}

// Authenticator verifies credentials and issues session tokens
type Authenticator struct {
	provider IdentityProvider
	tokens   TokenService
	logger   Logger
}

// NewAuthenticator returns a new Authenticator. Both collaborators are
// explicit configuration; there is no ambient state.
func NewAuthenticator(provider IdentityProvider, tokens TokenService) *Authenticator {
	return &Authenticator{
		provider: provider,
		tokens:   tokens,
		logger:   defLogger{},
	}
}

func (a *Authenticator) WithLogger(logger Logger) *Authenticator {
	a.logger = logger
	return a
}

// TokenService returns the TokenService instance used by this Authenticator
func (a *Authenticator) TokenService() TokenService {
	return a.tokens
}

// Verify runs the given strategy over the credentials and resolves the
// identity. Rejections are terminal for the request; callers must not retry.
func (a *Authenticator) Verify(ctx context.Context, strategy Strategy, creds Credentials) (Identity, error) {
	switch strategy {
	case StrategyLocal:
		return a.verifyLocal(ctx, creds.Email, creds.Password)
	case StrategyBearer:
		return a.verifyBearer(ctx, creds.Token)
	default:
		return nil, fmt.Errorf("unknown strategy: %s", strategy)
	}
}

// Login verifies email and password and returns a signed session token
func (a *Authenticator) Login(ctx context.Context, email, password string) (string, error) {
	identity, err := a.verifyLocal(ctx, email, password)
	if err != nil {
		return "", err
	}

	token, err := a.tokens.Generate(identity)
	if err != nil {
		a.logger.Error("login token generation failed", "error", err)
		return "", err
	}

	return token, nil
}

func (a *Authenticator) verifyLocal(ctx context.Context, email, password string) (Identity, error) {
	identity, err := a.provider.VerifyIdentity(ctx, email, password)
	if err != nil {
		// Unknown email and wrong password collapse into one rejection so
		// the response cannot be used to probe for registered emails.
		if errors.Is(err, ErrIdentityNotFound) || errors.Is(err, ErrMismatchedHashAndPassword) {
			a.logger.Info("local verification rejected", "email", email)
			return nil, ErrInvalidCredentials
		}
		a.logger.Error("local verification error", "error", err)
		return nil, err
	}

	if identity == nil {
		a.logger.Error("local verification returned nil identity")
		return nil, ErrInvalidCredentials
	}

	return identity, nil
}

func (a *Authenticator) verifyBearer(ctx context.Context, raw string) (Identity, error) {
	if raw == "" {
		return nil, ErrMissingToken
	}

	claims, err := a.tokens.Validate(raw)
	if err != nil {
		a.logger.Info("bearer token rejected", "error", err)
		return nil, err
	}

	identity, err := a.provider.FindIdentityByID(ctx, claims.Subject())
	if err != nil {
		if errors.Is(err, ErrIdentityNotFound) {
			a.logger.Info("bearer subject no longer exists", "subject", claims.Subject())
			return nil, ErrUnknownSubject
		}
		a.logger.Error("bearer subject lookup error", "error", err)
		return nil, err
	}

	return identity, nil
}
