// Package firebase verifies bearer ID tokens against the Firebase identity
// provider and extracts the verified principal.
package firebase

import (
	"context"
	"log/slog"

	"bookshelf/config"
	domainerrors "bookshelf/internal/domain/errors"
	"bookshelf/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

type tokenVerifier struct {
	client *auth.Client
	logger *slog.Logger
}

// NewTokenVerifier initializes the Firebase Admin app from the configured
// service-account key and returns a service.TokenVerifier backed by it.
func NewTokenVerifier(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.TokenVerifier, error) {
	if cfg.Firebase == nil {
		return nil, errors.New("firebase configuration is missing")
	}

	opt := option.WithCredentialsFile(cfg.Firebase.CredentialsPath)
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, opt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	return &tokenVerifier{
		client: client,
		logger: logger,
	}, nil
}

// Verify validates the ID token with Firebase and maps its claims to a
// Principal. Any provider rejection (expired, malformed, bad signature)
// becomes ErrUnauthenticated; the cause is logged server-side only.
func (v *tokenVerifier) Verify(ctx context.Context, token string) (*service.Principal, error) {
	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		v.logger.Warn("ID token rejected", slog.String("error", err.Error()))

		return nil, domainerrors.ErrUnauthenticated.WrapMessage("token verification failed")
	}

	principal := &service.Principal{UID: decoded.UID}
	if email, ok := decoded.Claims["email"].(string); ok {
		principal.Email = email
	}
	if name, ok := decoded.Claims["name"].(string); ok {
		principal.Name = name
	}

	return principal, nil
}
