package security

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// IdentityVerifier validates bearer tokens issued by the hosted auth
// provider. The JWT token manager satisfies the same role for locally-issued
// tokens; which one the middleware uses is a config decision.
type IdentityVerifier interface {
	Verify(ctx context.Context, token string) (userID string, email string, err error)
}

// FirebaseVerifier checks ID tokens against Firebase Auth, for deployments
// where signup/login live in the hosted provider rather than this backend.
type FirebaseVerifier struct {
	client *auth.Client
}

func NewFirebaseVerifier(ctx context.Context, credentialsFile string) (*FirebaseVerifier, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase app init failed: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase auth init failed: %w", err)
	}
	return &FirebaseVerifier{client: client}, nil
}

func (v *FirebaseVerifier) Verify(ctx context.Context, token string) (string, string, error) {
	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", "", ErrInvalidToken
	}
	email, _ := decoded.Claims["email"].(string)
	return decoded.UID, email, nil
}

// LocalVerifier adapts the JWT TokenManager to the IdentityVerifier contract.
type LocalVerifier struct {
	Tokens TokenManager
}

func (v LocalVerifier) Verify(ctx context.Context, token string) (string, string, error) {
	claims, err := v.Tokens.ValidateToken(token)
	if err != nil {
		return "", "", err
	}
	if claims.Type != TokenTypeAccess {
		return "", "", ErrWrongTokenType
	}
	return claims.UserID, claims.Email, nil
}
