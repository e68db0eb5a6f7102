package services

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"chorechart/internal/core/domain"
)

// SessionService issues and validates the child-selection tokens that scope
// a browser session to one child. This is the whole of "authentication" in
// this system: picking a name from a list.
type SessionService struct {
	secretKey     []byte
	issuer        string
	tokenDuration time.Duration
	childRepo     domain.ChildRepository
}

func NewSessionService(secretKey string, issuer string, tokenDuration time.Duration, childRepo domain.ChildRepository) *SessionService {
	return &SessionService{
		secretKey:     []byte(secretKey),
		issuer:        issuer,
		tokenDuration: tokenDuration,
		childRepo:     childRepo,
	}
}

func (s *SessionService) IssueToken(childID string) (string, error) {
	claims := jwt.MapClaims{
		"sub": childID,
		"exp": time.Now().Add(s.tokenDuration).Unix(),
		"iat": time.Now().Unix(),
		"iss": s.issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("session service: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// ValidateToken returns the child id the token was issued for, confirming
// the child still exists so a deleted child's stale cookie stops working.
func (s *SessionService) ValidateToken(ctx context.Context, tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})

	if err != nil {
		return "", fmt.Errorf("invalid session token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid session token claims")
	}

	if iss, ok := claims["iss"].(string); !ok || iss != s.issuer {
		return "", fmt.Errorf("invalid session token issuer")
	}

	childID, ok := claims["sub"].(string)
	if !ok {
		return "", fmt.Errorf("invalid session token subject")
	}

	if _, err := s.childRepo.GetByID(ctx, childID); err != nil {
		return "", fmt.Errorf("child no longer exists: %w", err)
	}

	return childID, nil
}
