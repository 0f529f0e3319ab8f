package queries

import (
	"tickethub/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator resolves a bearer token to the buyer it was minted for.
// Identity is issued elsewhere; this service only verifies and extracts.
type TokenValidator interface {
	BuyerFromToken(token string) (uuid.UUID, error)
}

type tokenValidator struct {
	jwt *jwt.Service
}

func NewTokenValidator(svc *jwt.Service) TokenValidator {
	return &tokenValidator{jwt: svc}
}

func (v *tokenValidator) BuyerFromToken(token string) (uuid.UUID, error) {
	claims, err := v.jwt.ValidateToken(token)
	if err != nil {
		return uuid.Nil, err
	}
	return claims.BuyerID, nil
}
