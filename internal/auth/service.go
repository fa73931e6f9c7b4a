package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/quizhive/quizhive/internal/apperr"
)

// TokenTTL is fixed; tokens are not renewable and there is no server-side
// revocation. Expiry is the only invalidation mechanism.
const TokenTTL = 7 * 24 * time.Hour

type AuthService struct{ hmac []byte }

func NewAuthService(secret string) *AuthService { return &AuthService{hmac: []byte(secret)} }

type Claims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func (a *AuthService) IssueJWT(userID, role string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "quizhive",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(a.hmac)
}

// Parse validates signature and expiry. Malformed, forged, and expired
// tokens all produce the same auth error.
func (a *AuthService) Parse(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return a.hmac, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, apperr.Auth("Not authorized, token failed")
	}
	c, ok := token.Claims.(*Claims)
	if !ok || c.UserID == "" {
		return nil, apperr.Auth("Not authorized, token failed")
	}
	return c, nil
}
