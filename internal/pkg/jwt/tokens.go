package jwt

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

//go:generate mockgen -source=tokens.go -destination=../../../gen/mocks/jwt/tokens.go -package=mocks

const (
	// AccountIDContextKey holds the authenticated account id inside a gin context.
	AccountIDContextKey = "account_id"
	// AccountRoleContextKey holds the role carried by the token.
	AccountRoleContextKey = "account_role"
)

type TokenIssuer interface {
	IssueToken(secret []byte, accountID int64, username, role string, timeLimit time.Duration) (string, error)
}

type TokenParser interface {
	ParseToken(secret []byte, tokenString string) (*Claims, error)
}

type Claims struct {
	AccountID int64  `json:"uid"`
	Username  string `json:"usr"`
	Role      string `json:"rol"`
	jwt.RegisteredClaims
}

type JWTTokenIssuer struct {
}

func NewJWTTokenIssuer() *JWTTokenIssuer {
	return &JWTTokenIssuer{}
}

func (ti *JWTTokenIssuer) IssueToken(secret []byte, accountID int64, username, role string, timeLimit time.Duration) (string, error) {
	now := time.Now()

	claims := Claims{
		AccountID: accountID,
		Username:  username,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(accountID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(timeLimit)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

type JWTTokenParser struct {
}

func NewJWTTokenParser() *JWTTokenParser {
	return &JWTTokenParser{}
}

func (tp *JWTTokenParser) ParseToken(secret []byte, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}

		return secret, nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}
