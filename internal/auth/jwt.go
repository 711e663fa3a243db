package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"newsapi/config"
)

// Claims 是 API 令牌的载荷。
type Claims struct {
	User string `json:"user"`
	jwt.RegisteredClaims
}

// TokenManager 负责签发和校验 HS256 令牌；密钥与有效期来自显式传入的配置。
type TokenManager struct {
	secret []byte
	expire time.Duration
}

func NewTokenManager(cfg config.JWTConfig) *TokenManager {
	return &TokenManager{
		secret: []byte(cfg.Secret),
		expire: time.Duration(cfg.Expire) * time.Second,
	}
}

// Generate 为调用方签发一枚令牌。
func (m *TokenManager) Generate(user string) (string, error) {
	now := time.Now()
	claims := Claims{
		User: user,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expire)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Parse 校验签名和有效期。
func (m *TokenManager) Parse(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}
