package jwt

import (
	"errors"
	"time"

	"nagoyameshi/internal/domain/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrExpiredToken   = errors.New("token expired")
	ErrWrongTokenType = errors.New("unexpected token type")
)

type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

type Claims struct {
	UserID    int64     `json:"user_id"`
	Role      string    `json:"role"`
	TokenType TokenType `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenPair is what login, refresh and role changes hand back to the client.
type TokenPair struct {
	AccessToken      string
	RefreshToken     string
	AccessTokenID    string
	AccessExpiresAt  time.Time
	RefreshExpiresAt time.Time
}

type Service struct {
	secretKey       []byte
	accessDuration  time.Duration
	refreshDuration time.Duration
	now             func() time.Time
}

func NewService(secretKey string, accessDuration, refreshDuration time.Duration) *Service {
	return &Service{
		secretKey:       []byte(secretKey),
		accessDuration:  accessDuration,
		refreshDuration: refreshDuration,
		now:             time.Now,
	}
}

func (s *Service) AccessDuration() time.Duration  { return s.accessDuration }
func (s *Service) RefreshDuration() time.Duration { return s.refreshDuration }

func (s *Service) GenerateTokenPair(userID int64, role user.Role) (TokenPair, error) {
	now := s.now()

	access, accessID, err := s.sign(userID, role, AccessToken, now, s.accessDuration)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, _, err := s.sign(userID, role, RefreshToken, now, s.refreshDuration)
	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{
		AccessToken:      access,
		RefreshToken:     refresh,
		AccessTokenID:    accessID,
		AccessExpiresAt:  now.Add(s.accessDuration),
		RefreshExpiresAt: now.Add(s.refreshDuration),
	}, nil
}

func (s *Service) sign(userID int64, role user.Role, typ TokenType, now time.Time, ttl time.Duration) (string, string, error) {
	jti := uuid.NewString()
	claims := Claims{
		UserID:    userID,
		Role:      role.String(),
		TokenType: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", "", err
	}
	return signed, jti, nil
}

func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// ValidateTyped rejects a well-formed token of the other type, e.g. a refresh token sent as access.
func (s *Service) ValidateTyped(tokenString string, typ TokenType) (*Claims, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != typ {
		return nil, ErrWrongTokenType
	}
	return claims, nil
}
