package utils

import (
	"crypto/rsa"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrMissingToken = errors.New("missing token")
	ErrNoVerifyKey  = errors.New("no token verification key configured")
)

// UserLocalsKey key ใน fiber locals ที่เก็บ *UserContext
const UserLocalsKey = "user"

// UserContext identity ของผู้เรียก (subject claim ของ token)
type UserContext struct {
	ID string
}

// TokenVerifier ตรวจสอบ access token ด้วย HS256 secret หรือ RS256 public key
type TokenVerifier struct {
	secret    []byte
	publicKey *rsa.PublicKey
}

// NewTokenVerifier publicKeyPEM มีค่า = ใช้ RS256, ไม่งั้นใช้ secret (HS256)
func NewTokenVerifier(secret, publicKeyPEM string) (*TokenVerifier, error) {
	v := &TokenVerifier{}
	if publicKeyPEM != "" {
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(publicKeyPEM))
		if err != nil {
			return nil, err
		}
		v.publicKey = key
		return v, nil
	}
	if secret == "" {
		return nil, ErrNoVerifyKey
	}
	v.secret = []byte(secret)
	return v, nil
}

func (v *TokenVerifier) keyFunc(token *jwt.Token) (interface{}, error) {
	if v.publicKey != nil {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return v.publicKey, nil
	}
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, errors.New("unexpected signing method")
	}
	return v.secret, nil
}

// Verify แปลง token เป็น UserContext โดยใช้ sub claim เป็น user id
func (v *TokenVerifier) Verify(tokenString string) (*UserContext, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, v.keyFunc)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	// upload token ใช้แทน access token ไม่ได้
	for _, aud := range claims.Audience {
		if aud == UploadTokenAudience {
			return nil, ErrInvalidToken
		}
	}

	return &UserContext{ID: claims.Subject}, nil
}

func ExtractTokenFromHeader(authHeader string) string {
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}

	return parts[1]
}

func GetUserFromContext(c *fiber.Ctx) (*UserContext, error) {
	user := c.Locals(UserLocalsKey)
	if user == nil {
		return nil, errors.New("user not found in context")
	}

	userCtx, ok := user.(*UserContext)
	if !ok || userCtx.ID == "" {
		return nil, errors.New("invalid user context type")
	}

	return userCtx, nil
}
