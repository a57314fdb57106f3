package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// UploadTokenAudience audience ของ token ที่ใช้กับ local upload URL
const UploadTokenAudience = "attachment-upload"

var ErrUploadTokenMismatch = errors.New("upload token does not match attachment")

// GenerateUploadToken สร้าง token สำหรับอัปโหลด attachment เดียว หมดอายุตาม expiry
func GenerateUploadToken(secret, attachmentID string, expiry time.Duration, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   attachmentID,
		Audience:  jwt.ClaimStrings{UploadTokenAudience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateUploadToken ตรวจสอบ signature, วันหมดอายุ และ attachment id
func ValidateUploadToken(secret, tokenString, attachmentID string) error {
	if tokenString == "" {
		return ErrMissingToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	}, jwt.WithAudience(UploadTokenAudience), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ErrExpiredToken
		}
		return ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return ErrInvalidToken
	}
	if claims.Subject != attachmentID {
		return ErrUploadTokenMismatch
	}
	return nil
}
