package utils

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signHS256(t *testing.T, secret string, claims jwt.Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestTokenVerifier_HS256(t *testing.T) {
	v, err := NewTokenVerifier("test-secret", "")
	require.NoError(t, err)

	future := jwt.NewNumericDate(time.Now().Add(time.Hour))
	past := jwt.NewNumericDate(time.Now().Add(-time.Hour))

	tests := []struct {
		name    string
		token   string
		wantID  string
		wantErr error
	}{
		{"valid token", signHS256(t, "test-secret", jwt.RegisteredClaims{Subject: "auth0|u1", ExpiresAt: future}), "auth0|u1", nil},
		{"bearer prefix tolerated", "Bearer " + signHS256(t, "test-secret", jwt.RegisteredClaims{Subject: "u2"}), "u2", nil},
		{"expired", signHS256(t, "test-secret", jwt.RegisteredClaims{Subject: "u1", ExpiresAt: past}), "", ErrExpiredToken},
		{"wrong secret", signHS256(t, "other", jwt.RegisteredClaims{Subject: "u1"}), "", ErrInvalidToken},
		{"missing subject", signHS256(t, "test-secret", jwt.RegisteredClaims{ExpiresAt: future}), "", ErrInvalidToken},
		{"empty", "", "", ErrMissingToken},
		{"garbage", "not-a-jwt", "", ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := v.Verify(tt.token)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, user.ID)
		})
	}
}

func TestTokenVerifier_RS256(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	pemKey := string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))

	v, err := NewTokenVerifier("", pemKey)
	require.NoError(t, err)

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{Subject: "u1"}).SignedString(key)
	require.NoError(t, err)

	user, err := v.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)

	// HS256 token ต้องไม่ผ่านเมื่อใช้ RS256
	_, err = v.Verify(signHS256(t, "whatever", jwt.RegisteredClaims{Subject: "u1"}))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewTokenVerifier_RequiresKey(t *testing.T) {
	_, err := NewTokenVerifier("", "")
	assert.ErrorIs(t, err, ErrNoVerifyKey)

	_, err = NewTokenVerifier("", "not a pem")
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"Bearer abc", "abc"},
		{"bearer abc", ""},
		{"Basic abc", ""},
		{"Bearer", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractTokenFromHeader(tt.header), tt.header)
	}
}

func TestUploadToken(t *testing.T) {
	now := time.Now()

	token, err := GenerateUploadToken("upload-secret", "att-123", 5*time.Minute, now)
	require.NoError(t, err)

	assert.NoError(t, ValidateUploadToken("upload-secret", token, "att-123"))
	assert.ErrorIs(t, ValidateUploadToken("upload-secret", token, "att-999"), ErrUploadTokenMismatch)
	assert.ErrorIs(t, ValidateUploadToken("other-secret", token, "att-123"), ErrInvalidToken)
	assert.ErrorIs(t, ValidateUploadToken("upload-secret", "", "att-123"), ErrMissingToken)

	expired, err := GenerateUploadToken("upload-secret", "att-123", time.Minute, now.Add(-time.Hour))
	require.NoError(t, err)
	assert.ErrorIs(t, ValidateUploadToken("upload-secret", expired, "att-123"), ErrExpiredToken)
}

func TestUploadToken_RejectsAccessTokenAudience(t *testing.T) {
	access := signHS256(t, "upload-secret", jwt.RegisteredClaims{
		Subject:   "att-123",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	assert.ErrorIs(t, ValidateUploadToken("upload-secret", access, "att-123"), ErrInvalidToken)
}

func TestTokenVerifier_RejectsUploadToken(t *testing.T) {
	verifier, err := NewTokenVerifier("shared-secret", "")
	require.NoError(t, err)

	// แม้ sign ด้วย secret เดียวกัน upload token ก็ใช้เป็น identity ไม่ได้
	upload, err := GenerateUploadToken("shared-secret", "victim-user", 5*time.Minute, time.Now())
	require.NoError(t, err)

	_, err = verifier.Verify(upload)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

type attachBody struct {
	AttachmentID string `validate:"required,attachmentid"`
}

func TestValidateStruct_AttachmentID(t *testing.T) {
	tests := []struct {
		id    string
		valid bool
	}{
		{"att-123", true},
		{"photo.v2_final", true},
		{"", false},
		{"..", false},
		{"a/b", false},
		{"../etc/passwd", false},
		{"has space", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			err := ValidateStruct(&attachBody{AttachmentID: tt.id})
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, GetValidationErrors(err), "AttachmentID")
		})
	}
}
