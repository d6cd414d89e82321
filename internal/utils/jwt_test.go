package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer  = "signbridge"
	testSignKey = "test-sign-key"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, 42, "alice@example.com", time.Hour, testSignKey)
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, int64(42), token.Claims.UserID)
	assert.Equal(t, "alice@example.com", token.Claims.Email)
	assert.Equal(t, testIssuer, token.Claims.Issuer)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.Claims.ExpiresAt.Time, 5*time.Second)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		email    string
		duration time.Duration
		signKey  string
	}{
		{name: "empty issuer", email: "a@x.com", duration: time.Hour, signKey: testSignKey},
		{name: "empty email", issuer: testIssuer, duration: time.Hour, signKey: testSignKey},
		{name: "zero duration", issuer: testIssuer, email: "a@x.com", signKey: testSignKey},
		{name: "empty sign key", issuer: testIssuer, email: "a@x.com", duration: time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, tt.email, tt.duration, tt.signKey)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_Roundtrip(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, 7, "bob@example.com", time.Hour, testSignKey)
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer)
	require.NoError(t, err)

	assert.Equal(t, int64(7), parsed.Claims.UserID)
	assert.Equal(t, "bob@example.com", parsed.Claims.Email)
}

func TestValidateAndParseJWTToken_WrongSignKey(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, 7, "bob@example.com", time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, "another-key", testIssuer)
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	issued, err := GenerateJWTToken("someone-else", 7, "bob@example.com", time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer)
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, 7, "bob@example.com", -time.Minute, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer)
	assert.Error(t, err)
}

// TestValidateAndParseJWTToken_Tampered flips one character of the payload
// and expects the signature check to fail.
func TestValidateAndParseJWTToken_Tampered(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, 7, "bob@example.com", time.Hour, testSignKey)
	require.NoError(t, err)

	parts := strings.Split(issued.SignedString, ".")
	require.Len(t, parts, 3)

	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, err = ValidateAndParseJWTToken(tampered, testSignKey, testIssuer)
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_Garbage(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", testSignKey, testIssuer)
	assert.Error(t, err)
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "empty header", header: "", wantErr: true},
		{name: "wrong scheme", header: "Basic abc", wantErr: true},
		{name: "lowercase scheme", header: "bearer abc", wantErr: true},
		{name: "no token", header: "Bearer ", wantErr: true},
		{name: "token only", header: "abc.def.ghi", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
