package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenValid_Boundary(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		expiresAt time.Time
		want      bool
	}{
		{
			name:      "Well before buffer",
			expiresAt: now.Add(time.Hour),
			want:      true,
		},
		{
			name:      "One second outside buffer",
			expiresAt: now.Add(ExpiryBuffer + time.Second),
			want:      true,
		},
		{
			name:      "Exactly at buffer is invalid",
			expiresAt: now.Add(ExpiryBuffer),
			want:      false,
		},
		{
			name:      "Inside buffer",
			expiresAt: now.Add(time.Minute),
			want:      false,
		},
		{
			name:      "Already expired",
			expiresAt: now.Add(-time.Minute),
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := &Token{Bearer: "Bearer abc", ExpiresAt: tt.expiresAt}
			assert.Equal(t, tt.want, tok.Valid(now))
		})
	}
}

func TestTokenValid_NilAndEmpty(t *testing.T) {
	now := time.Now()

	var nilTok *Token
	assert.False(t, nilTok.Valid(now))

	assert.False(t, (&Token{ExpiresAt: now.Add(time.Hour)}).Valid(now))
	assert.False(t, (&Token{Bearer: "Bearer abc"}).Valid(now))
}

func TestTokenAccessToken(t *testing.T) {
	tok := &Token{Bearer: "Bearer eyJ0eXAi"}
	assert.Equal(t, "eyJ0eXAi", tok.AccessToken())

	var nilTok *Token
	assert.Empty(t, nilTok.AccessToken())
}

func TestHasBearerPrefix(t *testing.T) {
	assert.True(t, HasBearerPrefix("Bearer abc"))
	assert.False(t, HasBearerPrefix("bearer abc"))
	assert.False(t, HasBearerPrefix("abc"))
}

func TestStateOf(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		tok  *Token
		want TokenState
	}{
		{
			name: "Nil token is absent",
			tok:  nil,
			want: StateAbsent,
		},
		{
			name: "Empty bearer is absent",
			tok:  &Token{ExpiresAt: now.Add(time.Hour)},
			want: StateAbsent,
		},
		{
			name: "Usable token is valid",
			tok:  &Token{Bearer: "Bearer a", ExpiresAt: now.Add(time.Hour)},
			want: StateValid,
		},
		{
			name: "Inside buffer is expiring soon",
			tok:  &Token{Bearer: "Bearer a", ExpiresAt: now.Add(2 * time.Minute)},
			want: StateExpiringSoon,
		},
		{
			name: "Past expiry is expired",
			tok:  &Token{Bearer: "Bearer a", ExpiresAt: now.Add(-time.Second)},
			want: StateExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StateOf(tt.tok, now))
		})
	}
}

func TestMemberCardRequest_MissingFields(t *testing.T) {
	req := MemberCardRequest{MemberID: "123", FirstName: "JANE"}
	missing := req.MissingFields()
	assert.Equal(t, []string{"transaction_id", "payer_id", "date_of_birth"}, missing)
	require.Error(t, req.Validate())

	full := MemberCardRequest{
		TransactionID: "t", MemberID: "m", DateOfBirth: "1990-01-15",
		PayerID: "p", FirstName: "f",
	}
	assert.Empty(t, full.MissingFields())
	assert.NoError(t, full.Validate())
}

func TestCardResult_ImageExtension(t *testing.T) {
	tests := []struct {
		name string
		res  *CardResult
		want string
	}{
		{
			name: "PNG magic",
			res:  &CardResult{Image: []byte{0x89, 'P', 'N', 'G', 0x0d}},
			want: ".png",
		},
		{
			name: "JPEG magic",
			res:  &CardResult{Image: []byte{0xff, 0xd8, 0xff, 0xe0}},
			want: ".jpg",
		},
		{
			name: "GIF magic",
			res:  &CardResult{Image: []byte("GIF89a")},
			want: ".gif",
		},
		{
			name: "BMP magic",
			res:  &CardResult{Image: []byte("BM1234")},
			want: ".bmp",
		},
		{
			name: "Content type fallback",
			res:  &CardResult{Image: []byte{0x00, 0x01}, ContentType: "image/png"},
			want: ".png",
		},
		{
			name: "Unknown bytes",
			res:  &CardResult{Image: []byte{0x00, 0x01}, ContentType: OctetStream},
			want: ".bin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.res.ImageExtension())
		})
	}
}
