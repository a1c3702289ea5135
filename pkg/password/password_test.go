package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("S3cure-pass!")
	require.NoError(t, err)
	assert.NotEqual(t, "S3cure-pass!", hash)

	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("S3cure-pass!")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("wrong")))
}

func TestNewBcryptHasherClampsCost(t *testing.T) {
	h := NewBcryptHasher(100).(*bcryptHasher)
	assert.Equal(t, bcrypt.DefaultCost, h.cost)
}

func TestPolicyValidate(t *testing.T) {
	p := DefaultPolicy()

	tests := []struct {
		name     string
		password string
		attrs    []Attribute
		want     []string
	}{
		{
			name:     "strong password",
			password: "violet-harbor-92",
			attrs:    []Attribute{{Label: "username", Value: "alice"}},
		},
		{
			name:     "too short",
			password: "x7#Lq",
			want:     []string{"This password is too short. It must contain at least 8 characters."},
		},
		{
			name:     "common",
			password: "Password123",
			want:     []string{"This password is too common."},
		},
		{
			name:     "numeric and common",
			password: "12345678",
			want:     []string{"This password is too common.", "This password is entirely numeric."},
		},
		{
			name:     "numeric only",
			password: "90817263",
			want:     []string{"This password is entirely numeric."},
		},
		{
			name:     "longer than bcrypt accepts",
			password: "Violet-Harbor-91-" + strings.Repeat("q", 60),
			want:     []string{"This password is too long. It must contain at most 72 bytes."},
		},
		{
			name:     "multibyte runes counted in bytes",
			password: strings.Repeat("é", 37),
			want:     []string{"This password is too long. It must contain at most 72 bytes."},
		},
		{
			name:     "similar to username",
			password: "johnsmith1",
			attrs:    []Attribute{{Label: "username", Value: "johnsmith"}},
			want:     []string{"The password is too similar to the username."},
		},
		{
			name:     "similar to email local part",
			password: "marylou.k",
			attrs:    []Attribute{{Label: "email address", Value: "marylou.k@example.com"}},
			want:     []string{"The password is too similar to the email address."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Validate(tt.password, tt.attrs...))
		})
	}
}

func TestQuickRatio(t *testing.T) {
	assert.InDelta(t, 1.0, quickRatio("abc", "cba"), 1e-9)
	assert.InDelta(t, 0.0, quickRatio("abc", "xyz"), 1e-9)
	assert.InDelta(t, 0.5, quickRatio("ab", "ac"), 1e-9)
}

func TestExceedsLengthRatio(t *testing.T) {
	assert.True(t, exceedsLengthRatio("averyverylongpassword", "ab", 0.7))
	assert.False(t, exceedsLengthRatio("password", "pass", 0.7))
}
