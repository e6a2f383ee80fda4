package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{name: "simple address", email: "ash@pallet.town", want: true},
		{name: "subdomain", email: "misty@gym.cerulean.city", want: true},
		{name: "local part specials", email: "ash.ketchum+pikachu_1%@pallet-town.net", want: true},
		{name: "uppercase accepted", email: "ASH@PALLET.TOWN", want: true},
		{name: "two letter tld", email: "ash@pallet.io", want: true},
		{name: "empty", email: "", want: false},
		{name: "missing at", email: "ash.pallet.town", want: false},
		{name: "missing tld", email: "ash@pallet", want: false},
		{name: "one letter tld", email: "ash@pallet.t", want: false},
		{name: "digit tld", email: "ash@pallet.12", want: false},
		{name: "spaces inside", email: "ash ketchum@pallet.town", want: false},
		{name: "missing local part", email: "@pallet.town", want: false},
		{name: "missing domain", email: "ash@.town", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidEmail(tt.email))
		})
	}
}

func TestIsValidPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{name: "six chars", password: "pikach", want: true},
		{name: "longer", password: "pikachu1", want: true},
		{name: "five chars", password: "pika1", want: false},
		{name: "empty", password: "", want: false},
		{name: "six multibyte runes", password: "пикачу", want: true},
		{name: "five multibyte runes", password: "пикач", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidPassword(tt.password))
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ash@pallet.town", NormalizeEmail("  ASH@Pallet.Town \n"))
	assert.Equal(t, "", NormalizeEmail("   "))
}

func TestNormalizeName(t *testing.T) {
	// Only whitespace is trimmed, case is preserved
	assert.Equal(t, "Ash Ketchum", NormalizeName("  Ash Ketchum \t"))
	assert.Equal(t, "", NormalizeName("   "))
}
