package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	req := require.New(t)
	password := "Str0ng&Secret!pass"

	hash, err := HashPassword(password)
	req.NoError(err)
	req.NotEqual(password, hash)

	match, err := ComparePassword(password, hash)
	req.NoError(err)
	req.True(match)

	match, err = ComparePassword("Wr0ng&Secret!pass", hash)
	req.NoError(err)
	req.False(match)
}

func TestHashPassword_SaltsAreUnique(t *testing.T) {
	req := require.New(t)
	password := "Str0ng&Secret!pass"

	hash1, err := HashPassword(password)
	req.NoError(err)
	hash2, err := HashPassword(password)
	req.NoError(err)

	req.NotEqual(hash1, hash2)
}

func TestComparePassword_RejectsMalformedHash(t *testing.T) {
	req := require.New(t)

	_, err := ComparePassword("whatever", "not-an-encoded-hash")
	req.Error(err)
}

func TestIsPasswordComplex(t *testing.T) {
	req := require.New(t)

	req.True(isPasswordComplex("Abcdef123456!"))
	req.False(isPasswordComplex("alllowercase1!"))
	req.False(isPasswordComplex("ALLUPPERCASE1!"))
	req.False(isPasswordComplex("NoNumbersHere!"))
	req.False(isPasswordComplex("NoSpecials1234"))
}
