package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := CreateToken(9, "owner@menulink.app", "user")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(9), claims.AccountID)
	assert.Equal(t, "owner@menulink.app", claims.Email)
	assert.Equal(t, "user", claims.Role)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestValidateToken_TamperedSignature(t *testing.T) {
	token, err := CreateToken(9, "owner@menulink.app", "admin")
	assert.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = ValidateToken(tampered)
	assert.Error(t, err, "middleware relies on a non-nil error for every invalid token")
}
