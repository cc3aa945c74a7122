package utils

import (
	"frontrow/src/types"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestRowLabel(t *testing.T) {
	assert.Equal(t, "A", RowLabel(0))
	assert.Equal(t, "B", RowLabel(1))
	assert.Equal(t, "H", RowLabel(7))
	assert.Equal(t, "", RowLabel(-1))
}

func TestGenerateJWT(t *testing.T) {
	token, err := GenerateJWT("someone@example.com", 42, types.ROLE_ADMIN)
	assert.Nil(t, err)
	assert.NotEmpty(t, token)

	claims := &types.Claims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(tk *jwt.Token) (any, error) {
		return jwtKey, nil
	})
	assert.Nil(t, err)
	assert.True(t, tkn.Valid)
	assert.Equal(t, "someone@example.com", claims.Username)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, string(types.ROLE_ADMIN), claims.Role)
}
