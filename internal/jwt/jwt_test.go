package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/authgate-dev/authgate/internal/domain"
)

var secretKey = "testJwtKey"
var user = domain.User{Id: 1, Email: "test@mail.ru", Username: "tester"}

func TestDecodeTokenCorrect(t *testing.T) {
	j := New(secretKey, 10*time.Second)
	token, err := j.NewToken(user)
	require.NoError(t, err)

	claims, err := j.DecodeToken(token)
	require.NoError(t, err)

	assert.Equal(t, float64(1), claims["uid"])
	assert.Equal(t, "test@mail.ru", claims["email"])

	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	assert.InDelta(t, time.Now().Add(10*time.Second).Unix(), int64(exp), 2)
}

func TestDecodeTokenExpired(t *testing.T) {
	j := New(secretKey, -time.Second)
	token, err := j.NewToken(user)
	require.NoError(t, err)

	_, err = j.DecodeToken(token)
	assert.Error(t, err, "expired token must not decode")
}

func TestDecodeTokenInvalidSecretKey(t *testing.T) {
	token, err := New(secretKey, 10*time.Second).NewToken(user)
	require.NoError(t, err)

	_, err = New("invalidSecret", 10*time.Second).DecodeToken(token)
	assert.Error(t, err, "token signed with a different secret must not decode")
}

func TestDecodeTokenGarbage(t *testing.T) {
	j := New(secretKey, 10*time.Second)
	_, err := j.DecodeToken("not.a.token")
	assert.Error(t, err)
}
