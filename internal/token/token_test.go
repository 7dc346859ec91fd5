package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"userpoint/internal/model"
)

func TestIssueAndVerify(t *testing.T) {
	assert := assert.New(t)

	svc := New("test-secret")
	userID := model.CreateID()

	credential, err := svc.Issue(userID)
	assert.Nil(err)
	assert.NotEmpty(credential)

	subject, err := svc.Verify(credential)
	assert.Nil(err)
	assert.Equal(userID, subject)
}

func TestVerifyWrongSecret(t *testing.T) {
	assert := assert.New(t)

	credential, err := New("right-secret").Issue("user-1")
	assert.Nil(err)

	_, err = New("wrong-secret").Verify(credential)
	assert.ErrorIs(err, model.ErrorInvalidToken)
}

func TestVerifyTampered(t *testing.T) {
	assert := assert.New(t)

	svc := New("test-secret")
	credential, err := svc.Issue("user-1")
	assert.Nil(err)

	tampered := []byte(credential)
	tampered[len(tampered)/2] ^= 0x01

	_, err = svc.Verify(string(tampered))
	assert.ErrorIs(err, model.ErrorInvalidToken)
}

func TestVerifyExpired(t *testing.T) {
	assert := assert.New(t)

	secret := "test-secret"
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-25 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
		UserID: "user-1",
	})
	signed, err := expired.SignedString([]byte(secret))
	assert.Nil(err)

	_, err = New(secret).Verify(signed)
	assert.ErrorIs(err, model.ErrorTokenExpired)
}

func TestVerifyMalformed(t *testing.T) {
	assert := assert.New(t)

	_, err := New("test-secret").Verify("not.a.token")
	assert.ErrorIs(err, model.ErrorInvalidToken)
}

func TestVerifyMissingSubject(t *testing.T) {
	assert := assert.New(t)

	secret := "test-secret"
	anonymous := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := anonymous.SignedString([]byte(secret))
	assert.Nil(err)

	_, err = New(secret).Verify(signed)
	assert.ErrorIs(err, model.ErrorInvalidToken)
}
