package validation

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerPayload struct {
	Email    string `json:"email" binding:"required,email,max=254"`
	Username string `json:"username" binding:"required,min=3,max=32"`
	Password string `json:"password" binding:"required,pwd"`
}

func bindDetails(t *testing.T, body string) map[string][]string {
	t.Helper()
	Init()
	var payload registerPayload
	err := binding.JSON.BindBody([]byte(body), &payload)
	require.Error(t, err)
	return ToDetails(err)
}

func TestToDetails_usesJSONFieldNames(t *testing.T) {
	details := bindDetails(t, `{"email":"not-an-email","username":"jd","password":"longenough"}`)

	assert.Equal(t, map[string][]string{
		"email":    {"must be a valid email"},
		"username": {"must be at least 3 characters long"},
	}, details)
}

func TestToDetails_requiredFields(t *testing.T) {
	details := bindDetails(t, `{}`)

	assert.Equal(t, []string{"is required"}, details["email"])
	assert.Equal(t, []string{"is required"}, details["username"])
}

func TestToDetails_passwordViolationsAreNeverEchoed(t *testing.T) {
	details := bindDetails(t, `{"email":"john@example.com","username":"john","password":"short"}`)

	_, present := details["password"]
	assert.False(t, present, "password details never reach the client")
	assert.Empty(t, details)
}

func TestToDetails_malformedJSON(t *testing.T) {
	assert.Equal(t,
		map[string][]string{"payload": {"invalid json"}},
		bindDetails(t, `{"email": }`))
}

func TestToDetails_typeMismatch(t *testing.T) {
	assert.Equal(t,
		map[string][]string{"payload": {"invalid json"}},
		bindDetails(t, `{"email":123,"username":"john","password":"longenough"}`))
}

func TestToDetails_fallback(t *testing.T) {
	assert.Equal(t,
		map[string][]string{"payload": {"invalid payload"}},
		ToDetails(errors.New("EOF")))
	assert.Nil(t, ToDetails(nil))
}
