package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFound("product with id: %d not found", 7)))
	assert.Equal(t, KindInvalidArgument, KindOf(InvalidArgument("query is blank")))
	assert.Equal(t, KindValidationFailed, KindOf(ValidationFailed(nil)))
	assert.Equal(t, KindDuplicateValue, KindOf(Duplicate("sku")))
	assert.Equal(t, KindInvalidCredentials, KindOf(InvalidCredentials()))
	assert.Equal(t, KindAccountDisabled, KindOf(AccountDisabled()))
	assert.Equal(t, KindInternal, KindOf(Internal(errors.New("boom"))))
}

func TestKindOf_unclassifiedIsInternal(t *testing.T) {
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))
	assert.Equal(t, KindInternal, KindOf(nil))
}

func TestKindOf_wrapped(t *testing.T) {
	err := fmt.Errorf("loading product: %w", NotFound("product with id: %d not found", 7))
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestIs_matchesByKind(t *testing.T) {
	assert.ErrorIs(t, NotFound("product with id: %d not found", 7), NotFound(""))
	assert.NotErrorIs(t, NotFound("gone"), InvalidArgument(""))
	assert.NotErrorIs(t, NotFound("gone"), errors.New("gone"))
}

func TestDuplicate_details(t *testing.T) {
	assert.Equal(t, map[string][]string{"email": {"already exists"}}, Duplicate("email").Details)
	assert.Nil(t, Duplicate("").Details, "an unattributed duplicate carries no field detail")
}

func TestDetailsOf(t *testing.T) {
	details := map[string][]string{"name": {"must not be blank"}}
	assert.Equal(t, details, DetailsOf(ValidationFailed(details)))
	assert.Nil(t, DetailsOf(errors.New("plain")))
	assert.Nil(t, DetailsOf(nil))
}

func TestInternal_hidesCauseBehindGenericMessage(t *testing.T) {
	cause := errors.New("pool exhausted")
	err := Internal(cause)
	assert.Equal(t, "Internal server error: pool exhausted", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Internal server error", err.Message, "only Message ever reaches the wire")
}
