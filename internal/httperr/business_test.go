package httperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsBusiness(t *testing.T) {
	err := ErrBusiness(CodeSlotTaken)

	assert.True(t, IsBusiness(err, CodeSlotTaken))
	assert.False(t, IsBusiness(err, CodeCapacityExceeded))
	assert.False(t, IsBusiness(nil, CodeSlotTaken))
	assert.False(t, IsBusiness(errors.New("slot_taken"), CodeSlotTaken))
}

func TestIsBusiness_Wrapped(t *testing.T) {
	err := fmt.Errorf("creating booking: %w", ErrBusiness(CodeCapacityExceeded))

	assert.True(t, IsBusiness(err, CodeCapacityExceeded))
}

func TestBusinessError_Error(t *testing.T) {
	assert.Equal(t, "not_owner", ErrBusiness(CodeNotOwner).Error())
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))

	// foreign key violation is a different failure
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("duplicate key value")))
	assert.False(t, IsUniqueViolation(nil))
}
