package usecase

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateKeyError(t *testing.T) {
	uniqueViolation := &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "users_email_key",
	}

	assert.True(t, isDuplicateKeyError(uniqueViolation, "email"))
	assert.True(t, isDuplicateKeyError(fmt.Errorf("create user: %w", uniqueViolation), "email"))
	assert.False(t, isDuplicateKeyError(uniqueViolation, "license_plate"))
	assert.False(t, isDuplicateKeyError(errors.New("connection reset"), "email"))

	fkViolation := &pgconn.PgError{Code: "23503", ConstraintName: "users_email_key"}
	assert.False(t, isDuplicateKeyError(fkViolation, "email"), "wrong error code")
}

func TestIsForeignKeyError(t *testing.T) {
	fkViolation := &pgconn.PgError{
		Code:           "23503",
		ConstraintName: "users_role_id_fkey",
	}

	assert.True(t, isForeignKeyError(fkViolation, "role"))
	assert.True(t, isForeignKeyError(fmt.Errorf("create user: %w", fkViolation), "ROLE"))
	assert.False(t, isForeignKeyError(fkViolation, "vehicle"))
	assert.False(t, isForeignKeyError(nil, "role"))
}
