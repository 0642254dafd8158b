package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"gpu_store/internal/model"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE email = $1`)).
		WithArgs("nobody@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "password_hash", "name", "phone", "address", "date_of_birth", "role", "created_at"}))

	user, err := repo.FindByEmail(context.Background(), "nobody@example.com")

	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdateProfile_NullDateOfBirth(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)

	name := "Jane"
	phone := "+998901234567"
	user := &model.User{ID: 5, Name: &name, Phone: &phone, Address: nil, DateOfBirth: nil}

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET name = $1, phone = $2, address = $3, date_of_birth = $4`)).
		WithArgs(&name, &phone, pgxmock.AnyArg(), pgxmock.AnyArg(), 5).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.UpdateProfile(context.Background(), user)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdateProfile_ParsedDateOfBirth(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)

	dob := time.Date(1995, 4, 12, 0, 0, 0, 0, time.UTC)
	user := &model.User{ID: 5, DateOfBirth: &dob}

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET`)).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), &dob, 5).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.UpdateProfile(context.Background(), user)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdateProfile_MissingUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET`)).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), 99).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = repo.UpdateProfile(context.Background(), &model.User{ID: 99})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
