package common

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestDeleteMovieCascade(t *testing.T) {
	mock, cleanup := newMockDB(t)
	defer cleanup()

	movieID := uuid.New()
	showtimeID := uuid.New()
	ticketID := uuid.New()

	// Ordered expectations pin the cascade: booked seats, ticket seats,
	// tickets, seat prices, showtimes, then the movie, in one transaction.
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "movies"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(movieID.String()))
	mock.ExpectQuery(`SELECT .* FROM "showtimes"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(showtimeID.String()))
	mock.ExpectQuery(`SELECT .* FROM "tickets"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(ticketID.String()))
	mock.ExpectExec(`DELETE FROM "booked_seats"`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "ticket_seats"`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "tickets"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "seat_prices"`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "showtimes"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "movies"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := DeleteMovieCascade(movieID.String())

	assert.Nil(t, err)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestDeleteMovieCascadeMissingMovie(t *testing.T) {
	mock, cleanup := newMockDB(t)
	defer cleanup()

	movieID := uuid.New()
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "movies"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	err := DeleteMovieCascade(movieID.String())

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestDeleteMovieCascadeRejectsMalformedID(t *testing.T) {
	err := DeleteMovieCascade("not-a-uuid")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
