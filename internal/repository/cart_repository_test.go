package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

func TestFindPairForUpdateLocksRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCartRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM `cart_items` WHERE session_id = (.+) AND medicine_id = (.+) FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "session_id", "medicine_id", "quantity"}).
			AddRow(7, "sess-1", 2, 3))

	item, err := repo.FindPairForUpdate(context.Background(), "sess-1", 2)
	require.NoError(t, err)
	assert.Equal(t, uint(7), item.ID)
	assert.Equal(t, 3, item.Quantity)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindBySessionForUpdateLocksRows(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCartRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM `cart_items` WHERE session_id = (.+) FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "session_id", "medicine_id", "quantity"}).
			AddRow(1, "sess-1", 2, 1).
			AddRow(2, "sess-1", 5, 4))

	items, err := repo.FindBySessionForUpdate(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Len(t, items, 2)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindBySessionHasNoLock(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCartRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM `cart_items` WHERE session_id = (.+) ORDER BY id$").
		WillReturnRows(sqlmock.NewRows([]string{"id", "session_id", "medicine_id", "quantity"}).
			AddRow(1, "sess-1", 2, 1))

	items, err := repo.FindBySession(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Len(t, items, 1)

	assert.NoError(t, mock.ExpectationsWereMet())
}
