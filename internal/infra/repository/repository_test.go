//go:build unit

package repository

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"nagoyameshi/internal/domain/user"
	"nagoyameshi/internal/infra"
	"nagoyameshi/tests/common/builder"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDBTX struct {
	mock.Mock
}

func (m *MockDBTX) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	called := m.Called(ctx, sql, args)
	return called.Get(0).(pgconn.CommandTag), called.Error(1)
}

func (m *MockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	called := m.Called(ctx, sql, args)
	rows, _ := called.Get(0).(pgx.Rows)
	return rows, called.Error(1)
}

func (m *MockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	called := m.Called(ctx, sql, args)
	return called.Get(0).(pgx.Row)
}

type idRow struct {
	id  int64
	err error
}

func (r idRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*int64) = r.id
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestReviewRepository_Create(t *testing.T) {
	tests := []struct {
		name     string
		row      idRow
		wantID   int64
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success", row: idRow{id: 11}, wantID: 11},
		{
			name:     "unique index violation",
			row:      idRow{err: &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}},
			wantKind: infra.KindDuplicateKey,
		},
		{
			name:     "restaurant deleted concurrently",
			row:      idRow{err: &pgconn.PgError{Code: "23503"}},
			wantKind: infra.KindForeignKeyViolated,
		},
		{name: "connection failure", row: idRow{err: assert.AnError}, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rev, err := builder.NewReviewBuilder().BuildDomain()
			require.NoError(t, err)

			db := new(MockDBTX)
			db.On("QueryRow", mock.Anything, mock.Anything, mock.Anything).Return(tt.row)

			id, err := NewReviewRepository(db, discardLogger()).Create(context.Background(), rev)

			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestReviewRepository_DeleteMissing(t *testing.T) {
	db := new(MockDBTX)
	db.On("Exec", mock.Anything, mock.Anything, []any{int64(5)}).Return(pgconn.NewCommandTag("DELETE 0"), nil)

	err := NewReviewRepository(db, discardLogger()).Delete(context.Background(), 5)

	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestRestaurantRepository_DeleteRemovesChildrenFirst(t *testing.T) {
	db := new(MockDBTX)
	for _, stmt := range deleteRestaurantSQL {
		db.On("Exec", mock.Anything, stmt, []any{int64(3)}).Return(pgconn.NewCommandTag("DELETE 1"), nil).Once()
	}
	db.On("Exec", mock.Anything, `DELETE FROM restaurants WHERE id = $1`, []any{int64(3)}).
		Return(pgconn.NewCommandTag("DELETE 1"), nil).Once()

	require.NoError(t, NewRestaurantRepository(db, discardLogger()).Delete(context.Background(), 3))

	require.Len(t, db.Calls, len(deleteRestaurantSQL)+1)
	for i, stmt := range deleteRestaurantSQL {
		assert.Equal(t, stmt, db.Calls[i].Arguments.String(1))
	}
	assert.Equal(t, `DELETE FROM restaurants WHERE id = $1`, db.Calls[len(deleteRestaurantSQL)].Arguments.String(1))
}

func TestRestaurantRepository_DeleteStopsOnChildFailure(t *testing.T) {
	db := new(MockDBTX)
	db.On("Exec", mock.Anything, deleteRestaurantSQL[0], []any{int64(3)}).Return(pgconn.CommandTag{}, assert.AnError)

	err := NewRestaurantRepository(db, discardLogger()).Delete(context.Background(), 3)

	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	db.AssertNumberOfCalls(t, "Exec", 1)
}

func TestRestaurantRepository_LinkWritesSkipEmptySets(t *testing.T) {
	db := new(MockDBTX)
	repo := NewRestaurantRepository(db, discardLogger())
	ctx := context.Background()

	require.NoError(t, repo.InsertCategoryLinks(ctx, 3, nil))
	require.NoError(t, repo.InsertHolidayLinks(ctx, 3, []int64{}))
	require.NoError(t, repo.DeleteCategoryLinks(ctx, nil))
	require.NoError(t, repo.DeleteHolidayLinks(ctx, []int64{}))
	db.AssertNotCalled(t, "Exec", mock.Anything, mock.Anything, mock.Anything)

	db.On("Exec", mock.Anything, insertCategoryLinksSQL, []any{int64(3), []int64{2, 4}}).
		Return(pgconn.NewCommandTag("INSERT 0 2"), nil).Once()
	require.NoError(t, repo.InsertCategoryLinks(ctx, 3, []int64{2, 4}))
	db.AssertExpectations(t)
}

func TestUserRepository_UpdateRole(t *testing.T) {
	tests := []struct {
		name     string
		tag      pgconn.CommandTag
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success", tag: pgconn.NewCommandTag("UPDATE 1")},
		{name: "unknown user", tag: pgconn.NewCommandTag("UPDATE 0"), wantKind: infra.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := new(MockDBTX)
			db.On("Exec", mock.Anything, mock.Anything, mock.MatchedBy(func(args []any) bool {
				return len(args) == 3 && args[0] == int64(9) && args[1] == string(user.RolePaidMember)
			})).Return(tt.tag, nil)

			err := NewUserRepository(db, discardLogger()).UpdateRole(context.Background(), 9, user.RolePaidMember)

			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind))
				return
			}
			assert.NoError(t, err)
		})
	}
}
