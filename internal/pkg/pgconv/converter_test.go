//go:build unit

package pgconv

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeOfDay(t *testing.T) {
	d := 11*time.Hour + 30*time.Minute
	assert.Equal(t, d, TimeOfDay(TimeOfDayToPgtype(d)))
}

func TestNullables(t *testing.T) {
	assert.Nil(t, StringPtrFromPgtype(pgtype.Text{}))
	assert.Nil(t, DatePtrFromPgtype(pgtype.Date{}))
	assert.False(t, DatePtrToPgtype(nil).Valid)

	f, err := Float64PtrFromNumeric(pgtype.Numeric{})
	require.NoError(t, err)
	assert.Nil(t, f)

	var n pgtype.Numeric
	require.NoError(t, n.Scan("3.5"))
	f, err = Float64PtrFromNumeric(n)
	require.NoError(t, err)
	require.NotNil(t, f)
	assert.InDelta(t, 3.5, *f, 0.0001)
}
