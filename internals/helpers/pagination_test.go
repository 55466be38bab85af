// file: internals/helpers/pagination_test.go
package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sortable = map[string]string{
	"created_at": "consent_created_at",
	"status":     "consent_status",
}

func TestSafeOrderClause_WhitelistOnly(t *testing.T) {
	p := Params{SortBy: "status", SortOrder: "asc"}
	clause, err := p.SafeOrderClause(sortable, "created_at")
	require.NoError(t, err)
	assert.Equal(t, "consent_status ASC", clause)
}

func TestSafeOrderClause_UnknownKeyFallsBackToDefault(t *testing.T) {
	// a hostile sort key never reaches the SQL
	p := Params{SortBy: "consent_status; DROP TABLE consents--", SortOrder: "desc"}
	clause, err := p.SafeOrderClause(sortable, "created_at")
	require.NoError(t, err)
	assert.Equal(t, "consent_created_at DESC", clause)
}

func TestSafeOrderClause_NoDefaultIsAnError(t *testing.T) {
	p := Params{SortBy: "nope"}
	_, err := p.SafeOrderClause(sortable, "also_nope")
	assert.Error(t, err)
}

func TestParamsOffset(t *testing.T) {
	p := Params{Page: 3, PerPage: 25}
	assert.Equal(t, 25, p.Limit())
	assert.Equal(t, 50, p.Offset())
}

func TestBuildMeta(t *testing.T) {
	meta := BuildMeta(101, Params{Page: 2, PerPage: 25})
	assert.Equal(t, int64(101), meta.Total)
	assert.Equal(t, 5, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)

	meta = BuildMeta(0, Params{Page: 1, PerPage: 25})
	assert.Equal(t, 0, meta.TotalPages)
	assert.False(t, meta.HasNext)
	assert.False(t, meta.HasPrev)
}
