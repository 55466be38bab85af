// file: internals/lifecycle/entity_test.go
package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntitiesCoverVocabulary(t *testing.T) {
	es := Entities()
	assert.Len(t, es, len(vocabulary))
	for _, e := range es {
		assert.NotEmpty(t, Statuses(e), "entity %s has no statuses", e)
	}
}

func TestParseEntity(t *testing.T) {
	e, err := ParseEntity("  Monthly_Transfer ")
	require.NoError(t, err)
	assert.Equal(t, EntityMonthlyTransfer, e)

	_, err = ParseEntity("lecture")
	assert.Error(t, err)
	assert.Equal(t, CodeUnknownStatus, CodeOf(err))
}
