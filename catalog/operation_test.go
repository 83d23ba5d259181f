package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOperation(t *testing.T) {
	t.Run("known names", func(t *testing.T) {
		tests := map[string]Operation{
			"GetBrowseNodes": OperationGetBrowseNodes,
			"GetItems":       OperationGetItems,
			"GetVariations":  OperationGetVariations,
		}

		for name, want := range tests {
			op, err := ParseOperation(name)
			require.NoError(t, err)
			assert.Equal(t, want, op)
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		for _, name := range []string{"DeleteItems", "getitems", "SearchItems", ""} {
			_, err := ParseOperation(name)
			assert.ErrorIs(t, err, ErrInvalidOperation, "name %q", name)
		}
	})
}

func TestOperationString(t *testing.T) {
	assert.Equal(t, "GetBrowseNodes", OperationGetBrowseNodes.String())
	assert.Equal(t, "GetItems", OperationGetItems.String())
	assert.Equal(t, "GetVariations", OperationGetVariations.String())
	assert.Equal(t, "Operation(0)", Operation(0).String())
}

func TestOperationTarget(t *testing.T) {
	assert.Equal(t, "com.amazon.paapi5.v1.ProductAdvertisingAPIv1.GetItems", OperationGetItems.Target())
	assert.Equal(t, "com.amazon.paapi5.v1.ProductAdvertisingAPIv1.GetVariations", OperationGetVariations.Target())
	assert.Equal(t, "com.amazon.paapi5.v1.ProductAdvertisingAPIv1.GetBrowseNodes", OperationGetBrowseNodes.Target())
}

func TestOperationValid(t *testing.T) {
	assert.True(t, OperationGetBrowseNodes.Valid())
	assert.True(t, OperationGetItems.Valid())
	assert.True(t, OperationGetVariations.Valid())
	assert.False(t, Operation(0).Valid())
	assert.False(t, Operation(4).Valid())
}
