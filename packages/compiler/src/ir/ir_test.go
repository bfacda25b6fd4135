package ir_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"vapor-go/packages/compiler/src/ir"
)

func TestIR(t *testing.T) {
	t.Run("should combine dynamic flags", func(t *testing.T) {
		flags := ir.DynamicReferenced | ir.DynamicInsert
		require.True(t, flags.Has(ir.DynamicReferenced))
		require.True(t, flags.Has(ir.DynamicInsert))
		require.False(t, flags.Has(ir.DynamicNonTemplate))
		require.True(t, flags.Has(ir.DynamicNone))
	})

	t.Run("should list the operation kinds", func(t *testing.T) {
		kinds := ir.OperationKinds()
		require.Len(t, kinds, 12)
		require.Equal(t, ir.IRNodeTypeSetProp, kinds[0])
		require.Equal(t, ir.IRNodeTypeWithDirective, kinds[len(kinds)-1])
		for _, k := range kinds {
			require.NotEqual(t, "unknown", k.String())
		}
	})

	t.Run("should read expression content", func(t *testing.T) {
		require.Equal(t, "a", ir.ExpressionContent(ir.RawExpression("a")))
		require.Equal(t, "b", ir.ExpressionContent(ir.NewSimpleExpression("b", true, nil)))
		require.Equal(t, "", ir.ExpressionContent(nil))
		require.True(t, ir.IsStaticExpression(ir.NewSimpleExpression("b", true, nil)))
		require.False(t, ir.IsStaticExpression(ir.RawExpression("b")))
	})
}
