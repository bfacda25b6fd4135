package generate

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"vapor-go/packages/compiler/src/ir"
)

func directiveOps(elements ...int) []*ir.WithDirectiveIRNode {
	ops := make([]*ir.WithDirectiveIRNode, len(elements))
	for i, el := range elements {
		ops[i] = &ir.WithDirectiveIRNode{Element: el, Dir: ir.DirectiveNode{Name: string(rune('a' + i))}}
	}
	return ops
}

func TestGroupDirectives(t *testing.T) {
	t.Run("should group by element in order of first appearance", func(t *testing.T) {
		ops := directiveOps(1, 2, 1, 3, 2)
		groups := groupDirectives(ops)

		var got [][]string
		for _, g := range groups {
			var names []string
			for _, op := range g {
				names = append(names, op.Dir.Name)
			}
			got = append(got, names)
		}
		want := [][]string{{"a", "c"}, {"b", "e"}, {"d"}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("groups mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should return no groups for no directives", func(t *testing.T) {
		if groups := groupDirectives(nil); len(groups) != 0 {
			t.Errorf("expected no groups, got %d", len(groups))
		}
	})

	t.Run("should be a stable partition", func(t *testing.T) {
		parameters := gopter.DefaultTestParameters()
		parameters.MinSuccessfulTests = 200
		properties := gopter.NewProperties(parameters)

		properties.Property("groups keep IR order and first-occurrence order", prop.ForAll(
			func(elements []int) bool {
				ops := directiveOps(elements...)
				position := make(map[*ir.WithDirectiveIRNode]int, len(ops))
				for i, op := range ops {
					position[op] = i
				}

				groups := groupDirectives(ops)
				seen := make(map[int]bool)
				total := 0
				lastFirst := -1
				for _, g := range groups {
					if len(g) == 0 || seen[g[0].Element] {
						return false
					}
					seen[g[0].Element] = true
					// groups start at the first occurrence of their element
					if position[g[0]] <= lastFirst {
						return false
					}
					lastFirst = position[g[0]]
					for i, op := range g {
						if op.Element != g[0].Element {
							return false
						}
						if i > 0 && position[op] <= position[g[i-1]] {
							return false
						}
					}
					total += len(g)
				}
				return total == len(ops)
			},
			gen.SliceOf(gen.IntRange(0, 5)),
		))

		properties.TestingRun(t)
	})
}
