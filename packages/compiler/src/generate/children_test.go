package generate

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"vapor-go/packages/compiler/src/ir"
)

func TestGenChildren(t *testing.T) {
	tests := []struct {
		name     string
		children []*ir.IRDynamicInfo
		want     string
	}{
		{
			name:     "should omit the index when nothing is referenced",
			children: []*ir.IRDynamicInfo{{ID: 1}, {ID: 2, Children: []*ir.IRDynamicInfo{{ID: 3}}}},
			want:     "",
		},
		{
			name:     "should reference a direct child",
			children: []*ir.IRDynamicInfo{{ID: 1, DynamicFlags: ir.DynamicReferenced}},
			want:     "{ 0: [n1],}",
		},
		{
			name: "should skip unreferenced siblings but keep their slots",
			children: []*ir.IRDynamicInfo{
				{ID: 1},
				{ID: 2, DynamicFlags: ir.DynamicReferenced},
			},
			want: "{ 1: [n2],}",
		},
		{
			name: "should shift siblings after a non-template node",
			children: []*ir.IRDynamicInfo{
				{ID: 1, DynamicFlags: ir.DynamicReferenced},
				{ID: 2, DynamicFlags: ir.DynamicReferenced | ir.DynamicNonTemplate},
				{ID: 3, DynamicFlags: ir.DynamicReferenced},
			},
			want: "{ 0: [n1], 1: [n2], 1: [n3],}",
		},
		{
			name: "should reference the anchor of an inserted node",
			children: []*ir.IRDynamicInfo{
				{ID: 1, DynamicFlags: ir.DynamicReferenced | ir.DynamicInsert, Anchor: 5},
			},
			want: "{ 0: [n5],}",
		},
		{
			name: "should descend into unreferenced parents",
			children: []*ir.IRDynamicInfo{
				{ID: 1},
				{ID: 2, Children: []*ir.IRDynamicInfo{{ID: 3, DynamicFlags: ir.DynamicReferenced}}},
			},
			want: "{ 1: [, { 0: [n3],}],}",
		},
		{
			name: "should nest under referenced parents",
			children: []*ir.IRDynamicInfo{
				{ID: 1, DynamicFlags: ir.DynamicReferenced, Children: []*ir.IRDynamicInfo{
					{ID: 2},
					{ID: 3, DynamicFlags: ir.DynamicReferenced},
				}},
			},
			want: "{ 0: [n1, { 1: [n3],}],}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, genChildren(tt.children)); diff != "" {
				t.Errorf("children mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("should index every sibling by its position minus the non-template nodes before it", func(t *testing.T) {
		parameters := gopter.DefaultTestParameters()
		parameters.MinSuccessfulTests = 200
		properties := gopter.NewProperties(parameters)

		properties.Property("index = position - preceding non-template count", prop.ForAll(
			func(nonTemplate []bool) bool {
				children := make([]*ir.IRDynamicInfo, len(nonTemplate))
				for i, nt := range nonTemplate {
					flags := ir.DynamicReferenced
					if nt {
						flags |= ir.DynamicNonTemplate
					}
					children[i] = &ir.IRDynamicInfo{ID: i, DynamicFlags: flags}
				}

				entries := collectChildren(children)
				if len(entries) != len(children) {
					return false
				}
				before := 0
				for i, entry := range entries {
					if entry.Index != i-before {
						return false
					}
					if nonTemplate[i] {
						before++
					}
				}
				return true
			},
			gen.SliceOf(gen.Bool()),
		))

		properties.TestingRun(t)
	})
}
