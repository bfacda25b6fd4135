package util_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"vapor-go/packages/compiler/src/util"
)

func TestUtil(t *testing.T) {
	t.Run("DashCaseToCamelCase", func(t *testing.T) {
		tests := []struct {
			input string
			want  string
		}{
			{"v-foo", "vFoo"},
			{"v-foo-bar", "vFooBar"},
			{"model-value", "modelValue"},
			{"plain", "plain"},
			{"v-1x", "v1x"},
		}
		for _, tt := range tests {
			if got := util.DashCaseToCamelCase(tt.input); got != tt.want {
				t.Errorf("DashCaseToCamelCase(%q) = %q, want %q", tt.input, got, tt.want)
			}
		}
	})

	t.Run("should classify event handler expressions", func(t *testing.T) {
		members := []string{"foo", "foo.bar", "foo[bar].baz", " handler "}
		for _, s := range members {
			if !util.IsMemberExpression(s) {
				t.Errorf("expected %q to be a member expression", s)
			}
		}
		notMembers := []string{"foo()", "a = 1", "count++", "foo.bar()"}
		for _, s := range notMembers {
			if util.IsMemberExpression(s) {
				t.Errorf("expected %q not to be a member expression", s)
			}
		}

		functions := []string{"() => foo()", "e => foo(e)", "async (a, b) => a", "function (e) {}", "function named() {}"}
		for _, s := range functions {
			if !util.IsFunctionExpression(s) {
				t.Errorf("expected %q to be a function expression", s)
			}
		}
		if util.IsFunctionExpression("foo(bar)") {
			t.Error("a call is not a function expression")
		}
	})

	t.Run("JSONStringify", func(t *testing.T) {
		tests := []struct {
			input string
			want  string
		}{
			{"hi", `"hi"`},
			{"<div><span></span></div>", `"<div><span></span></div>"`},
			{`say "a" & b`, `"say \"a\" & b"`},
			{"line\nbreak", `"line\nbreak"`},
		}
		for _, tt := range tests {
			if diff := cmp.Diff(tt.want, util.JSONStringify(tt.input)); diff != "" {
				t.Errorf("JSONStringify(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		}
	})
}

func TestInvariant(t *testing.T) {
	t.Run("should be enabled in tests", func(t *testing.T) {
		require.True(t, util.AssertionsEnabled())
	})

	t.Run("should panic with an InvariantError", func(t *testing.T) {
		defer func() {
			r := recover()
			err, ok := r.(error)
			require.True(t, ok, "expected an error, got %v", r)
			var invariant *util.InvariantError
			require.True(t, errors.As(err, &invariant))
			require.Equal(t, "op", invariant.Op)
			require.Equal(t, "bad 1", invariant.Msg)
		}()
		util.Invariant(false, "op", "bad %d", 1)
	})

	t.Run("should not panic when the condition holds", func(t *testing.T) {
		require.NotPanics(t, func() { util.Invariant(true, "op", "never") })
	})

	t.Run("should escape newlines", func(t *testing.T) {
		require.Equal(t, `a\nb`, util.EscapeNewlines("a\nb"))
	})
}

func TestPosition(t *testing.T) {
	t.Run("should advance on a single line", func(t *testing.T) {
		pos := util.NewPosition()
		util.AdvancePositionWithMutation(&pos, "const n0", -1)
		if diff := cmp.Diff(util.Position{Offset: 8, Line: 1, Column: 9}, pos); diff != "" {
			t.Errorf("position mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should reset the column after a line break", func(t *testing.T) {
		pos := util.NewPosition()
		util.AdvancePositionWithMutation(&pos, "ab\n  cd", -1)
		if diff := cmp.Diff(util.Position{Offset: 7, Line: 2, Column: 5}, pos); diff != "" {
			t.Errorf("position mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should only consume the requested prefix", func(t *testing.T) {
		start := util.Position{Offset: 10, Line: 3, Column: 4}
		got := util.AdvancePositionWithClone(start, "foo\nbar", 2)
		if diff := cmp.Diff(util.Position{Offset: 12, Line: 3, Column: 6}, got); diff != "" {
			t.Errorf("position mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(util.Position{Offset: 10, Line: 3, Column: 4}, start); diff != "" {
			t.Errorf("clone mutated its input (-want +got):\n%s", diff)
		}
	})

	t.Run("should count columns in UTF-16 units", func(t *testing.T) {
		require.Equal(t, 1, util.UTF16Len("é"))
		require.Equal(t, 2, util.UTF16Len("😀"))
		got := util.AdvancePositionWithClone(util.NewPosition(), "a😀", -1)
		require.Equal(t, util.Position{Offset: 5, Line: 1, Column: 4}, got)
	})

	t.Run("should advance in pieces like it advances at once", func(t *testing.T) {
		parameters := gopter.DefaultTestParameters()
		parameters.MinSuccessfulTests = 200
		properties := gopter.NewProperties(parameters)

		pieces := []string{"a", "b", " ", "\n", "é", "😀"}
		text := gen.SliceOf(gen.IntRange(0, len(pieces)-1)).
			Map(func(idx []int) string {
				var sb strings.Builder
				for _, i := range idx {
					sb.WriteString(pieces[i])
				}
				return sb.String()
			})

		properties.Property("advance(a+b) == advance(advance(a), b)", prop.ForAll(
			func(a, b string) bool {
				whole := util.AdvancePositionWithClone(util.NewPosition(), a+b, -1)
				split := util.AdvancePositionWithClone(util.AdvancePositionWithClone(util.NewPosition(), a, -1), b, -1)
				return whole == split
			},
			text, text,
		))

		properties.Property("line grows by the number of line breaks", prop.ForAll(
			func(s string) bool {
				pos := util.AdvancePositionWithClone(util.NewPosition(), s, -1)
				return pos.Line == 1+strings.Count(s, "\n") && pos.Offset == len(s)
			},
			text,
		))

		properties.TestingRun(t)
	})
}
