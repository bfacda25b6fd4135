package telemetry

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"goa.design/clue/log"
)

func TestKV(t *testing.T) {
	tests := []struct {
		name    string
		keyvals []any
		want    []log.Fielder
	}{
		{
			name:    "should pair keys with values",
			keyvals: []any{"file", "App.ir.yaml", "count", 2},
			want:    []log.Fielder{log.KV{K: "file", V: "App.ir.yaml"}, log.KV{K: "count", V: 2}},
		},
		{
			name:    "should pair a trailing key with nil",
			keyvals: []any{"msg"},
			want:    []log.Fielder{log.KV{K: "msg", V: nil}},
		},
		{
			name:    "should skip non-string keys",
			keyvals: []any{1, "x", "ok", true},
			want:    []log.Fielder{log.KV{K: "ok", V: true}},
		},
		{
			name: "should return nothing for no pairs",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, KV(tt.keyvals...)); diff != "" {
				t.Errorf("fields mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRecorder(t *testing.T) {
	t.Run("should record outcomes on the global providers", func(t *testing.T) {
		r := NewRecorder()
		require.NotNil(t, r.tracer)
		require.NotNil(t, r.files)
		require.NotNil(t, r.codeBytes)

		ctx := context.Background()
		spanCtx, span := r.StartFile(ctx, "App.ir.yaml")
		require.NotNil(t, spanCtx)
		require.NotPanics(t, func() { r.Succeeded(spanCtx, span, 128, 1, 3) })

		spanCtx, span = r.StartFile(ctx, "Bad.ir.yaml")
		require.NotPanics(t, func() { r.Failed(spanCtx, span, errors.New("boom")) })
	})
}
