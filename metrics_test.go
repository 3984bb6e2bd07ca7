package dynarray

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	t.Run("counters follow array operations", func(t *testing.T) {
		m := NewMetrics()
		a, err := New[int](WithCapacity[int](2), WithMetrics[int](m))
		require.NoError(t, err)

		require.NoError(t, a.Append(1))
		require.NoError(t, a.Append(2))
		require.NoError(t, a.Append(3)) // grows and relocates 2 elements
		require.NoError(t, a.Delete(0)) // relocates 2 elements

		assert.Equal(t, 1.0, testutil.ToFloat64(m.GrowsTotal.WithLabelValues("int")))
		assert.Equal(t, 4.0, testutil.ToFloat64(m.RelocationsTotal.WithLabelValues("int")))
		assert.Equal(t, 3.0, testutil.ToFloat64(m.ConstructsTotal.WithLabelValues("int")))
		assert.Equal(t, 1.0, testutil.ToFloat64(m.DestroysTotal.WithLabelValues("int")))
		assert.Equal(t, 2.0, testutil.ToFloat64(m.LiveElements.WithLabelValues("int")))
	})

	t.Run("arrays of different element types share one sink", func(t *testing.T) {
		m := NewMetrics()
		ints, err := New[int](WithMetrics[int](m))
		require.NoError(t, err)
		strs, err := New[string](WithMetrics[string](m))
		require.NoError(t, err)

		require.NoError(t, ints.Append(1))
		require.NoError(t, strs.Append("a"))
		require.NoError(t, strs.Append("b"))

		assert.Equal(t, 1.0, testutil.ToFloat64(m.ConstructsTotal.WithLabelValues("int")))
		assert.Equal(t, 2.0, testutil.ToFloat64(m.ConstructsTotal.WithLabelValues("string")))
	})

	t.Run("handler serves the exposition format", func(t *testing.T) {
		m := NewMetrics()
		a, err := New[int](WithMetrics[int](m))
		require.NoError(t, err)
		require.NoError(t, a.Append(1))

		rec := httptest.NewRecorder()
		m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "dynarray_constructs_total")
	})

	t.Run("nil sink records nothing and does not panic", func(t *testing.T) {
		a, err := New[int]()
		require.NoError(t, err)

		require.NoError(t, a.Append(1))
		require.NoError(t, a.Delete(0))
		a.Destroy()
	})

	t.Run("private registries do not collide", func(t *testing.T) {
		// Two sinks register the same metric names; a shared registry would
		// panic in MustRegister.
		m1 := NewMetrics()
		m2 := NewMetrics()
		assert.NotSame(t, m1.Registry(), m2.Registry())
	})
}
