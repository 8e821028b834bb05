package results

import (
    "path/filepath"
    "testing"

    "github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
    path := filepath.Join(t.TempDir(), "results.gob")
    tab := New()
    tab.Set(Key{"drug", "spd", 0.5, StatMean, 1.0}, 0.12)
    tab.Set(Key{"drug", "spd", 0.5, StatStd, 1.0}, 0.01)
    tab.Set(Key{"german", "test_error", 0, StatMean, 0}, 0.25)
    require.NoError(t, tab.Save(path))

    got, err := Load(path)
    require.NoError(t, err)
    require.Equal(t, tab.Leaves, got.Leaves)
}

func TestLoadAusente(t *testing.T) {
    tab, err := Load(filepath.Join(t.TempDir(), "nao_existe.gob"))
    require.NoError(t, err)
    require.Equal(t, 0, tab.Len())
}

func TestSetSobrescreve(t *testing.T) {
    tab := New()
    k := Key{"drug", "eod", 0.3, StatMean, 0.5}
    tab.Set(k, 1)
    tab.Set(k, 2)
    v, ok := tab.Get(k)
    require.True(t, ok)
    require.Equal(t, 2.0, v)
    require.Equal(t, 1, tab.Len())
}

func TestSeriesOrdenada(t *testing.T) {
    tab := New()
    tab.Set(Key{"drug", "spd", 1.0, StatMean, 0.5}, 0.3)
    tab.Set(Key{"drug", "spd", 0.1, StatMean, 0.5}, 0.1)
    tab.Set(Key{"drug", "spd", 0.5, StatMean, 0.5}, 0.2)
    tab.Set(Key{"drug", "spd", 0.5, StatStd, 0.5}, 9)
    tab.Set(Key{"drug", "spd", 0.5, StatMean, 1.0}, 9)

    budgets, vals := tab.Series("drug", "spd", StatMean, 0.5)
    require.Equal(t, []float64{0.1, 0.5, 1.0}, budgets)
    require.Equal(t, []float64{0.1, 0.2, 0.3}, vals)
}

func TestDatasetsEWeights(t *testing.T) {
    tab := New()
    tab.Set(Key{"b", "spd", 0, StatMean, 0}, 1)
    tab.Set(Key{"a", "spd", 0, StatMean, 0}, 1)
    tab.Set(Key{"a", "spd", 0.1, StatMean, 0.5}, 1)
    require.Equal(t, []string{"a", "b"}, tab.Datasets())
    require.Equal(t, []float64{0, 0.5}, tab.Weights("a", "spd"))
}
