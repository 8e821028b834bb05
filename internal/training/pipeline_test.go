package training

import (
    "testing"

    "github.com/stretchr/testify/require"

    "fairattack/internal/data"
    "fairattack/internal/models"
)

func toyModule() *data.DataModule {
    Xtr := [][]float64{{-2}, {-1}, {-1.5}, {1}, {2}, {1.5}}
    ytr := []int{0, 0, 0, 1, 1, 1}
    Xte := [][]float64{{-1}, {1}, {-2}, {2}}
    yte := []int{0, 1, 0, 1}
    return data.FromArrays("toy", 0, 1.0, 2, Xtr, ytr, Xte, yte)
}

func TestFitParadaAntecipada(t *testing.T) {
    dm := toyModule()
    m := models.NewLinear("lr", 1, 0.5)
    p := New()
    require.Equal(t, 300, p.MaxEpochs)
    require.Equal(t, 10, p.Patience)
    require.NoError(t, p.Fit(m, dm))
    require.Less(t, p.EpochsRun, p.MaxEpochs)
    require.Equal(t, dm.Train().Y, m.Predict(dm.Train().X))
}

func TestFitTreinoVazio(t *testing.T) {
    dm := data.FromArrays("vazio", 0, 1.0, 2, [][]float64{}, []int{}, [][]float64{{1}}, []int{1})
    m := models.NewLinear("lr", 1, 0.5)
    require.Error(t, New().Fit(m, dm))
}

func TestEvaluate(t *testing.T) {
    dm := data.FromArrays("toy", 0, 1.0, 2,
        [][]float64{{1}, {-1}}, []int{1, 0},
        [][]float64{{1}, {-1}, {1}, {-1}}, []int{1, 0, 1, 1},
    )
    m := models.NewLinear("lr", 1, 0.1)
    m.Theta.SetVec(0, 1) // pred = 1 sse x >= 0

    vals, err := New().Evaluate(m, dm)
    require.NoError(t, err)
    require.InDelta(t, 0.25, vals[MetricTestError], 1e-12)
    require.InDelta(t, 1.0, vals[MetricSPD], 1e-12)
    require.InDelta(t, 1.0, vals[MetricEOD], 1e-12)
}

func TestEvaluateTesteVazio(t *testing.T) {
    dm := data.FromArrays("vazio", 0, 1.0, 2, [][]float64{{1}}, []int{1}, [][]float64{}, []int{})
    m := models.NewLinear("lr", 1, 0.1)
    _, err := New().Evaluate(m, dm)
    require.Error(t, err)
}
