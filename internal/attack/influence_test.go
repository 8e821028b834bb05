package attack

import (
    "math"
    "math/rand"
    "testing"

    "github.com/stretchr/testify/require"

    "fairattack/internal/data"
    "fairattack/internal/fairness"
    "fairattack/internal/models"
    "fairattack/internal/training"
)

func toyModule() *data.DataModule {
    Xtr := [][]float64{{1, -2}, {1, -1}, {0, 1}, {0, 2}, {1, -1.5}, {0, 1.5}}
    ytr := []int{0, 0, 1, 1, 0, 1}
    Xte := [][]float64{{1, -1}, {0, 1}}
    yte := []int{0, 1}
    return data.FromArrays("toy", 0, 1.0, 2, Xtr, ytr, Xte, yte)
}

func TestPoisonNaoAlteraOriginal(t *testing.T) {
    dm := toyModule()
    before := dm.Train().Clone()

    m := models.NewLinear("lr", 2, 0.1)
    o := NewOrchestrator(nil)
    o.Iters = 20
    out, err := o.Poison(dm, m, 0.5, 1.0, rand.New(rand.NewSource(123)))
    require.NoError(t, err)
    require.Equal(t, before.X, dm.Train().X)
    require.Equal(t, before.Y, dm.Train().Y)
    require.Equal(t, before.AdvMask, dm.Train().AdvMask)
    require.NotSame(t, dm, out)
}

func TestPoisonTamanhoETeste(t *testing.T) {
    dm := toyModule()
    m := models.NewLinear("lr", 2, 0.1)
    o := NewOrchestrator(nil)
    o.Iters = 10
    out, err := o.Poison(dm, m, 0.5, 0.0, rand.New(rand.NewSource(123)))
    require.NoError(t, err)
    // ceil(0.5 * 6) = 3 pontos envenenados anexados
    require.Equal(t, 9, out.Train().Len())
    require.Len(t, out.Train().AdvMask, 9)
    require.Equal(t, dm.Test().X, out.Test().X)
    require.Equal(t, dm.Test().Y, out.Test().Y)
}

func TestPoisonRespeitaCaixa(t *testing.T) {
    dm := toyModule()
    m := models.NewLinear("lr", 2, 0.5)
    o := NewOrchestrator(nil)
    out, err := o.Poison(dm, m, 1.0, 2.0, rand.New(rand.NewSource(7)))
    require.NoError(t, err)
    lo, hi := featureBox(dm.Train().X)
    for _, row := range out.Train().X {
        for j := range row {
            require.GreaterOrEqual(t, row[j], lo[j]-1e-12)
            require.LessOrEqual(t, row[j], hi[j]+1e-12)
        }
    }
}

func TestInfluenceEpsZero(t *testing.T) {
    dm := toyModule()
    m := models.NewLinear("lr", 2, 0.1)
    loss := AdvLoss{Params: m.Parameters, PointGrad: m.PointLossGrad, Penalty: fairness.Penalty{SensitiveIndex: 0}, Lambda: 0}
    ds, err := Influence(m, dm, training.New(), loss, 0, DefaultEta, DefaultIters, rand.New(rand.NewSource(1)))
    require.NoError(t, err)
    require.Equal(t, dm.Train().X, ds.X)
    require.Equal(t, dm.Train().Y, ds.Y)
}

func TestFeatureBox(t *testing.T) {
    lo, hi := featureBox([][]float64{{1, -2}, {3, 0}, {2, -1}})
    require.Equal(t, []float64{1, -2}, lo)
    require.Equal(t, []float64{3, 0}, hi)
    require.False(t, math.IsInf(lo[0], 1))
}
