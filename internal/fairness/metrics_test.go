package fairness

import (
    "testing"

    "github.com/stretchr/testify/require"
    "gonum.org/v1/gonum/mat"
)

func TestSPD(t *testing.T) {
    spd := &SPD{}
    spd.Update([]int{1, 1, 1, 0}, []bool{true, true, false, false})
    require.InDelta(t, 0.5, spd.Compute(), 1e-12)
}

func TestSPDIgual(t *testing.T) {
    spd := &SPD{}
    spd.Update([]int{1, 0, 1, 0}, []bool{true, true, false, false})
    require.InDelta(t, 0, spd.Compute(), 1e-12)
}

func TestSPDGrupoVazio(t *testing.T) {
    spd := &SPD{}
    spd.Update([]int{1, 1}, []bool{true, true})
    require.InDelta(t, 1.0, spd.Compute(), 1e-12)
}

func TestEOD(t *testing.T) {
    eod := &EOD{}
    eod.Update([]int{1, 0, 1, 0}, []int{1, 1, 1, 0}, []bool{true, true, false, false})
    require.InDelta(t, 0.5, eod.Compute(), 1e-12)
}

func TestEODIgnoraNegativos(t *testing.T) {
    eod := &EOD{}
    eod.Update([]int{1, 1, 1, 1}, []int{0, 0, 0, 0}, []bool{true, true, false, false})
    require.InDelta(t, 0, eod.Compute(), 1e-12)
}

func TestPenaltyLoss(t *testing.T) {
    p := Penalty{SensitiveIndex: 0}
    X := [][]float64{{1, 0}, {0, 0}}
    theta := mat.NewVecDense(3, []float64{1, 1, 0})
    // z = [1,0], z̄ = 0.5; x·w = [1,0] → ((0.5)(1) + (-0.5)(0)) / 2 = 0.25
    require.InDelta(t, 0.25, p.Loss(X, theta), 1e-12)
}

func TestPenaltyLossVazia(t *testing.T) {
    p := Penalty{SensitiveIndex: 0}
    theta := mat.NewVecDense(2, []float64{1, 0})
    require.Equal(t, 0.0, p.Loss(nil, theta))
}

func TestPenaltyGradShape(t *testing.T) {
    p := Penalty{SensitiveIndex: 1}
    X := [][]float64{{1, 0, 2}, {0, 1, 1}, {2, 1, 0}}
    theta := mat.NewVecDense(4, []float64{0.5, -1, 2, 0.1})
    g := p.Grad(X, theta)
    require.Len(t, g, 3)
    for i := range g { require.Len(t, g[i], 3) }
}
