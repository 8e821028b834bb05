package models

import (
    "testing"

    "github.com/stretchr/testify/require"
)

func TestNewLinear(t *testing.T) {
    m := NewLinear("lr", 4, 0.1)
    require.Equal(t, "LogisticRegression", m.Name())
    require.Equal(t, 5, m.Parameters().Len())

    svm := NewLinear("svm", 4, 0.1)
    require.Equal(t, "LinearSVM", svm.Name())
}

func TestLogisticAprendeSeparavel(t *testing.T) {
    X := [][]float64{{-2}, {-1}, {-1.5}, {1}, {2}, {1.5}}
    y := []int{0, 0, 0, 1, 1, 1}
    m := NewLinear("lr", 1, 0.5)
    prev := m.Step(X, y)
    for i := 0; i < 200; i++ {
        loss := m.Step(X, y)
        require.False(t, loss > prev+1e-6, "perda subiu na iteração %d", i)
        prev = loss
    }
    require.Equal(t, y, m.Predict(X))
}

func TestSVMAprendeSeparavel(t *testing.T) {
    X := [][]float64{{-2}, {-1}, {1}, {2}}
    y := []int{0, 0, 1, 1}
    m := NewLinear("svm", 1, 0.1)
    for i := 0; i < 300; i++ { m.Step(X, y) }
    require.Equal(t, y, m.Predict(X))
}

func TestForwardUsaVies(t *testing.T) {
    m := NewLinear("lr", 2, 0.1)
    m.Theta.SetVec(0, 1)
    m.Theta.SetVec(1, -1)
    m.Theta.SetVec(2, 0.5)
    out := m.Forward([][]float64{{2, 1}})
    require.InDelta(t, 1.5, out[0], 1e-12)
}

func TestPointLossGrad(t *testing.T) {
    m := NewLinear("lr", 2, 0.1)
    m.Theta.SetVec(0, 1)
    m.Theta.SetVec(1, 2)
    loss, g := m.PointLossGrad([]float64{0, 0}, 1)
    require.Greater(t, loss, 0.0)
    require.Len(t, g, 2)
    // p = 0.5, diff = -0.5 → g = diff * w
    require.InDelta(t, -0.5, g[0], 1e-12)
    require.InDelta(t, -1.0, g[1], 1e-12)
}
