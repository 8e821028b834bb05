package models

import (
    "math"

    "gonum.org/v1/gonum/mat"
)

// Modelos lineares binários com parâmetros num único vetor theta de tamanho d+1,
// onde o último elemento é o viés. A penalidade de justiça depende desse formato.
type Linear struct {
    Algo         string
    LearningRate float64
    Theta        *mat.VecDense
}

func NewLinear(algo string, inputSize int, lr float64) *Linear {
    return &Linear{Algo: algo, LearningRate: lr, Theta: mat.NewVecDense(inputSize+1, nil)}
}

func (m *Linear) Name() string {
    if m.Algo == "svm" { return "LinearSVM" }
    return "LogisticRegression"
}

func (m *Linear) Parameters() *mat.VecDense { return m.Theta }

func (m *Linear) logit(x []float64) float64 {
    d := m.Theta.Len() - 1
    z := m.Theta.AtVec(d)
    for j := 0; j < d && j < len(x); j++ { z += m.Theta.AtVec(j) * x[j] }
    return z
}

func (m *Linear) Forward(X [][]float64) []float64 {
    out := make([]float64, len(X))
    for i := range X { out[i] = m.logit(X[i]) }
    return out
}

func (m *Linear) Predict(X [][]float64) []int {
    out := make([]int, len(X))
    for i := range X { if m.logit(X[i]) >= 0 { out[i] = 1 } }
    return out
}

// Step faz uma atualização de gradiente sobre o minibatch e devolve a perda média.
func (m *Linear) Step(X [][]float64, y []int) float64 {
    n := len(X)
    if n == 0 { return 0 }
    d := m.Theta.Len() - 1
    grad := make([]float64, d+1)
    loss := 0.0
    for i := 0; i < n; i++ {
        z := m.logit(X[i])
        if m.Algo == "svm" {
            ys := 2.0*float64(y[i]) - 1.0
            margin := 1.0 - ys*z
            if margin > 0 {
                loss += margin
                for j := 0; j < d && j < len(X[i]); j++ { grad[j] -= ys * X[i][j] }
                grad[d] -= ys
            }
        } else {
            p := sigmoid(z)
            loss += bce(p, y[i])
            diff := p - float64(y[i])
            for j := 0; j < d && j < len(X[i]); j++ { grad[j] += diff * X[i][j] }
            grad[d] += diff
        }
    }
    for j := 0; j <= d; j++ {
        m.Theta.SetVec(j, m.Theta.AtVec(j)-m.LearningRate*grad[j]/float64(n))
    }
    return loss / float64(n)
}

// PointLossGrad devolve a perda de classificação de um ponto e o gradiente em
// relação às features, usado pelo ataque de influência.
func (m *Linear) PointLossGrad(x []float64, y int) (float64, []float64) {
    d := m.Theta.Len() - 1
    z := m.logit(x)
    g := make([]float64, len(x))
    if m.Algo == "svm" {
        ys := 2.0*float64(y) - 1.0
        margin := 1.0 - ys*z
        if margin <= 0 { return 0, g }
        for j := 0; j < d && j < len(x); j++ { g[j] = -ys * m.Theta.AtVec(j) }
        return margin, g
    }
    p := sigmoid(z)
    diff := p - float64(y)
    for j := 0; j < d && j < len(x); j++ { g[j] = diff * m.Theta.AtVec(j) }
    return bce(p, y), g
}

func sigmoid(z float64) float64 { return 1.0 / (1.0 + math.Exp(-z)) }

func bce(p float64, y int) float64 {
    eps := 1e-12
    if p < eps { p = eps }
    if p > 1-eps { p = 1 - eps }
    if y == 1 { return -math.Log(p) }
    return -math.Log(1 - p)
}
