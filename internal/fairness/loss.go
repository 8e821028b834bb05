package fairness

import "gonum.org/v1/gonum/mat"

// Penalty é a covariância da fronteira de decisão de Zafar et al.
// (https://arxiv.org/abs/1507.05259): mean((z - z̄) * (X · w)), onde z é a coluna
// do atributo sensível e w são os pesos do modelo linear sem o viés (último elemento).
// Vale apenas para classificadores lineares binários.
type Penalty struct {
    SensitiveIndex int
}

func (p Penalty) Loss(X [][]float64, theta *mat.VecDense) float64 {
    n := len(X)
    if n == 0 { return 0 }
    d := theta.Len() - 1
    zbar := 0.0
    for i := range X { zbar += X[i][p.SensitiveIndex] }
    zbar /= float64(n)
    sum := 0.0
    for i := range X {
        dot := 0.0
        for j := 0; j < d; j++ { dot += X[i][j] * theta.AtVec(j) }
        sum += (X[i][p.SensitiveIndex] - zbar) * dot
    }
    return sum / float64(n)
}

// Grad devolve o gradiente da penalidade em relação a cada linha de X. O termo
// dominante é (z_i - z̄)/N * w; a coordenada sensível recebe ainda a contribuição
// do produto x_i·w via z_i.
func (p Penalty) Grad(X [][]float64, theta *mat.VecDense) [][]float64 {
    n := len(X)
    out := make([][]float64, n)
    if n == 0 { return out }
    d := theta.Len() - 1
    zbar := 0.0
    for i := range X { zbar += X[i][p.SensitiveIndex] }
    zbar /= float64(n)
    for i := range X {
        g := make([]float64, len(X[i]))
        zc := X[i][p.SensitiveIndex] - zbar
        dot := 0.0
        for j := 0; j < d; j++ { dot += X[i][j] * theta.AtVec(j) }
        for j := 0; j < d && j < len(g); j++ { g[j] = zc * theta.AtVec(j) / float64(n) }
        g[p.SensitiveIndex] += dot * (1 - 1/float64(n)) / float64(n)
        out[i] = g
    }
    return out
}
