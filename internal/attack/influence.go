package attack

import (
    "fmt"
    "math"
    "math/rand"

    "gonum.org/v1/gonum/mat"

    "fairattack/internal/data"
    "fairattack/internal/models"
    "fairattack/internal/training"
)

// AdvLoss é a perda adversarial: classificação + lambda * penalidade de justiça.
// Params é um acessor explícito para os parâmetros vivos do modelo, que o ataque
// altera a cada retreino.
type AdvLoss struct {
    Params    func() *mat.VecDense
    PointGrad func(x []float64, y int) (float64, []float64)
    Penalty   PenaltyFunc
    Lambda    float64
}

type PenaltyFunc interface {
    Loss(X [][]float64, theta *mat.VecDense) float64
    Grad(X [][]float64, theta *mat.VecDense) [][]float64
}

func (l AdvLoss) Eval(X [][]float64, y []int) float64 {
    total := 0.0
    for i := range X {
        li, _ := l.PointGrad(X[i], y[i])
        total += li
    }
    if len(X) > 0 { total /= float64(len(X)) }
    return total + l.Lambda*l.Penalty.Loss(X, l.Params())
}

// Grad devolve a perda total e o gradiente por linha em relação às features.
func (l AdvLoss) Grad(X [][]float64, y []int) (float64, [][]float64) {
    theta := l.Params()
    fair := l.Penalty.Grad(X, theta)
    out := make([][]float64, len(X))
    total := 0.0
    for i := range X {
        li, gi := l.PointGrad(X[i], y[i])
        total += li
        g := make([]float64, len(gi))
        for j := range gi { g[j] = gi[j]/float64(len(X)) + l.Lambda*fair[i][j] }
        out[i] = g
    }
    if len(X) > 0 { total /= float64(len(X)) }
    return total + l.Lambda*l.Penalty.Loss(X, theta), out
}

const retrainEvery = 10

// Influence executa o ataque de influência: sobe o gradiente da perda adversarial
// em relação a um subconjunto envenenado de ceil(eps*n) cópias de linhas de treino
// com rótulo invertido, projetando cada feature na caixa [min, max] dos dados
// limpos e retreinando o modelo periodicamente pelo pipeline fornecido.
// O módulo de dados recebido nunca é alterado.
func Influence(m models.Model, dm *data.DataModule, pipe *training.Pipeline, loss AdvLoss, eps, eta float64, iters int, rng *rand.Rand) (*data.Dataset, error) {
    clean := dm.Train()
    n := clean.Len()
    if n == 0 { return nil, fmt.Errorf("partição de treino vazia: %s", dm.DatasetName()) }
    k := int(math.Ceil(eps * float64(n)))
    if k == 0 { return clean.Clone(), nil }

    lo, hi := featureBox(clean.X)

    px := make([][]float64, k)
    py := make([]int, k)
    for i := 0; i < k; i++ {
        src := rng.Intn(n)
        row := make([]float64, len(clean.X[src]))
        copy(row, clean.X[src])
        px[i] = row
        py[i] = 1 - clean.Y[src]
    }

    work := dm.Clone()
    for t := 0; t < iters; t++ {
        if t%retrainEvery == 0 {
            work.ReplaceTrain(merge(dm, clean, px, py))
            if err := pipe.Fit(m, work); err != nil { return nil, err }
        }
        _, grads := loss.Grad(px, py)
        for i := range px {
            for j := range px[i] {
                px[i][j] += eta * grads[i][j]
                if px[i][j] < lo[j] { px[i][j] = lo[j] }
                if px[i][j] > hi[j] { px[i][j] = hi[j] }
            }
        }
    }
    return merge(dm, clean, px, py), nil
}

func merge(dm *data.DataModule, clean *data.Dataset, px [][]float64, py []int) *data.Dataset {
    out := clean.Clone()
    for i := range px {
        row := make([]float64, len(px[i]))
        copy(row, px[i])
        out.X = append(out.X, row)
        out.Y = append(out.Y, py[i])
    }
    out.AdvMask = dm.Mask(out.X)
    return out
}

func featureBox(X [][]float64) (lo, hi []float64) {
    d := len(X[0])
    lo = make([]float64, d)
    hi = make([]float64, d)
    for j := 0; j < d; j++ { lo[j], hi[j] = math.Inf(1), math.Inf(-1) }
    for i := range X {
        for j := 0; j < d; j++ {
            if X[i][j] < lo[j] { lo[j] = X[i][j] }
            if X[i][j] > hi[j] { hi[j] = X[i][j] }
        }
    }
    return lo, hi
}
