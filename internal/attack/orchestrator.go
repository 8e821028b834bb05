package attack

import (
    "fmt"
    "math/rand"

    "go.uber.org/zap"

    "fairattack/internal/data"
    "fairattack/internal/fairness"
    "fairattack/internal/models"
    "fairattack/internal/training"
)

const (
    DefaultEta   = 0.01
    DefaultIters = 100
)

type pointGrader interface {
    PointLossGrad(x []float64, y int) (float64, []float64)
}

type Orchestrator struct {
    Eta   float64
    Iters int
    Log   *zap.Logger
}

func NewOrchestrator(log *zap.Logger) *Orchestrator {
    return &Orchestrator{Eta: DefaultEta, Iters: DefaultIters, Log: log}
}

// Poison monta a perda adversarial (classificação + lambda * penalidade de
// justiça sobre os parâmetros vivos do modelo), roda o ataque de influência com
// um pipeline interno silencioso e devolve uma cópia profunda do módulo com
// apenas a partição de treino substituída. O módulo original não é alterado.
func (o *Orchestrator) Poison(dm *data.DataModule, m models.Model, eps, lambda float64, rng *rand.Rand) (*data.DataModule, error) {
    pg, ok := m.(pointGrader)
    if !ok { return nil, fmt.Errorf("modelo %s não expõe gradiente por ponto", m.Name()) }

    loss := AdvLoss{
        Params:    m.Parameters,
        PointGrad: pg.PointLossGrad,
        Penalty:   fairness.Penalty{SensitiveIndex: dm.SensitiveIndex()},
        Lambda:    lambda,
    }
    pipe := training.New()

    if o.Log != nil {
        o.Log.Info("Ataque de influência",
            zap.String("dataset", dm.DatasetName()),
            zap.Float64("eps", eps),
            zap.Float64("lambda", lambda),
        )
    }
    poisoned, err := Influence(m, dm, pipe, loss, eps, o.Eta, o.Iters, rng)
    if err != nil { return nil, err }
    if o.Log != nil {
        o.Log.Debug("Perda adversarial final", zap.Float64("loss", loss.Eval(poisoned.X, poisoned.Y)))
    }

    out := dm.Clone()
    out.ReplaceTrain(poisoned)
    return out, nil
}
