package experiment

import (
    "math"
    "math/rand"

    "go.uber.org/zap"

    "fairattack/internal/data"
    "fairattack/internal/models"
    "fairattack/internal/results"
    "fairattack/internal/training"
)

var metricNames = []string{training.MetricTestError, training.MetricSPD, training.MetricEOD}

type Pipeline interface {
    Fit(m models.Model, dm *data.DataModule) error
    Evaluate(m models.Model, dm *data.DataModule) (map[string]float64, error)
}

type Poisoner interface {
    Poison(dm *data.DataModule, m models.Model, eps, lambda float64, rng *rand.Rand) (*data.DataModule, error)
}

type Runner struct {
    Config      Config
    Table       *results.Table
    Log         *zap.Logger
    NewModel    func(inputSize int) models.Model
    NewPipeline func() Pipeline
    Poisoner    Poisoner
}

// Run percorre dataset × orçamento × peso, com Config.Runs repetições por
// configuração. Regras herdadas do experimento:
//   - eps == 0: sem envenenamento, só o primeiro peso é executado e o laço de
//     pesos é abandonado; o checkpoint dessa configuração não é gravado.
//   - eps > 0: o gerador é semeado uma vez por configuração, não por repetição;
//     as repetições 2 e 3 continuam do estado deixado pela primeira.
//   - a avaliação usa sempre a partição de teste do módulo original, nunca a
//     envenenada.
// Qualquer erro aborta a varredura inteira.
func (r *Runner) Run(dms []*data.DataModule) error {
    cfg := r.Config
    for _, dm := range dms {
        for _, eps := range cfg.Budgets {
            for _, w := range cfg.Weights {
                rng := rand.New(rand.NewSource(cfg.Seed))
                runs := map[string][]float64{}
                for run := 0; run < cfg.Runs; run++ {
                    m := r.NewModel(dm.InputSize())
                    use := dm
                    if eps > 0 {
                        var err error
                        use, err = r.Poisoner.Poison(dm, m, eps, w, rng)
                        if err != nil { return err }
                    }
                    pipe := r.NewPipeline()
                    if err := pipe.Fit(m, use); err != nil { return err }
                    vals, err := pipe.Evaluate(m, dm)
                    if err != nil { return err }
                    for _, name := range metricNames { runs[name] = append(runs[name], vals[name]) }
                }
                for _, name := range metricNames {
                    mean, std := meanStd(runs[name])
                    r.Table.Set(results.Key{Dataset: dm.DatasetName(), Metric: name, Budget: eps, Stat: results.StatMean, Weight: w}, mean)
                    r.Table.Set(results.Key{Dataset: dm.DatasetName(), Metric: name, Budget: eps, Stat: results.StatStd, Weight: w}, std)
                }
                if r.Log != nil {
                    r.Log.Info("Configuração concluída",
                        zap.String("dataset", dm.DatasetName()),
                        zap.Float64("eps", eps),
                        zap.Float64("lambda", w),
                        zap.Float64("test_error", mean(runs[training.MetricTestError])),
                        zap.Float64("spd", mean(runs[training.MetricSPD])),
                        zap.Float64("eod", mean(runs[training.MetricEOD])),
                    )
                }
                if eps == 0 { break }
                if err := r.Table.Save(cfg.Checkpoint); err != nil { return err }
            }
        }
    }
    return nil
}

func mean(xs []float64) float64 {
    if len(xs) == 0 { return 0 }
    s := 0.0
    for _, x := range xs { s += x }
    return s / float64(len(xs))
}

func meanStd(xs []float64) (float64, float64) {
    m := mean(xs)
    if len(xs) == 0 { return 0, 0 }
    v := 0.0
    for _, x := range xs { v += (x - m) * (x - m) }
    return m, math.Sqrt(v / float64(len(xs)))
}
