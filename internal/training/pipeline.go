package training

import (
    "fmt"

    "go.uber.org/zap"

    "fairattack/internal/data"
    "fairattack/internal/fairness"
    "fairattack/internal/models"
)

const (
    MetricTestError = "test_error"
    MetricSPD       = "spd"
    MetricEOD       = "eod"
)

type Pipeline struct {
    MaxEpochs   int
    Patience    int
    Monitor     string
    Mode        string
    Accelerated bool
    Silent      bool
    Log         *zap.Logger

    EpochsRun int
}

// New devolve o pipeline com os hiperparâmetros fixos do experimento: até 300
// épocas, parada antecipada quando a acurácia de treino estagna por 10 épocas,
// sem saída de progresso.
func New() *Pipeline {
    return &Pipeline{MaxEpochs: 300, Patience: 10, Monitor: "train_acc", Mode: "max", Silent: true}
}

func (p *Pipeline) Fit(m models.Model, dm *data.DataModule) error {
    train := dm.Train()
    if train.Len() == 0 { return fmt.Errorf("partição de treino vazia: %s", dm.DatasetName()) }
    batch := dm.BatchSize()
    if batch <= 0 || batch > train.Len() { batch = train.Len() }

    best := -1.0
    if p.Mode == "min" { best = float64(1 << 30) }
    wait := 0
    p.EpochsRun = 0
    for epoch := 0; epoch < p.MaxEpochs; epoch++ {
        loss := 0.0
        nb := 0
        for start := 0; start < train.Len(); start += batch {
            end := start + batch
            if end > train.Len() { end = train.Len() }
            loss += m.Step(train.X[start:end], train.Y[start:end])
            nb++
        }
        p.EpochsRun = epoch + 1
        acc := accuracy(train.Y, m.Predict(train.X))
        monitored := acc
        if p.Monitor == "train_loss" { monitored = loss / float64(nb) }
        if !p.Silent && p.Log != nil {
            p.Log.Info("época", zap.Int("epoch", epoch), zap.Float64("train_acc", acc), zap.Float64("train_loss", loss/float64(nb)))
        }
        improved := monitored > best
        if p.Mode == "min" { improved = monitored < best }
        if improved {
            best = monitored
            wait = 0
        } else {
            wait++
            if wait >= p.Patience { break }
        }
    }
    return nil
}

// Evaluate mede o modelo na partição de teste do módulo recebido.
func (p *Pipeline) Evaluate(m models.Model, dm *data.DataModule) (map[string]float64, error) {
    test := dm.Test()
    if test.Len() == 0 { return nil, fmt.Errorf("partição de teste vazia: %s", dm.DatasetName()) }
    preds := m.Predict(test.X)

    spd := &fairness.SPD{}
    spd.Update(preds, test.AdvMask)
    eod := &fairness.EOD{}
    eod.Update(preds, test.Y, test.AdvMask)

    return map[string]float64{
        MetricTestError: 1 - accuracy(test.Y, preds),
        MetricSPD:       spd.Compute(),
        MetricEOD:       eod.Compute(),
    }, nil
}

func accuracy(y, p []int) float64 {
    if len(y) == 0 { return 0 }
    c := 0
    for i := range y { if y[i] == p[i] { c++ } }
    return float64(c) / float64(len(y))
}
