package main

import (
    "flag"
    "strconv"
    "strings"

    "go.uber.org/zap"

    "fairattack/internal/attack"
    "fairattack/internal/data"
    "fairattack/internal/experiment"
    "fairattack/internal/models"
    "fairattack/internal/results"
    "fairattack/internal/training"
    "fairattack/pkg/utils"
)

func main() {
    logger := utils.Logger()
    defer logger.Sync()

    cfgPath := flag.String("config", "", "Arquivo YAML da varredura (opcional)")
    dataDir := flag.String("data", "data", "Diretório dos CSVs de dataset")
    regen := flag.Bool("regen", false, "Regenerar dataset sintético")
    n := flag.Int("n", 4000, "Número de registros sintéticos")
    algo := flag.String("algo", "lr", "Algoritmo: lr|svm")
    lr := flag.Float64("lr", 0.01, "Learning rate do modelo")
    batch := flag.Int("batch", 64, "Tamanho do minibatch")
    runs := flag.Int("runs", 3, "Repetições por configuração")
    seed := flag.Int64("seed", 123, "Semente por configuração")
    ckpt := flag.String("ckpt", "data/results.gob", "Arquivo de checkpoint da tabela")
    epsList := flag.String("eps", "0,0.1,0.3,0.5,1.0", "Orçamentos de perturbação")
    lambdaList := flag.String("lambda", "0,0.5,1.0", "Pesos da penalidade de justiça")
    flag.Parse()

    cfg := experiment.DefaultConfig()
    if *cfgPath != "" {
        var err error
        cfg, err = experiment.LoadConfig(*cfgPath)
        if err != nil { logger.Fatal("Falha ao ler configuração", zap.Error(err)) }
    } else {
        cfg.Algo = *algo
        cfg.LearningRate = *lr
        cfg.BatchSize = *batch
        cfg.Runs = *runs
        cfg.Seed = *seed
        cfg.Checkpoint = *ckpt
        cfg.Budgets = parseFloats(*epsList, cfg.Budgets)
        cfg.Weights = parseFloats(*lambdaList, cfg.Weights)
    }
    if len(cfg.Datasets) == 0 {
        b := data.Builtins["synthetic"]
        cfg.Datasets = []experiment.DatasetConfig{{
            Name: "synthetic", Dir: *dataDir,
            SensitiveIndex: b.SensitiveIndex, AdvantagedValue: b.AdvantagedValue,
        }}
    }

    if *regen {
        logger.Info("Gerando dataset sintético", zap.Int("n", *n), zap.String("dir", *dataDir))
        if err := data.GenerateSyntheticCredit(*n, 0.4, cfg.Seed, *dataDir); err != nil {
            logger.Fatal("Falha ao gerar dataset", zap.Error(err))
        }
    }

    dms := make([]*data.DataModule, 0, len(cfg.Datasets))
    for _, dc := range cfg.Datasets {
        dm, err := data.Load(dc.Name, dc.Dir, dc.SensitiveIndex, dc.AdvantagedValue, cfg.BatchSize)
        if err != nil { logger.Fatal("Falha ao carregar dataset", zap.String("dataset", dc.Name), zap.Error(err)) }
        logger.Info("Dataset carregado",
            zap.String("dataset", dm.DatasetName()),
            zap.Int("treino", dm.Train().Len()),
            zap.Int("teste", dm.Test().Len()),
            zap.Int("atributos", dm.InputSize()),
        )
        dms = append(dms, dm)
    }

    table, err := results.Load(cfg.Checkpoint)
    if err != nil { logger.Fatal("Falha ao ler checkpoint", zap.Error(err)) }
    if table.Len() > 0 {
        logger.Info("Checkpoint restaurado", zap.Int("folhas", table.Len()), zap.String("path", cfg.Checkpoint))
    }

    runner := &experiment.Runner{
        Config: cfg,
        Table:  table,
        Log:    logger,
        NewModel: func(inputSize int) models.Model {
            return models.NewLinear(cfg.Algo, inputSize, cfg.LearningRate)
        },
        NewPipeline: func() experiment.Pipeline { return training.New() },
        Poisoner:    attack.NewOrchestrator(logger),
    }
    if err := runner.Run(dms); err != nil { logger.Fatal("Varredura abortada", zap.Error(err)) }

    if err := table.Save(cfg.Checkpoint); err != nil { logger.Fatal("Falha ao gravar checkpoint final", zap.Error(err)) }
    logger.Info("Varredura concluída", zap.Int("folhas", table.Len()), zap.String("checkpoint", cfg.Checkpoint))
}

func parseFloats(s string, fallback []float64) []float64 {
    parts := strings.Split(s, ",")
    out := make([]float64, 0, len(parts))
    for _, p := range parts {
        v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
        if err != nil { return fallback }
        out = append(out, v)
    }
    if len(out) == 0 { return fallback }
    return out
}
