package experiment

import (
    "os"

    "github.com/goccy/go-yaml"
)

type DatasetConfig struct {
    Name            string  `yaml:"name"`
    Dir             string  `yaml:"dir"`
    SensitiveIndex  int     `yaml:"sensitive_index"`
    AdvantagedValue float64 `yaml:"advantaged_value"`
}

type Config struct {
    Datasets     []DatasetConfig `yaml:"datasets"`
    Budgets      []float64       `yaml:"budgets"`
    Weights      []float64       `yaml:"weights"`
    Runs         int             `yaml:"runs"`
    Seed         int64           `yaml:"seed"`
    Algo         string          `yaml:"algo"`
    LearningRate float64         `yaml:"learning_rate"`
    BatchSize    int             `yaml:"batch_size"`
    Checkpoint   string          `yaml:"checkpoint"`
}

func DefaultConfig() Config {
    return Config{
        Budgets:      []float64{0, 0.1, 0.3, 0.5, 1.0},
        Weights:      []float64{0, 0.5, 1.0},
        Runs:         3,
        Seed:         123,
        Algo:         "lr",
        LearningRate: 0.01,
        BatchSize:    64,
        Checkpoint:   "data/results.gob",
    }
}

func LoadConfig(path string) (Config, error) {
    cfg := DefaultConfig()
    b, err := os.ReadFile(path)
    if err != nil { return cfg, err }
    if err := yaml.Unmarshal(b, &cfg); err != nil { return cfg, err }
    return cfg, nil
}
