package data

import (
    "encoding/csv"
    "fmt"
    "math/rand"
    "os"
    "path/filepath"
    "strconv"
)

// Índice e valor do atributo sensível nos datasets de referência.
type BuiltinSpec struct {
    SensitiveIndex  int
    AdvantagedValue float64
}

var Builtins = map[string]BuiltinSpec{
    "drug":      {SensitiveIndex: 12, AdvantagedValue: 1.0005306447706963},
    "synthetic": {SensitiveIndex: 0, AdvantagedValue: 1.0},
}

// GenerateSyntheticCredit escreve <dir>/synthetic_train.csv e <dir>/synthetic_test.csv
// com um dataset binário de crédito onde a coluna 0 é o atributo sensível (grupo) e o
// rótulo é correlacionado com o grupo, para que SPD/EOD partam de um valor não nulo.
func GenerateSyntheticCredit(n int, posRate float64, seed int64, dir string) error {
    if n < 10 { return fmt.Errorf("n muito pequeno: %d", n) }
    if err := os.MkdirAll(dir, 0o755); err != nil { return err }
    rng := rand.New(rand.NewSource(seed))

    split := int(0.8 * float64(n))
    files := []struct {
        path string
        rows int
    }{
        {filepath.Join(dir, "synthetic_train.csv"), split},
        {filepath.Join(dir, "synthetic_test.csv"), n - split},
    }

    for _, part := range files {
        f, err := os.Create(part.path)
        if err != nil { return err }
        w := csv.NewWriter(f)
        header := []string{"group", "income", "debt", "tenure", "defaults", "label"}
        if err := w.Write(header); err != nil { f.Close(); return err }
        for i := 0; i < part.rows; i++ {
            group := 0.0
            if rng.Float64() < 0.5 { group = 1.0 }
            income := rng.NormFloat64()*0.8 + 0.4*group
            debt := rng.NormFloat64()*0.6 - 0.2*group
            tenure := rng.Float64() * 3
            defaults := float64(rng.Intn(4))

            score := 0.9*income - 0.7*debt + 0.3*tenure - 0.5*defaults + 0.6*group
            label := 0
            if score+rng.NormFloat64()*0.4 > threshold(posRate) { label = 1 }

            rec := []string{
                strconv.FormatFloat(group, 'f', 1, 64),
                strconv.FormatFloat(income, 'f', 6, 64),
                strconv.FormatFloat(debt, 'f', 6, 64),
                strconv.FormatFloat(tenure, 'f', 6, 64),
                strconv.FormatFloat(defaults, 'f', 1, 64),
                strconv.Itoa(label),
            }
            if err := w.Write(rec); err != nil { f.Close(); return err }
        }
        w.Flush()
        if err := w.Error(); err != nil { f.Close(); return err }
        if err := f.Close(); err != nil { return err }
    }
    return nil
}

func threshold(posRate float64) float64 {
    if posRate <= 0 { return 2.0 }
    if posRate >= 1 { return -2.0 }
    return 1.0 - 2.0*posRate
}
