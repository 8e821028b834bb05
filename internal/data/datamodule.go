package data

import (
    "encoding/csv"
    "fmt"
    "os"
    "path/filepath"
    "strconv"
)

type DataModule struct {
    name      string
    sensIdx   int
    advVal    float64
    batchSize int
    train     *Dataset
    test      *Dataset
}

func (dm *DataModule) DatasetName() string     { return dm.name }
func (dm *DataModule) SensitiveIndex() int     { return dm.sensIdx }
func (dm *DataModule) AdvantagedValue() float64 { return dm.advVal }
func (dm *DataModule) BatchSize() int          { return dm.batchSize }
func (dm *DataModule) Train() *Dataset         { return dm.train }
func (dm *DataModule) Test() *Dataset          { return dm.test }

func (dm *DataModule) InputSize() int {
    if dm.train.Len() == 0 { return 0 }
    return len(dm.train.X[0])
}

func (dm *DataModule) Clone() *DataModule {
    return &DataModule{
        name:      dm.name,
        sensIdx:   dm.sensIdx,
        advVal:    dm.advVal,
        batchSize: dm.batchSize,
        train:     dm.train.Clone(),
        test:      dm.test.Clone(),
    }
}

func (dm *DataModule) ReplaceTrain(ds *Dataset) { dm.train = ds }

func (dm *DataModule) Mask(X [][]float64) []bool {
    mask := make([]bool, len(X))
    for i := range X { mask[i] = X[i][dm.sensIdx] == dm.advVal }
    return mask
}

// Load reads <dir>/<name>_train.csv and <dir>/<name>_test.csv, each row being the
// feature vector followed by the binary label. The advantaged mask is derived from
// the sensitive column, matching value advVal.
func Load(name, dir string, sensIdx int, advVal float64, batchSize int) (*DataModule, error) {
    dm := &DataModule{name: name, sensIdx: sensIdx, advVal: advVal, batchSize: batchSize}
    var err error
    dm.train, err = readCSV(filepath.Join(dir, name+"_train.csv"))
    if err != nil { return nil, err }
    dm.test, err = readCSV(filepath.Join(dir, name+"_test.csv"))
    if err != nil { return nil, err }
    if sensIdx < 0 || sensIdx >= dm.InputSize() {
        return nil, fmt.Errorf("índice sensível %d fora do intervalo de %d atributos", sensIdx, dm.InputSize())
    }
    dm.train.AdvMask = dm.Mask(dm.train.X)
    dm.test.AdvMask = dm.Mask(dm.test.X)
    return dm, nil
}

// FromArrays builds a module directly from in-memory partitions.
func FromArrays(name string, sensIdx int, advVal float64, batchSize int, Xtr [][]float64, ytr []int, Xte [][]float64, yte []int) *DataModule {
    dm := &DataModule{name: name, sensIdx: sensIdx, advVal: advVal, batchSize: batchSize}
    dm.train = &Dataset{X: Xtr, Y: ytr}
    dm.test = &Dataset{X: Xte, Y: yte}
    dm.train.AdvMask = dm.Mask(Xtr)
    dm.test.AdvMask = dm.Mask(Xte)
    return dm
}

func readCSV(path string) (*Dataset, error) {
    f, err := os.Open(path)
    if err != nil { return nil, err }
    defer f.Close()
    r := csv.NewReader(f)
    rows, err := r.ReadAll()
    if err != nil { return nil, err }
    if len(rows) < 2 { return nil, fmt.Errorf("CSV vazio: %s", path) }
    ds := &Dataset{X: make([][]float64, 0, len(rows)-1), Y: make([]int, 0, len(rows)-1)}
    for i := 1; i < len(rows); i++ {
        row := rows[i]
        vec := make([]float64, len(row)-1)
        for j := 0; j < len(row)-1; j++ {
            v, err := strconv.ParseFloat(row[j], 64)
            if err != nil { return nil, fmt.Errorf("linha %d coluna %d: %w", i, j, err) }
            vec[j] = v
        }
        lbl, err := strconv.Atoi(row[len(row)-1])
        if err != nil { return nil, fmt.Errorf("linha %d rótulo: %w", i, err) }
        ds.X = append(ds.X, vec)
        ds.Y = append(ds.Y, lbl)
    }
    return ds, nil
}
