package results

import (
    "encoding/gob"
    "os"
    "sort"
)

const (
    StatMean = "mean"
    StatStd  = "std"
)

// Key identifica uma folha da tabela de resultados. O esquema substitui o
// dicionário aninhado dataset→métrica→eps→estatística→lambda por uma chave
// composta explícita.
type Key struct {
    Dataset string
    Metric  string
    Budget  float64
    Stat    string
    Weight  float64
}

type Table struct {
    Leaves map[Key]float64
}

func New() *Table { return &Table{Leaves: map[Key]float64{}} }

// Load lê o checkpoint se existir; arquivo ausente significa começar do zero.
func Load(path string) (*Table, error) {
    f, err := os.Open(path)
    if err != nil {
        if os.IsNotExist(err) { return New(), nil }
        return nil, err
    }
    defer f.Close()
    t := New()
    if err := gob.NewDecoder(f).Decode(&t.Leaves); err != nil { return nil, err }
    return t, nil
}

func (t *Table) Save(path string) error {
    f, err := os.Create(path)
    if err != nil { return err }
    defer f.Close()
    return gob.NewEncoder(f).Encode(t.Leaves)
}

func (t *Table) Set(k Key, v float64) { t.Leaves[k] = v }

func (t *Table) Get(k Key) (float64, bool) {
    v, ok := t.Leaves[k]
    return v, ok
}

func (t *Table) Len() int { return len(t.Leaves) }

func (t *Table) Datasets() []string {
    seen := map[string]bool{}
    for k := range t.Leaves { seen[k.Dataset] = true }
    out := make([]string, 0, len(seen))
    for d := range seen { out = append(out, d) }
    sort.Strings(out)
    return out
}

func (t *Table) Weights(dataset, metric string) []float64 {
    seen := map[float64]bool{}
    for k := range t.Leaves {
        if k.Dataset == dataset && k.Metric == metric { seen[k.Weight] = true }
    }
    out := make([]float64, 0, len(seen))
    for w := range seen { out = append(out, w) }
    sort.Float64s(out)
    return out
}

// Series devolve os orçamentos ordenados e os valores correspondentes de uma
// métrica/estatística para um peso fixo, para plotagem e exportação.
func (t *Table) Series(dataset, metric, stat string, weight float64) ([]float64, []float64) {
    type point struct{ b, v float64 }
    pts := []point{}
    for k, v := range t.Leaves {
        if k.Dataset == dataset && k.Metric == metric && k.Stat == stat && k.Weight == weight {
            pts = append(pts, point{k.Budget, v})
        }
    }
    sort.Slice(pts, func(i, j int) bool { return pts[i].b < pts[j].b })
    bs := make([]float64, len(pts))
    vs := make([]float64, len(pts))
    for i, p := range pts { bs[i], vs[i] = p.b, p.v }
    return bs, vs
}
