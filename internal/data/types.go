package data

type Dataset struct {
    X       [][]float64 `json:"x"`
    Y       []int       `json:"y"`
    AdvMask []bool      `json:"adv_mask"`
}

func (d *Dataset) Len() int { return len(d.X) }

func (d *Dataset) Clone() *Dataset {
    out := &Dataset{
        X:       make([][]float64, len(d.X)),
        Y:       make([]int, len(d.Y)),
        AdvMask: make([]bool, len(d.AdvMask)),
    }
    for i := range d.X {
        row := make([]float64, len(d.X[i]))
        copy(row, d.X[i])
        out.X[i] = row
    }
    copy(out.Y, d.Y)
    copy(out.AdvMask, d.AdvMask)
    return out
}

func (d *Dataset) AdvantagedSubset() [][]float64 {
    out := [][]float64{}
    for i := range d.X { if d.AdvMask[i] { out = append(out, d.X[i]) } }
    return out
}

func (d *Dataset) DisadvantagedSubset() [][]float64 {
    out := [][]float64{}
    for i := range d.X { if !d.AdvMask[i] { out = append(out, d.X[i]) } }
    return out
}
