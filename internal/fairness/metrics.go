package fairness

import "math"

// SPD = |p(pred=1 | advantaged) - p(pred=1 | disadvantaged)|
type SPD struct {
    predsAdvPos int
    predsDisPos int
    numAdv      int
    numDis      int
}

func (s *SPD) Update(preds []int, advMask []bool) {
    for i := range preds {
        if advMask[i] {
            s.numAdv++
            if preds[i] == 1 { s.predsAdvPos++ }
        } else {
            s.numDis++
            if preds[i] == 1 { s.predsDisPos++ }
        }
    }
}

func (s *SPD) Compute() float64 {
    pAdv := float64(s.predsAdvPos) / math.Max(float64(s.numAdv), 1)
    pDis := float64(s.predsDisPos) / math.Max(float64(s.numDis), 1)
    return math.Abs(pAdv - pDis)
}

// EOD = |p(pred=1 | advantaged, y=1) - p(pred=1 | disadvantaged, y=1)|
type EOD struct {
    predsAdvPos int
    predsDisPos int
    numAdv      int
    numDis      int
}

func (e *EOD) Update(preds, targets []int, advMask []bool) {
    for i := range preds {
        if targets[i] != 1 { continue }
        if advMask[i] {
            e.numAdv++
            if preds[i] == 1 { e.predsAdvPos++ }
        } else {
            e.numDis++
            if preds[i] == 1 { e.predsDisPos++ }
        }
    }
}

func (e *EOD) Compute() float64 {
    pAdv := float64(e.predsAdvPos) / math.Max(float64(e.numAdv), 1)
    pDis := float64(e.predsDisPos) / math.Max(float64(e.numDis), 1)
    return math.Abs(pAdv - pDis)
}
