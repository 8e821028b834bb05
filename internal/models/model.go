package models

import "gonum.org/v1/gonum/mat"

type Model interface {
    Forward(X [][]float64) []float64
    Predict(X [][]float64) []int
    Step(X [][]float64, y []int) float64
    Parameters() *mat.VecDense
    Name() string
}
