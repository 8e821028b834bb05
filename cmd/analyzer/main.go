package main

import (
    "encoding/csv"
    "flag"
    "fmt"
    "os"
    "path/filepath"
    "strconv"

    "gonum.org/v1/plot"
    "gonum.org/v1/plot/plotter"
    "gonum.org/v1/plot/plotutil"
    "gonum.org/v1/plot/vg"

    "fairattack/internal/results"
)

func main() {
    ckpt := flag.String("ckpt", "data/results.gob", "Checkpoint da tabela de resultados")
    metric := flag.String("metric", "spd", "Métrica: test_error|spd|eod")
    stat := flag.String("stat", results.StatMean, "Estatística: mean|std")
    outImg := flag.String("out_img", "cmd/api/static", "Diretório dos PNGs de saída")
    outCsv := flag.String("out_csv", "data", "Diretório dos CSVs de saída")
    flag.Parse()

    table, err := results.Load(*ckpt)
    if err != nil { fmt.Println("Falha ao ler checkpoint:", err); return }
    if table.Len() == 0 { fmt.Println("Tabela vazia:", *ckpt); return }

    for _, ds := range table.Datasets() {
        weights := table.Weights(ds, *metric)
        if len(weights) == 0 { continue }

        img := filepath.Join(*outImg, fmt.Sprintf("%s_%s_%s.png", ds, *metric, *stat))
        csvPath := filepath.Join(*outCsv, fmt.Sprintf("%s_%s_%s.csv", ds, *metric, *stat))

        if err := writeSeriesCSV(csvPath, table, ds, *metric, *stat, weights); err != nil {
            fmt.Println("Erro ao salvar CSV:", err)
        } else {
            fmt.Println("Série salva em:", csvPath)
        }
        if err := plotSeries(img, table, ds, *metric, *stat, weights); err != nil {
            fmt.Println("Erro ao salvar PNG:", err)
        } else {
            fmt.Println("Gráfico salvo em:", img)
        }
    }
}

func writeSeriesCSV(path string, t *results.Table, ds, metric, stat string, weights []float64) error {
    if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { return err }
    f, err := os.Create(path)
    if err != nil { return err }
    defer f.Close()
    w := csv.NewWriter(f)
    defer w.Flush()
    if err := w.Write([]string{"lambda", "eps", metric + "_" + stat}); err != nil { return err }
    for _, wt := range weights {
        budgets, vals := t.Series(ds, metric, stat, wt)
        for i := range budgets {
            rec := []string{
                strconv.FormatFloat(wt, 'f', -1, 64),
                strconv.FormatFloat(budgets[i], 'f', -1, 64),
                fmt.Sprintf("%.6f", vals[i]),
            }
            if err := w.Write(rec); err != nil { return err }
        }
    }
    return nil
}

func plotSeries(path string, t *results.Table, ds, metric, stat string, weights []float64) error {
    p := plot.New()
    p.Title.Text = fmt.Sprintf("%s: %s (%s)", ds, metric, stat)
    p.X.Label.Text = "Orçamento de perturbação (eps)"
    p.Y.Label.Text = metric

    args := []interface{}{}
    for _, wt := range weights {
        budgets, vals := t.Series(ds, metric, stat, wt)
        if len(budgets) == 0 { continue }
        pts := make(plotter.XYs, len(budgets))
        for i := range budgets { pts[i].X = budgets[i]; pts[i].Y = vals[i] }
        args = append(args, fmt.Sprintf("lambda=%g", wt), pts)
    }
    if err := plotutil.AddLinePoints(p, args...); err != nil { return err }
    if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { return err }
    return p.Save(8*vg.Inch, 4*vg.Inch, path)
}
