package main

import (
    "net/http"
    "os"
    "strconv"

    "github.com/gin-gonic/gin"

    "fairattack/internal/results"
    "fairattack/pkg/utils"
)

var ckptPath string

func main() {
    logger := utils.Logger()
    defer logger.Sync()

    ckptPath = os.Getenv("CKPT_PATH")
    if ckptPath == "" { ckptPath = "data/results.gob" }

    r := gin.Default()

    r.Static("/static", "cmd/api/static")
    r.GET("/health", func(c *gin.Context) {
        c.JSON(http.StatusOK, gin.H{"status": "ok"})
    })

    api := r.Group("/")
    api.Use(apiKeyMiddleware)
    api.GET("/results", handleResults)
    api.GET("/results/:dataset", handleDataset)

    port := os.Getenv("PORT")
    if port == "" { port = "8080" }
    r.Run(":" + port)
}

func apiKeyMiddleware(c *gin.Context) {
    key := os.Getenv("API_KEY")
    if key == "" { c.Next(); return }
    got := c.GetHeader("X-API-Key")
    if got != key { c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"}); return }
    c.Next()
}

type leaf struct {
    Dataset string  `json:"dataset"`
    Metric  string  `json:"metric"`
    Eps     float64 `json:"eps"`
    Stat    string  `json:"stat"`
    Lambda  float64 `json:"lambda"`
    Value   float64 `json:"value"`
}

func handleResults(c *gin.Context) {
    table, err := results.Load(ckptPath)
    if err != nil { c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()}); return }
    out := make([]leaf, 0, table.Len())
    for k, v := range table.Leaves {
        out = append(out, leaf{k.Dataset, k.Metric, k.Budget, k.Stat, k.Weight, v})
    }
    c.JSON(http.StatusOK, gin.H{"count": len(out), "leaves": out})
}

// handleDataset reconstrói a visão aninhada métrica→eps→estatística→lambda de um
// dataset para inspeção manual.
func handleDataset(c *gin.Context) {
    table, err := results.Load(ckptPath)
    if err != nil { c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()}); return }
    name := c.Param("dataset")
    nested := map[string]map[string]map[string]map[string]float64{}
    for k, v := range table.Leaves {
        if k.Dataset != name { continue }
        eps := strconv.FormatFloat(k.Budget, 'f', -1, 64)
        lam := strconv.FormatFloat(k.Weight, 'f', -1, 64)
        if nested[k.Metric] == nil { nested[k.Metric] = map[string]map[string]map[string]float64{} }
        if nested[k.Metric][eps] == nil { nested[k.Metric][eps] = map[string]map[string]float64{} }
        if nested[k.Metric][eps][k.Stat] == nil { nested[k.Metric][eps][k.Stat] = map[string]float64{} }
        nested[k.Metric][eps][k.Stat][lam] = v
    }
    if len(nested) == 0 { c.JSON(http.StatusNotFound, gin.H{"error": "dataset desconhecido"}); return }
    c.JSON(http.StatusOK, gin.H{"dataset": name, "results": nested})
}
