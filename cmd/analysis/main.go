//go:build analysis

// Command analysis runs repeated factoring attempts over freshly built
// semiprimes, collects per-attempt wall times, and renders the
// distributions as go-echarts HTML histograms plus a JSON report.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"math/big"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/yyl-20020115/ShorAlgorithm/arith"
	"github.com/yyl-20020115/ShorAlgorithm/factor"
	"github.com/yyl-20020115/ShorAlgorithm/internal/randsrc"
	"github.com/yyl-20020115/ShorAlgorithm/prof"
)

type summaryStats struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Median float64 `json:"median"`
	Max    float64 `json:"max"`
}

func computeStats(x []float64) summaryStats {
	n := len(x)
	if n == 0 {
		return summaryStats{}
	}
	cp := append([]float64(nil), x...)
	sort.Float64s(cp)
	var m float64
	for _, v := range x {
		m += v
	}
	m /= float64(n)
	var m2 float64
	for _, v := range x {
		d := v - m
		m2 += d * d
	}
	std := 0.0
	if n > 1 {
		std = math.Sqrt(m2 / float64(n-1))
	}
	return summaryStats{
		Count:  n,
		Mean:   m,
		Std:    std,
		Min:    cp[0],
		Median: cp[n/2],
		Max:    cp[n-1],
	}
}

func computeHistogram(x []float64, nbins int) (edges []float64, counts []int) {
	lo, hi := x[0], x[0]
	for _, v := range x {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if hi == lo {
		hi = lo + 1
	}
	w := (hi - lo) / float64(nbins)
	edges = make([]float64, nbins+1)
	for i := range edges {
		edges[i] = lo + float64(i)*w
	}
	counts = make([]int, nbins)
	for _, v := range x {
		b := int((v - lo) / w)
		if b >= nbins {
			b = nbins - 1
		}
		counts[b]++
	}
	return edges, counts
}

func toBarItems(vals []int) []opts.BarData {
	out := make([]opts.BarData, len(vals))
	for i, v := range vals {
		out[i] = opts.BarData{Value: v}
	}
	return out
}

func newHistogramChart(title string, values []float64, stats summaryStats) *charts.Bar {
	nbins := int(math.Sqrt(float64(len(values)))) + 1
	edges, counts := computeHistogram(values, nbins)
	xLabels := make([]string, nbins)
	for i := 0; i < nbins; i++ {
		xLabels[i] = fmt.Sprintf("%.3g", 0.5*(edges[i]+edges[i+1]))
	}
	bar := charts.NewBar()
	subtitle := fmt.Sprintf("n=%d, mean=%.4f, std=%.4f, median=%.4f", stats.Count, stats.Mean, stats.Std, stats.Median)
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1200px", Height: "600px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(xLabels).
		AddSeries("count", toBarItems(counts)).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}))
	return bar
}

func saveJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// randomPrime samples odd numbers of the given byte length until one
// passes the deterministic primality test.
func randomPrime(byteLength int, rnd io.Reader) *big.Int {
	for {
		p, err := arith.RandomOddPositive(byteLength, rnd)
		if err != nil {
			log.Fatalf("sample prime: %v", err)
		}
		if p.Cmp(big.NewInt(3)) >= 0 && arith.IsPrime(p) {
			return p
		}
	}
}

func main() {
	runs := flag.Int("runs", 50, "number of factoring attempts")
	primeBytes := flag.Int("primebytes", 2, "byte length of each sampled prime")
	method := flag.String("method", "shor", "search method: shor|dlog")
	retries := flag.Int("retries", 1<<16, "retry budget per attempt")
	kmax := flag.Int("kmax", 64, "multiplier bound (dlog method)")
	seed := flag.String("seed", "", "optional seed for a deterministic byte source")
	outDir := flag.String("out", "Measure_Reports", "output directory for reports")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("create output dir: %v", err)
	}

	var rnd io.Reader
	if *seed != "" {
		rnd = randsrc.NewShake([]byte(*seed))
	}
	s := factor.Searcher{Rand: rnd}

	for i := 0; i < *runs; i++ {
		p := randomPrime(*primeBytes, rnd)
		q := randomPrime(*primeBytes, rnd)
		for q.Cmp(p) == 0 {
			q = randomPrime(*primeBytes, rnd)
		}
		n := new(big.Int).Mul(p, q)

		start := time.Now()
		var ok bool
		switch *method {
		case "shor":
			_, ok = s.ShorFactor(n, nil, *retries, false)
		case "dlog":
			_, ok = s.GetFactor(n, *kmax, *retries)
		default:
			log.Fatalf("unknown method: %q", *method)
		}
		prof.Record(*method, start, !ok)
	}

	var secs []float64
	exhausted := 0
	for _, att := range prof.SnapshotAndReset() {
		if att.Exhausted {
			exhausted++
			continue
		}
		secs = append(secs, att.Seconds)
	}

	stats := computeStats(secs)
	report := map[string]any{
		"method":    *method,
		"runs":      *runs,
		"exhausted": exhausted,
		"seconds":   stats,
	}

	ts := time.Now().Format("20060102_150405")
	jsonPath := filepath.Join(*outDir, fmt.Sprintf("factor_stats_%s.json", ts))
	if err := saveJSON(jsonPath, report); err != nil {
		log.Printf("warn: save stats: %v", err)
	}

	page := components.NewPage()
	if len(secs) > 0 {
		page.AddCharts(newHistogramChart("time to factor (s)", secs, stats))
	}
	htmlPath := filepath.Join(*outDir, fmt.Sprintf("factor_histograms_%s.html", ts))
	f, err := os.Create(htmlPath)
	if err != nil {
		log.Fatalf("create html: %v", err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		log.Fatalf("render html: %v", err)
	}
	fmt.Println("Histogram page:", htmlPath)
	fmt.Println("Stats JSON:", jsonPath)
}
