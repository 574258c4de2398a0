// Package main walks through a typical measurement evaluation: repeated
// readings are aggregated with Student-t uncertainties, a calibration curve
// is fitted, and the results are exported as CSV and LaTeX tables.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/zandivx/labtool/dataset"
	"github.com/zandivx/labtool/epm"
	"github.com/zandivx/labtool/fit"
	"github.com/zandivx/labtool/latex"
	"github.com/zandivx/labtool/student"
)

func main() {
	outDir := "out"
	if len(os.Args) > 1 {
		outDir = os.Args[1]
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		log.Fatal(err)
	}

	singleSeries()
	parallelSeries(outDir)
	calibrationCurve(outDir)
}

// singleSeries aggregates one series of repeated length readings.
func singleSeries() {
	fmt.Println("=== Single series ===")

	readings := []float64{
		28.89, 28.85, 28.92, 28.93, 28.98, 28.90, 28.85, 28.98, 28.88, 28.91,
		28.84, 28.86, 28.90, 28.87, 28.86, 28.91, 28.93, 28.86, 28.89, 28.89,
	}

	for sigma := 1; sigma <= 3; sigma++ {
		res, err := student.Estimate(readings, sigma)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("  %d sigma: %s  (t=%g, raw %.5f +/- %.5f)\n",
			sigma, res.Mean, res.TFactor, res.RawMean, res.RawSEM)
	}

	sum := dataset.Describe(readings)
	fmt.Printf("  n=%d  min=%.2f  median=%.3f  max=%.2f\n\n",
		sum.N, sum.Min, sum.Median, sum.Max)
}

// parallelSeries aggregates three measurement runs column by column and
// exports the result.
func parallelSeries(outDir string) {
	fmt.Println("=== Parallel series ===")

	runs := [][]float64{
		{4.98, 5.02, 5.01, 4.99, 5.00},
		{9.97, 10.03, 10.01, 9.99, 10.00},
		{15.01, 14.98, 15.03, 14.97, 15.02},
	}

	arr, err := student.EstimateSeries(1, runs...)
	if err != nil {
		log.Fatal(err)
	}
	for i, est := range arr.Estimates {
		fmt.Printf("  run %d: %s\n", i, est)
	}

	opts := latex.DefaultOptions()
	opts.ColSpec = "S"
	opts.Columns = []string{"R / Ohm"}
	rows := make([][]epm.Value, len(arr.Estimates))
	for i, est := range arr.Estimates {
		rows[i] = []epm.Value{est}
	}
	src, err := latex.FormatValues(rows, opts)
	if err != nil {
		log.Fatal(err)
	}
	texPath := filepath.Join(outDir, "runs.tex")
	if err := latex.WriteFile(texPath, src); err != nil {
		log.Fatal(err)
	}

	tab, err := dataset.FromColumns(runs...)
	if err != nil {
		log.Fatal(err)
	}
	tab, err = tab.WithNames("run0", "run1", "run2")
	if err != nil {
		log.Fatal(err)
	}
	csvPath := filepath.Join(outDir, "runs.csv")
	if err := dataset.SaveCSV(tab, csvPath); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("  wrote %s and %s\n\n", texPath, csvPath)
}

// calibrationCurve fits a linear calibration model, interpolates the data,
// and integrates under the interpolant.
func calibrationCurve(outDir string) {
	fmt.Println("=== Calibration curve ===")

	voltage := []float64{0.5, 1.0, 1.5, 2.0, 2.5, 3.0, 3.5, 4.0}
	current := []float64{1.04, 2.01, 3.07, 3.98, 5.02, 6.03, 6.95, 8.01}

	linear := func(x float64, p []float64) float64 { return p[0]*x + p[1] }
	f, err := fit.Curve(linear, voltage, current, []float64{1, 0}, 0)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("  slope:     %s\n", f.Params[0])
	fmt.Printf("  intercept: %s\n", f.Params[1])
	fmt.Printf("  residual:  %.3g\n", f.Residual)

	ip, err := fit.Interpolate(voltage, current, fit.Akima, 0)
	if err != nil {
		log.Fatal(err)
	}
	area, err := fit.Trapezoid(ip.XOut, ip.YOut, 0, -1)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("  area under interpolant: %.3f\n", area)

	opts := latex.DefaultOptions()
	opts.ColSpec = "S S"
	opts.Columns = []string{"slope", "intercept"}
	src, err := latex.FormatValues([][]epm.Value{f.Params}, opts)
	if err != nil {
		log.Fatal(err)
	}
	texPath := filepath.Join(outDir, "fit.tex")
	if err := latex.WriteFile(texPath, src); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("  wrote %s\n", texPath)
}
