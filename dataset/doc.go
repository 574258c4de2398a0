// Package dataset provides rectangular tables of parallel measurement
// series and their descriptive statistics.
//
// A Table stores samples as rows and parallel series as columns. All
// constructors normalize their input shape and enforce rectangularity up
// front, so downstream aggregation never has to deal with ragged data:
//
//	tab, err := dataset.FromColumns(run1, run2, run3)
//	tab, err = dataset.FromRows(sample1, sample2)
//	tab, err = dataset.FromFlat(2, 3, []float64{1, 2, 3, 4, 5, 6})
//
// Unequal series lengths fail with ErrShapeMismatch before any data is
// stored.
//
// # Descriptive statistics
//
// Describe summarizes a single series, DescribeColumns a whole table:
//
//	sum := dataset.Describe(readings)
//	fmt.Println(sum.Mean, sum.Median, sum.StdDev)
//
// # CSV input and output
//
// LoadCSV reads every numeric column of a file into a table; SaveCSV writes
// one back out:
//
//	tab, err := dataset.LoadCSV("readings.csv", nil)
//	err = dataset.SaveCSV(tab, "out.csv")
package dataset
