// Package latex serializes measurement tables as LaTeX tabularray or
// tabular source.
//
// The generated source targets the tabularray package with siunitx support,
// the layout lab protocols typically use. A minimal example:
//
//	opts := latex.DefaultOptions()
//	opts.ColSpec = "S S"
//	opts.Columns = []string{"U / V", "I / mA"}
//	src, err := latex.FormatFloats(rows, opts)
//	err = latex.WriteFile("table.tex", src)
//
// FormatValues renders uncertain values with both sides at matching
// precision ("28.893 +- 0.013"), the form siunitx's uncertainty parsing
// accepts. FormatTable renders a dataset.Table, reusing its column names as
// the header.
//
// Setting Environ to "tabular" together with HLines produces a plain LaTeX
// table with full rules instead.
package latex
