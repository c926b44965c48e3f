package data

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// Frame is an ordered collection of named float64 columns. All columns must
// share one length, except length-1 columns, which broadcast to the frame
// length on export (scalar results like a fitted bias).
type Frame struct {
	names []string
	cols  [][]float64
	rows  int // length of the first non-scalar column, 0 until one is pushed
}

func NewFrame() *Frame { return &Frame{} }

// Push appends a named column. The first column longer than 1 fixes the
// frame length; later columns must match it or have length 1.
func (f *Frame) Push(name string, col []float64) error {
	if len(col) > 1 {
		if f.rows == 0 {
			f.rows = len(col)
		} else if len(col) != f.rows {
			return fmt.Errorf("data: column %q has length %d, want %d or 1", name, len(col), f.rows)
		}
	}
	f.names = append(f.names, name)
	f.cols = append(f.cols, col)
	return nil
}

// Len is the number of rows the frame exports.
func (f *Frame) Len() int {
	if f.rows == 0 && len(f.cols) > 0 {
		return 1
	}
	return f.rows
}

// Names returns the column names in push order.
func (f *Frame) Names() []string {
	out := make([]string, len(f.names))
	copy(out, f.names)
	return out
}

// at resolves cell (i, j) with scalar broadcast.
func (f *Frame) at(i, j int) float64 {
	col := f.cols[j]
	if len(col) == 1 {
		return col[0]
	}
	return col[i]
}

// Print previews the first n rows on the console with column headers.
func (f *Frame) Print(n int) {
	if n > f.Len() {
		n = f.Len()
	}
	for _, name := range f.names {
		fmt.Printf("%-15s", name)
	}
	fmt.Println()
	for i := 0; i < n; i++ {
		for j := range f.cols {
			fmt.Printf("%-15.6f", f.at(i, j))
		}
		fmt.Println()
	}
}

// WriteCSV serializes the frame to a CSV file, one header row of column
// names followed by one record per row. Scalar columns repeat their value
// on every row.
func (f *Frame) WriteCSV(path string) error {
	if len(f.cols) == 0 {
		return fmt.Errorf("data: cannot write an empty frame")
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	bw := bufio.NewWriter(file)
	w := csv.NewWriter(bw)

	if err := w.Write(f.names); err != nil {
		return err
	}
	record := make([]string, len(f.cols))
	for i := 0; i < f.Len(); i++ {
		for j := range f.cols {
			record[j] = strconv.FormatFloat(f.at(i, j), 'g', -1, 64)
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return bw.Flush()
}
