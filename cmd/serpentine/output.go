package main

import (
	"bufio"
	"os"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// writeTSV dumps m as tab-separated rows. Inf/NaN are written as Go
// formats them (+Inf, -Inf, NaN) — consumers of D must expect them.
func writeTSV(path string, m *mat.Dense) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	rows, cols := m.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if j > 0 {
				if err := w.WriteByte('\t'); err != nil {
					f.Close()
					return err
				}
			}
			if _, err := w.WriteString(strconv.FormatFloat(m.At(i, j), 'g', -1, 64)); err != nil {
				f.Close()
				return err
			}
		}
		if err := w.WriteByte('\n'); err != nil {
			f.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
