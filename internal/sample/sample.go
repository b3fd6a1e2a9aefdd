// Package sample fills a sample sequence from a random.Generator, prints it
// and reduces it to its arithmetic mean.
package sample

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"

	"gonum.org/v1/gonum/stat"

	"github.com/acolita/calc-average/internal/random"
)

// AveragePrefix starts the line written by PrintAverage.
const AveragePrefix = "The average value of the vector is "

// Fill returns exactly n values, one g.Next() call each, in call order.
// n <= 0 yields an empty, non-nil slice.
func Fill(n int, g random.Generator) []int {
	if n < 0 {
		n = 0
	}
	samples := make([]int, n)
	for i := range samples {
		samples[i] = g.Next()
	}
	return samples
}

// Print writes every sample on its own line, in order.
func Print(w io.Writer, samples []int) error {
	bw := bufio.NewWriter(w)
	var buf []byte
	for _, v := range samples {
		buf = strconv.AppendInt(buf[:0], int64(v), 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("write sample: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write sample: %w", err)
	}
	return nil
}

// Mean returns sum(samples) / len(samples) using floating-point division.
// The mean of an empty sequence is NaN.
func Mean(samples []int) float64 {
	if len(samples) == 0 {
		return math.NaN()
	}
	xs := make([]float64, len(samples))
	for i, v := range samples {
		xs[i] = float64(v)
	}
	return stat.Mean(xs, nil)
}

// FormatAverage renders avg with six significant digits in the shortest
// form, e.g. 5.5, 5.33333, 1e+06, NaN.
func FormatAverage(avg float64) string {
	return strconv.FormatFloat(avg, 'g', 6, 64)
}

// PrintAverage writes the average line.
func PrintAverage(w io.Writer, avg float64) error {
	if _, err := io.WriteString(w, AveragePrefix+FormatAverage(avg)+"\n"); err != nil {
		return fmt.Errorf("write average: %w", err)
	}
	return nil
}

// Report prints samples followed by their average and returns the average.
func Report(w io.Writer, samples []int) (float64, error) {
	if err := Print(w, samples); err != nil {
		return 0, err
	}
	avg := Mean(samples)
	if err := PrintAverage(w, avg); err != nil {
		return 0, err
	}
	return avg, nil
}
