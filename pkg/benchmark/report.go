package benchmark

import (
	"fmt"
	"io"
	"strings"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const (
	summarySheet = "Sheet1"
	// excel limit on sheet name length
	maxSheetName = 31
)

// PrintHistogram writes a one-line summary of res followed by a histogram of
// its per-batch ns/op samples.
func PrintHistogram(w io.Writer, res *Result, bins int) error {
	if len(res.BatchNanos) == 0 {
		return errors.Errorf("benchmark: %s has no samples", res.Name)
	}
	if bins < 1 {
		bins = 10
	}
	if _, err := fmt.Fprintf(w, "%s: %d ops in %v, %.2f ns/op, %d batches\n",
		res.Name, res.Ops, res.Total, res.NanosPerOp(), len(res.BatchNanos)); err != nil {
		return err
	}
	hist := histogram.Hist(bins, res.BatchNanos)
	return histogram.Fprint(w, hist, histogram.Linear(40))
}

func sheetName(idx int, name string) string {
	s := fmt.Sprintf("%d-%s", idx+1, strings.ReplaceAll(name, "/", "-"))
	if len(s) > maxSheetName {
		s = s[:maxSheetName]
	}
	return s
}

// WriteXLSX saves results to an xlsx workbook: a summary sheet with one row
// per result, then one sheet per result listing its batch samples.
func WriteXLSX(path string, results []*Result) error {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil {
			glog.Errorf("benchmark: close workbook: %v", cerr)
		}
	}()

	header := []interface{}{"name", "ops", "total ns", "ns/op", "batches"}
	if err := f.SetSheetRow(summarySheet, "A1", &header); err != nil {
		return errors.Wrap(err, "benchmark: write summary header")
	}
	for idx, res := range results {
		row := []interface{}{res.Name, res.Ops, res.Total.Nanoseconds(), res.NanosPerOp(), len(res.BatchNanos)}
		cell, err := excelize.CoordinatesToCellName(1, idx+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return errors.Wrapf(err, "benchmark: write summary of %s", res.Name)
		}

		sheet := sheetName(idx, res.Name)
		if _, err := f.NewSheet(sheet); err != nil {
			return errors.Wrapf(err, "benchmark: create sheet %s", sheet)
		}
		if err := f.SetSheetRow(sheet, "A1", &[]interface{}{"batch", "ns/op"}); err != nil {
			return err
		}
		for i, ns := range res.BatchNanos {
			cell, err := excelize.CoordinatesToCellName(1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(sheet, cell, &[]interface{}{i, ns}); err != nil {
				return errors.Wrapf(err, "benchmark: write sample %d of %s", i, res.Name)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return errors.Wrapf(err, "benchmark: save %s", path)
	}
	glog.Infof("benchmark: wrote %d results to %s", len(results), path)
	return nil
}
