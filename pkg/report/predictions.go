package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"polyreg/pkg/core"
)

// WritePredictions saves one CSV row per sample: the raw features, the
// actual target and the prediction.
func WritePredictions(path string, features []string, target string, X *core.Matrix, actual, predicted []float64) (err error) {
	if X.R != len(actual) || X.R != len(predicted) {
		return fmt.Errorf("report: %d rows, %d targets, %d predictions", X.R, len(actual), len(predicted))
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	writer := csv.NewWriter(file)
	header := append(append([]string{}, features...), target, target+"_pred")
	if err := writer.Write(header); err != nil {
		return err
	}

	rec := make([]string, len(header))
	for i := 0; i < X.R; i++ {
		for j, v := range X.Row(i) {
			rec[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		rec[X.C] = strconv.FormatFloat(actual[i], 'g', -1, 64)
		rec[X.C+1] = strconv.FormatFloat(predicted[i], 'g', -1, 64)
		if err := writer.Write(rec); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
