package service

import (
	"archive/zip"
	"bytes"
	"encoding/csv"

	"sample-registry/internal/model"
)

// ZipSamplesTSV builds a zip archive containing a single samples.tsv entry
// enumerating every sample. The header row is present even with no samples.
func ZipSamplesTSV(samples []model.Sample) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	f, err := zw.Create("samples.tsv")
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(f)
	w.Comma = '\t'
	if err := w.Write([]string{"date", "primary_key", "email", "name", "running_option"}); err != nil {
		return nil, err
	}
	for _, s := range samples {
		row := []string{
			s.Date.Format("2006-01-02"),
			s.PrimaryKey,
			s.Email,
			s.Name,
			s.RunningOption,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
