package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/refpay/earnings-be/pkg/logger"
)

// TemplateColumns are the canonical CSV template headers, in order.
var TemplateColumns = []string{
	"Agent Code", "Amount", "Type", "Description", "Reference ID", "Commission Rate", "Currency",
}

// TemplateCSV returns the downloadable CSV template: the canonical header
// row plus one illustrative entry.
func TemplateCSV() string {
	var b strings.Builder
	w := csv.NewWriter(&b)
	_ = w.Write(TemplateColumns)
	_ = w.Write([]string{"AG-1001", "125.50", "referral_commission", "March referral payout", "REF-2024-001", "12.5", "USD"})
	w.Flush()
	return b.String()
}

type CSVReader struct {
	logger *logger.Logger
}

func NewCSVReader(log *logger.Logger) *CSVReader {
	return &CSVReader{logger: log}
}

// ReadRows parses a CSV stream into header-keyed rows. The first line is the
// header; short records are padded so a ragged sheet does not abort the
// read. Header resolution and cell coercion belong to the Normalizer.
func (r *CSVReader) ReadRows(ctx context.Context, reader io.Reader) ([]RawRow, error) {
	csvReader := csv.NewReader(reader)
	csvReader.TrimLeadingSpace = true
	csvReader.FieldsPerRecord = -1

	header, err := csvReader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []RawRow
	lineNumber := 1

	for {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		lineNumber++
		if err != nil {
			r.logger.Warn(ctx, "Failed to read CSV line",
				"line", lineNumber,
				"error", err,
			)
			continue
		}

		row := make(RawRow, len(header))
		for i, col := range header {
			if col == "" {
				continue
			}
			if i < len(record) {
				row[col] = record[i]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}
