// Package common provides shared CSV input and output helpers used by
// the CLI commands and the labeling pipeline.
package common

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"mwirth/statement-csv/internal/logging"
	"mwirth/statement-csv/internal/models"
)

var log = logging.GetLogger()

// Delimiter is the CSV output delimiter. Configurable via SetDelimiter
// or the CSV_DELIMITER environment variable.
var Delimiter rune = ','

func init() {
	if val := os.Getenv("CSV_DELIMITER"); val != "" {
		SetDelimiter([]rune(val)[0])
	}
}

// SetDelimiter sets the delimiter for CSV output.
func SetDelimiter(delim rune) {
	Delimiter = delim
	gocsv.TagSeparator = fmt.Sprintf("%c", delim)
}

// SetLogger overrides the package logger.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// ReadCSVFile reads CSV data into a slice of structs using gocsv.
func ReadCSVFile[TCSVRow any](filePath string) ([]TCSVRow, error) {
	log.Debug("reading CSV file", logging.Field{Key: "file", Value: filePath})

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("failed to close file")
		}
	}()

	var rows []TCSVRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}

	log.Debug("read CSV rows", logging.Field{Key: "count", Value: len(rows)})
	return rows, nil
}

// WriteTransactionsToCSV writes extracted transactions to a CSV file.
func WriteTransactionsToCSV(transactions []models.Transaction, csvFile string) error {
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}
	return writeCSV(transactions, csvFile, len(transactions))
}

// WriteLabeledToCSV writes a labeled batch to a CSV file.
func WriteLabeledToCSV(labeled []models.LabeledTransaction, csvFile string) error {
	if labeled == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}
	return writeCSV(labeled, csvFile, len(labeled))
}

func writeCSV(rows interface{}, csvFile string, count int) error {
	log.WithFields(
		logging.Field{Key: "file", Value: csvFile},
		logging.Field{Key: "count", Value: count},
	).Info("writing CSV file")

	if err := os.MkdirAll(filepath.Dir(csvFile), models.PermissionDirectory); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("failed to close file")
		}
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}
