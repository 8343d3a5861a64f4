// Package export writes customer profile summaries to CSV files.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fayland/go-authorizenet-cim/internal/logging"

	"github.com/gocarina/gocsv"
)

var log logging.Logger = logging.NewLogrusAdapter("info", "text")

// Delimiter is the output field separator. Configurable via export.delimiter.
var Delimiter rune = ','

// SetDelimiter sets the delimiter for CSV output.
func SetDelimiter(delim rune) {
	Delimiter = delim
	gocsv.TagSeparator = fmt.Sprintf("%c", delim)
}

// SetLogger allows setting a configured logger
func SetLogger(logger logging.Logger) {
	if logger == nil {
		return
	}
	log = logger
}

// ProfileRecord is one row of the profile summary export.
type ProfileRecord struct {
	CustomerProfileID  string `csv:"CustomerProfileId"`
	MerchantCustomerID string `csv:"MerchantCustomerId"`
	Description        string `csv:"Description"`
	Email              string `csv:"Email"`
}

// IDsToRecords wraps a list of profile IDs (as returned by the gateway) into
// export rows with only the ID column populated.
func IDsToRecords(ids []string) []ProfileRecord {
	records := make([]ProfileRecord, 0, len(ids))
	for _, id := range ids {
		records = append(records, ProfileRecord{CustomerProfileID: id})
	}
	return records
}

// WriteProfilesToCSV writes profile records to a CSV file. The parent
// directory is created if it does not exist.
func WriteProfilesToCSV(records []ProfileRecord, csvFile string) error {
	if records == nil {
		return fmt.Errorf("cannot write nil records to CSV")
	}

	log.Info("Writing profiles to CSV file",
		logging.F(logging.FieldFile, csvFile),
		logging.F(logging.FieldCount, len(records)))

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		log.WithError(err).Error("Failed to create directory")
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		log.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(records, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		log.WithError(err).Error("Failed to marshal profiles to CSV")
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	log.Info("Successfully wrote profiles to CSV file",
		logging.F(logging.FieldFile, csvFile),
		logging.F(logging.FieldCount, len(records)))

	return nil
}

// ReadProfilesFromCSV reads profile records back from a CSV file.
func ReadProfilesFromCSV(csvFile string) ([]ProfileRecord, error) {
	log.Info("Reading profiles from CSV file", logging.F(logging.FieldFile, csvFile))

	file, err := os.Open(csvFile)
	if err != nil {
		log.WithError(err).Error("Failed to open CSV file")
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	var records []ProfileRecord
	if err := gocsv.UnmarshalFile(file, &records); err != nil {
		log.WithError(err).Error("Failed to parse CSV file")
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}

	log.Info("Successfully read profile records", logging.F(logging.FieldCount, len(records)))
	return records, nil
}
