// Package feed reads the municipal EV charging station export. The
// city publishes it as a CP949-encoded CSV; decoding goes through
// golang.org/x/text so the rest of the system only ever sees UTF-8.
package feed

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/geonjuring/parking-system/internal/models"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

// Column headers as they appear in the source sheet. The convenience
// column sometimes carries a stray leading space, so header lookup
// trims before comparing.
const (
	colName          = "충전소"
	colAddress       = "주소"
	colChargerType   = "충전기타입"
	colCapacity      = "충전용량"
	colAvailableTime = "이용가능시간"
	colFacilityType  = "시설구분(대)"
	colConvenience   = "편의제공"
)

// Reader parses charger records from the feed CSV.
type Reader struct{}

// NewReader creates a feed reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadFile opens and parses a CP949-encoded feed CSV.
func (r *Reader) ReadFile(path string) ([]models.ChargerRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open feed file: %w", err)
	}
	defer f.Close()
	return r.Read(f)
}

// Read parses charger records from a CP949-encoded CSV stream. Rows
// missing required columns are skipped rather than failing the batch;
// the convenience column is optional.
func (r *Reader) Read(src io.Reader) ([]models.ChargerRecord, error) {
	decoded := transform.NewReader(src, korean.EUCKR.NewDecoder())
	cr := csv.NewReader(decoded)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read feed header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, h := range header {
		columns[strings.TrimSpace(h)] = i
	}
	for _, required := range []string{colName, colAddress, colChargerType} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("feed header missing column %q", required)
		}
	}

	field := func(row []string, name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	var records []models.ChargerRecord
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read feed row: %w", err)
		}
		record := models.ChargerRecord{
			Name:          field(row, colName),
			Address:       field(row, colAddress),
			ChargerType:   field(row, colChargerType),
			Capacity:      field(row, colCapacity),
			AvailableTime: field(row, colAvailableTime),
			FacilityType:  field(row, colFacilityType),
			Convenience:   field(row, colConvenience),
		}
		if record.Name == "" && record.Address == "" {
			continue
		}
		records = append(records, record)
	}
	return records, nil
}
