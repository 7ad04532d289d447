// internal/service/csv_service.go
package service

import (
	"encoding/csv"
	"io"
	"strings"

	appErrors "github.com/duescall/duescall-backend/internal/errors"
	"github.com/duescall/duescall-backend/internal/model"
)

// recognized CSV columns; anything else in the header is ignored.
var recognizedColumns = map[string]bool{
	"name":     true,
	"phone":    true,
	"loan_no":  true,
	"amount":   true,
	"due_date": true,
}

// ParseCustomers decodes an uploaded CSV into customer records. The first row
// is the header. Undecodable bytes are dropped rather than failing, malformed
// rows are skipped, and ragged rows are tolerated. Returns ErrEmptyCSV when
// no data rows survive.
func ParseCustomers(r io.Reader) ([]model.CustomerRecord, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	text := strings.ToValidUTF8(string(raw), "")
	text = strings.TrimPrefix(text, "\ufeff")

	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, appErrors.NewEmptyCSV()
	}
	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = strings.ToLower(strings.TrimSpace(h))
	}

	var records []model.CustomerRecord
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// tolerate bad rows instead of failing the upload
			continue
		}

		row := map[string]string{}
		for i, value := range fields {
			if i >= len(columns) {
				break
			}
			if recognizedColumns[columns[i]] {
				row[columns[i]] = strings.TrimSpace(value)
			}
		}
		records = append(records, model.RecordFromRow(row))
	}

	if len(records) == 0 {
		return nil, appErrors.NewEmptyCSV()
	}
	return records, nil
}
