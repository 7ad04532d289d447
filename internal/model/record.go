// internal/model/record.go
package model

import "net/url"

// CustomerRecord is one loan customer's data from a single CSV row. Every
// field is optional text; blanks fall back to script defaults downstream.
type CustomerRecord struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	LoanNo  string `json:"loan_no"`
	Amount  string `json:"amount"`
	DueDate string `json:"due_date"`
}

// RecordFromRow builds a record from a parsed CSV row keyed by header name.
func RecordFromRow(row map[string]string) CustomerRecord {
	return CustomerRecord{
		Name:    row["name"],
		Phone:   row["phone"],
		LoanNo:  row["loan_no"],
		Amount:  row["amount"],
		DueDate: row["due_date"],
	}
}

// RecordFromValues rebuilds a record from request values, typically the query
// parameters the telephony provider echoes back on the voice callback.
func RecordFromValues(get func(string) string) CustomerRecord {
	return CustomerRecord{
		Name:    get("name"),
		Phone:   get("phone"),
		LoanNo:  get("loan_no"),
		Amount:  get("amount"),
		DueDate: get("due_date"),
	}
}

// QueryValues encodes the record into the callback URL's query parameters.
// The record must round-trip through these verbatim: the service keeps no
// state between call placement and the voice callback.
func (r CustomerRecord) QueryValues() url.Values {
	v := url.Values{}
	v.Set("name", r.Name)
	v.Set("phone", r.Phone)
	v.Set("loan_no", r.LoanNo)
	v.Set("amount", r.Amount)
	v.Set("due_date", r.DueDate)
	return v
}
