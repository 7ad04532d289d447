package service_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/duescall/duescall-backend/internal/errors"
	"github.com/duescall/duescall-backend/internal/service"
)

func TestParseCustomersWellFormed(t *testing.T) {
	csvData := "name,phone,loan_no,amount,due_date\n" +
		"Asha,+919800000001,L100,5000,12 May\n" +
		"Ravi,+919800000002,L101,7500,15 May\n" +
		"Priya,+919800000003,L102,3000,20 May\n"

	records, err := service.ParseCustomers(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "Asha", records[0].Name)
	assert.Equal(t, "+919800000001", records[0].Phone)
	assert.Equal(t, "L100", records[0].LoanNo)
	assert.Equal(t, "Ravi", records[1].Name)
	assert.Equal(t, "Priya", records[2].Name)
}

func TestParseCustomersHeaderOnly(t *testing.T) {
	_, err := service.ParseCustomers(strings.NewReader("name,phone,loan_no,amount,due_date\n"))

	var emptyCSV *appErrors.ErrEmptyCSV
	require.True(t, errors.As(err, &emptyCSV), "expected ErrEmptyCSV, got %v", err)
}

func TestParseCustomersEmptyInput(t *testing.T) {
	_, err := service.ParseCustomers(strings.NewReader(""))

	var emptyCSV *appErrors.ErrEmptyCSV
	require.True(t, errors.As(err, &emptyCSV), "expected ErrEmptyCSV, got %v", err)
}

func TestParseCustomersIgnoresUnknownColumns(t *testing.T) {
	csvData := "name,email,phone\nAsha,asha@example.com,+919800000001\n"

	records, err := service.ParseCustomers(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Asha", records[0].Name)
	assert.Equal(t, "+919800000001", records[0].Phone)
	assert.Equal(t, "", records[0].LoanNo)
}

func TestParseCustomersDropsInvalidBytes(t *testing.T) {
	csvData := "name,phone\nAsha\xff\xfe,+919800000001\n"

	records, err := service.ParseCustomers(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Asha", records[0].Name)
}

func TestParseCustomersToleratesRaggedRows(t *testing.T) {
	csvData := "name,phone,loan_no\nAsha,+919800000001\nRavi,+919800000002,L101,extra\n"

	records, err := service.ParseCustomers(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "", records[0].LoanNo)
	assert.Equal(t, "L101", records[1].LoanNo)
}

func TestParseCustomersTrimsWhitespace(t *testing.T) {
	csvData := "name, phone \n  Asha  , +919800000001 \n"

	records, err := service.ParseCustomers(strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Equal(t, "Asha", records[0].Name)
	assert.Equal(t, "+919800000001", records[0].Phone)
}
