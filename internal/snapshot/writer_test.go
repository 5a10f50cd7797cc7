package snapshot

import (
	"bytes"
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joeandaverde/customerdb/internal/customer"
)

var testRows = []customer.Customer{
	{
		ID:            1,
		Name:          "Alice",
		Mail:          "alice@x.com",
		JobType:       customer.BackendDeveloper,
		EmailVerified: true,
		DateOfBirth:   customer.Date{Day: 1, Month: 2, Year: 1990},
	},
	{ID: 2, Name: "Smith, John", Mail: "j@x.com", JobType: customer.TestEngineer},
}

func TestFormatRow(t *testing.T) {
	assert := require.New(t)

	assert.Equal("Alice,alice@x.com,BACKEND_DEVELOPER,true,01.02.1990", FormatRow(testRows[0]))
	assert.Equal("Smith, John,j@x.com,TEST_ENGINEER,false,00.00.0000", FormatRow(testRows[1]))
	assert.Equal("null,null,BACKEND_DEVELOPER,false,00.00.0000", FormatRow(customer.Customer{}))
}

func TestWriter_WriteTable(t *testing.T) {
	assert := require.New(t)

	var buf bytes.Buffer
	w := NewWriter(&buf)

	assert.NoError(w.WriteTable(slices.Values(testRows)))
	assert.Equal(
		"Alice,alice@x.com,BACKEND_DEVELOPER,true,01.02.1990\n"+
			"Smith, John,j@x.com,TEST_ENGINEER,false,00.00.0000\n",
		buf.String())
}

func TestWriter_WriteBlock(t *testing.T) {
	assert := require.New(t)

	var buf bytes.Buffer
	w := NewWriter(&buf)

	assert.NoError(w.WriteTable(slices.Values[[]customer.Customer](nil)))
	assert.NoError(w.WriteBlock(slices.Values(testRows[:1]), nil))
	assert.NoError(w.WriteBlock(slices.Values(testRows), errors.New("customer not found")))
	assert.NoError(w.WriteBlock(slices.Values[[]customer.Customer](nil), nil))

	assert.Equal(
		"----------\n"+
			"Alice,alice@x.com,BACKEND_DEVELOPER,true,01.02.1990\n"+
			"----------\n"+
			"error\n"+
			"----------\n",
		buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriter_WriteError(t *testing.T) {
	assert := require.New(t)

	w := NewWriter(failingWriter{})
	assert.EqualError(w.WriteBlock(slices.Values(testRows), nil), "disk full")
}
