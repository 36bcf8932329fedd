package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dhaba/internal/domain"
)

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer
	w := NewCSVWriter(&buf)
	require.NoError(t, w.WriteHeader())
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	row, err := r.Read()
	require.NoError(t, err)

	assert.Len(t, row, 9)
	assert.Equal(t, "Order Number", row[0])
	assert.Equal(t, "Total", row[8])
}

func TestWriteRows(t *testing.T) {
	settled := time.Date(2025, 3, 14, 13, 45, 0, 0, time.UTC)
	rows := []domain.SalesRegisterRow{{
		OrderID:     uuid.New(),
		OrderNumber: "ORD-00010",
		SettledAt:   settled,
		OrderType:   domain.OrderTypeDineIn,
		PaymentMode: domain.PaymentModeCash,
		Subtotal:    500,
		CGST:        12.5,
		SGST:        12.5,
		RoundOff:    0.4,
		Total:       525.4,
	}}

	var buf bytes.Buffer
	w := NewCSVWriter(&buf)
	require.NoError(t, w.WriteRows(rows))
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	row, err := r.Read()
	require.NoError(t, err)

	assert.Equal(t, "ORD-00010", row[0])
	assert.Equal(t, "2025-03-14T13:45:00Z", row[1])
	assert.Equal(t, "dine_in", row[2])
	assert.Equal(t, "cash", row[3])
	assert.Equal(t, "500.00", row[4])
	assert.Equal(t, "12.50", row[5])
	assert.Equal(t, "12.50", row[6])
	assert.Equal(t, "0.40", row[7])
	assert.Equal(t, "525.40", row[8])
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "Sharma Dhaba", "Sharma_Dhaba"},
		{"special chars", "Bikaner Sweets & Snacks (Karnal)", "Bikaner_Sweets_Snacks_Karnal"},
		{"unicode", "शर्मा Dhaba", "Dhaba"},
		{"hyphens and underscores preserved", "sharma-dhaba_gt-road", "sharma-dhaba_gt-road"},
		{"consecutive underscores collapsed", "test___dhaba", "test_dhaba"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeFilename(tt.input))
		})
	}
}

func TestBuildFilename(t *testing.T) {
	filename := BuildFilename("Sharma Dhaba", "csv")
	today := time.Now().Format("2006-01-02")
	assert.Equal(t, "Sharma_Dhaba_sales_register_"+today+".csv", filename)
}
