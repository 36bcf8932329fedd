// Package export renders the sales register as downloadable CSV and XLSX
// files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"dhaba/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the sales register header row.
var columns = []string{
	"Order Number",
	"Settled At",
	"Order Type",
	"Payment Mode",
	"Subtotal",
	"CGST",
	"SGST",
	"Round Off",
	"Total",
}

// CSVWriter wraps csv.Writer for exporting sales register rows.
type CSVWriter struct {
	csv *csv.Writer
}

// NewCSVWriter creates a CSVWriter that writes to w.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *CSVWriter) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteRows converts a batch of register rows to CSV and writes them.
func (w *CSVWriter) WriteRows(rows []domain.SalesRegisterRow) error {
	for i := range rows {
		if err := w.csv.Write(registerToRow(&rows[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *CSVWriter) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *CSVWriter) Error() error {
	return w.csv.Error()
}

func registerToRow(r *domain.SalesRegisterRow) []string {
	return []string{
		r.OrderNumber,
		r.SettledAt.Format(time.RFC3339),
		string(r.OrderType),
		string(r.PaymentMode),
		formatMoney(r.Subtotal),
		formatMoney(r.CGST),
		formatMoney(r.SGST),
		formatMoney(r.RoundOff),
		formatMoney(r.Total),
	}
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a restaurant name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for the Content-Disposition
// header. Format: {sanitized_name}_sales_register_{YYYY-MM-DD}.{ext}
func BuildFilename(restaurantName, ext string) string {
	sanitized := SanitizeFilename(restaurantName)
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("%s_sales_register_%s.%s", sanitized, date, ext)
}
