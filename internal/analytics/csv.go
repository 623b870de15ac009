package analytics

import (
	"strconv"
	"strings"

	"onerental-backend/internal/domain"
)

// RevenueSeriesCSV serializes a revenue series for download: a bare
// "month,revenue" header followed by one row per bucket. Every value is
// double-quoted with internal quotes doubled. encoding/csv is not used
// because it quotes only when required, and the export format quotes
// unconditionally.
func RevenueSeriesCSV(series []domain.RevenueBucket) string {
	var b strings.Builder
	b.WriteString("month,revenue\n")
	for _, row := range series {
		b.WriteString(quoteCSVField(row.Month))
		b.WriteByte(',')
		b.WriteString(quoteCSVField(formatRevenue(row.Revenue)))
		b.WriteByte('\n')
	}
	return b.String()
}

func quoteCSVField(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// formatRevenue prints whole amounts without a decimal point and fractional
// amounts with their two-decimal precision.
func formatRevenue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
