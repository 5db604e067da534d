package export

import (
	"strings"
	"time"

	"github.com/harbourmove/leadsgo/internal/models"
)

// csvColumns is the fixed export column order.
var csvColumns = []string{
	"Created At",
	"Form Type",
	"Full Name",
	"Email",
	"Phone",
	"Subject",
	"Moving From",
	"Moving To",
	"Moving Date",
	"Moving Time",
	"Move Size",
	"Additional Details",
	"Status",
}

const timestampLayout = "2006-01-02 15:04:05"

// CSV renders submissions as a CSV document, one row per submission
// plus the header line. Only fields containing a comma are wrapped in
// quotes, matching the dashboard's export format exactly.
func CSV(subs []models.Submission) []byte {
	var b strings.Builder
	b.WriteString(strings.Join(csvColumns, ","))
	b.WriteByte('\n')

	for _, s := range subs {
		row := []string{
			s.CreatedAt.Format(timestampLayout),
			string(s.FormType),
			s.FullName,
			s.Email,
			s.PhoneNumber,
			deref(s.Subject),
			deref(s.MovingFrom),
			deref(s.MovingTo),
			deref(s.MovingDate),
			deref(s.MovingTime),
			deref(s.MoveSize),
			deref(s.AdditionalDetails),
			string(s.Status),
		}
		for i, field := range row {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(csvField(field))
		}
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// CSVFilename returns the dated attachment name for an export.
func CSVFilename(now time.Time) string {
	return "form-submissions-" + now.Format("2006-01-02") + ".csv"
}

func csvField(s string) string {
	if strings.Contains(s, ",") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
