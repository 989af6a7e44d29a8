package normalizer

import "time"

// usDateLayouts are tried in this fixed priority order. The ordering is
// ambiguous when day and month are both <= 12 (MM/DD is preferred over
// DD/MM); that is a documented limitation of the upstream contract.
var usDateLayouts = []string{
	"2006-01-02", // YYYY-MM-DD
	"01/02/2006", // MM/DD/YYYY (already correct)
	"02/01/2006", // DD/MM/YYYY
	"20060102",   // YYYYMMDD
	"01-02-2006", // MM-DD-YYYY
	"02-01-2006", // DD-MM-YYYY
}

// FormatDateToUS reformats a date string as MM/DD/YYYY, trying the layouts
// above in order. Unparseable input passes through unchanged; empty input
// renders as the N/A sentinel. It never fails.
func FormatDateToUS(s string) string {
	if s == "" || s == na {
		return na
	}
	for _, layout := range usDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("01/02/2006")
		}
	}
	return s
}
