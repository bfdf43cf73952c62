package salesreport

import "strings"

// ParseRecords turns raw CSV text into records keyed by the header row.
// The splitter is deliberately lenient: quotes toggle an in-quotes state and
// are never emitted, delimiters inside quotes are literal, short rows just
// leave trailing columns unset, and a stray leading backtick (an artifact of
// the sheet export) is stripped from field values. It never fails; malformed
// rows degrade to best-effort field splitting.
func ParseRecords(text string) []Record {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if len(lines) == 0 {
		return nil
	}

	headers := splitLine(lines[0])
	for i, h := range headers {
		headers[i] = strings.Trim(strings.TrimSpace(h), `"`)
	}

	var records []Record
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := splitLine(line)
		record := make(Record, len(headers))
		for i, value := range fields {
			if i >= len(headers) {
				break
			}
			record[headers[i]] = value
		}
		records = append(records, record)
	}

	return records
}

func splitLine(line string) []string {
	var (
		fields   []string
		current  strings.Builder
		inQuotes bool
	)

	flush := func() {
		fields = append(fields, strings.TrimPrefix(current.String(), "`"))
		current.Reset()
	}

	for _, ch := range line {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			flush()
		default:
			current.WriteRune(ch)
		}
	}
	flush()

	return fields
}
