// Package csvdata parses header-driven CSV dictionary dumps. The header
// must name "banglish" and "english" columns (any order, any case); a
// "source" column is optional. Pure function, no database dependencies.
package csvdata

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/heartmarshall/banglish-backend/internal/seeder"
)

// Stats holds parser statistics for logging.
type Stats struct {
	TotalRows     int
	SkippedRows   int
	ParsedRecords int
}

// ParseResult holds the parsed records. Rows with a blank banglish or
// english cell are skipped, not fatal.
type ParseResult struct {
	Records []seeder.Record
	Stats   Stats
}

// Parse reads CSV from r. The header row is mandatory; a missing required
// column is a fatal error since it means the whole file is unusable.
func Parse(r io.Reader) (ParseResult, error) {
	var result ParseResult

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // ragged rows are skipped below, not fatal
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return result, fmt.Errorf("read csv header: %w", err)
	}

	banglishCol, englishCol, sourceCol := -1, -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "banglish":
			banglishCol = i
		case "english":
			englishCol = i
		case "source":
			sourceCol = i
		}
	}
	if banglishCol < 0 || englishCol < 0 {
		return result, fmt.Errorf("csv header %v: missing banglish/english columns", header)
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return result, fmt.Errorf("read csv row: %w", err)
		}
		result.Stats.TotalRows++

		if banglishCol >= len(row) || englishCol >= len(row) {
			result.Stats.SkippedRows++
			continue
		}
		banglish := strings.TrimSpace(row[banglishCol])
		english := strings.TrimSpace(row[englishCol])
		if banglish == "" || english == "" {
			result.Stats.SkippedRows++
			continue
		}

		source := ""
		if sourceCol >= 0 && sourceCol < len(row) {
			source = strings.TrimSpace(row[sourceCol])
		}

		result.Records = append(result.Records, seeder.Record{
			Banglish: banglish,
			English:  english,
			Source:   source,
		})
		result.Stats.ParsedRecords++
	}

	return result, nil
}
