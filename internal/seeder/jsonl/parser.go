// Package jsonl parses JSON Lines dictionary dumps: one object per line
// with "banglish", "english" and optional "source" fields. Pure function:
// reader in, records out. No database dependencies.
package jsonl

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/heartmarshall/banglish-backend/internal/seeder"
)

// line is the wire shape of one JSONL record.
type line struct {
	Banglish string `json:"banglish"`
	English  string `json:"english"`
	Source   string `json:"source"`
}

// Stats holds parser statistics for logging.
type Stats struct {
	TotalLines     int
	BlankLines     int
	MalformedLines int
	ParsedRecords  int
}

// ParseResult holds the parsed records plus per-line failures. Malformed
// lines are skipped, not fatal; each failure carries its line number.
type ParseResult struct {
	Records []seeder.Record
	Errors  []error
	Stats   Stats
}

// Parse reads JSONL from r until EOF. Only a read failure is returned as an
// error; malformed lines end up in ParseResult.Errors.
func Parse(r io.Reader) (ParseResult, error) {
	var result ParseResult

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		result.Stats.TotalLines++

		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			result.Stats.BlankLines++
			continue
		}

		var l line
		if err := json.Unmarshal([]byte(text), &l); err != nil {
			result.Stats.MalformedLines++
			result.Errors = append(result.Errors, fmt.Errorf("line %d: %w", lineNo, err))
			continue
		}

		result.Records = append(result.Records, seeder.Record{
			Banglish: l.Banglish,
			English:  l.English,
			Source:   l.Source,
		})
		result.Stats.ParsedRecords++
	}
	if err := scanner.Err(); err != nil {
		return result, fmt.Errorf("read jsonl: %w", err)
	}

	return result, nil
}
