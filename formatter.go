package main

import (
	"fmt"
	"io"
	"strings"
)

const bannerWidth = 60

// writeBanner 输出分节标题
func writeBanner(w io.Writer, title string) {
	rule := strings.Repeat("=", bannerWidth)
	fmt.Fprintf(w, "%s\n%s\n%s\n\n", rule, title, rule)
}

// writeRecords prints every valid record of raw and returns how many were printed.
//
// Records are numbered by their line position in raw, so skipped lines still
// consume a number. When limit > 0 only the first limit lines are considered,
// whether or not they turn out to be valid.
func writeRecords(w io.Writer, raw string, limit int, emptyMessage string) int {
	if strings.TrimSpace(raw) == "" {
		fmt.Fprintf(w, "%s\n\n", emptyMessage)
		return 0
	}

	lines := strings.Split(raw, "\n")
	if limit > 0 && len(lines) > limit {
		lines = lines[:limit]
	}

	printed := 0
	for i, line := range lines {
		if line == "" {
			continue
		}
		rec, ok := parseLogRecord(line)
		if !ok {
			continue
		}
		writeRecord(w, i+1, rec)
		printed++
	}
	return printed
}

func writeRecord(w io.Writer, seq int, rec LogRecord) {
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("%d. Commit:  %s\n", seq, rec.Hash))
	sb.WriteString(fmt.Sprintf("   Date:    %s\n", rec.Date))
	sb.WriteString(fmt.Sprintf("   Author:  %s\n", rec.Author))
	sb.WriteString(fmt.Sprintf("   Message: %s\n", rec.Message))
	sb.WriteString("\n")
	io.WriteString(w, sb.String())
}
