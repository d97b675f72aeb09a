package main

import (
	"strings"
)

const (
	recordDelimiter  = "|"
	recordFieldCount = 4

	// recordFormat renders each commit as one line: short hash, date, author, subject.
	recordFormat = "%h" + recordDelimiter + "%ad" + recordDelimiter + "%an" + recordDelimiter + "%s"
	recordDate   = "%Y-%m-%d %H:%M:%S"
)

// LogRecord is one commit line printed by `git log --pretty=format:<recordFormat>`.
type LogRecord struct {
	Hash    string
	Date    string
	Author  string
	Message string
}

// parseLogRecord splits line into its four fields. Only the first three
// delimiters count, so the message may carry its own '|'.
// The second return is false for lines with fewer than four fields.
func parseLogRecord(line string) (LogRecord, bool) {
	parts := strings.SplitN(line, recordDelimiter, recordFieldCount)
	if len(parts) < recordFieldCount {
		return LogRecord{}, false
	}
	return LogRecord{
		Hash:    parts[0],
		Date:    parts[1],
		Author:  parts[2],
		Message: parts[3],
	}, true
}
