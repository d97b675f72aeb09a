package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLogRecord(t *testing.T) {
	rec, ok := parseLogRecord("abc123|2024-01-01 10:00:00|Jane|fix: a|b bug")
	require.True(t, ok)
	require.Equal(t, LogRecord{Hash: "abc123", Date: "2024-01-01 10:00:00", Author: "Jane", Message: "fix: a|b bug"}, rec)

	rec, ok = parseLogRecord("abc123|2024-01-01 10:00:00|Jane|")
	require.True(t, ok)
	require.Equal(t, "", rec.Message)

	for _, line := range []string{"", "abc123", "abc123|2024-01-01", "abc123|2024-01-01|Jane"} {
		_, ok := parseLogRecord(line)
		require.False(t, ok, line)
	}
}

func TestWriteRecords_TwoRecords(t *testing.T) {
	var buf bytes.Buffer
	n := writeRecords(&buf, "a1b2c3|2024-06-01 09:00:00|Alice|Initial commit\nd4e5f6|2024-06-01 10:30:00|Bob|Fix bug", 0, "No commits found.")
	require.Equal(t, 2, n)

	want := "1. Commit:  a1b2c3\n" +
		"   Date:    2024-06-01 09:00:00\n" +
		"   Author:  Alice\n" +
		"   Message: Initial commit\n" +
		"\n" +
		"2. Commit:  d4e5f6\n" +
		"   Date:    2024-06-01 10:30:00\n" +
		"   Author:  Bob\n" +
		"   Message: Fix bug\n" +
		"\n"
	require.Equal(t, want, buf.String())
}

func TestWriteRecords_EmptyInput(t *testing.T) {
	for _, raw := range []string{"", "\n", "\n\n  \n"} {
		var buf bytes.Buffer
		n := writeRecords(&buf, raw, 0, "No commits found.")
		require.Equal(t, 0, n)
		require.Equal(t, "No commits found.\n\n", buf.String())
	}
}

func TestWriteRecords_NumbersByLinePosition(t *testing.T) {
	raw := "aaa|2024-01-01 00:00:00|A|one\n" +
		"broken line\n" +
		"ccc|2024-01-01 00:00:02|C|three"
	var buf bytes.Buffer
	n := writeRecords(&buf, raw, 0, "none")
	require.Equal(t, 2, n)

	out := buf.String()
	require.Contains(t, out, "1. Commit:  aaa\n")
	require.Contains(t, out, "3. Commit:  ccc\n")
	require.NotContains(t, out, "2. Commit:")
	require.NotContains(t, out, "broken line")
}

func TestWriteRecords_LimitAppliesToRawLines(t *testing.T) {
	lines := make([]string, 0, 15)
	for i := 1; i <= 15; i++ {
		lines = append(lines, fmt.Sprintf("h%02d|2024-01-01 00:00:00|A|msg %d", i, i))
	}
	lines[2] = "malformed"
	lines[7] = "also|malformed"

	var buf bytes.Buffer
	n := writeRecords(&buf, strings.Join(lines, "\n"), 10, "none")
	require.Equal(t, 8, n)

	out := buf.String()
	require.Contains(t, out, "10. Commit:  h10\n")
	require.NotContains(t, out, "h11")
	require.NotContains(t, out, "3. Commit:")
}

func TestWriteBanner(t *testing.T) {
	var buf bytes.Buffer
	writeBanner(&buf, "Today's commits")
	rule := strings.Repeat("=", 60)
	require.Equal(t, rule+"\nToday's commits\n"+rule+"\n\n", buf.String())
}
