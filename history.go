package main

import (
	"context"
	"io"
	"strconv"

	"github.com/kballard/go-shellquote"
	"github.com/sirupsen/logrus"
)

const (
	defaultHistoryPath = "app/(staff)/issues/page.tsx"

	recentCount      = 10
	fileHistoryLimit = 10
)

// Section is one titled block of the history report.
type Section struct {
	Title        string
	Command      string
	EmptyMessage string
	Limit        int
}

// gitLogCommand builds a shell-safe `git log` command line printing recordFormat.
func gitLogCommand(args ...string) string {
	argv := []string{"git", "log", "--pretty=format:" + recordFormat, "--date=format:" + recordDate}
	argv = append(argv, args...)
	return shellquote.Join(argv...)
}

func todaySection() Section {
	return Section{
		Title:        "Today's commits",
		Command:      gitLogCommand("--since=today", "--all"),
		EmptyMessage: "No commits found for today.",
	}
}

func recentSection() Section {
	return Section{
		Title:        "Recent 10 commits",
		Command:      gitLogCommand("-"+strconv.Itoa(recentCount), "--all"),
		EmptyMessage: "No commits found.",
	}
}

func fileSection(path string) Section {
	// 路径可能带有括号等 shell 特殊字符, shellquote 会原样保留
	return Section{
		Title:        "File history (" + path + ")",
		Command:      gitLogCommand("--", path),
		EmptyMessage: "No history found for this file.",
		Limit:        fileHistoryLimit,
	}
}

// runSection prints the banner and the records of one section.
// A failed query shows the empty message like an empty result does; the
// reason is only logged.
func runSection(ctx context.Context, w io.Writer, runner commandRunner, s Section) int {
	writeBanner(w, s.Title)

	res := runner.Run(ctx, s.Command)
	raw := res.Stdout
	if !res.OK() {
		logrus.WithFields(logrus.Fields{
			"section": s.Title,
			"code":    res.Code,
		}).Warnf("query failed: %s", res.Reason())
		if res.Failed() {
			raw = ""
		}
	}

	n := writeRecords(w, raw, s.Limit, s.EmptyMessage)
	logrus.WithField("section", s.Title).Debugf("%d records printed", n)
	return n
}

// history runs the sections in order. It never fails: query errors are
// reported through the empty messages and the log.
func history(ctx context.Context, w io.Writer, runner commandRunner, sections ...Section) {
	for _, s := range sections {
		runSection(ctx, w, runner, s)
	}
}
