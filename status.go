package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/khicago/irr"
)

type statusCheck struct {
	Title   string
	Command string
	Empty   string
}

var statusChecks = []statusCheck{
	{Title: "Changed files", Command: "git diff --name-only", Empty: "no changed files"},
	{Title: "Staged files", Command: "git diff --cached --name-only", Empty: "no staged files"},
	{Title: "Recent commits (5)", Command: "git log --oneline -5", Empty: "no commits"},
	{Title: "Remotes", Command: "git remote -v", Empty: "no remotes"},
	{Title: "Current branch", Command: "git branch --show-current", Empty: "detached HEAD"},
}

// status 输出工作区状态概览, 目录不是 git 仓库时返回错误
func status(ctx context.Context, w io.Writer, runner commandRunner, dir string) error {
	if _, err := os.Stat(filepath.Join(dir, ".git")); err != nil {
		return irr.Wrap(err, "%s is not a git repository (no .git directory)", dir)
	}

	writeBanner(w, "Git status")
	for i, c := range statusChecks {
		fmt.Fprintf(w, "%d. %s:\n", i+1, c.Title)
		res := runner.Run(ctx, c.Command)
		switch {
		case !res.OK():
			fmt.Fprintf(w, "   check failed: %s\n", res.Reason())
		case res.Stdout == "":
			fmt.Fprintf(w, "   %s\n", c.Empty)
		default:
			for _, line := range strings.Split(res.Stdout, "\n") {
				fmt.Fprintf(w, "   %s\n", line)
			}
		}
		fmt.Fprintln(w)
	}
	return nil
}
