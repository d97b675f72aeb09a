// Package main provides a command-line tool that prints readable summaries of git history.
package main

import (
	"fmt"
	"os"

	"github.com/bagaking/easycmd"
	"github.com/khicago/got/util/typer"
	"github.com/urfave/cli/v2"
)

const (
	CMDNameReport       = "report"
	CMDNameToday        = "today"
	CMDNameRecent       = "recent"
	CMDNameFile         = "file"
	CMDNameStatus       = "status"
	CMDNameInstallAlias = "install_alias"

	EnvKeyDir  = "COMMITLOG_DIR"
	EnvKeyPath = "COMMITLOG_PATH"
)

func logFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{Name: "verbose", Usage: "Print debug logs to stderr", Aliases: []string{"v"}, Required: false},
		&cli.StringFlag{Name: "log-file", Usage: "Write logs to a rotating file instead of stderr", Required: false},
	}
}

func commonFlags(extra ...cli.Flag) []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{Name: "dir", Usage: fmt.Sprintf("Working directory of the repository (alternative to %s, default .)", EnvKeyDir), Aliases: []string{"C"}, Required: false},
	}
	flags = append(flags, logFlags()...)
	return append(flags, extra...)
}

func pathFlag() cli.Flag {
	return &cli.StringFlag{Name: "path", Usage: fmt.Sprintf("File whose history is shown (alternative to %s)", EnvKeyPath), Aliases: []string{"p"}, Required: false}
}

// prepare sets up logging and returns the runner and working directory for a command.
func prepare(c *cli.Context) (*Runner, string) {
	setupLogger(c.Bool("verbose"), c.String("log-file"))
	dir := typer.Or(c.String("dir"), os.Getenv(EnvKeyDir))
	dir = typer.Or(dir, ".")
	return NewRunner(dir), dir
}

func historyPath(c *cli.Context) string {
	path := typer.Or(c.String("path"), os.Getenv(EnvKeyPath))
	return typer.Or(path, defaultHistoryPath)
}

func runApp() error {
	app := easycmd.New("commitlog").Set.Custom(func(command *cli.Command) {
		command.Usage = `
Commitlog prints readable summaries of git history: today's commits,
the most recent commits, and the history of a single file.`
	}).End

	app.Child(CMDNameReport).Set.Usage("print today's commits, recent commits and the file history").End.Flags(
		commonFlags(pathFlag())...,
	).Action(func(c *cli.Context) error {
		runner, _ := prepare(c)
		history(c.Context, os.Stdout, runner, todaySection(), recentSection(), fileSection(historyPath(c)))
		return nil
	})

	app.Child(CMDNameToday).Set.Usage("print today's commits across all refs").End.Flags(
		commonFlags()...,
	).Action(func(c *cli.Context) error {
		runner, _ := prepare(c)
		history(c.Context, os.Stdout, runner, todaySection())
		return nil
	})

	app.Child(CMDNameRecent).Set.Usage("print the 10 most recent commits across all refs").End.Flags(
		commonFlags()...,
	).Action(func(c *cli.Context) error {
		runner, _ := prepare(c)
		history(c.Context, os.Stdout, runner, recentSection())
		return nil
	})

	app.Child(CMDNameFile).Set.Usage("print the history of one file").End.Flags(
		commonFlags(pathFlag())...,
	).Action(func(c *cli.Context) error {
		runner, _ := prepare(c)
		history(c.Context, os.Stdout, runner, fileSection(historyPath(c)))
		return nil
	})

	app.Child(CMDNameStatus).Set.Usage("print changed files, staged files, recent commits, remotes and branch").End.Flags(
		commonFlags()...,
	).Action(func(c *cli.Context) error {
		runner, dir := prepare(c)
		return status(c.Context, os.Stdout, runner, dir)
	})

	app.Child(CMDNameInstallAlias).Set.Usage("install the `git recap` alias").End.Flags(
		logFlags()...,
	).Action(func(c *cli.Context) error {
		// the global config does not depend on the working directory
		setupLogger(c.Bool("verbose"), c.String("log-file"))
		runner := NewRunner(".")
		return installAlias(c.Context, os.Stdin, os.Stdout, runner)
	})

	return app.RunBaseAsApp()
}

func main() {
	if err := runApp(); err != nil {
		fmt.Println("=== EXECUTION FAILED===\n", err)

		os.Exit(1)
	}
}
