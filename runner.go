package main

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"runtime"
	"strconv"
	"strings"

	"github.com/khicago/irr"
	"github.com/sirupsen/logrus"
)

// launchFailureCode is the status reported when the command could not be started at all.
const launchFailureCode = 1

// CommandResult is the outcome of one shell invocation.
// Err is set only when the command could not be launched; a command that ran
// and exited non-zero is still a result with its own Code.
type CommandResult struct {
	Stdout string
	Stderr string
	Code   int
	Err    error
}

// Failed reports whether the command never ran.
func (r CommandResult) Failed() bool {
	return r.Err != nil
}

// OK reports whether the command ran and exited 0.
func (r CommandResult) OK() bool {
	return r.Err == nil && r.Code == 0
}

// Reason describes why a result is not OK, or returns "" when it is.
func (r CommandResult) Reason() string {
	switch {
	case r.Err != nil:
		return r.Err.Error()
	case r.Code != 0 && r.Stderr != "":
		return r.Stderr
	case r.Code != 0:
		return "exit status " + strconv.Itoa(r.Code)
	}
	return ""
}

type commandRunner interface {
	Run(ctx context.Context, command string) CommandResult
}

// Runner 在固定的工作目录中通过系统 shell 执行命令
type Runner struct {
	Dir   string
	Shell []string
}

// NewRunner creates a Runner for dir using the platform command interpreter.
func NewRunner(dir string) *Runner {
	if msg := quotingWarning(runtime.GOOS); msg != "" {
		logrus.Warn(msg)
	}
	return &Runner{Dir: dir, Shell: defaultShell()}
}

// quotingWarning reports that command lines are quoted for POSIX shells,
// which cmd.exe does not understand.
func quotingWarning(goos string) string {
	if goos != "windows" {
		return ""
	}
	return "commands are quoted for POSIX shells; under cmd.exe paths with spaces or special characters may not reach git intact"
}

func defaultShell() []string {
	if runtime.GOOS == "windows" {
		return []string{"cmd", "/C"}
	}
	return []string{"sh", "-c"}
}

// Run 执行命令并返回输出, 启动失败不会返回 error, 而是记录在结果中
func (r *Runner) Run(ctx context.Context, command string) CommandResult {
	shell := r.Shell
	if len(shell) == 0 {
		shell = defaultShell()
	}
	args := append(append([]string{}, shell[1:]...), command)

	cmd := exec.CommandContext(ctx, shell[0], args...)
	cmd.Dir = r.Dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logrus.WithField("dir", r.Dir).Debugf("run: %s", command)
	err := cmd.Run()

	res := CommandResult{
		Stdout: decodeOutput(stdout.Bytes()),
		Stderr: decodeOutput(stderr.Bytes()),
	}
	if err == nil {
		return res
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.Code = exitErr.ExitCode()
		return res
	}
	return CommandResult{
		Code: launchFailureCode,
		Err:  irr.Wrap(err, "cannot launch %s", shell[0]),
	}
}

func decodeOutput(b []byte) string {
	return strings.TrimSpace(strings.ToValidUTF8(string(b), "�"))
}
