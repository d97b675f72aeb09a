package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/khicago/irr"
	"github.com/sirupsen/logrus"
)

const aliasName = "recap"

var configOriginRe = regexp.MustCompile(`file:(\S+)`)

// installAlias installs `git recap` into the global git config.
func installAlias(ctx context.Context, in io.Reader, out io.Writer, runner commandRunner) error {
	// 检查配置文件可用性
	gitConfigPath, gitConfigContent, err := testGitConfig(ctx, runner)
	if err != nil {
		return err
	}

	reader := bufio.NewReader(in)

	fmt.Fprint(out, "Do you want to pin a file path for the history section? (y/n): ")
	response, _ := reader.ReadString('\n')
	response = strings.TrimSpace(response)

	var path string
	if response == "y" {
		fmt.Fprint(out, "Enter file path: ")
		path, _ = reader.ReadString('\n')
		path = strings.TrimSpace(path)
	}

	reportCmd := []string{"commitlog", CMDNameReport}
	if path != "" {
		reportCmd = append(reportCmd, "--path", path)
	}

	// 将 Git Alias 追加到全局 Git 配置文件
	aliasStr := makeAliasStr(shellquote.Join(reportCmd...))
	logrus.WithField("config", gitConfigPath).Debug("append alias")

	err = os.WriteFile(gitConfigPath, append(gitConfigContent, []byte(aliasStr)...), 0o644)
	if err != nil {
		return irr.Wrap(err, "error writing global git config file")
	}

	fmt.Fprintf(out, "success: Git Alias '%s' has been configured.\n", aliasName)
	return nil
}

func testGitConfig(ctx context.Context, runner commandRunner) (gitConfigPath string, gitConfigContent []byte, err error) {
	res := runner.Run(ctx, "git config --global --list --show-origin")
	if !res.OK() {
		return "", nil, irr.Error("cannot get global git config file path: %s", res.Reason())
	}

	// 从输出中提取全局 Git 配置文件路径
	if gitConfigPath = extractConfigPath(res.Stdout); gitConfigPath == "" {
		return "", nil, irr.Error("global git config file path not found")
	}

	// 读取现有的全局 Git 配置
	if gitConfigContent, err = os.ReadFile(gitConfigPath); err != nil {
		return "", nil, irr.Wrap(err, "error reading global git config file")
	}

	// 检查是否已经存在相同的 Git Alias
	if hasAlias(string(gitConfigContent)) {
		return "", nil, irr.Error("skipped: Git Alias '%s' is already configured", aliasName)
	}

	return gitConfigPath, gitConfigContent, nil
}

func extractConfigPath(origin string) string {
	match := configOriginRe.FindStringSubmatch(origin)
	if len(match) < 2 {
		return ""
	}
	return strings.TrimSpace(match[1])
}

func hasAlias(config string) bool {
	return strings.Contains(config, "[alias]") && strings.Contains(config, aliasName+" = ")
}

func makeAliasStr(reportCmd string) string {
	return fmt.Sprintf(`
[alias]
    %s = "!f() { \
        if [ -z \"$(which commitlog)\" ]; then \
            echo 'commitlog could not be found. Please install it by running:'; \
            echo 'go install github.com/bagaking/commitlog@latest'; \
            exit 1; \
        fi; \
        %s; \
    }; f"
`, aliasName, escapeConfigValue(reportCmd))
}

// escapeConfigValue escapes s for use inside a double-quoted gitconfig value.
// Backslashes go first so the quotes added next are not doubled.
func escapeConfigValue(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
