package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/brdgme/markup/pkg/errors"
)

// testEnv isolates config and cache directories and captures status output.
func testEnv(t *testing.T) *bytes.Buffer {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	for _, k := range []string{"MARKUP_FORMAT", "MARKUP_PLAYERS", "MARKUP_CACHE", "MARKUP_CACHE_DIR"} {
		t.Setenv(k, "")
	}

	var status bytes.Buffer
	old := statusOut
	statusOut = &status
	t.Cleanup(func() { statusOut = old })
	return &status
}

// runCLI executes the root command with args and stdin, returning stdout.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRenderCommand(t *testing.T) {
	testEnv(t)

	out, err := runCLI(t, "{{player 1}} to move", "render", "--players", "mick, steve", "--format", "plain")
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if want := "• steve to move"; out != want {
		t.Errorf("render = %q, want %q", out, want)
	}
}

func TestRenderCommand_File(t *testing.T) {
	status := testEnv(t)
	dir := t.TempDir()
	in := filepath.Join(dir, "board.tmpl")
	outPath := filepath.Join(dir, "board.html")
	if err := os.WriteFile(in, []byte("{{b}}hi{{/b}}"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runCLI(t, "", "render", in, "-f", "html", "-o", outPath)
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if out != "" {
		t.Errorf("stdout = %q, want nothing when -o is set", out)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<b>hi</b>") {
		t.Errorf("output file = %q", data)
	}
	if !strings.Contains(status.String(), outPath) {
		t.Errorf("status = %q, want written path", status.String())
	}
}

func TestRenderCommand_ConfigDefaults(t *testing.T) {
	testEnv(t)
	dir := os.Getenv("XDG_CONFIG_HOME")
	if err := os.MkdirAll(filepath.Join(dir, "markup"), 0o755); err != nil {
		t.Fatal(err)
	}
	cfg := "format = \"plain\"\nplayers = [\"ann\"]\n"
	if err := os.WriteFile(filepath.Join(dir, "markup", "config.toml"), []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runCLI(t, "{{player 0}}", "render")
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if out != "• ann" {
		t.Errorf("render = %q, want %q", out, "• ann")
	}
}

func TestRenderCommand_SyntaxError(t *testing.T) {
	testEnv(t)

	_, err := runCLI(t, "Hello {{b}}world", "render", "--no-cache")
	if !errors.IsSyntax(err) {
		t.Fatalf("render error = %v, want syntax error", err)
	}
	if off, ok := errors.Offset(err); !ok || off != 6 {
		t.Errorf("Offset() = %d, %v, want 6, true", off, ok)
	}
}

func TestRenderCommand_MissingFile(t *testing.T) {
	testEnv(t)

	_, err := runCLI(t, "", "render", filepath.Join(t.TempDir(), "nope.tmpl"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("render error = %v, want %s", err, errors.ErrCodeFileNotFound)
	}
}

func TestParseCommand(t *testing.T) {
	testEnv(t)

	out, err := runCLI(t, "{{align right 4}}x{{/align}}", "parse")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if !strings.Contains(out, `"type": "align"`) {
		t.Errorf("parse json = %s", out)
	}

	out, err = runCLI(t, "{{align right 4}}x{{/align}}", "parse", "--transformed")
	if err != nil {
		t.Fatalf("parse --transformed error: %v", err)
	}
	if strings.Contains(out, `"align"`) || !strings.Contains(out, `"text": "   "`) {
		t.Errorf("parse --transformed json = %s", out)
	}

	out, err = runCLI(t, "{{b}}x{{/b}}", "parse", "--format", "dot")
	if err != nil {
		t.Fatalf("parse dot error: %v", err)
	}
	if !strings.HasPrefix(out, "digraph G {") {
		t.Errorf("parse dot = %q", out)
	}

	if _, err := runCLI(t, "x", "parse", "--format", "yaml"); err == nil {
		t.Error("parse --format yaml should fail")
	}
}

func TestCacheCommands(t *testing.T) {
	status := testEnv(t)

	out, err := runCLI(t, "", "cache", "path")
	if err != nil {
		t.Fatalf("cache path error: %v", err)
	}
	want := filepath.Join(os.Getenv("XDG_CACHE_HOME"), appName)
	if strings.TrimSpace(out) != want {
		t.Errorf("cache path = %q, want %q", out, want)
	}

	if _, err := runCLI(t, "", "cache", "clear"); err != nil {
		t.Fatalf("cache clear error: %v", err)
	}
	if !strings.Contains(status.String(), "Cache is empty") {
		t.Errorf("status = %q, want empty cache notice", status.String())
	}

	if _, err := runCLI(t, "x", "render"); err != nil {
		t.Fatalf("render error: %v", err)
	}
	status.Reset()
	if _, err := runCLI(t, "", "cache", "stats"); err != nil {
		t.Fatalf("cache stats error: %v", err)
	}
	if !strings.Contains(status.String(), "Entries") {
		t.Errorf("cache stats = %q", status.String())
	}

	status.Reset()
	if _, err := runCLI(t, "", "cache", "clear"); err != nil {
		t.Fatalf("cache clear error: %v", err)
	}
	if !strings.Contains(status.String(), "Cleared 1 cached entries") {
		t.Errorf("cache clear = %q", status.String())
	}
}

func TestConfigShow(t *testing.T) {
	testEnv(t)
	t.Setenv("MARKUP_FORMAT", "html")

	out, err := runCLI(t, "", "config", "show")
	if err != nil {
		t.Fatalf("config show error: %v", err)
	}
	if !strings.Contains(out, `format = "html"`) {
		t.Errorf("config show = %s", out)
	}
}

func TestInvalidConfig(t *testing.T) {
	testEnv(t)
	t.Setenv("MARKUP_CACHE", "memcached")

	_, err := runCLI(t, "x", "render")
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("render error = %v, want %s", err, errors.ErrCodeInvalidConfig)
	}
}

func TestCompletionCommand(t *testing.T) {
	tests := []struct {
		shell string
		want  string
	}{
		{"bash", "__start_markup"},
		{"zsh", "#compdef markup"},
		{"fish", "complete -c markup"},
		{"powershell", "Register-ArgumentCompleter"},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			testEnv(t)
			out, err := runCLI(t, "", "completion", tt.shell)
			if err != nil {
				t.Fatalf("completion %s error: %v", tt.shell, err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("completion %s output missing %q", tt.shell, tt.want)
			}
		})
	}
}

func TestCompletionCommand_UnknownShell(t *testing.T) {
	testEnv(t)
	if _, err := runCLI(t, "", "completion", "tcsh"); err == nil {
		t.Error("completion tcsh error = nil, want invalid argument")
	}
}
