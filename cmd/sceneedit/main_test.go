package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/iw2rmb/sceneedit/config"
	"github.com/iw2rmb/sceneedit/editor"
	"github.com/iw2rmb/sceneedit/internal/state"
	"github.com/iw2rmb/sceneedit/project"
	"github.com/iw2rmb/sceneedit/session"
)

const sample = `title: Novel
units:
  - id: s1
    title: Opening
    content: '[b]one two[/b] three'
  - id: s2
    title: Ending
    content: four
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	ctx := state.ContextWithEnv(context.Background())
	err := newApp(&out).Run(ctx, append([]string{appName}, args...))
	return out.String(), err
}

func TestCount(t *testing.T) {
	text := writeFile(t, "scene.txt", "A [i]long[/i] day -- and night.")
	proj := writeFile(t, "novel.yaml", sample)

	out, err := runApp(t, "count", text, proj)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	want := []string{
		text + ": 5 words",
		proj + ": Opening (s1): 3 words",
		proj + ": Ending (s2): 1 words",
		"total: 9 words",
	}
	if got := strings.Split(strings.TrimSpace(out), "\n"); strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("output=%q, want %q", got, want)
	}
}

func TestCount_Errors(t *testing.T) {
	if _, err := runApp(t, "count"); err == nil {
		t.Fatalf("expected error without files")
	}
	if _, err := runApp(t, "count", filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatalf("expected error for a missing file")
	}
}

func TestDumpConfig(t *testing.T) {
	out, err := runApp(t, "dumpconfig", "--default")
	if err != nil {
		t.Fatalf("dumpconfig: %v", err)
	}
	if !strings.Contains(out, "version: 1") || !strings.Contains(out, "dialect: bracket") {
		t.Fatalf("default configuration missing keys:\n%s", out)
	}

	dest := filepath.Join(t.TempDir(), "actual.yaml")
	if _, err := runApp(t, "config", dest); err != nil {
		t.Fatalf("config alias: %v", err)
	}
	if _, err := config.LoadConfiguration(dest); err != nil {
		t.Fatalf("dumped configuration does not load: %v", err)
	}
}

func TestEdit_RequiresArguments(t *testing.T) {
	if _, err := runApp(t, "edit", "only-project.yaml"); err == nil {
		t.Fatalf("expected error with one argument")
	}
}

func TestModel_QuitsOnClose(t *testing.T) {
	proj, err := project.Parse([]byte(sample), nil, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	sess, err := session.New(proj, "s1", session.WithLogger(zaptest.NewLogger(t)))
	if err != nil {
		t.Fatalf("session: %v", err)
	}

	m := newModel(editor.New(sess, editor.Config{Title: "Opening"}), config.WindowConfig{Width: 40, Height: 10})
	if got := lipgloss.Height(m.View()); got != 10 {
		t.Fatalf("view height=%d, want 10", got)
	}

	next, cmd := m.Update(editor.CloseMsg{Unit: "s1", Apply: true})
	if cmd == nil {
		t.Fatalf("no quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("command did not quit")
	}
	nm := next.(model)
	if nm.closing == nil || !nm.closing.Apply {
		t.Fatalf("closing=%+v, want apply", nm.closing)
	}
	if nm.View() != "" {
		t.Fatalf("view not cleared after close")
	}
}

func TestModel_LogsEdits(t *testing.T) {
	proj, err := project.Parse([]byte(sample), nil, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	sess, err := session.New(proj, "s2", session.WithLogger(zaptest.NewLogger(t)))
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	core, logs := observer.New(zapcore.DebugLevel)
	ed := editor.New(sess, editor.Config{OnChange: logEdits(zap.New(core))})
	m := newModel(ed, config.WindowConfig{Width: 40, Height: 10})

	var tm tea.Model = m
	tm, _ = tm.Update(tea.KeyMsg{Type: tea.KeyRight})
	tm, _ = tm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(" x")})
	_ = tm

	entries := logs.FilterMessage("Scene edited").All()
	if len(entries) != 1 {
		t.Fatalf("entries=%d, want 1 (cursor moves are not logged)", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["scene"] != "s2" || fields["source"] != "local" || fields["words"] != int64(2) {
		t.Fatalf("fields=%v", fields)
	}
}

func TestThemeFrom(t *testing.T) {
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	th := themeFrom(&cfg.Editor.Colors)
	if got, want := th.For(session.ColorDark).Text.GetBackground(), lipgloss.Color("#333333"); got != want {
		t.Fatalf("dark background=%v, want %v", got, want)
	}
}
