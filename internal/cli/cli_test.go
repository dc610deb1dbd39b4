package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func TestRootCommand(t *testing.T) {
	c := New(io.Discard, log.InfoLevel)
	root := c.RootCommand()

	if root.Use != appName {
		t.Errorf("Use = %q, want %q", root.Use, appName)
	}

	want := map[string]bool{"layout": false, "check": false, "demo": false, "completion": false}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %s not registered", name)
		}
	}
}

func TestSetLogLevel(t *testing.T) {
	c := New(io.Discard, log.InfoLevel)
	c.SetLogLevel(log.DebugLevel)
	if c.Logger.GetLevel() != log.DebugLevel {
		t.Errorf("level = %v, want debug", c.Logger.GetLevel())
	}
}

func TestRunCheck(t *testing.T) {
	dir := t.TempDir()
	c := New(io.Discard, log.InfoLevel)

	valid := filepath.Join(dir, "valid.toml")
	writeFile(t, valid, `
[[panel]]
id = "a"
min-size = 20.0

[[panel]]
id = "b"
`)
	if err := c.runCheck(valid, "", 0); err != nil {
		t.Errorf("runCheck(valid) = %v, want nil", err)
	}

	// Minimums alone exceed the group extent.
	broken := filepath.Join(dir, "broken.toml")
	writeFile(t, broken, `
[[panel]]
id = "a"
min-size = 60.0

[[panel]]
id = "b"
min-size = 60.0
`)
	if err := c.runCheck(broken, "", 0); err == nil {
		t.Error("runCheck(broken) = nil, want error")
	}
}

func TestRunLayoutSavesSnapshot(t *testing.T) {
	dir := t.TempDir()
	c := New(io.Discard, log.InfoLevel)

	group := filepath.Join(dir, "group.toml")
	writeFile(t, group, `
[[panel]]
id = "a"
default-size = 30.0

[[panel]]
id = "b"
`)
	snapshot := filepath.Join(dir, "layout.json")

	if err := c.runLayout(group, "", snapshot, 0); err != nil {
		t.Fatalf("runLayout: %v", err)
	}
	if _, err := os.Stat(snapshot); err != nil {
		t.Errorf("snapshot not written: %v", err)
	}

	// Restoring the snapshot must not fail either.
	if err := c.runLayout(group, snapshot, "", 0); err != nil {
		t.Errorf("runLayout(load) = %v, want nil", err)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
