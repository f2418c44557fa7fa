package main

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alnah/go-mdsite/internal/config"
)

func TestRunInit(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "mdsite.yaml")
	env, stdout, _ := testEnv(nil)

	if err := runInit([]string{"-o", path}, env); err != nil {
		t.Fatalf("runInit() error = %v", err)
	}
	if !strings.Contains(stdout.String(), "Created "+path) {
		t.Errorf("stdout = %q", stdout)
	}
	if got := readFile(t, path); !strings.HasPrefix(got, "# mdsite") {
		t.Errorf("missing header comment:\n%s", got)
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("written config does not load: %v", err)
	}
	if diff := cmp.Diff(config.DefaultConfig(), cfg); diff != "" {
		t.Errorf("written config mismatch (-want +got):\n%s", diff)
	}
}

func TestRunInit_Existing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"mdsite.yaml": "keep: me\n"})
	path := filepath.Join(dir, "mdsite.yaml")
	env, _, _ := testEnv(nil)

	err := runInit([]string{"-o", path}, env)
	if !errors.Is(err, ErrConfigExists) {
		t.Fatalf("error = %v, want ErrConfigExists", err)
	}
	if got := readFile(t, path); got != "keep: me\n" {
		t.Errorf("file overwritten: %q", got)
	}

	if err := runInit([]string{"-o", path, "--force"}, env); err != nil {
		t.Fatalf("runInit(--force) error = %v", err)
	}
	if got := readFile(t, path); strings.Contains(got, "keep") {
		t.Errorf("file not overwritten: %q", got)
	}
}

func TestRunInit_MissingDirectory(t *testing.T) {
	t.Parallel()

	env, _, _ := testEnv(nil)
	err := runInit([]string{"-o", filepath.Join(t.TempDir(), "no", "such", "mdsite.yaml")}, env)
	if !errors.Is(err, ErrWriteOutput) {
		t.Errorf("error = %v, want ErrWriteOutput", err)
	}
}
