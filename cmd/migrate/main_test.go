package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewApp_Commands(t *testing.T) {
	var names []string
	for _, c := range newApp().Commands {
		names = append(names, c.Name)
	}

	want := "up,down,status,create"
	if got := strings.Join(names, ","); got != want {
		t.Fatalf("expected commands %q, got %q", want, got)
	}
}

func TestCreate_WritesGooseFile(t *testing.T) {
	dir := t.TempDir()

	err := newApp().Run(context.Background(), []string{"migrate", "--dir", dir, "create", "add_series"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	matches, err := filepath.Glob(filepath.Join(dir, "*_add_series.sql"))
	if err != nil || len(matches) != 1 {
		t.Fatalf("expected one migration file, got %v (err %v)", matches, err)
	}
	b, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration: %v", err)
	}
	if !strings.Contains(string(b), "-- +goose Up") {
		t.Fatalf("generated migration lacks goose directive:\n%s", b)
	}
}

func TestCreate_RequiresName(t *testing.T) {
	err := newApp().Run(context.Background(), []string{"migrate", "--dir", t.TempDir(), "create"})
	if err == nil {
		t.Fatal("expected error without a name")
	}
}
