package config

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReport_Close(t *testing.T) {
	dir := t.TempDir()
	conf := ReporterConfig{Destination: filepath.Join(dir, "report.zip")}

	r, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	stored := filepath.Join(dir, "input.css")
	if err := os.WriteFile(stored, []byte("margin-top: 1px"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	r.Store("input.css", stored)
	r.Store("absent.log", filepath.Join(dir, "absent.log"))
	r.StoreData("output.hex", []byte("margin-top: 1px"))

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	arc, err := zip.OpenReader(conf.Destination)
	if err != nil {
		t.Fatalf("unable to open report: %v", err)
	}
	defer arc.Close()

	got := make(map[string]string)
	for _, f := range arc.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("unable to open %s: %v", f.Name, err)
		}
		data, _ := io.ReadAll(rc)
		rc.Close()
		got[f.Name] = string(data)
	}

	if !strings.Contains(got["MANIFEST"], r.ID()) {
		t.Errorf("MANIFEST does not mention report id %s:\n%s", r.ID(), got["MANIFEST"])
	}
	if got["input.css"] != "margin-top: 1px" || got["output.hex"] != "margin-top: 1px" {
		t.Errorf("unexpected archive content: %v", got)
	}
	if _, ok := got["absent.log"]; ok {
		t.Error("absent file must be skipped")
	}
}

func TestReport_StoreOverwritePanics(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	r.StoreData("a", []byte("1"))
	defer func() {
		if recover() == nil {
			t.Error("Expected panic on overwrite")
		}
	}()
	r.StoreData("a", []byte("2"))
}

func TestReport_Nil(t *testing.T) {
	var r *Report
	r.Store("x", "y")
	r.StoreData("x", nil)
	if r.Name() != "" || r.ID() != "" {
		t.Error("Name() on nil report must be empty")
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil report should not error, got: %v", err)
	}
}
