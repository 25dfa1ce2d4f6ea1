package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunCompressDecompressRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "input.txt")
	want := []byte("Hello World! Hello World! Hello World!")
	if err := os.WriteFile(src, want, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if code := Run([]string{"-k", "-b", "64", src}); code != ExitOK {
		t.Fatalf("compress exit = %d, want %d", code, ExitOK)
	}
	compressed := src + ".lz4"
	if _, err := os.Stat(compressed); err != nil {
		t.Fatalf("expected %q to exist: %v", compressed, err)
	}

	if code := Run([]string{"-d", "-k", "-f", compressed}); code != ExitOK {
		t.Fatalf("decompress exit = %d, want %d", code, ExitOK)
	}
	got, err := os.ReadFile(src)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != string(want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRunRejectsConflictingModes(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "input.txt")
	if err := os.WriteFile(src, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if code := Run([]string{"-z", "-d", src}); code != ExitArgumentFail {
		t.Fatalf("exit = %d, want %d", code, ExitArgumentFail)
	}
}

func TestRunBadBlockSizeFailsPerFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "input.txt")
	if err := os.WriteFile(src, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if code := Run([]string{"-k", "-b", "1", src}); code != ExitOperationFail {
		t.Fatalf("exit = %d, want %d", code, ExitOperationFail)
	}
}

func TestRunListReportsSizes(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "input.txt")
	if err := os.WriteFile(src, []byte("Hello World!"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if code := Run([]string{"-k", src}); code != ExitOK {
		t.Fatalf("compress exit = %d", code)
	}
	if code := Run([]string{"-l", src + ".lz4"}); code != ExitOK {
		t.Fatalf("list exit = %d, want %d", code, ExitOK)
	}
}
