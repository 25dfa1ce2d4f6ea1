package cli

import "testing"

func TestOutputPathCompress(t *testing.T) {
	path, toStdout, err := outputPath(true, "report.txt", ".lz4", false)
	if err != nil {
		t.Fatalf("outputPath: %v", err)
	}
	if toStdout {
		t.Fatal("expected a file destination, got stdout")
	}
	if path != "report.txt.lz4" {
		t.Fatalf("path = %q, want %q", path, "report.txt.lz4")
	}
}

func TestOutputPathDecompressStripsSuffix(t *testing.T) {
	path, _, err := outputPath(false, "report.txt.lz4", ".lz4", false)
	if err != nil {
		t.Fatalf("outputPath: %v", err)
	}
	if path != "report.txt" {
		t.Fatalf("path = %q, want %q", path, "report.txt")
	}
}

func TestOutputPathDecompressMissingSuffixFails(t *testing.T) {
	_, _, err := outputPath(false, "report.txt", ".lz4", false)
	if err == nil {
		t.Fatal("expected an error for a file missing the suffix")
	}
}

func TestOutputPathStdout(t *testing.T) {
	path, toStdout, err := outputPath(true, "report.txt", ".lz4", true)
	if err != nil {
		t.Fatalf("outputPath: %v", err)
	}
	if !toStdout || path != "" {
		t.Fatalf("got (%q, %v), want (\"\", true)", path, toStdout)
	}
}
