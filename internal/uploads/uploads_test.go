package uploads

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveAndRemove(t *testing.T) {
	spool, err := NewLocalSpool(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create spool: %v", err)
	}

	path, err := spool.Save("reglamento.pdf", strings.NewReader("%PDF-1.4 contenido"))
	if err != nil {
		t.Fatalf("Failed to save upload: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read spooled file: %v", err)
	}
	if string(data) != "%PDF-1.4 contenido" {
		t.Errorf("spooled content = %q", data)
	}

	if err := spool.Remove(path); err != nil {
		t.Fatalf("Failed to remove spooled file: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("spooled file still exists after Remove")
	}
	if err := spool.Remove(path); err != nil {
		t.Errorf("removing a missing file should not fail: %v", err)
	}
}

func TestSaveRejectsNonPDF(t *testing.T) {
	spool, err := NewLocalSpool(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create spool: %v", err)
	}

	if _, err := spool.Save("notas.txt", strings.NewReader("hola")); !errors.Is(err, ErrNotPDF) {
		t.Errorf("expected ErrNotPDF, got %v", err)
	}
}

func TestSaveAcceptsUppercaseExtension(t *testing.T) {
	spool, err := NewLocalSpool(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create spool: %v", err)
	}

	if _, err := spool.Save("REGLAMENTO.PDF", strings.NewReader("x")); err != nil {
		t.Errorf("uppercase extension rejected: %v", err)
	}
}

func TestSaveStripsDirectoryComponents(t *testing.T) {
	dir := t.TempDir()
	spool, err := NewLocalSpool(dir)
	if err != nil {
		t.Fatalf("Failed to create spool: %v", err)
	}

	path, err := spool.Save("../../escape.pdf", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("Failed to save upload: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("spooled file landed outside the spool directory: %s", path)
	}
}

func TestSaveGeneratesUniquePaths(t *testing.T) {
	spool, err := NewLocalSpool(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create spool: %v", err)
	}

	first, err := spool.Save("mismo.pdf", strings.NewReader("a"))
	if err != nil {
		t.Fatalf("Failed to save first upload: %v", err)
	}
	second, err := spool.Save("mismo.pdf", strings.NewReader("b"))
	if err != nil {
		t.Fatalf("Failed to save second upload: %v", err)
	}
	if first == second {
		t.Error("two uploads with the same name share a path")
	}
}

func TestIsPDF(t *testing.T) {
	cases := map[string]bool{
		"doc.pdf":      true,
		"DOC.PDF":      true,
		"doc.pdf.txt":  false,
		"doc":          false,
		"archivo.docx": false,
	}
	for name, want := range cases {
		if got := IsPDF(name); got != want {
			t.Errorf("IsPDF(%q) = %v, want %v", name, got, want)
		}
	}
}
