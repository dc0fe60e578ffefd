package filesystem

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"reportmap/internal/catalog"
)

func TestSource_Embedded(t *testing.T) {
	src := NewSource("")

	if src.Location() != EmbeddedLocation {
		t.Errorf("Location() = %q", src.Location())
	}

	g, err := src.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if g != catalog.MustLoad() {
		t.Error("expected the shared embedded graph")
	}
}

func TestSource_FileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maps", "structure.yaml")

	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault failed: %v", err)
	}

	g, err := NewSource(path).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(g.Nodes()) != 10 {
		t.Errorf("expected 10 nodes, got %d", len(g.Nodes()))
	}

	if err := WriteDefault(path); err == nil {
		t.Error("expected WriteDefault to refuse an existing file")
	}
}

func TestSource_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	doc := "nodes:\n  - id: a\nedges:\n  - id: a-b\n    from: a\n    to: b\n    relation: record\n"
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := NewSource(path).Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), `unknown node "b"`) {
		t.Errorf("error should name the dangling endpoint: %v", err)
	}
}

func TestSource_Missing(t *testing.T) {
	_, err := NewSource(filepath.Join(t.TempDir(), "nope.yaml")).Load()
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestNewSource_ExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	src := NewSource("~/maps/structure.yaml")
	if src.Path() != filepath.Join(home, "maps", "structure.yaml") {
		t.Errorf("Path() = %q", src.Path())
	}
}
