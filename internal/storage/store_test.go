package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/fractree/internal/tree"
)

func TestStoreSaveLoad(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	seq := tree.NewSeededGenerator(42).Generate(tree.Colored, 300, 500)

	runID, err := st.Save(tree.Colored, 42, 300, 500, seq)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if runID == "" {
		t.Error("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if meta.Variant != "colored" {
		t.Errorf("expected variant 'colored', got '%s'", meta.Variant)
	}

	if meta.Seed != 42 {
		t.Errorf("expected seed 42, got %d", meta.Seed)
	}

	if meta.Segments != len(seq) {
		t.Errorf("expected %d segments, got %d", len(seq), meta.Segments)
	}

	if meta.Metrics["depth"] != 11 {
		t.Errorf("expected depth 11, got %f", meta.Metrics["depth"])
	}

	if meta.Bounds != seq.Bounds() {
		t.Errorf("bounds mismatch: %+v vs %+v", meta.Bounds, seq.Bounds())
	}

	loaded, err := st.LoadSequence(runID)
	if err != nil {
		t.Fatalf("load sequence failed: %v", err)
	}

	if len(loaded) != len(seq) {
		t.Fatalf("expected %d segments, got %d", len(seq), len(loaded))
	}

	for i := range seq {
		if loaded[i] != seq[i] {
			t.Fatalf("segment %d differs after reload: %+v vs %+v", i, loaded[i], seq[i])
		}
	}
}

func TestStoreList(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	seq := tree.NewGenerator(nil).Generate(tree.Basic, 300, 500)
	if _, err := st.Save(tree.Basic, 1, 300, 500, seq); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, err := st.Save(tree.Basic, 2, 300, 500, seq); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}

	if runs[1].Timestamp.Before(runs[0].Timestamp) {
		t.Error("runs should be listed oldest first")
	}
}

func TestStoreListMissingDir(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "nope"))
	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}
}

func TestStoreFileStructure(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	seq := tree.NewGenerator(nil).Generate(tree.Basic, 300, 500)
	runID, err := st.Save(tree.Basic, 42, 300, 500, seq)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runDir := filepath.Join(tmpDir, runID)
	metaPath := filepath.Join(runDir, "metadata.json")
	csvPath := filepath.Join(runDir, "segments.csv")

	if _, err := os.Stat(metaPath); os.IsNotExist(err) {
		t.Error("metadata.json not created")
	}

	if _, err := os.Stat(csvPath); os.IsNotExist(err) {
		t.Error("segments.csv not created")
	}
}
