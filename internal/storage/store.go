package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/fractree/internal/tree"
)

// Store keeps generated trees on disk, one directory per run.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Variant   string             `json:"variant"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	OriginX   float64            `json:"origin_x"`
	OriginY   float64            `json:"origin_y"`
	Segments  int                `json:"segments"`
	Bounds    tree.Rect          `json:"bounds"`
	Metrics   map[string]float64 `json:"metrics"`
}

var header = []string{"x1", "y1", "x2", "y2", "color", "width", "depth", "angle", "length"}

// Save writes metadata.json and segments.csv for seq and returns the run ID.
func (s *Store) Save(v tree.Variant, seed int64, originX, originY float64, seq tree.Sequence) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("%s_%d", v, now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Variant:   v.String(),
		Timestamp: now,
		Seed:      seed,
		OriginX:   originX,
		OriginY:   originY,
		Segments:  len(seq),
		Bounds:    seq.Bounds(),
		Metrics:   metrics(seq),
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "segments.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write(header); err != nil {
		return "", err
	}
	for _, seg := range seq {
		row := []string{
			formatFloat(seg.X1), formatFloat(seg.Y1),
			formatFloat(seg.X2), formatFloat(seg.Y2),
			formatFloat(seg.Color), formatFloat(seg.Width),
			strconv.Itoa(seg.Depth),
			formatFloat(seg.Angle), formatFloat(seg.Length),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	return runID, w.Error()
}

func metrics(seq tree.Sequence) map[string]float64 {
	m := map[string]float64{
		"depth": float64(seq.MaxDepth() + 1),
	}
	for d, mean := range seq.MeanLengthByDepth() {
		m[fmt.Sprintf("mean_length_%d", d)] = mean
	}
	return m
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// List returns every readable run, oldest first. A missing base directory
// yields an empty list.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadSequence reads the segments of a saved run back in emission order.
func (s *Store) LoadSequence(runID string) (tree.Sequence, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "segments.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = len(header)

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return tree.Sequence{}, nil
	}

	seq := make(tree.Sequence, 0, len(records)-1)
	for i, record := range records[1:] {
		var vals [9]float64
		for j, field := range record {
			if j == 6 {
				continue
			}
			vals[j], err = strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i+1, err)
			}
		}
		depth, err := strconv.Atoi(record[6])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		seq = append(seq, tree.Segment{
			X1: vals[0], Y1: vals[1], X2: vals[2], Y2: vals[3],
			Color: vals[4], Width: vals[5],
			Depth: depth,
			Angle: vals[7], Length: vals[8],
		})
	}
	return seq, nil
}
