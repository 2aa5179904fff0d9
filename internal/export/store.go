package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/san-kum/dsaviz/internal/input"
	"github.com/san-kum/dsaviz/internal/step"
)

// Store writes exported runs under a base directory, one directory per run.
// Runs are written for external tools; nothing reads them back.
type Store struct {
	baseDir string
	now     func() time.Time
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, now: time.Now}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Category  string             `json:"category"`
	Algorithm string             `json:"algorithm"`
	Timestamp time.Time          `json:"timestamp"`
	Input     input.Raw          `json:"input"`
	Steps     int                `json:"steps"`
	Invalid   bool               `json:"invalid"`
	Metrics   map[string]float64 `json:"metrics,omitempty"`
}

var unsafeID = regexp.MustCompile(`[^a-z0-9]+`)

func runID(algorithm string, t time.Time) string {
	slug := strings.Trim(unsafeID.ReplaceAllString(strings.ToLower(algorithm), "_"), "_")
	return fmt.Sprintf("%s_%d", slug, t.UnixNano())
}

// Save writes metadata.json, steps.json and steps.csv and returns the run ID.
func (s *Store) Save(category, algorithm string, raw input.Raw, seq step.Sequence, metrics map[string]float64) (string, error) {
	return s.SaveNamed(algorithm, category, algorithm, raw, seq, metrics)
}

// SaveNamed is Save with the run ID derived from name instead of the
// algorithm.
func (s *Store) SaveNamed(name, category, algorithm string, raw input.Raw, seq step.Sequence, metrics map[string]float64) (string, error) {
	now := s.now()
	id := runID(name, now)
	runDir := filepath.Join(s.baseDir, id)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        id,
		Category:  category,
		Algorithm: algorithm,
		Timestamp: now,
		Input:     raw,
		Steps:     seq.Len(),
		Invalid:   seq.Invalid(),
		Metrics:   metrics,
	}
	if err := writeFile(filepath.Join(runDir, "metadata.json"), func(f *os.File) error {
		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		return enc.Encode(meta)
	}); err != nil {
		return "", err
	}

	if err := writeFile(filepath.Join(runDir, "steps.json"), func(f *os.File) error {
		return WriteJSON(f, NewDocument(category, algorithm, seq))
	}); err != nil {
		return "", err
	}

	if err := writeFile(filepath.Join(runDir, "steps.csv"), func(f *os.File) error {
		return WriteCSV(f, seq)
	}); err != nil {
		return "", err
	}

	return id, nil
}

func writeFile(path string, fn func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return fmt.Errorf("export: write %s: %w", filepath.Base(path), err)
	}
	return f.Close()
}
