package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/san-kum/dsaviz/internal/step"
)

type Document struct {
	Category  string      `json:"category"`
	Algorithm string      `json:"algorithm"`
	Steps     int         `json:"steps"`
	Invalid   bool        `json:"invalid"`
	Error     string      `json:"error,omitempty"`
	Sequence  []step.Step `json:"sequence"`
}

func NewDocument(category, algorithm string, seq step.Sequence) Document {
	doc := Document{
		Category:  category,
		Algorithm: algorithm,
		Steps:     seq.Len(),
		Invalid:   seq.Invalid(),
		Sequence:  seq.Steps(),
	}
	if err := seq.Err(); err != nil {
		doc.Error = err.Error()
	}
	return doc
}

func WriteJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

var csvHeader = []string{"index", "kind", "complete", "narration", "view", "annotations"}

// WriteCSV writes one row per step. Array and character views are written
// space separated; every other shape is embedded as JSON.
func WriteCSV(w io.Writer, seq step.Sequence) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for i, s := range seq.Steps() {
		view, err := viewCell(s.View)
		if err != nil {
			return fmt.Errorf("export: step %d: %w", i, err)
		}
		ann, err := json.Marshal(s.Annotations)
		if err != nil {
			return fmt.Errorf("export: step %d: %w", i, err)
		}
		row := []string{
			strconv.Itoa(i),
			s.View.Kind.String(),
			strconv.FormatBool(s.Complete()),
			s.Narration,
			view,
			string(ann),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func viewCell(v step.View) (string, error) {
	switch v.Kind {
	case step.KindArray:
		parts := make([]string, len(v.Array))
		for i, x := range v.Array {
			parts[i] = strconv.Itoa(x)
		}
		return strings.Join(parts, " "), nil
	case step.KindChars:
		return strings.Join(v.Chars, " "), nil
	}
	data, err := json.Marshal(v)
	return string(data), err
}
