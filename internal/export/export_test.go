package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/san-kum/dsaviz/internal/algo"
	"github.com/san-kum/dsaviz/internal/input"
	"github.com/san-kum/dsaviz/internal/step"
)

func TestWriteJSON(t *testing.T) {
	seq := algo.Bubble([]int{3, 1, 2})
	var buf bytes.Buffer
	if err := WriteJSON(&buf, NewDocument("Sorting", "Bubble", seq)); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var doc struct {
		Algorithm string `json:"algorithm"`
		Steps     int    `json:"steps"`
		Sequence  []struct {
			View struct {
				Kind  string `json:"kind"`
				Array []int  `json:"array"`
			} `json:"view"`
			Annotations map[string]any `json:"annotations"`
		} `json:"sequence"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if doc.Algorithm != "Bubble" || doc.Steps != seq.Len() || len(doc.Sequence) != seq.Len() {
		t.Fatalf("unexpected document header: %+v", doc)
	}
	last := doc.Sequence[len(doc.Sequence)-1]
	if last.View.Kind != "array" {
		t.Errorf("expected kind array, got %s", last.View.Kind)
	}
	if last.Annotations["complete"] != true {
		t.Errorf("last step should be complete: %v", last.Annotations)
	}
}

func TestWriteJSONCarriesValidationError(t *testing.T) {
	seq := step.Fail(step.ArrayView(nil), "target", "Target is required")
	var buf bytes.Buffer
	if err := WriteJSON(&buf, NewDocument("Searching", "Linear", seq)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"error": "target: Target is required"`) {
		t.Errorf("missing error field in %s", buf.String())
	}
}

func TestWriteCSV(t *testing.T) {
	seq := algo.Bubble([]int{2, 1})
	var buf bytes.Buffer
	if err := WriteCSV(&buf, seq); err != nil {
		t.Fatal(err)
	}
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != seq.Len()+1 {
		t.Fatalf("expected %d records, got %d", seq.Len()+1, len(records))
	}
	if records[1][4] != "2 1" {
		t.Errorf("expected initial view '2 1', got %q", records[1][4])
	}
	last := records[len(records)-1]
	if last[2] != "true" || last[4] != "1 2" {
		t.Errorf("unexpected last row %v", last)
	}
}

func TestStepToSVG(t *testing.T) {
	s := step.Step{
		View:        step.ArrayView([]int{3, -1, 2}),
		Annotations: step.Annotations{step.Comparing: []int{0, 1}},
		Narration:   "Compare 3 & -1",
	}
	svg := StepToSVG(s, 300, 200)
	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatal("not an svg document")
	}
	if got := strings.Count(svg, "<rect"); got != 4 {
		t.Errorf("expected background plus 3 bars, got %d rects", got)
	}
	if !strings.Contains(svg, "#f1fa8c") {
		t.Error("compared bars should be highlighted")
	}
	if !strings.Contains(svg, "Compare 3 &amp; -1") {
		t.Error("narration should be escaped")
	}
}

func TestSeriesToSVG(t *testing.T) {
	if SeriesToSVG([]float64{1}, 100, 50, "#fff") != "" {
		t.Error("single point should produce nothing")
	}
	svg := SeriesToSVG([]float64{3, 2, 2, 0}, 100, 50, "#fff")
	if strings.Count(svg, " L") != 3 {
		t.Errorf("expected 3 line segments in %s", svg)
	}
}

func TestStoreSave(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)
	st.now = func() time.Time { return time.Unix(0, 42) }

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	seq := algo.Fibonacci(5)
	runID, err := st.Save("Dynamic Programming", "Fibonacci DP", input.Raw{N: "5"}, seq, map[string]float64{"steps": 7})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID != "fibonacci_dp_42" {
		t.Errorf("unexpected run id %q", runID)
	}

	for _, name := range []string{"metadata.json", "steps.json", "steps.csv"} {
		if _, err := os.Stat(filepath.Join(tmpDir, runID, name)); err != nil {
			t.Errorf("%s not written: %v", name, err)
		}
	}

	data, err := os.ReadFile(filepath.Join(tmpDir, runID, "metadata.json"))
	if err != nil {
		t.Fatal(err)
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		t.Fatal(err)
	}
	if meta.Algorithm != "Fibonacci DP" || meta.Input.N != "5" || meta.Steps != seq.Len() {
		t.Errorf("unexpected metadata %+v", meta)
	}
}

func TestStoreSaveNamed(t *testing.T) {
	st := New(t.TempDir())
	st.now = func() time.Time { return time.Unix(0, 7) }
	id, err := st.SaveNamed("Warm-up Sort", "Sorting", "Bubble", input.Raw{Input: "2,1"}, algo.Bubble([]int{2, 1}), nil)
	if err != nil {
		t.Fatal(err)
	}
	if id != "warm_up_sort_7" {
		t.Errorf("unexpected run id %q", id)
	}
}
