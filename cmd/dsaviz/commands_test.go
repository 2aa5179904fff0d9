package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/san-kum/dsaviz/internal/algo"
	"github.com/san-kum/dsaviz/internal/config"
	"github.com/san-kum/dsaviz/internal/input"
	"github.com/san-kum/dsaviz/internal/step"
	"github.com/spf13/cobra"
)

func testSetup(t *testing.T) {
	t.Helper()
	cfg = config.DefaultConfig()
	cfg.IntervalMs = 5
	log = slog.New(slog.NewTextHandler(io.Discard, nil))
	category, raw, example = "", input.Raw{}, false
}

func TestPlayHeadlessPrintsEveryStep(t *testing.T) {
	testSetup(t)
	seq := algo.Bubble([]int{3, 1, 2})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var buf bytes.Buffer
	if err := playHeadless(ctx, &buf, seq); err != nil {
		t.Fatalf("playHeadless: %v", err)
	}
	out := buf.String()
	for i, n := range seq.Narrations() {
		if !strings.Contains(out, n) {
			t.Errorf("step %d narration %q missing", i, n)
		}
	}
	if got := strings.Count(out, "/"+strconv.Itoa(seq.Len())+"] "); got != seq.Len() {
		t.Errorf("printed %d steps, want %d", got, seq.Len())
	}
}

func TestPlayHeadlessSingleStep(t *testing.T) {
	testSetup(t)
	seq := step.Fail(step.ArrayView(nil), "input", "empty")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	var buf bytes.Buffer
	if err := playHeadless(ctx, &buf, seq); err != nil {
		t.Fatalf("playHeadless: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "[1/1]") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestStepOf(t *testing.T) {
	seq := algo.Bubble([]int{2, 1})
	last, err := stepOf(seq, -1)
	if err != nil || !last.Complete() {
		t.Errorf("stepOf(-1) = %v, %v; want the final step", last.Narration, err)
	}
	if _, err := stepOf(seq, seq.Len()); err == nil {
		t.Error("expected out of range error")
	}
}

func TestInputForFallsBackToExample(t *testing.T) {
	testSetup(t)
	e, err := resolve("Fibonacci DP")
	if err != nil {
		t.Fatal(err)
	}
	ex, _ := config.GetExample("Fibonacci DP")
	if got := inputFor(e); got != ex {
		t.Errorf("inputFor = %+v, want example %+v", got, ex)
	}

	raw = input.Raw{N: "5"}
	if got := inputFor(e); got.N != "5" {
		t.Errorf("explicit flag overridden: %+v", got)
	}
}

func TestResolveUnknown(t *testing.T) {
	testSetup(t)
	if _, err := resolve("Nope"); err == nil {
		t.Error("expected unknown algorithm error")
	}
}

func TestInteractiveCommandsSilenceTerminalLogging(t *testing.T) {
	root := &cobra.Command{Use: "dsaviz"}
	play := &cobra.Command{Use: "play"}
	run := &cobra.Command{Use: "run"}
	root.AddCommand(play, run)

	headless = false
	t.Cleanup(func() { headless = false })
	if !interactive(root) || !interactive(play) {
		t.Error("the TUI commands should not log to the terminal")
	}
	if interactive(run) {
		t.Error("run prints to the terminal and keeps its log output")
	}
	headless = true
	if interactive(play) {
		t.Error("headless play keeps its log output")
	}
}
