package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"go3tag/internal/config"
	"go3tag/internal/shared"
)

func TestPrintWarnings(t *testing.T) {
	prev := color.Output
	defer func() { color.Output = prev }()

	capture := func(behavior string) string {
		var buf bytes.Buffer
		color.Output = &buf

		wc := shared.NewWarningCollector(behavior != "silent")
		wc.AddFilenameParseWarning("/music/broken.mp3", "expected 4 components")
		printWarnings(&config.Config{WarningBehavior: behavior}, wc)
		return buf.String()
	}

	// Parse warnings only ever land in the collector, so both non-silent
	// behaviors must surface them at the end of the run.
	for _, behavior := range []string{"summary", "immediate"} {
		out := capture(behavior)
		if !strings.Contains(out, "Warning Summary") || !strings.Contains(out, "broken.mp3") {
			t.Errorf("%s: expected parse warning in output, got %q", behavior, out)
		}
	}

	if out := capture("silent"); out != "" {
		t.Errorf("silent: expected no output, got %q", out)
	}
}
