package output_test

import (
	"bytes"
	"testing"
	"time"

	"taskdash/internal/output"
	"taskdash/internal/service"
)

func TestFormatTask(t *testing.T) {
	var buf bytes.Buffer
	output.FormatTask(&buf, 1, service.Task{ID: "a", Title: "Buy milk"})
	output.FormatTask(&buf, 2, service.Task{ID: "b", Title: "Ship it", Completed: true})

	want := "   1  [ ] Buy milk\n   2  [x] Ship it\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestFormatTaskNormalizesTitle(t *testing.T) {
	var buf bytes.Buffer
	output.FormatTask(&buf, 1, service.Task{ID: "a", Title: "line\none"})
	output.FormatTask(&buf, 2, service.Task{ID: "b", Title: "   "})

	want := "   1  [ ] line one\n   2  [ ] (untitled)\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestFormatProgress(t *testing.T) {
	cases := []struct {
		percent float64
		want    string
	}{
		{0, "[--------------------] 0%\n"},
		{50, "[##########----------] 50%\n"},
		{100, "[####################] 100%\n"},
	}
	for _, tc := range cases {
		var buf bytes.Buffer
		output.FormatProgress(&buf, tc.percent)
		if buf.String() != tc.want {
			t.Errorf("FormatProgress(%v) = %q, want %q", tc.percent, buf.String(), tc.want)
		}
	}
}

func TestFormatMonth(t *testing.T) {
	var buf bytes.Buffer
	output.FormatMonth(&buf, 2026, time.February, 0)

	want := "February 2026\n" +
		"Su Mo Tu We Th Fr Sa\n" +
		" 1  2  3  4  5  6  7\n" +
		" 8  9 10 11 12 13 14\n" +
		"15 16 17 18 19 20 21\n" +
		"22 23 24 25 26 27 28\n"
	if buf.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestFormatMonthMarksToday(t *testing.T) {
	var buf bytes.Buffer
	output.FormatMonth(&buf, 2026, time.February, 14)

	want := "February 2026\n" +
		"Su Mo Tu We Th Fr Sa\n" +
		" 1  2  3  4  5  6  7\n" +
		" 8  9 10 11 12 13 14*\n" +
		"15 16 17 18 19 20 21\n" +
		"22 23 24 25 26 27 28\n"
	if buf.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}
