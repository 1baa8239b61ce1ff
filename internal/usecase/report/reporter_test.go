package report

import (
	"strings"
	"testing"

	"CueFix/internal/domain/model"
)

func TestReporter_Searching(t *testing.T) {
	var buf strings.Builder
	NewReporter(&buf).Searching("/music")

	want := "Searching for .cue files in: /music\n"
	if buf.String() != want {
		t.Errorf("出力が不正: got %q, want %q", buf.String(), want)
	}
}

func TestReporter_Decoded(t *testing.T) {
	var buf strings.Builder
	reporter := NewReporter(&buf)

	reporter.Decoded("/music/a.cue", model.EncodingUTF8)
	reporter.Decoded("/music/b.cue", model.EncodingWindows1252)

	expectedLines := []string{
		"File /music/a.cue was decoded using UTF-8",
		"File /music/b.cue was decoded using Windows-1252",
	}
	for _, line := range expectedLines {
		if !strings.Contains(buf.String(), line) {
			t.Errorf("出力に期待される行が含まれていない: %v", line)
		}
	}
}

func TestReporter_Result(t *testing.T) {
	tests := []struct {
		name   string
		result model.Result
		want   string
	}{
		{
			name: "FLACへ置換",
			result: model.Result{
				Path:         "/music/track.cue",
				Format:       model.FormatFLAC,
				Replacements: 2,
				Written:      true,
			},
			want: "Replaced '.wav' with '.flac' in file: /music/track.cue (2 occurrences)\n",
		},
		{
			name: "APEへ置換",
			result: model.Result{
				Path:         "/music/track.cue",
				Format:       model.FormatAPE,
				Replacements: 1,
				Written:      true,
			},
			want: "Replaced '.wav' with '.ape' in file: /music/track.cue (1 occurrences)\n",
		},
		{
			name: "変更なし",
			result: model.Result{
				Path:   "/music/track.cue",
				Format: model.FormatFLAC,
			},
			want: "No '.wav' replacement needed in file: /music/track.cue\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf strings.Builder
			NewReporter(&buf).Result(tt.result)
			if buf.String() != tt.want {
				t.Errorf("出力が不正: got %q, want %q", buf.String(), tt.want)
			}
		})
	}
}
