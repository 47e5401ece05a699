package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/nguyentantai21042004/transcribe/internal/transcriber"
)

func TestOutputPath(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"recording.m4a", "recording.txt"},
		{"/data/meeting.wav", "/data/meeting.txt"},
		{"dir/archive.tar.gz", "dir/archive.tar.txt"},
		{"dir/noext", "dir/noext.txt"},
		{"notes.txt", "notes.txt"},
		{"dir/.m4a", "dir/.m4a.txt"},
		{"v1.2/clip", "v1.2/clip.txt"},
	}

	for _, tt := range tests {
		if got := OutputPath(tt.input); got != tt.want {
			t.Errorf("OutputPath(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestRender(t *testing.T) {
	res := &transcriber.Result{
		Text: " 大家好。今天开会。 ",
		Segments: []transcriber.Segment{
			{Start: 0, End: 2500 * time.Millisecond, Text: " 大家好。"},
			{Start: 2500 * time.Millisecond, End: 61040 * time.Millisecond, Text: "今天开会。 "},
		},
	}

	want := "# 转录结果\n" +
		"文件: 录音.m4a\n" +
		"---\n\n" +
		"## 完整文本\n\n" +
		"大家好。今天开会。\n\n" +
		"## 分段详情\n\n" +
		"[0.0s - 2.5s] 大家好。\n" +
		"[2.5s - 61.0s] 今天开会。\n"

	if diff := cmp.Diff(want, Render("录音.m4a", res)); diff != "" {
		t.Errorf("Render() mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderKeepsSegmentOrder(t *testing.T) {
	res := &transcriber.Result{
		Segments: []transcriber.Segment{
			{Start: 5 * time.Second, End: 6 * time.Second, Text: "second"},
			{Start: 1 * time.Second, End: 2 * time.Second, Text: "first"},
			{Start: 3 * time.Second, End: 4 * time.Second, Text: "third"},
		},
	}

	out := Render("a.wav", res)
	details := out[strings.Index(out, "## 分段详情\n\n")+len("## 分段详情\n\n"):]
	lines := strings.Split(strings.TrimSuffix(details, "\n"), "\n")

	want := []string{
		"[5.0s - 6.0s] second",
		"[1.0s - 2.0s] first",
		"[3.0s - 4.0s] third",
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("segment lines mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderNoSegments(t *testing.T) {
	out := Render("silence.wav", &transcriber.Result{})
	if !strings.HasSuffix(out, "## 完整文本\n\n\n\n## 分段详情\n\n") {
		t.Errorf("Render() of empty result = %q", out)
	}
}

func TestWriteOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	if err := Write(path, "first"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := Write(path, "第二次"); err != nil {
		t.Fatalf("Write() second call error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "第二次" {
		t.Errorf("content = %q, want %q", data, "第二次")
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, temp file left behind", len(entries))
	}
}

func TestWriteMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.txt")
	if err := Write(path, "x"); err == nil {
		t.Error("Write() should fail when the directory does not exist")
	}
}
