package audio

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWriteWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")
	if err := writeWAV(path, []int16{1, -1, 256}, SampleRate); err != nil {
		t.Fatalf("writeWAV() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 44+6 {
		t.Fatalf("wav is %d bytes, want 50", len(data))
	}
	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" || string(data[36:40]) != "data" {
		t.Errorf("bad chunk ids in header % x", data[:44])
	}
	if got := binary.LittleEndian.Uint32(data[24:]); got != SampleRate {
		t.Errorf("sample rate = %d, want %d", got, SampleRate)
	}
	if got := binary.LittleEndian.Uint32(data[40:]); got != 6 {
		t.Errorf("data size = %d, want 6", got)
	}
	if diff := cmp.Diff([]int16{1, -1, 256}, int16sFromLE(data[44:])); diff != "" {
		t.Errorf("samples mismatch (-want +got):\n%s", diff)
	}
}
