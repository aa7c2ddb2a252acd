package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/bluleap-ai/hid-tools/internal/hid"
)

func TestPackPadsShortPayload(t *testing.T) {
	r := Pack([]byte{0x01, 0x02, 0x03})
	if r[0] != 0x01 || r[1] != 0x02 || r[2] != 0x03 {
		t.Fatalf("payload not left-aligned: % x", r[:4])
	}
	for i := 3; i < Size; i++ {
		if r[i] != 0 {
			t.Fatalf("byte %d not zero-padded: %#x", i, r[i])
		}
	}
}

func TestPackTruncatesLongPayload(t *testing.T) {
	long := make([]byte, Size+8)
	for i := range long {
		long[i] = byte(i + 1)
	}
	r := Pack(long)
	if !bytes.Equal(r[:], long[:Size]) {
		t.Fatalf("truncation mismatch:\n got % x\nwant % x", r[:], long[:Size])
	}
}

func TestSendTransmitsFullWidth(t *testing.T) {
	dev := &hid.MockDevice{}
	x := &Exchanger{Device: dev}

	n, err := x.Send([]byte{0xDE, 0xAD})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if n != Size {
		t.Fatalf("wrote %d bytes, want %d", n, Size)
	}
	if len(dev.Written) != 1 {
		t.Fatalf("expected 1 write, got %d", len(dev.Written))
	}
	want := Pack([]byte{0xDE, 0xAD})
	if !bytes.Equal(dev.Written[0], want[:]) {
		t.Fatalf("transmitted buffer mismatch:\n got % x\nwant % x", dev.Written[0], want[:])
	}
}

func TestSendReportsWriteError(t *testing.T) {
	boom := errors.New("pipe stalled")
	dev := &hid.MockDevice{WriteFunc: func([]byte) (int, error) { return 0, boom }}
	x := &Exchanger{Device: dev}

	if _, err := x.Send([]byte{0x01}); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped write error, got %v", err)
	}
}

func TestReadOnce(t *testing.T) {
	dev := &hid.MockDevice{ReadFunc: func(p []byte) (int, error) {
		copy(p, []byte{0xCA, 0xFE, 0x42})
		return 3, nil
	}}
	x := &Exchanger{Device: dev}

	n, data, err := x.ReadOnce()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if n != 3 {
		t.Fatalf("length %d, want 3", n)
	}
	if !bytes.Equal(data, []byte{0xCA, 0xFE, 0x42}) {
		t.Fatalf("data mismatch: % x", data)
	}
}

func TestReadLoopTerminatesOnError(t *testing.T) {
	boom := errors.New("device unplugged")
	var reads int
	dev := &hid.MockDevice{ReadFunc: func(p []byte) (int, error) {
		reads++
		if reads > 3 {
			return 0, boom
		}
		p[0] = byte(reads)
		return 1, nil
	}}

	var out bytes.Buffer
	x := &Exchanger{Device: dev, Out: &out}

	err := x.ReadLoop()
	if !errors.Is(err, boom) {
		t.Fatalf("expected transport error, got %v", err)
	}
	if reads != 4 {
		t.Fatalf("expected 3 successes + 1 failure, got %d reads", reads)
	}
	if got := strings.Count(out.String(), "Received Input Report"); got != 3 {
		t.Fatalf("expected 3 reports printed, got %d", got)
	}
}

func TestEncode(t *testing.T) {
	if got := Encode([]byte{0x01, 0xAB, 0xFF}); got != "01-ab-ff" {
		t.Fatalf("unexpected encoding %q", got)
	}
	if got := Encode(nil); got != "" {
		t.Fatalf("empty input should encode empty, got %q", got)
	}
}
