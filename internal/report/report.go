// Package report performs fixed-size HID report exchange against one
// open device: a padded output report write, a single blocking input
// report read, or an unbounded read loop.
package report

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/bluleap-ai/hid-tools/internal/hid"
)

// Size is the fixed length of every input and output report.
const Size = 64

// Pack copies payload into a full-width report buffer, left-aligned and
// zero-padded. Payloads longer than Size are truncated, not rejected.
func Pack(payload []byte) [Size]byte {
	var r [Size]byte
	copy(r[:], payload)
	return r
}

// Encode renders report bytes as dash-separated hex for console output.
func Encode(b []byte) string {
	hexDigits := hex.EncodeToString(b)
	var builder strings.Builder
	for i, r := range hexDigits {
		if i > 0 && i%2 == 0 {
			builder.WriteString("-")
		}
		builder.WriteRune(r)
	}
	return builder.String()
}

// Exchanger performs report I/O against one open device. Out receives
// the operator-facing dump of each transmitted and received report.
type Exchanger struct {
	Device hid.Device
	Out    io.Writer
}

func (x *Exchanger) out() io.Writer {
	if x.Out != nil {
		return x.Out
	}
	return io.Discard
}

// Send transmits payload as one output report. The full Size-byte
// buffer always goes on the wire regardless of payload length. A write
// failure is returned for the caller to report; it is not fatal here.
func (x *Exchanger) Send(payload []byte) (int, error) {
	buf := Pack(payload)
	fmt.Fprintf(x.out(), "\nSending Output Report (%d bytes):\n", Size)
	fmt.Fprintf(x.out(), "Hex: %s\n", Encode(buf[:]))

	n, err := x.Device.Write(buf[:])
	if err != nil {
		return 0, fmt.Errorf("write report: %w", err)
	}
	return n, nil
}

// ReadOnce performs exactly one blocking read. The returned length may
// be shorter than Size; the data slice covers only the populated bytes.
func (x *Exchanger) ReadOnce() (int, []byte, error) {
	var buf [Size]byte
	n, err := x.Device.Read(buf[:])
	if err != nil {
		return 0, nil, fmt.Errorf("read report: %w", err)
	}
	return n, buf[:n], nil
}

// ReadLoop reads and prints input reports until a read fails. The
// transport error is the loop's only exit condition; there is no
// external cancellation between reads.
func (x *Exchanger) ReadLoop() error {
	for {
		n, data, err := x.ReadOnce()
		if err != nil {
			return err
		}
		fmt.Fprintf(x.out(), "\nReceived Input Report (%d bytes):\n", n)
		fmt.Fprintf(x.out(), "Hex: %s\n", Encode(data))
	}
}
