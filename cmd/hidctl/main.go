package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/bluleap-ai/hid-tools/internal/hid"
	"github.com/bluleap-ai/hid-tools/internal/report"
)

// Vendor-defined usage page carrying the control interface on the
// devices this tool was written for. Overridable with -usage-page.
const defaultUsagePage = 0xFF42

func main() {
	var (
		vidStr     = flag.String("vid", "", "vendor ID of the HID device (hex)")
		pidStr     = flag.String("pid", "", "product ID of the HID device (hex)")
		sendStr    = flag.String("send", "", "data to send (hex string, padded to 64 bytes)")
		retries    = flag.Int("retries", 3, "number of times to retry if the device is busy")
		retryDelay = flag.Int("retry-delay", 100, "delay between retries in milliseconds")
		continuous = flag.Bool("continuous", false, "keep reading input reports after sending data")
		pageStr    = flag.String("usage-page", fmt.Sprintf("%04x", defaultUsagePage), "preferred usage page of the interface to open (hex)")
		list       = flag.Bool("list", false, "list all visible HID interfaces and exit")
		debug      = flag.Bool("debug", false, "verbose diagnostics on stderr")
	)
	flag.Parse()

	if *debug {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	mgr, err := hid.NewManager()
	if err != nil {
		fatalf("Failed to initialize HID backend: %v", err)
	}

	if *list {
		listDevices(mgr)
		return
	}

	if *vidStr == "" || *pidStr == "" {
		fmt.Fprintln(os.Stderr, "both -vid and -pid are required")
		flag.Usage()
		os.Exit(2)
	}
	vid, err := parseHex16(*vidStr)
	if err != nil {
		fatalf("Invalid vendor ID %q: %v", *vidStr, err)
	}
	pid, err := parseHex16(*pidStr)
	if err != nil {
		fatalf("Invalid product ID %q: %v", *pidStr, err)
	}
	page, err := parseHex16(*pageStr)
	if err != nil {
		fatalf("Invalid usage page %q: %v", *pageStr, err)
	}

	// Decode the payload before touching the device: a bad hex string
	// should not cost an open/retry cycle.
	var payload []byte
	if *sendStr != "" {
		payload, err = hex.DecodeString(*sendStr)
		if err != nil {
			fatalf("Invalid payload hex %q: %v", *sendStr, err)
		}
	}

	fmt.Printf("Searching for devices with VID:PID = %04x:%04x\n\n", vid, pid)

	dev, err := hid.Acquire(mgr, hid.AcquireOptions{
		VendorID:   vid,
		ProductID:  pid,
		UsagePage:  page,
		MaxRetries: *retries,
		RetryDelay: time.Duration(*retryDelay) * time.Millisecond,
		Progress:   os.Stdout,
	})
	if err != nil {
		fatalf("%v", err)
	}
	defer dev.Close()

	fmt.Println("Successfully opened device")

	x := &report.Exchanger{Device: dev, Out: os.Stdout}

	if payload != nil {
		if _, err := x.Send(payload); err != nil {
			fmt.Fprintf(os.Stderr, "Error sending data: %v\n", err)
		} else {
			fmt.Println("Successfully sent data")
		}
	}

	if *continuous {
		if err := x.ReadLoop(); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading input report: %v\n", err)
		}
		return
	}

	n, data, err := x.ReadOnce()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not read input report: %v\n", err)
		return
	}
	fmt.Printf("\nReceived Input Report (%d bytes):\n", n)
	fmt.Printf("Hex: %s\n", report.Encode(data))
}

func listDevices(mgr hid.Manager) {
	infos, err := mgr.List()
	if err != nil {
		fatalf("Enumeration failed: %v", err)
	}
	for _, d := range infos {
		fmt.Printf("VID: 0x%04x, PID: 0x%04x, Path: %s, Product: %s, UsagePage: 0x%04x, Usage: 0x%02x, Interface: %d\n",
			d.VendorID, d.ProductID, d.Path, d.Product, d.UsagePage, d.Usage, d.Interface)
	}
}

func parseHex16(s string) (uint16, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, err
	}
	return uint16(v), nil
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
