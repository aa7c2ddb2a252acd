package hid

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"
)

// ErrDeviceNotFound is returned by Acquire when enumeration turns up no
// candidate carrying the requested vendor/product pair. Absence is not
// retried; only a failing open is.
var ErrDeviceNotFound = errors.New("hid: device not found")

// OpenError reports that a candidate was found but every open attempt
// failed. It wraps the error from the last attempt.
type OpenError struct {
	Attempts int
	Err      error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("hid: open failed after %d attempts: %v", e.Attempts, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// AcquireOptions selects the device to open and the retry policy for
// transiently failing opens.
type AcquireOptions struct {
	VendorID  uint16
	ProductID uint16

	// UsagePage is the preferred logical interface on composite
	// devices. A candidate on any other usage page is still opened
	// when nothing matches the preferred one.
	UsagePage uint16

	MaxRetries int           // open attempts beyond the first
	RetryDelay time.Duration // fixed delay between attempts

	// Progress receives one status line per failed attempt. Nil
	// silences them.
	Progress io.Writer

	sleep func(time.Duration) // test hook
}

// Acquire locates the device described by opts and opens it. Candidates
// are re-enumerated on every attempt: a device recovering from a
// transient busy state may come back under a different path. The
// returned Device is exclusively owned by the caller.
func Acquire(mgr Manager, opts AcquireOptions) (Device, error) {
	sleep := opts.sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	var lastErr error
	for attempt := 0; attempt <= opts.MaxRetries; attempt++ {
		infos, err := mgr.List()
		if err != nil {
			return nil, fmt.Errorf("hid: enumerate: %w", err)
		}

		info, ok := match(infos, opts)
		if !ok {
			return nil, ErrDeviceNotFound
		}
		slog.Debug("selected candidate",
			slog.String("path", info.Path),
			slog.Int("usage_page", int(info.UsagePage)),
			slog.Int("attempt", attempt+1))

		dev, err := mgr.Open(info)
		if err == nil {
			return dev, nil
		}
		lastErr = err

		if attempt < opts.MaxRetries {
			if opts.Progress != nil {
				fmt.Fprintf(opts.Progress, "Attempt %d failed: %v. Retrying in %dms...\n",
					attempt+1, err, opts.RetryDelay.Milliseconds())
			}
			sleep(opts.RetryDelay)
		}
	}

	return nil, &OpenError{Attempts: opts.MaxRetries + 1, Err: lastErr}
}

// match prefers the candidate on the requested usage page; the second
// scan runs only when the first finds nothing and accepts any interface
// with the right vendor/product pair.
func match(infos []Info, opts AcquireOptions) (Info, bool) {
	for _, d := range infos {
		if d.VendorID == opts.VendorID && d.ProductID == opts.ProductID && d.UsagePage == opts.UsagePage {
			return d, true
		}
	}
	for _, d := range infos {
		if d.VendorID == opts.VendorID && d.ProductID == opts.ProductID {
			return d, true
		}
	}
	return Info{}, false
}
