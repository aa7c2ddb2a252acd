//go:build purehid

package hid

import (
	usbhid "rafaelmartins.com/p/usbhid"
)

// Pure-Go backend, no cgo. usbhid exposes no usage page, so every Info
// carries UsagePage zero and selection falls back to the plain
// vendor/product match.

type usbhidManager struct{}

func newManager() (Manager, error) { return &usbhidManager{}, nil }

func (m *usbhidManager) List() ([]Info, error) {
	devs, err := usbhid.Enumerate(nil)
	if err != nil {
		return nil, err
	}
	out := make([]Info, 0, len(devs))
	for _, d := range devs {
		out = append(out, Info{
			Path:         d.Path(),
			VendorID:     d.VendorId(),
			ProductID:    d.ProductId(),
			Product:      d.Product(),
			Manufacturer: d.Manufacturer(),
		})
	}
	return out, nil
}

func (m *usbhidManager) Open(info Info) (Device, error) {
	d, err := usbhid.Get(func(dev *usbhid.Device) bool {
		return dev.Path() == info.Path
	}, true, false)
	if err != nil {
		return nil, err
	}
	return &usbhidDevice{d}, nil
}

type usbhidDevice struct{ d *usbhid.Device }

func (d *usbhidDevice) Write(p []byte) (int, error) {
	// p carries the report ID at p[0], hidapi-style.
	if len(p) == 0 {
		return 0, nil
	}
	if err := d.d.SetOutputReport(p[0], p[1:]); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (d *usbhidDevice) Read(p []byte) (int, error) {
	_, buf, err := d.d.GetInputReport()
	if err != nil {
		return 0, err
	}
	return copy(p, buf), nil
}

func (d *usbhidDevice) Close() error { return d.d.Close() }
