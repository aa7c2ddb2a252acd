//go:build rawusb

package hid

import (
	"errors"
	"fmt"

	"github.com/karalabe/usb"
)

type rawusbManager struct{}

func newManager() (Manager, error) {
	if !usb.Supported() {
		return nil, errors.New("hid: usb backend not built for this platform")
	}
	return &rawusbManager{}, nil
}

func (m *rawusbManager) List() ([]Info, error) {
	infos, err := usb.EnumerateHid(0, 0)
	if err != nil {
		return nil, err
	}
	out := make([]Info, 0, len(infos))
	for _, d := range infos {
		out = append(out, Info{
			Path:         d.Path,
			VendorID:     d.VendorID,
			ProductID:    d.ProductID,
			UsagePage:    d.UsagePage,
			Usage:        d.Usage,
			Interface:    d.Interface,
			Product:      d.Product,
			Manufacturer: d.Manufacturer,
		})
	}
	return out, nil
}

func (m *rawusbManager) Open(info Info) (Device, error) {
	// Re-enumerate to recover the library handle; paths are stable for
	// as long as the device stays attached.
	infos, err := usb.EnumerateHid(info.VendorID, info.ProductID)
	if err != nil {
		return nil, err
	}
	for _, d := range infos {
		if d.Path == info.Path {
			return d.Open()
		}
	}
	return nil, fmt.Errorf("hid: device %s no longer present", info.Path)
}
