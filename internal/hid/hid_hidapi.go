//go:build !purehid && !rawusb

package hid

import (
	hidapi "github.com/sstallion/go-hid"
)

type hidapiManager struct{}

func newManager() (Manager, error) {
	if err := hidapi.Init(); err != nil {
		return nil, err
	}
	return &hidapiManager{}, nil
}

func (m *hidapiManager) List() ([]Info, error) {
	var out []Info
	// Enumerate reports an error when nothing matches at all; callers
	// already treat an empty list as "not found", so the error adds
	// nothing here.
	_ = hidapi.Enumerate(hidapi.VendorIDAny, hidapi.ProductIDAny, func(d *hidapi.DeviceInfo) error {
		out = append(out, Info{
			Path:         d.Path,
			VendorID:     d.VendorID,
			ProductID:    d.ProductID,
			UsagePage:    d.UsagePage,
			Usage:        d.Usage,
			Interface:    d.InterfaceNbr,
			Product:      d.ProductStr,
			Manufacturer: d.MfrStr,
		})
		return nil
	})
	return out, nil
}

func (m *hidapiManager) Open(info Info) (Device, error) {
	return hidapi.OpenPath(info.Path)
}
