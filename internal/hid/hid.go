package hid

// Device represents an opened HID device capable of report I/O.
type Device interface {
	Write([]byte) (int, error) // send output report
	Read([]byte) (int, error)  // read input report
	Close() error
}

// Info represents a HID device descriptor. One physical device may show
// up several times, once per logical interface; UsagePage and Interface
// tell the entries apart.
type Info struct {
	Path         string
	VendorID     uint16
	ProductID    uint16
	UsagePage    uint16
	Usage        uint16
	Interface    int
	Product      string
	Manufacturer string
}

// Manager enumerates and opens HID devices.
type Manager interface {
	List() ([]Info, error)
	Open(info Info) (Device, error)
}

// NewManager returns the build-selected HID backend.
func NewManager() (Manager, error) {
	return newManager()
}
