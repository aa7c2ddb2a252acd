package hid

import "io"

// MockDevice is a scripted Device for tests. Writes are recorded;
// reads and writes defer to the hook functions when set.
type MockDevice struct {
	WriteFunc func([]byte) (int, error)
	ReadFunc  func([]byte) (int, error)

	Written [][]byte
	Closed  bool
}

func (d *MockDevice) Write(p []byte) (int, error) {
	buf := make([]byte, len(p))
	copy(buf, p)
	d.Written = append(d.Written, buf)
	if d.WriteFunc != nil {
		return d.WriteFunc(p)
	}
	return len(p), nil
}

func (d *MockDevice) Read(p []byte) (int, error) {
	if d.ReadFunc != nil {
		return d.ReadFunc(p)
	}
	return 0, io.EOF
}

func (d *MockDevice) Close() error {
	d.Closed = true
	return nil
}

// MockManager serves a fixed candidate list and scripted open results.
type MockManager struct {
	Infos    []Info
	OpenErrs []error // consumed one per Open call; nil entries succeed
	Device   Device  // returned on successful opens; defaults to a fresh MockDevice

	ListCalls int
	OpenCalls int
	Opened    []Info
}

func (m *MockManager) List() ([]Info, error) {
	m.ListCalls++
	return m.Infos, nil
}

func (m *MockManager) Open(info Info) (Device, error) {
	i := m.OpenCalls
	m.OpenCalls++
	m.Opened = append(m.Opened, info)
	if i < len(m.OpenErrs) && m.OpenErrs[i] != nil {
		return nil, m.OpenErrs[i]
	}
	if m.Device != nil {
		return m.Device, nil
	}
	return &MockDevice{}, nil
}
