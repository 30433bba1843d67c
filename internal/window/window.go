// Package window holds the compositor window snapshot for one session.
package window

// Record is one open window.
type Record struct {
	// Address identifies the window for activation.
	Address string `json:"address" yaml:"address"`
	// Class is the compositor-reported application class.
	Class string `json:"class" yaml:"class"`
	// Title is the window title at snapshot time.
	Title string `json:"title" yaml:"title"`
	// PID is the owning process id.
	PID int `json:"pid" yaml:"pid"`
	// ID is the sequence number assigned when the snapshot was taken.
	ID uint64 `json:"id" yaml:"id"`
}

// Snapshot is the fixed set of windows for a session. It is never modified
// after construction.
type Snapshot struct {
	records []Record
}

// NewSnapshot copies records and numbers them 0, 1, 2, ... in order.
// Any ID already present on the input is overwritten.
func NewSnapshot(records []Record) *Snapshot {
	s := &Snapshot{records: make([]Record, len(records))}
	for i, r := range records {
		r.ID = uint64(i)
		s.records[i] = r
	}
	return s
}

// Empty returns a snapshot with no windows.
func Empty() *Snapshot {
	return &Snapshot{}
}

// Records returns the windows in snapshot order. Callers must not modify
// the returned slice.
func (s *Snapshot) Records() []Record {
	if s == nil {
		return nil
	}
	return s.records
}

// Len returns the number of windows.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.records)
}

// ByID returns the window with the given id.
func (s *Snapshot) ByID(id uint64) (Record, bool) {
	for _, r := range s.Records() {
		if r.ID == id {
			return r, true
		}
	}
	return Record{}, false
}
