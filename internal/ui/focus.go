package ui

// Focus is the row that receives cursor keys.
type Focus int

const (
	// FocusCatalog is the add row below the separator.
	FocusCatalog Focus = iota
	// FocusBar is the plates on the bar.
	FocusBar
)

func (f Focus) String() string {
	switch f {
	case FocusCatalog:
		return "Add"
	case FocusBar:
		return "Bar"
	default:
		return "Unknown"
	}
}

// Next toggles between the two rows.
func (f Focus) Next() Focus {
	if f == FocusCatalog {
		return FocusBar
	}
	return FocusCatalog
}
