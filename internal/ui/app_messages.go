package ui

// AddPlateMsg appends a plate to the bar.
type AddPlateMsg struct {
	Weight float64
}

// RemovePlateMsg removes the plate at Index (its position when rendered).
type RemovePlateMsg struct {
	Index int
}

// SetBarWeightMsg is sent by the bar-weight picker on selection.
type SetBarWeightMsg struct {
	Weight float64
}

// ShowBarPickerMsg opens the bar-weight picker (b, SPC b, or click on the collar).
type ShowBarPickerMsg struct{}

// DismissModalMsg closes the top overlay.
type DismissModalMsg struct{}

// ToggleShapeMsg switches plates between side and disc drawing (v, SPC v).
type ToggleShapeMsg struct{}

// ShowResetConfirmMsg asks before resetting (R, SPC r).
type ShowResetConfirmMsg struct{}

// ResetMsg restores the default bar and removes all plates. Sent once the
// reset is confirmed.
type ResetMsg struct{}
