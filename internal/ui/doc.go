// Package ui is the interactive barbell screen, built with Bubble Tea.
//
// Core pieces:
//   - AppModel: root model; applies loadout messages and hosts modals
//   - LoadoutView: total, loaded bar and add row; keyboard and mouse input
//   - BarPickerModal: bar-weight selection from the catalog
//   - ConfirmModal: confirmation before reset
//   - KeybindRegistry/KeyHandler: single keys and SPC-prefixed sequences
//   - OverlayStack: modals above the main view with a dismiss key
package ui
