package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry holds the app-level keys: quit, reset, and the SPC menu.
// Sequences are space separated with "SPC" for the space bar, so "SPC b"
// is space then b. A single key such as "R" is bound without a prefix.
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
}

// NewKeybindRegistry returns a registry with no bindings.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
	}
}

// Bind maps seq to cmd without a hint label.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd) {
	r.BindWithDesc(seq, cmd, "")
}

// BindWithDesc maps seq to cmd; desc labels it in the SPC hint box.
func (r *KeybindRegistry) BindWithDesc(seq string, cmd tea.Cmd, desc string) {
	n := normalizeSeq(seq)
	r.bindings[n] = cmd
	if desc != "" {
		r.descriptions[n] = desc
	}
}

// Lookup returns the command bound to seq, or nil.
func (r *KeybindRegistry) Lookup(seq string) tea.Cmd {
	return r.bindings[normalizeSeq(seq)]
}

// HasPrefix reports whether some longer sequence continues seq.
func (r *KeybindRegistry) HasPrefix(seq string) bool {
	prefix := normalizeSeq(seq) + " "
	for k := range r.bindings {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

// LeaderHints lists what may follow currentSeq ("" for a bare SPC), keyed
// by the next key. A key that leads to more keys is shown as "key…".
func (r *KeybindRegistry) LeaderHints(currentSeq string) map[string]string {
	out := make(map[string]string)
	prefix := "SPC "
	if currentSeq != "" {
		prefix = normalizeSeq(currentSeq) + " "
	}
	for seq, cmd := range r.bindings {
		if cmd == nil || !strings.HasPrefix(seq, prefix) {
			continue
		}
		rest := strings.TrimPrefix(seq, prefix)
		key := rest
		if parts := strings.Fields(rest); len(parts) > 0 {
			key = parts[0]
		}
		if r.HasPrefix(prefix + key) {
			out[key] = key + "…"
			continue
		}
		if d, ok := r.descriptions[seq]; ok && d != "" {
			out[key] = d
		} else {
			out[key] = seq
		}
	}
	return out
}

// normalizeSeq rewrites space in any spelling to "SPC".
func normalizeSeq(seq string) string {
	parts := strings.Fields(seq)
	for i, p := range parts {
		if p == "space" || p == " " {
			parts[i] = "SPC"
		}
	}
	return strings.Join(parts, " ")
}

// KeyHandler turns key presses into registry commands, remembering a
// partly typed SPC sequence between presses.
type KeyHandler struct {
	Registry      *KeybindRegistry
	LeaderSeq     string   // leader as written in bindings
	LeaderWaiting bool     // SPC pressed, sequence not finished
	Buffer        []string // sequence typed so far, starting with LeaderSeq
}

// NewKeyHandler uses the space bar as the leader.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg, LeaderSeq: "SPC"}
}

// Handle reports consumed=true when msg belongs to the registry (a bound
// key or any key of an SPC sequence); LoadoutView never sees those keys.
func (h *KeyHandler) Handle(msg tea.KeyMsg) (consumed bool, cmd tea.Cmd) {
	part := keyToSeqPart(msg.String())
	switch {
	case h.LeaderWaiting && part == "esc":
		h.reset()
		return true, nil
	case part == h.LeaderSeq:
		// SPC always starts a fresh sequence.
		h.LeaderWaiting = true
		h.Buffer = []string{h.LeaderSeq}
		return true, nil
	case h.LeaderWaiting:
		return true, h.extend(part)
	}
	if c := h.Registry.Lookup(part); c != nil {
		return true, c
	}
	return false, nil
}

// extend adds part to the pending sequence. It returns the bound command
// once the sequence is complete; an unknown sequence is dropped.
func (h *KeyHandler) extend(part string) tea.Cmd {
	h.Buffer = append(h.Buffer, part)
	seq := strings.Join(h.Buffer, " ")
	if c := h.Registry.Lookup(seq); c != nil {
		h.reset()
		return c
	}
	if !h.Registry.HasPrefix(seq) {
		h.reset()
	}
	return nil
}

func (h *KeyHandler) reset() {
	h.LeaderWaiting = false
	h.Buffer = nil
}

// keyToSeqPart spells one tea key the way bindings do.
func keyToSeqPart(s string) string {
	if s == " " || s == "space" {
		return "SPC"
	}
	return s
}
