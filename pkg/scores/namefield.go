package scores

import "unicode"

// NameField is the editable buffer behind the name prompt. It holds at most
// MaxNameLength printable runes.
type NameField struct {
	runes []rune
}

// Append adds typed characters, dropping control runes and anything past
// the length cap.
func (n *NameField) Append(chars []rune) {
	for _, r := range chars {
		if len(n.runes) >= MaxNameLength {
			return
		}
		if !unicode.IsPrint(r) {
			continue
		}
		n.runes = append(n.runes, r)
	}
}

// Backspace removes the last rune, if any.
func (n *NameField) Backspace() {
	if len(n.runes) > 0 {
		n.runes = n.runes[:len(n.runes)-1]
	}
}

// Reset empties the field.
func (n *NameField) Reset() {
	n.runes = n.runes[:0]
}

// Len returns the number of runes typed.
func (n *NameField) Len() int {
	return len(n.runes)
}

func (n *NameField) String() string {
	return string(n.runes)
}
