// internal/game/keyboard.go
//
// Keyboard tracks the best classification observed for each letter a–z
// during a single round. Marks only ever move upward:
//   unused → absent → present → correct

package game

// QWERTYRows is the physical layout used when drawing the keyboard.
var QWERTYRows = [3]string{
	"qwertyuiop",
	"asdfghjkl",
	"zxcvbnm",
}

// Keyboard is the mutable per-round letter tracker.
// The zero value is ready to use (every letter unused).
type Keyboard struct {
	marks [26]Mark
}

// NewKeyboard returns a Keyboard with every letter unused.
func NewKeyboard() *Keyboard { return &Keyboard{} }

// Upgrade records m for r if it ranks above the letter's current mark.
// Letters outside a–z are ignored.
func (k *Keyboard) Upgrade(r rune, m Mark) {
	i := idx(r)
	if i < 0 {
		return
	}
	if m.rank() > k.marks[i].rank() {
		k.marks[i] = m
	}
}

// Mark returns the current classification of r.
func (k *Keyboard) Mark(r rune) Mark {
	i := idx(r)
	if i < 0 || k.marks[i] == "" {
		return MarkUnused
	}
	return k.marks[i]
}

// Snapshot copies the keyboard into an immutable KeyboardState.
func (k *Keyboard) Snapshot() KeyboardState {
	var s KeyboardState
	for i := range s {
		s[i] = k.Mark(rune('a' + i))
	}
	return s
}

// KeyboardState is a read-only copy of a Keyboard, indexed a..z.
type KeyboardState [26]Mark

// Mark returns the classification of r in the snapshot.
func (s KeyboardState) Mark(r rune) Mark {
	i := idx(r)
	if i < 0 || s[i] == "" {
		return MarkUnused
	}
	return s[i]
}

// Map returns the snapshot keyed by letter, omitting unused letters.
func (s KeyboardState) Map() map[string]Mark {
	out := make(map[string]Mark)
	for i, m := range s {
		if m != "" && m != MarkUnused {
			out[string(rune('a'+i))] = m
		}
	}
	return out
}

// idx maps a lowercase ASCII letter rune to 0..25, or -1.
func idx(r rune) int {
	if r < 'a' || r > 'z' {
		return -1
	}
	return int(r - 'a')
}
