// Package assets embeds the default dictionary so the game runs without any
// word list configured.
package assets

import (
	"embed"
)

//go:embed words.json
var FS embed.FS

// DictionaryJSON returns the embedded dictionary, a JSON object keyed by
// word length.
func DictionaryJSON() ([]byte, error) {
	return FS.ReadFile("words.json")
}
