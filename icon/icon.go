// Package icon renders UI symbols in the variant chosen by the user.
//
// Icons can be displayed as emoji, nerd-font glyphs, plain ASCII
// or Unicode squares.
package icon

import (
	"github.com/spf13/viper"
	"github.com/typetour/typetour/key"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	squares = "squares"
)

// AvailableVariants returns all registered icon style identifiers.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, squares}
}

// Icon identifies a symbol in the registry.
type Icon int

const (
	Success Icon = iota + 1
	Fail
	Progress
	Example
	Stack
	Empty
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	squares string
}

func (d *iconDef) get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case squares:
		return d.squares
	default:
		return ""
	}
}

var icons = map[Icon]*iconDef{
	Success:  {emoji: "🎉", nerd: "", plain: "✓", squares: "■"},
	Fail:     {emoji: "👹", nerd: "", plain: "✖", squares: "□"},
	Progress: {emoji: "⏳", nerd: "", plain: "…", squares: "▪"},
	Example:  {emoji: "📘", nerd: "", plain: "»", squares: "▣"},
	Stack:    {emoji: "📚", nerd: "", plain: "≡", squares: "▤"},
	Empty:    {emoji: "🕳", nerd: "", plain: "∅", squares: "▢"},
}

// Get returns the rendered string for an icon; unknown icons render empty.
func Get(i Icon) string {
	def, ok := icons[i]
	if !ok {
		return ""
	}
	return def.get()
}
