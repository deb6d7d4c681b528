package chat

import "unicode/utf16"

// Color is a hex color string such as "#FF4500"
type Color string

// Palette is the fixed set of username colors
var Palette = [...]Color{
	"#FF4500", // orange red
	"#DA70D6", // orchid
	"#1E90FF", // dodger blue
	"#FFD700", // gold
	"#32CD32", // lime green
	"#00FF7F", // spring green
	"#FF69B4", // hot pink
	"#00BFFF", // deep sky blue
	"#ADFF2F", // green yellow
	"#FF00FF", // magenta
}

// ColorFor returns the palette color for a username.
// The same username always gets the same color.
func ColorFor(username string) Color {
	return Palette[ColorIndex(username)]
}

// ColorIndex returns the palette index for a username.
//
// The hash walks UTF-16 code units and computes code + ((hash << 5) - hash).
// The shift sees the hash truncated to signed 32 bits while the sum itself is
// kept exact, which is how browsers evaluate the same expression, so a
// username colors identically in the web widget and here.
func ColorIndex(username string) int {
	var hash int64
	for _, unit := range utf16.Encode([]rune(username)) {
		shifted := int64(int32(uint32(hash) << 5))
		hash = int64(unit) + (shifted - hash)
	}

	index := hash % int64(len(Palette))
	if index < 0 {
		index = -index
	}
	return int(index)
}
