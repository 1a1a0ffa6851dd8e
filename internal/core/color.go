package core

// Color identifies a palette entry for a screen cell. The terminal layer
// maps these to concrete ANSI colors; the simulation only picks from the
// palette.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
)
