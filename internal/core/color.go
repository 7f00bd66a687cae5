package core

// Color is a foreground color for a screen cell. Hosts map it to whatever
// their output supports; the terminal host uses ANSI 256-color codes.
type Color uint8

// Palette used by the game and the hosts.
const (
	ColorDefault      Color = iota
	ColorRed                // errors, warnings
	ColorGreen              // pipes
	ColorYellow             // highlights
	ColorWhite              // plain text
	ColorBrightYellow       // player
	ColorBrightWhite        // score and banners
	ColorOrange             // new record
)
