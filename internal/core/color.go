package core

// Color is a palette entry for a draw command or a screen cell.
// Hosts map entries to their own colour type through Hex.
type Color uint8

// Palette entries used by the game and its hosts.
const (
	ColorDefault Color = iota
	ColorSky
	ColorGround
	ColorPipe
	ColorCloud
	ColorCloudShadow
	ColorBird
	ColorBeak
	ColorEye
	ColorHat
	ColorText
	ColorOverlay
	ColorOverlayText
)

var paletteHex = map[Color]string{
	ColorSky:         "#ecf2ff",
	ColorGround:      "#cfd8dc",
	ColorPipe:        "#4caf50",
	ColorCloud:       "#ffffff",
	ColorCloudShadow: "#dde6f7",
	ColorBird:        "#ffca28",
	ColorBeak:        "#ff9800",
	ColorEye:         "#263238",
	ColorHat:         "#ff9800",
	ColorText:        "#263238",
	ColorOverlay:     "#3a3f44",
	ColorOverlayText: "#ffffff",
}

// Hex returns the colour as a "#rrggbb" string, or "" for ColorDefault.
func (c Color) Hex() string {
	return paletteHex[c]
}

// RGB returns the colour components. ColorDefault is black.
func (c Color) RGB() (r, g, b uint8) {
	h := paletteHex[c]
	if len(h) != 7 {
		return 0, 0, 0
	}
	return hexByte(h[1:3]), hexByte(h[3:5]), hexByte(h[5:7])
}

func hexByte(s string) uint8 {
	var v uint8
	for i := 0; i < len(s); i++ {
		c := s[i]
		v <<= 4
		switch {
		case c >= '0' && c <= '9':
			v |= c - '0'
		case c >= 'a' && c <= 'f':
			v |= c - 'a' + 10
		case c >= 'A' && c <= 'F':
			v |= c - 'A' + 10
		}
	}
	return v
}
