package pdf

// Color is a device RGB color with channels in [0, 1].
type Color struct {
	R, G, B float64
}

// Common colors.
var (
	Black = Color{}
	White = Color{1, 1, 1}
)

// RGB returns the color with the given channels.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Gray returns the gray level v as an RGB color.
func Gray(v float64) Color {
	return Color{R: v, G: v, B: v}
}

// cmyk approximates a CMYK color in RGB for the shadow state.
func cmyk(c, m, y, k float64) Color {
	return Color{
		R: (1 - c) * (1 - k),
		G: (1 - m) * (1 - k),
		B: (1 - y) * (1 - k),
	}
}
