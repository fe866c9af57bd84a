package geom

// Color holds normalized RGBA channels in [0,1]. Channels are converted to
// byte values only at the point of writing to a pixel buffer.
type Color struct {
	R, G, B, A float64
}

// Yellow is the reference point color, full opacity.
func Yellow() Color {
	return Color{R: 1, G: 1, B: 0, A: 1}
}
