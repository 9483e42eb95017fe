package render

// Color is an 8-bit RGBA color. It implements image/color.Color so backends
// that take a color.Color can use it directly.
type Color struct {
	R, G, B, A uint8
}

// RGBA implements color.Color with alpha-premultiplied 16-bit channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	a = uint32(c.A)
	a |= a << 8
	r = r * a / 0xffff
	g = g * a / 0xffff
	b = b * a / 0xffff
	return
}

// Named colors shared by every backend.
var (
	White     = Color{255, 255, 255, 255}
	Black     = Color{0, 0, 0, 255}
	Red       = Color{230, 41, 55, 255}
	Green     = Color{0, 228, 48, 255}
	Blue      = Color{0, 121, 241, 255}
	Yellow    = Color{253, 249, 0, 255}
	SkyBlue   = Color{102, 191, 255, 255}
	LightGray = Color{200, 200, 200, 255}
	Gray      = Color{130, 130, 130, 255}
	DarkGray  = Color{80, 80, 80, 255}
	RayWhite  = Color{245, 245, 245, 255}
)
