package linechart

// Palette is an ordered list of CSS colors assigned to the
// categories by index. Indices past the end wrap around.
type Palette []string

// DefaultPalette is used when no palette is configured.
var DefaultPalette = Palette{"red", "blue", "green", "black", "orange", "pink", "purple"}

// Color returns the color of the i-th category.
// An empty palette behaves like DefaultPalette.
func (p Palette) Color(i int) string {
	if len(p) == 0 {
		p = DefaultPalette
	}
	i %= len(p)
	if i < 0 {
		i += len(p)
	}
	return p[i]
}
