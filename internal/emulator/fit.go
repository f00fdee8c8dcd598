// ABOUTME: Fit adapter: converts the surface's container size into an emulator grid
// ABOUTME: Pixel sizes are divided by the font cell metrics; cell sizes pass through

package emulator

// Minimum grid the fitter will propose.
const (
	MinCols = 2
	MinRows = 1
)

// charWidthRatio approximates the advance of a monospace glyph relative to
// its font size.
const charWidthRatio = 0.6

// Container describes the space a surface offers. Pixel dimensions are
// used when known (xterm's CSI 14 t report); otherwise the cell dimensions.
type Container struct {
	Cols, Rows        int
	WidthPx, HeightPx int
}

// Fitter keeps an emulator sized to its container.
type Fitter struct {
	emu Emulator
}

// NewFitter attaches a fitter to emu.
func NewFitter(emu Emulator) *Fitter {
	return &Fitter{emu: emu}
}

// Propose computes the grid for c without applying it.
func (f *Fitter) Propose(c Container) (cols, rows int) {
	opts := f.emu.Options()
	cols, rows = c.Cols, c.Rows

	if c.WidthPx > 0 && c.HeightPx > 0 && opts.FontSize > 0 {
		cellW := float64(opts.FontSize) * charWidthRatio
		lh := opts.LineHeight
		if lh <= 0 {
			lh = 1
		}
		cellH := float64(opts.FontSize) * lh
		cols = int(float64(c.WidthPx) / cellW)
		rows = int(float64(c.HeightPx) / cellH)
	}
	return max(cols, MinCols), max(rows, MinRows)
}

// Fit resizes the emulator to c and reports the applied grid and whether it
// changed.
func (f *Fitter) Fit(c Container) (cols, rows int, changed bool) {
	cols, rows = f.Propose(c)
	oldCols, oldRows := f.emu.Size()
	if cols == oldCols && rows == oldRows {
		return cols, rows, false
	}
	f.emu.Resize(cols, rows)
	return cols, rows, true
}
