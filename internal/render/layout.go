package render

const (
	// HUDRows is the number of terminal rows reserved for the status bar.
	HUDRows = 3

	// MaskCellCols is how many terminal columns one template cell occupies.
	// 2 makes cells appear roughly square since terminal chars are ~2:1.
	MaskCellCols = 2

	panelMargin = 2
	galleryPadX = 2
	galleryPadY = 1
)

// Layout divides the terminal into the template editor panel on the left,
// the sprite gallery on the right and the HUD at the bottom.
type Layout struct {
	PanelW       int // columns used by the editor panel, margins included
	GalleryX     int // first gallery column (0-based)
	GalleryW     int
	GalleryH     int // rows available above the HUD
	CellW, CellH int // one gallery slot, padding included
	Cols, Rows   int // slots that fit
}

// NewLayout computes the layout for a template of maskW x maskH cells that
// generates sprites of spriteW x spriteH pixels.
func NewLayout(termW, termH, maskW, maskH, spriteW, spriteH int) Layout {
	l := Layout{
		PanelW:   maskW*MaskCellCols + panelMargin*2,
		GalleryH: termH - HUDRows,
	}
	l.GalleryX = l.PanelW
	l.GalleryW = termW - l.PanelW
	if l.GalleryW < 0 {
		l.GalleryW = 0
	}
	if l.GalleryH < 0 {
		l.GalleryH = 0
	}

	// One pixel per column, two pixel rows per terminal row
	l.CellW = spriteW + galleryPadX
	l.CellH = (spriteH+1)/2 + galleryPadY
	if l.CellW > 0 {
		l.Cols = (l.GalleryW - galleryPadX) / l.CellW
	}
	if l.CellH > 0 {
		l.Rows = (l.GalleryH - galleryPadY) / l.CellH
	}
	if l.Cols < 0 {
		l.Cols = 0
	}
	if l.Rows < 0 {
		l.Rows = 0
	}
	return l
}

// Capacity returns how many sprites the gallery shows.
func (l Layout) Capacity() int {
	return l.Cols * l.Rows
}

// SlotOrigin returns the top-left terminal cell (0-based) of gallery slot i.
func (l Layout) SlotOrigin(i int) (col, row int) {
	if l.Cols == 0 {
		return l.GalleryX, 0
	}
	col = l.GalleryX + galleryPadX + (i%l.Cols)*l.CellW
	row = galleryPadY + (i/l.Cols)*l.CellH
	return col, row
}

// MaskOrigin returns the top-left terminal cell (0-based) of the editor grid.
func (l Layout) MaskOrigin() (col, row int) {
	return panelMargin, panelMargin / 2
}
