package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	ui "github.com/go-theft-auto/koixui"
)

// Renderer paints a draw list's primitives onto a tcell screen. Fills
// set cell backgrounds, blended by alpha over what is already there;
// outlines use line-drawing runes; text keeps the background beneath it.
type Renderer struct {
	screen tcell.Screen
	clear  ui.Color
	cols   int
	rows   int
	bg     []ui.Color
}

// NewRenderer creates a renderer for screen. Every frame starts from
// clear.
func NewRenderer(screen tcell.Screen, clear ui.Color) *Renderer {
	r := &Renderer{screen: screen, clear: clear}
	r.cols, r.rows = screen.Size()
	return r
}

// FontTextureID is 0; the terminal draws text as runes.
func (r *Renderer) FontTextureID() uint32 { return 0 }

// Resize takes the size in ui pixels.
func (r *Renderer) Resize(width, height int) {
	r.cols = int(float32(width) / CellWidth)
	r.rows = int(float32(height) / CellHeight)
}

// Render paints dl and shows the screen.
func (r *Renderer) Render(dl *ui.DrawList) error {
	n := r.cols * r.rows
	if cap(r.bg) < n {
		r.bg = make([]ui.Color, n)
	}
	r.bg = r.bg[:n]
	for i := range r.bg {
		r.bg[i] = r.clear
	}
	for y := range r.rows {
		for x := range r.cols {
			r.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(tcellColor(r.clear)))
		}
	}
	for _, p := range dl.Prims {
		switch p.Kind {
		case ui.PrimFill:
			r.fill(p)
		case ui.PrimOutline:
			r.outline(p)
		case ui.PrimText:
			r.text(p)
		}
	}
	r.screen.Show()
	return nil
}

// cells returns the cell range whose centres lie in both rect and clip.
func (r *Renderer) cells(rect, clip ui.Rect) (x0, y0, x1, y1 int) {
	lx := max(rect.X, clip.X)
	ly := max(rect.Y, clip.Y)
	hx := min(rect.X+rect.W, clip.X+clip.W)
	hy := min(rect.Y+rect.H, clip.Y+clip.H)
	x0 = max(int(lx/CellWidth+0.5), 0)
	y0 = max(int(ly/CellHeight+0.5), 0)
	x1 = min(int(hx/CellWidth+0.5), r.cols)
	y1 = min(int(hy/CellHeight+0.5), r.rows)
	return x0, y0, x1, y1
}

func (r *Renderer) fill(p ui.Prim) {
	x0, y0, x1, y1 := r.cells(p.Rect, p.Clip)
	a := float32(p.Color.Alpha()) / 255
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			i := y*r.cols + x
			r.bg[i] = r.bg[i].Lerp(p.Color.WithAlpha(255), a).WithAlpha(255)
			r.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(tcellColor(r.bg[i])))
		}
	}
}

func (r *Renderer) outline(p ui.Prim) {
	x0, y0, x1, y1 := r.cells(p.Rect, p.Clip)
	if x1-x0 < 2 || y1-y0 < 2 {
		return
	}
	put := func(x, y int, ch rune) {
		st := tcell.StyleDefault.Foreground(tcellColor(p.Color)).Background(tcellColor(r.bg[y*r.cols+x]))
		r.screen.SetContent(x, y, ch, nil, st)
	}
	for x := x0 + 1; x < x1-1; x++ {
		put(x, y0, tcell.RuneHLine)
		put(x, y1-1, tcell.RuneHLine)
	}
	for y := y0 + 1; y < y1-1; y++ {
		put(x0, y, tcell.RuneVLine)
		put(x1-1, y, tcell.RuneVLine)
	}
	put(x0, y0, tcell.RuneULCorner)
	put(x1-1, y0, tcell.RuneURCorner)
	put(x0, y1-1, tcell.RuneLLCorner)
	put(x1-1, y1-1, tcell.RuneLRCorner)
}

func (r *Renderer) text(p ui.Prim) {
	x, y := PixelToCell(ui.Vec2{X: p.Rect.X + CellWidth/2, Y: p.Rect.Y + p.Rect.H/2})
	if y < 0 || y >= r.rows {
		return
	}
	cx0, _, cx1, _ := r.cells(p.Clip, p.Clip)
	fg := tcellColor(p.Color)
	for _, ch := range p.Text {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if x >= cx0 && x+w <= cx1 && x < r.cols {
			st := tcell.StyleDefault.Foreground(fg).Background(tcellColor(r.bg[y*r.cols+x]))
			r.screen.SetContent(x, y, ch, nil, st)
		}
		x += w
	}
}

func tcellColor(c ui.Color) tcell.Color {
	cr, cg, cb, _ := c.Components()
	return tcell.NewRGBColor(int32(cr), int32(cg), int32(cb))
}
