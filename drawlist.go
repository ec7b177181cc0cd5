package ui

import (
	"sync"

	"github.com/chewxy/math32"
)

// Glyph cell size of the built-in bitmap font, in pixels at scale 1.
const (
	GlyphWidth  float32 = 8
	GlyphHeight float32 = 8
)

var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint16, 0, 2048),
			CmdBuffer: make([]DrawCmd, 0, 16),
			Prims:     make([]Prim, 0, 64),
			clipStack: make([][4]float32, 0, 8),
		}
	},
}

// AcquireDrawList gets a cleared DrawList from the pool.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// PrimKind identifies a high-level primitive.
type PrimKind int

const (
	PrimFill PrimKind = iota
	PrimOutline
	PrimText
)

// Prim is a shape as the widget asked for it, before tessellation.
// Cell-based backends paint these instead of the vertex buffers.
type Prim struct {
	Kind  PrimKind
	Rect  Rect
	Color Color
	Width float32 // outline thickness
	Text  string
	Clip  Rect
}

// DrawList accumulates one frame of draw data: triangles batched by
// texture and clip rect for GPU backends, plus the primitive list.
type DrawList struct {
	CmdBuffer []DrawCmd
	VtxBuffer []Vertex
	IdxBuffer []uint16
	Prims     []Prim

	clipStack    [][4]float32
	currentClip  [4]float32
	textureID    uint32
	fontTexture  uint32
	cmdOffset    uint32
	idxCmdOffset uint32
}

// Clear resets the list, keeping capacity.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.Prims = dl.Prims[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.currentClip = [4]float32{-1e9, -1e9, 1e9, 1e9}
	dl.textureID = 0
	dl.cmdOffset = 0
	dl.idxCmdOffset = 0
}

// SetFontTexture sets the texture AddText samples glyphs from.
func (dl *DrawList) SetFontTexture(id uint32) { dl.fontTexture = id }

// PushClipRect clips subsequent primitives to r.
func (dl *DrawList) PushClipRect(r Rect) {
	dl.clipStack = append(dl.clipStack, dl.currentClip)
	dl.currentClip = [4]float32{r.X, r.Y, r.X + r.W, r.Y + r.H}
	dl.splitDraw()
}

// PopClipRect restores the previous clip rect.
func (dl *DrawList) PopClipRect() {
	n := len(dl.clipStack)
	if n == 0 {
		return
	}
	dl.currentClip = dl.clipStack[n-1]
	dl.clipStack = dl.clipStack[:n-1]
	dl.splitDraw()
}

// clip returns the current clip rect.
func (dl *DrawList) clip() Rect {
	c := dl.currentClip
	return Rect{X: c[0], Y: c[1], W: c[2] - c[0], H: c[3] - c[1]}
}

func (dl *DrawList) setTexture(id uint32) {
	if dl.textureID == id && len(dl.CmdBuffer) > 0 {
		return
	}
	dl.textureID = id
	dl.splitDraw()
}

// splitDraw closes the current command and opens a new one.
func (dl *DrawList) splitDraw() {
	if len(dl.CmdBuffer) > 0 {
		last := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		last.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.currentClip,
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.cmdOffset = uint32(len(dl.VtxBuffer))
	dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
}

// vertices appends verts and returns the index of the first one,
// relative to the current command.
func (dl *DrawList) vertices(verts ...Vertex) uint16 {
	if len(dl.CmdBuffer) == 0 {
		dl.splitDraw()
	}
	start := uint16(len(dl.VtxBuffer) - int(dl.cmdOffset))
	dl.VtxBuffer = append(dl.VtxBuffer, verts...)
	return start
}

func (dl *DrawList) quad(x0, y0, x1, y1 float32, c Color) {
	col := uint32(c)
	i := dl.vertices(
		Vertex{Pos: [2]float32{x0, y0}, Color: col},
		Vertex{Pos: [2]float32{x1, y0}, Color: col},
		Vertex{Pos: [2]float32{x1, y1}, Color: col},
		Vertex{Pos: [2]float32{x0, y1}, Color: col},
	)
	dl.IdxBuffer = append(dl.IdxBuffer, i, i+1, i+2, i, i+2, i+3)
}

// fan fills a convex polygon.
func (dl *DrawList) fan(pts []Vec2, c Color) {
	if len(pts) < 3 {
		return
	}
	col := uint32(c)
	first := uint16(0)
	for k, p := range pts {
		i := dl.vertices(Vertex{Pos: [2]float32{p.X, p.Y}, Color: col})
		if k == 0 {
			first = i
		}
	}
	for k := 1; k < len(pts)-1; k++ {
		dl.IdxBuffer = append(dl.IdxBuffer, first, first+uint16(k), first+uint16(k+1))
	}
}

// AddRect fills r.
func (dl *DrawList) AddRect(r Rect, c Color) {
	if c.Alpha() == 0 {
		return
	}
	dl.setTexture(0)
	dl.Prims = append(dl.Prims, Prim{Kind: PrimFill, Rect: r, Color: c, Clip: dl.clip()})
	dl.quad(r.X, r.Y, r.X+r.W, r.Y+r.H, c)
}

// AddRectOutline strokes the inside edge of r.
func (dl *DrawList) AddRectOutline(r Rect, c Color, thickness float32) {
	if c.Alpha() == 0 || thickness <= 0 {
		return
	}
	dl.setTexture(0)
	dl.Prims = append(dl.Prims, Prim{Kind: PrimOutline, Rect: r, Color: c, Width: thickness, Clip: dl.clip()})
	t := thickness
	dl.quad(r.X, r.Y, r.X+r.W, r.Y+t, c)
	dl.quad(r.X, r.Y+r.H-t, r.X+r.W, r.Y+r.H, c)
	dl.quad(r.X, r.Y+t, r.X+t, r.Y+r.H-t, c)
	dl.quad(r.X+r.W-t, r.Y+t, r.X+r.W, r.Y+r.H-t, c)
}

// AddLine draws a segment as a quad of the given thickness.
func (dl *DrawList) AddLine(a, b Vec2, c Color, thickness float32) {
	if c.Alpha() == 0 {
		return
	}
	d := b.Sub(a)
	l := d.Len()
	if l == 0 {
		return
	}
	dl.setTexture(0)
	n := Vec2{X: -d.Y / l, Y: d.X / l}.Mul(thickness * 0.5)
	dl.fan([]Vec2{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)}, c)
}

// bevelPath returns the outline of r with its corners treated by bevel.
func bevelPath(r Rect, bevel Bevel, radius float32) []Vec2 {
	radius = math32.Min(radius, math32.Min(r.W, r.H)*0.5)
	if bevel == BevelNone || radius <= 0 {
		return []Vec2{{r.X, r.Y}, {r.X + r.W, r.Y}, {r.X + r.W, r.Y + r.H}, {r.X, r.Y + r.H}}
	}
	if bevel == BevelSlant {
		x0, y0, x1, y1 := r.X, r.Y, r.X+r.W, r.Y+r.H
		return []Vec2{
			{x0 + radius, y0}, {x1 - radius, y0}, {x1, y0 + radius}, {x1, y1 - radius},
			{x1 - radius, y1}, {x0 + radius, y1}, {x0, y1 - radius}, {x0, y0 + radius},
		}
	}
	const segs = 6
	centers := [4]Vec2{
		{r.X + r.W - radius, r.Y + radius},
		{r.X + r.W - radius, r.Y + r.H - radius},
		{r.X + radius, r.Y + r.H - radius},
		{r.X + radius, r.Y + radius},
	}
	pts := make([]Vec2, 0, 4*(segs+1))
	for corner, c := range centers {
		start := float32(corner-1) * math32.Pi * 0.5
		for s := 0; s <= segs; s++ {
			a := start + float32(s)/segs*math32.Pi*0.5
			pts = append(pts, Vec2{c.X + math32.Cos(a)*radius, c.Y + math32.Sin(a)*radius})
		}
	}
	return pts
}

// AddShape fills r with corners shaped by bevel and radius.
func (dl *DrawList) AddShape(r Rect, bevel Bevel, radius float32, c Color) {
	if c.Alpha() == 0 || r.W <= 0 || r.H <= 0 {
		return
	}
	dl.setTexture(0)
	dl.Prims = append(dl.Prims, Prim{Kind: PrimFill, Rect: r, Color: c, Clip: dl.clip()})
	dl.fan(bevelPath(r, bevel, radius), c)
}

// AddLook draws a widget body from its look: the outline colour fills the
// shape, then the body fills it again inset by the outline width.
func (dl *DrawList) AddLook(r Rect, look Look) {
	w := look.OutlineWidth
	if w > 0 && look.Outline.Alpha() > 0 {
		dl.setTexture(0)
		dl.Prims = append(dl.Prims, Prim{Kind: PrimOutline, Rect: r, Color: look.Outline, Width: w, Clip: dl.clip()})
		dl.fan(bevelPath(r, look.Bevel, look.CornerRadius), look.Outline)
		inner := Rect{X: r.X + w, Y: r.Y + w, W: r.W - 2*w, H: r.H - 2*w}
		dl.AddShape(inner, look.Bevel, look.CornerRadius-w, look.Body)
		return
	}
	dl.AddShape(r, look.Bevel, look.CornerRadius, look.Body)
}

// TextSize returns the extent of text in the built-in font.
func TextSize(text string, scale float32) Vec2 {
	n := 0
	for range text {
		n++
	}
	return Vec2{X: float32(n) * GlyphWidth * scale, Y: GlyphHeight * scale}
}

// AddText draws text with its top-left at pos. The font atlas is a 16x6
// grid of 8x8 cells covering ASCII 32-127.
func (dl *DrawList) AddText(pos Vec2, text string, c Color, scale float32) {
	if c.Alpha() == 0 || text == "" {
		return
	}
	dl.Prims = append(dl.Prims, Prim{
		Kind:  PrimText,
		Rect:  Rect{X: pos.X, Y: pos.Y, W: TextSize(text, scale).X, H: GlyphHeight * scale},
		Color: c,
		Text:  text,
		Clip:  dl.clip(),
	})
	dl.setTexture(dl.fontTexture)
	cw, ch := GlyphWidth*scale, GlyphHeight*scale
	col := uint32(c)
	i := 0
	for _, r := range text {
		g := asciiGlyph(r)
		cell := int(g - 32)
		u0 := float32(cell%16) / 16
		v0 := float32(cell/16) / 6
		u1, v1 := u0+1.0/16, v0+1.0/6
		x := pos.X + float32(i)*cw
		k := dl.vertices(
			Vertex{Pos: [2]float32{x, pos.Y}, TexCoord: [2]float32{u0, v0}, Color: col},
			Vertex{Pos: [2]float32{x + cw, pos.Y}, TexCoord: [2]float32{u1, v0}, Color: col},
			Vertex{Pos: [2]float32{x + cw, pos.Y + ch}, TexCoord: [2]float32{u1, v1}, Color: col},
			Vertex{Pos: [2]float32{x, pos.Y + ch}, TexCoord: [2]float32{u0, v1}, Color: col},
		)
		dl.IdxBuffer = append(dl.IdxBuffer, k, k+1, k+2, k, k+2, k+3)
		i++
	}
	dl.setTexture(0)
}

// AddTextCentered draws text centred in r.
func (dl *DrawList) AddTextCentered(r Rect, text string, c Color, scale float32) {
	sz := TextSize(text, scale)
	dl.AddText(Vec2{X: r.X + (r.W-sz.X)*0.5, Y: r.Y + (r.H-sz.Y)*0.5}, text, c, scale)
}

// asciiGlyph maps r into the font's ASCII range.
func asciiGlyph(r rune) rune {
	if r >= 32 && r < 127 {
		return r
	}
	switch r {
	case '►', '▶', '→':
		return '>'
	case '◄', '◀', '←':
		return '<'
	case '●', '•':
		return '*'
	case '✓', '✔':
		return '+'
	case '—', '–':
		return '-'
	}
	return '?'
}

// Finalize closes the last command and drops empty ones.
func (dl *DrawList) Finalize() {
	if len(dl.CmdBuffer) > 0 {
		last := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		last.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}
	kept := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			kept = append(kept, cmd)
		}
	}
	dl.CmdBuffer = kept
}
