// Package opengl draws ui draw lists with OpenGL 4.1 and feeds GLFW input
// into a ui event queue.
package opengl

import (
	"encoding/hex"
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	ui "github.com/go-theft-auto/koixui"
)

// Renderer implements ui.Renderer with OpenGL.
type Renderer struct {
	program     uint32
	vao         uint32
	vbo, ebo    uint32
	fontTex     uint32
	projLoc     int32
	samplerLoc  int32
	texturedLoc int32
	width       int
	height      int
}

const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aUV;
layout (location = 2) in vec4 aColor;

out vec2 uv;
out vec4 tint;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
    uv = aUV;
    tint = aColor;
}
` + "\x00"

// The font atlas is single channel: red is coverage.
const fragmentShaderSource = `
#version 410 core
in vec2 uv;
in vec4 tint;

out vec4 fragColor;

uniform sampler2D atlas;
uniform bool textured;

void main() {
    if (textured) {
        fragColor = vec4(tint.rgb, tint.a * texture(atlas, uv).r);
    } else {
        fragColor = tint;
    }
}
` + "\x00"

// NewRenderer compiles the shaders and uploads the font atlas. A GL
// context must be current.
func NewRenderer(width, height int) (*Renderer, error) {
	r := &Renderer{width: width, height: height}

	var err error
	r.program, err = linkProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("opengl renderer: %w", err)
	}
	r.projLoc = gl.GetUniformLocation(r.program, gl.Str("projection\x00"))
	r.samplerLoc = gl.GetUniformLocation(r.program, gl.Str("atlas\x00"))
	r.texturedLoc = gl.GetUniformLocation(r.program, gl.Str("textured\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	stride := int32(unsafe.Sizeof(ui.Vertex{}))
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, unsafe.Offsetof(ui.Vertex{}.TexCoord))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 4, gl.UNSIGNED_BYTE, true, stride, unsafe.Offsetof(ui.Vertex{}.Color))
	gl.EnableVertexAttribArray(2)
	gl.BindVertexArray(0)

	r.fontTex, err = uploadFont()
	if err != nil {
		r.Delete()
		return nil, fmt.Errorf("opengl renderer: %w", err)
	}
	return r, nil
}

// FontTextureID returns the font atlas texture.
func (r *Renderer) FontTextureID() uint32 { return r.fontTex }

// Resize sets the framebuffer size used for projection and scissoring.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// glState is the GL state Render changes and puts back.
type glState struct {
	program                     int32
	blendSrc, blendDst          int32
	scissorBox                  [4]int32
	blend, depth, cull, scissor bool
}

func saveState() glState {
	var s glState
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &s.program)
	gl.GetIntegerv(gl.BLEND_SRC_ALPHA, &s.blendSrc)
	gl.GetIntegerv(gl.BLEND_DST_ALPHA, &s.blendDst)
	gl.GetIntegerv(gl.SCISSOR_BOX, &s.scissorBox[0])
	s.blend = gl.IsEnabled(gl.BLEND)
	s.depth = gl.IsEnabled(gl.DEPTH_TEST)
	s.cull = gl.IsEnabled(gl.CULL_FACE)
	s.scissor = gl.IsEnabled(gl.SCISSOR_TEST)
	return s
}

func (s glState) restore() {
	gl.UseProgram(uint32(s.program))
	gl.BlendFunc(uint32(s.blendSrc), uint32(s.blendDst))
	toggle(gl.BLEND, s.blend)
	toggle(gl.DEPTH_TEST, s.depth)
	toggle(gl.CULL_FACE, s.cull)
	toggle(gl.SCISSOR_TEST, s.scissor)
	gl.Scissor(s.scissorBox[0], s.scissorBox[1], s.scissorBox[2], s.scissorBox[3])
	gl.BindVertexArray(0)
}

func toggle(cap uint32, on bool) {
	if on {
		gl.Enable(cap)
	} else {
		gl.Disable(cap)
	}
}

// Render draws a finalized draw list.
func (r *Renderer) Render(dl *ui.DrawList) error {
	if dl == nil || len(dl.VtxBuffer) == 0 {
		return nil
	}
	saved := saveState()
	defer saved.restore()

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)

	gl.UseProgram(r.program)
	proj := ortho(float32(r.width), float32(r.height))
	gl.UniformMatrix4fv(r.projLoc, 1, false, &proj[0])
	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(r.samplerLoc, 0)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(dl.VtxBuffer)*int(unsafe.Sizeof(ui.Vertex{})), gl.Ptr(dl.VtxBuffer), gl.STREAM_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(dl.IdxBuffer)*2, gl.Ptr(dl.IdxBuffer), gl.STREAM_DRAW)

	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount == 0 || !r.scissor(cmd.ClipRect) {
			continue
		}
		if cmd.TextureID != 0 {
			gl.BindTexture(gl.TEXTURE_2D, cmd.TextureID)
			gl.Uniform1i(r.texturedLoc, 1)
		} else {
			gl.Uniform1i(r.texturedLoc, 0)
		}
		gl.DrawElementsBaseVertexWithOffset(gl.TRIANGLES, int32(cmd.ElemCount), gl.UNSIGNED_SHORT,
			uintptr(cmd.IndexOffset)*2, int32(cmd.VertexOffset))
	}
	return nil
}

// scissor sets the GL scissor box from a top-left-origin clip rect. It
// reports false when nothing of the rect is on screen.
func (r *Renderer) scissor(clip [4]float32) bool {
	x0 := max(clip[0], 0)
	y0 := max(clip[1], 0)
	x1 := min(clip[2], float32(r.width))
	y1 := min(clip[3], float32(r.height))
	if x1 <= x0 || y1 <= y0 {
		return false
	}
	gl.Scissor(int32(x0), int32(float32(r.height)-y1), int32(x1-x0), int32(y1-y0))
	return true
}

// Delete releases the GL objects.
func (r *Renderer) Delete() {
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// glyphs holds the 8x8 font as fixed-width records: the character
// followed by eight rows in hex, most significant bit leftmost.
const glyphs = "" +
	" 0000000000000000!1818181818001800\"6666000000000000#247E24247E240000$183E603C067C1800%6264081026460000" +
	"&386C3876DCCC7600'1818300000000000(0C18303030180C00)30180C0C0C183000*00663CFF3C660000+0018187E18180000" +
	",0000000000181830-0000007E00000000.0000000000181800/02060C183060400003C666E7666663C0011838181818187E00" +
	"23C66061C30607E0033C66061C06663C0040C1C3C6C7E0C0C0057E607C0606663C0061C30607C66663C0077E060C1830303000" +
	"83C66663C66663C0093C66663E060C3800:0000181800181800;0000181800181830<060C1830180C0600=00007E007E000000" +
	">6030180C18306000?3C66061C18001800@3C666E6A6E603C00A183C66667E666600B7C66667C66667C00C3C66606060663C00" +
	"D786C6666666C7800E7E60607C60607E00F7E60607C60606000G3C66606E66663E00H6666667E66666600I7E18181818187E00" +
	"J3E0C0C0C0C6C3800K666C7870786C6600L6060606060607E00M63777F6B63636300N66767E7E6E666600O3C66666666663C00" +
	"P7C66667C60606000Q3C6666666A6C3600R7C66667C6C666600S3C66603C06663C00T7E18181818181800U6666666666663C00" +
	"V66666666663C1800W6363636B7F776300X66663C183C666600Y6666663C18181800Z7E060C1830607E00[1C18181818181C00" +
	"\\406030180C060200]3818181818183800^183C660000000000_0000000000007E00`30180C0000000000a00003C063E663E00" +
	"b60607C6666667C00c00003C6660663C00d06063E6666663E00e00003C667E603C00f1C30307C30303000g00003E66663E063C" +
	"h60607C6666666600i1800381818183C00j0C001C0C0C0C6C38k6060666C786C6600l3818181818183C00m0000767F6B6B6300" +
	"n00007C6666666600o00003C6666663C00p00007C66667C6060q00003E66663E0606r00006C7660606000s00003E603C067C00" +
	"t30307C3030301C00u0000666666663E00v00006666663C1800w0000636B6B7F3600x0000663C183C6600y00006666663E063C" +
	"z00007E0C18307E00{0E18187018180E00|1818181818181800}7018180E18187000~000076DC00000000"

const glyphRecord = 1 + 16

// atlasBitmap decodes glyphs into a 16x6 grid of 8x8 cells covering
// ASCII 32-127, one coverage byte per pixel.
func atlasBitmap() ([]byte, int, int, error) {
	const w, h = 16 * 8, 6 * 8
	data := make([]byte, w*h)
	for i := 0; i+glyphRecord <= len(glyphs); i += glyphRecord {
		ch := glyphs[i]
		rows, err := hex.DecodeString(glyphs[i+1 : i+glyphRecord])
		if err != nil {
			return nil, 0, 0, fmt.Errorf("glyph %q: %w", ch, err)
		}
		cell := int(ch) - 32
		if cell < 0 || cell >= 96 {
			continue
		}
		cx, cy := cell%16*8, cell/16*8
		for y, bits := range rows {
			for x := range 8 {
				if bits&(0x80>>x) != 0 {
					data[(cy+y)*w+cx+x] = 0xff
				}
			}
		}
	}
	return data, w, h, nil
}

func uploadFont() (uint32, error) {
	data, w, h, err := atlasBitmap()
	if err != nil {
		return 0, err
	}
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(w), int32(h), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(data))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex, nil
}

func compile(kind uint32, src string) (uint32, error) {
	sh := gl.CreateShader(kind)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(sh, 1, csrc, nil)
	free()
	gl.CompileShader(sh)
	var ok int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &ok)
	if ok == gl.FALSE {
		var n int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &n)
		msg := make([]byte, n+1)
		gl.GetShaderInfoLog(sh, n, nil, &msg[0])
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("compile shader: %s", msg)
	}
	return sh, nil
}

func linkProgram(vs, fs string) (uint32, error) {
	v, err := compile(gl.VERTEX_SHADER, vs)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(v)
	f, err := compile(gl.FRAGMENT_SHADER, fs)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(f)

	p := gl.CreateProgram()
	gl.AttachShader(p, v)
	gl.AttachShader(p, f)
	gl.LinkProgram(p)
	var ok int32
	gl.GetProgramiv(p, gl.LINK_STATUS, &ok)
	if ok == gl.FALSE {
		var n int32
		gl.GetProgramiv(p, gl.INFO_LOG_LENGTH, &n)
		msg := make([]byte, n+1)
		gl.GetProgramInfoLog(p, n, nil, &msg[0])
		gl.DeleteProgram(p)
		return 0, fmt.Errorf("link program: %s", msg)
	}
	return p, nil
}

// ortho maps pixel coordinates with a top-left origin to clip space.
func ortho(w, h float32) [16]float32 {
	return [16]float32{
		2 / w, 0, 0, 0,
		0, -2 / h, 0, 0,
		0, 0, -1, 0,
		-1, 1, 0, 1,
	}
}
