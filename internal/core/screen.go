package core

import (
	"sort"
	"strings"
)

// Half-block glyphs used to pack two pixel rows into one character cell.
const (
	glyphEmpty   = ' '
	glyphUpper   = '▀'
	glyphLower   = '▄'
	glyphFull    = '█'
	pixelsPerRow = 2
)

// textRun is a string anchored at a pixel position.
type textRun struct {
	at   Point
	text string
}

// Screen is a double-buffered monochrome framebuffer implementing Surface.
// Drawing happens on the back buffer; Flush copies it to the front buffer,
// which is what String, Row and Pixel report.
// Text is kept as an overlay rather than rasterized, since the terminal
// host prints it with real glyphs.
type Screen struct {
	width   int
	height  int
	back    []bool
	front   []bool
	texts   map[Point]string
	shown   []textRun
	flushes int
}

// NewScreen creates a new framebuffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
		back:   make([]bool, width*height),
		front:  make([]bool, width*height),
		texts:  make(map[Point]string),
	}
	return s
}

// Width returns the screen width in pixels.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in pixels.
func (s *Screen) Height() int {
	return s.height
}

// Flushes returns how many frames have been presented.
func (s *Screen) Flushes() int {
	return s.flushes
}

// Set lights or clears a back-buffer pixel.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, on bool) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.back[y*s.width+x] = on
}

// Pixel returns whether a presented pixel is lit.
// Returns false for out-of-bounds coordinates.
func (s *Screen) Pixel(x, y int) bool {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return false
	}
	return s.front[y*s.width+x]
}

// Fill paints a rectangle, clipped to the screen. Text anchored inside the
// rectangle is erased with it.
func (s *Screen) Fill(r Rectangle, on bool) error {
	br, ok := r.BottomRight()
	if !ok {
		return nil
	}
	x0 := Clamp(r.Origin.X, 0, s.width)
	x1 := Clamp(br.X+1, 0, s.width)
	y0 := Clamp(r.Origin.Y, 0, s.height)
	y1 := Clamp(br.Y+1, 0, s.height)
	for y := y0; y < y1; y++ {
		row := s.back[y*s.width : (y+1)*s.width]
		for x := x0; x < x1; x++ {
			row[x] = on
		}
	}

	for p := range s.texts {
		if r.Contains(p) {
			delete(s.texts, p)
		}
	}
	return nil
}

// Blit copies a sprite onto the back buffer. Both lit and unlit sprite
// pixels are written; anything outside the screen is clipped.
func (s *Screen) Blit(sp *Sprite, p Point) error {
	for y := 0; y < sp.Height(); y++ {
		for x := 0; x < sp.Width(); x++ {
			s.Set(p.X+x, p.Y+y, sp.At(x, y))
		}
	}
	return nil
}

// Text places a string on the overlay at p, replacing any text already
// anchored there.
func (s *Screen) Text(p Point, text string) error {
	s.texts[p] = text
	return nil
}

// Flush presents the back buffer.
func (s *Screen) Flush() error {
	copy(s.front, s.back)

	s.shown = s.shown[:0]
	for p, text := range s.texts {
		s.shown = append(s.shown, textRun{at: p, text: text})
	}
	// Map order is random; keep overlapping text stable between frames.
	sort.Slice(s.shown, func(i, j int) bool {
		a, b := s.shown[i].at, s.shown[j].at
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})

	s.flushes++
	return nil
}

// Texts returns the presented text overlay, ordered top to bottom.
func (s *Screen) Texts() []string {
	out := make([]string, len(s.shown))
	for i, run := range s.shown {
		out[i] = run.text
	}
	return out
}

// Rows returns the number of character rows String produces.
func (s *Screen) Rows() int {
	return (s.height + pixelsPerRow - 1) / pixelsPerRow
}

// Row renders one character row of the presented frame. Each character
// covers two pixel rows.
func (s *Screen) Row(row int) string {
	if row < 0 || row >= s.Rows() {
		return strings.Repeat(" ", s.width)
	}

	cells := make([]rune, s.width)
	top := row * pixelsPerRow
	for x := range s.width {
		upper := s.Pixel(x, top)
		lower := s.Pixel(x, top+1)
		switch {
		case upper && lower:
			cells[x] = glyphFull
		case upper:
			cells[x] = glyphUpper
		case lower:
			cells[x] = glyphLower
		default:
			cells[x] = glyphEmpty
		}
	}

	for _, run := range s.shown {
		if run.at.Y/pixelsPerRow != row {
			continue
		}
		for i, r := range []rune(run.text) {
			x := run.at.X + i
			if x >= 0 && x < s.width {
				cells[x] = r
			}
		}
	}
	return string(cells)
}

// String converts the presented frame to text.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow((s.width*3 + 1) * s.Rows())

	for row := range s.Rows() {
		if row > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(s.Row(row))
	}
	return sb.String()
}
