package term

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

// hudRows is the number of rows kept free at the top for the status line.
const hudRows = 1

// Surface draws world rectangles onto a terminal, one cell per block of
// world units. The top row is left to the HUD.
type Surface struct {
	screen      tcell.Screen
	worldWidth  float64
	worldHeight float64
	background  tcell.Style
}

// NewSurface maps a world of the given size onto screen.
func NewSurface(screen tcell.Screen, worldWidth, worldHeight int) *Surface {
	return &Surface{
		screen:      screen,
		worldWidth:  float64(worldWidth),
		worldHeight: float64(worldHeight),
		background:  tcell.StyleDefault.Background(tcell.ColorBlack),
	}
}

// Clear blanks the whole screen.
func (s *Surface) Clear() {
	s.screen.Clear()
	s.screen.Fill(' ', s.background)
}

// FillRect paints every cell whose centre lies inside the rectangle.
func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	cols, rows := s.arena()
	if cols <= 0 || rows <= 0 {
		return
	}
	cellW := s.worldWidth / float64(cols)
	cellH := s.worldHeight / float64(rows)

	x0 := int(math.Ceil(x/cellW - 0.5))
	x1 := int(math.Floor((x+w)/cellW - 0.5))
	y0 := int(math.Ceil(y/cellH - 0.5))
	y1 := int(math.Floor((y+h)/cellH - 0.5))

	style := tcell.StyleDefault.Background(toTcell(c))
	for row := max(y0, 0); row <= min(y1, rows-1); row++ {
		for col := max(x0, 0); col <= min(x1, cols-1); col++ {
			s.screen.SetContent(col, row+hudRows, ' ', nil, style)
		}
	}
}

// arena returns the number of columns and rows available to the world.
func (s *Surface) arena() (cols, rows int) {
	w, h := s.screen.Size()
	return w, h - hudRows
}

// DrawText writes str at column x of row y.
func (s *Surface) DrawText(x, y int, str string, style tcell.Style) {
	for i, r := range []rune(str) {
		s.screen.SetContent(x+i, y, r, nil, style)
	}
}

func toTcell(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
