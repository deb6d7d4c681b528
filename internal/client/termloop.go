package client

import (
	"strconv"
	"strings"

	tl "github.com/JoelOtter/termloop"
	"github.com/mattn/go-runewidth"

	"github.com/yourusername/stream-chat/internal/chat"
)

// TermloopChat draws the feed with termloop. Input is collected in the
// game's tick and handed to a chat.Loop, which owns every post.
type TermloopChat struct {
	game           *tl.Game
	feed           *chat.Feed
	loop           *chat.Loop
	username       string
	input          []rune
	showTimestamps bool
}

// NewTermloopChat creates the termloop front-end for feed
func NewTermloopChat(feed *chat.Feed, loop *chat.Loop, username string, showTimestamps bool) *TermloopChat {
	game := tl.NewGame()
	game.SetEndKey(tl.KeyEsc)
	game.Screen().SetFps(30)

	level := tl.NewBaseLevel(tl.Cell{
		Bg: tl.ColorBlack,
		Fg: tl.ColorWhite,
		Ch: ' ',
	})
	game.Screen().SetLevel(level)

	tc := &TermloopChat{
		game:           game,
		feed:           feed,
		loop:           loop,
		username:       username,
		input:          []rune{},
		showTimestamps: showTimestamps,
	}
	level.AddEntity(tc)
	return tc
}

// Start runs the termloop game until ESC is pressed
func (tc *TermloopChat) Start() {
	tc.game.Start()
}

// Tick handles typing and submission
func (tc *TermloopChat) Tick(event tl.Event) {
	if event.Type != tl.EventKey {
		return
	}

	switch event.Key {
	case tl.KeyEnter:
		if _, ok := chat.Compose(string(tc.input)); ok {
			tc.loop.Send(chat.SubmitEvent{Input: string(tc.input)})
			tc.input = tc.input[:0]
		}
	case tl.KeyBackspace, tl.KeyBackspace2:
		if len(tc.input) > 0 {
			tc.input = tc.input[:len(tc.input)-1]
		}
	case tl.KeySpace:
		tc.input = append(tc.input, ' ')
	default:
		if event.Ch != 0 {
			tc.input = append(tc.input, event.Ch)
		}
	}
}

// Draw renders the title, the newest messages bottom-anchored, and the input row
func (tc *TermloopChat) Draw(screen *tl.Screen) {
	width, height := screen.Size()
	if width <= 0 || height < 4 {
		return
	}

	drawText(screen, 0, 0, " STREAM CHAT  (ESC to quit)", tl.ColorMagenta|tl.AttrBold)

	// Rows 1..height-3 hold messages, newest on the last row
	area := height - 3
	rows := layoutRows(tc.feed.Tail(area), width, tc.showTimestamps)
	if len(rows) > area {
		rows = rows[len(rows)-area:]
	}
	top := 1 + area - len(rows)
	for i, row := range rows {
		drawRow(screen, top+i, row)
	}

	drawText(screen, 0, height-2, strings.Repeat("─", width), tl.ColorWhite)
	drawText(screen, 0, height-1, "> "+string(tc.input)+"_", tl.ColorWhite)
}

// Position returns the entity position
func (tc *TermloopChat) Position() (int, int) {
	return 0, 0
}

// Size returns the entity size
func (tc *TermloopChat) Size() (int, int) {
	return 0, 0
}

// styledRune is one terminal cell's worth of a message
type styledRune struct {
	ch rune
	fg tl.Attr
}

// layoutRows wraps each message to width, keeping the username colored
func layoutRows(messages []chat.Message, width int, showTimestamps bool) [][]styledRune {
	var rows [][]styledRune
	for _, msg := range messages {
		var line []styledRune
		if showTimestamps {
			line = appendStyled(line, msg.PostedAt.Format("15:04")+" ", tl.ColorWhite)
		}
		line = appendStyled(line, msg.Username, termColor(msg.Color())|tl.AttrBold)
		line = appendStyled(line, msg.Body(), tl.ColorWhite)
		rows = append(rows, wrapRow(line, width)...)
	}
	return rows
}

func appendStyled(dst []styledRune, s string, fg tl.Attr) []styledRune {
	for _, r := range s {
		dst = append(dst, styledRune{ch: r, fg: fg})
	}
	return dst
}

// wrapRow splits a line into rows no wider than width cells
func wrapRow(line []styledRune, width int) [][]styledRune {
	var rows [][]styledRune
	var row []styledRune
	used := 0
	for _, sr := range line {
		w := runewidth.RuneWidth(sr.ch)
		if used+w > width && len(row) > 0 {
			rows = append(rows, row)
			row, used = nil, 0
		}
		row = append(row, sr)
		used += w
	}
	return append(rows, row)
}

func drawRow(screen *tl.Screen, y int, row []styledRune) {
	x := 0
	for _, sr := range row {
		screen.RenderCell(x, y, &tl.Cell{Fg: sr.fg, Ch: sr.ch})
		x += runewidth.RuneWidth(sr.ch)
	}
}

func drawText(screen *tl.Screen, x, y int, s string, fg tl.Attr) {
	for _, r := range s {
		screen.RenderCell(x, y, &tl.Cell{Fg: fg, Ch: r})
		x += runewidth.RuneWidth(r)
	}
}

// baseColors are the eight-color terminal attributes with their RGB values
var baseColors = []struct {
	attr    tl.Attr
	r, g, b int
}{
	{tl.ColorRed, 255, 0, 0},
	{tl.ColorGreen, 0, 255, 0},
	{tl.ColorYellow, 255, 255, 0},
	{tl.ColorBlue, 0, 0, 255},
	{tl.ColorMagenta, 255, 0, 255},
	{tl.ColorCyan, 0, 255, 255},
	{tl.ColorWhite, 255, 255, 255},
}

// termColor maps a palette color to the nearest base terminal color
func termColor(c chat.Color) tl.Attr {
	v, err := strconv.ParseUint(strings.TrimPrefix(string(c), "#"), 16, 32)
	if err != nil {
		return tl.ColorWhite
	}
	r, g, b := int(v>>16&0xFF), int(v>>8&0xFF), int(v&0xFF)

	best, bestDist := tl.ColorWhite, -1
	for _, bc := range baseColors {
		dr, dg, db := r-bc.r, g-bc.g, b-bc.b
		dist := dr*dr + dg*dg + db*db
		if bestDist < 0 || dist < bestDist {
			best, bestDist = bc.attr, dist
		}
	}
	return best
}
