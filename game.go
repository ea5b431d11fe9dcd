package main

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"
	"unicode"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/cheaters/cheatcode"
	"github.com/milk9111/cheaters/config"
	"github.com/milk9111/cheaters/field"
	"github.com/milk9111/cheaters/prefabs"
	"github.com/milk9111/cheaters/session"
	"github.com/rs/zerolog/log"
	"golang.design/x/clipboard"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	fontSize   = 16
	lineHeight = 20

	// Pickup grid, below the HUD.
	cellW      = 10
	cellH      = 20
	fieldTop   = 90
	fieldCols  = baseWidth / cellW
	fieldRows  = (baseHeight - fieldTop) / cellH
	maxPickups = 24
	spawnEvery = 90

	consoleHeight = 360
	consoleLines  = (consoleHeight - 2*lineHeight) / lineHeight
)

var (
	bgColor      = color.RGBA{R: 0x10, G: 0x12, B: 0x18, A: 0xff}
	textColor    = color.RGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff}
	dimColor     = color.RGBA{R: 0x70, G: 0x74, B: 0x80, A: 0xff}
	activeColor  = color.RGBA{R: 0x6c, G: 0xe0, B: 0x7a, A: 0xff}
	keycapColor  = color.RGBA{R: 0xf0, G: 0xd0, B: 0x50, A: 0xff}
	wordColor    = color.RGBA{R: 0x60, G: 0xc0, B: 0xf0, A: 0xff}
	consoleColor = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xd8}
)

type Game struct {
	cfg     config.Config
	session *session.Session
	field   *field.Field
	cue     *audioCue
	watcher *prefabs.Watcher

	face         text.Face
	consolePanel *ebiten.Image

	journal     *ebitenui.UI
	journalOpen bool

	input     []rune
	runes     []rune
	clipboard bool
	frames    int
}

func NewGame(cfg config.Config) (*Game, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}

	g := &Game{
		cfg:          cfg,
		cue:          newAudioCue(),
		face:         &text.GoTextFace{Source: src, Size: fontSize},
		consolePanel: ebiten.NewImage(baseWidth, consoleHeight),
	}
	g.consolePanel.Fill(consoleColor)

	if err := g.reload(); err != nil {
		return nil, err
	}

	if err := clipboard.Init(); err != nil {
		log.Warn().Err(err).Msg("clipboard unavailable, paste disabled")
	} else {
		g.clipboard = true
	}

	if cfg.Watch {
		w, err := prefabs.WatchStore(g.session.Store())
		if err != nil {
			return nil, fmt.Errorf("watch %s: %w", cfg.DataDir, err)
		}
		g.watcher = w
	}
	return g, nil
}

// reload starts a fresh session from the current data. The old session is
// kept when the new data fails to load.
func (g *Game) reload() error {
	s, err := session.New(g.cfg, g.cue)
	if err != nil {
		return err
	}
	words, err := prefabs.LoadWordList(s.Store())
	if err != nil {
		return err
	}

	g.session = s
	g.field = field.New(g.cfg.Rand(), words, maxPickups)
	g.journal = nil
	g.journalOpen = false
	g.input = g.input[:0]
	return nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.frames++
	g.pollWatcher()

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyBackquote):
		g.session.SetConsoleOpen(!g.session.ConsoleOpen())
		g.input = g.input[:0]
	case g.session.ConsoleOpen():
		g.updateConsole()
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		g.toggleJournal()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		if !g.journalOpen {
			return ebiten.Termination
		}
		g.journalOpen = false
	case g.journalOpen:
		g.journal.Update()
	default:
		g.updateField()
	}

	g.session.Update()
	return nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	select {
	case err := <-g.watcher.Errors:
		log.Warn().Err(err).Msg("data watcher")
	default:
	}

	changes := g.watcher.Pending()
	if len(changes) == 0 {
		return
	}
	log.Info().Str("path", changes[len(changes)-1].Path).Int("changes", len(changes)).Msg("data changed, restarting session")
	if err := g.reload(); err != nil {
		log.Warn().Err(err).Msg("reload failed, keeping current session")
	}
}

func (g *Game) updateConsole() {
	g.runes = ebiten.AppendInputChars(g.runes[:0])
	for _, r := range g.runes {
		if r == '`' || !unicode.IsPrint(r) {
			continue
		}
		g.input = append(g.input, r)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(g.input) > 0 {
		g.input = g.input[:len(g.input)-1]
	}
	if ctrlPressed() && inpututil.IsKeyJustPressed(ebiten.KeyV) {
		g.paste()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		g.session.Submit(string(g.input))
		g.input = g.input[:0]
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.session.SetConsoleOpen(false)
	}
}

// paste appends the first line of the clipboard to the input.
func (g *Game) paste() {
	if !g.clipboard {
		return
	}
	data := string(clipboard.Read(clipboard.FmtText))
	line, _, _ := strings.Cut(data, "\n")
	for _, r := range strings.TrimSpace(line) {
		if unicode.IsPrint(r) {
			g.input = append(g.input, r)
		}
	}
}

func ctrlPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
}

func (g *Game) updateField() {
	g.runes = ebiten.AppendInputChars(g.runes[:0])
	for _, r := range g.runes {
		if it, ok := g.field.Take(r); ok {
			g.session.Collect(it.Value)
		}
	}
	if g.frames%spawnEvery == 0 {
		g.field.Spawn(fieldCols, fieldRows, -1, -1)
	}
}

func (g *Game) toggleJournal() {
	g.journalOpen = !g.journalOpen
	if g.journalOpen {
		g.journal = NewJournalUI(g)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(bgColor)
	g.drawHUD(screen)
	g.drawField(screen)

	if g.journalOpen && g.journal != nil {
		g.journal.Draw(screen)
	}
	if g.session.ConsoleOpen() {
		g.drawConsole(screen)
	}
}

func (g *Game) drawText(dst *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, g.face, op)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	ab := g.session.Abilities()
	inv := g.session.Inventory()

	g.drawText(screen, fmt.Sprintf("Lives %d    Speed x%.2f    Words %d    Keycaps %d",
		ab.Lives, ab.SpeedMultiplier, len(inv.SortedWords()), len(inv.SortedKeycaps())), 10, 8, textColor)

	x := 10.0
	for _, kind := range cheatcode.Kinds() {
		clr := color.Color(dimColor)
		if ab.Has(kind) {
			clr = activeColor
		}
		label := "[" + kind.String() + "]"
		g.drawText(screen, label, x, 8+lineHeight, clr)
		w, _ := text.Measure(label, g.face, 0)
		x += w + 16
	}

	g.drawText(screen, "` console    tab journal    type a pickup's first letter to grab it    esc quit", 10, 8+2*lineHeight, dimColor)
}

func (g *Game) drawField(screen *ebiten.Image) {
	for _, it := range g.field.Items() {
		clr := wordColor
		if len([]rune(it.Value)) == 1 {
			clr = keycapColor
		}
		g.drawText(screen, it.Value, float64(it.X*cellW), float64(fieldTop+it.Y*cellH), clr)
	}
}

func (g *Game) drawConsole(screen *ebiten.Image) {
	top := float64(baseHeight - consoleHeight)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, top)
	screen.DrawImage(g.consolePanel, op)

	lines := g.session.Lines()
	if len(lines) > consoleLines {
		lines = lines[len(lines)-consoleLines:]
	}
	y := top + lineHeight/2
	for _, line := range lines {
		g.drawText(screen, line, 12, y, textColor)
		y += lineHeight
	}

	cursor := " "
	if (g.frames/30)%2 == 0 {
		cursor = "_"
	}
	g.drawText(screen, "> "+string(g.input)+cursor, 12, float64(baseHeight-lineHeight-lineHeight/2), activeColor)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
