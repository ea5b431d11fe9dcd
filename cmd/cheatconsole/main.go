// Command cheatconsole runs a cheat console session in the terminal.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep/speaker"
	"github.com/milk9111/cheaters/cheatcode"
	"github.com/milk9111/cheaters/config"
	"github.com/milk9111/cheaters/field"
	"github.com/milk9111/cheaters/prefabs"
	"github.com/milk9111/cheaters/session"
	"github.com/milk9111/cheaters/sfx"
	"github.com/rs/zerolog/log"
)

const (
	hudRows       = 3
	consoleRows   = 12
	maxPickups    = 16
	spawnInterval = 1500 * time.Millisecond
)

var (
	styleText    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleActive  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleKeycap  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleWord    = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleConsole = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	stylePrompt  = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorGreen)
)

// speakerCue plays synthesized cues through the beep speaker.
type speakerCue struct {
	ready bool
}

func newSpeakerCue() *speakerCue {
	if err := speaker.Init(sfx.SampleRate, sfx.SampleRate.N(time.Second/10)); err != nil {
		log.Warn().Err(err).Msg("audio unavailable")
		return &speakerCue{}
	}
	return &speakerCue{ready: true}
}

func (c *speakerCue) Play(name string) {
	if !c.ready {
		return
	}
	s, err := sfx.New(name, sfx.SampleRate)
	if err != nil {
		log.Warn().Err(err).Str("cue", name).Msg("synthesize cue")
		return
	}
	speaker.Play(s)
}

func (c *speakerCue) Close() {
	if c.ready {
		speaker.Close()
	}
}

type Console struct {
	screen        tcell.Screen
	width, height int

	session *session.Session
	field   *field.Field
	cue     *speakerCue

	input     []rune
	lastSpawn time.Time
}

func NewConsole(cfg config.Config) (*Console, error) {
	cue := newSpeakerCue()
	s, err := session.New(cfg, cue)
	if err != nil {
		cue.Close()
		return nil, err
	}
	words, err := prefabs.LoadWordList(s.Store())
	if err != nil {
		cue.Close()
		return nil, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		cue.Close()
		return nil, err
	}
	if err := screen.Init(); err != nil {
		cue.Close()
		return nil, err
	}

	c := &Console{
		screen:    screen,
		session:   s,
		field:     field.New(cfg.Rand(), words, maxPickups),
		cue:       cue,
		lastSpawn: time.Now(),
	}
	c.width, c.height = screen.Size()
	s.SetConsoleOpen(true)
	return c, nil
}

func (c *Console) fieldSize() (int, int) {
	rows := c.height - hudRows
	if c.session.ConsoleOpen() {
		rows -= consoleRows
	}
	return c.width, max(rows, 0)
}

func (c *Console) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune && ev.Rune() == '`' {
			c.session.SetConsoleOpen(!c.session.ConsoleOpen())
			c.input = c.input[:0]
			c.field.Clamp(c.fieldSize())
			return true
		}
		if c.session.ConsoleOpen() {
			c.handleConsoleKey(ev)
			return true
		}
		switch ev.Key() {
		case tcell.KeyEscape:
			return false
		case tcell.KeyRune:
			if it, ok := c.field.Take(ev.Rune()); ok {
				c.session.Collect(it.Value)
			}
		}

	case *tcell.EventResize:
		c.width, c.height = c.screen.Size()
		c.field.Clamp(c.fieldSize())
		c.screen.Sync()
	}
	return true
}

func (c *Console) handleConsoleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		c.session.SetConsoleOpen(false)
	case tcell.KeyEnter:
		c.session.Submit(string(c.input))
		c.input = c.input[:0]
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(c.input) > 0 {
			c.input = c.input[:len(c.input)-1]
		}
	case tcell.KeyRune:
		c.input = append(c.input, ev.Rune())
	}
}

func (c *Console) drawString(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		if x >= c.width {
			break
		}
		c.screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

func (c *Console) draw() {
	c.screen.Clear()

	ab := c.session.Abilities()
	c.drawString(0, 0, fmt.Sprintf("Lives %d  Speed x%.2f", ab.Lives, ab.SpeedMultiplier), styleText)
	x := 0
	for _, kind := range cheatcode.Kinds() {
		style := styleDim
		if ab.Has(kind) {
			style = styleActive
		}
		x = c.drawString(x, 1, "["+kind.String()+"]", style) + 1
	}
	c.drawString(0, 2, "` console  esc close/quit  type a pickup's first letter to grab it", styleDim)

	for _, it := range c.field.Items() {
		style := styleWord
		if len([]rune(it.Value)) == 1 {
			style = styleKeycap
		}
		c.drawString(it.X, hudRows+it.Y, it.Value, style)
	}

	if c.session.ConsoleOpen() {
		c.drawConsole()
	}
	c.screen.Show()
}

func (c *Console) drawConsole() {
	top := c.height - consoleRows
	for y := top; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			c.screen.SetContent(x, y, ' ', nil, styleConsole)
		}
	}

	lines := c.session.Lines()
	visible := consoleRows - 1
	if len(lines) > visible {
		lines = lines[len(lines)-visible:]
	}
	for i, line := range lines {
		c.drawString(0, top+i, line, styleConsole)
	}

	end := c.drawString(0, c.height-1, "> "+string(c.input), stylePrompt)
	c.screen.ShowCursor(end, c.height-1)
}

func (c *Console) run() {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := c.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev := <-events:
			if !c.handleInput(ev) {
				return
			}

		case <-ticker.C:
			if time.Since(c.lastSpawn) > spawnInterval {
				w, h := c.fieldSize()
				c.field.Spawn(w, h, -1, -1)
				c.lastSpawn = time.Now()
			}
			c.session.Update()
			if !c.session.ConsoleOpen() {
				c.screen.HideCursor()
			}
			c.draw()
		}
	}
}

func (c *Console) cleanup() {
	c.screen.Fini()
	c.cue.Close()
}

func main() {
	cfg, err := config.Load("cheatconsole", os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	// The terminal belongs to tcell, so logs go to -log-file or nowhere.
	closer, err := cfg.SetupLogger(nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closer.Close()

	console, err := NewConsole(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer console.cleanup()

	console.run()
}
