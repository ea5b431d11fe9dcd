package component

// Console is the in-game terminal. Frontends append to Pending; the console
// system consumes it and writes Lines.
type Console struct {
	Open    bool
	Lines   []string
	Pending []string
	// MaxLines trims the oldest lines when positive.
	MaxLines int
}

func (c *Console) Print(lines ...string) {
	c.Lines = append(c.Lines, lines...)
	if c.MaxLines > 0 && len(c.Lines) > c.MaxLines {
		c.Lines = append([]string(nil), c.Lines[len(c.Lines)-c.MaxLines:]...)
	}
}

var ConsoleComponent = NewComponent[Console]()
