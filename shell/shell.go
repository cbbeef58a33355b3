// Package shell is the terminal presentation layer: start form, round preview banner,
// end screen with trophies and leaderboard, and the status line.
//
// The shell subscribes to the input bus only while the start or end screen is visible,
// so minigames never see form keystrokes.
package shell

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/party-arcade/config"
	"github.com/lixenwraith/party-arcade/constants"
	"github.com/lixenwraith/party-arcade/input"
	"github.com/lixenwraith/party-arcade/leaderboard"
	"github.com/lixenwraith/party-arcade/render"
	"github.com/lixenwraith/party-arcade/round"
)

// Controller receives the player's decisions
type Controller interface {
	Submit(name string, cfg config.RunConfig) error
	Restart() error
}

const screenCount = 3

// Shell implements round.UI over a tcell screen
type Shell struct {
	screen  tcell.Screen
	bus     *input.Bus
	ctrl    Controller
	palette render.Palette
	form    *Form

	visible [screenCount]bool
	subs    [screenCount]input.Subscription

	roundName  string
	countdown  time.Duration
	round      int
	total      int
	score      int
	scoreTotal int
	trophies   []round.Trophy
	board      []leaderboard.Entry
	highlight  int

	status func() string
	paused bool
}

// New creates a shell with the start form prefilled from name and cfg
func New(screen tcell.Screen, bus *input.Bus, name string, cfg config.RunConfig) *Shell {
	return &Shell{
		screen:    screen,
		bus:       bus,
		palette:   render.PaletteFor(cfg.Theme),
		form:      NewForm(name, cfg),
		highlight: -1,
	}
}

// SetController connects the form to the orchestrator
func (s *Shell) SetController(c Controller) { s.ctrl = c }

// SetStatus installs the debug status line source; nil hides the line
func (s *Shell) SetStatus(fn func() string) { s.status = fn }

// SetPaused shows or hides the pause marker
func (s *Shell) SetPaused(on bool) { s.paused = on }

// Form exposes the start form state
func (s *Shell) Form() *Form { return s.form }

// Visible reports whether screen sc is shown
func (s *Shell) Visible(sc round.Screen) bool {
	return int(sc) < screenCount && s.visible[sc]
}

// Show makes a screen visible; start and end screens take keyboard input while shown
func (s *Shell) Show(sc round.Screen) {
	if int(sc) >= screenCount || s.visible[sc] {
		return
	}
	s.visible[sc] = true
	switch sc {
	case round.ScreenStart:
		s.subs[sc] = s.bus.Subscribe(input.KindKeyDown, s.onStartKey)
	case round.ScreenEnd:
		s.subs[sc] = s.bus.Subscribe(input.KindKeyDown, s.onEndKey)
	}
}

// Hide removes a screen and its input subscription
func (s *Shell) Hide(sc round.Screen) {
	if int(sc) >= screenCount || !s.visible[sc] {
		return
	}
	s.visible[sc] = false
	if s.subs[sc].Valid() {
		s.bus.Unsubscribe(s.subs[sc])
		s.subs[sc] = input.Subscription{}
	}
}

func (s *Shell) SetRoundName(name string)        { s.roundName = name }
func (s *Shell) SetCountdown(left time.Duration) { s.countdown = left }
func (s *Shell) SetProgress(n, total int)        { s.round, s.total = n, total }
func (s *Shell) SetFinalScore(score, total int)  { s.score, s.scoreTotal = score, total }
func (s *Shell) SetTrophies(t []round.Trophy)    { s.trophies = t }

func (s *Shell) SetLeaderboard(entries []leaderboard.Entry, highlight int) {
	s.board = entries
	s.highlight = highlight
}

func (s *Shell) onStartKey(ev input.Event) {
	if !s.form.Handle(ev) || s.ctrl == nil {
		return
	}
	cfg := s.form.Config
	if err := s.ctrl.Submit(s.form.Value(), cfg); err != nil {
		s.form.Err = errorText(err)
		return
	}
	s.form.Err = ""
	s.palette = render.PaletteFor(cfg.Theme)
}

func (s *Shell) onEndKey(ev input.Event) {
	if s.ctrl == nil {
		return
	}
	if ev.Key == input.KeyEnter || (ev.Key == input.KeyRune && (ev.Rune == 'r' || ev.Rune == 'R')) {
		if err := s.ctrl.Restart(); err != nil {
			log.Printf("shell: restart: %v", err)
		}
	}
}

func errorText(err error) string {
	if errors.Is(err, round.ErrInvalidName) {
		return constants.ErrorNameText
	}
	return err.Error()
}

func (s *Shell) style(fg tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(fg).Background(s.palette.Background)
}

// Draw paints visible overlays and the status line on top of the frame
func (s *Shell) Draw() {
	full := Full(s.screen)
	if s.visible[round.ScreenStart] {
		s.drawStart(full)
	}
	if s.visible[round.ScreenPreview] {
		s.drawPreview(full)
	}
	if s.visible[round.ScreenEnd] {
		s.drawEnd(full)
	}
	s.drawStatus(full)
}

func (s *Shell) drawStart(full Region) {
	rows := min(len(s.board), constants.LeaderboardSize)
	box := full.Center(64, 14+rows)
	body := box.Modal(ModalOpts{
		Title:  constants.TitleText,
		Hint:   constants.StartHintText,
		Border: LineDouble,
		Frame:  s.style(s.palette.Accent),
		Fill:   s.style(s.palette.Text),
	})

	f := s.form
	label := func(field Field) tcell.Style {
		if f.Focus == field {
			return s.style(s.palette.Highlight).Reverse(true)
		}
		return s.style(s.palette.Text)
	}

	name := string(f.Name)
	if f.Focus == FieldName {
		name += "_"
	}
	body.Text(2, 1, "Name:", label(FieldName))
	body.Text(8, 1, name, s.style(s.palette.Player))

	checks := []struct {
		field Field
		on    bool
		text  string
	}{
		{FieldInverted, f.Config.Inverted, "Inverted controls"},
		{FieldOneLife, f.Config.OneLife, "One life"},
		{FieldGlitch, f.Config.Glitch, "Glitch mode"},
	}
	for i, c := range checks {
		body.Checkbox(2, 3+i, c.on, label(c.field))
		body.Text(6, 3+i, c.text, label(c.field))
	}
	body.Text(2, 7, fmt.Sprintf("Theme: < %s >", f.Config.Theme), label(FieldTheme))
	body.Text(2, 9, "[ START ]", label(FieldStart))

	if f.Err != "" {
		body.Text(2, 10, f.Err, s.style(s.palette.Hazard))
	}
	if rows > 0 {
		body.TextCenter(11, "HIGH SCORES", s.style(s.palette.Accent))
		s.drawBoard(body.Sub(0, 12, body.W, rows), -1)
	}
}

func (s *Shell) drawPreview(full Region) {
	box := full.Center(40, 5)
	body := box.Modal(ModalOpts{
		Border: LineRounded,
		Frame:  s.style(s.palette.Accent),
		Fill:   s.style(s.palette.Text),
	})
	body.TextCenter(0, constants.PreviewPrefix+s.roundName, s.style(s.palette.Goal).Bold(true))
	line := fmt.Sprintf("Round %d/%d   %.1fs", s.round, s.total, s.countdown.Seconds())
	body.TextCenter(2, line, s.style(s.palette.Text))
}

func (s *Shell) drawEnd(full Region) {
	rows := min(len(s.board), constants.LeaderboardSize)
	box := full.Center(44, 9+len(s.trophies)+rows)
	body := box.Modal(ModalOpts{
		Title:  "GAME OVER",
		Hint:   constants.EndHintText,
		Border: LineDouble,
		Frame:  s.style(s.palette.Accent),
		Fill:   s.style(s.palette.Text),
	})

	body.TextCenter(1, fmt.Sprintf("FINAL SCORE  %d / %d", s.score, s.scoreTotal), s.style(s.palette.Goal).Bold(true))
	for i, t := range s.trophies {
		body.TextCenter(3+i, "* "+string(t)+" *", s.style(s.palette.Highlight))
	}
	y := 4 + len(s.trophies)
	body.TextCenter(y, "HIGH SCORES", s.style(s.palette.Accent))
	s.drawBoard(body.Sub(0, y+1, body.W, rows), s.highlight)
}

// drawBoard lists entries, marking row highlight
func (s *Shell) drawBoard(r Region, highlight int) {
	for i, e := range s.board {
		if i >= r.H {
			break
		}
		marker, st := ' ', s.style(s.palette.Text)
		if i == highlight {
			marker, st = constants.HighlightMarker, s.style(s.palette.Highlight).Bold(true)
		}
		r.TextCenter(i, fmt.Sprintf("%c %2d. %-8s %3d", marker, i+1, e.Name, e.Score), st)
	}
}

func (s *Shell) drawStatus(full Region) {
	if full.H == 0 {
		return
	}
	bar := full.Sub(0, full.H-1, full.W, 1)
	if s.status != nil {
		bar.Fill(s.style(s.palette.Dim))
		bar.Text(1, 0, s.status(), s.style(s.palette.Dim))
	}
	if s.paused {
		bar.TextCenter(0, constants.PausedText, s.style(s.palette.Background).Background(s.palette.Highlight))
	}
}
