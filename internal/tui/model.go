// Package tui is a terminal front end for a game.Session. It only maps keys
// to session calls and renders what the session exposes.
package tui

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/evanofslack/hello-wordl/internal/game"
)

var (
	tileStyle     = lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("15"))
	correctStyle  = tileStyle.Background(lipgloss.Color("2"))
	presentStyle  = tileStyle.Background(lipgloss.Color("3"))
	absentStyle   = tileStyle.Background(lipgloss.Color("8"))
	pendingStyle  = tileStyle.Background(lipgloss.Color("236"))
	emptyStyle    = tileStyle.Foreground(lipgloss.Color("240"))
	titleStyle    = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	feedbackStyle = lipgloss.NewStyle().Faint(true)
	helpStyle     = lipgloss.NewStyle().Faint(true).MarginTop(1)
)

var keyboardRows = []string{"qwertyuiop", "asdfghjkl", "zxcvbnm"}

// publishTimeout bounds a share call.
const publishTimeout = 2 * time.Second

// Model adapts a Session to bubbletea.
type Model struct {
	Session   *game.Session
	Publisher game.Publisher
	ShareBase string

	err error
}

// New returns a Model for sess.
func New(sess *game.Session, pub game.Publisher, shareBase string) *Model {
	return &Model{Session: sess, Publisher: pub, ShareBase: shareBase}
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "ctrl+s":
		m.share(func(ctx context.Context) error { return m.Session.ShareResults(ctx, m.Publisher) })
		return m, nil
	case "ctrl+l":
		m.share(func(ctx context.Context) error { return m.Session.ShareLink(ctx, m.Publisher, m.ShareBase) })
		return m, nil
	}

	name := key.String()
	if key.Type == tea.KeyRunes && len(key.Runes) == 1 {
		name = string(key.Runes[0])
	}
	if err := m.Session.HandleKey(name); err != nil {
		log.Error().Err(err).Msg("cannot start next game")
		m.err = err
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) share(fn func(ctx context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()
	if err := fn(ctx); err != nil {
		log.Warn().Err(err).Msg("share failed")
	}
}

// Err is the fatal error that ended the program, if any.
func (m *Model) Err() error { return m.err }

func (m *Model) View() string {
	s := m.Session
	var b strings.Builder

	b.WriteString(titleStyle.Render(s.Config().Name))
	b.WriteByte('\n')

	rows := s.Rows()
	for i := 0; i < s.MaxGuesses(); i++ {
		switch {
		case i < len(rows):
			b.WriteString(renderRow(rows[i]))
		case i == len(rows) && !s.Phase().Over():
			b.WriteString(renderPending(s.CurrentGuess(), s.WordLength()))
		default:
			b.WriteString(renderPending("", s.WordLength()))
		}
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(renderKeyboard(s.LetterInfo()))
	b.WriteByte('\n')

	if h := s.Hint(); h != "" {
		b.WriteString(hintStyle.Render(h))
		b.WriteByte('\n')
	}
	if f := s.Feedback(); f != "" && !s.Phase().Over() {
		b.WriteString(feedbackStyle.Render(f))
		b.WriteByte('\n')
	}
	b.WriteString(helpStyle.Render("enter: guess • ctrl+s: share results • ctrl+l: share link • esc: quit"))
	return b.String()
}

func styleFor(c game.Clue) lipgloss.Style {
	switch c {
	case game.ClueCorrect:
		return correctStyle
	case game.CluePresent:
		return presentStyle
	case game.ClueAbsent:
		return absentStyle
	}
	return emptyStyle
}

func renderRow(row game.Clues) string {
	tiles := make([]string, len(row))
	for i, lc := range row {
		tiles[i] = styleFor(lc.Clue).Render(strings.ToUpper(string(lc.Letter)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}

func renderPending(guess string, length int) string {
	tiles := make([]string, length)
	for i := range tiles {
		if i < len(guess) {
			tiles[i] = pendingStyle.Render(strings.ToUpper(guess[i : i+1]))
		} else {
			tiles[i] = emptyStyle.Render("·")
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}

func renderKeyboard(info map[byte]game.Clue) string {
	lines := make([]string, len(keyboardRows))
	for i, row := range keyboardRows {
		keys := make([]string, len(row))
		for j := 0; j < len(row); j++ {
			c := row[j]
			style := tileStyle
			if clue, ok := info[c]; ok {
				style = styleFor(clue)
			}
			keys[j] = style.Render(strings.ToUpper(string(c)))
		}
		lines[i] = lipgloss.JoinHorizontal(lipgloss.Top, keys...)
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}
