// Package console plays the game line by line on a plain terminal or pipe.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spacepatrol/space_patrol/internal/frontend"
	"github.com/spacepatrol/space_patrol/internal/game"
	"github.com/spacepatrol/space_patrol/internal/render"
)

// Console is both the Presenter and the Input of a stdio session.
type Console struct {
	out     io.Writer
	scanner *bufio.Scanner
	styles  styles
}

type styles struct {
	banner   lipgloss.Style
	heading  lipgloss.Style
	status   lipgloss.Style
	prompt   lipgloss.Style
	menu     lipgloss.Style
	bracket  lipgloss.Style
	color    bool
	renderer *lipgloss.Renderer
}

// New creates a console reading from in and writing to out. With color
// false no colour codes are written, whatever out is.
func New(in io.Reader, out io.Writer, color bool) *Console {
	return &Console{
		out:     out,
		scanner: bufio.NewScanner(in),
		styles:  newStyles(lipgloss.NewRenderer(out), color),
	}
}

func newStyles(r *lipgloss.Renderer, color bool) styles {
	s := styles{color: color, renderer: r}
	s.banner = r.NewStyle().
		Border(lipgloss.DoubleBorder()).
		Padding(1, 16)
	s.status = r.NewStyle().
		Border(lipgloss.NormalBorder()).
		Padding(0, 1).
		Width(52)
	s.heading = r.NewStyle()
	s.prompt = r.NewStyle()
	s.menu = r.NewStyle()
	s.bracket = r.NewStyle()
	if color {
		s.banner = s.banner.BorderForeground(paletteColor(render.ColorBlue)).Foreground(paletteColor(render.ColorLightBlue)).Bold(true)
		s.status = s.status.BorderForeground(paletteColor(render.ColorBlue)).Foreground(paletteColor(render.ColorLightBlue))
		s.heading = s.heading.Foreground(paletteColor(render.ColorCyan)).Bold(true)
		s.prompt = s.prompt.Foreground(paletteColor(render.ColorLightCyan))
		s.menu = s.menu.Foreground(paletteColor(render.ColorWhite))
		s.bracket = s.bracket.Foreground(paletteColor(render.ColorLightGray))
	}
	return s
}

// fg returns a style in palette colour i, or a plain one without colour.
func (s styles) fg(i uint8) lipgloss.Style {
	st := s.renderer.NewStyle()
	if s.color {
		st = st.Foreground(paletteColor(i))
	}
	return st
}

func paletteColor(i uint8) lipgloss.Color {
	r, g, b := render.RGB(i)
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
}

// Banner prints the welcome banner.
func (c *Console) Banner() {
	fmt.Fprintln(c.out, c.styles.banner.Render("WELCOME TO SPACE PATROL"))
}

// Render prints the grid, the status box, the ETA and the message.
func (c *Console) Render(v game.View) {
	var sb strings.Builder

	sb.WriteString(c.styles.heading.Render("Space Grid:"))
	sb.WriteByte('\n')
	for i, s := range v.Sectors {
		tag, fg := render.SectorTag(s, v.Player.Sector)
		sb.WriteString(c.styles.bracket.Render(fmt.Sprintf("[%d:", s.Number)))
		sb.WriteString(c.styles.fg(fg).Render(tag))
		sb.WriteString(c.styles.bracket.Render("]"))
		if (i+1)%3 == 0 {
			sb.WriteByte('\n')
		} else {
			sb.WriteByte(' ')
		}
	}

	p := v.Player
	lines := []string{
		"PLAYER STATUS",
		fmt.Sprintf("Health: %-5d    Max Health: %-5d", p.Health, p.MaxHealth),
		fmt.Sprintf("Fuel:   %-5d    Max Fuel:   %-5d", p.Fuel, p.MaxFuel),
		fmt.Sprintf("Money:  %-5d", p.Money),
		fmt.Sprintf("Current Sector: %-2d", p.Sector),
		"Weapons: " + weaponList(p.Weapons),
	}
	sb.WriteString(c.styles.status.Render(strings.Join(lines, "\n")))
	sb.WriteByte('\n')

	fmt.Fprintf(&sb, "ETA to destination: %d turns\n", p.ETA)
	fmt.Fprintf(&sb, "Message: %s\n", v.Message)
	io.WriteString(c.out, sb.String())
}

func weaponList(ws game.WeaponSlots) string {
	mounted := ws.Mounted()
	if len(mounted) == 0 {
		return "none"
	}
	names := make([]string, len(mounted))
	for i, w := range mounted {
		names[i] = w.Name
	}
	return strings.Join(names, ", ")
}

// Menu prints a numbered list under an optional title.
func (c *Console) Menu(title string, options []string) {
	if title != "" {
		fmt.Fprintln(c.out, c.styles.heading.Render(title))
	}
	for i, opt := range options {
		fmt.Fprintln(c.out, c.styles.menu.Render(fmt.Sprintf("%d. %s", i+1, opt)))
	}
}

// Notify prints one message in its priority colour.
func (c *Console) Notify(msg game.Message) {
	fmt.Fprintln(c.out, c.styles.fg(render.PriorityColor(msg.Priority)).Render(msg.Text))
}

// ReadInt prints prompt and reads one line. End of input is io.EOF.
func (c *Console) ReadInt(prompt string) (int, error) {
	fmt.Fprint(c.out, c.styles.prompt.Render(prompt))
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return 0, fmt.Errorf("read input: %w", err)
		}
		fmt.Fprintln(c.out)
		return 0, io.EOF
	}
	return frontend.ParseInt(c.scanner.Text())
}
