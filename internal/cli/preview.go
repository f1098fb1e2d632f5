package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/brdgme/markup/pkg/ast"
	"github.com/brdgme/markup/pkg/lines"
	"github.com/brdgme/markup/pkg/render"
)

var (
	previewBarStyle  = lipgloss.NewStyle().Foreground(colorGray).Background(lipgloss.Color("236"))
	previewNameStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Background(lipgloss.Color("236"))
)

// previewModel is the bubbletea model for scrolling through rendered output.
type previewModel struct {
	title  string
	lines  []string
	offset int
	height int
	width  int
}

// defaultPreviewHeight is used until the terminal reports its size.
const defaultPreviewHeight = 20

func newPreviewModel(title string, lines []string) previewModel {
	return previewModel{title: title, lines: lines, height: defaultPreviewHeight}
}

// previewLines renders a transformed tree one line at a time, so every line
// carries its own escape sequences and can be drawn on its own.
func previewLines(flat []ast.Node) []string {
	ls := lines.ToLines(flat)
	out := make([]string, len(ls))
	for i, l := range ls {
		out[i] = render.ANSI(l)
	}
	return out
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = max(msg.Height-1, 1)
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.offset--
		case "down", "j":
			m.offset++
		case "pgup", "b":
			m.offset -= m.height
		case "pgdown", "f", " ":
			m.offset += m.height
		case "home", "g":
			m.offset = 0
		case "end", "G":
			m.offset = len(m.lines)
		}
	}
	m.offset = m.clamp(m.offset)
	return m, nil
}

// clamp keeps offset within the scrollable range.
func (m previewModel) clamp(offset int) int {
	return max(min(offset, len(m.lines)-m.height), 0)
}

func (m previewModel) View() string {
	end := min(m.offset+m.height, len(m.lines))
	var b strings.Builder
	for _, l := range m.lines[m.offset:end] {
		b.WriteString(l)
		b.WriteString("\n")
	}
	for i := end - m.offset; i < m.height; i++ {
		b.WriteString("\n")
	}
	b.WriteString(m.statusBar())
	return b.String()
}

func (m previewModel) statusBar() string {
	pos := "empty"
	if len(m.lines) > 0 {
		pos = fmt.Sprintf("%d-%d/%d", m.offset+1, min(m.offset+m.height, len(m.lines)), len(m.lines))
	}
	bar := previewNameStyle.Render(" "+m.title+" ") + previewBarStyle.Render(" "+pos+"  ↑/↓ scroll · q quit ")
	if m.width > 0 {
		bar = previewBarStyle.Width(m.width).Render(bar)
	}
	return bar
}

// previewCommand creates the interactive preview command.
func (c *CLI) previewCommand() *cobra.Command {
	var players string

	cmd := &cobra.Command{
		Use:   "preview [file|-]",
		Short: "Preview a template's ANSI rendering interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			src, err := readTemplate(cmd, args)
			if err != nil {
				return err
			}

			runner, err := c.newRunner(ctx, true)
			if err != nil {
				return err
			}
			defer runner.Close()

			nodes, err := runner.Parse(ctx, src)
			if err != nil {
				return err
			}
			flat, err := runner.Transform(ctx, nodes, c.players(cmd, players))
			if err != nil {
				return err
			}

			opts := []tea.ProgramOption{
				tea.WithContext(ctx),
				tea.WithAltScreen(),
				tea.WithOutput(cmd.OutOrStdout()),
			}
			if templateArg(args) == "-" {
				// The template came from stdin, so keys must come from the terminal.
				opts = append(opts, tea.WithInputTTY())
			}

			m := newPreviewModel(templateArg(args), previewLines(flat))
			_, err = tea.NewProgram(m, opts...).Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&players, "players", "p", "", "comma-separated player names, in turn order")
	return cmd
}
