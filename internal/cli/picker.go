package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"

	"github.com/matzehuels/stepdoc/pkg/graph"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// interactive reports whether stdin and stdout are both terminals.
func interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// =============================================================================
// StartPickerModel - Interactive start node selection
// =============================================================================

// StartPickerModel is the bubbletea model for choosing a traversal's start
// node.
type StartPickerModel struct {
	Nodes    []graph.Node
	Degree   []int
	Cursor   int
	Selected int // 1-based; 0 until a node is chosen
	Height   int
	Offset   int
}

// NewStartPickerModel creates a picker over the nodes of g.
func NewStartPickerModel(g *graph.Graph) StartPickerModel {
	deg := make([]int, g.Len())
	for i := range deg {
		deg[i] = len(g.Neighbors(i))
	}
	return StartPickerModel{Nodes: g.Nodes(), Degree: deg, Height: 15}
}

func (m StartPickerModel) Init() tea.Cmd {
	return nil
}

func (m StartPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Nodes)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "home", "g":
			m.Cursor, m.Offset = 0, 0
		case "end", "G":
			m.Cursor = len(m.Nodes) - 1
			m.Offset = max(0, m.Cursor-m.Height+1)
		case "enter":
			m.Selected = m.Cursor + 1
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-6, 5)
	}
	return m, nil
}

func (m StartPickerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Start Node"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Nodes))
	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		name := m.Nodes[i].Name
		if name == "" {
			name = "—"
		}
		rows = append(rows, []string{cursor, strconv.Itoa(i + 1), name, strconv.Itoa(m.Degree[i])})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Node", "Name", "Out").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case m.Offset+row >= len(m.Nodes):
				return lipgloss.NewStyle()
			case m.Offset+row == m.Cursor:
				return listSelectedStyle
			case m.Degree[m.Offset+row] == 0:
				return listDimStyle
			}
			return listNormalStyle
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Nodes))))

	return b.String()
}

// pickStart runs the picker and returns the chosen 1-based node.
func pickStart(ctx context.Context, g *graph.Graph) (int, error) {
	p := tea.NewProgram(NewStartPickerModel(g), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return 0, err
	}
	m, ok := final.(StartPickerModel)
	if !ok || m.Selected == 0 {
		return 0, context.Canceled
	}
	return m.Selected, nil
}
