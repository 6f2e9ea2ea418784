package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/netcanvas/netcanvas/pkg/diagram"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// BoundaryListModel - Interactive boundary selection
// =============================================================================

// BoundaryListModel is the bubbletea model for interactive boundary selection.
type BoundaryListModel struct {
	Diagram    *diagram.Diagram
	Boundaries []diagram.Node
	Cursor     int
	Selected   *diagram.Node
	Height     int
	Offset     int
}

// NewBoundaryListModel creates a new boundary list model.
func NewBoundaryListModel(d *diagram.Diagram, boundaries []diagram.Node) BoundaryListModel {
	return BoundaryListModel{
		Diagram:    d,
		Boundaries: boundaries,
		Cursor:     0,
		Height:     15,
		Offset:     0,
	}
}

func (m BoundaryListModel) Init() tea.Cmd {
	return nil
}

func (m BoundaryListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.Cursor < len(m.Boundaries)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			b := m.Boundaries[m.Cursor]
			m.Selected = &b
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m BoundaryListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Boundary"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Boundaries) {
		end = len(m.Boundaries)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		node := m.Boundaries[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		children := m.Diagram.ChildrenOf(node.ID)
		devices, nested := 0, 0
		for _, ch := range children {
			if ch.IsBoundary() {
				nested++
			} else {
				devices++
			}
		}

		size := node.Size()
		rows = append(rows, []string{
			cursor,
			node.DisplayLabel(),
			node.ID,
			fmt.Sprintf("%d", devices),
			fmt.Sprintf("%d", nested),
			fmt.Sprintf("%.0fx%.0f", size.Width, size.Height),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Boundary", "ID", "Devices", "Nested", "Size").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := m.Offset + row
			if actualIdx >= len(m.Boundaries) {
				return lipgloss.NewStyle()
			}
			isCurrent := actualIdx == m.Cursor

			base := lipgloss.NewStyle()
			if col >= 3 {
				base = base.Foreground(colorDim)
				if isCurrent {
					base = base.Foreground(colorGray)
				}
			}

			if isCurrent {
				if col < 3 {
					return base.Foreground(colorGreen).Bold(true)
				}
				return base.Bold(true)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Boundaries))))

	return b.String()
}
