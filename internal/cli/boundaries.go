package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/netcanvas/netcanvas/pkg/diagram"
)

// boundariesCommand creates the boundaries command for inspecting containers.
func (c *CLI) boundariesCommand() *cobra.Command {
	var pick bool

	cmd := &cobra.Command{
		Use:   "boundaries [diagram.json]",
		Short: "List the boundary containers in a diagram",
		Long: `List the boundary containers in a diagram along with their child counts
and current sizes.

With --pick the list becomes interactive: selecting a boundary prints its ID,
which can be fed to 'layout --boundary'.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBoundaries(args[0], pick)
		},
	}

	cmd.Flags().BoolVar(&pick, "pick", false, "pick a boundary interactively")

	return cmd
}

func (c *CLI) runBoundaries(input string, pick bool) error {
	d, err := diagram.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load diagram %s: %w", input, err)
	}

	boundaries := d.Boundaries()
	if len(boundaries) == 0 {
		printInfo("No boundaries in %s", input)
		return nil
	}

	if pick {
		return c.pickBoundary(input, d, boundaries)
	}

	printInfo("%d boundaries in %s", len(boundaries), input)
	printNewline()
	for _, b := range boundaries {
		size := b.Size()
		printKeyValue(b.ID, fmt.Sprintf("%s · %d children · %.0fx%.0f",
			b.DisplayLabel(), len(d.ChildrenOf(b.ID)), size.Width, size.Height))
	}
	return nil
}

// pickBoundary runs the interactive selection and prints the chosen ID.
func (c *CLI) pickBoundary(input string, d *diagram.Diagram, boundaries []diagram.Node) error {
	model := NewBoundaryListModel(d, boundaries)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return fmt.Errorf("run picker: %w", err)
	}

	m, ok := final.(BoundaryListModel)
	if !ok || m.Selected == nil {
		printInfo("No boundary selected")
		return nil
	}

	fmt.Println(m.Selected.ID)
	printNewline()
	printNextStep("Lay it out", fmt.Sprintf("netcanvas layout -b %s %s", m.Selected.ID, input))
	return nil
}
