package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/soerensenkarl/DrawTruss/pkg/sketch"
	"github.com/soerensenkarl/DrawTruss/pkg/truss"
	"github.com/soerensenkarl/DrawTruss/pkg/vectorize"
)

// tuneCommand creates the tune command for interactive parameter tuning.
func (c *CLI) tuneCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "tune [sketch.json]",
		Short: "Interactively tune the snap radius over a sketch",
		Long: `Interactively tune the snap radius over a sketch.

The tune command opens a small terminal UI that re-vectorizes the sketch
live as you adjust the snap radius, showing how the joint and member
counts respond. Press 's' to write the current graph to disk.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTune(args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "graph output file (default <sketch>.graph.json)")

	return cmd
}

func (c *CLI) runTune(input, output string) error {
	sk, err := sketch.ImportJSON(input)
	if err != nil {
		return err
	}
	if sk.StrokeCount() == 0 {
		printWarning("Sketch has no strokes, nothing to tune")
		return nil
	}

	if output == "" {
		output = basePath("", input) + ".graph.json"
	}

	radius := sk.SnapRadius
	if radius == 0 {
		radius = vectorize.DefaultSnapRadius
	}

	m := newTuneModel(sk, radius, output)
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return fmt.Errorf("run tuner: %w", err)
	}

	if tm, ok := final.(tuneModel); ok && tm.savedAt != "" {
		printSuccess("Saved graph")
		printFile(tm.savedAt)
		printStats(tm.graph.NodeCount(), tm.graph.EdgeCount(), false)
	}
	return nil
}

// =============================================================================
// tuneModel - Live snap radius tuning
// =============================================================================

// tuneModel is the bubbletea model for interactive snap radius tuning.
// Every radius change re-runs vectorization, which is fast enough for
// hand-drawn sketches to feel instant.
type tuneModel struct {
	sk      sketch.Sketch
	radius  float64
	output  string
	graph   truss.Graph
	savedAt string
	saveErr error
}

func newTuneModel(sk sketch.Sketch, radius float64, output string) tuneModel {
	m := tuneModel{
		sk:     sk,
		radius: radius,
		output: output,
	}
	m.graph = m.vectorize()
	return m
}

func (m tuneModel) vectorize() truss.Graph {
	return vectorize.Vectorize(m.sk.Strokes, vectorize.Options{
		SnapRadius:      m.radius,
		SimplifyEpsilon: m.sk.Epsilon,
	})
}

func (m tuneModel) Init() tea.Cmd {
	return nil
}

func (m tuneModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		m.radius++
	case "down", "j":
		if m.radius > 1 {
			m.radius--
		}
	case "pgup", "K":
		m.radius += 5
	case "pgdown", "J":
		m.radius -= 5
		if m.radius < 1 {
			m.radius = 1
		}
	case "s", "enter":
		m.saveErr = truss.WriteFile(m.graph, m.output)
		if m.saveErr == nil {
			m.savedAt = m.output
			return m, tea.Quit
		}
		return m, nil
	default:
		return m, nil
	}

	m.graph = m.vectorize()
	m.savedAt = ""
	return m, nil
}

func (m tuneModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Tune Snap Radius"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ adjust  K/J coarse  s save  q quit"))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("  %s %s\n",
		StyleDim.Render("snap radius"),
		StyleHighlight.Render(fmt.Sprintf("%.1f", m.radius))))
	b.WriteString(fmt.Sprintf("  %s %s\n",
		StyleDim.Render("strokes    "),
		StyleValue.Render(fmt.Sprintf("%d", m.sk.StrokeCount()))))
	b.WriteString(fmt.Sprintf("  %s %s\n",
		StyleDim.Render("joints     "),
		StyleValue.Render(fmt.Sprintf("%d", m.graph.NodeCount()))))
	b.WriteString(fmt.Sprintf("  %s %s\n",
		StyleDim.Render("members    "),
		StyleValue.Render(fmt.Sprintf("%d", m.graph.EdgeCount()))))

	if m.saveErr != nil {
		b.WriteString("\n")
		b.WriteString(StyleWarning.Render(fmt.Sprintf("save failed: %v", m.saveErr)))
		b.WriteString("\n")
	}

	return b.String()
}
