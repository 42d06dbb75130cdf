package cmd

import (
	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/mathmap/internal/render"
	"github.com/abhisek/mathmap/internal/review"
	"github.com/abhisek/mathmap/internal/store"
	"github.com/abhisek/mathmap/internal/topicgraph"
)

var roadmapCmd = &cobra.Command{
	Use:   "roadmap",
	Short: "Show the review roadmap with mastery progress",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		width, _ := cmd.Flags().GetInt("width")

		return withGraph(cmd, func(_ *store.Store, g *topicgraph.Graph) error {
			stages, err := review.NewGenerator(g, review.DefaultConfig()).Roadmap()
			if err != nil {
				return err
			}
			lipgloss.Fprintln(cmd.OutOrStdout(), render.Roadmap(stages, width))
			return nil
		})
	},
}

func init() {
	roadmapCmd.Flags().Int("width", 60, "Width of the progress bars")
}
