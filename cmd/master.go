package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathmap/internal/store"
	"github.com/abhisek/mathmap/internal/topicgraph"
)

var masterCmd = &cobra.Command{
	Use:   "master [ID]",
	Short: "Mark a topic as mastered (or not, with --unset)",
	Args:  cobra.RangeArgs(0, 1),
	RunE: func(cmd *cobra.Command, args []string) error {
		unset, _ := cmd.Flags().GetBool("unset")
		reset, _ := cmd.Flags().GetBool("reset")

		switch {
		case reset && len(args) > 0:
			return fmt.Errorf("use an ID or --reset, not both")
		case !reset && len(args) == 0:
			return fmt.Errorf("topic ID required")
		}

		return withGraph(cmd, func(st *store.Store, g *topicgraph.Graph) error {
			repo := st.MasteryRepo()
			out := cmd.OutOrStdout()
			if reset {
				if err := repo.Reset(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(out, "mastery cleared")
				return nil
			}

			id := args[0]
			// Validates the ID against the graph before persisting.
			if err := g.SetMastered(id, !unset); err != nil {
				return err
			}
			if err := repo.Set(cmd.Context(), id, !unset); err != nil {
				return err
			}
			t, _ := g.Topic(id)
			if unset {
				fmt.Fprintf(out, "%s %s marked not mastered\n", t.ID, t.Name)
			} else {
				fmt.Fprintf(out, "%s %s marked mastered\n", t.ID, t.Name)
			}
			return nil
		})
	},
}

func init() {
	masterCmd.Flags().Bool("unset", false, "Clear the mastered flag")
	masterCmd.Flags().Bool("reset", false, "Clear every mastered flag")
}
