package cmd

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/mathmap/internal/render"
	"github.com/abhisek/mathmap/internal/review"
	"github.com/abhisek/mathmap/internal/store"
	"github.com/abhisek/mathmap/internal/topicgraph"
)

var plansCmd = &cobra.Command{
	Use:   "plans",
	Short: "Browse archived review plans",
}

var plansListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived plans, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		student, _ := cmd.Flags().GetString("student")
		strategy, _ := cmd.Flags().GetString("strategy")
		limit, _ := cmd.Flags().GetInt("limit")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		recs, err := st.PlanRepo().List(cmd.Context(), store.ListOpts{
			Limit:    limit,
			Student:  student,
			Strategy: strategy,
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-36s  %-20s  %-12s  %s\n", "ID", "Strategy", "Student", "Created")
		fmt.Fprintln(out, strings.Repeat("─", 90))
		for _, r := range recs {
			fmt.Fprintf(out, "%-36s  %-20s  %-12s  %s\n",
				r.ID, r.Strategy, r.Student, r.CreatedAt.Local().Format("2006-01-02 15:04"))
		}
		fmt.Fprintf(out, "\n%d plans\n", len(recs))
		return nil
	},
}

var plansShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show an archived plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		return withGraph(cmd, func(st *store.Store, g *topicgraph.Graph) error {
			rec, err := st.PlanRepo().Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				fmt.Fprintln(out, string(rec.Body))
				return nil
			}
			plan, err := review.Decode(rec.Body)
			if err != nil {
				return fmt.Errorf("plan %s: %w", rec.ID, err)
			}
			lipgloss.Fprintln(out, render.Plan(g, plan))
			return nil
		})
	},
}

var plansPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete all but the most recent plans",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		keep, _ := cmd.Flags().GetInt("keep")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		return st.PlanRepo().Prune(cmd.Context(), keep)
	},
}

func init() {
	plansListCmd.Flags().String("student", "", "Only plans for this student")
	plansListCmd.Flags().String("strategy", "", "Only plans of this strategy")
	plansListCmd.Flags().Int("limit", 20, "Maximum number of plans (0 = all)")
	plansShowCmd.Flags().Bool("json", false, "Print the stored JSON")
	plansPruneCmd.Flags().Int("keep", 10, "Number of plans to keep")

	plansCmd.AddCommand(plansListCmd)
	plansCmd.AddCommand(plansShowCmd)
	plansCmd.AddCommand(plansPruneCmd)
}
