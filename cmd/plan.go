package cmd

import (
	"fmt"
	"log/slog"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/mathmap/internal/render"
	"github.com/abhisek/mathmap/internal/review"
	"github.com/abhisek/mathmap/internal/store"
	"github.com/abhisek/mathmap/internal/topicgraph"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate a review plan for a student",
	Long: "Generate a review plan. Strategies: weakness_focused (default),\n" +
		"exam_preparation, concept_integration.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		strategy, _ := cmd.Flags().GetString("strategy")
		weak, _ := cmd.Flags().GetStringSlice("weak")
		days, _ := cmd.Flags().GetInt("days")
		examDays, _ := cmd.Flags().GetInt("exam-days")
		name, _ := cmd.Flags().GetString("name")
		asJSON, _ := cmd.Flags().GetBool("json")
		save, _ := cmd.Flags().GetBool("save")

		profile := review.Profile{
			Name:          name,
			Weaknesses:    weak,
			TotalDays:     days,
			DaysUntilExam: examDays,
		}

		return withGraph(cmd, func(st *store.Store, g *topicgraph.Graph) error {
			plan, err := review.NewGenerator(g, review.DefaultConfig()).GenerateNamed(profile, strategy)
			if err != nil {
				return err
			}
			raw, err := review.Encode(plan)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				fmt.Fprintln(out, string(raw))
			} else {
				lipgloss.Fprintln(out, render.Plan(g, plan))
			}

			if !save {
				return nil
			}
			rec := &store.PlanRecord{
				Student:  plan.Student,
				Strategy: plan.Strategy.String(),
				Body:     raw,
			}
			if err := st.PlanRepo().Save(cmd.Context(), rec); err != nil {
				return err
			}
			slog.Info("plan saved", "id", rec.ID, "strategy", rec.Strategy)
			fmt.Fprintf(cmd.ErrOrStderr(), "saved plan %s\n", rec.ID)
			return nil
		})
	},
}

func init() {
	planCmd.Flags().String("strategy", review.WeaknessFocused.String(), "Review strategy")
	planCmd.Flags().StringSlice("weak", nil, "Weak topic IDs (e.g. NA1,GG2)")
	planCmd.Flags().Int("days", 0, "Total days available (default 30)")
	planCmd.Flags().Int("exam-days", 0, "Days until the exam")
	planCmd.Flags().String("name", "", "Student name")
	planCmd.Flags().Bool("json", false, "Print the plan as JSON")
	planCmd.Flags().Bool("save", false, "Archive the plan in the database")
}
