package cmd

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/mathmap/internal/render"
	"github.com/abhisek/mathmap/internal/store"
	"github.com/abhisek/mathmap/internal/topicgraph"
)

var topicCmd = &cobra.Command{
	Use:   "topic",
	Short: "Browse the knowledge graph",
}

var topicListCmd = &cobra.Command{
	Use:   "list",
	Short: "List topics (optionally filtered by domain or review layer)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		domain, _ := cmd.Flags().GetString("domain")
		reviewOnly, _ := cmd.Flags().GetBool("review")

		return withGraph(cmd, func(_ *store.Store, g *topicgraph.Graph) error {
			var topics []topicgraph.Topic
			switch {
			case reviewOnly:
				topics = g.ReviewTopics(domain)
			case domain != "":
				topics = g.ByDomain(domain)
			default:
				topics = g.Topics()
			}
			if len(topics) == 0 {
				return fmt.Errorf("no topics found for domain %q", domain)
			}

			out := cmd.OutOrStdout()
			lipgloss.Fprintln(out, render.TopicTable(topics))
			fmt.Fprintf(out, "\n%d topics\n", len(topics))
			return nil
		})
	},
}

var topicShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show a topic with its attributes and neighbors",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withGraph(cmd, func(_ *store.Store, g *topicgraph.Graph) error {
			nb, err := g.Neighbors(args[0])
			if err != nil {
				return err
			}
			lipgloss.Fprintln(cmd.OutOrStdout(), render.TopicCard(g, nb))
			return nil
		})
	},
}

var topicAncestorsCmd = &cobra.Command{
	Use:   "ancestors ID",
	Short: "List every topic a topic transitively depends on",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kinds, _ := cmd.Flags().GetStringSlice("kind")

		return withGraph(cmd, func(_ *store.Store, g *topicgraph.Graph) error {
			filter := make([]topicgraph.RelationKind, 0, len(kinds))
			for _, k := range kinds {
				kind := topicgraph.RelationKind(k)
				if !kind.Valid() {
					return fmt.Errorf("unknown relation kind %q", k)
				}
				filter = append(filter, kind)
			}
			if len(filter) == 0 {
				filter = append(filter, topicgraph.RelationPrerequisite)
			}

			ids, err := g.Ancestors(args[0], filter...)
			if err != nil {
				return err
			}
			topics := make([]topicgraph.Topic, 0, len(ids))
			for _, id := range ids {
				t, err := g.Topic(id)
				if err != nil {
					return err
				}
				topics = append(topics, t)
			}

			out := cmd.OutOrStdout()
			if len(topics) == 0 {
				fmt.Fprintf(out, "%s has no ancestors\n", args[0])
				return nil
			}
			lipgloss.Fprintln(out, render.TopicTable(topics))
			fmt.Fprintf(out, "\n%d ancestors\n", len(topics))
			return nil
		})
	},
}

var topicTreeCmd = &cobra.Command{
	Use:   "tree ID",
	Short: "Show the prerequisite tree of a topic",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withGraph(cmd, func(_ *store.Store, g *topicgraph.Graph) error {
			tree, err := g.PrerequisiteTree(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			lipgloss.Fprintln(out, render.PrerequisiteTree(g, args[0], tree))
			fmt.Fprintf(out, "\ndepth %d, %d distinct prerequisites\n", tree.Depth(), len(topicgraph.Flatten(tree)))
			return nil
		})
	},
}

func init() {
	topicListCmd.Flags().String("domain", "", "Filter by domain (e.g. 数与代数进阶)")
	topicListCmd.Flags().Bool("review", false, "Only list review-layer topics")
	topicAncestorsCmd.Flags().StringSlice("kind", nil, "Relation kinds to follow (default prerequisite)")

	topicCmd.AddCommand(topicListCmd)
	topicCmd.AddCommand(topicShowCmd)
	topicCmd.AddCommand(topicAncestorsCmd)
	topicCmd.AddCommand(topicTreeCmd)
}
