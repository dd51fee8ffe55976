package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordladder/hint"
	"github.com/katalvlaran/wordladder/search"
	"github.com/katalvlaran/wordladder/wordgraph"
)

func (a *app) solveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve <start> <target>",
		Short: "Find a shortest ladder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, target, err := pair(args)
			if err != nil {
				return err
			}
			strategies, err := a.strategies()
			if err != nil {
				return err
			}
			dict, err := a.loadDictionary(len(start))
			if err != nil {
				return err
			}
			adv, err := a.advisor(strategies[0])
			if err != nil {
				return err
			}
			cmp, err := adv.Compare(cmd.Context(), start, target, dict, strategies...)
			if err != nil {
				return err
			}
			for _, r := range cmp.Results {
				printResult(cmd.OutOrStdout(), r)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&a.strategy, "strategy", "s", "", "bfs, ucs, astar or all (default from config)")
	return cmd
}

func (a *app) hintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hint <current> <target>",
		Short: "Suggest the next move",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			current, target, err := pair(args)
			if err != nil {
				return err
			}
			strategies, err := a.strategies()
			if err != nil {
				return err
			}
			dict, err := a.loadDictionary(len(current))
			if err != nil {
				return err
			}
			adv, err := a.advisor(strategies[0])
			if err != nil {
				return err
			}
			h, err := adv.Hint(current, target, dict)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), h.Message())
			return nil
		},
	}
	cmd.Flags().StringVarP(&a.strategy, "strategy", "s", "", "bfs, ucs or astar (default from config)")
	return cmd
}

func (a *app) compareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <start> <target>",
		Short: "Run every strategy side by side",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, target, err := pair(args)
			if err != nil {
				return err
			}
			dict, err := a.loadDictionary(len(start))
			if err != nil {
				return err
			}
			adv, err := a.advisor(search.BreadthFirst)
			if err != nil {
				return err
			}
			cmp, err := adv.Compare(cmd.Context(), start, target, dict)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "run %s: %s -> %s\n", cmp.RunID, start, target)
			for _, r := range cmp.Results {
				printResult(w, r)
			}
			if cmp.Agree() {
				fmt.Fprintln(w, "strategies agree")
			} else {
				fmt.Fprintln(w, "strategies disagree")
			}
			if best, ok := cmp.Fewest(); ok {
				fmt.Fprintf(w, "fewest expanded: %s (%d)\n", best.Strategy, best.Expanded)
			}
			st := adv.Cache().Stats()
			fmt.Fprintf(w, "cache: %d entries, %d hits, %d misses\n", st.Entries, st.Hits, st.Misses)
			return nil
		},
	}
}

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <current> <next>",
		Short: "Validate a single move",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			current, next := strings.ToLower(args[0]), strings.ToLower(args[1])
			dict, err := a.loadDictionary(0)
			if err != nil {
				return err
			}
			if err := hint.CheckMove(current, next, dict); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %s -> %s\n", current, next)
			return nil
		},
	}
}

func (a *app) graphCmd() *cobra.Command {
	var (
		length int
		top    int
		focus  string
		to     string
	)
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Summarize the word graph of one length",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if focus != "" {
				focus = strings.ToLower(focus)
				length = len(focus)
			}
			if length <= 0 {
				return fmt.Errorf("--length must be positive, got %d", length)
			}
			dict, err := a.loadDictionary(length)
			if err != nil {
				return err
			}
			g, err := wordgraph.FromDictionary(dict, wordgraph.WithContext(cmd.Context()))
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			st := g.Stats()
			fmt.Fprintf(w, "words: %d\nedges: %d\ncomponents: %d\nlargest: %d\nisolated: %d\nmax degree: %d\nmean degree: %.2f\n",
				st.Words, st.Edges, st.Components, st.Largest, st.Isolated, st.MaxDegree, st.MeanDegree)

			comps := g.Components()
			for i := 0; i < top && i < len(comps); i++ {
				fmt.Fprintf(w, "component %d: %d words\n", i, len(comps[i]))
			}

			if focus != "" {
				id, err := g.ComponentOf(focus)
				if err != nil {
					return err
				}
				nbrs, _ := g.Neighbors(focus)
				fmt.Fprintf(w, "%s: component %d, neighbors [%s]\n", focus, id, strings.Join(nbrs, " "))

				if to != "" {
					path, err := g.Ladder(focus, strings.ToLower(to))
					if err != nil {
						return err
					}
					fmt.Fprintf(w, "ladder: %s\n", strings.Join(path, " -> "))
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&length, "length", "n", 4, "Word length")
	cmd.Flags().IntVar(&top, "top", 3, "Number of largest components to list")
	cmd.Flags().StringVarP(&focus, "word", "w", "", "Show the component and neighbors of one word")
	cmd.Flags().StringVar(&to, "to", "", "With --word, print a shortest ladder to this word")
	return cmd
}

func printResult(w io.Writer, r search.Result) {
	if r.Found() {
		fmt.Fprintf(w, "%s: %s (%d hops, %d expanded)\n", r.Strategy, strings.Join(r.Path, " -> "), r.Hops(), r.Expanded)
		return
	}
	fmt.Fprintf(w, "%s: %s (%d iterations)\n", r.Strategy, r.Outcome, r.Iterations)
}
