package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordladder/hint"
	"github.com/katalvlaran/wordladder/search"
)

func (a *app) playCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play <start> <target>",
		Short: "Play a game interactively",
		Long: `Play a word ladder game reading one move per line.

Besides a word, a line may be:
  hint   suggest a move with the default strategy
  bfs, ucs, astar   suggest a move with that strategy
  exit   quit the game`,
		Args: cobra.ExactArgs(2),
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
			s, err := adv.NewSession(start, target, dict)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			in := bufio.NewScanner(cmd.InOrStdin())
			fmt.Fprintf(w, "Transform '%s' -> '%s'\n", start, target)
			for !s.Done() {
				fmt.Fprintf(w, "Current word: %s\n", s.Current())
				if !in.Scan() {
					fmt.Fprintln(w, "Game exited.")
					return in.Err()
				}
				line := strings.ToLower(strings.TrimSpace(in.Text()))

				switch line {
				case "":
					continue
				case "exit":
					fmt.Fprintln(w, "Game exited.")
					return nil
				case "hint":
					h, err := s.Hint()
					if err != nil {
						return err
					}
					fmt.Fprintln(w, h.Message())
					continue
				}
				if strat, err := search.ParseStrategy(line); err == nil {
					h, err := s.HintWith(strat)
					if err != nil {
						return err
					}
					fmt.Fprintln(w, h.Message())
					continue
				}

				if err := s.Move(line); err != nil {
					switch {
					case errors.Is(err, hint.ErrNotInDictionary):
						fmt.Fprintln(w, "Invalid word! Not in dictionary.")
					case errors.Is(err, hint.ErrNotOneLetter):
						fmt.Fprintln(w, "Invalid move! Words must differ by exactly one letter.")
					default:
						return err
					}
				}
			}
			fmt.Fprintf(w, "You reached '%s' in %d moves.\n", target, s.Moves())
			return nil
		},
	}
	cmd.Flags().StringVarP(&a.strategy, "strategy", "s", "", "Strategy for 'hint': bfs, ucs or astar (default from config)")
	return cmd
}
