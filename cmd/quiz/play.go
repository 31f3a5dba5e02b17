package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ironwater12/japanese-learning-app/internal/delivery/terminal"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the quiz in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context(), true)
		if err != nil {
			return err
		}
		defer a.Close()

		return terminal.NewPlayer(a.quiz, os.Stdin, cmd.OutOrStdout()).Play(cmd.Context())
	},
}
