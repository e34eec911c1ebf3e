package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	rosterService "github.com/KirkDiggler/raidtemplate/internal/services/roster"
	templateService "github.com/KirkDiggler/raidtemplate/internal/services/template"
	"github.com/KirkDiggler/raidtemplate/internal/views"
)

var printEditor string

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Print the roster or template as text",
}

var printCardsCmd = &cobra.Command{
	Use:   "cards",
	Short: "Print a card for every player",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context(), os.Stderr)
		if err != nil {
			return err
		}
		defer a.Close()

		out, err := a.rosters.GetRoster(cmd.Context(), &rosterService.GetRosterInput{RosterID: a.cfg.RosterID})
		if err != nil {
			return err
		}
		return views.Cards(cmd.OutOrStdout(), out.Roster)
	},
}

var printPlayerCmd = &cobra.Command{
	Use:   "player [id]",
	Short: "Print one player in detail",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("player id must be a number: %w", err)
		}

		a, err := newApp(cmd.Context(), os.Stderr)
		if err != nil {
			return err
		}
		defer a.Close()

		out, err := a.rosters.GetPlayer(cmd.Context(), &rosterService.GetPlayerInput{
			RosterID: a.cfg.RosterID,
			PlayerID: id,
		})
		if errors.Is(err, rosterService.ErrPlayerNotFound) {
			return views.Detail(cmd.OutOrStdout(), nil)
		}
		if err != nil {
			return err
		}
		return views.Detail(cmd.OutOrStdout(), out.Player)
	},
}

var printTableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the raid template",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context(), os.Stderr)
		if err != nil {
			return err
		}
		defer a.Close()

		if printEditor != "" && !a.cfg.PersistentStorage() {
			a.log.WithField("editor", printEditor).Warn("in-memory storage holds no working copies from other processes, showing the live template")
		}

		out, err := a.templates.GetView(cmd.Context(), &templateService.GetViewInput{
			RosterID: a.cfg.RosterID,
			EditorID: printEditor,
		})
		if err != nil {
			return err
		}
		if out.Editing {
			fmt.Fprintf(cmd.ErrOrStderr(), "showing working copy of %s\n", printEditor)
		}
		return views.Table(cmd.OutOrStdout(), out.Template, a.catalog.EquipmentSlots())
	},
}

func init() {
	printTableCmd.Flags().StringVar(&printEditor, "editor", "", "show this editor's working copy when they are editing")

	printCmd.AddCommand(printCardsCmd)
	printCmd.AddCommand(printPlayerCmd)
	printCmd.AddCommand(printTableCmd)
}
