package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/raidtemplate/internal/services/messaging"
	templateService "github.com/KirkDiggler/raidtemplate/internal/services/template"
)

var exportOut string

// errEphemeralImport stops an import that would vanish when the command exits
var errEphemeralImport = errors.New("import needs REDIS_URL; in-memory storage is discarded when the command exits")

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the live template as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context(), os.Stderr)
		if err != nil {
			return err
		}
		defer a.Close()

		out, err := a.templates.ExportTemplate(cmd.Context(), &templateService.ExportTemplateInput{RosterID: a.cfg.RosterID})
		if err != nil {
			return err
		}

		if exportOut == "" {
			_, err = cmd.OutOrStdout().Write(append(out.Data, '\n'))
			return err
		}
		if err := os.WriteFile(exportOut, out.Data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportOut, err)
		}
		a.log.WithField("path", exportOut).Info("exported template")
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Replace the live template from a JSON export",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		a, err := newApp(cmd.Context(), os.Stderr)
		if err != nil {
			return err
		}
		defer a.Close()

		if !a.cfg.PersistentStorage() {
			return errEphemeralImport
		}

		if _, err := a.templates.ImportTemplate(cmd.Context(), &templateService.ImportTemplateInput{
			RosterID: a.cfg.RosterID,
			Data:     data,
		}); err != nil {
			msg, msgErr := a.messages.GetErrorMessage(cmd.Context(), &messaging.GetErrorMessageInput{Err: err})
			if msgErr != nil {
				return err
			}
			return fmt.Errorf("%s: %w", msg.Title, err)
		}

		status, err := a.messages.GetEditStatusMessage(cmd.Context(), &messaging.GetEditStatusMessageInput{
			Action:     messaging.EditActionImport,
			EditorName: "cli",
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), status.Message)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "write to this file instead of stdout")
}
