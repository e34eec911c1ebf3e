package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/raidtemplate/internal/handlers/discord"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the Discord bot",
	Long:  `Connect to Discord and serve the /raid command until interrupted.`,
	RunE:  runBot,
}

func runBot(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, nil)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.cfg.ValidateDiscord(); err != nil {
		return err
	}

	bot, err := discord.New(&discord.Config{
		Token:            a.cfg.Discord.Token,
		ApplicationID:    a.cfg.Discord.AppID,
		GuildID:          a.cfg.Discord.GuildID,
		RosterID:         a.cfg.RosterID,
		RosterService:    a.rosters,
		TemplateService:  a.templates,
		MessagingService: a.messages,
		Catalog:          a.catalog,
		Logger:           a.log,
	})
	if err != nil {
		return fmt.Errorf("failed to create bot: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := bot.Start(); err != nil {
			return err
		}
		<-ctx.Done()

		a.log.Info("shutting down")
		return bot.Stop()
	})

	return g.Wait()
}
