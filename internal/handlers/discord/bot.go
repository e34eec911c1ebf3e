// Package discord exposes the roster and raid template through a /raid slash command.
package discord

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/raidtemplate/internal/catalog"
	"github.com/KirkDiggler/raidtemplate/internal/services/messaging"
	rosterService "github.com/KirkDiggler/raidtemplate/internal/services/roster"
	templateService "github.com/KirkDiggler/raidtemplate/internal/services/template"
)

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	raid       *RaidCommand
	commands   map[string]CommandHandler
	components []ComponentHandler
	commandIDs map[string]string // Maps command name to command ID
	config     *Config
	log        logrus.FieldLogger
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// RosterID selects the roster every command works on
	RosterID string

	RosterService    rosterService.Service
	TemplateService  templateService.Service
	MessagingService messaging.Service
	Catalog          *catalog.Catalog

	Logger logrus.FieldLogger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	raid, err := NewRaidCommand(&RaidCommandConfig{
		RosterID:         cfg.RosterID,
		RosterService:    cfg.RosterService,
		TemplateService:  cfg.TemplateService,
		MessagingService: cfg.MessagingService,
		Catalog:          cfg.Catalog,
		Logger:           log,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create raid command: %w", err)
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:    session,
		raid:       raid,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		config:     cfg,
		log:        log.WithField("component", "discord"),
	}

	// Register the interaction handler
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start opens the Discord connection and registers commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	if err := b.RegisterCommand(b.raid); err != nil {
		return fmt.Errorf("failed to register raid command: %w", err)
	}

	b.log.Info("bot is running")
	return nil
}

// Stop removes the registered commands and closes the connection
func (b *Bot) Stop() error {
	appID := b.appID()
	for cmdName, cmdID := range b.commandIDs {
		entry := b.log.WithField("command", cmdName).WithField("command_id", cmdID)
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			entry.WithError(err).Warn("failed to delete command")
		} else {
			entry.Info("deleted command")
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord. Commands are global
// unless a guild ID is configured.
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	entry := b.log.WithField("command", cmd.GetName())
	if b.config.GuildID != "" {
		entry = entry.WithField("guild_id", b.config.GuildID)
	}

	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	if h, ok := cmd.(ComponentHandler); ok {
		b.components = append(b.components, h)
	}
	entry.WithField("command_id", createdCmd.ID).Info("registered command")

	return nil
}

// appID falls back to the session user when no application ID is configured
func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	return b.session.State.User.ID
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(s, i); err != nil {
				b.log.WithError(err).WithField("command", name).Error("failed to handle command")
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponentInteraction(s, i); err != nil {
			b.log.WithError(err).Error("failed to handle component interaction")
		}
	}
}

func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID
	for _, h := range b.components {
		if h.HandlesComponent(customID) {
			return h.HandleComponent(s, i)
		}
	}
	return RespondWithEphemeralMessage(s, i, "That button is no longer supported.")
}
