package discord

import (
	"context"
	"errors"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/raidtemplate/internal/catalog"
	raiderr "github.com/KirkDiggler/raidtemplate/internal/errors"
	"github.com/KirkDiggler/raidtemplate/internal/models"
	"github.com/KirkDiggler/raidtemplate/internal/services/messaging"
	rosterService "github.com/KirkDiggler/raidtemplate/internal/services/roster"
	templateService "github.com/KirkDiggler/raidtemplate/internal/services/template"
)

// Subcommand names
const (
	subCards   = "cards"
	subPlayer  = "player"
	subTable   = "table"
	subRename  = "rename"
	subRole    = "role"
	subClasses = "classes"
	subEdit    = "edit"
	subSave    = "save"
	subCancel  = "cancel"
	subFood    = "food"
	subPotion  = "potion"
	subSet     = "set"
	subSetup   = "setup"
	subCP      = "cp"
	subSkill   = "skill"
	subRaids   = "raids"
	subReset   = "reset"
)

// Option names
const (
	optID       = "id"
	optName     = "name"
	optRole     = "role"
	optClasses  = "classes"
	optValue    = "value"
	optIndex    = "index"
	optSlot     = "slot"
	optCategory = "category"
	optAbility  = "ability"
)

// Discord rejects option lists with more choices than this
const maxChoices = 25

var (
	ErrNilRaidCommandConfig = errors.New("raid command config cannot be nil")
	ErrEmptyRosterID        = errors.New("roster ID cannot be empty")
	ErrNilRosterService     = errors.New("roster service cannot be nil")
	ErrNilTemplateService   = errors.New("template service cannot be nil")
	ErrNilMessagingService  = errors.New("messaging service cannot be nil")
	ErrNilCatalog           = errors.New("catalog cannot be nil")
)

// RaidCommandConfig holds the dependencies of the /raid command
type RaidCommandConfig struct {
	RosterID string

	RosterService    rosterService.Service
	TemplateService  templateService.Service
	MessagingService messaging.Service
	Catalog          *catalog.Catalog

	Logger logrus.FieldLogger
}

// RaidCommand handles /raid and the edit buttons on its table messages
type RaidCommand struct {
	BaseCommand

	rosterID         string
	rosterService    rosterService.Service
	templateService  templateService.Service
	messagingService messaging.Service
	catalog          *catalog.Catalog
	log              logrus.FieldLogger
}

// invoker is the Discord user behind an interaction
type invoker struct {
	ID   string
	Name string
}

// NewRaidCommand creates the /raid command
func NewRaidCommand(cfg *RaidCommandConfig) (*RaidCommand, error) {
	if cfg == nil {
		return nil, ErrNilRaidCommandConfig
	}
	if cfg.RosterID == "" {
		return nil, ErrEmptyRosterID
	}
	if cfg.RosterService == nil {
		return nil, ErrNilRosterService
	}
	if cfg.TemplateService == nil {
		return nil, ErrNilTemplateService
	}
	if cfg.MessagingService == nil {
		return nil, ErrNilMessagingService
	}
	if cfg.Catalog == nil {
		return nil, ErrNilCatalog
	}

	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &RaidCommand{
		BaseCommand: BaseCommand{
			Name:        "raid",
			Description: "View and edit the raid roster and template",
			Options:     raidOptions(cfg.Catalog),
		},
		rosterID:         cfg.RosterID,
		rosterService:    cfg.RosterService,
		templateService:  cfg.TemplateService,
		messagingService: cfg.MessagingService,
		catalog:          cfg.Catalog,
		log:              log.WithField("component", "raid_command"),
	}, nil
}

func raidOptions(cat *catalog.Catalog) []*discordgo.ApplicationCommandOption {
	roles := make([]string, 0, len(models.Roles()))
	for _, r := range models.Roles() {
		roles = append(roles, string(r))
	}
	trees := make([]string, 0, len(models.ChampionCategories()))
	for _, c := range models.ChampionCategories() {
		trees = append(trees, string(c))
	}

	zero := float64(0)
	lastSkill := float64(models.SkillSlotCount - 1)

	return []*discordgo.ApplicationCommandOption{
		subcommand(subCards, "Show a card for every player"),
		subcommand(subPlayer, "Show one player in detail", playerOption()),
		subcommand(subTable, "Show the raid template"),
		subcommand(subRename, "Rename a player", playerOption(),
			stringOption(optName, "New name", true, nil)),
		subcommand(subRole, "Change a player's role", playerOption(),
			stringOption(optRole, "New role", true, roles)),
		subcommand(subClasses, "Replace a player's classes", playerOption(),
			stringOption(optClasses, "Comma separated class list", true, nil)),
		subcommand(subEdit, "Start editing the template"),
		subcommand(subSave, "Save your edits"),
		subcommand(subCancel, "Throw away your edits"),
		subcommand(subFood, "Set a player's food", playerOption(),
			stringOption(optValue, "Food", false, nil)),
		subcommand(subPotion, "Set a player's potion", playerOption(),
			stringOption(optValue, "Potion", false, nil)),
		subcommand(subSet, "Replace one of a player's sets", playerOption(),
			intOption(optIndex, "Position in the set list", &zero, nil),
			stringOption(optValue, "Set", false, nil)),
		subcommand(subSetup, "Assign a set to an equipment slot", playerOption(),
			stringOption(optSlot, "Equipment slot", true, cat.EquipmentSlots()),
			stringOption(optValue, "Set, empty to clear", false, cat.Sets())),
		subcommand(subCP, "Replace a champion point", playerOption(),
			stringOption(optCategory, "Champion tree", true, trees),
			intOption(optIndex, "Position in the tree", &zero, nil),
			stringOption(optValue, "Champion perk", false, nil)),
		subcommand(subSkill, "Set a skill slot", playerOption(),
			intOption(optIndex, "0-4 front, 5-9 back, 10 and 11 ultimates", &zero, &lastSkill),
			stringOption(optCategory, "Skill line, empty to clear", false, cat.Categories()),
			stringOption(optAbility, "Ability, defaults to the first of the line", false, nil)),
		subcommand(subRaids, "List the raids"),
		subcommand(subReset, "Rebuild the template from the roster"),
	}
}

func subcommand(name, description string, options ...*discordgo.ApplicationCommandOption) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionSubCommand,
		Name:        name,
		Description: description,
		Options:     options,
	}
}

func playerOption() *discordgo.ApplicationCommandOption {
	return intOption(optID, "Player id", nil, nil)
}

func intOption(name, description string, minValue, maxValue *float64) *discordgo.ApplicationCommandOption {
	opt := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        name,
		Description: description,
		Required:    true,
		MinValue:    minValue,
	}
	if maxValue != nil {
		opt.MaxValue = *maxValue
	}
	return opt
}

func stringOption(name, description string, required bool, values []string) *discordgo.ApplicationCommandOption {
	opt := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        name,
		Description: description,
		Required:    required,
	}
	if len(values) > 0 && len(values) <= maxChoices {
		for _, v := range values {
			opt.Choices = append(opt.Choices, &discordgo.ApplicationCommandOptionChoice{Name: v, Value: v})
		}
	}
	return opt
}

// Handle processes a /raid interaction
func (c *RaidCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		return RespondWithEphemeralMessage(s, i, "Pick a subcommand.")
	}

	ctx := context.Background()
	resp, err := c.run(ctx, invokerFrom(i), data.Options[0])
	if err != nil {
		return Respond(s, i, c.failure(ctx, err))
	}
	return Respond(s, i, resp)
}

// HandlesComponent reports whether customID is one of the edit buttons
func (c *RaidCommand) HandlesComponent(customID string) bool {
	switch customID {
	case ButtonEdit, ButtonSave, ButtonCancel:
		return true
	}
	return false
}

// HandleComponent processes an edit button. Edit opens a new private
// message; save and cancel replace the message they were pressed on.
func (c *RaidCommand) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID

	ctx := context.Background()
	resp, err := c.press(ctx, invokerFrom(i), customID)
	if err != nil {
		return Respond(s, i, c.failure(ctx, err))
	}
	if customID == ButtonEdit {
		return Respond(s, i, resp)
	}
	return RespondWithUpdate(s, i, resp)
}

func (c *RaidCommand) press(ctx context.Context, who invoker, customID string) (*discordgo.InteractionResponseData, error) {
	switch customID {
	case ButtonEdit:
		return c.enterEdit(ctx, who)
	case ButtonSave:
		return c.commit(ctx, who)
	case ButtonCancel:
		return c.discard(ctx, who)
	}
	return nil, raiderr.InvalidArgumentf("unknown button %q", customID)
}

func (c *RaidCommand) run(ctx context.Context, who invoker, sub *discordgo.ApplicationCommandInteractionDataOption) (*discordgo.InteractionResponseData, error) {
	opts := newOptions(sub.Options)

	switch sub.Name {
	case subCards:
		return c.cards(ctx)
	case subPlayer:
		return c.player(ctx, opts)
	case subTable:
		return c.table(ctx, who)
	case subRename, subRole, subClasses:
		return c.updatePlayer(ctx, sub.Name, opts)
	case subEdit:
		return c.enterEdit(ctx, who)
	case subSave:
		return c.commit(ctx, who)
	case subCancel:
		return c.discard(ctx, who)
	case subFood, subPotion, subSet, subSetup, subCP:
		return c.setField(ctx, who, sub.Name, opts)
	case subSkill:
		return c.setSkill(ctx, who, opts)
	case subRaids:
		return renderRaids(c.catalog.Raids()), nil
	case subReset:
		return c.reset(ctx, who)
	}
	return nil, raiderr.InvalidArgumentf("unknown subcommand %q", sub.Name)
}

func (c *RaidCommand) cards(ctx context.Context) (*discordgo.InteractionResponseData, error) {
	out, err := c.rosterService.GetRoster(ctx, &rosterService.GetRosterInput{RosterID: c.rosterID})
	if err != nil {
		return nil, err
	}
	return renderCards(out.Roster), nil
}

func (c *RaidCommand) player(ctx context.Context, opts options) (*discordgo.InteractionResponseData, error) {
	id, err := opts.integer(optID)
	if err != nil {
		return nil, err
	}

	out, err := c.rosterService.GetPlayer(ctx, &rosterService.GetPlayerInput{
		RosterID: c.rosterID,
		PlayerID: id,
	})
	if errors.Is(err, rosterService.ErrPlayerNotFound) {
		return renderDetail(nil), nil
	}
	if err != nil {
		return nil, err
	}
	return renderDetail(out.Player), nil
}

func (c *RaidCommand) table(ctx context.Context, who invoker) (*discordgo.InteractionResponseData, error) {
	out, err := c.templateService.GetView(ctx, &templateService.GetViewInput{
		RosterID: c.rosterID,
		EditorID: who.ID,
	})
	if err != nil {
		return nil, err
	}
	return renderTable(out.Template, c.catalog.EquipmentSlots(), out.Editing)
}

func (c *RaidCommand) updatePlayer(ctx context.Context, name string, opts options) (*discordgo.InteractionResponseData, error) {
	id, err := opts.integer(optID)
	if err != nil {
		return nil, err
	}

	var out *rosterService.UpdatePlayerOutput
	switch name {
	case subRename:
		out, err = c.rosterService.UpdateName(ctx, &rosterService.UpdateNameInput{
			RosterID: c.rosterID,
			PlayerID: id,
			Name:     opts.text(optName),
		})
	case subRole:
		out, err = c.rosterService.UpdateRole(ctx, &rosterService.UpdateRoleInput{
			RosterID: c.rosterID,
			PlayerID: id,
			Role:     models.Role(opts.text(optRole)),
		})
	case subClasses:
		out, err = c.rosterService.UpdateClasses(ctx, &rosterService.UpdateClassesInput{
			RosterID: c.rosterID,
			PlayerID: id,
			Classes:  splitList(opts.text(optClasses)),
		})
	}
	if err != nil {
		return nil, err
	}

	p, ok := out.Roster.FindPlayer(id)
	if !ok {
		return renderDetail(nil), nil
	}
	return renderDetail(p), nil
}

func (c *RaidCommand) enterEdit(ctx context.Context, who invoker) (*discordgo.InteractionResponseData, error) {
	out, err := c.templateService.EnterEdit(ctx, &templateService.EnterEditInput{
		RosterID: c.rosterID,
		EditorID: who.ID,
	})
	if err != nil {
		return nil, err
	}
	return c.status(ctx, who, messaging.EditActionEnter, out.Session.Working, true)
}

func (c *RaidCommand) commit(ctx context.Context, who invoker) (*discordgo.InteractionResponseData, error) {
	out, err := c.templateService.Commit(ctx, &templateService.CommitInput{
		RosterID: c.rosterID,
		EditorID: who.ID,
	})
	if err != nil {
		return nil, err
	}
	c.log.WithField("editor", who.ID).Info("template saved")
	return c.status(ctx, who, messaging.EditActionSave, out.Template, false)
}

func (c *RaidCommand) discard(ctx context.Context, who invoker) (*discordgo.InteractionResponseData, error) {
	if _, err := c.templateService.Discard(ctx, &templateService.DiscardInput{
		RosterID: c.rosterID,
		EditorID: who.ID,
	}); err != nil {
		return nil, err
	}
	return c.status(ctx, who, messaging.EditActionCancel, nil, false)
}

func (c *RaidCommand) reset(ctx context.Context, who invoker) (*discordgo.InteractionResponseData, error) {
	out, err := c.templateService.ResetTemplate(ctx, &templateService.ResetTemplateInput{RosterID: c.rosterID})
	if err != nil {
		return nil, err
	}
	c.log.WithField("editor", who.ID).Info("template reset")
	return c.status(ctx, who, messaging.EditActionReset, out.Template, false)
}

func (c *RaidCommand) setField(ctx context.Context, who invoker, name string, opts options) (*discordgo.InteractionResponseData, error) {
	id, err := opts.integer(optID)
	if err != nil {
		return nil, err
	}

	change := templateService.FieldChange{
		PlayerID: id,
		Value:    opts.text(optValue),
	}
	switch name {
	case subFood:
		change.Field = templateService.FieldFood
	case subPotion:
		change.Field = templateService.FieldPotion
	case subSet:
		change.Field = templateService.FieldSet
		if change.Index, err = opts.integer(optIndex); err != nil {
			return nil, err
		}
	case subSetup:
		change.Field = templateService.FieldSetup
		change.Slot = opts.text(optSlot)
	case subCP:
		change.Field = templateService.FieldChampionPoint
		change.Category = models.ChampionCategory(opts.text(optCategory))
		if change.Index, err = opts.integer(optIndex); err != nil {
			return nil, err
		}
	}

	out, err := c.templateService.SetField(ctx, &templateService.SetFieldInput{
		RosterID: c.rosterID,
		EditorID: who.ID,
		Change:   change,
	})
	if err != nil {
		return nil, err
	}
	return c.status(ctx, who, messaging.EditActionUpdate, out.Template, true)
}

func (c *RaidCommand) setSkill(ctx context.Context, who invoker, opts options) (*discordgo.InteractionResponseData, error) {
	id, err := opts.integer(optID)
	if err != nil {
		return nil, err
	}
	index, err := opts.integer(optIndex)
	if err != nil {
		return nil, err
	}

	out, err := c.templateService.SetSkill(ctx, &templateService.SetSkillInput{
		RosterID: c.rosterID,
		EditorID: who.ID,
		Change: templateService.SkillChange{
			PlayerID: id,
			Index:    index,
			Category: opts.text(optCategory),
			Ability:  opts.text(optAbility),
		},
	})
	if err != nil {
		return nil, err
	}
	return c.status(ctx, who, messaging.EditActionUpdate, out.Template, true)
}

// status pairs an edit status message with the template it produced. A nil
// template yields a private status-only message.
func (c *RaidCommand) status(ctx context.Context, who invoker, action messaging.EditAction, tmpl *models.RaidTemplate, editing bool) (*discordgo.InteractionResponseData, error) {
	msg, err := c.messagingService.GetEditStatusMessage(ctx, &messaging.GetEditStatusMessageInput{
		Action:     action,
		EditorName: who.Name,
	})
	if err != nil {
		return nil, err
	}

	if tmpl == nil {
		data := renderStatus(msg.Title, msg.Message, nil)
		data.Components = []discordgo.MessageComponent{}
		return data, nil
	}

	table, err := renderTable(tmpl, c.catalog.EquipmentSlots(), editing)
	if err != nil {
		return nil, err
	}
	return renderStatus(msg.Title, msg.Message, table), nil
}

// failure turns err into the private error embed shown to the user
func (c *RaidCommand) failure(ctx context.Context, err error) *discordgo.InteractionResponseData {
	out, msgErr := c.messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{Err: err})
	if msgErr != nil {
		c.log.WithError(err).Error("raid command failed")
		return errorResponse("Error", "Something went wrong.")
	}
	if out.Kind == messaging.ErrorKindUnknown {
		c.log.WithError(err).Error("raid command failed")
	} else {
		c.log.WithError(err).WithField("kind", out.Kind).Debug("raid command rejected")
	}
	return errorResponse(out.Title, out.Message)
}

func invokerFrom(i *discordgo.InteractionCreate) invoker {
	var user *discordgo.User
	var nick string
	if i.Member != nil {
		user = i.Member.User
		nick = i.Member.Nick
	}
	if user == nil {
		user = i.User
	}
	if user == nil {
		return invoker{}
	}

	name := nick
	if name == "" {
		name = user.GlobalName
	}
	if name == "" {
		name = user.Username
	}
	return invoker{ID: user.ID, Name: name}
}

// options indexes subcommand options by name. Values are read without the
// discordgo typed accessors, which panic on a type mismatch.
type options map[string]*discordgo.ApplicationCommandInteractionDataOption

func newOptions(list []*discordgo.ApplicationCommandInteractionDataOption) options {
	out := make(options, len(list))
	for _, opt := range list {
		out[opt.Name] = opt
	}
	return out
}

func (o options) integer(name string) (int, error) {
	opt, ok := o[name]
	if !ok {
		return 0, raiderr.InvalidArgumentf("missing option %q", name)
	}
	switch v := opt.Value.(type) {
	case float64:
		return int(v), nil
	case int64:
		return int(v), nil
	case int:
		return v, nil
	}
	return 0, raiderr.InvalidArgumentf("option %q is not a number", name)
}

func (o options) text(name string) string {
	opt, ok := o[name]
	if !ok {
		return ""
	}
	s, _ := opt.Value.(string)
	return strings.TrimSpace(s)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

var (
	_ CommandHandler   = (*RaidCommand)(nil)
	_ ComponentHandler = (*RaidCommand)(nil)
)