package discord

import (
	"context"
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/raidtemplate/internal/catalog"
	raiderr "github.com/KirkDiggler/raidtemplate/internal/errors"
	"github.com/KirkDiggler/raidtemplate/internal/models"
	"github.com/KirkDiggler/raidtemplate/internal/services/messaging"
	messagingMocks "github.com/KirkDiggler/raidtemplate/internal/services/messaging/mocks"
	rosterService "github.com/KirkDiggler/raidtemplate/internal/services/roster"
	rosterMocks "github.com/KirkDiggler/raidtemplate/internal/services/roster/mocks"
	templateService "github.com/KirkDiggler/raidtemplate/internal/services/template"
	templateMocks "github.com/KirkDiggler/raidtemplate/internal/services/template/mocks"
)

type RaidCommandTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockRoster    *rosterMocks.MockService
	mockTemplate  *templateMocks.MockService
	mockMessaging *messagingMocks.MockService
	command       *RaidCommand
	ctx           context.Context
	who           invoker
}

func (s *RaidCommandTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRoster = rosterMocks.NewMockService(s.mockCtrl)
	s.mockTemplate = templateMocks.NewMockService(s.mockCtrl)
	s.mockMessaging = messagingMocks.NewMockService(s.mockCtrl)
	s.ctx = context.Background()
	s.who = invoker{ID: "user-1", Name: "Aria"}

	logger, _ := test.NewNullLogger()
	cmd, err := NewRaidCommand(&RaidCommandConfig{
		RosterID:         "default",
		RosterService:    s.mockRoster,
		TemplateService:  s.mockTemplate,
		MessagingService: s.mockMessaging,
		Catalog:          catalog.Default(),
		Logger:           logger,
	})
	s.Require().NoError(err)
	s.command = cmd
}

func (s *RaidCommandTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRaidCommandTestSuite(t *testing.T) {
	suite.Run(t, new(RaidCommandTestSuite))
}

func sub(name string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:    name,
		Type:    discordgo.ApplicationCommandOptionSubCommand,
		Options: opts,
	}
}

// intOpt mirrors the wire format, where integers arrive as JSON numbers
func intOpt(name string, value int) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionInteger,
		Value: float64(value),
	}
}

func strOpt(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: value,
	}
}

func (s *RaidCommandTestSuite) expectStatus(action messaging.EditAction, title string) {
	s.mockMessaging.EXPECT().
		GetEditStatusMessage(s.ctx, &messaging.GetEditStatusMessageInput{
			Action:     action,
			EditorName: "Aria",
		}).
		Return(&messaging.GetEditStatusMessageOutput{Title: title, Message: title + " message"}, nil)
}

func (s *RaidCommandTestSuite) TestNewRaidCommandValidation() {
	_, err := NewRaidCommand(nil)
	s.ErrorIs(err, ErrNilRaidCommandConfig)

	_, err = NewRaidCommand(&RaidCommandConfig{})
	s.ErrorIs(err, ErrEmptyRosterID)

	_, err = NewRaidCommand(&RaidCommandConfig{RosterID: "default"})
	s.ErrorIs(err, ErrNilRosterService)

	_, err = NewRaidCommand(&RaidCommandConfig{
		RosterID:         "default",
		RosterService:    s.mockRoster,
		TemplateService:  s.mockTemplate,
		MessagingService: s.mockMessaging,
	})
	s.ErrorIs(err, ErrNilCatalog)
}

func (s *RaidCommandTestSuite) TestCommandDefinition() {
	def := s.command.GetCommand()

	s.Equal("raid", def.Name)
	s.Len(def.Options, 17)

	byName := make(map[string]*discordgo.ApplicationCommandOption)
	for _, opt := range def.Options {
		s.Equal(discordgo.ApplicationCommandOptionSubCommand, opt.Type)
		byName[opt.Name] = opt
	}

	setup := byName[subSetup]
	s.Require().NotNil(setup)
	s.Require().Len(setup.Options, 3)
	s.Len(setup.Options[1].Choices, 14)
	s.False(setup.Options[2].Required)

	skill := byName[subSkill]
	s.Require().NotNil(skill)
	s.Equal(float64(models.SkillSlotCount-1), skill.Options[1].MaxValue)
	s.Len(skill.Options[2].Choices, len(catalog.Default().Categories()))
}

func (s *RaidCommandTestSuite) TestCards() {
	s.mockRoster.EXPECT().
		GetRoster(s.ctx, &rosterService.GetRosterInput{RosterID: "default"}).
		Return(&rosterService.GetRosterOutput{Roster: renderRoster()}, nil)

	data, err := s.command.run(s.ctx, s.who, sub(subCards))

	s.Require().NoError(err)
	s.Len(data.Embeds, 2)
}

func (s *RaidCommandTestSuite) TestPlayer() {
	s.mockRoster.EXPECT().
		GetPlayer(s.ctx, &rosterService.GetPlayerInput{RosterID: "default", PlayerID: 1}).
		Return(&rosterService.GetPlayerOutput{Player: renderRoster().Players[0]}, nil)

	data, err := s.command.run(s.ctx, s.who, sub(subPlayer, intOpt(optID, 1)))

	s.Require().NoError(err)
	s.Equal("#1 Aria", data.Embeds[0].Title)
}

func (s *RaidCommandTestSuite) TestPlayerNotFound() {
	s.mockRoster.EXPECT().
		GetPlayer(s.ctx, &rosterService.GetPlayerInput{RosterID: "default", PlayerID: 99}).
		Return(nil, raiderr.Wrapf(rosterService.ErrPlayerNotFound, "player %d", 99))

	data, err := s.command.run(s.ctx, s.who, sub(subPlayer, intOpt(optID, 99)))

	s.Require().NoError(err)
	s.Equal("Player not found", data.Embeds[0].Title)
}

func (s *RaidCommandTestSuite) TestTableShowsEditorView() {
	s.mockTemplate.EXPECT().
		GetView(s.ctx, &templateService.GetViewInput{RosterID: "default", EditorID: "user-1"}).
		Return(&templateService.GetViewOutput{Template: renderTemplate(), Editing: true}, nil)

	data, err := s.command.run(s.ctx, s.who, sub(subTable))

	s.Require().NoError(err)
	s.Equal("Sunspire (editing)", data.Embeds[0].Title)
	s.Equal(discordgo.MessageFlagsEphemeral, data.Flags)
}

func (s *RaidCommandTestSuite) TestRename() {
	renamed := renderRoster()
	renamed.Players[0].Name = "Aria Stormborn"

	s.mockRoster.EXPECT().
		UpdateName(s.ctx, &rosterService.UpdateNameInput{RosterID: "default", PlayerID: 1, Name: "Aria Stormborn"}).
		Return(&rosterService.UpdatePlayerOutput{Roster: renamed}, nil)

	data, err := s.command.run(s.ctx, s.who, sub(subRename, intOpt(optID, 1), strOpt(optName, "  Aria Stormborn ")))

	s.Require().NoError(err)
	s.Equal("#1 Aria Stormborn", data.Embeds[0].Title)
}

func (s *RaidCommandTestSuite) TestRole() {
	s.mockRoster.EXPECT().
		UpdateRole(s.ctx, &rosterService.UpdateRoleInput{RosterID: "default", PlayerID: 2, Role: models.RoleHeal}).
		Return(&rosterService.UpdatePlayerOutput{Roster: renderRoster()}, nil)

	data, err := s.command.run(s.ctx, s.who, sub(subRole, intOpt(optID, 2), strOpt(optRole, "Heal")))

	s.Require().NoError(err)
	s.Equal("#2 Brannoc", data.Embeds[0].Title)
}

func (s *RaidCommandTestSuite) TestClassesSplitsList() {
	s.mockRoster.EXPECT().
		UpdateClasses(s.ctx, &rosterService.UpdateClassesInput{
			RosterID: "default",
			PlayerID: 1,
			Classes:  []string{"Earthen Heart", "Ardent Flame"},
		}).
		Return(&rosterService.UpdatePlayerOutput{Roster: renderRoster()}, nil)

	_, err := s.command.run(s.ctx, s.who, sub(subClasses, intOpt(optID, 1), strOpt(optClasses, "Earthen Heart, Ardent Flame,")))

	s.NoError(err)
}

func (s *RaidCommandTestSuite) TestEnterEdit() {
	s.mockTemplate.EXPECT().
		EnterEdit(s.ctx, &templateService.EnterEditInput{RosterID: "default", EditorID: "user-1"}).
		Return(&templateService.EnterEditOutput{Session: &models.EditSession{ID: "edit-1", Working: renderTemplate()}}, nil)
	s.expectStatus(messaging.EditActionEnter, "Editing")

	data, err := s.command.run(s.ctx, s.who, sub(subEdit))

	s.Require().NoError(err)
	s.Require().Len(data.Embeds, 2)
	s.Equal("Editing", data.Embeds[0].Title)
	s.Equal("Sunspire (editing)", data.Embeds[1].Title)
	s.Equal(discordgo.MessageFlagsEphemeral, data.Flags)
}

func (s *RaidCommandTestSuite) TestSetupField() {
	s.mockTemplate.EXPECT().
		SetField(s.ctx, &templateService.SetFieldInput{
			RosterID: "default",
			EditorID: "user-1",
			Change: templateService.FieldChange{
				PlayerID: 1,
				Field:    templateService.FieldSetup,
				Slot:     "Head",
				Value:    "Olorime",
			},
		}).
		Return(&templateService.SetFieldOutput{Template: renderTemplate()}, nil)
	s.expectStatus(messaging.EditActionUpdate, "Updated")

	data, err := s.command.run(s.ctx, s.who, sub(subSetup, intOpt(optID, 1), strOpt(optSlot, "Head"), strOpt(optValue, "Olorime")))

	s.Require().NoError(err)
	s.Equal("Updated", data.Embeds[0].Title)
}

func (s *RaidCommandTestSuite) TestChampionPointField() {
	s.mockTemplate.EXPECT().
		SetField(s.ctx, &templateService.SetFieldInput{
			RosterID: "default",
			EditorID: "user-1",
			Change: templateService.FieldChange{
				PlayerID: 1,
				Field:    templateService.FieldChampionPoint,
				Category: models.ChampionMage,
				Index:    2,
				Value:    "Deadly Aim",
			},
		}).
		Return(&templateService.SetFieldOutput{Template: renderTemplate()}, nil)
	s.expectStatus(messaging.EditActionUpdate, "Updated")

	_, err := s.command.run(s.ctx, s.who, sub(subCP,
		intOpt(optID, 1), strOpt(optCategory, "mage"), intOpt(optIndex, 2), strOpt(optValue, "Deadly Aim")))

	s.NoError(err)
}

func (s *RaidCommandTestSuite) TestFoodWithoutValueClears() {
	s.mockTemplate.EXPECT().
		SetField(s.ctx, &templateService.SetFieldInput{
			RosterID: "default",
			EditorID: "user-1",
			Change:   templateService.FieldChange{PlayerID: 1, Field: templateService.FieldFood},
		}).
		Return(&templateService.SetFieldOutput{Template: renderTemplate()}, nil)
	s.expectStatus(messaging.EditActionUpdate, "Updated")

	_, err := s.command.run(s.ctx, s.who, sub(subFood, intOpt(optID, 1)))

	s.NoError(err)
}

func (s *RaidCommandTestSuite) TestSkill() {
	s.mockTemplate.EXPECT().
		SetSkill(s.ctx, &templateService.SetSkillInput{
			RosterID: "default",
			EditorID: "user-1",
			Change: templateService.SkillChange{
				PlayerID: 1,
				Index:    models.FrontUltimateSlot,
				Category: "dragonknight",
			},
		}).
		Return(&templateService.SetSkillOutput{Template: renderTemplate()}, nil)
	s.expectStatus(messaging.EditActionUpdate, "Updated")

	_, err := s.command.run(s.ctx, s.who, sub(subSkill,
		intOpt(optID, 1), intOpt(optIndex, models.FrontUltimateSlot), strOpt(optCategory, "dragonknight")))

	s.NoError(err)
}

func (s *RaidCommandTestSuite) TestSkillMissingIndex() {
	_, err := s.command.run(s.ctx, s.who, sub(subSkill, intOpt(optID, 1)))

	s.True(raiderr.IsInvalidArgument(err))
}

func (s *RaidCommandTestSuite) TestSave() {
	s.mockTemplate.EXPECT().
		Commit(s.ctx, &templateService.CommitInput{RosterID: "default", EditorID: "user-1"}).
		Return(&templateService.CommitOutput{Template: renderTemplate()}, nil)
	s.expectStatus(messaging.EditActionSave, "Saved")

	data, err := s.command.run(s.ctx, s.who, sub(subSave))

	s.Require().NoError(err)
	s.Equal("Saved", data.Embeds[0].Title)
	s.Equal("Sunspire", data.Embeds[1].Title)
	s.Zero(data.Flags)
}

func (s *RaidCommandTestSuite) TestCancelButton() {
	s.mockTemplate.EXPECT().
		Discard(s.ctx, &templateService.DiscardInput{RosterID: "default", EditorID: "user-1"}).
		Return(&templateService.DiscardOutput{}, nil)
	s.expectStatus(messaging.EditActionCancel, "Cancelled")

	data, err := s.command.press(s.ctx, s.who, ButtonCancel)

	s.Require().NoError(err)
	s.Len(data.Embeds, 1)
	s.NotNil(data.Components)
	s.Empty(data.Components)
}

func (s *RaidCommandTestSuite) TestReset() {
	s.mockTemplate.EXPECT().
		ResetTemplate(s.ctx, &templateService.ResetTemplateInput{RosterID: "default"}).
		Return(&templateService.ResetTemplateOutput{Template: renderTemplate()}, nil)
	s.expectStatus(messaging.EditActionReset, "Reset")

	data, err := s.command.run(s.ctx, s.who, sub(subReset))

	s.Require().NoError(err)
	s.Equal("Reset", data.Embeds[0].Title)
}

func (s *RaidCommandTestSuite) TestServiceErrorPropagates() {
	s.mockTemplate.EXPECT().
		Commit(s.ctx, gomock.Any()).
		Return(nil, templateService.ErrNotEditing)

	_, err := s.command.press(s.ctx, s.who, ButtonSave)

	s.ErrorIs(err, templateService.ErrNotEditing)
}

func (s *RaidCommandTestSuite) TestRaids() {
	data, err := s.command.run(s.ctx, s.who, sub(subRaids))

	s.Require().NoError(err)
	s.Contains(data.Embeds[0].Description, "Sunspire")
}

func (s *RaidCommandTestSuite) TestUnknownInputs() {
	_, err := s.command.run(s.ctx, s.who, sub("dance"))
	s.True(raiderr.IsInvalidArgument(err))

	_, err = s.command.press(s.ctx, s.who, "join_game")
	s.True(raiderr.IsInvalidArgument(err))

	s.True(s.command.HandlesComponent(ButtonEdit))
	s.False(s.command.HandlesComponent("join_game"))
}

func (s *RaidCommandTestSuite) TestFailureUsesFriendlyMessage() {
	s.mockMessaging.EXPECT().
		GetErrorMessage(s.ctx, &messaging.GetErrorMessageInput{Err: templateService.ErrNotEditing}).
		Return(&messaging.GetErrorMessageOutput{
			Kind:    messaging.ErrorKindNotEditing,
			Title:   "Not editing",
			Message: "Start with /raid edit.",
		}, nil)

	data := s.command.failure(s.ctx, templateService.ErrNotEditing)

	s.Equal("Not editing", data.Embeds[0].Title)
	s.Equal(discordgo.MessageFlagsEphemeral, data.Flags)
}

func (s *RaidCommandTestSuite) TestFailureWhenMessagingFails() {
	s.mockMessaging.EXPECT().
		GetErrorMessage(s.ctx, gomock.Any()).
		Return(nil, errors.New("boom"))

	data := s.command.failure(s.ctx, errors.New("redis down"))

	s.Equal("Error", data.Embeds[0].Title)
}

func TestInvokerFrom(t *testing.T) {
	tests := []struct {
		name string
		in   *discordgo.Interaction
		want invoker
	}{
		{
			name: "member nick",
			in: &discordgo.Interaction{Member: &discordgo.Member{
				Nick: "Tank Lead",
				User: &discordgo.User{ID: "1", Username: "aria", GlobalName: "Aria"},
			}},
			want: invoker{ID: "1", Name: "Tank Lead"},
		},
		{
			name: "global name",
			in:   &discordgo.Interaction{User: &discordgo.User{ID: "2", Username: "brannoc", GlobalName: "Brannoc"}},
			want: invoker{ID: "2", Name: "Brannoc"},
		},
		{
			name: "username",
			in:   &discordgo.Interaction{User: &discordgo.User{ID: "3", Username: "celwyn"}},
			want: invoker{ID: "3", Name: "celwyn"},
		},
		{
			name: "no user data",
			in:   &discordgo.Interaction{},
			want: invoker{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, invokerFrom(&discordgo.InteractionCreate{Interaction: tt.in}))
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList(" a, ,b "))
	assert.Nil(t, splitList(""))
}
