package template

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/raidtemplate/internal/catalog"
	"github.com/KirkDiggler/raidtemplate/internal/common/clock"
	clockMocks "github.com/KirkDiggler/raidtemplate/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/raidtemplate/internal/common/uuid/mocks"
	raiderr "github.com/KirkDiggler/raidtemplate/internal/errors"
	"github.com/KirkDiggler/raidtemplate/internal/models"
	draftRepo "github.com/KirkDiggler/raidtemplate/internal/repositories/draft"
	rosterRepo "github.com/KirkDiggler/raidtemplate/internal/repositories/roster"
	templateRepo "github.com/KirkDiggler/raidtemplate/internal/repositories/template"
	templateMocks "github.com/KirkDiggler/raidtemplate/internal/repositories/template/mocks"
)

type TemplateServiceTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockClock    *clockMocks.MockClock
	mockUUID     *uuidMocks.MockGenerator
	rosterRepo   *rosterRepo.InMemoryRepository
	templateRepo *templateRepo.InMemoryRepository
	draftRepo    *draftRepo.InMemoryRepository
	service      Service
	ctx          context.Context

	testTime   time.Time
	testRoster *models.Roster
}

func (s *TemplateServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockGenerator(s.mockCtrl)
	s.ctx = context.Background()
	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockUUID.EXPECT().NewID().Return("edit-1").AnyTimes()

	s.rosterRepo = rosterRepo.NewInMemory()
	s.templateRepo = templateRepo.NewInMemory()
	s.draftRepo = draftRepo.NewInMemory(clock.New())

	s.testRoster = &models.Roster{
		ID:       "default",
		RaidName: "Sunspire",
		Players:  derivePlayers(),
	}
	s.Require().NoError(s.rosterRepo.SaveRoster(s.ctx, &rosterRepo.SaveRosterInput{Roster: s.testRoster}))

	logger, _ := test.NewNullLogger()
	svc, err := NewService(&Config{
		RosterRepo:    s.rosterRepo,
		TemplateRepo:  s.templateRepo,
		DraftRepo:     s.draftRepo,
		Catalog:       catalog.Default(),
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
		Logger:        logger,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *TemplateServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTemplateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TemplateServiceTestSuite))
}

func (s *TemplateServiceTestSuite) live() *models.RaidTemplate {
	out, err := s.service.GetTemplate(s.ctx, &GetTemplateInput{RosterID: "default"})
	s.Require().NoError(err)
	return out.Template
}

func (s *TemplateServiceTestSuite) enterEdit(editorID string) {
	_, err := s.service.EnterEdit(s.ctx, &EnterEditInput{RosterID: "default", EditorID: editorID})
	s.Require().NoError(err)
}

func (s *TemplateServiceTestSuite) setFood(editorID, food string) {
	_, err := s.service.SetField(s.ctx, &SetFieldInput{
		RosterID: "default",
		EditorID: editorID,
		Change:   FieldChange{PlayerID: 1, Field: FieldFood, Value: food},
	})
	s.Require().NoError(err)
}

func (s *TemplateServiceTestSuite) TestNewServiceValidation() {
	_, err := NewService(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = NewService(&Config{RosterRepo: s.rosterRepo, TemplateRepo: s.templateRepo, DraftRepo: s.draftRepo})
	s.ErrorIs(err, ErrNilCatalog)

	_, err = NewService(&Config{RosterRepo: s.rosterRepo})
	s.ErrorIs(err, ErrNilTemplateRepo)
}

func (s *TemplateServiceTestSuite) TestGetTemplateDerivesOnFirstRead() {
	_, err := s.templateRepo.GetTemplate(s.ctx, &templateRepo.GetTemplateInput{RosterID: "default"})
	s.Require().ErrorIs(err, templateRepo.ErrTemplateNotFound)

	tmpl := s.live()
	s.Equal("default", tmpl.ID)
	s.Equal("Sunspire", tmpl.RaidName)
	s.Equal([]int{1, 4}, tmpl.PlayerIDs())
	s.Len(tmpl.Players[1].Setup, len(catalog.Default().EquipmentSlots()))

	stored, err := s.templateRepo.GetTemplate(s.ctx, &templateRepo.GetTemplateInput{RosterID: "default"})
	s.Require().NoError(err)
	s.Equal(tmpl, stored)
}

func (s *TemplateServiceTestSuite) TestGetTemplateIsASnapshotOfTheRoster() {
	before := s.live()

	renamed := s.testRoster.Clone()
	renamed.Players[0].Name = "Aria the Bold"
	s.Require().NoError(s.rosterRepo.SaveRoster(s.ctx, &rosterRepo.SaveRosterInput{Roster: renamed}))

	s.Equal(before, s.live())
}

func (s *TemplateServiceTestSuite) TestGetTemplateRosterNotFound() {
	_, err := s.service.GetTemplate(s.ctx, &GetTemplateInput{RosterID: "other"})
	s.ErrorIs(err, ErrRosterNotFound)
}

func (s *TemplateServiceTestSuite) TestEnterEditCreatesSession() {
	out, err := s.service.EnterEdit(s.ctx, &EnterEditInput{RosterID: "default", EditorID: "user-1"})
	s.Require().NoError(err)

	s.Equal("edit-1", out.Session.ID)
	s.Equal("user-1", out.Session.EditorID)
	s.Equal(s.testTime, out.Session.StartedAt)
	s.Equal(s.live(), out.Session.Working)
}

func (s *TemplateServiceTestSuite) TestEnterEditTwice() {
	s.enterEdit("user-1")

	_, err := s.service.EnterEdit(s.ctx, &EnterEditInput{RosterID: "default", EditorID: "user-1"})
	s.ErrorIs(err, ErrAlreadyEditing)
}

func (s *TemplateServiceTestSuite) TestEditIsolation() {
	snapshot := s.live()
	s.enterEdit("user-1")

	s.setFood("user-1", "Bewitched Sugar Skulls")
	_, err := s.service.SetField(s.ctx, &SetFieldInput{
		RosterID: "default",
		EditorID: "user-1",
		Change:   FieldChange{PlayerID: 1, Field: FieldChampionPoint, Category: models.ChampionWarrior, Index: 0, Value: "Duelist's Rebuff"},
	})
	s.Require().NoError(err)
	_, err = s.service.SetSkill(s.ctx, &SetSkillInput{
		RosterID: "default",
		EditorID: "user-1",
		Change:   SkillChange{PlayerID: 4, Index: 0, Category: "nightblade"},
	})
	s.Require().NoError(err)

	s.Equal(snapshot, s.live())

	view, err := s.service.GetView(s.ctx, &GetViewInput{RosterID: "default", EditorID: "user-1"})
	s.Require().NoError(err)
	s.True(view.Editing)
	s.Equal("Bewitched Sugar Skulls", view.Template.Players[1].Food)
	s.Equal("Duelist's Rebuff", view.Template.Players[1].ChampionPoints.Warrior[0])
	s.Equal("Surprise Attack", view.Template.Players[4].Skills[0].Ability)

	other, err := s.service.GetView(s.ctx, &GetViewInput{RosterID: "default", EditorID: "user-2"})
	s.Require().NoError(err)
	s.False(other.Editing)
	s.Equal(snapshot, other.Template)

	anonymous, err := s.service.GetView(s.ctx, &GetViewInput{RosterID: "default"})
	s.Require().NoError(err)
	s.Equal(snapshot, anonymous.Template)
}

func (s *TemplateServiceTestSuite) TestReturnedWorkingCopyIsNotShared() {
	s.enterEdit("user-1")

	out, err := s.service.SetField(s.ctx, &SetFieldInput{
		RosterID: "default",
		EditorID: "user-1",
		Change:   FieldChange{PlayerID: 1, Field: FieldPotion, Value: "Essence of Health"},
	})
	s.Require().NoError(err)
	out.Template.Players[1].Potion = "mutated by caller"

	view, err := s.service.GetView(s.ctx, &GetViewInput{RosterID: "default", EditorID: "user-1"})
	s.Require().NoError(err)
	s.Equal("Essence of Health", view.Template.Players[1].Potion)
}

func (s *TemplateServiceTestSuite) TestCommit() {
	s.enterEdit("user-1")
	s.setFood("user-1", "Artaeum Takeaway Broth")

	view, err := s.service.GetView(s.ctx, &GetViewInput{RosterID: "default", EditorID: "user-1"})
	s.Require().NoError(err)

	out, err := s.service.Commit(s.ctx, &CommitInput{RosterID: "default", EditorID: "user-1"})
	s.Require().NoError(err)
	s.Equal(view.Template, out.Template)
	s.Equal(view.Template, s.live())

	after, err := s.service.GetView(s.ctx, &GetViewInput{RosterID: "default", EditorID: "user-1"})
	s.Require().NoError(err)
	s.False(after.Editing)

	_, err = s.service.Commit(s.ctx, &CommitInput{RosterID: "default", EditorID: "user-1"})
	s.ErrorIs(err, ErrNotEditing)
}

func (s *TemplateServiceTestSuite) TestDiscard() {
	snapshot := s.live()
	s.enterEdit("user-1")
	s.setFood("user-1", "Bewitched Sugar Skulls")

	_, err := s.service.Discard(s.ctx, &DiscardInput{RosterID: "default", EditorID: "user-1"})
	s.Require().NoError(err)

	s.Equal(snapshot, s.live())
	s.Empty(s.live().Players[1].Food)

	_, err = s.service.Discard(s.ctx, &DiscardInput{RosterID: "default", EditorID: "user-1"})
	s.ErrorIs(err, ErrNotEditing)
	s.True(raiderr.IsFailedPrecondition(err))
}

func (s *TemplateServiceTestSuite) TestEditorsAreIndependent() {
	s.enterEdit("user-1")
	s.enterEdit("user-2")

	s.setFood("user-1", "Bewitched Sugar Skulls")
	s.setFood("user-2", "Artaeum Takeaway Broth")

	_, err := s.service.Commit(s.ctx, &CommitInput{RosterID: "default", EditorID: "user-1"})
	s.Require().NoError(err)
	s.Equal("Bewitched Sugar Skulls", s.live().Players[1].Food)

	view, err := s.service.GetView(s.ctx, &GetViewInput{RosterID: "default", EditorID: "user-2"})
	s.Require().NoError(err)
	s.Equal("Artaeum Takeaway Broth", view.Template.Players[1].Food)
}

func (s *TemplateServiceTestSuite) TestSetFieldWithoutEdit() {
	_, err := s.service.SetField(s.ctx, &SetFieldInput{
		RosterID: "default",
		EditorID: "user-1",
		Change:   FieldChange{PlayerID: 1, Field: FieldFood, Value: "Bread"},
	})
	s.ErrorIs(err, ErrNotEditing)

	_, err = s.service.SetSkill(s.ctx, &SetSkillInput{
		RosterID: "default",
		EditorID: "user-1",
		Change:   SkillChange{PlayerID: 1, Index: 0, Category: "templar"},
	})
	s.ErrorIs(err, ErrNotEditing)
}

func (s *TemplateServiceTestSuite) TestInvalidEditLeavesWorkingCopyUnchanged() {
	s.enterEdit("user-1")
	s.setFood("user-1", "Bewitched Sugar Skulls")

	before, err := s.service.GetView(s.ctx, &GetViewInput{RosterID: "default", EditorID: "user-1"})
	s.Require().NoError(err)

	_, err = s.service.SetField(s.ctx, &SetFieldInput{
		RosterID: "default",
		EditorID: "user-1",
		Change:   FieldChange{PlayerID: 1, Field: FieldSet, Index: 9, Value: "Olorime"},
	})
	s.ErrorIs(err, ErrInvalidTarget)

	_, err = s.service.SetField(s.ctx, &SetFieldInput{
		RosterID: "default",
		EditorID: "user-1",
		Change:   FieldChange{PlayerID: 42, Field: FieldFood, Value: "Bread"},
	})
	s.ErrorIs(err, ErrPlayerNotFound)

	_, err = s.service.SetField(s.ctx, &SetFieldInput{
		RosterID: "default",
		EditorID: "user-1",
		Change:   FieldChange{PlayerID: 1, Field: FieldSetup, Slot: "Head", Value: "Not A Set"},
	})
	s.ErrorIs(err, ErrInvalidValue)

	after, err := s.service.GetView(s.ctx, &GetViewInput{RosterID: "default", EditorID: "user-1"})
	s.Require().NoError(err)
	s.Equal(before.Template, after.Template)
}

func (s *TemplateServiceTestSuite) TestSetSetupSlot() {
	s.enterEdit("user-1")

	out, err := s.service.SetField(s.ctx, &SetFieldInput{
		RosterID: "default",
		EditorID: "user-1",
		Change:   FieldChange{PlayerID: 1, Field: FieldSetup, Slot: "Head", Value: "Ebon Armory"},
	})
	s.Require().NoError(err)
	s.Equal("Ebon Armory", out.Template.Players[1].Setup["Head"])

	// clearing a slot is always allowed
	out, err = s.service.SetField(s.ctx, &SetFieldInput{
		RosterID: "default",
		EditorID: "user-1",
		Change:   FieldChange{PlayerID: 1, Field: FieldSetup, Slot: "Head"},
	})
	s.Require().NoError(err)
	s.Empty(out.Template.Players[1].Setup["Head"])
}

func (s *TemplateServiceTestSuite) TestResetTemplate() {
	s.enterEdit("user-1")
	s.setFood("user-1", "Bewitched Sugar Skulls")
	_, err := s.service.Commit(s.ctx, &CommitInput{RosterID: "default", EditorID: "user-1"})
	s.Require().NoError(err)

	renamed := s.testRoster.Clone()
	renamed.Players[0].Name = "Aria the Bold"
	s.Require().NoError(s.rosterRepo.SaveRoster(s.ctx, &rosterRepo.SaveRosterInput{Roster: renamed}))

	out, err := s.service.ResetTemplate(s.ctx, &ResetTemplateInput{RosterID: "default"})
	s.Require().NoError(err)
	s.Equal("Aria the Bold", out.Template.Players[1].Name)
	s.Empty(out.Template.Players[1].Food)
	s.Equal(out.Template, s.live())
}

func (s *TemplateServiceTestSuite) TestExportImportRoundTrip() {
	s.enterEdit("user-1")
	s.setFood("user-1", "Bewitched Sugar Skulls")
	_, err := s.service.SetSkill(s.ctx, &SetSkillInput{
		RosterID: "default",
		EditorID: "user-1",
		Change:   SkillChange{PlayerID: 1, Index: models.FrontUltimateSlot, Category: "dragonknight", Ability: "Standard of Might"},
	})
	s.Require().NoError(err)
	_, err = s.service.Commit(s.ctx, &CommitInput{RosterID: "default", EditorID: "user-1"})
	s.Require().NoError(err)

	exported, err := s.service.ExportTemplate(s.ctx, &ExportTemplateInput{RosterID: "default"})
	s.Require().NoError(err)
	s.Contains(string(exported.Data), "\n  \"raidName\": \"Sunspire\"")

	committed := s.live()
	_, err = s.service.ResetTemplate(s.ctx, &ResetTemplateInput{RosterID: "default"})
	s.Require().NoError(err)

	imported, err := s.service.ImportTemplate(s.ctx, &ImportTemplateInput{RosterID: "default", Data: exported.Data})
	s.Require().NoError(err)
	s.Equal(committed, imported.Template)
	s.Equal(committed, s.live())
}

func (s *TemplateServiceTestSuite) TestImportRejectsMismatchedPlayers() {
	tmpl := s.live()
	delete(tmpl.Players, 4)
	data, err := json.Marshal(tmpl)
	s.Require().NoError(err)

	_, err = s.service.ImportTemplate(s.ctx, &ImportTemplateInput{RosterID: "default", Data: data})
	s.ErrorIs(err, ErrTemplateMismatch)

	tmpl.Players[2] = &models.PlayerConfig{Player: models.Player{ID: 2}}
	data, err = json.Marshal(tmpl)
	s.Require().NoError(err)

	_, err = s.service.ImportTemplate(s.ctx, &ImportTemplateInput{RosterID: "default", Data: data})
	s.ErrorIs(err, ErrTemplateMismatch)
}

func (s *TemplateServiceTestSuite) TestImportRejectsUnknownCatalogValues() {
	tmpl := s.live()
	tmpl.Players[1].Setup["Head"] = "Not A Set"
	data, err := json.Marshal(tmpl)
	s.Require().NoError(err)

	_, err = s.service.ImportTemplate(s.ctx, &ImportTemplateInput{RosterID: "default", Data: data})
	s.ErrorIs(err, ErrInvalidValue)

	tmpl = s.live()
	tmpl.Players[1].Skills[0] = models.SkillSlot{Category: "templar", Ability: "Molten Whip"}
	data, err = json.Marshal(tmpl)
	s.Require().NoError(err)

	_, err = s.service.ImportTemplate(s.ctx, &ImportTemplateInput{RosterID: "default", Data: data})
	s.ErrorIs(err, ErrInvalidValue)
}

func (s *TemplateServiceTestSuite) TestImportRequiresEverySlot() {
	before := s.live()

	tmpl := s.live()
	tmpl.Players[1].Setup = nil
	data, err := json.Marshal(tmpl)
	s.Require().NoError(err)

	_, err = s.service.ImportTemplate(s.ctx, &ImportTemplateInput{RosterID: "default", Data: data})
	s.ErrorIs(err, ErrTemplateMismatch)

	tmpl = s.live()
	delete(tmpl.Players[1].Setup, "Chest")
	data, err = json.Marshal(tmpl)
	s.Require().NoError(err)

	_, err = s.service.ImportTemplate(s.ctx, &ImportTemplateInput{RosterID: "default", Data: data})
	s.ErrorIs(err, ErrTemplateMismatch)
	s.Equal(before, s.live())
}

func (s *TemplateServiceTestSuite) TestImportRequiresTwelveSkills() {
	before := s.live()
	data, err := json.Marshal(before)
	s.Require().NoError(err)

	var doc map[string]any
	s.Require().NoError(json.Unmarshal(data, &doc))
	player := doc["players"].(map[string]any)["1"].(map[string]any)

	for _, skills := range []any{
		player["skills"].([]any)[:3],
		append(player["skills"].([]any), map[string]any{}),
		nil,
	} {
		player["skills"] = skills
		edited, err := json.Marshal(doc)
		s.Require().NoError(err)

		_, err = s.service.ImportTemplate(s.ctx, &ImportTemplateInput{RosterID: "default", Data: edited})
		s.ErrorIs(err, ErrTemplateMismatch)
	}
	s.Equal(before, s.live())
}

func (s *TemplateServiceTestSuite) TestImportRejectsBadJSON() {
	_, err := s.service.ImportTemplate(s.ctx, &ImportTemplateInput{RosterID: "default", Data: []byte("{")})
	s.True(raiderr.IsInvalidArgument(err))
}

func (s *TemplateServiceTestSuite) TestEmptyIDs() {
	_, err := s.service.GetTemplate(s.ctx, &GetTemplateInput{})
	s.ErrorIs(err, ErrEmptyRosterID)

	_, err = s.service.EnterEdit(s.ctx, &EnterEditInput{RosterID: "default"})
	s.ErrorIs(err, ErrEmptyEditorID)

	_, err = s.service.Commit(s.ctx, nil)
	s.ErrorIs(err, ErrEmptyRosterID)
}

type TemplateServiceFailureTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockTemplateRepo *templateMocks.MockRepository
	draftRepo        *draftRepo.InMemoryRepository
	service          Service
	ctx              context.Context
}

func (s *TemplateServiceFailureTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockTemplateRepo = templateMocks.NewMockRepository(s.mockCtrl)
	s.draftRepo = draftRepo.NewInMemory(clock.New())
	s.ctx = context.Background()

	logger, _ := test.NewNullLogger()
	svc, err := NewService(&Config{
		RosterRepo:   rosterRepo.NewInMemory(),
		TemplateRepo: s.mockTemplateRepo,
		DraftRepo:    s.draftRepo,
		Catalog:      catalog.Default(),
		Logger:       logger,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *TemplateServiceFailureTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTemplateServiceFailureTestSuite(t *testing.T) {
	suite.Run(t, new(TemplateServiceFailureTestSuite))
}

func (s *TemplateServiceFailureTestSuite) TestCommitKeepsDraftWhenSaveFails() {
	session := &models.EditSession{
		ID:       "edit-1",
		RosterID: "default",
		EditorID: "user-1",
		Working:  Derive("Sunspire", derivePlayers(), []string{"Head"}),
	}
	s.Require().NoError(s.draftRepo.SaveDraft(s.ctx, &draftRepo.SaveDraftInput{Session: session}))

	s.mockTemplateRepo.EXPECT().
		SaveTemplate(s.ctx, gomock.Any()).
		Return(errors.New("redis down"))

	_, err := s.service.Commit(s.ctx, &CommitInput{RosterID: "default", EditorID: "user-1"})
	s.Error(err)

	_, err = s.draftRepo.GetDraft(s.ctx, &draftRepo.GetDraftInput{RosterID: "default", EditorID: "user-1"})
	s.NoError(err)
}

func (s *TemplateServiceFailureTestSuite) TestGetTemplateRepositoryError() {
	s.mockTemplateRepo.EXPECT().
		GetTemplate(s.ctx, &templateRepo.GetTemplateInput{RosterID: "default"}).
		Return(nil, errors.New("redis down"))

	_, err := s.service.GetTemplate(s.ctx, &GetTemplateInput{RosterID: "default"})
	s.Error(err)
	s.NotErrorIs(err, ErrRosterNotFound)
}
