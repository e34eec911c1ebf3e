package template

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/raidtemplate/internal/catalog"
	"github.com/KirkDiggler/raidtemplate/internal/common/clock"
	"github.com/KirkDiggler/raidtemplate/internal/common/uuid"
	raiderr "github.com/KirkDiggler/raidtemplate/internal/errors"
	"github.com/KirkDiggler/raidtemplate/internal/models"
	draftRepo "github.com/KirkDiggler/raidtemplate/internal/repositories/draft"
	rosterRepo "github.com/KirkDiggler/raidtemplate/internal/repositories/roster"
	templateRepo "github.com/KirkDiggler/raidtemplate/internal/repositories/template"
)

type service struct {
	rosterRepo    rosterRepo.Repository
	templateRepo  templateRepo.Repository
	draftRepo     draftRepo.Repository
	catalog       *catalog.Catalog
	clock         clock.Clock
	uuidGenerator uuid.Generator
	draftTTL      time.Duration
	log           logrus.FieldLogger
}

// NewService creates a new template service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.RosterRepo == nil {
		return nil, ErrNilRosterRepo
	}
	if cfg.TemplateRepo == nil {
		return nil, ErrNilTemplateRepo
	}
	if cfg.DraftRepo == nil {
		return nil, ErrNilDraftRepo
	}
	if cfg.Catalog == nil {
		return nil, ErrNilCatalog
	}

	svc := &service{
		rosterRepo:    cfg.RosterRepo,
		templateRepo:  cfg.TemplateRepo,
		draftRepo:     cfg.DraftRepo,
		catalog:       cfg.Catalog,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		draftTTL:      cfg.DraftTTL,
		log:           cfg.Logger,
	}

	if svc.clock == nil {
		svc.clock = clock.New()
	}
	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.New()
	}
	if svc.draftTTL <= 0 {
		svc.draftTTL = DefaultDraftTTL
	}
	if svc.log == nil {
		svc.log = logrus.StandardLogger()
	}
	svc.log = svc.log.WithField("component", "template")

	return svc, nil
}

// GetTemplate returns the live template
func (s *service) GetTemplate(ctx context.Context, input *GetTemplateInput) (*GetTemplateOutput, error) {
	if input == nil || input.RosterID == "" {
		return nil, ErrEmptyRosterID
	}

	tmpl, err := s.live(ctx, input.RosterID)
	if err != nil {
		return nil, err
	}

	return &GetTemplateOutput{Template: tmpl}, nil
}

// GetView serves the working copy to an editor in edit mode
func (s *service) GetView(ctx context.Context, input *GetViewInput) (*GetViewOutput, error) {
	if input == nil || input.RosterID == "" {
		return nil, ErrEmptyRosterID
	}

	if input.EditorID != "" {
		session, err := s.draft(ctx, input.RosterID, input.EditorID)
		if err == nil {
			return &GetViewOutput{Template: session.Working, Editing: true}, nil
		}
		if !errors.Is(err, ErrNotEditing) {
			return nil, err
		}
	}

	tmpl, err := s.live(ctx, input.RosterID)
	if err != nil {
		return nil, err
	}

	return &GetViewOutput{Template: tmpl}, nil
}

// EnterEdit stores a deep copy of the live template as the editor's working copy
func (s *service) EnterEdit(ctx context.Context, input *EnterEditInput) (*EnterEditOutput, error) {
	if input == nil {
		return nil, ErrEmptyRosterID
	}
	if err := validateEditor(input.RosterID, input.EditorID); err != nil {
		return nil, err
	}

	_, err := s.draft(ctx, input.RosterID, input.EditorID)
	if err == nil {
		return nil, ErrAlreadyEditing
	}
	if !errors.Is(err, ErrNotEditing) {
		return nil, err
	}

	tmpl, err := s.live(ctx, input.RosterID)
	if err != nil {
		return nil, err
	}

	session := &models.EditSession{
		ID:        s.uuidGenerator.NewID(),
		RosterID:  input.RosterID,
		EditorID:  input.EditorID,
		StartedAt: s.clock.Now(),
		Working:   tmpl.Clone(),
	}

	if err := s.saveDraft(ctx, session); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"roster_id":  input.RosterID,
		"editor_id":  input.EditorID,
		"session_id": session.ID,
	}).Info("edit started")

	return &EnterEditOutput{Session: session}, nil
}

// SetField applies change to a copy of the working copy and stores the copy
func (s *service) SetField(ctx context.Context, input *SetFieldInput) (*SetFieldOutput, error) {
	if input == nil {
		return nil, ErrEmptyRosterID
	}

	if err := s.validateFieldValue(input.Change); err != nil {
		return nil, err
	}

	next, err := s.edit(ctx, input.RosterID, input.EditorID, func(tmpl *models.RaidTemplate) error {
		return ApplyField(tmpl, input.Change)
	})
	if err != nil {
		return nil, err
	}

	return &SetFieldOutput{Template: next}, nil
}

// SetSkill applies change to a copy of the working copy and stores the copy
func (s *service) SetSkill(ctx context.Context, input *SetSkillInput) (*SetSkillOutput, error) {
	if input == nil {
		return nil, ErrEmptyRosterID
	}

	next, err := s.edit(ctx, input.RosterID, input.EditorID, func(tmpl *models.RaidTemplate) error {
		return ApplySkill(tmpl, s.catalog, input.Change)
	})
	if err != nil {
		return nil, err
	}

	return &SetSkillOutput{Template: next}, nil
}

// Commit makes the working copy live in a single write, then drops the draft
func (s *service) Commit(ctx context.Context, input *CommitInput) (*CommitOutput, error) {
	if input == nil {
		return nil, ErrEmptyRosterID
	}
	if err := validateEditor(input.RosterID, input.EditorID); err != nil {
		return nil, err
	}

	session, err := s.draft(ctx, input.RosterID, input.EditorID)
	if err != nil {
		return nil, err
	}

	live := session.Working.Clone()
	live.ID = input.RosterID

	if err := s.templateRepo.SaveTemplate(ctx, &templateRepo.SaveTemplateInput{Template: live}); err != nil {
		return nil, raiderr.Wrapf(err, "failed to save template %s", input.RosterID)
	}

	if err := s.deleteDraft(ctx, input.RosterID, input.EditorID); err != nil {
		// the commit already happened; a stale draft expires on its own
		s.log.WithError(err).WithField("editor_id", input.EditorID).Warn("failed to drop draft after commit")
	}

	s.log.WithFields(logrus.Fields{
		"roster_id":  input.RosterID,
		"editor_id":  input.EditorID,
		"session_id": session.ID,
	}).Info("edit committed")

	return &CommitOutput{Template: live}, nil
}

// Discard drops the working copy
func (s *service) Discard(ctx context.Context, input *DiscardInput) (*DiscardOutput, error) {
	if input == nil {
		return nil, ErrEmptyRosterID
	}
	if err := validateEditor(input.RosterID, input.EditorID); err != nil {
		return nil, err
	}

	if _, err := s.draft(ctx, input.RosterID, input.EditorID); err != nil {
		return nil, err
	}

	if err := s.deleteDraft(ctx, input.RosterID, input.EditorID); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"roster_id": input.RosterID,
		"editor_id": input.EditorID,
	}).Info("edit discarded")

	return &DiscardOutput{}, nil
}

// ResetTemplate replaces the live template with one derived from the current roster
func (s *service) ResetTemplate(ctx context.Context, input *ResetTemplateInput) (*ResetTemplateOutput, error) {
	if input == nil || input.RosterID == "" {
		return nil, ErrEmptyRosterID
	}

	tmpl, err := s.derive(ctx, input.RosterID)
	if err != nil {
		return nil, err
	}

	s.log.WithField("roster_id", input.RosterID).Info("template reset")

	return &ResetTemplateOutput{Template: tmpl}, nil
}

// ExportTemplate returns the live template as indented JSON
func (s *service) ExportTemplate(ctx context.Context, input *ExportTemplateInput) (*ExportTemplateOutput, error) {
	if input == nil || input.RosterID == "" {
		return nil, ErrEmptyRosterID
	}

	tmpl, err := s.live(ctx, input.RosterID)
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(tmpl, "", "  ")
	if err != nil {
		return nil, raiderr.Internal(err, "failed to encode template")
	}

	return &ExportTemplateOutput{Data: data}, nil
}

// ImportTemplate validates a JSON template against the roster and catalog and makes it live
func (s *service) ImportTemplate(ctx context.Context, input *ImportTemplateInput) (*ImportTemplateOutput, error) {
	if input == nil || input.RosterID == "" {
		return nil, ErrEmptyRosterID
	}

	var tmpl models.RaidTemplate
	if err := json.Unmarshal(input.Data, &tmpl); err != nil {
		return nil, raiderr.WrapWithCode(err, raiderr.CodeInvalidArgument, "failed to decode template")
	}
	if err := checkSkillCounts(input.Data); err != nil {
		return nil, err
	}

	roster, err := s.roster(ctx, input.RosterID)
	if err != nil {
		return nil, err
	}

	if err := s.validateImport(roster, &tmpl); err != nil {
		return nil, err
	}

	tmpl.ID = input.RosterID
	if err := s.templateRepo.SaveTemplate(ctx, &templateRepo.SaveTemplateInput{Template: &tmpl}); err != nil {
		return nil, raiderr.Wrapf(err, "failed to save template %s", input.RosterID)
	}

	s.log.WithFields(logrus.Fields{
		"roster_id": input.RosterID,
		"players":   len(tmpl.Players),
	}).Info("template imported")

	return &ImportTemplateOutput{Template: &tmpl}, nil
}

// edit loads the working copy, applies apply to a clone and stores the clone.
// The stored draft is untouched when apply fails.
func (s *service) edit(ctx context.Context, rosterID, editorID string, apply func(*models.RaidTemplate) error) (*models.RaidTemplate, error) {
	if err := validateEditor(rosterID, editorID); err != nil {
		return nil, err
	}

	session, err := s.draft(ctx, rosterID, editorID)
	if err != nil {
		return nil, err
	}

	next := session.Clone()
	if err := apply(next.Working); err != nil {
		return nil, err
	}

	if err := s.saveDraft(ctx, next); err != nil {
		return nil, err
	}

	return next.Working, nil
}

func (s *service) validateFieldValue(change FieldChange) error {
	if change.Field != FieldSetup || change.Value == "" {
		return nil
	}
	if !s.catalog.HasSet(change.Value) {
		return raiderr.Wrapf(ErrInvalidValue, "unknown set %q", change.Value)
	}
	return nil
}

func (s *service) validateImport(roster *models.Roster, tmpl *models.RaidTemplate) error {
	want := roster.PlayerIDs()
	sort.Ints(want)
	got := tmpl.PlayerIDs()

	if len(want) != len(got) {
		return raiderr.Wrapf(ErrTemplateMismatch, "expected %d players, got %d", len(want), len(got))
	}
	for i := range want {
		if want[i] != got[i] {
			return raiderr.Wrapf(ErrTemplateMismatch, "unexpected player id %d", got[i]).
				WithMeta("player_id", got[i])
		}
	}

	for id, cfg := range tmpl.Players {
		if cfg == nil || cfg.ID != id {
			return raiderr.Wrapf(ErrTemplateMismatch, "player %d is keyed under the wrong id", id).
				WithMeta("player_id", id)
		}
		for _, slot := range s.catalog.EquipmentSlots() {
			if _, ok := cfg.Setup[slot]; !ok {
				return raiderr.Wrapf(ErrTemplateMismatch, "player %d is missing equipment slot %q", id, slot).
					WithMeta("player_id", id)
			}
		}
		for slot, set := range cfg.Setup {
			if !s.catalog.HasSlot(slot) {
				return raiderr.Wrapf(ErrInvalidTarget, "unknown equipment slot %q", slot).
					WithMeta("player_id", id)
			}
			if set != "" && !s.catalog.HasSet(set) {
				return raiderr.Wrapf(ErrInvalidValue, "unknown set %q", set).
					WithMeta("player_id", id)
			}
		}
		for i, skill := range cfg.Skills {
			if skill.IsEmpty() {
				continue
			}
			if !s.catalog.HasAbility(skill.Category, skill.Ability) {
				return raiderr.Wrapf(ErrInvalidValue, "skill %d: ability %q is not in category %q", i, skill.Ability, skill.Category).
					WithMeta("player_id", id)
			}
		}
	}

	return nil
}

// checkSkillCounts rejects skill lists that a fixed-size array would pad or cut
func checkSkillCounts(data []byte) error {
	var raw struct {
		Players map[string]struct {
			Skills []json.RawMessage `json:"skills"`
		} `json:"players"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return raiderr.WrapWithCode(err, raiderr.CodeInvalidArgument, "failed to decode template")
	}

	for id, p := range raw.Players {
		if len(p.Skills) != models.SkillSlotCount {
			return raiderr.Wrapf(ErrTemplateMismatch, "player %s has %d skill slots, expected %d", id, len(p.Skills), models.SkillSlotCount).
				WithMeta("player_id", id)
		}
	}
	return nil
}

// live returns the stored template, deriving and saving it on first read
func (s *service) live(ctx context.Context, rosterID string) (*models.RaidTemplate, error) {
	tmpl, err := s.templateRepo.GetTemplate(ctx, &templateRepo.GetTemplateInput{RosterID: rosterID})
	if err == nil {
		return tmpl, nil
	}
	if !errors.Is(err, templateRepo.ErrTemplateNotFound) {
		return nil, raiderr.Wrapf(err, "failed to get template %s", rosterID)
	}

	s.log.WithField("roster_id", rosterID).Debug("deriving template from roster")
	return s.derive(ctx, rosterID)
}

func (s *service) derive(ctx context.Context, rosterID string) (*models.RaidTemplate, error) {
	roster, err := s.roster(ctx, rosterID)
	if err != nil {
		return nil, err
	}

	tmpl := Derive(roster.RaidName, roster.Players, s.catalog.EquipmentSlots())
	tmpl.ID = rosterID

	if err := s.templateRepo.SaveTemplate(ctx, &templateRepo.SaveTemplateInput{Template: tmpl}); err != nil {
		return nil, raiderr.Wrapf(err, "failed to save template %s", rosterID)
	}

	return tmpl, nil
}

func (s *service) roster(ctx context.Context, rosterID string) (*models.Roster, error) {
	roster, err := s.rosterRepo.GetRoster(ctx, &rosterRepo.GetRosterInput{RosterID: rosterID})
	if err != nil {
		if errors.Is(err, rosterRepo.ErrRosterNotFound) {
			return nil, ErrRosterNotFound
		}
		return nil, raiderr.Wrapf(err, "failed to get roster %s", rosterID)
	}
	return roster, nil
}

func (s *service) draft(ctx context.Context, rosterID, editorID string) (*models.EditSession, error) {
	session, err := s.draftRepo.GetDraft(ctx, &draftRepo.GetDraftInput{
		RosterID: rosterID,
		EditorID: editorID,
	})
	if err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			return nil, ErrNotEditing
		}
		return nil, raiderr.Wrapf(err, "failed to get draft for %s", editorID)
	}
	return session, nil
}

func (s *service) saveDraft(ctx context.Context, session *models.EditSession) error {
	err := s.draftRepo.SaveDraft(ctx, &draftRepo.SaveDraftInput{
		Session: session,
		TTL:     s.draftTTL,
	})
	if err != nil {
		return raiderr.Wrapf(err, "failed to save draft for %s", session.EditorID)
	}
	return nil
}

func (s *service) deleteDraft(ctx context.Context, rosterID, editorID string) error {
	err := s.draftRepo.DeleteDraft(ctx, &draftRepo.DeleteDraftInput{
		RosterID: rosterID,
		EditorID: editorID,
	})
	if err != nil {
		return raiderr.Wrapf(err, "failed to delete draft for %s", editorID)
	}
	return nil
}

func validateEditor(rosterID, editorID string) error {
	if rosterID == "" {
		return ErrEmptyRosterID
	}
	if editorID == "" {
		return ErrEmptyEditorID
	}
	return nil
}
