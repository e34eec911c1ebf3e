package roster

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	raiderr "github.com/KirkDiggler/raidtemplate/internal/errors"
	"github.com/KirkDiggler/raidtemplate/internal/models"
	rosterRepo "github.com/KirkDiggler/raidtemplate/internal/repositories/roster"
	"github.com/KirkDiggler/raidtemplate/internal/seed"
)

type service struct {
	repo rosterRepo.Repository
	log  logrus.FieldLogger
}

// NewService creates a new roster service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Repository == nil {
		return nil, ErrNilRepository
	}

	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &service{
		repo: cfg.Repository,
		log:  log.WithField("component", "roster"),
	}, nil
}

// Seed stores a new roster built from the given players
func (s *service) Seed(ctx context.Context, input *SeedInput) (*SeedOutput, error) {
	if input == nil || input.RosterID == "" {
		return nil, ErrEmptyRosterID
	}

	if err := seed.Validate(input.Players); err != nil {
		return nil, err
	}

	if !input.Overwrite {
		_, err := s.repo.GetRoster(ctx, &rosterRepo.GetRosterInput{RosterID: input.RosterID})
		if err == nil {
			return nil, ErrRosterExists
		}
		if !errors.Is(err, rosterRepo.ErrRosterNotFound) {
			return nil, raiderr.Wrapf(err, "failed to check roster %s", input.RosterID)
		}
	}

	players := make([]*models.Player, 0, len(input.Players))
	for _, p := range input.Players {
		players = append(players, p.Clone())
	}

	roster := &models.Roster{
		ID:       input.RosterID,
		RaidName: input.RaidName,
		Players:  players,
	}

	if err := s.repo.SaveRoster(ctx, &rosterRepo.SaveRosterInput{Roster: roster}); err != nil {
		return nil, raiderr.Wrapf(err, "failed to save roster %s", input.RosterID)
	}

	s.log.WithFields(logrus.Fields{
		"roster_id": roster.ID,
		"players":   len(players),
	}).Info("roster seeded")

	return &SeedOutput{Roster: roster}, nil
}

// GetRoster returns the current roster
func (s *service) GetRoster(ctx context.Context, input *GetRosterInput) (*GetRosterOutput, error) {
	if input == nil || input.RosterID == "" {
		return nil, ErrEmptyRosterID
	}

	roster, err := s.load(ctx, input.RosterID)
	if err != nil {
		return nil, err
	}

	return &GetRosterOutput{Roster: roster}, nil
}

// GetPlayer returns one player by id
func (s *service) GetPlayer(ctx context.Context, input *GetPlayerInput) (*GetPlayerOutput, error) {
	if input == nil || input.RosterID == "" {
		return nil, ErrEmptyRosterID
	}

	roster, err := s.load(ctx, input.RosterID)
	if err != nil {
		return nil, err
	}

	player, ok := roster.FindPlayer(input.PlayerID)
	if !ok {
		return nil, playerNotFound(input.PlayerID)
	}

	return &GetPlayerOutput{Player: player}, nil
}

func (s *service) UpdateName(ctx context.Context, input *UpdateNameInput) (*UpdatePlayerOutput, error) {
	if input == nil {
		return nil, ErrEmptyRosterID
	}
	return s.updatePlayer(ctx, input.RosterID, input.PlayerID, "name", func(p *models.Player) {
		p.Name = input.Name
	})
}

func (s *service) UpdateRole(ctx context.Context, input *UpdateRoleInput) (*UpdatePlayerOutput, error) {
	if input == nil {
		return nil, ErrEmptyRosterID
	}
	return s.updatePlayer(ctx, input.RosterID, input.PlayerID, "role", func(p *models.Player) {
		p.Role = input.Role
	})
}

// UpdateClasses replaces the class list wholesale; the caller's slice is copied
func (s *service) UpdateClasses(ctx context.Context, input *UpdateClassesInput) (*UpdatePlayerOutput, error) {
	if input == nil {
		return nil, ErrEmptyRosterID
	}
	classes := append([]string{}, input.Classes...)
	return s.updatePlayer(ctx, input.RosterID, input.PlayerID, "classes", func(p *models.Player) {
		p.Classes = classes
	})
}

// updatePlayer applies set to a copy of one player inside a copy of the
// roster and stores the copy. The stored roster is untouched when the
// player does not exist.
func (s *service) updatePlayer(ctx context.Context, rosterID string, playerID int, field string, set func(*models.Player)) (*UpdatePlayerOutput, error) {
	if rosterID == "" {
		return nil, ErrEmptyRosterID
	}

	current, err := s.load(ctx, rosterID)
	if err != nil {
		return nil, err
	}

	next := current.Clone()
	player, ok := next.FindPlayer(playerID)
	if !ok {
		return nil, playerNotFound(playerID)
	}
	set(player)

	if err := s.repo.SaveRoster(ctx, &rosterRepo.SaveRosterInput{Roster: next}); err != nil {
		return nil, raiderr.Wrapf(err, "failed to save roster %s", rosterID)
	}

	s.log.WithFields(logrus.Fields{
		"roster_id": rosterID,
		"player_id": playerID,
		"field":     field,
	}).Debug("player updated")

	return &UpdatePlayerOutput{Roster: next}, nil
}

func (s *service) load(ctx context.Context, rosterID string) (*models.Roster, error) {
	roster, err := s.repo.GetRoster(ctx, &rosterRepo.GetRosterInput{RosterID: rosterID})
	if err != nil {
		if errors.Is(err, rosterRepo.ErrRosterNotFound) {
			return nil, ErrRosterNotFound
		}
		return nil, raiderr.Wrapf(err, "failed to get roster %s", rosterID)
	}
	return roster, nil
}

func playerNotFound(id int) error {
	return raiderr.Wrapf(ErrPlayerNotFound, "no player with id %d", id).WithMeta("player_id", id)
}
