package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/raidtemplate/internal/catalog"
	"github.com/KirkDiggler/raidtemplate/internal/config"
	"github.com/KirkDiggler/raidtemplate/internal/logger"
	draftRepo "github.com/KirkDiggler/raidtemplate/internal/repositories/draft"
	rosterRepo "github.com/KirkDiggler/raidtemplate/internal/repositories/roster"
	templateRepo "github.com/KirkDiggler/raidtemplate/internal/repositories/template"
	"github.com/KirkDiggler/raidtemplate/internal/seed"
	"github.com/KirkDiggler/raidtemplate/internal/services/messaging"
	rosterService "github.com/KirkDiggler/raidtemplate/internal/services/roster"
	templateService "github.com/KirkDiggler/raidtemplate/internal/services/template"
)

// app holds everything a command needs, built from the environment
type app struct {
	cfg     *config.Config
	log     *logrus.Logger
	catalog *catalog.Catalog

	rosters   rosterService.Service
	templates templateService.Service
	messages  messaging.Service

	closers []io.Closer
}

type repositories struct {
	rosters   rosterRepo.Repository
	templates templateRepo.Repository
	drafts    draftRepo.Repository
}

// newApp loads configuration, connects storage and seeds the roster
func newApp(ctx context.Context, logOutput io.Writer) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log := logger.CreateLogger("raidtemplate")
	logger.SetLevel(log, cfg.LogLevel)
	if logOutput != nil {
		log.SetOutput(logOutput)
	}

	a := &app{
		cfg:     cfg,
		log:     log,
		catalog: catalog.Default(),
	}

	repos, err := a.repositories(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	if err := a.services(repos); err != nil {
		a.Close()
		return nil, err
	}

	if err := a.seed(ctx); err != nil {
		a.Close()
		return nil, err
	}

	return a, nil
}

// repositories selects redis when REDIS_URL is set and in-memory storage otherwise
func (a *app) repositories(ctx context.Context) (*repositories, error) {
	if !a.cfg.PersistentStorage() {
		a.log.Warn("REDIS_URL not set, using in-memory storage")
		return &repositories{
			rosters:   rosterRepo.NewInMemory(),
			templates: templateRepo.NewInMemory(),
			drafts:    draftRepo.NewInMemory(nil),
		}, nil
	}

	opts, err := redis.ParseURL(a.cfg.Redis.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)
	a.closers = append(a.closers, client)

	// Each constructor pings, so connect them together
	repos := &repositories{}
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, err := rosterRepo.NewRedis(&rosterRepo.Config{RedisClient: client})
		repos.rosters = r
		return err
	})
	g.Go(func() error {
		r, err := templateRepo.NewRedis(&templateRepo.Config{RedisClient: client})
		repos.templates = r
		return err
	})
	g.Go(func() error {
		r, err := draftRepo.NewRedis(&draftRepo.Config{RedisClient: client})
		repos.drafts = r
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to create repositories: %w", err)
	}

	a.log.WithField("addr", opts.Addr).Info("using redis storage")
	return repos, nil
}

func (a *app) services(repos *repositories) error {
	rosters, err := rosterService.NewService(&rosterService.Config{
		Repository: repos.rosters,
		Logger:     a.log,
	})
	if err != nil {
		return fmt.Errorf("failed to create roster service: %w", err)
	}

	templates, err := templateService.NewService(&templateService.Config{
		RosterRepo:   repos.rosters,
		TemplateRepo: repos.templates,
		DraftRepo:    repos.drafts,
		Catalog:      a.catalog,
		DraftTTL:     a.cfg.DraftTTL,
		Logger:       a.log,
	})
	if err != nil {
		return fmt.Errorf("failed to create template service: %w", err)
	}

	messages, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		return fmt.Errorf("failed to create messaging service: %w", err)
	}

	a.rosters = rosters
	a.templates = templates
	a.messages = messages
	return nil
}

// seed stores the seed roster unless one already exists
func (a *app) seed(ctx context.Context) error {
	var data *seed.Data
	var err error
	if a.cfg.SeedFile != "" {
		data, err = seed.Load(a.cfg.SeedFile)
	} else {
		data, err = seed.Default()
	}
	if err != nil {
		return fmt.Errorf("failed to load seed: %w", err)
	}

	_, err = a.rosters.Seed(ctx, &rosterService.SeedInput{
		RosterID: a.cfg.RosterID,
		RaidName: data.RaidName,
		Players:  data.Players,
	})
	if errors.Is(err, rosterService.ErrRosterExists) {
		a.log.WithField("roster_id", a.cfg.RosterID).Debug("roster already seeded")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to seed roster: %w", err)
	}

	a.log.WithField("roster_id", a.cfg.RosterID).WithField("players", len(data.Players)).Info("seeded roster")
	return nil
}

// Close releases storage connections
func (a *app) Close() {
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			a.log.WithError(err).Warn("failed to close")
		}
	}
	a.closers = nil
}
