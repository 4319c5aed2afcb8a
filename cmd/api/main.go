// CLI del servicio PawKind: `serve` levanta la API (default al correr
// sin subcomando), `seed` solo puebla los datos iniciales y sale.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	mem "pawkind/internal/adapters/storage/memory"
	pg "pawkind/internal/adapters/storage/postgres"
	"pawkind/internal/domain/adoptions"
	"pawkind/internal/domain/caretips"
	"pawkind/internal/domain/contacts"
	"pawkind/internal/domain/pets"
	"pawkind/internal/domain/stories"
	"pawkind/internal/platform/config"
	"pawkind/internal/platform/logger"
	"pawkind/internal/router"
	"pawkind/internal/seed"
)

var flagMemory bool

var rootCmd = &cobra.Command{
	Use:   "pawkind-api",
	Short: "PawKind pet adoption API",
	RunE:  runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed default data and exit",
	RunE:  runSeed,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagMemory, "memory", false, "use the in-memory store (dev only, no DB_DSN needed)")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type stores struct {
	pets      pets.Repository
	tips      caretips.Repository
	stories   stories.Repository
	contacts  contacts.Repository
	adoptions adoptions.Repository

	pinger router.StorePinger
	close  func()
}

// buildStores abre el store una sola vez; los repos se inyectan desde acá
// (nada de handles globales).
func buildStores(ctx context.Context, cfg config.Config) (*stores, error) {
	if flagMemory {
		petRepo := mem.NewPetRepo()
		return &stores{
			pets:      petRepo,
			tips:      mem.NewCareTipRepo(),
			stories:   mem.NewStoryRepo(),
			contacts:  mem.NewContactRepo(),
			adoptions: mem.NewAdoptionRepo(petRepo),
			close:     func() {},
		}, nil
	}

	if cfg.DBDSN == "" {
		return nil, errors.New("DB_DSN is required (or pass --memory for the in-memory dev store)")
	}

	db, err := pg.Open(cfg.DBDSN)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	if err := pg.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate store: %w", err)
	}

	return &stores{
		pets:      pg.NewPetsRepo(db),
		tips:      pg.NewCareTipsRepo(db),
		stories:   pg.NewStoriesRepo(db),
		contacts:  pg.NewContactsRepo(db),
		adoptions: pg.NewAdoptionsRepo(db),
		pinger:    pg.NewPinger(db),
		close:     func() { _ = db.Close() },
	}, nil
}

func runSeedData(ctx context.Context, st *stores, log logger.Logger) error {
	runner := seed.NewRunner(
		pets.NewService(st.pets),
		caretips.NewService(st.tips),
		stories.NewService(st.stories),
		log,
	)
	return runner.Run(ctx)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	ctx := cmd.Context()

	st, err := buildStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.close()

	if err := runSeedData(ctx, st, log); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	handler := router.New(router.Options{
		Pets:      st.pets,
		CareTips:  st.tips,
		Stories:   st.stories,
		Contacts:  st.contacts,
		Adoptions: st.adoptions,
		Pinger:    st.pinger,
		StaticDir: cfg.StaticDir,
		Log:       log,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": srv.Addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	ctx := cmd.Context()

	st, err := buildStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.close()

	if err := runSeedData(ctx, st, log); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	log.Info("seed complete", nil)
	return nil
}
