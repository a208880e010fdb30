package app

import (
	"context"
	"errors"
	"lottery_backend/internal/config"
	"lottery_backend/migrations"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (s *App) init() {
	err := config.Load(".env")
	if err != nil {
		log.Warn().Err(err).Msg("error loading .env file")
	}
	s.ServiceProvider = newServiceProvider()
	initLogger(s.ServiceProvider.LogCfg())
}

func initLogger(cfg config.LogConfig) {
	level, err := zerolog.ParseLevel(cfg.Level())
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

func (s *App) Run() error {
	s.init()
	defer s.ServiceProvider.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sp := s.ServiceProvider

	// Получатель комиссии должен существовать до первого розыгрыша
	operator := sp.LotteryCfg().OperatorAddress()
	if err := sp.AccountRepository(ctx).EnsureAccount(ctx, operator); err != nil {
		return err
	}

	if producer := sp.BlockProducer(ctx); producer != nil {
		if err := producer.Init(ctx); err != nil {
			return err
		}
		go producer.Run(ctx)
	}

	srv := &http.Server{
		Addr:              sp.HTTPCfg().Address(),
		Handler:           sp.Router(ctx),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("address", srv.Addr).
			Str("storage", sp.StorageCfg().Driver()).
			Str("entropy", sp.EntropyCfg().Driver()).
			Uint64("reveal_delay", sp.LotteryCfg().RevealDelay()).
			Msg("starting server")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

// Migrate - применяет схему БД
func (s *App) Migrate() error {
	s.init()
	defer s.ServiceProvider.Close()

	ctx := context.Background()
	return migrations.Apply(ctx, s.ServiceProvider.DBClient(ctx))
}
