package command

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"condopark/internal/api"
	"condopark/internal/auth"
	"condopark/internal/config"
	"condopark/internal/db"
	"condopark/internal/repository"
	"condopark/internal/service"
	"condopark/internal/utils"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the scheduled reports",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return serve(cmd.Context(), cfg)
	},
}

type stores struct {
	users    repository.UserRepository
	slots    repository.SlotRepository
	bookings repository.BookingRepository
	conn     *sql.DB
}

func openStores(ctx context.Context, cfg config.App) (*stores, error) {
	ids := repository.UUIDGenerator{}
	if cfg.StorageDriver == "postgres" {
		conn, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return &stores{
			users:    repository.NewPostgresUserRepository(conn, ids),
			slots:    repository.NewPostgresSlotRepository(conn, ids),
			bookings: repository.NewPostgresBookingRepository(conn, ids),
			conn:     conn,
		}, nil
	}

	s := &stores{
		users:    repository.NewMemoryUserRepository(ids),
		slots:    repository.NewMemorySlotRepository(ids),
		bookings: repository.NewMemoryBookingRepository(ids),
	}
	if cfg.SeedDemo {
		hash, err := service.HashPassword("password123")
		if err != nil {
			return nil, err
		}
		if err := repository.SeedDemo(ctx, s.users, s.slots, s.bookings, hash, service.SystemClock()); err != nil {
			return nil, err
		}
		utils.Logger.Info("Demo data loaded")
	}
	return s, nil
}

func serve(ctx context.Context, cfg config.App) error {
	st, err := openStores(ctx, cfg)
	if err != nil {
		return err
	}
	if st.conn != nil {
		defer st.conn.Close()
	}

	policy, err := service.PolicyByName(cfg.StatusPolicy)
	if err != nil {
		return err
	}

	var (
		mailer service.Mailer
		texter service.Texter
	)
	if cfg.EmailEnabled() {
		mailer = service.NewSendGridMailer(cfg.SendGridAPIKey, cfg.SendGridFromEmail, cfg.SendGridFromName)
	} else {
		utils.Logger.Warn("SENDGRID_API_KEY or SENDGRID_FROM_EMAIL not set, parker emails are disabled")
	}
	if cfg.SMSEnabled() {
		texter = service.NewTwilioTexter(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber)
	} else {
		utils.Logger.Warn("Twilio credentials not set, owner SMS are disabled")
	}
	sender := service.NewSenderService(st.users, mailer, texter)

	clock := service.SystemClock
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL)
	slotSvc := service.NewSlotService(st.slots, clock)
	bookingSvc := service.NewBookingService(st.bookings, st.slots, policy, sender, clock)

	router := api.NewRouter(api.Services{
		Auth:       service.NewAuthService(st.users, tokens, clock),
		Slots:      slotSvc,
		Bookings:   bookingSvc,
		Matcher:    service.NewMatcher(slotSvc),
		Validation: service.NewValidationService(st.bookings, st.slots),
		Tokens:     tokens,
		Clock:      clock,
	})

	jobs := service.NewJobService(st.bookings, clock)
	c := cron.New()
	if _, err := jobs.Schedule(c, cfg.JobsSchedule); err != nil {
		return err
	}
	c.Start()
	defer c.Stop()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           api.WithMiddleware(router, cfg.CORSOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		utils.Logger.Infof("Server running on port %s", cfg.Port)
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case sig := <-sigCh:
		utils.Logger.Infof("Received %s, shutting down", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	sender.Wait()
	return nil
}
