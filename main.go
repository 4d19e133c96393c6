package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/Cristh27/SoftwareFinal/pkg/app/config"
	"github.com/Cristh27/SoftwareFinal/pkg/domain/service"
	"github.com/Cristh27/SoftwareFinal/pkg/infrastructure/mysql"
	"github.com/Cristh27/SoftwareFinal/pkg/transport"
)

const appID = "restaurante"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, using environment variables")
	}

	app := &cli.App{
		Name:  appID,
		Usage: "REST backend for the restaurante domain",
		Commands: []*cli.Command{
			{Name: "serve", Usage: "run the HTTP API", Action: serve},
			{Name: "migrate", Usage: "apply pending database migrations", Action: runMigrations},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Fatal("application stopped")
	}
}

func serve(_ *cli.Context) error {
	cfg, err := config.Parse(appID)
	if err != nil {
		return err
	}
	setupLogger(cfg)

	if err := migrateUp(cfg); err != nil {
		return err
	}

	db, err := mysql.Connect(cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer db.Close()

	clienteRepo := mysql.NewClienteRepository(db)
	perfilRepo := mysql.NewPerfilRepository(db)
	productoRepo := mysql.NewProductoRepository(db)
	pedidoRepo := mysql.NewPedidoRepository(db)

	services := transport.Services{
		Clientes:  service.NewClienteService(clienteRepo, pedidoRepo),
		Pedidos:   service.NewPedidoService(pedidoRepo, clienteRepo, productoRepo),
		Perfiles:  service.NewPerfilService(perfilRepo),
		Productos: service.NewProductoService(productoRepo),
	}

	var limiter *rate.Limiter
	if cfg.RateLimitRPS > 0 {
		burst := cfg.RateLimitBurst
		if burst <= 0 {
			burst = int(cfg.RateLimitRPS)
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), burst)
	}

	srv := &http.Server{
		Addr:    cfg.ServeRESTAddress,
		Handler: transport.Router(services, limiter),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		log.WithField("address", cfg.ServeRESTAddress).Info("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return group.Wait()
}

func runMigrations(_ *cli.Context) error {
	cfg, err := config.Parse(appID)
	if err != nil {
		return err
	}
	setupLogger(cfg)
	return migrateUp(cfg)
}

func migrateUp(cfg *config.Config) error {
	m, err := migrate.New("file://"+cfg.MigrationsDir, "mysql://"+cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func setupLogger(cfg *config.Config) {
	if cfg.LogJSON {
		log.SetFormatter(&log.JSONFormatter{})
	}
}
