package cli

import (
	"context"
	"fmt"

	"directory-service/cmd/controllers"
	"directory-service/cmd/routes"
	"directory-service/internal/configs"
	"directory-service/internal/logger"
	"directory-service/internal/metrics"
	"directory-service/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func Entrypoint() *cobra.Command {
	root := &cobra.Command{
		Use:           "directory-service",
		Short:         "User and company directory services over MongoDB",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(serviceCommand(routes.UserService, "Serve the user management API"))
	root.AddCommand(serviceCommand(routes.CompanyService, "Serve the company and employee API"))

	return root
}

func serviceCommand(service, short string) *cobra.Command {
	return &cobra.Command{
		Use:   service,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), service)
		},
	}
}

func serve(ctx context.Context, service string) error {
	cfg, err := configs.Load()
	if err != nil {
		return err
	}
	if err := logger.Setup(cfg.LogLevel, cfg.LogFormat); err != nil {
		return fmt.Errorf("configuring logger: %w", err)
	}
	gin.SetMode(gin.ReleaseMode)

	log.Info().Str("service", service).Msg("Starting server...")

	client, err := configs.ConnectDB(ctx, cfg)
	if err != nil {
		return err
	}
	store := controllers.NewMongoDB(client, cfg.MongoDB)

	m := metrics.New(service)
	ctrl := controllers.New(controllers.Instrument(store, m), cfg.StrictStatus, cfg.RequestTimeout)

	router, err := routes.NewRouter(service, ctrl, m, cfg.CORSAllowedOrigins)
	if err != nil {
		_ = store.Close(context.Background())
		return err
	}

	srv := server.New(cfg.Addr(), router, store)
	if err := srv.Run(ctx, cfg.ShutdownTimeout); err != nil {
		return err
	}

	log.Info().Str("service", service).Msg("Server stopped")
	return nil
}
