package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"UrbanGuide-App/internal/config"
	"UrbanGuide-App/internal/domain/helper"
	"UrbanGuide-App/internal/domain/model"
	domainrepo "UrbanGuide-App/internal/domain/repository"
	"UrbanGuide-App/internal/domain/service"
	"UrbanGuide-App/internal/handler"
	"UrbanGuide-App/internal/infrastructure/database"
	"UrbanGuide-App/internal/infrastructure/firestore"
	"UrbanGuide-App/internal/infrastructure/mqtt"
	"UrbanGuide-App/internal/repository"
	"UrbanGuide-App/internal/usecase"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "urbanguide",
		Short:         "UrbanGuide map data and MQTT draw-latency benchmark server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newServeCmd())
	root.AddCommand(newLookupCmd())
	root.AddCommand(newSampleCmd())
	return root
}

func newServeCmd() *cobra.Command {
	var envFile string
	var noMQTT bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the MQTT benchmark consumer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(envFile)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, !noMQTT)
		},
	}
	cmd.Flags().StringVar(&envFile, "env", "", ".env file path (default: ./.env)")
	cmd.Flags().BoolVar(&noMQTT, "no-mqtt", false, "disable the MQTT benchmark consumer")
	return cmd
}

func newLookupCmd() *cobra.Command {
	var envFile, name, visualization string

	cmd := &cobra.Command{
		Use:   "lookup",
		Short: "Print the records of a category (all records when --name is omitted)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(envFile)
			if err != nil {
				return err
			}
			repo, closeRepo, err := newDataBeamsRepository(cfg, nil)
			if err != nil {
				return err
			}
			defer closeRepo()

			var beams []model.DataBeam
			if name == "" {
				beams, err = repo.GetAll(cmd.Context())
			} else {
				vis, perr := model.ParseVisualizationType(visualization)
				if perr != nil {
					return perr
				}
				beams, err = repo.GetData(cmd.Context(), model.Category{Name: name, Visualization: vis})
			}
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			for _, b := range beams {
				if err := enc.Encode(b); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&envFile, "env", "", ".env file path (default: ./.env)")
	cmd.Flags().StringVar(&name, "name", "", "category name")
	cmd.Flags().StringVar(&visualization, "visualization", "pins", "visualization: pins|heatmap")
	return cmd
}

func newSampleCmd() *cobra.Command {
	var lat, lng, radius float64
	var count int

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print random coordinates uniformly distributed in a disk",
		RunE: func(cmd *cobra.Command, _ []string) error {
			origin := model.LatLng{Lat: lat, Lng: lng}
			if err := origin.Validate(); err != nil {
				return err
			}
			if !model.IsFinite(radius) || radius <= 0 || count <= 0 {
				return fmt.Errorf("radius and count must be positive")
			}
			for _, p := range helper.NewSampler(origin, radius).Take(count) {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%.7f,%.7f,%.2f\n", p.Lat, p.Lng, helper.DistanceMeters(origin, p))
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&lat, "lat", model.Modena.Lat, "origin latitude")
	cmd.Flags().Float64Var(&lng, "lng", model.Modena.Lng, "origin longitude")
	cmd.Flags().Float64Var(&radius, "radius", model.DefaultRadiusMeters, "radius in meters")
	cmd.Flags().IntVar(&count, "count", 1, "number of points")
	return cmd
}

func loadConfig(envFile string) (*config.Config, error) {
	if envFile == "" {
		return config.Load()
	}
	return config.Load(envFile)
}

func serve(ctx context.Context, cfg *config.Config, enableMQTT bool) error {
	checks := make(map[string]handler.HealthCheck)

	dataRepo, closeData, err := newDataBeamsRepository(cfg, checks)
	if err != nil {
		return err
	}
	defer closeData()

	reportsRepo, closeReports, err := newLatencyReportsRepository(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeReports()

	view := service.NewMapView(cfg.MapsAPIKey)
	dataUseCase := usecase.NewMapDataUseCase(dataRepo, reportsRepo, view)
	if _, err := dataUseCase.ShowCategory(ctx, model.CategoryMonuments); err != nil {
		log.Printf("⚠️ 初期データの読み込みに失敗: %v", err)
	}

	var benchmarkUseCase usecase.MapBenchmarkUseCase
	if enableMQTT {
		client := mqtt.NewClient(mqtt.Options{
			BrokerURL: cfg.MQTTBrokerURL,
			ClientID:  cfg.MQTTClientID,
			QoS:       cfg.MQTTQoS,
		})
		if err := client.Connect(ctx); err != nil {
			return err
		}
		defer client.Close()
		checks["mqtt"] = func() error {
			if !client.IsConnected() {
				return errors.New("MQTTブローカーに接続されていません")
			}
			return nil
		}

		events := service.NewMapEventService(view, client, reportsRepo, cfg.MQTTBaseTopic, cfg.Platform)
		benchmarkUseCase = usecase.NewMapBenchmarkUseCase(client, events, cfg.MQTTBaseTopic, cfg.EventBuffer)
		if err := benchmarkUseCase.Subscribe(ctx); err != nil {
			return err
		}
		go func() {
			if err := benchmarkUseCase.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("❌ ベンチマーク処理が異常終了: %v", err)
			}
		}()
	}

	router := handler.SetupRouter(
		handler.NewHealthHandler(checks),
		handler.NewDataHandler(dataUseCase),
		handler.NewMapHandler(view, dataUseCase, benchmarkUseCase),
	)
	srv := &http.Server{Addr: cfg.Port, Handler: router}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("🚀 UrbanGuide-App server starting on %s...", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	log.Printf("🛑 Shutting down server...")
	return srv.Shutdown(shutdownCtx)
}

// newDataBeamsRepository checks が nil でなければDB接続のヘルスチェックを登録する
func newDataBeamsRepository(cfg *config.Config, checks map[string]handler.HealthCheck) (domainrepo.DataBeamsRepository, func(), error) {
	switch cfg.DataSource {
	case config.DataSourcePostgres:
		dsn, err := cfg.PostgresDSN()
		if err != nil {
			return nil, nil, err
		}
		client, err := database.NewPostgreSQLClientWithRetry(dsn, 5, time.Second)
		if err != nil {
			return nil, nil, err
		}
		log.Printf("✅ PostgreSQL connection successful!")
		if checks != nil {
			checks["database"] = client.HealthCheck
		}
		return repository.NewPostgresDataBeamsRepository(client), func() { client.Close() }, nil

	case config.DataSourceSupabase:
		client, err := database.NewSupabaseClient(cfg.SupabaseURL, cfg.SupabaseAnonKey)
		if err != nil {
			return nil, nil, err
		}
		if err := client.HealthCheck(); err != nil {
			return nil, nil, fmt.Errorf("Supabaseヘルスチェック失敗: %w", err)
		}
		log.Printf("✅ Supabase client initialized with URL: %s", cfg.SupabaseURL)
		if checks != nil {
			checks["database"] = client.HealthCheck
		}
		return repository.NewSupabaseDataBeamsRepository(client), func() {}, nil
	}

	log.Printf("📦 Using static sample data")
	return repository.NewStaticDataBeamsRepository(), func() {}, nil
}

func newLatencyReportsRepository(ctx context.Context, cfg *config.Config) (domainrepo.LatencyReportsRepository, func(), error) {
	if cfg.FirestoreProjectID == "" {
		return repository.NewMemoryLatencyReportsRepository(cfg.ReportRetention), func() {}, nil
	}

	client, err := firestore.NewFirestoreClient(ctx, cfg.FirestoreProjectID, cfg.GoogleCredentialsFile)
	if err != nil {
		return nil, nil, err
	}
	return repository.NewFirestoreLatencyReportsRepository(client.GetClient()), func() { client.Close() }, nil
}
