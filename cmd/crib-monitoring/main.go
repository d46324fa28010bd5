package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ameyali/crib-monitoring/internal/pkg/application/alerts"
	"github.com/ameyali/crib-monitoring/internal/pkg/application/ingest"
	"github.com/ameyali/crib-monitoring/internal/pkg/application/query"
	"github.com/ameyali/crib-monitoring/internal/pkg/application/watchdog"
	"github.com/ameyali/crib-monitoring/internal/pkg/infrastructure/storage"
	"github.com/ameyali/crib-monitoring/internal/pkg/infrastructure/transport/mqtt"
	"github.com/ameyali/crib-monitoring/internal/pkg/presentation/api"
	"github.com/ameyali/crib-monitoring/pkg/client"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"gopkg.in/yaml.v2"
)

const serviceName string = "crib-monitoring"

type flagType int
type flagMap map[flagType]string

const (
	listenAddress flagType = iota
	servicePort

	policiesFile
	configurationFile

	dbHost
	dbUser
	dbPassword
	dbPort
	dbName
	dbSSLMode

	redisHost
)

func defaultFlags() flagMap {
	return flagMap{
		listenAddress: "0.0.0.0",
		servicePort:   "8080",

		policiesFile:      "/opt/cribmonitoring/config/authz.rego",
		configurationFile: "/opt/cribmonitoring/config/config.yaml",

		dbHost:     "",
		dbUser:     "",
		dbPassword: "",
		dbPort:     "5432",
		dbName:     "cribmonitoring",
		dbSSLMode:  "disable",

		redisHost: "",
	}
}

type appConfig struct {
	Mqtt   mqtt.Config   `yaml:"mqtt"`
	Ingest ingest.Config `yaml:"ingest"`

	Watchdog struct {
		IntervalSeconds int `yaml:"intervalSeconds"`
	} `yaml:"watchdog"`

	CribRegistry struct {
		URL             string `yaml:"url"`
		CacheTTLSeconds int    `yaml:"cacheTtlSeconds"`
	} `yaml:"cribRegistry"`

	CaregiverDirectory struct {
		URL string `yaml:"url"`
	} `yaml:"caregiverDirectory"`
}

func main() {
	ctx, flags := parseExternalConfig(context.Background(), defaultFlags())

	serviceVersion := buildinfo.SourceVersion()
	ctx, logger, cleanup := o11y.Init(ctx, serviceName, serviceVersion, "json")
	defer cleanup()

	cfgFile, err := os.Open(flags[configurationFile])
	exitIf(err, logger, "could not open configuration file")

	cfg, err := parseConfigFile(cfgFile)
	exitIf(err, logger, "could not parse configuration file")

	policies, err := os.Open(flags[policiesFile])
	exitIf(err, logger, "unable to open opa policy file")
	defer policies.Close()

	s, err := storage.New(ctx, storage.NewConfig(
		flags[dbHost], flags[dbUser], flags[dbPassword], flags[dbPort], flags[dbName], flags[dbSSLMode],
	))
	exitIf(err, logger, "could not connect to database")

	err = s.Initialize(ctx)
	exitIf(err, logger, "could not initialize database")

	messenger, err := messaging.Initialize(ctx, messaging.LoadConfiguration(ctx, serviceName, logger))
	exitIf(err, logger, "failed to init messenger")
	messenger.Start()

	mqttClient, err := mqtt.Connect(ctx, cfg.Mqtt)
	exitIf(err, logger, "failed to connect to mqtt broker")

	registry := newCribRegistry(ctx, flags, cfg, logger)
	directory := client.NewCaregiverDirectoryClient(cfg.CaregiverDirectory.URL)

	alertSvc := alerts.New(s, messenger, directory)

	ing := ingest.New(mqttClient, s, alertSvc, &cfg.Ingest)
	err = ing.Start(ctx)
	exitIf(err, logger, "failed to subscribe to sensor topic")

	wd := watchdog.New(ing, messenger, &watchdog.Config{
		Interval: time.Duration(cfg.Watchdog.IntervalSeconds) * time.Second,
	})
	wd.Start(ctx)

	querySvc := query.New(registry, s, alertSvc)

	router, err := api.RegisterHandlers(ctx, chi.NewRouter(), policies, querySvc, alertSvc, s)
	exitIf(err, logger, "failed to register api handlers")

	server := &http.Server{
		Addr:    flags[listenAddress] + ":" + flags[servicePort],
		Handler: router,
	}

	go func() {
		logger.Info("starting http server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", "err", err.Error())
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", "err", err.Error())
	}

	wd.Stop(ctx)
	mqttClient.Close()
	messenger.Close()
	s.Close()
}

func newCribRegistry(ctx context.Context, flags flagMap, cfg *appConfig, logger *slog.Logger) query.CribRegistry {
	registry := client.NewCribRegistryClient(cfg.CribRegistry.URL)

	if flags[redisHost] == "" {
		return registry
	}

	rdb := redis.NewClient(&redis.Options{Addr: flags[redisHost] + ":6379"})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Warn("redis not reachable, running without assignment cache", "err", err.Error())
		return registry
	}

	ttl := time.Duration(cfg.CribRegistry.CacheTTLSeconds) * time.Second

	return client.NewCachedCribRegistry(registry, rdb, ttl)
}

func parseConfigFile(cfgFile io.ReadCloser) (*appConfig, error) {
	defer cfgFile.Close()

	b, err := io.ReadAll(cfgFile)
	if err != nil {
		return nil, err
	}

	cfg := &appConfig{}
	err = yaml.Unmarshal(b, cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func parseExternalConfig(ctx context.Context, flags flagMap) (context.Context, flagMap) {
	// Allow environment variables to override certain defaults
	envOrDef := env.GetVariableOrDefault

	flags[listenAddress] = envOrDef(ctx, "LISTEN_ADDRESS", flags[listenAddress])
	flags[servicePort] = envOrDef(ctx, "SERVICE_PORT", flags[servicePort])

	flags[policiesFile] = envOrDef(ctx, "POLICIES_FILE", flags[policiesFile])

	flags[dbHost] = envOrDef(ctx, "POSTGRES_HOST", flags[dbHost])
	flags[dbPort] = envOrDef(ctx, "POSTGRES_PORT", flags[dbPort])
	flags[dbName] = envOrDef(ctx, "POSTGRES_DBNAME", flags[dbName])
	flags[dbUser] = envOrDef(ctx, "POSTGRES_USER", flags[dbUser])
	flags[dbPassword] = envOrDef(ctx, "POSTGRES_PASSWORD", flags[dbPassword])
	flags[dbSSLMode] = envOrDef(ctx, "POSTGRES_SSLMODE", flags[dbSSLMode])

	flags[redisHost] = envOrDef(ctx, "REDIS_HOST", flags[redisHost])

	apply := func(f flagType) func(string) error {
		return func(value string) error {
			flags[f] = value
			return nil
		}
	}

	// Allow command line arguments to override defaults and environment variables
	flag.Func("policies", "an authorization policy file", apply(policiesFile))
	flag.Func("config", "crib monitoring configuration file", apply(configurationFile))
	flag.Parse()

	return ctx, flags
}

func exitIf(err error, logger *slog.Logger, msg string, args ...any) {
	if err != nil {
		logger.With(args...).Error(msg, "err", err.Error())
		time.Sleep(2 * time.Second)
		os.Exit(1)
	}
}
