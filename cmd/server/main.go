package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
	"liyu1981.xyz/vitals-console/pkg/auth"
	"liyu1981.xyz/vitals-console/pkg/common"
	"liyu1981.xyz/vitals-console/pkg/db"
	vitalsGrpc "liyu1981.xyz/vitals-console/pkg/grpc"
	vitalsHttp "liyu1981.xyz/vitals-console/pkg/http"
	"liyu1981.xyz/vitals-console/pkg/metrics"
	"liyu1981.xyz/vitals-console/pkg/vitals"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	vitalsDbType := os.Getenv(common.EnvKeyVitalsDBType)
	switch vitalsDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	case "postgres":
		dialector, err := db.UsePostgresDialector(os.Getenv(common.EnvKeyVitalsPostgresDSN))
		if err != nil {
			log.Fatal("Invalid VITALS_POSTGRES_DSN: ", err)
		}
		dbInstance = db.GetInstance(dialector)
	default:
		log.Fatal("Unknown VITALS_DB_TYPE: " + vitalsDbType)
	}

	grpcHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyVitalsGrpcHostPort))
	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyVitalsHttpHostPort))

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyVitalsDefaultRate), 64); err != nil {
		log.Fatal("Invalid VITALS_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyVitalsDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid VITALS_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	jwtSecret := strings.TrimSpace(os.Getenv(common.EnvKeyVitalsJWTSecret))
	if jwtSecret == "" {
		log.Fatal("VITALS_JWT_SECRET must be set in .env")
	}

	var tokenTTL time.Duration
	if tokenTTL, err = time.ParseDuration(common.GetEnvOr(common.EnvKeyVitalsTokenTTL, "12h")); err != nil {
		log.Fatal("Invalid VITALS_TOKEN_TTL, should be a duration like 12h")
	}
	tokens := auth.NewTokenIssuer(jwtSecret, tokenTTL)

	logger := common.GetLogger()

	collector, err := metrics.NewCollector()
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}

	opts := vitals.ServiceOpts{Metrics: collector}

	if brokers := common.SplitCSV(os.Getenv(common.EnvKeyVitalsKafkaBrokers)); len(brokers) > 0 {
		topic := common.GetEnvOr(common.EnvKeyVitalsKafkaTopic, common.DefaultKafkaThresholdTopic)
		broadcaster := vitals.NewKafkaBroadcaster(brokers, topic)
		defer broadcaster.Close()
		opts.Broadcaster = broadcaster
		logger.Info("Broadcasting active thresholds to kafka",
			zap.Strings("brokers", brokers), zap.String("topic", topic))
	}

	vitalsCore := &vitals.Vitals{
		Db: *dbInstance,
	}
	vitalsCore.WithServices(opts).WithDefaultServices()

	if username := strings.TrimSpace(os.Getenv(common.EnvKeyVitalsSuperAdminUsername)); username != "" {
		password := os.Getenv(common.EnvKeyVitalsSuperAdminPassword)
		if err := auth.CheckPasswordStrength(password); err != nil {
			log.Fatalf("Invalid VITALS_SUPER_ADMIN_PASSWORD: %v", err)
		}
		if _, err := vitalsCore.Admin.EnsureSuperAdmin(context.Background(), username, password); err != nil {
			log.Fatalf("failed to ensure super admin: %v", err)
		}
	}

	if active, err := vitalsCore.Governance.FetchActive(context.Background()); err == nil {
		collector.SetActiveVersion(active.Version)
	}

	if grpcHostPort != "" {
		logger.Info("Starting gRPC server on port " + grpcHostPort)
		go func() {
			vitalsGrpcServer := vitalsGrpc.VitalsServer{
				Vitals:           vitalsCore,
				RateLimiterStore: vitals.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
				Tokens:           tokens,
			}
			s := grpc.NewServer(grpc.ChainUnaryInterceptor(
				vitalsGrpcServer.CreateAuthInterceptor(),
				vitalsGrpcServer.CreateRateLimitInterceptor([]proto.Message{
					&structpb.Struct{},
				}),
			))
			vitalsGrpc.RegisterThresholdServiceServer(s, &vitalsGrpcServer)
			logger.Info("gRPC server created with:",
				zap.String("default_limiter",
					fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))

			listener, err := net.Listen("tcp", grpcHostPort)
			if err != nil {
				log.Fatalf("failed to listen: %v", err)
			}

			logger.Info("start gRPC server on " + grpcHostPort)
			if err := s.Serve(listener); err != nil {
				log.Fatalf("grpc server failed to serve: %v", err)
			}
		}()
	}

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	rs := &vitalsHttp.RestfulServer{
		Server:           gin.Default(),
		Vitals:           vitalsCore,
		RateLimiterStore: vitals.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
		Tokens:           tokens,
		Metrics:          collector,
		Version:          common.GetEnvOr(common.EnvKeyVitalsVersion, "dev"),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
