package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyVitalsDBType      string = "VITALS_DB_TYPE"
	EnvKeyVitalsDbPath      string = "VITALS_DB_PATH"
	EnvKeyVitalsPostgresDSN string = "VITALS_POSTGRES_DSN"

	EnvKeyVitalsHttpHostPort string = "VITALS_HTTP_HOST_PORT"
	EnvKeyVitalsGrpcHostPort string = "VITALS_GRPC_HOST_PORT"

	EnvKeyVitalsDefaultRate  string = "VITALS_DEFAULT_RATE"
	EnvKeyVitalsDefaultBurst string = "VITALS_DEFAULT_BURST"

	EnvKeyVitalsJWTSecret string = "VITALS_JWT_SECRET"
	EnvKeyVitalsTokenTTL  string = "VITALS_TOKEN_TTL"

	EnvKeyVitalsKafkaBrokers string = "VITALS_KAFKA_BROKERS"
	EnvKeyVitalsKafkaTopic   string = "VITALS_KAFKA_TOPIC"

	EnvKeyVitalsSuperAdminUsername string = "VITALS_SUPER_ADMIN_USERNAME"
	EnvKeyVitalsSuperAdminPassword string = "VITALS_SUPER_ADMIN_PASSWORD"

	EnvKeyVitalsVersion string = "VITALS_VERSION"

	EnvKeyVitalsLogDir string = "VITALS_LOG_DIR"

	LoggerNameVitalsCore       string = "vitals_core"
	LoggerNameRestfulServer    string = "restful_server"
	LoggerNameGrpcServer       string = "grpc_server"
	LoggerFieldVitalsCategory  string = "category"
	LoggerCategoryRecord       string = "record"
	LoggerCategoryThreshold    string = "threshold"
	LoggerCategoryAudit        string = "audit"
	LoggerCategoryAdmin        string = "admin"
	LoggerCategoryBroadcast    string = "broadcast"
	LoggerCategoryAuth         string = "auth"
	LoggerFieldRequestID       string = "request_id"
	DefaultKafkaThresholdTopic string = "vitals.thresholds.active"
)
