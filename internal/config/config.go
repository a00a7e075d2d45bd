package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

const (
	BackendPostgres = "postgres"
	BackendMongo    = "mongo"
	BackendMemory   = "memory"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"    validate:"required"`
	Logger    LoggerConfig    `yaml:"logger"    validate:"required"`
	Gin       GinConfig       `yaml:"gin"       validate:"required"`
	Storage   StorageConfig   `yaml:"storage"   validate:"required"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	Mongo     MongoConfig     `yaml:"mongo"`
	Redis     RedisConfig     `yaml:"redis"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Scheduler SchedulerConfig `yaml:"scheduler" validate:"required"`
	Telegram  TelegramConfig  `yaml:"telegram"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

// LogLevel maps the configured level onto logger.Level.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type StorageConfig struct {
	Backend string `yaml:"backend" env:"STORAGE_BACKEND" env-default:"postgres" validate:"required,oneof=postgres mongo memory"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost"      validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"           validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"       validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"       validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"milliers_coeurs" validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"        validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"             validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"              validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"             validate:"gt=0"`
	MigrationsDir   string        `yaml:"migrations_dir"    env:"DB_MIGRATIONS_DIR"    env-default:"migrations"     validate:"required"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type MongoConfig struct {
	URI            string        `yaml:"uri"             env:"MONGO_URI"             env-default:"mongodb://localhost:27017"`
	Database       string        `yaml:"database"        env:"MONGO_DATABASE"        env-default:"milliers_coeurs"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"MONGO_CONNECT_TIMEOUT" env-default:"10s" validate:"gt=0"`
	ReadTimeout    time.Duration `yaml:"read_timeout"    env:"MONGO_READ_TIMEOUT"    env-default:"5s"  validate:"gt=0"`
	WriteTimeout   time.Duration `yaml:"write_timeout"   env:"MONGO_WRITE_TIMEOUT"   env-default:"5s"  validate:"gt=0"`
	MaxPoolSize    uint64        `yaml:"max_pool_size"   env:"MONGO_MAX_POOL_SIZE"   env-default:"50"  validate:"min=1"`
}

// RedisConfig enables the cross-process pair lock when Addr is set.
// Without it, locks are held in process memory.
type RedisConfig struct {
	Addr     string        `yaml:"addr"      env:"REDIS_ADDR"      env-default:""`
	Password string        `yaml:"password"  env:"REDIS_PASSWORD"  env-default:""`
	DB       int           `yaml:"db"        env:"REDIS_DB"        env-default:"0"   validate:"min=0"`
	LockTTL  time.Duration `yaml:"lock_ttl"  env:"REDIS_LOCK_TTL"  env-default:"10s" validate:"gt=0"`
	LockWait time.Duration `yaml:"lock_wait" env:"REDIS_LOCK_WAIT" env-default:"5s"  validate:"gt=0"`
}

func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

type KafkaConfig struct {
	Brokers      []string      `yaml:"brokers"       env:"KAFKA_BROKERS"       env-separator:","`
	Topic        string        `yaml:"topic"         env:"KAFKA_TOPIC"         env-default:"reservations.events"`
	MaxAttempts  int           `yaml:"max_attempts"  env:"KAFKA_MAX_ATTEMPTS"  env-default:"3"     validate:"min=1"`
	BatchTimeout time.Duration `yaml:"batch_timeout" env:"KAFKA_BATCH_TIMEOUT" env-default:"50ms"  validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"KAFKA_WRITE_TIMEOUT" env-default:"5s"    validate:"gt=0"`
}

func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

type SchedulerConfig struct {
	Interval time.Duration `yaml:"interval" env:"SCHEDULER_INTERVAL" env-default:"1m" validate:"required,gt=0"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
