package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config содержит конфигурацию приложения
type Config struct {
	RunAddress     string        // Адрес и порт запуска сервиса
	DatabaseURI    string        // URI подключения к БД
	GatewayAddress string        // Адрес шлюза чат-бота (отправка сообщений)
	GatewayKeyHash string        // bcrypt-хеш ключа шлюза (только из env)
	JWTSecret      string        // Секретный ключ для JWT
	JWTTokenTTL    time.Duration // Время жизни JWT токена
	AdminID        int64         // Идентификатор администратора в чат-платформе
	LogLevel       string        // Уровень логирования

	// Worker Pool конфигурация
	BroadcastWorkers   int           // Количество воркеров рассылки
	BroadcastQueueSize int           // Размер очереди рассылки
	SweepInterval      time.Duration // Интервал уборки просроченных окон отмены

	// Политика повторной доставки уже доставленного заказа
	AllowRedelivery bool
}

// Load загружает конфигурацию из переменных окружения и флагов
// Приоритет: env переменные > флаги > дефолтные значения
func Load() (*Config, error) {
	cfg := &Config{
		JWTTokenTTL:        24 * time.Hour,
		LogLevel:           "info",
		BroadcastWorkers:   3,
		BroadcastQueueSize: 1000,
		SweepInterval:      time.Minute,
		AllowRedelivery:    true,
	}

	// Определяем флаги
	flag.StringVar(&cfg.RunAddress, "a", ":8080", "address and port to run server")
	flag.StringVar(&cfg.DatabaseURI, "d", "", "database URI")
	flag.StringVar(&cfg.GatewayAddress, "g", "", "bot gateway address")
	flag.Int64Var(&cfg.AdminID, "admin", 0, "administrator chat id")
	flag.Parse()

	// Переменные окружения имеют приоритет над флагами
	if envRunAddr, ok := os.LookupEnv("RUN_ADDRESS"); ok {
		cfg.RunAddress = envRunAddr
	}

	if envDBURI, ok := os.LookupEnv("DATABASE_URI"); ok {
		cfg.DatabaseURI = envDBURI
	}

	if envGatewayAddr, ok := os.LookupEnv("GATEWAY_ADDRESS"); ok {
		cfg.GatewayAddress = envGatewayAddr
	}

	if envAdminID, ok := os.LookupEnv("ADMIN_ID"); ok {
		id, err := strconv.ParseInt(envAdminID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid ADMIN_ID: %w", err)
		}
		cfg.AdminID = id
	}

	// Секреты только из env, не из флагов
	if envJWTSecret, ok := os.LookupEnv("JWT_SECRET"); ok {
		cfg.JWTSecret = envJWTSecret
	} else {
		cfg.JWTSecret = "default-secret-key-change-in-production"
	}

	if envKeyHash, ok := os.LookupEnv("GATEWAY_KEY_HASH"); ok {
		cfg.GatewayKeyHash = envKeyHash
	}

	// Уровень логирования
	if envLogLevel, ok := os.LookupEnv("LOG_LEVEL"); ok {
		cfg.LogLevel = envLogLevel
	}

	// Worker pool конфигурация из env
	if envWorkers, ok := os.LookupEnv("BROADCAST_WORKERS"); ok {
		if size, err := strconv.Atoi(envWorkers); err == nil && size > 0 {
			cfg.BroadcastWorkers = size
		}
	}

	if envQueueSize, ok := os.LookupEnv("BROADCAST_QUEUE_SIZE"); ok {
		if size, err := strconv.Atoi(envQueueSize); err == nil && size > 0 {
			cfg.BroadcastQueueSize = size
		}
	}

	if envSweepInterval, ok := os.LookupEnv("SWEEP_INTERVAL"); ok {
		if interval, err := time.ParseDuration(envSweepInterval); err == nil && interval > 0 {
			cfg.SweepInterval = interval
		}
	}

	if envRedelivery, ok := os.LookupEnv("ALLOW_REDELIVERY"); ok {
		if allow, err := strconv.ParseBool(envRedelivery); err == nil {
			cfg.AllowRedelivery = allow
		}
	}

	// Валидация обязательных параметров
	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI is required (use -d flag or DATABASE_URI env)")
	}

	if cfg.GatewayAddress == "" {
		return nil, fmt.Errorf("gateway address is required (use -g flag or GATEWAY_ADDRESS env)")
	}

	if cfg.AdminID == 0 {
		return nil, fmt.Errorf("administrator id is required (use -admin flag or ADMIN_ID env)")
	}

	return cfg, nil
}
