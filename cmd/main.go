package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/youone-its/bookstore-backend/internal/handlers"

	"github.com/youone-its/bookstore-backend/internal/jwt"
	"github.com/youone-its/bookstore-backend/internal/logger"
	"github.com/youone-its/bookstore-backend/internal/repositories"
	"github.com/youone-its/bookstore-backend/internal/services"

	"github.com/youone-its/bookstore-backend/internal/middlewares"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title bookstore-backend API
// @version 1.0.0
// @description Backend service for managing books, genres, and book orders
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaBrokers, kafkaTopic,
		jwtSecret, jwtExp, statsCacheExp,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaBrokers, kafkaTopic,
		jwtSecret, jwtExp, statsCacheExp,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// all application, database, Redis, Kafka, logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort int, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaBrokers, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int,
	statsCacheExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "bookstore")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	// Kafka config; empty broker list disables event publishing
	kafkaBrokers = getEnv("KAFKA_BROKERS", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "orders.created")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	// Statistics cache config
	if statsCacheExpSecond, err = strconv.Atoi(getEnv("STATS_CACHE_EXP_SECOND", "60")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka writer, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaBrokers, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int,
	statsCacheExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s", dsn)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password:     redisPassword,
		DB:           redisDB,
		PoolSize:     redisPoolSize,
		MinIdleConns: redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for order-created events
	var kafkaWriter services.KafkaWriter
	if kafkaBrokers != "" {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(strings.Split(kafkaBrokers, ",")...),
			Topic:                  kafkaTopic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
	} else {
		logger.Log.Info("Kafka brokers not configured, event publishing disabled")
	}

	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(jwtSecretKey),
		jwt.WithExpiration(time.Duration(jwtExpSecond)*time.Second),
	)

	// Initialize repositories
	txGetter := middlewares.GetTxFromContext
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, txGetter)
	genreReadRepo := repositories.NewGenreReadRepository(db)
	genreWriteRepo := repositories.NewGenreWriteRepository(db, txGetter)
	bookReadRepo := repositories.NewBookReadRepository(db)
	bookWriteRepo := repositories.NewBookWriteRepository(db, txGetter)
	orderReadRepo := repositories.NewOrderReadRepository(db)
	orderWriteRepo := repositories.NewOrderWriteRepository(db, txGetter)
	statsCacheRepo := repositories.NewStatisticsCacheRepository(rdb, time.Duration(statsCacheExpSecond)*time.Second)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens)
	genreService := services.NewGenreService(genreReadRepo, genreWriteRepo)
	bookService := services.NewBookService(bookReadRepo, bookWriteRepo, genreReadRepo)
	orderService := services.NewOrderService(orderReadRepo, orderWriteRepo, bookReadRepo, bookWriteRepo, statsCacheRepo, kafkaWriter)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	meHandler := handlers.NewMeHandler(authService)

	genreCreateHandler := handlers.NewGenreCreateHandler(genreService)
	genreListHandler := handlers.NewGenreListHandler(genreService)
	genreGetHandler := handlers.NewGenreGetHandler(genreService)
	genreUpdateHandler := handlers.NewGenreUpdateHandler(genreService)
	genreDeleteHandler := handlers.NewGenreDeleteHandler(genreService)

	bookCreateHandler := handlers.NewBookCreateHandler(bookService)
	bookListHandler := handlers.NewBookListHandler(bookService)
	bookListByGenreHandler := handlers.NewBookListByGenreHandler(bookService)
	bookGetHandler := handlers.NewBookGetHandler(bookService)
	bookUpdateHandler := handlers.NewBookUpdateHandler(bookService)
	bookDeleteHandler := handlers.NewBookDeleteHandler(bookService)

	transactionCreateHandler := handlers.NewTransactionCreateHandler(orderService)
	transactionListHandler := handlers.NewTransactionListHandler(orderService)
	transactionGetHandler := handlers.NewTransactionGetHandler(orderService)
	transactionStatisticsHandler := handlers.NewTransactionStatisticsHandler(orderService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Post("/auth/register", registerHandler)
	r.Post("/auth/login", loginHandler)
	r.Get("/genre", genreListHandler)
	r.Get("/genre/{genre_id}", genreGetHandler)
	r.Get("/books", bookListHandler)
	r.Get("/books/genre/{genre_id}", bookListByGenreHandler)
	r.Get("/books/{book_id}", bookGetHandler)

	// Protected routes with JWT middleware
	authMiddleware := middlewares.AuthMiddleware(tokens)
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)

		r.Get("/auth/me", meHandler)

		r.Post("/genre", genreCreateHandler)
		r.Patch("/genre/{genre_id}", genreUpdateHandler)
		r.Delete("/genre/{genre_id}", genreDeleteHandler)

		r.Post("/books", bookCreateHandler)
		r.Patch("/books/{book_id}", bookUpdateHandler)
		r.Delete("/books/{book_id}", bookDeleteHandler)

		r.With(middlewares.TxMiddleware(db)).Post("/transactions", transactionCreateHandler)
		r.Get("/transactions", transactionListHandler)
		r.Get("/transactions/statistics", transactionStatisticsHandler)
		r.Get("/transactions/{transaction_id}", transactionGetHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
