package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/beaconhq/beacon-backend/internal/config"
	"github.com/beaconhq/beacon-backend/internal/database"
	"github.com/beaconhq/beacon-backend/internal/handler"
	"github.com/beaconhq/beacon-backend/internal/logger"
	"github.com/beaconhq/beacon-backend/internal/model"
	"github.com/beaconhq/beacon-backend/internal/repository"
	"github.com/beaconhq/beacon-backend/internal/router"
	"github.com/beaconhq/beacon-backend/internal/search"
	"github.com/beaconhq/beacon-backend/internal/service"
	"github.com/beaconhq/beacon-backend/internal/storage"
	"github.com/beaconhq/beacon-backend/internal/validator"
	"github.com/rs/zerolog"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting Beacon Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Connect to MinIO ──────────────────────────────────────────────
	minioClient, err := database.NewMinioClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MinIO")
	}

	// ─── Connect to Elasticsearch ──────────────────────────────────────
	esClient, err := database.NewElasticClient(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Elasticsearch")
	}

	// ─── Initialize Repositories ───────────────────────────────────────
	courseRepo := repository.NewCourseRepository(pool)
	moduleRepo := repository.NewModuleRepository(pool)
	lessonRepo := repository.NewLessonRepository(pool)
	quizRepo := repository.NewQuizRepository(pool)
	examRepo := repository.NewExamRepository(pool)
	questionRepo := repository.NewQuestionRepository(pool)
	eventRepo := repository.NewEventRepository(pool)
	sermonRepo := repository.NewSermonRepository(pool)
	roleRepo := repository.NewRoleRepository(pool)
	userRepo := repository.NewUserRepository(pool)

	// ─── Initialize Storage & Search ───────────────────────────────────
	mediaStore := storage.NewMediaStore(minioClient, cfg.MediaBucket, cfg.PresignedTTL, log)
	courseIndex := search.NewCourseIndex(esClient, cfg.CourseIndex, log)
	if err := courseIndex.EnsureIndex(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to create search index")
	}

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg, userRepo, roleRepo, log)
	courseService := service.NewCourseService(
		courseRepo, moduleRepo, lessonRepo, quizRepo, examRepo, questionRepo,
		courseIndex, mediaStore, rdb, log,
	)
	moduleService := service.NewModuleService(moduleRepo, courseService, log)
	lessonService := service.NewLessonService(lessonRepo, moduleRepo, courseService, mediaStore, log)
	quizService := service.NewQuizService(quizRepo, moduleRepo, questionRepo, courseService, log)
	examService := service.NewExamService(examRepo, questionRepo, courseService, log)
	questionService := service.NewQuestionService(
		questionRepo, quizRepo, examRepo, moduleRepo, courseService, log,
	)
	mediaService := service.NewMediaService(mediaStore, cfg, log)
	eventService := service.NewEventService(eventRepo, log)
	sermonService := service.NewSermonService(sermonRepo, mediaStore, log)
	userService := service.NewUserService(userRepo, authService, log)
	roleService := service.NewRoleService(roleRepo, model.DefaultRolePalette(), log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:     handler.NewAuthHandler(authService, userService),
		Course:   handler.NewCourseHandler(courseService),
		Module:   handler.NewModuleHandler(moduleService),
		Lesson:   handler.NewLessonHandler(lessonService),
		Quiz:     handler.NewQuizHandler(quizService),
		Exam:     handler.NewExamHandler(examService),
		Question: handler.NewQuestionHandler(questionService),
		Media:    handler.NewMediaHandler(mediaService),
		Event:    handler.NewEventHandler(eventService),
		Sermon:   handler.NewSermonHandler(sermonService),
		User:     handler.NewUserHandler(userService),
		Role:     handler.NewRoleHandler(roleService),
	}

	// ─── Prewarm Redis Caches ─────────────────────────────────────────
	// Load every published course tree into Redis BEFORE accepting
	// traffic so the first reads don't all rebuild at once.
	if err := courseService.WarmPublishedCaches(ctx); err != nil {
		log.Warn().Err(err).Msg("Cache prewarm failed")
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
