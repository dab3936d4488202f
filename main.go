package main

import (
	"regexp"
	"strings"
	"time"

	"scholarship/audit"
	"scholarship/config"
	"scholarship/controller"
	"scholarship/docs"
	"scholarship/engine"
	"scholarship/events"
	"scholarship/lock"
	"scholarship/logger"
	"scholarship/repository"

	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	"gorm.io/gorm"
)

// @title           Scholarship Review API
// @version         1.0
// @description     Application review and eligibility decision engine.

// @contact.name   	Scholarship Office
// @contact.email 	scholarships@example.com

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	t := time.Now()

	cfg := config.Env()
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	if cfg.AutoMigrate {
		if err := repository.Migrate(db); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate database")
		}
	}

	reviewEngine, err := buildEngine(cfg, db)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build review engine")
	}

	r := gin.New()
	r.Use(gin.Recovery())
	err = r.SetTrustedProxies(nil)
	if err != nil {
		log.Error().Err(err).Msg("Failed to set trusted proxies")
		return
	}
	addLogger(r)
	addMetrics(r)
	addDocs(r)
	setCors(r)
	cacheStore := persistence.NewInMemoryStore(60 * time.Second)
	controller.SetRoutes(r, db, reviewEngine, cacheStore)
	log.Info().Dur("startup", time.Since(t)).Str("port", cfg.ServerPort).Msg("Server started")
	err = r.Run(":" + cfg.ServerPort)
	if err != nil {
		log.Error().Err(err).Msg("Failed to start server")
	}
}

func buildEngine(cfg *config.Config, db *gorm.DB) (*engine.Engine, error) {
	policy, err := config.LoadReviewPolicy(cfg.ReviewPolicyPath)
	if err != nil {
		return nil, err
	}
	opts := []engine.Option{
		engine.WithLogger(logger.Component("engine")),
		engine.WithAuditor(audit.NewSystemLogAuditor(repository.NewSystemLogRepository(db), logger.Component("audit"))),
	}
	if cfg.RedisAddr != "" {
		client, err := config.NewRedisClient(cfg)
		if err != nil {
			return nil, err
		}
		opts = append(opts, engine.WithLocker(lock.NewRedisLocker(client, 30*time.Second, logger.Component("lock"))))
	}
	if cfg.KafkaBroker != "" {
		writer, err := config.GetWriter(cfg.KafkaBroker, cfg.KafkaTopic)
		if err != nil {
			return nil, err
		}
		opts = append(opts, engine.WithPublisher(events.NewKafkaPublisher(writer)))
	} else {
		log.Warn().Msg("KAFKA_BROKER not set, lifecycle events are not published")
	}
	log.Info().
		Int("scale_min", policy.Scale.Min).
		Int("scale_max", policy.Scale.Max).
		Int("pass_threshold", policy.Scale.PassThreshold).
		Bool("allow_premature_decision", policy.AllowPrematureDecision).
		Msg("Review policy loaded")
	return engine.New(repository.NewReviewStore(db), repository.NewUserRepository(db), policy, opts...)
}

func addLogger(r *gin.Engine) {
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Output:    logWriter{},
		SkipPaths: []string{"/api/metrics"},
	}))
}

func addMetrics(r *gin.Engine) {
	p := ginprometheus.NewPrometheus("gin")
	re := regexp.MustCompile(`\d+`)
	p.ReqCntURLLabelMappingFn = func(c *gin.Context) string {
		url := strings.Split(c.Request.URL.String(), "?")[0]
		url = re.ReplaceAllString(url, "?")
		return strings.TrimPrefix(url, "/api")
	}
	p.MetricsPath = "/api/metrics"
	p.Use(r)
}

func addDocs(r *gin.Engine) {
	docs.SwaggerInfo.BasePath = "/api"
	r.GET("/api/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}

func setCors(r *gin.Engine) {
	corsConfigGetOptions := cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	corsConfigOtherMethods := cors.Config{
		AllowOrigins: []string{
			"http://localhost",
			"http://localhost:3000",
		},
		AllowMethods:     []string{"POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	r.Use(func(c *gin.Context) {
		if c.Request.Method == "OPTIONS" {
			requestedMethod := c.GetHeader("Access-Control-Request-Method")
			if requestedMethod == "GET" || requestedMethod == "OPTIONS" {
				cors.New(corsConfigGetOptions)(c)
			} else {
				cors.New(corsConfigOtherMethods)(c)
			}
			c.AbortWithStatus(204)
			return
		}

		if c.Request.Method == "GET" {
			cors.New(corsConfigGetOptions)(c)
		} else {
			cors.New(corsConfigOtherMethods)(c)
		}
	})
}

// logWriter routes gin's request log lines through zerolog.
type logWriter struct{}

func (logWriter) Write(p []byte) (int, error) {
	log.Info().Str("component", "http").Msg(strings.TrimSpace(string(p)))
	return len(p), nil
}
