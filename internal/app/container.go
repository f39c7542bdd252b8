package app

import (
	"context"
	"log"

	"skillcompass/internal/config"
	"skillcompass/internal/database"
	dbpostgres "skillcompass/internal/database/postgres"
	"skillcompass/internal/embedding"
	"skillcompass/internal/extract"
	"skillcompass/internal/indexer"
	"skillcompass/internal/infrastructure/cache"
	"skillcompass/internal/pkg/jwt"
	"skillcompass/internal/repository"
	"skillcompass/internal/usecase"
	"skillcompass/internal/vectorindex"
	"skillcompass/internal/ws"
)

// Container owns every long-lived dependency. Handlers and usecases borrow
// from it; Close tears down what holds external resources.
type Container struct {
	Config config.Config
	Logger *log.Logger

	DB    database.DB
	Cache *cache.Redis

	Encoder  *embedding.Service
	Index    *vectorindex.Index
	Pipeline *extract.Pipeline
	Hub      *ws.Hub
	JWT      jwt.Service

	Skills     repository.SkillRepository
	UserSkills repository.UserSkillRepository
	Roles      repository.RoleRepository
	Courses    repository.CourseRepository

	AuthUC           usecase.AuthUsecase
	UserUC           usecase.UserUsecase
	SkillUC          usecase.SkillUsecase
	UserSkillUC      usecase.UserSkillUsecase
	ExtractionUC     usecase.ExtractionUsecase
	RecommendationUC usecase.RecommendationUsecase
	SkillGapUC       usecase.SkillGapUsecase
	RoleUC           usecase.RoleUsecase
	DashboardUC      usecase.DashboardUsecase
	IndexUC          usecase.IndexUsecase
}

func NewContainer(ctx context.Context, cfg config.Config, logger *log.Logger) (*Container, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.Database.ConnectTimeout)
	defer cancel()

	db, err := dbpostgres.Connect(connectCtx, cfg.Database)
	if err != nil {
		return nil, err
	}

	redisCache := cache.NewRedis(logger)

	encoder := embedding.NewService(func() (embedding.Encoder, error) {
		return embedding.NewLocalEncoder(cfg.Embedding.Dimension)
	})
	index := vectorindex.New(cfg.Index.Dir, cfg.Embedding.Dimension, logger)

	var llm extract.LLMExtractor
	if cfg.Gemini.APIKey != "" {
		gem, err := extract.NewGeminiExtractor(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.Timeout, logger)
		if err != nil {
			logger.Printf("gemini extractor disabled | error=%v", err)
		} else {
			llm = gem
		}
	}
	pipeline := extract.NewPipeline(llm)

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	hub := ws.NewHub(logger)
	ws.SetDefaultHub(hub)

	userRepo := repository.NewPostgresUserRepository(db)
	skillRepo := repository.NewPostgresSkillRepository(db)
	userSkillRepo := repository.NewPostgresUserSkillRepository(db)
	roleRepo := repository.NewPostgresRoleRepository(db)
	courseRepo := repository.NewPostgresCourseRepository(db)

	c := &Container{
		Config:   cfg,
		Logger:   logger,
		DB:       db,
		Cache:    redisCache,
		Encoder:  encoder,
		Index:    index,
		Pipeline: pipeline,
		Hub:      hub,
		JWT:      jwtSvc,

		Skills:     skillRepo,
		UserSkills: userSkillRepo,
		Roles:      roleRepo,
		Courses:    courseRepo,
	}

	c.AuthUC = usecase.NewAuthUsecase(userRepo, jwtSvc)
	c.UserUC = usecase.NewUserUsecase(userRepo)
	c.SkillUC = usecase.NewSkillUsecase(skillRepo)
	c.UserSkillUC = usecase.NewUserSkillUsecase(skillRepo, userSkillRepo)
	c.ExtractionUC = usecase.NewExtractionUsecase(pipeline, skillRepo, userSkillRepo, logger)
	c.RecommendationUC = usecase.NewRecommendationUsecase(
		userSkillRepo, roleRepo, encoder, index, redisCache, cache.DefaultTTLFromEnv(), logger,
	)
	c.SkillGapUC = usecase.NewSkillGapUsecase(userSkillRepo, roleRepo, courseRepo, logger)
	c.RoleUC = usecase.NewRoleUsecase(roleRepo)
	c.DashboardUC = usecase.NewDashboardUsecase(userSkillRepo, c.RecommendationUC, c.SkillGapUC, logger)
	c.IndexUC = usecase.NewIndexUsecase(
		indexer.NewBuilder(roleRepo, encoder, index, 0, logger),
		redisCache, redisCache, logger,
	)

	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
