package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	authadapter "nestodo/internal/adapter/auth"
	dbadapter "nestodo/internal/adapter/db"
	httpadapter "nestodo/internal/adapter/http"
	"nestodo/internal/adapter/http/handlers"
	httpmiddleware "nestodo/internal/adapter/http/middleware"
	redisadapter "nestodo/internal/adapter/redis"
	"nestodo/internal/adapter/storage"
	appservice "nestodo/internal/app/service"
	"nestodo/internal/config"
	"nestodo/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	})

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	redisClient := redisadapter.NewClient(cfg)
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("failed to close redis connection", zap.Error(err))
		}
	}()

	fileStorage, err := storage.NewLocalStorage(cfg.UploadDir)
	if err != nil {
		logger.Fatal("failed to prepare upload storage", zap.Error(err))
	}

	transactor := dbadapter.NewTransactor(db)
	users := dbadapter.NewUserRepository(db)
	workspaces := dbadapter.NewWorkspaceRepository(db)
	boards := dbadapter.NewBoardRepository(db)
	taskLists := dbadapter.NewTaskListRepository(db)
	tasks := dbadapter.NewTaskRepository(db)
	subtasks := dbadapter.NewSubtaskRepository(db)
	attachments := dbadapter.NewAttachmentRepository(db)
	tags := dbadapter.NewTagRepository(db)

	authService := appservice.NewAuthService(
		users,
		authadapter.NewBcryptHasher(cfg.BcryptCost),
		authadapter.NewJWTIssuer(cfg.JwtAccessSecret, cfg.JwtRefreshSecret, cfg.JwtAccessTTL, cfg.JwtRefreshTTL),
		redisadapter.NewRevocationStore(redisClient),
	)

	sameSite := http.SameSiteNoneMode
	if cfg.IsProduction() {
		sameSite = http.SameSiteStrictMode
	}

	r := gin.New()
	r.MaxMultipartMemory = 8 << 20
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Error(err))
	}
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))

	httpadapter.RegisterRoutes(r, authService, httpadapter.Handlers{
		Health: handlers.NewHealthHandler(handlers.BuildInfo{Name: cfg.AppName, Version: cfg.AppVersion}, db, redisClient),
		Auth: handlers.NewAuthHandler(authService, handlers.CookieConfig{
			MaxAge:   cfg.RefreshCookieTTL,
			Secure:   cfg.CookieSecure,
			SameSite: sameSite,
		}),
		Workspace: handlers.NewWorkspaceHandler(
			appservice.NewWorkspaceService(workspaces),
			appservice.NewTagService(workspaces, tags),
		),
		Board:      handlers.NewBoardHandler(appservice.NewBoardService(transactor, workspaces, boards, taskLists)),
		TaskList:   handlers.NewTaskListHandler(appservice.NewTaskListService(transactor, boards, taskLists)),
		Task:       handlers.NewTaskHandler(appservice.NewTaskService(transactor, boards, taskLists, tasks, tags)),
		Subtask:    handlers.NewSubtaskHandler(appservice.NewSubtaskService(tasks, subtasks)),
		Attachment: handlers.NewAttachmentHandler(appservice.NewAttachmentService(tasks, attachments, fileStorage), cfg.MaxUploadBytes),
	})

	addr := ":" + cfg.AppPort
	logger.Info("starting server", zap.String("addr", addr), zap.String("env", cfg.AppEnv))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
