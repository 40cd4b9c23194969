package main

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	user "user-auth-api/internal"
	"user-auth-api/pkg/config"
	"user-auth-api/pkg/database"
	"user-auth-api/pkg/jwt_generator"
	"user-auth-api/pkg/logger"
	"user-auth-api/pkg/path"
	"user-auth-api/pkg/server"
)

func main() {
	log, err := logger.NewLogger()
	if err != nil {
		panic(err)
	}
	defer func(l *zap.SugaredLogger) {
		_ = l.Sync()
	}(log)

	isAtRemote := os.Getenv(config.IsAtRemote)
	if isAtRemote == "" {
		err = godotenv.Load(filepath.Join(path.GetRootDirectory(), ".env"))
		if err != nil {
			log.Fatalw(
				"failed to load .env file",
				zap.Error(err),
			)
		}
	}

	cfg, err := config.ReadConfig()
	if err != nil {
		log.Fatalw(
			"failed to read config",
			zap.Error(err),
		)
	}
	cfg.Print()

	var jwtGenerator jwt_generator.JwtGenerator
	jwtGenerator, err = jwt_generator.NewJwtGenerator(cfg.Jwt)
	if err != nil {
		log.Fatalw(
			"failed to create jwt generator",
			zap.Error(err),
		)
	}

	ctx := context.Background()
	db, sqlDB, err := database.Open(ctx, cfg.Postgres, log)
	if err != nil {
		log.Fatalw(
			"failed to setup postgres connection",
			zap.Error(err),
		)
	}

	defer func(sqlDB *sql.DB) {
		err := sqlDB.Close()
		if err != nil {
			log.Errorw(
				"failed to close postgres connection",
				zap.Error(err),
			)
		}
	}(sqlDB)

	userRepository := user.NewRepository(db)
	userService := user.NewService(userRepository, jwtGenerator, cfg.Jwt)
	userHandler := user.NewHandler(userService)

	var handlers []server.Handler
	handlers = append(handlers, userHandler)
	srv := server.NewServer(cfg, handlers, log)
	srv.RegisterRoutes()

	if isAtRemote == "" {
		err = srv.Start()
		if err != nil {
			log.Errorw(
				"server stopped with error",
				zap.Error(err),
			)
		}
	} else {
		lambda.Start(srv.LambdaProxyHandler)
	}
}
