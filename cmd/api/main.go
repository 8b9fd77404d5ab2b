package main

import (
	"log"
	"os"
	"time"

	"outfitapi/controllers"
	"outfitapi/dbhelper"
	"outfitapi/recommender"
	"outfitapi/services"
	"outfitapi/telegram"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4/middleware"
)

func engineConfig() recommender.Config {
	cfg := recommender.DefaultConfig()
	cfg.ColdThresholdC = services.GetEnvFloat("OUTFIT_COLD_THRESHOLD_C", cfg.ColdThresholdC)
	cfg.JitterAmplitude = services.GetEnvFloat("OUTFIT_JITTER", cfg.JitterAmplitude)
	return cfg
}

func main() {
	err := sentry.Init(sentry.ClientOptions{
		// empty DSN disables reporting
		Dsn:              os.Getenv("SENTRY_DSN"),
		Environment:      services.GetEnv("ENV", "local"),
		Release:          "outfitapi@1.0.0",
		Debug:            false,
		TracesSampleRate: 1.0,
	})
	if err != nil {
		log.Fatalf("sentry.Init: %s", err)
	}
	defer sentry.Recover()
	defer sentry.Flush(2 * time.Second)

	db := dbhelper.SetupDB()
	closet := services.NewClosetRepository(db)

	var asynqClient *asynq.Client
	if broker := os.Getenv("ASYNC_BROKER_ADDRESS"); broker != "" {
		asynqClient = asynq.NewClient(asynq.RedisClientOpt{Addr: broker})
		defer asynqClient.Close()
	}

	bucketName := services.GetEnv("R2_BUCKET_NAME", "")
	awsService := &services.AWSService{Expiration: 15 * time.Minute}
	urlCache, err := services.NewURLCacheService(awsService, bucketName)
	if err != nil {
		log.Fatalf("Failed to initialize URL cache service: %v", err)
	}

	engine := recommender.NewEngine(engineConfig(), closet)

	e := controllers.SetupServer(closet, awsService, urlCache, asynqClient, engine)
	if os.Getenv("TELEGRAM_BOT") == "true" {
		telegram.RunFitBot(engine)
		return
	}

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(sentryecho.New(sentryecho.Options{Repanic: true}))
	e.Logger.Fatal(e.Start(":" + services.GetEnv("PORT", "8083")))
}
