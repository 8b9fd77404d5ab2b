package controllers

import (
	"context"
	"log"
	"net/http"
	"os"
	"reflect"
	"strings"

	"outfitapi/models"
	"outfitapi/recommender"
	"outfitapi/services"

	"github.com/go-playground/validator"
	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func NewValidator() *CustomValidator {
	v := validator.New()
	// report json names in errors
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterValidation("category", models.ValidateCategory)
	v.RegisterValidation("formality", models.ValidateFormality)
	return &CustomValidator{validator: v}
}

func SetupServer(
	closet services.ClosetRepositoryProvider,
	awsService services.AWSServiceProvider,
	urlCache services.URLCacheServiceProvider,
	asynqClient *asynq.Client,
	engine *recommender.Engine,
) *echo.Echo {
	if err := awsService.InitPresignClient(context.Background()); err != nil {
		log.Printf("[Server] image storage disabled: %v", err)
	}

	e := echo.New()
	e.Validator = NewValidator()
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if asynqClient != nil {
				c.Set("__asynqclient", asynqClient)
			}
			return next(c)
		}
	})
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	ownerMiddleware := OwnerMiddleware(os.Getenv("JWT_SECRET"))

	closetController := ClosetController{
		Closet:     closet,
		AWSService: awsService,
		URLCache:   urlCache,
		BucketName: services.GetEnv("R2_BUCKET_NAME", ""),
	}
	closetGroup := e.Group("/closet", ownerMiddleware)
	closetController.ClosetRoutes(closetGroup)

	recommendationController := RecommendationController{Engine: engine}
	recommendationGroup := e.Group("/recommendations", ownerMiddleware)
	recommendationController.RecommendationRoutes(recommendationGroup)

	return e
}
