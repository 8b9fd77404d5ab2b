package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"sync"

	"outfitapi/models"
	"outfitapi/services"
	"outfitapi/tasks"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
)

type ClosetController struct {
	Closet     services.ClosetRepositoryProvider
	AWSService services.AWSServiceProvider
	URLCache   services.URLCacheServiceProvider
	BucketName string
}

func (controller *ClosetController) ClosetRoutes(g *echo.Group) {
	g.GET("", controller.ListGarments)
	g.POST("", controller.CreateGarment)
	g.DELETE("/:id", controller.DeleteGarment)
	g.POST("/normalize", controller.NormalizeCloset)
}

func (controller *ClosetController) ListGarments(c echo.Context) error {
	ownerID := currentOwner(c)
	garments, err := controller.Closet.ListGarments(c.Request().Context(), ownerID)
	if err != nil {
		sentry.CaptureException(err)
		log.Printf("[Closet] list failed for %s: %v", ownerID, err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load closet"})
	}
	return c.JSON(http.StatusOK, controller.populatePresignedGarmentImages(c.Request().Context(), garments))
}

func (controller *ClosetController) CreateGarment(c echo.Context) error {
	var req models.CreateGarmentIn
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": validationMessage(err)})
	}

	garment := models.Garment{
		ID:          uuid.NewString(),
		OwnerID:     currentOwner(c),
		Name:        strings.TrimSpace(req.Name),
		Category:    models.Category(req.Category),
		Subcategory: req.Subcategory,
		Colors:      req.Colors,
		Formality:   req.Formality,
		Waterproof:  req.Waterproof,
	}
	if req.Warmth != nil {
		garment.Warmth = *req.Warmth
	}
	tasks.NormalizeGarment(&garment)

	var uploadUrl string
	if req.FileName != nil && strings.TrimSpace(*req.FileName) != "" {
		objectKey := services.GarmentImageKey(garment.OwnerID, garment.ID, *req.FileName)
		url, err := controller.AWSService.PresignLink(c.Request().Context(), controller.BucketName, objectKey)
		if err != nil {
			sentry.CaptureException(err)
			log.Printf("[Closet] unable to presign upload for %s: %v", garment.ID, err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Error while creating garment with image"})
		}
		garment.ImageURL = services.StrPointer(objectKey)
		uploadUrl = url
	}

	if err := controller.Closet.CreateGarment(c.Request().Context(), &garment); err != nil {
		sentry.CaptureException(err)
		log.Printf("[Closet] create failed for %s: %v", garment.OwnerID, err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save garment"})
	}
	log.Printf("[Closet] %s added %s (%s)", garment.OwnerID, garment.ID, garment.Category)

	return c.JSON(http.StatusCreated, models.GarmentCreatedOut{
		Garment:       models.GarmentOut{Garment: garment},
		FileUploadUrl: uploadUrl,
	})
}

func (controller *ClosetController) DeleteGarment(c echo.Context) error {
	ownerID := currentOwner(c)
	err := controller.Closet.DeleteGarment(c.Request().Context(), ownerID, c.Param("id"))
	if errors.Is(err, services.ErrGarmentNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Not found"})
	}
	if err != nil {
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete garment"})
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

// NormalizeCloset queues a canonicalization sweep over the owner's garments.
func (controller *ClosetController) NormalizeCloset(c echo.Context) error {
	asynqClient, ok := c.Get("__asynqclient").(*asynq.Client)
	if !ok {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "Service is not available, please try again a bit later"})
	}
	ownerID := currentOwner(c)
	task, err := tasks.NewNormalizeClosetTask(ownerID)
	if err != nil {
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Could not schedule normalization"})
	}
	info, err := asynqClient.Enqueue(task, asynq.MaxRetry(3), asynq.Queue(tasks.QueueCloset))
	if err != nil {
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Could not schedule normalization"})
	}
	log.Printf("[Queue] closet normalization submitted for %s, task %s", ownerID, info.ID)
	return c.JSON(http.StatusAccepted, map[string]string{"task_id": info.ID})
}

// populatePresignedGarmentImages attaches read URLs to garments that have an
// image. A failing cache falls back to presigning directly, a failing presign
// leaves the uri empty.
func (controller *ClosetController) populatePresignedGarmentImages(ctx context.Context, garments []models.Garment) []models.GarmentOut {
	out := make([]models.GarmentOut, len(garments))
	var wg sync.WaitGroup
	for i, garment := range garments {
		out[i] = models.GarmentOut{Garment: garment}
		if garment.ImageURL == nil || *garment.ImageURL == "" {
			continue
		}
		wg.Add(1)
		go func(index int, objectKey string) {
			defer wg.Done()
			url, err := controller.URLCache.GetReadURL(ctx, objectKey)
			if err != nil {
				log.Printf("[Closet] cache failed for %s: %v, presigning directly", objectKey, err)
				sentry.WithScope(func(scope *sentry.Scope) {
					scope.SetTag("failure_type", "cache_system")
					scope.SetExtra("objectKey", objectKey)
					sentry.CaptureException(err)
				})
				url, err = controller.AWSService.GetPresignedR2FileReadURL(ctx, controller.BucketName, objectKey)
				if err != nil {
					log.Printf("[Closet] presign fallback failed for %s: %v", objectKey, err)
					sentry.CaptureException(err)
					return
				}
			}
			if url != "" {
				out[index].Uri = &url
			}
		}(i, *garment.ImageURL)
	}
	wg.Wait()
	return out
}
