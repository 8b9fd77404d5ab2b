package test

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"outfitapi/models"
	"outfitapi/services"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

func JsonString(model interface{}) string {
	bytes, _ := json.Marshal(model)
	return string(bytes)
}

func NewJSONRequest(method string, target string, param interface{}) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(JsonString(param)))
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")
	return req
}

func GenerateUserToken(ownerID string) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   ownerID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 72)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})
	t, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		log.Fatalf("Error when signing user token for %s. Error %s ", ownerID, err)
	}
	return t
}

func NewJSONAuthRequest(method string, target string, ownerID string, param interface{}) *http.Request {
	req := NewJSONRequest(method, target, param)
	req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", GenerateUserToken(ownerID)))
	return req
}

func NewJSONAuthRequestCustomAuth(method string, target string, authorizationString string, param interface{}) *http.Request {
	req := NewJSONRequest(method, target, param)
	req.Header.Add("Authorization", authorizationString)
	return req
}

func NewRefString(data string) *string {
	return &data
}

// ClosetRepositoryMock is an in-memory closet keeping insertion order.
type ClosetRepositoryMock struct {
	mu       sync.Mutex
	garments []models.Garment
	seq      int
	// ListErr makes ListGarments fail
	ListErr   error
	ListCalls int
}

func (m *ClosetRepositoryMock) ListGarments(ctx context.Context, ownerID string) ([]models.Garment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListCalls++
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	out := []models.Garment{}
	for _, g := range m.garments {
		if g.OwnerID == ownerID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (m *ClosetRepositoryMock) CreateGarment(ctx context.Context, garment *models.Garment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if garment.ID == "" {
		garment.ID = uuid.NewString()
	}
	if garment.Warmth == 0 {
		garment.Warmth = 3
	}
	m.seq++
	garment.CreatedAt = time.Unix(int64(m.seq), 0).UTC()
	garment.UpdatedAt = garment.CreatedAt
	m.garments = append(m.garments, *garment)
	return nil
}

func (m *ClosetRepositoryMock) UpdateGarment(ctx context.Context, garment *models.Garment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.garments {
		if m.garments[i].ID == garment.ID {
			m.garments[i] = *garment
			return nil
		}
	}
	return services.ErrGarmentNotFound
}

func (m *ClosetRepositoryMock) DeleteGarment(ctx context.Context, ownerID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.garments {
		if m.garments[i].ID == id && m.garments[i].OwnerID == ownerID {
			m.garments = append(m.garments[:i], m.garments[i+1:]...)
			return nil
		}
	}
	return services.ErrGarmentNotFound
}

// Owners lists every owner with at least one garment.
func (m *ClosetRepositoryMock) Owners() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	seen := map[string]bool{}
	for _, g := range m.garments {
		seen[g.OwnerID] = true
	}
	owners := make([]string, 0, len(seen))
	for o := range seen {
		owners = append(owners, o)
	}
	sort.Strings(owners)
	return owners
}

type AWSProviderMock struct {
	MockUrl string
	Err     error
}

func (awsService AWSProviderMock) InitPresignClient(ctx context.Context) error {
	return nil
}

func (awsService AWSProviderMock) PresignLink(ctx context.Context, bucketName string, fileName string) (string, error) {
	if awsService.Err != nil {
		return "", awsService.Err
	}
	return fmt.Sprintf("https://fakebucketurl.com/%s", fileName), nil
}

func (awsService AWSProviderMock) GetPresignedR2FileReadURL(ctx context.Context, bucketName, fileKey string) (string, error) {
	if awsService.Err != nil {
		return "", awsService.Err
	}
	if awsService.MockUrl != "" {
		return awsService.MockUrl, nil
	}
	return fmt.Sprintf("https://fakebucketurl.com/read/%s", fileKey), nil
}

type URLCacheMock struct {
	Err error
}

func (m *URLCacheMock) GetReadURL(ctx context.Context, objectKey string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return fmt.Sprintf("https://cached.example.com/%s", objectKey), nil
}
