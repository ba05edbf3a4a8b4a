package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"motoservice-be/internal/bootstrap"
	"motoservice-be/internal/config"
	"motoservice-be/internal/entity"
	"motoservice-be/internal/model"
	"motoservice-be/internal/repository/unitofwork"
	"motoservice-be/internal/server"
	"motoservice-be/pkg/auth"
	"motoservice-be/pkg/database"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func call(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, 10000)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func TestBookingFlowAgainstPostgres(t *testing.T) {
	// Load .env from root (2 levels up) because tests run in package dir
	if err := godotenv.Load("../../.env"); err != nil {
		t.Logf("No .env file found, using system env")
	}
	cfg := config.Load()
	if cfg.Database.Connection == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}
	cfg.Auth.JwtSecret = "integration-secret"
	cfg.Messaging.RedisURL = ""

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection, false, database.DefaultPoolConfig())
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.All()...))

	container := bootstrap.NewContainer(db, cfg)
	defer container.Close()
	app := server.New(cfg, container).GetApp()

	// Seed a shop with one available worker
	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)
	shop := &entity.Shop{OwnerId: uuid.New(), Name: "Integration Shop " + uuid.NewString()[:8], Rating: 4.5}
	require.NoError(t, uow.ShopRepository().Create(ctx, shop))
	svc := &entity.ShopService{ShopId: shop.Id, Name: "Oil change", Price: 100}
	require.NoError(t, uow.ShopRepository().CreateService(ctx, svc))
	worker := &entity.Worker{ShopId: shop.Id, Name: "Integration Mechanic", Rating: 4.9, IsAvailable: true}
	require.NoError(t, uow.WorkerRepository().Create(ctx, worker))

	customer := entity.Actor{Id: uuid.New(), Role: entity.RoleCustomer}
	customerToken, err := auth.Issue(cfg.Auth.JwtSecret, customer, time.Hour)
	require.NoError(t, err)
	workerToken, err := auth.Issue(cfg.Auth.JwtSecret, entity.Actor{Id: worker.Id, Role: entity.RoleWorker}, time.Hour)
	require.NoError(t, err)

	status, env := call(t, app, http.MethodPost, "/api/booking/v1", customerToken, map[string]string{
		"shop_id":    shop.Id.String(),
		"service_id": svc.Id.String(),
	})
	require.Equal(t, http.StatusOK, status, env.Message)

	var booking struct {
		Id     uuid.UUID `json:"id"`
		Status string    `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &booking))
	assert.Equal(t, "pending", booking.Status)
	base := "/api/booking/v1/" + booking.Id.String()

	status, env = call(t, app, http.MethodPost, base+"/confirm", customerToken, nil)
	require.Equal(t, http.StatusOK, status, env.Message)

	status, env = call(t, app, http.MethodPost, base+"/cancel", customerToken, nil)
	assert.Equal(t, http.StatusConflict, status)
	assert.False(t, env.Success)

	status, env = call(t, app, http.MethodPost, base+"/start", workerToken, nil)
	require.Equal(t, http.StatusOK, status, env.Message)

	status, env = call(t, app, http.MethodPost, base+"/complete", workerToken, map[string]float64{"extra_charges": 50})
	require.Equal(t, http.StatusOK, status, env.Message)

	var completed struct {
		Invoice struct {
			TotalAmount        float64 `json:"total_amount"`
			PlatformCommission float64 `json:"platform_commission"`
			ShopCommission     float64 `json:"shop_commission"`
		} `json:"invoice"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &completed))
	assert.Equal(t, 150.0, completed.Invoice.TotalAmount)
	assert.Equal(t, 45.0, completed.Invoice.PlatformCommission)
	assert.Equal(t, 105.0, completed.Invoice.ShopCommission)

	status, _ = call(t, app, http.MethodPost, base+"/complete", workerToken, nil)
	assert.Equal(t, http.StatusConflict, status)
}
