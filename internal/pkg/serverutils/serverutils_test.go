package serverutils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"motoservice-be/internal/entity"
	"motoservice-be/internal/pkg/apperror"
	"motoservice-be/internal/pkg/logger"
	"motoservice-be/pkg/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type probe struct {
	Name  string `validate:"required"`
	Count int    `validate:"gte=1"`
}

func newApp(handler fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware(logger.NewNopLogger()))
	app.Get("/x", handler)
	return app
}

func decode(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestErrorHandlerMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"not found", apperror.NotFound("booking not found"), http.StatusNotFound, "booking not found"},
		{"denied", apperror.AuthorizationDenied("nope"), http.StatusForbidden, "nope"},
		{"quota", apperror.QuotaExhausted("no tokens"), http.StatusBadRequest, "no tokens"},
		{"dependency hides cause", apperror.DependencyFailure("db down", errors.New("dial tcp")), http.StatusInternalServerError, "internal server error"},
		{"fiber error", fiber.NewError(http.StatusMethodNotAllowed, "nope"), http.StatusMethodNotAllowed, "nope"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal server error"},
		{"validation", ValidateRequest(probe{}), http.StatusBadRequest, "Name failed on required; Count failed on gte=1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newApp(func(*fiber.Ctx) error { return tt.err })

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/x", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			body := decode(t, resp)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, float64(tt.wantStatus), body["code"])
			assert.Equal(t, tt.wantMsg, body["message"])
		})
	}
}

func TestErrorHandlerMiddleware_ConflictCarriesCurrentStatus(t *testing.T) {
	app := newApp(func(*fiber.Ctx) error {
		return apperror.InvalidStateTransition("cannot cancel a assigned booking", "assigned")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/x", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	body := decode(t, resp)
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "assigned", data["current_status"])
}

func TestJwtMiddleware(t *testing.T) {
	actor := entity.Actor{Id: uuid.New(), Role: entity.RoleWorker}
	valid, err := auth.Issue("secret", actor, time.Hour)
	require.NoError(t, err)
	forged, err := auth.Issue("other", actor, time.Hour)
	require.NoError(t, err)

	app := fiber.New()
	app.Use(ErrorHandlerMiddleware(logger.NewNopLogger()))
	app.Use(NewJwtMiddleware(auth.NewJWTVerifier("secret")))
	app.Get("/me/:id", func(ctx *fiber.Ctx) error {
		got, err := Actor(ctx)
		if err != nil {
			return err
		}
		id, err := ParamUUID(ctx, "id")
		if err != nil {
			return err
		}
		return ctx.JSON(SuccessResponse("ok", map[string]string{"actor": got.Id.String(), "role": string(got.Role), "id": id.String()}))
	})

	tests := []struct {
		name       string
		header     string
		path       string
		wantStatus int
	}{
		{"missing header", "", "/me/" + actor.Id.String(), http.StatusUnauthorized},
		{"not bearer", "Basic abc", "/me/" + actor.Id.String(), http.StatusUnauthorized},
		{"forged", "Bearer " + forged, "/me/" + actor.Id.String(), http.StatusUnauthorized},
		{"bad param", "Bearer " + valid, "/me/not-a-uuid", http.StatusBadRequest},
		{"ok", "Bearer " + valid, "/me/" + actor.Id.String(), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			if tt.wantStatus == http.StatusOK {
				body := decode(t, resp)
				data := body["data"].(map[string]interface{})
				assert.Equal(t, actor.Id.String(), data["actor"])
				assert.Equal(t, "worker", data["role"])
			}
		})
	}
}

func TestActor_MissingLocals(t *testing.T) {
	app := newApp(func(ctx *fiber.Ctx) error {
		_, err := Actor(ctx)
		return err
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/x", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
