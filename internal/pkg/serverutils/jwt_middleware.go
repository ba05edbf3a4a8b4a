package serverutils

import (
	"strings"

	"motoservice-be/internal/entity"
	"motoservice-be/internal/pkg/apperror"
	"motoservice-be/pkg/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const actorKey = "actor"

// NewJwtMiddleware verifies the bearer token and stores the actor in Locals.
func NewJwtMiddleware(verifier auth.TokenVerifier) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") || len(authHeader) == len("Bearer ") {
			return apperror.AuthenticationMissing("missing bearer token")
		}

		actor, err := verifier.Verify(authHeader[len("Bearer "):])
		if err != nil {
			return &apperror.AppError{Kind: apperror.KindAuthenticationMissing, Message: "invalid or expired token", Cause: err}
		}

		ctx.Locals(actorKey, actor)
		return ctx.Next()
	}
}

// Actor returns the verified actor set by the JWT middleware.
func Actor(ctx *fiber.Ctx) (entity.Actor, error) {
	actor, ok := ctx.Locals(actorKey).(entity.Actor)
	if !ok {
		return entity.Actor{}, apperror.AuthenticationMissing("missing bearer token")
	}
	return actor, nil
}

// ParamUUID parses a path parameter as a uuid.
func ParamUUID(ctx *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params(name))
	if err != nil {
		return uuid.Nil, apperror.ValidationFailure("invalid " + name)
	}
	return id, nil
}
