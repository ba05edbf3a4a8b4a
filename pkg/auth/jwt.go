package auth

import (
	"errors"
	"time"

	"motoservice-be/internal/entity"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims carried by bearer tokens issued by the identity service
type Claims struct {
	UserId string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenVerifier turns a bearer token into the actor behind it.
type TokenVerifier interface {
	Verify(tokenStr string) (entity.Actor, error)
}

type JWTVerifier struct {
	secret []byte
}

func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret)}
}

func (v *JWTVerifier) Verify(tokenStr string) (entity.Actor, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return v.secret, nil
	})
	if err != nil {
		return entity.Actor{}, err
	}
	c, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return entity.Actor{}, ErrInvalidToken
	}

	id, err := uuid.Parse(c.UserId)
	if err != nil {
		return entity.Actor{}, ErrInvalidToken
	}
	role := entity.Role(c.Role)
	if !role.Valid() {
		return entity.Actor{}, ErrInvalidToken
	}
	return entity.Actor{Id: id, Role: role}, nil
}

// Issue signs an HS256 token for the actor. Production tokens come from the
// identity service; this serves seeding and tests.
func Issue(secret string, actor entity.Actor, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserId: actor.Id.String(),
		Role:   string(actor.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
