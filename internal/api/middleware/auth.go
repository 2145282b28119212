package middleware

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/starevents/starevents-api/internal/api/handler/v1/response"
	"github.com/starevents/starevents-api/internal/domain"
	"github.com/starevents/starevents-api/internal/pkg/jwthelper"
)

const (
	ContextKeyUserID = "userID"
	ContextKeyRole   = "role"
)

var (
	errMissingToken = errors.New("missing bearer token")
	errNoActor      = errors.New("no authenticated user in context")
	errInactive     = errors.New("account is deactivated")
)

type AccountLookup interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
}

type Authenticator struct {
	key      []byte
	accounts AccountLookup
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{key: []byte(signingKey)}
}

// WithAccounts makes VerifyJWT load the account behind each token. Deactivated or
// deleted accounts are then rejected and the stored role wins over the token's.
func (a *Authenticator) WithAccounts(accounts AccountLookup) *Authenticator {
	a.accounts = accounts
	return a
}

// VerifyJWT rejects requests without a valid bearer token and stores the
// caller's id and role in the gin context.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, err := a.parse(ctx)
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(err))
			return
		}

		role, err := domain.ParseRole(claims.Role)
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(err))
			return
		}

		if a.accounts != nil {
			user, err := a.accounts.FindByID(ctx.Request.Context(), claims.UserID)
			switch {
			case errors.Is(err, domain.ErrNotFound):
				response.RenderErr(ctx, response.ErrUnauthorized(err))
				return
			case err != nil:
				response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("a.accounts.FindByID -> %w", err)))
				return
			case !user.IsActive:
				response.RenderErr(ctx, response.ErrUnauthorized(errInactive))
				return
			}
			role = user.Role
		}

		ctx.Set(ContextKeyUserID, claims.UserID)
		ctx.Set(ContextKeyRole, role)
		ctx.Next()
	}
}

func (a *Authenticator) parse(ctx *gin.Context) (*jwthelper.UserClaims, error) {
	header := ctx.GetHeader("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return nil, errMissingToken
	}

	return jwthelper.ParseToken(a.key, token)
}

// Actor returns the caller stored by VerifyJWT.
func Actor(ctx *gin.Context) (domain.Actor, error) {
	userID := ctx.GetUint(ContextKeyUserID)
	role, ok := ctx.Get(ContextKeyRole)
	if userID == 0 || !ok {
		return domain.Actor{}, errNoActor
	}

	r, ok := role.(domain.Role)
	if !ok {
		return domain.Actor{}, errNoActor
	}

	return domain.Actor{UserID: userID, Role: r}, nil
}
