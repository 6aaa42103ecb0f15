package usecase

//go:generate mockgen -source=$GOFILE -destination=../../tests/mock/usecase/$GOFILE -package=usecasemock

import (
	"context"
	"log/slog"

	"carseat-rental/internal/domain/session"
	"carseat-rental/internal/pkg/errs"
	"carseat-rental/internal/pkg/jwt"

	"github.com/google/uuid"
)

// Client is the browser identity a request runs as, with the Session stored for it if any.
type Client struct {
	ID      uuid.UUID
	Token   string
	Minted  bool
	Session *session.Session
}

// ClientResolver identifies the client behind a request, minting a new identity when the token is missing or invalid.
type ClientResolver interface {
	Resolve(ctx context.Context, token string) (*Client, error)
}

type clientResolverImpl struct {
	jwtService *jwt.Service
	sessions   SessionStore
}

func NewClientResolver(jwtService *jwt.Service, sessions SessionStore) ClientResolver {
	return &clientResolverImpl{
		jwtService: jwtService,
		sessions:   sessions,
	}
}

func (r *clientResolverImpl) Resolve(ctx context.Context, token string) (*Client, error) {
	if token != "" {
		id, err := r.jwtService.ValidateClientToken(token)
		if err == nil {
			sess, err := r.sessions.Load(ctx, id)
			if err != nil {
				return nil, errs.Wrap(err, "load session")
			}
			return &Client{ID: id, Token: token, Session: sess}, nil
		}
		slog.Debug("Discarding client token", "error", err)
	}

	id := uuid.New()
	minted, err := r.jwtService.GenerateClientToken(id)
	if err != nil {
		return nil, errs.Wrap(err, "mint client token")
	}
	return &Client{ID: id, Token: minted, Minted: true}, nil
}
