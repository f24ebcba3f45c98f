package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"canteen/internal/delivery/api/response"
	deliverycontext "canteen/internal/delivery/context"
	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/usecase"
	"canteen/internal/usecase/guard"
	"canteen/internal/usecase/session"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	sessionKey = "session"

	// accessTokenParam carries the ID token for EventSource clients, which cannot set headers.
	accessTokenParam = "access_token"
)

// AuthMiddleware attaches the caller's session to the request and enforces the route guard.
type AuthMiddleware struct {
	auth   usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(auth usecase.AuthUsecase, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{auth: auth, logger: logger}
}

// Authenticate resolves the bearer token into a session. Requests without a token, or with
// an invalid one, continue anonymously; Require decides whether that is acceptable.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := bearerToken(c)
		if token == "" {
			return next(c)
		}

		ctx := c.Request().Context()
		s, err := m.auth.Authenticate(ctx, token)
		switch {
		case errors.Is(err, domainerrors.ErrTokenInvalid):
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("Ignoring invalid token", slog.String("path", c.Request().URL.Path))
		case err != nil:
			return errors.WithStack(err)
		default:
			c.Set(sessionKey, s)
			c.SetRequest(c.Request().WithContext(deliverycontext.WithLogAttrs(ctx, m.logger, slog.String("uid", s.UID()))))
		}

		return next(c)
	}
}

// Require rejects callers the guard does not admit into area. Unauthenticated callers get
// 401; the rest get 403. Both name the route the client should open instead.
func (m *AuthMiddleware) Require(area guard.Area) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, profile := Caller(c)
			decision := guard.Resolve(identity, profile, area)
			if decision.Allowed {
				return next(c)
			}

			return response.Denied(c, reasonError(decision.Reason), decision.Redirect)
		}
	}
}

func reasonError(reason guard.Reason) domainerrors.AppError {
	switch reason {
	case guard.ReasonUnverified:
		return domainerrors.ErrEmailNotVerified
	case guard.ReasonNotAdmin:
		return domainerrors.ErrAdminAccessDenied
	default:
		return domainerrors.ErrUnauthenticated
	}
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	if c.Request().Method == http.MethodGet {
		return c.QueryParam(accessTokenParam)
	}

	return ""
}

// Session returns the caller's session, or nil for anonymous requests.
func Session(c echo.Context) *session.Session {
	s, _ := c.Get(sessionKey).(*session.Session)

	return s
}

// Caller returns the identity and profile the guard evaluates. Both are nil for anonymous requests.
func Caller(c echo.Context) (*entity.Identity, *entity.UserProfile) {
	s := Session(c)
	if s == nil {
		return nil, nil
	}

	return s.Identity(), s.Profile()
}

// Actor returns the acting identity of a guarded route.
func Actor(c echo.Context) usecase.Actor {
	return usecase.ActorOf(Session(c))
}
