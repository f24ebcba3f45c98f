package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"canteen/config"
	"canteen/internal/delivery/api/middleware"
	"canteen/internal/delivery/api/router"
	"canteen/internal/delivery/api/router/handler"
	"canteen/internal/delivery/api/sse"
	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	mockUsecase "canteen/internal/mocks/usecase"
	"canteen/internal/usecase"
	"canteen/internal/usecase/live"
	"canteen/internal/usecase/session"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	customerToken   = "customer-token"
	unverifiedToken = "unverified-token"
	adminToken      = "admin-token"
)

type apiFixture struct {
	echo          *echo.Echo
	auth          *mockUsecase.MockAuthUsecase
	account       *mockUsecase.MockAccountUsecase
	users         *mockUsecase.MockUsersUsecase
	menu          *mockUsecase.MockMenuUsecase
	orders        *mockUsecase.MockOrderUsecase
	notifications *mockUsecase.MockNotificationUsecase
	support       *mockUsecase.MockSupportUsecase
	reports       *mockUsecase.MockReportUsecase
}

func createTestAPI(t *testing.T) *apiFixture {
	t.Helper()

	fx := &apiFixture{
		auth:          mockUsecase.NewMockAuthUsecase(t),
		account:       mockUsecase.NewMockAccountUsecase(t),
		users:         mockUsecase.NewMockUsersUsecase(t),
		menu:          mockUsecase.NewMockMenuUsecase(t),
		orders:        mockUsecase.NewMockOrderUsecase(t),
		notifications: mockUsecase.NewMockNotificationUsecase(t),
		support:       mockUsecase.NewMockSupportUsecase(t),
		reports:       mockUsecase.NewMockReportUsecase(t),
	}

	sessions := map[string]*session.Session{
		customerToken: session.New(
			&entity.Identity{UID: "u1", Email: "asha@example.com", EmailVerified: true},
			&entity.UserProfile{ID: "u1", Name: "Asha"},
		),
		unverifiedToken: session.New(
			&entity.Identity{UID: "u2", Email: "ravi@example.com"},
			&entity.UserProfile{ID: "u2", Name: "Ravi"},
		),
		adminToken: session.New(
			&entity.Identity{UID: "a1", Email: "chef@example.com", EmailVerified: true},
			&entity.UserProfile{ID: "a1", Name: "Chef", AdminCheck: true},
		),
	}
	for token, s := range sessions {
		fx.auth.EXPECT().Authenticate(mock.Anything, token).Return(s, nil).Maybe()
	}
	fx.auth.EXPECT().Authenticate(mock.Anything, "expired").Return(nil, domainerrors.ErrTokenInvalid).Maybe()

	cfg := &config.Config{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	streamer := sse.NewStreamer(cfg, logger)

	fx.echo = newEcho(cfg, logger)
	router.NewRouter(router.RouterParams{
		AuthHandler:         handler.NewAuthHandler(fx.auth),
		AccountHandler:      handler.NewAccountHandler(fx.account, fx.users, streamer),
		MenuHandler:         handler.NewMenuHandler(fx.menu, streamer),
		OrderHandler:        handler.NewOrderHandler(fx.orders, streamer),
		NotificationHandler: handler.NewNotificationHandler(fx.notifications, streamer),
		SupportHandler:      handler.NewSupportHandler(fx.support, streamer),
		ReportHandler:       handler.NewReportHandler(fx.reports, streamer),
		AuthMiddleware:      middleware.NewAuthMiddleware(fx.auth, logger),
	}).RegisterRoutes(fx.echo)

	return fx
}

func (fx *apiFixture) do(method, target, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error struct {
		Code     string `json:"code"`
		Message  string `json:"message"`
		Details  string `json:"details"`
		Redirect string `json:"redirect"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func TestRouteGuard(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		token        string
		wantStatus   int
		wantCode     string
		wantRedirect string
	}{
		{"anonymous customer area", "/menu", "", http.StatusUnauthorized, "UNAUTHENTICATED", "/auth"},
		{"expired token", "/menu", "expired", http.StatusUnauthorized, "UNAUTHENTICATED", "/auth"},
		{"unverified customer area", "/menu", unverifiedToken, http.StatusForbidden, "EMAIL_NOT_VERIFIED", "/verify-email"},
		{"anonymous admin area", "/admin/dashboard", "", http.StatusUnauthorized, "UNAUTHENTICATED", "/adminlogin"},
		{"customer admin area", "/admin/dashboard", customerToken, http.StatusForbidden, "ADMIN_ACCESS_DENIED", "/adminlogin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAPI(t)

			rec := fx.do(http.MethodGet, tt.target, tt.token, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			env := decode(t, rec)
			assert.Equal(t, tt.wantCode, env.Error.Code)
			assert.Equal(t, tt.wantRedirect, env.Error.Redirect)
			assert.NotEmpty(t, env.Meta.RequestID)
		})
	}
}

func TestRouteGuard_UnverifiedMayPollStatus(t *testing.T) {
	fx := createTestAPI(t)
	fx.auth.EXPECT().Status(mock.Anything, "u2").Return(&usecase.AuthStatus{
		Identity: &entity.Identity{UID: "u2", Email: "ravi@example.com", EmailVerified: true},
		Profile:  &entity.UserProfile{ID: "u2", Name: "Ravi"},
		Landing:  "/menu",
	}, nil).Once()

	rec := fx.do(http.MethodGet, "/auth/status", unverifiedToken, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"landing":"/menu"`)
	assert.Contains(t, rec.Body.String(), `"email_verified":true`)
}

func TestLanding(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{"anonymous", "", "/"},
		{"unverified", unverifiedToken, "/verify-email"},
		{"customer", customerToken, "/menu"},
		{"admin", adminToken, "/admin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAPI(t)

			rec := fx.do(http.MethodGet, "/auth/landing", tt.token, "")

			require.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `{"landing":"`+tt.want+`"}`, string(decode(t, rec).Data))
		})
	}
}

func TestSignIn_FixedErrorMessage(t *testing.T) {
	fx := createTestAPI(t)
	fx.auth.EXPECT().
		SignIn(mock.Anything, &usecase.SignInInput{Email: "asha@example.com", Password: "nope"}).
		Return(nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "failed to sign in")).
		Once()

	rec := fx.do(http.MethodPost, "/auth/login", "", `{"email":"asha@example.com","password":"nope"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
	assert.Equal(t, "Invalid email or password.", env.Error.Message)
}

func TestPlaceOrder(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		fx := createTestAPI(t)

		rec := fx.do(http.MethodPost, "/orders", customerToken, `{"items":[],"paymentMethod":"cash"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Contains(t, env.Error.Details, "paymentMethod")
	})

	t.Run("malformed body", func(t *testing.T) {
		fx := createTestAPI(t)

		rec := fx.do(http.MethodPost, "/orders", customerToken, `{"items":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
	})

	t.Run("placed", func(t *testing.T) {
		fx := createTestAPI(t)
		order := &entity.Order{ID: "o1", OrderID: "ORDER_ABC123XYZ", UserID: "u1", Status: entity.OrderStatusPending}
		fx.orders.EXPECT().
			PlaceOrder(mock.Anything, usecase.Actor{UID: "u1", Name: "Asha"}, &usecase.PlaceOrderInput{
				Items:          []usecase.CartLine{{MenuItemID: "m1", Quantity: 2}},
				PaymentMethod:  entity.PaymentMethodGPay,
				ScheduleAt:     "12:30",
				IdempotencyKey: "k-1",
			}).
			Return(order, nil).
			Once()

		req := httptest.NewRequest(http.MethodPost, "/orders",
			strings.NewReader(`{"items":[{"menuItemId":"m1","quantity":2}],"paymentMethod":"gpay","scheduleAt":"12:30"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+customerToken)
		req.Header.Set(handler.HeaderIdempotencyKey, "k-1")
		rec := httptest.NewRecorder()
		fx.echo.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Contains(t, string(decode(t, rec).Data), `"order_id":"ORDER_ABC123XYZ"`)
	})
}

func TestAdminOrders_ErrorMapping(t *testing.T) {
	fx := createTestAPI(t)
	fx.orders.EXPECT().
		MarkReady(mock.Anything, "o1").
		Return(nil, errors.Wrap(domainerrors.ErrInvalidTransition, "order is ready")).
		Once()
	fx.orders.EXPECT().
		Cancel(mock.Anything, "o2").
		Return(nil, errors.New("rpc error: deadline exceeded on projects/canteen")).
		Once()

	rec := fx.do(http.MethodPost, "/admin/orders/o1/ready", adminToken, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "INVALID_STATUS_TRANSITION", decode(t, rec).Error.Code)

	rec = fx.do(http.MethodPost, "/admin/orders/o2/cancel", adminToken, "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", decode(t, rec).Error.Code)
	assert.NotContains(t, rec.Body.String(), "projects/canteen")
}

func TestAdminOrders_SetPaymentRequiresFlag(t *testing.T) {
	fx := createTestAPI(t)
	fx.orders.EXPECT().SetPaymentStatus(mock.Anything, "o1", false).Return(nil).Once()

	rec := fx.do(http.MethodPost, "/admin/orders/o1/payment", adminToken, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = fx.do(http.MethodPost, "/admin/orders/o1/payment", adminToken, `{"paid":false}`)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAdminOrders_Scan(t *testing.T) {
	fx := createTestAPI(t)
	row := &usecase.OrderRow{
		Order:        &entity.Order{ID: "o1", OrderID: "ORDER_ABC123XYZ", Status: entity.OrderStatusReady},
		CustomerName: "Asha",
	}
	fx.orders.EXPECT().ScanPickup(mock.Anything, "canteen:pickup:ORDER_ABC123XYZ").Return(row, nil).Once()

	rec := fx.do(http.MethodPost, "/admin/orders/scan", adminToken, `{"data":"canteen:pickup:ORDER_ABC123XYZ"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decode(t, rec).Data), `"customer_name":"Asha"`)
}

func TestOrderQRCode(t *testing.T) {
	fx := createTestAPI(t)
	png := []byte("\x89PNG\r\n\x1a\n")
	fx.orders.EXPECT().PickupQR(mock.Anything, usecase.Actor{UID: "u1", Name: "Asha"}, "o1").Return(png, nil).Once()

	rec := fx.do(http.MethodGet, "/orders/o1/qrcode", customerToken, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestSetAdmin_SelfToggleForbidden(t *testing.T) {
	fx := createTestAPI(t)
	fx.users.EXPECT().
		SetAdmin(mock.Anything, usecase.Actor{UID: "a1", Name: "Chef", Admin: true}, "a1", false).
		Return(nil, domainerrors.ErrSelfAdminToggle).
		Once()

	rec := fx.do(http.MethodPost, "/admin/users/a1/admin", adminToken, `{"admin":false}`)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "SELF_ADMIN_TOGGLE", decode(t, rec).Error.Code)
}

func TestSupportReply_SharedByBothAreas(t *testing.T) {
	fx := createTestAPI(t)
	ticket := &entity.Ticket{ID: "t1", Status: entity.TicketStatusOpen}
	fx.support.EXPECT().Reply(mock.Anything, usecase.Actor{UID: "u1", Name: "Asha"}, "t1", "Still waiting").Return(ticket, nil).Once()
	fx.support.EXPECT().Reply(mock.Anything, usecase.Actor{UID: "a1", Name: "Chef", Admin: true}, "t1", "On it").Return(ticket, nil).Once()

	rec := fx.do(http.MethodPost, "/support/tickets/t1/messages", customerToken, `{"text":"Still waiting"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = fx.do(http.MethodPost, "/admin/support/tickets/t1/messages", adminToken, `{"text":"On it"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

type scriptedFeed struct {
	frames  []live.Frame
	next    int
	changed chan struct{}
	closed  bool
}

func newScriptedFeed(frames ...live.Frame) *scriptedFeed {
	changed := make(chan struct{}, len(frames))
	for range len(frames) - 1 {
		changed <- struct{}{}
	}

	return &scriptedFeed{frames: frames, changed: changed}
}

func (f *scriptedFeed) Changed() <-chan struct{} { return f.changed }

func (f *scriptedFeed) Frame(context.Context) live.Frame {
	frame := f.frames[min(f.next, len(f.frames)-1)]
	f.next++

	return frame
}

func (f *scriptedFeed) Close() { f.closed = true }

func TestMenuStream(t *testing.T) {
	fx := createTestAPI(t)
	feed := newScriptedFeed(
		live.Frame{State: live.StateReady, Version: 1, Data: []*entity.MenuItem{{ID: "m1", ItemName: "Masala Dosa", Price: 60}}},
		live.Frame{State: live.StateReady, Version: 1},
		live.Frame{State: live.StateFailed, Err: errors.New("firestore: permission denied on projects/canteen")},
	)
	fx.menu.EXPECT().StreamMenu(mock.Anything, "dosa").Return(feed).Once()

	// EventSource clients pass the token as a query parameter.
	rec := fx.do(http.MethodGet, "/menu/stream?q=dosa&access_token="+customerToken, "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, sse.ContentType, rec.Header().Get(echo.HeaderContentType))
	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, ": connected\n\n"))
	assert.Equal(t, 1, strings.Count(body, "event: snapshot\n"), "an unchanged version is not resent")
	assert.Contains(t, body, `"item_name":"Masala Dosa"`)
	assert.Contains(t, body, "event: error\n")
	assert.Contains(t, body, `"code":"STREAM_FAILED"`)
	assert.NotContains(t, body, "permission denied")
	assert.True(t, feed.closed)
}
