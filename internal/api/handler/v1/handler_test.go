package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/starevents/starevents-api/internal/api/handler/v1/response"
	"github.com/starevents/starevents-api/internal/api/middleware"
	"github.com/starevents/starevents-api/internal/domain"
	"github.com/starevents/starevents-api/internal/pkg/jwthelper"
	"github.com/starevents/starevents-api/internal/service"
)

const testSigningKey = "test-signing-key"

func init() {
	gin.SetMode(gin.TestMode)
}

func tokenFor(t *testing.T, userID uint, role domain.Role) string {
	t.Helper()

	token, err := jwthelper.GenerateToken([]byte(testSigningKey), userID, string(role), "test", time.Hour)
	require.NoError(t, err)

	return token
}

// newTestRouter mounts routes under /api/v1, behind JWT verification when secured.
func newTestRouter(secured bool, mount func(g *gin.RouterGroup)) *gin.Engine {
	router := gin.New()
	g := router.Group("/api/v1")
	if secured {
		g.Use(middleware.NewAuthenticator(testSigningKey).VerifyJWT())
	}
	mount(g)

	return router
}

func doRequest(t *testing.T, router http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func decodeErr(t *testing.T, rec *httptest.ResponseRecorder) response.Err {
	t.Helper()

	var body response.Err
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Signup(ctx context.Context, user domain.User) (domain.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (domain.User, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockAuthService) ChangePassword(ctx context.Context, actor domain.Actor, current, next string) error {
	args := m.Called(ctx, actor, current, next)
	return args.Error(0)
}

type mockBookingService struct {
	mock.Mock
}

func (m *mockBookingService) PlaceBooking(ctx context.Context, actor domain.Actor, req domain.BookingRequest) (domain.Booking, error) {
	args := m.Called(ctx, actor, req)
	return args.Get(0).(domain.Booking), args.Error(1)
}

func (m *mockBookingService) CancelBooking(ctx context.Context, actor domain.Actor, reference string) (domain.Booking, error) {
	args := m.Called(ctx, actor, reference)
	return args.Get(0).(domain.Booking), args.Error(1)
}

func (m *mockBookingService) GetBooking(ctx context.Context, actor domain.Actor, reference string) (domain.Booking, error) {
	args := m.Called(ctx, actor, reference)
	return args.Get(0).(domain.Booking), args.Error(1)
}

func (m *mockBookingService) ListMyBookings(ctx context.Context, actor domain.Actor) ([]domain.Booking, error) {
	args := m.Called(ctx, actor)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *mockBookingService) ListMyTickets(ctx context.Context, actor domain.Actor) ([]domain.TicketDetails, error) {
	args := m.Called(ctx, actor)
	return args.Get(0).([]domain.TicketDetails), args.Error(1)
}

func (m *mockBookingService) ScanTicket(ctx context.Context, actor domain.Actor, number string) (domain.TicketDetails, error) {
	args := m.Called(ctx, actor, number)
	return args.Get(0).(domain.TicketDetails), args.Error(1)
}

type mockEventService struct {
	mock.Mock
}

func (m *mockEventService) CreateEvent(ctx context.Context, actor domain.Actor, details domain.EventDetails, image *service.Image) (domain.Event, error) {
	args := m.Called(ctx, actor, details, image)
	return args.Get(0).(domain.Event), args.Error(1)
}

func (m *mockEventService) EditEvent(ctx context.Context, actor domain.Actor, id uint, version int, details domain.EventDetails, image *service.Image) (domain.Event, error) {
	args := m.Called(ctx, actor, id, version, details, image)
	return args.Get(0).(domain.Event), args.Error(1)
}

func (m *mockEventService) ReplaceImage(ctx context.Context, actor domain.Actor, id uint, image service.Image) (domain.Event, error) {
	args := m.Called(ctx, actor, id, image)
	return args.Get(0).(domain.Event), args.Error(1)
}

func (m *mockEventService) Approve(ctx context.Context, actor domain.Actor, id uint) (domain.Event, error) {
	args := m.Called(ctx, actor, id)
	return args.Get(0).(domain.Event), args.Error(1)
}

func (m *mockEventService) Reject(ctx context.Context, actor domain.Actor, id uint) (domain.Event, error) {
	args := m.Called(ctx, actor, id)
	return args.Get(0).(domain.Event), args.Error(1)
}

func (m *mockEventService) CancelEvent(ctx context.Context, actor domain.Actor, id uint) (domain.Event, int, error) {
	args := m.Called(ctx, actor, id)
	return args.Get(0).(domain.Event), args.Int(1), args.Error(2)
}

func (m *mockEventService) ListPublicEvents(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *mockEventService) GetPublicEvent(ctx context.Context, id uint) (domain.Event, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Event), args.Error(1)
}

func (m *mockEventService) ListMyEvents(ctx context.Context, actor domain.Actor, search string, status domain.EventStatus) ([]domain.Event, error) {
	args := m.Called(ctx, actor, search, status)
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *mockEventService) GetMyEvent(ctx context.Context, actor domain.Actor, id uint) (domain.Event, error) {
	args := m.Called(ctx, actor, id)
	return args.Get(0).(domain.Event), args.Error(1)
}

func (m *mockEventService) ManageEvents(ctx context.Context, actor domain.Actor, search string, status domain.EventStatus) ([]domain.EventRow, error) {
	args := m.Called(ctx, actor, search, status)
	return args.Get(0).([]domain.EventRow), args.Error(1)
}

func (m *mockEventService) Availability(ctx context.Context, id uint) (domain.Availability, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Availability), args.Error(1)
}
