package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GlebRadaev/fruitshop/internal/config"
	"github.com/GlebRadaev/fruitshop/internal/domain"
	"github.com/GlebRadaev/fruitshop/internal/kv"
	"github.com/GlebRadaev/fruitshop/internal/repo"
	"github.com/GlebRadaev/fruitshop/internal/service"
	"github.com/GlebRadaev/fruitshop/pkg/auth"
	"github.com/GlebRadaev/fruitshop/pkg/ratelimit"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	services, err := service.New(repo.New(kv.NewMemoryStore()), &config.Config{
		Hasher:    "legacy",
		JWTSecret: "test-secret",
	})
	require.NoError(t, err)
	defer services.Simulator.Close()

	h := New(services, 5)
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.AuthHandler)
	assert.NotNil(t, h.OrderHandler)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockOrderHandler := NewMockOrderHandler(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)
	session := auth.NewMockSessionView(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Logout(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:  mockAuthHandler,
		OrderHandler: mockOrderHandler,
		jwtService:   jwtService,
		session:      session,
		loginLimiter: ratelimit.New(1, ratelimit.ByIP),
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/user/register", http.StatusOK},
		{"POST", "/api/user/login", http.StatusOK},
		{"POST", "/api/user/logout", http.StatusOK},
		{"GET", "/api/user/", http.StatusUnauthorized},
		{"PATCH", "/api/user/profile", http.StatusUnauthorized},
		{"POST", "/api/user/orders", http.StatusUnauthorized},
		{"GET", "/api/user/orders", http.StatusUnauthorized},
		{"GET", "/api/user/orders/ORD-1", http.StatusUnauthorized},
		{"POST", "/api/user/orders/ORD-1/status", http.StatusUnauthorized},
		{"POST", "/api/user/orders/ORD-1/simulate", http.StatusUnauthorized},
		{"DELETE", "/api/user/orders/ORD-1/simulate", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}

	t.Run("login is rate limited", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/user/login", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	})
}

func TestInitRoutes_AuthorizedOrderRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockOrderHandler := NewMockOrderHandler(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)
	session := auth.NewMockSessionView(ctrl)

	jwtService.EXPECT().ValidateToken("token").Return(&auth.Claims{UserID: "u1"}, nil).AnyTimes()
	session.EXPECT().CurrentUser().Return(&domain.SessionUser{ID: "u1"}).AnyTimes()
	session.EXPECT().IsAuthenticated().Return(true).AnyTimes()

	mockOrderHandler.EXPECT().GetOrder(gomock.Any(), gomock.Any()).Do(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "ORD-1", chi.URLParam(r, "id"))
		assert.Equal(t, "u1", r.Context().Value(auth.UserIDKey))
		w.WriteHeader(http.StatusOK)
	})
	mockOrderHandler.EXPECT().StopSimulation(gomock.Any(), gomock.Any()).Do(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	h := &Handlers{
		AuthHandler:  NewMockAuthHandler(ctrl),
		OrderHandler: mockOrderHandler,
		jwtService:   jwtService,
		session:      session,
	}
	router := chi.NewRouter()
	h.InitRoutes(router)

	for _, tt := range []struct{ method, url string }{
		{"GET", "/api/user/orders/ORD-1"},
		{"DELETE", "/api/user/orders/ORD-1/simulate"},
	} {
		req := httptest.NewRequest(tt.method, tt.url, nil)
		req.Header.Set("Authorization", "Bearer token")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, tt.method+" "+tt.url)
	}
}

func TestAPI_EndToEnd(t *testing.T) {
	services, err := service.New(repo.New(kv.NewMemoryStore()), &config.Config{
		Hasher:       "legacy",
		JWTSecret:    "test-secret",
		StartDelay:   time.Hour,
		StepInterval: time.Hour,
	})
	require.NoError(t, err)
	defer services.Simulator.Close()

	router := chi.NewRouter()
	New(services, 0).InitRoutes(router)

	do := func(method, url, token, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, url, bytes.NewBufferString(body))
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	rec := do("POST", "/api/user/register", "", `{"email":"ann@example.com","password":"apples","firstName":"Ann","lastName":"Lee"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do("POST", "/api/user/register", "", `{"email":"ann@example.com","password":"apples","firstName":"Ann","lastName":"Lee"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do("POST", "/api/user/login", "", `{"email":"ann@example.com","password":"pears"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do("POST", "/api/user/login", "", `{"email":"ann@example.com","password":"apples"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	token := rec.Header().Get("Authorization")[len("Bearer "):]

	rec = do("GET", "/api/user/orders", token, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do("POST", "/api/user/orders", token, `{"items":["apple","bundle_x"],"deliveryDetails":{"address":"1 Orchard Lane"}}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	orderID := gjson.Get(rec.Body.String(), "id").String()
	assert.Equal(t, 11.98, gjson.Get(rec.Body.String(), "total").Float())

	rec = do("POST", "/api/user/orders/"+orderID+"/status", token, `{"status":"confirmed"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(2), gjson.Get(rec.Body.String(), "statusHistory.#").Int())

	rec = do("POST", "/api/user/orders/"+orderID+"/simulate", token, "")
	assert.Equal(t, http.StatusAccepted, rec.Code)
	rec = do("POST", "/api/user/orders/"+orderID+"/simulate", token, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	rec = do("DELETE", "/api/user/orders/"+orderID+"/simulate", token, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do("PATCH", "/api/user/profile", token, `{"phone":"+1 555 0100"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "+1 555 0100", gjson.Get(rec.Body.String(), "phone").String())
	assert.Equal(t, orderID, gjson.Get(rec.Body.String(), "orderIds.0").String())

	rec = do("POST", "/api/user/logout", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do("GET", "/api/user/orders", token, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
