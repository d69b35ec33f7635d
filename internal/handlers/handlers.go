package handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/fruitshop/docs"
	authhandlers "github.com/GlebRadaev/fruitshop/internal/handlers/auth"
	ordershandlers "github.com/GlebRadaev/fruitshop/internal/handlers/orders"
	"github.com/GlebRadaev/fruitshop/internal/service"
	"github.com/GlebRadaev/fruitshop/pkg/auth"
	"github.com/GlebRadaev/fruitshop/pkg/ratelimit"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	AddOrder(w http.ResponseWriter, r *http.Request)
	GetOrders(w http.ResponseWriter, r *http.Request)
	GetOrder(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	StartSimulation(w http.ResponseWriter, r *http.Request)
	StopSimulation(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler  AuthHandler
	OrderHandler OrderHandler

	jwtService   auth.JWTServiceInterface
	session      auth.SessionView
	loginLimiter *ratelimit.Limiter
}

func New(s *service.Services, loginRatePerMinute int) *Handlers {
	return &Handlers{
		AuthHandler:  authhandlers.New(s.AccountService),
		OrderHandler: ordershandlers.New(s.OrderService, s.Simulator),
		jwtService:   s.JWTService,
		session:      s.AccountService,
		loginLimiter: ratelimit.New(loginRatePerMinute, ratelimit.ByIP),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.With(h.loginLimiter.Middleware).Post("/login", h.AuthHandler.Login)
		r.Post("/logout", h.AuthHandler.Logout)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.jwtService, h.session))
			r.Get("/", h.AuthHandler.Me)
			r.Patch("/profile", h.AuthHandler.UpdateProfile)
			r.Route("/orders", func(r chi.Router) {
				r.Post("/", h.OrderHandler.AddOrder)
				r.Get("/", h.OrderHandler.GetOrders)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.OrderHandler.GetOrder)
					r.Post("/status", h.OrderHandler.UpdateStatus)
					r.Post("/simulate", h.OrderHandler.StartSimulation)
					r.Delete("/simulate", h.OrderHandler.StopSimulation)
				})
			})
		})
	})

	return r
}
