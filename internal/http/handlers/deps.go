package handlers

import (
	"sync"
	"time"

	intconfig "travelbooking/internal/config"
	"travelbooking/internal/http/middleware"
	"travelbooking/internal/repositories"
	"travelbooking/internal/services"

	"github.com/gin-gonic/gin"
)

// Deps carries the configuration handlers build their services from.
type Deps struct {
	Sessions *services.SessionService

	SettleDelay   time.Duration
	SettleTimeout time.Duration
	Decline       services.DeclineFunc

	UPIHandle  string
	UPIName    string
	Currency   string
	QREndpoint string
}

var (
	depsMu sync.RWMutex
	deps   = Deps{Sessions: services.NewSessionService("", 0)}
)

// DepsFromEnv builds handler dependencies from loaded configuration.
func DepsFromEnv(env intconfig.Env) Deps {
	return Deps{
		Sessions:      services.NewSessionService(env.JWTSecret, env.SessionTTL),
		SettleDelay:   env.SettleDelay,
		SettleTimeout: env.SettleTimeout,
		UPIHandle:     env.UPIHandle,
		UPIName:       env.UPIName,
		Currency:      env.Currency,
		QREndpoint:    env.QREndpoint,
	}
}

// Configure installs handler dependencies. Call it before serving.
func Configure(d Deps) {
	depsMu.Lock()
	defer depsMu.Unlock()
	if d.Sessions == nil {
		d.Sessions = services.NewSessionService("", 0)
	}
	deps = d
}

func currentDeps() Deps {
	depsMu.RLock()
	defer depsMu.RUnlock()
	return deps
}

// Sessions exposes the configured session service for middleware wiring.
func Sessions() *services.SessionService {
	return currentDeps().Sessions
}

func paymentService(c *gin.Context) services.PaymentService {
	d := currentDeps()
	return services.PaymentService{
		Store:      repositories.BookingRepository{},
		Delay:      d.SettleDelay,
		Timeout:    d.SettleTimeout,
		Decline:    d.Decline,
		UPIHandle:  d.UPIHandle,
		UPIName:    d.UPIName,
		Currency:   d.Currency,
		QREndpoint: d.QREndpoint,
		RequestID:  middleware.GetRequestID(c),
	}
}

func draftService(c *gin.Context) services.DraftService {
	return services.DraftService{RequestID: middleware.GetRequestID(c)}
}

func authService(c *gin.Context) services.AuthService {
	return services.AuthService{
		Users:     repositories.UserRepository{},
		Sessions:  currentDeps().Sessions,
		RequestID: middleware.GetRequestID(c),
	}
}
