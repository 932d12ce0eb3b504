package middleware

// In-process sliding-window request limiting per client IP. One limiter fronts
// the whole API and a much stricter one fronts the login endpoint; both limits
// come from config, not from constants buried here.

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ArojasJ/agendas-entregas/internal/apierror"
)

type ventanaIP struct {
	mu    sync.Mutex
	count int
	hasta time.Time
}

type limitador struct {
	mu      sync.Mutex
	porIP   map[string]*ventanaIP
	limite  int
	ventana time.Duration
	detalle string
}

func nuevoLimitador(limite int, ventana time.Duration, detalle string) *limitador {
	l := &limitador{
		porIP:   make(map[string]*ventanaIP),
		limite:  limite,
		ventana: ventana,
		detalle: detalle,
	}
	// IPs that never return would otherwise accumulate forever.
	go l.purgar(5 * time.Minute)
	return l
}

func (l *limitador) handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		l.mu.Lock()
		v, ok := l.porIP[ip]
		if !ok {
			v = &ventanaIP{}
			l.porIP[ip] = v
		}
		l.mu.Unlock()

		v.mu.Lock()
		defer v.mu.Unlock()

		ahora := time.Now()
		if ahora.After(v.hasta) {
			v.count = 0
			v.hasta = ahora.Add(l.ventana)
		}
		v.count++
		if v.count > l.limite {
			c.Header("Retry-After", v.hasta.Format(time.RFC1123))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(l.detalle))
			return
		}
		c.Next()
	}
}

func (l *limitador) purgar(cada time.Duration) {
	ticker := time.NewTicker(cada)
	defer ticker.Stop()

	for range ticker.C {
		ahora := time.Now()
		l.mu.Lock()
		for ip, v := range l.porIP {
			v.mu.Lock()
			if ahora.After(v.hasta) {
				delete(l.porIP, ip)
			}
			v.mu.Unlock()
		}
		l.mu.Unlock()
	}
}

// RateLimiter caps requests per IP per window across the whole API.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	return nuevoLimitador(limit, window,
		"Demasiadas solicitudes. Intente nuevamente en un momento.").handler()
}

// LoginRateLimiter throttles password guessing on the login endpoint.
// limitPerMinute should be far below the general API limit.
func LoginRateLimiter(limitPerMinute int) gin.HandlerFunc {
	return nuevoLimitador(limitPerMinute, time.Minute,
		"Demasiados intentos de login. Intente en 1 minuto.").handler()
}
