package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/utaipei/fundraising/pkg/cache"
	"github.com/utaipei/fundraising/pkg/catalog"
	"github.com/utaipei/fundraising/pkg/clientip"
	"github.com/utaipei/fundraising/pkg/httpserver"
	"github.com/utaipei/fundraising/pkg/i18n"
	"github.com/utaipei/fundraising/pkg/logger"
	"github.com/utaipei/fundraising/pkg/ratelimiter"
	"github.com/utaipei/fundraising/pkg/requestid"
	"github.com/utaipei/fundraising/pkg/share"
)

// API holds the handlers' dependencies. It is read-only after New.
type API struct {
	catalog *catalog.Catalog
	tr      *i18n.Translator
	log     *slog.Logger
	baseURL string
	qrSize  int
	now     func() time.Time
	limiter *ratelimiter.Limiter
	qrCache *cache.LRU[qrKey, []byte]
}

type qrKey struct {
	url  string
	size int
}

const defaultQRCacheSize = 128

type Option func(*API)

func WithLogger(l *slog.Logger) Option {
	return func(a *API) {
		if l != nil {
			a.log = l
		}
	}
}

// WithBaseURL sets the public site URL used for share and QR links.
func WithBaseURL(u string) Option {
	return func(a *API) {
		if u != "" {
			a.baseURL = u
		}
	}
}

func WithQRCodeSize(size int) Option {
	return func(a *API) {
		if size > 0 {
			a.qrSize = size
		}
	}
}

// WithQRCacheSize bounds the number of rendered QR codes kept in memory.
func WithQRCacheSize(n int) Option {
	return func(a *API) {
		if n > 0 {
			a.qrCache = cache.NewLRU[qrKey, []byte](n)
		}
	}
}

// WithClock overrides time.Now for deadline countdowns.
func WithClock(now func() time.Time) Option {
	return func(a *API) {
		if now != nil {
			a.now = now
		}
	}
}

// WithRateLimiter throttles the POST endpoints per client address.
func WithRateLimiter(l *ratelimiter.Limiter) Option {
	return func(a *API) { a.limiter = l }
}

func New(c *catalog.Catalog, tr *i18n.Translator, opts ...Option) *API {
	a := &API{
		catalog: c,
		tr:      tr,
		log:     logger.Discard(),
		baseURL: "https://give.utaipei.edu.tw",
		qrSize:  share.DefaultQRSize,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.qrCache == nil {
		a.qrCache = cache.NewLRU[qrKey, []byte](defaultQRCacheSize)
	}
	return a
}

// Handler builds the router.
func (a *API) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(requestid.Middleware)
	r.Use(clientip.Middleware)
	r.Use(a.accessLog)
	r.Use(middleware.Recoverer)
	r.Use(i18n.Middleware(a.tr))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		a.fail(w, r, ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", "GET, POST")
		writeJSON(w, http.StatusMethodNotAllowed, Response{Error: &ErrorDetail{
			Code:    "method_not_allowed",
			Message: http.StatusText(http.StatusMethodNotAllowed),
		}})
	})

	r.Get("/healthz", httpserver.HealthCheckHandler(a.log, a.ready))

	r.Route("/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			if a.limiter != nil {
				r.Use(ratelimiter.Middleware(a.limiter, clientKey, http.HandlerFunc(a.rateLimited)))
			}
			r.Post("/validate", a.validateField)
			r.Post("/validate/form", a.validateForm)
			r.Post("/donations/validate", a.validateDonation)
		})
		r.Get("/donations/recent", a.recentDonations)

		r.Get("/progress", a.progress)
		r.Get("/tiers", a.tiers)
		r.Get("/tiers/{amount}", a.tier)

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", a.projects)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", a.project)
				r.Get("/share", a.projectShare)
				r.Get("/qr.png", a.projectQRCode)
			})
		})

		r.Get("/donors", a.donors)
		r.Get("/donors/honor-wall", a.honorWall)
		r.Get("/presets", a.presets)
		r.Get("/categories", a.categories)
		r.Get("/payment-methods", a.paymentMethods)
		r.Get("/stats", a.stats)
		r.Get("/faq", a.faq)
		r.Get("/school", a.school)
	})

	return r
}

func (a *API) ready(context.Context) error {
	if a.catalog == nil || len(a.catalog.Projects()) == 0 {
		return errors.New("catalog not loaded")
	}
	return nil
}

func clientKey(r *http.Request) string {
	return clientip.FromContext(r.Context())
}

func (a *API) rateLimited(w http.ResponseWriter, r *http.Request) {
	a.log.WarnContext(r.Context(), "rate limited", slog.String("path", r.URL.Path))
	writeJSON(w, http.StatusTooManyRequests, Response{Error: &ErrorDetail{
		Code:    CodeRateLimited,
		Message: a.tr.T(i18n.GetLocale(r.Context()), "errors.rate_limited"),
	}})
}

// accessLog logs one line per request after it completes.
func (a *API) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		level := slog.LevelInfo
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		a.log.Log(r.Context(), level, "http request",
			logger.Component("api"),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", status),
			slog.Int("bytes", ww.BytesWritten()),
			slog.Duration("duration", time.Since(start)),
		)
	})
}
