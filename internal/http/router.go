package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MrJamesThe3rd/costbook/internal/http/accountcode"
	"github.com/MrJamesThe3rd/costbook/internal/http/auth"
	"github.com/MrJamesThe3rd/costbook/internal/http/bill"
	"github.com/MrJamesThe3rd/costbook/internal/http/category"
	"github.com/MrJamesThe3rd/costbook/internal/http/contact"
	"github.com/MrJamesThe3rd/costbook/internal/http/library"
	"github.com/MrJamesThe3rd/costbook/internal/http/purchaseorder"
	"github.com/MrJamesThe3rd/costbook/internal/http/quote"
	"github.com/MrJamesThe3rd/costbook/internal/http/report"
	"github.com/MrJamesThe3rd/costbook/internal/metrics"
)

type Options struct {
	JWTSecret   string // empty disables auth
	CORSOrigins []string
	Timeout     time.Duration
	Metrics     bool
}

type Handlers struct {
	Categories     *category.Handler
	Contacts       *contact.Handler
	Quotes         *quote.Handler
	Bills          *bill.Handler
	PurchaseOrders *purchaseorder.Handler
	Library        *library.Handler
	AccountCodes   *accountcode.Handler
	Reports        *report.Handler
}

func New(opts Options, h Handlers) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         300,
	}))

	if opts.Metrics {
		router.Use(metrics.Middleware)
		router.Handle("/metrics", promhttp.Handler())
	}

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("OK"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		if opts.Timeout > 0 {
			r.Use(middleware.Timeout(opts.Timeout))
		}

		if opts.JWTSecret != "" {
			r.Use(auth.Middleware([]byte(opts.JWTSecret)))
		}

		r.Route("/categories", h.Categories.Routes)
		r.Route("/cost-lines", h.Categories.LineRoutes)
		r.Route("/contacts", h.Contacts.Routes)
		r.Route("/quotes", h.Quotes.Routes)
		r.Route("/bills", h.Bills.Routes)
		r.Route("/purchase-orders", h.PurchaseOrders.Routes)
		r.Route("/library", h.Library.Routes)
		r.Route("/account-codes", h.AccountCodes.Routes)
		r.Route("/reports", h.Reports.Routes)
	})

	return router
}
