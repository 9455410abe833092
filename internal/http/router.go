package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/jmcardenas/centavo/internal/auth"
	"github.com/jmcardenas/centavo/internal/http/bill"
	"github.com/jmcardenas/centavo/internal/http/export"
	"github.com/jmcardenas/centavo/internal/http/goal"
	"github.com/jmcardenas/centavo/internal/http/importcsv"
	"github.com/jmcardenas/centavo/internal/http/savings"
	"github.com/jmcardenas/centavo/internal/http/session"
	"github.com/jmcardenas/centavo/internal/http/summary"
	"github.com/jmcardenas/centavo/internal/http/transaction"
)

func New(
	authenticator *auth.Authenticator,
	allowedOrigins []string,
	sessionV1 *session.Handler,
	transactionsV1 *transaction.Handler,
	goalsV1 *goal.Handler,
	billsV1 *bill.Handler,
	savingsV1 *savings.Handler,
	summaryV1 *summary.Handler,
	importV1 *importcsv.Handler,
	exportV1 *export.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/session", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			sessionV1.Routes(r)
		})

		// Everything below requires a bearer token.
		r.Group(func(r chi.Router) {
			r.Use(authenticator.Middleware)

			r.Route("/transactions", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				transactionsV1.Routes(r)
			})

			r.Route("/goals", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				goalsV1.Routes(r)
			})

			r.Route("/bills", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				billsV1.Routes(r)
			})

			r.Route("/savings", func(r chi.Router) {
				savingsV1.Routes(r)
			})

			r.Route("/summary", func(r chi.Router) {
				summaryV1.Routes(r)
			})

			r.Route("/import", importV1.Routes)

			r.Route("/export", exportV1.Routes)
		})
	})

	return router
}
