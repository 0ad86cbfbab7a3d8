package handler

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/vasapolrittideah/opportunity-tracker-api/services/tracker-service/internal/usecase"
	trackertypes "github.com/vasapolrittideah/opportunity-tracker-api/services/tracker-service/pkg/types"
	"github.com/vasapolrittideah/opportunity-tracker-api/shared/auth"
	"github.com/vasapolrittideah/opportunity-tracker-api/shared/interceptor"
	"github.com/vasapolrittideah/opportunity-tracker-api/shared/utilities"
	"github.com/vasapolrittideah/opportunity-tracker-api/shared/validator"
)

// RouterConfig holds the HTTP-level settings of the router.
type RouterConfig struct {
	AllowedOrigins []string
	// RequestTimeout bounds each request's context. Zero disables it.
	RequestTimeout time.Duration
}

// Usecases groups everything the handlers call into.
type Usecases struct {
	Auth           usecase.AuthUsecase
	Profile        usecase.ProfileUsecase
	Interest       usecase.InterestUsecase
	JobApplication usecase.JobApplicationUsecase
	Opportunity    usecase.OpportunityUsecase
	Calendar       usecase.CalendarUsecase
}

// NewRouter builds the HTTP API. Routes under the bearer group require a valid access token.
func NewRouter(
	logger *zerolog.Logger,
	cfg RouterConfig,
	jwtAuth *auth.JWTAuthenticator,
	usecases Usecases,
) http.Handler {
	decoder := requestDecoder{logger: logger, validator: validator.New()}

	authHandler := &authHTTPHandler{
		requestDecoder: decoder,
		authUsecase:    usecases.Auth,
		profileUsecase: usecases.Profile,
	}
	interestHandler := &interestHTTPHandler{requestDecoder: decoder, interestUsecase: usecases.Interest}
	jobApplicationHandler := &jobApplicationHTTPHandler{
		requestDecoder:        decoder,
		jobApplicationUsecase: usecases.JobApplication,
	}
	opportunityHandler := &opportunityHTTPHandler{requestDecoder: decoder, opportunityUsecase: usecases.Opportunity}
	calendarHandler := &calendarHTTPHandler{requestDecoder: decoder, calendarUsecase: usecases.Calendar}

	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(hlog.NewHandler(*logger))
	r.Use(hlog.RequestIDHandler("request_id", "X-Request-ID"))
	r.Use(hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Stringer("url", r.URL).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request")
	}))
	r.Use(recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))
	if cfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(cfg.RequestTimeout))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utilities.WriteJSON(w, logger, http.StatusNotFound, utilities.ErrorResponse{
			Error:   "Route not found",
			Message: fmt.Sprintf("The route %s does not exist", r.URL.Path),
		})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utilities.WriteJSON(w, logger, http.StatusMethodNotAllowed, utilities.ErrorResponse{
			Error:   "Method not allowed",
			Message: fmt.Sprintf("The route %s does not support %s", r.URL.Path, r.Method),
		})
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		utilities.WriteJSON(w, logger, http.StatusOK, trackertypes.HealthResponse{
			Status:    "OK",
			Message:   "Opportunity Tracker API is running",
			Timestamp: time.Now().UTC(),
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/google", authHandler.LoginWithGoogle)

		r.Get("/hackathons/all", opportunityHandler.ListHackathons)
		r.Get("/contests/all", opportunityHandler.ListContests)
		r.Get("/jobs/all", opportunityHandler.ListJobs)

		r.Group(func(r chi.Router) {
			r.Use(interceptor.NewJWTMiddleware(jwtAuth))

			r.Get("/auth/profile", authHandler.GetProfile)
			r.Put("/auth/profile", authHandler.UpdateProfile)

			r.Post("/interests", interestHandler.ToggleInterest)
			r.Get("/interests", interestHandler.ListInterests)
			r.Get("/interests/check/{opportunityId}/{opportunityType}", interestHandler.CheckInterest)

			r.Post("/job-applications", jobApplicationHandler.CreateJobApplication)
			r.Get("/job-applications", jobApplicationHandler.ListJobApplications)
			r.Put("/job-applications/{jobId}", jobApplicationHandler.UpdateJobApplication)
			r.Delete("/job-applications/{jobId}", jobApplicationHandler.DeleteJobApplication)

			r.Get("/calendar", calendarHandler.ListEvents)
		})
	})

	return r
}

// recoverer turns a panic into a logged 500 JSON response.
func recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger := hlog.FromRequest(r)
			logger.Error().
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")
			utilities.WriteError(w, logger, http.StatusInternalServerError, internalErrorMessage)
		}()

		next.ServeHTTP(w, r)
	})
}
