package contact

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/gavdev/portfolio/handler"
	"github.com/gavdev/portfolio/pkg/binder"
	"github.com/gavdev/portfolio/pkg/logger"
)

// Path is where the relay endpoint is mounted.
const Path = "/api/contact"

// Public response messages.
const (
	MsgSuccess       = "Message successful."
	MsgMissingFields = "Missing required fields."
	MsgFailed        = "Internal Server Error. Message failed."
)

// SuccessResponse is the body of a 200 response.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Service exposes a Relay over HTTP.
type Service struct {
	relay        *Relay
	log          *slog.Logger
	maxBodyBytes int64
}

// NewService creates the HTTP service for relay.
func NewService(cfg Config, relay *Relay, log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Service{
		relay:        relay,
		log:          log.With(logger.Component("contact")),
		maxBodyBytes: cfg.MaxBodyBytes,
	}
}

// Handle returns the router serving POST on its root. Mount it at Path:
//
//	r.Mount(contact.Path, svc.Handle())
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	if s.maxBodyBytes > 0 {
		r.Use(middleware.RequestSize(s.maxBodyBytes))
	}

	r.Post("/", handler.Wrap(s.submit,
		handler.WithBinder[handler.Context, Submission](binder.JSON()),
		handler.WithErrorHandler[handler.Context, Submission](handler.NewErrorHandler(s.log, unreadable)),
	))

	return r
}

func (s *Service) submit(ctx handler.Context, req Submission) handler.Response {
	err := s.relay.Submit(ctx, req)
	switch {
	case err == nil:
		return handler.JSON(SuccessResponse{Success: true, Message: MsgSuccess})
	case errors.Is(err, ErrMissingFields):
		s.log.WarnContext(ctx, "contact submission rejected",
			logger.Event("contact_rejected"),
			logger.Error(err),
		)
		return handler.JSONError(MsgMissingFields, handler.WithJSONStatus(http.StatusBadRequest))
	default:
		s.log.ErrorContext(ctx, "Backend API Error",
			logger.Event("contact_delivery_failed"),
			logger.Error(err),
		)
		return handler.JSONError(MsgFailed)
	}
}

// unreadable maps every binding or rendering failure to the generic 500.
func unreadable(error) handler.ErrorInfo {
	return handler.ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Message:    MsgFailed,
		LogLevel:   slog.LevelError,
	}
}
