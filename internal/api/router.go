// Package api exposes the command registry over HTTP.
package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"restaurant-management/internal/apperror"
	"restaurant-management/internal/logger"
	"restaurant-management/internal/models"
	"restaurant-management/internal/services/commands"
)

const (
	requestIDHeader = "X-Request-ID"

	// maxPayloadBytes caps the JSON payload of a single command.
	maxPayloadBytes = 1 << 20
)

// Dispatcher runs named operations
type Dispatcher interface {
	Dispatch(ctx context.Context, name string, payload json.RawMessage) commands.Result
	Operations() []string
}

// Dashboard serves the latest summary
type Dashboard interface {
	Snapshot() (models.DashboardSummary, bool)
	Current(ctx context.Context) (models.DashboardSummary, error)
}

// Pinger reports database reachability
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	dispatcher Dispatcher
	dashboard  Dashboard
	db         Pinger
	logger     *logger.Logger
}

func NewHandler(dispatcher Dispatcher, dashboard Dashboard, db Pinger, log *logger.Logger) *Handler {
	return &Handler{dispatcher: dispatcher, dashboard: dashboard, db: db, logger: log}
}

// NewRouter builds the gin engine. Every request gets a request id and is
// bounded by timeout when it is positive.
func NewRouter(h *Handler, timeout time.Duration) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestContext(h.logger, timeout))

	r.GET("/healthz", h.Health)
	r.GET("/dashboard", h.Dashboard)
	r.GET("/commands", h.ListCommands)
	r.POST("/commands/:operation", h.RunCommand)
	return r
}

// StatusFor maps an error kind to an HTTP status
func StatusFor(kind apperror.Kind) int {
	switch kind {
	case apperror.KindNone:
		return http.StatusOK
	case apperror.KindValidation:
		return http.StatusBadRequest
	case apperror.KindNotFound:
		return http.StatusNotFound
	case apperror.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) RunCommand(c *gin.Context) {
	ctx := c.Request.Context()
	name := c.Param("operation")

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxPayloadBytes))
	if err != nil {
		h.logger.Error("request_read_failed", "Failed to read request body", logger.RequestIDFrom(ctx), err, nil)
		c.JSON(http.StatusBadRequest, commands.Result{
			Operation: name,
			Kind:      apperror.KindValidation,
			Message:   "Invalid request payload.",
		})
		return
	}

	res := h.dispatcher.Dispatch(ctx, name, body)
	c.JSON(StatusFor(res.Kind), res)
}

func (h *Handler) ListCommands(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"operations": h.dispatcher.Operations()})
}

func (h *Handler) Dashboard(c *gin.Context) {
	if summary, ok := h.dashboard.Snapshot(); ok {
		c.JSON(http.StatusOK, summary)
		return
	}

	summary, err := h.dashboard.Current(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, commands.Result{
			Operation: "dashboard.summary",
			Kind:      apperror.KindBackend,
			Message:   "Failed to load dashboard.",
		})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *Handler) Health(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.db.Ping(ctx); err != nil {
		h.logger.Error("health_check_failed", "Database ping failed", logger.RequestIDFrom(ctx), err, nil)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
