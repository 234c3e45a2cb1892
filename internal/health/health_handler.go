package health

import (
	"context"
	"net/http"
	"time"

	"go-salary/internal/shared/apperror"
	"go-salary/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const defaultPingTimeout = 2 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a plain function, e.g. (*sql.DB).PingContext, to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

type Handler struct {
	store   Pinger
	timeout time.Duration
	logger  *zap.Logger
}

func NewHandler(store Pinger, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("health.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("health.handler")
	}
	return &Handler{store: store, timeout: defaultPingTimeout, logger: l}
}

// Check answers 200 while the store responds to a ping and 503 otherwise.
func (h *Handler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		h.logger.Warn("store ping failed", zap.Error(err))
		httpErr := apperror.ToHTTP(apperror.ErrServiceUnavailable)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, gin.H{"status": "DOWN"})
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"status": "UP"})
}

func RegisterRoutes(r gin.IRoutes, handler *Handler) {
	r.GET("/health", handler.Check)
}
