package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/aescanero/podprobe/internal/sysinfo"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // demo service, any origin may watch
	},
}

// StatusFrame is one sample of the live status stream
type StatusFrame struct {
	UptimeSeconds uint64 `json:"uptime_seconds"`
	Timestamp     string `json:"timestamp"`
	UsedMemoryMB  uint64 `json:"used_memory_mb"`
}

// Handler streams periodic status frames over WebSocket
type Handler struct {
	startTime time.Time
	interval  time.Duration
	logger    *zap.Logger
}

// NewHandler creates a new WebSocket status stream handler
func NewHandler(startTime time.Time, interval time.Duration, logger *zap.Logger) *Handler {
	return &Handler{
		startTime: startTime,
		interval:  interval,
		logger:    logger,
	}
}

// HandleStatusStream upgrades the connection and streams one status
// frame per interval until the client disconnects
func (h *Handler) HandleStatusStream(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("failed to upgrade connection", zap.Error(err))
		return
	}
	defer func() { _ = conn.Close() }()

	h.logger.Info("WebSocket connection established",
		zap.String("client", c.ClientIP()))

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	// Drain reads so client close frames are noticed.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			frame := StatusFrame{
				UptimeSeconds: uint64(time.Since(h.startTime).Seconds()),
				Timestamp:     time.Now().UTC().Format(time.RFC3339),
				UsedMemoryMB:  sysinfo.Collect().UsedMemoryMB,
			}

			data, err := json.Marshal(frame)
			if err != nil {
				h.logger.Error("failed to marshal status frame", zap.Error(err))
				continue
			}

			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				h.logger.Debug("failed to write status frame", zap.Error(err))
				return
			}
		}
	}
}
