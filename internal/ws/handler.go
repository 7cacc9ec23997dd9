package ws

import (
	"context"
	"net/http"

	"job-routing/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type Handler struct {
	hub    *Hub
	uc     usecase.JobListUsecase
	logger *zap.Logger
}

func NewHandler(hub *Hub, uc usecase.JobListUsecase, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{hub: hub, uc: uc, logger: logger.Named("ws")}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func (h *Handler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/ws/board", h.HandleBoardWS)
}

func (h *Handler) HandleBoardWS(c fiber.Ctx) error {
	if h == nil || h.hub == nil || h.uc == nil {
		return fiber.ErrServiceUnavailable
	}
	return adaptor.HTTPHandlerFunc(h.ServeHTTP)(c)
}

// ServeHTTP upgrades the request and starts a board session. The first update
// carries the unfiltered first page.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("upgrade failed", zap.Error(err))
		return
	}

	session := NewSession(h.uc)
	client := NewClient(h.hub, conn, session, h.logger)
	h.hub.Register(client)

	ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
	client.Push(session.Snapshot(ctx))
	cancel()

	go client.WritePump()
	go client.ReadPump()
}
