package ws

import (
	"log"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gorilla/websocket"
)

type Handler struct {
	hub    *Hub
	logger *log.Logger
}

func NewHandler(hub *Hub, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.Default()
	}
	return &Handler{hub: hub, logger: logger}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleInterviewWS upgrades the connection and subscribes it to the
// interview flow named in the route.
func (h *Handler) HandleInterviewWS(c fiber.Ctx) error {
	if h == nil || h.hub == nil {
		return fiber.ErrServiceUnavailable
	}

	flowID := c.Params("id")
	if flowID == "" {
		return fiber.ErrBadRequest
	}
	topic := "interview:" + flowID

	fiberHandler := adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			h.logger.Printf("ws | upgrade error flow=%s err=%v", flowID, err)
			return
		}

		client := NewClient(h.hub, topic, conn)
		h.hub.Subscribe(topic, client)
		go client.WritePump()
		go client.ReadPump()
	})

	return fiberHandler(c)
}
