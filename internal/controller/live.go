package controller

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/skhavindev/sathyabama-bus-tracker/internal/service"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type LiveController interface {
	LiveUpdates(c echo.Context) error
}

type liveController struct {
	hub service.Hub
}

func newLiveController(hub service.Hub) LiveController {
	return &liveController{
		hub: hub,
	}
}

// LiveUpdates upgrades the connection and runs the listener session: block
// on the next inbound message, push the current snapshot back, repeat. The
// inbound payload is ignored; any message acts as a pull signal. Closing the
// connection tears down only this session.
func (l *liveController) LiveUpdates(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		logrus.Errorf("Websocket upgrade failed: %v", err)
		return err
	}

	l.hub.Register(conn)
	defer func() {
		l.hub.Unregister(conn)
		conn.Close()
	}()

	requestCtx := c.Request().Context()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return nil
		}
		l.hub.OnTick(requestCtx, conn)
	}
}
