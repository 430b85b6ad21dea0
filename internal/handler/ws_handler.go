package handler

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"hrms-backend/internal/dispatch"
)

const writeTimeout = 5 * time.Second

// WSHandler upgrades authenticated clients and binds one dispatcher session
// per connection.
type WSHandler struct {
	registry *dispatch.Registry
	upgrader websocket.Upgrader
	logger   *logrus.Logger
}

func NewWSHandler(registry *dispatch.Registry) *WSHandler {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return &WSHandler{
		registry: registry,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: logger,
	}
}

// GET /ws
func (h *WSHandler) Connect(c echo.Context) error {
	employeeID := currentEmployeeID(c)
	if employeeID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	session := dispatch.NewSession(employeeID)
	h.registry.Register(session)

	// Disconnect removes the session from its room synchronously, before the
	// transport is torn down, so no further dispatch targets it.
	go h.readUntilClose(conn, session)
	h.writePump(conn, session)

	return nil
}

// writePump drains the session queue onto the wire. A write error ends the
// session; the queued frames for it are dropped, consistent with best-effort
// delivery.
func (h *WSHandler) writePump(conn *websocket.Conn, session *dispatch.Session) {
	defer func() {
		h.registry.Unregister(session)
		conn.Close()
	}()

	for frame := range session.Frames() {
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
			h.logger.WithFields(logrus.Fields{
				"employee_id": session.EmployeeID,
				"session_id":  session.ID,
			}).WithError(err).Debug("Session write failed, dropping connection")
			return
		}
	}

	// Queue closed: the session was unregistered elsewhere.
	conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeTimeout))
}

// readUntilClose consumes client frames (none are expected) to detect
// disconnects.
func (h *WSHandler) readUntilClose(conn *websocket.Conn, session *dispatch.Session) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.registry.Unregister(session)
			return
		}
	}
}
