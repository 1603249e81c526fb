package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/donk-u/Basal-Metabolic-Rate-BMR-Calculator.github.io/models"
	"github.com/donk-u/Basal-Metabolic-Rate-BMR-Calculator.github.io/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// RealtimeController recalculates as the user edits the form. Each inbound
// message is a full form snapshot; each reply is a CalculationResult.
type RealtimeController struct {
	Calc         *services.CalculatorService
	Logger       *slog.Logger
	PingInterval time.Duration
}

// constructor
func NewRealtimeController(calc *services.CalculatorService, logger *slog.Logger, ping time.Duration) *RealtimeController {
	if logger == nil {
		logger = slog.Default()
	}
	if ping <= 0 {
		ping = 25 * time.Second
	}
	return &RealtimeController{Calc: calc, Logger: logger, PingInterval: ping}
}

// maxMessageSize bounds one form snapshot; a real one is well under 200 bytes.
const maxMessageSize = 4 << 10

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // page and socket share an origin in practice
}

// pongWait is how long a silent peer is tolerated before the read fails.
func (rc *RealtimeController) pongWait() time.Duration {
	return rc.PingInterval * 2
}

// wsConn serializes writes; gorilla allows one concurrent writer.
type wsConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (w *wsConn) writeJSON(v any) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.conn.WriteJSON(v)
}

func (w *wsConn) ping() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(5*time.Second))
}

func (rc *RealtimeController) CalculateWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		rc.Logger.Debug("websocket upgrade failed", "error", err)
		return
	}
	ws := &wsConn{conn: conn}
	defer conn.Close()

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(rc.pongWait()))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(rc.pongWait()))
	})

	done := make(chan struct{})
	defer close(done)

	// keep the socket alive through idle proxies
	go func() {
		t := time.NewTicker(rc.PingInterval)
		defer t.Stop()
		for {
			select {
			case <-done:
				return
			case <-t.C:
				if err := ws.ping(); err != nil {
					return
				}
			}
		}
	}()

	// read loop ends on client close/error
	for {
		var req models.CalculationRequest
		if err := conn.ReadJSON(&req); err != nil {
			if !isDecodeError(err) {
				rc.Logger.Debug("websocket closed", "error", err)
				return
			}
			if werr := ws.writeJSON(gin.H{"ok": false, "error": "malformed message"}); werr != nil {
				return
			}
			continue
		}
		if err := ws.writeJSON(rc.Calc.Calculate(req)); err != nil {
			return
		}
		// any message proves the peer is alive
		_ = conn.SetReadDeadline(time.Now().Add(rc.pongWait()))
	}
}

// isDecodeError reports whether a read failed on the payload rather than the
// connection, in which case the socket is still usable.
func isDecodeError(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.Is(err, io.ErrUnexpectedEOF)
}
