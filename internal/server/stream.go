package server

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/neo/pwmeter/internal/analyzer"
	"github.com/neo/pwmeter/internal/logging"
)

// StreamRequest is one keystroke update. Seq is echoed back so a client can
// drop responses for stale input.
type StreamRequest struct {
	Password string `json:"password"`
	Seq      int64  `json:"seq,omitempty"`
}

// StreamResponse answers a StreamRequest
type StreamResponse struct {
	Type   string           `json:"type"`
	Seq    int64            `json:"seq,omitempty"`
	Result *analyzer.Result `json:"result,omitempty"`
	Error  string           `json:"error,omitempty"`
}

// Stream message types
const (
	StreamTypeResult = "result"
	StreamTypeError  = "error"
)

// Read limit components: the JSON envelope around a password and the widest
// encoding of one UTF-16 unit inside a JSON string.
const (
	streamFrameOverhead = 1024
	escapedUnitBytes    = 6
)

// handleAnalyzeWebSocket analyses every message on the connection in order.
func (s *Server) handleAnalyzeWebSocket(c *gin.Context) {
	settings := s.settings.Get()
	if !settings.EnableStream {
		abortWithError(c, http.StatusNotFound, "feature_disabled", "Streaming analysis is disabled", nil)
		return
	}

	ws, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logging.Warn("Failed to upgrade connection", map[string]interface{}{"error": err.Error()})
		return
	}
	defer ws.Close()

	if settings.MaxPasswordLength > 0 {
		// the limit counts UTF-16 units; a \uXXXX escape is 6 bytes per unit,
		// so an escaped surrogate pair takes 12
		ws.SetReadLimit(int64(settings.MaxPasswordLength)*escapedUnitBytes + streamFrameOverhead)
	}

	connID := uuid.NewString()
	logging.LogStreamEvent("opened", connID, map[string]interface{}{"remote": c.ClientIP()})
	defer logging.LogStreamEvent("closed", connID, nil)

	for {
		_, data, err := ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logging.Warn("WebSocket error", map[string]interface{}{"conn_id": connID, "error": err.Error()})
			}
			return
		}

		var req StreamRequest
		if err := json.Unmarshal(data, &req); err != nil {
			if writeErr := ws.WriteJSON(StreamResponse{Type: StreamTypeError, Error: "invalid message"}); writeErr != nil {
				return
			}
			continue
		}

		resp := StreamResponse{Type: StreamTypeResult, Seq: req.Seq}
		result, err := s.analyze("stream", connID, req.Password)
		if err != nil {
			resp.Type = StreamTypeError
			resp.Error = err.Error()
		} else {
			resp.Result = &result
		}

		if err := ws.WriteJSON(resp); err != nil {
			logging.Warn("Failed to write stream response", map[string]interface{}{"conn_id": connID, "error": err.Error()})
			return
		}
	}
}
