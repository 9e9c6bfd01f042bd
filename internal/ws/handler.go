package ws

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofiber/contrib/websocket"
	"github.com/lk16/othello/internal/models"
	"github.com/lk16/othello/internal/rules"
)

// Conn is the part of a websocket connection used by Handler.
type Conn interface {
	ReadMessage() (int, []byte, error)
	WriteMessage(messageType int, data []byte) error
}

var (
	errClosed    = errors.New("connection closed")
	errMalformed = errors.New("malformed request")
)

type Handler struct {
	ws Conn
}

// NewHandler creates a new Handler.
func NewHandler(ws Conn) *Handler {
	return &Handler{ws: ws}
}

func (h *Handler) readMessage() (*Incoming, error) {
	var req Incoming

	msgType, msg, err := h.ws.ReadMessage()
	if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
		return nil, errClosed
	}
	if err != nil {
		return nil, fmt.Errorf("ws read error: %w", err)
	}

	slog.Debug("read ws message", "msgType", msgType, "msg", msg)

	if msgType != websocket.TextMessage {
		return nil, fmt.Errorf("unexpected message type: %d", msgType)
	}

	if err = json.Unmarshal(msg, &req); err != nil {
		return nil, fmt.Errorf("%w: unmarshal error: %w", errMalformed, err)
	}

	return &req, nil
}

func (h *Handler) writeMessage(outgoing *Outgoing) error {
	msg, err := json.Marshal(outgoing)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	slog.Debug("write ws message", "msg", string(msg))

	if err = h.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
		return fmt.Errorf("write error: %w", err)
	}

	return nil
}

func decode[T any](req *Incoming) (T, error) {
	var payload T
	if err := json.Unmarshal(req.Data, &payload); err != nil {
		return payload, fmt.Errorf("%s payload unmarshal error: %w", req.Event, err)
	}
	return payload, nil
}

func (h *Handler) handleMessage(req *Incoming) (any, error) {
	switch req.Event {
	case "":
		return nil, errors.New("event field is either empty or missing")
	case "available_positions":
		payload, err := decode[models.MovesPayload](req)
		if err != nil {
			return nil, err
		}
		return rules.Moves(payload)
	case "apply_move":
		payload, err := decode[models.ApplyMovePayload](req)
		if err != nil {
			return nil, err
		}
		return rules.Apply(payload)
	case "score":
		payload, err := decode[models.ScorePayload](req)
		if err != nil {
			return nil, err
		}
		return rules.Score(payload)
	default:
		return nil, fmt.Errorf("unknown event: %s", req.Event)
	}
}

// Handle answers rule requests until the connection closes.
// Invalid requests are answered with an error message and do not end the connection.
func (h *Handler) Handle() error {
	for {
		req, err := h.readMessage()
		if errors.Is(err, errClosed) {
			return nil
		}

		outgoing := &Outgoing{}

		switch {
		case errors.Is(err, errMalformed):
			outgoing.Error = err.Error()
		case err != nil:
			return err
		default:
			outgoing.ID = req.ID

			var data any
			if data, err = h.handleMessage(req); err != nil {
				outgoing.Error = err.Error()
			} else {
				outgoing.Data = data
			}
		}

		if err = h.writeMessage(outgoing); err != nil {
			return fmt.Errorf("ws write error: %w", err)
		}
	}
}
