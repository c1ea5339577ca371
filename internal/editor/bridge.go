package editor

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/sketchpad/internal/studio"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// clientMessage is the incoming WebSocket message format. Type selects the
// operation; the other fields carry its payload.
type clientMessage struct {
	Type        string   `json:"type"`
	Code        string   `json:"code"`
	Prompt      string   `json:"prompt"`
	Model       string   `json:"model"`
	Temperature *float64 `json:"temperature"`
	Enabled     bool     `json:"enabled"`
	Image       string   `json:"image"`
}

// handleWebSocket upgrades the connection and runs a studio session for its
// lifetime. Session events are serialized onto the socket by a write mutex
// because timers and generations emit from their own goroutines.
func (e *Editor) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("editor: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	var writeMu sync.Mutex
	send := func(ev studio.Event) {
		writeMu.Lock()
		defer writeMu.Unlock()
		if err := conn.WriteJSON(ev); err != nil {
			log.Printf("editor: websocket write: %v", err)
		}
	}

	sess := studio.NewSession(e.sessionCfg, send)
	defer sess.Close()
	sess.Start()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("editor: websocket read: %v", err)
			}
			return
		}

		var req clientMessage
		if err := json.Unmarshal(msg, &req); err != nil {
			send(studio.Event{Type: studio.EventError, Message: "invalid message format"})
			continue
		}

		dispatch(sess, send, req)
	}
}

func dispatch(sess *studio.Session, send func(studio.Event), req clientMessage) {
	switch req.Type {
	case "setCode":
		sess.SetCode(req.Code)
	case "setModel":
		if req.Model == "" {
			send(studio.Event{Type: studio.EventError, Message: "model is required"})
			return
		}
		sess.SetModel(req.Model)
	case "setTemperature":
		if req.Temperature == nil {
			send(studio.Event{Type: studio.EventError, Message: "temperature is required"})
			return
		}
		sess.SetTemperature(*req.Temperature)
	case "setAutoSave":
		sess.SetAutoSave(req.Enabled)
	case "setAutoGenerate":
		sess.SetAutoGenerate(req.Enabled)
	case "generate":
		if req.Prompt == "" {
			send(studio.Event{Type: studio.EventError, Message: "prompt is required"})
			return
		}
		// Generation must not block the read loop; screenshot results and
		// edits keep arriving while it runs. Failures surface through the
		// session's own error events, and an overlapping request is dropped.
		go func() { _ = sess.Generate(req.Prompt) }()
	case "screenshot":
		sess.RequestScreenshot()
	case "download":
		sess.RequestDownload()
	case "screenshotResult":
		sess.HandleScreenshot(req.Image)
	default:
		send(studio.Event{Type: studio.EventError, Message: "unknown message type: " + req.Type})
	}
}
