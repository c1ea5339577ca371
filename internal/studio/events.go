package studio

// EventType tags an outbound session event.
type EventType string

const (
	// EventPreview carries a rebuilt preview document for the frame.
	EventPreview EventType = "preview"
	// EventCode carries a generated sketch that replaced the source.
	EventCode EventType = "code"
	// EventStatus reports a phase change.
	EventStatus EventType = "status"
	// EventSettings echoes the effective control-bar values.
	EventSettings EventType = "settings"
	// EventScreenshot asks the client to request a frame screenshot.
	EventScreenshot EventType = "screenshot"
	// EventDownload asks the client to save the code as a file.
	EventDownload EventType = "download"
	// EventError surfaces a failed operation.
	EventError EventType = "error"
)

// Event is one command pushed from a session to its editor client. The
// bridge marshals events onto the websocket as-is.
type Event struct {
	Type     EventType `json:"type"`
	Document string    `json:"document,omitempty"`
	Code     string    `json:"code,omitempty"`
	Phase    string    `json:"phase,omitempty"`
	Filename string    `json:"filename,omitempty"`
	Message  string    `json:"message,omitempty"`
	Settings *Settings `json:"settings,omitempty"`
}
