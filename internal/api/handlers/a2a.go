package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/nikhilbhutani/kidsagent/internal/agent"
)

// A2AMessage is the agent-to-agent message envelope, used for both
// requests and replies.
type A2AMessage struct {
	Content        A2AContent `json:"content"`
	Role           string     `json:"role"`
	ConversationID string     `json:"conversation_id,omitempty"`
}

type A2AContent struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

type A2AHandler struct {
	responder *agent.Responder
}

func NewA2AHandler(responder *agent.Responder) *A2AHandler {
	return &A2AHandler{responder: responder}
}

// Message answers a single user message. The responder is total, so the
// only error surface here is request decoding.
func (h *A2AHandler) Message(w http.ResponseWriter, r *http.Request) {
	var req A2AMessage
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if req.Content.Text == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "content.text required"})
		return
	}

	reply := h.responder.Respond(r.Context(), req.Content.Text)

	writeJSON(w, http.StatusOK, A2AMessage{
		Content:        A2AContent{Text: reply, Type: "text"},
		Role:           "agent",
		ConversationID: req.ConversationID,
	})
}
