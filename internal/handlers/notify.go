package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/harbourmove/leadsgo/internal/notify"
)

// handleNotify is the notification function: it accepts the dispatch
// payload and sends the operator email through the configured
// transactional provider. Recipient addresses and sender identity come
// from server-side configuration, never from the request.
func (r *Router) handleNotify(w http.ResponseWriter, req *http.Request) {
	var p notify.Payload
	if err := json.NewDecoder(req.Body).Decode(&p); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if p.FullName == "" || p.Email == "" {
		respondError(w, http.StatusBadRequest, "fullName and email are required")
		return
	}

	if err := r.mailer.Send(req.Context(), p); err != nil {
		respondError(w, http.StatusBadGateway, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Notification sent"})
}
