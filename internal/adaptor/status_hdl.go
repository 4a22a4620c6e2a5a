package adaptor

import (
	"net/http"

	"game-reviews/pkg/utils"
)

const statusMessage = "Server is running correctly."

type StatusHandler struct{}

func NewStatusHandler() *StatusHandler {
	return &StatusHandler{}
}

// GetStatus handles GET /status
func (h *StatusHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	utils.ResponseText(w, http.StatusOK, statusMessage)
}
