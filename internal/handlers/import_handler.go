package handlers

import (
	"encoding/json"
	"net/http"

	"printshop-backend/internal/services"
	"printshop-backend/pkg/utils"
)

type ImportHandler struct {
	Service *services.ImportService
}

func NewImportHandler(s *services.ImportService) *ImportHandler {
	return &ImportHandler{Service: s}
}

// Import ingests a bulk export from the previous document store
func (h *ImportHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req services.ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.Service.Import(r.Context(), &req)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.JSON(w, http.StatusOK, result)
}
