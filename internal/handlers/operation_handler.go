package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"printshop-backend/internal/models"
	"printshop-backend/internal/services"
	"printshop-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type OperationHandler struct {
	Service *services.OperationService
}

func NewOperationHandler(s *services.OperationService) *OperationHandler {
	return &OperationHandler{Service: s}
}

func (h *OperationHandler) CreateOperation(w http.ResponseWriter, r *http.Request) {
	var req models.CreateOperationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	op, err := h.Service.CreateOperation(r.Context(), &req)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if !isAdmin(r.Context()) {
		op.Cost = nil
	}
	utils.JSON(w, http.StatusCreated, op)
}

// ListOperations returns all operations, or one teacher's when
// ?teacher_id= is present
func (h *OperationHandler) ListOperations(w http.ResponseWriter, r *http.Request) {
	if teacherIDStr := r.URL.Query().Get("teacher_id"); teacherIDStr != "" {
		teacherID, err := strconv.Atoi(teacherIDStr)
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "Invalid teacher_id")
			return
		}
		operations, err := h.Service.ListByTeacher(r.Context(), teacherID)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		if !isAdmin(r.Context()) {
			redactOperationCosts(operations)
		}
		utils.JSON(w, http.StatusOK, operations)
		return
	}

	operations, err := h.Service.ListOperations(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	if !isAdmin(r.Context()) {
		redactOperationCosts(operations)
	}
	utils.JSON(w, http.StatusOK, operations)
}

func (h *OperationHandler) GetOperation(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	op, err := h.Service.GetOperation(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Operation not found")
		return
	}

	if !isAdmin(r.Context()) {
		op.Cost = nil
	}
	utils.JSON(w, http.StatusOK, op)
}

func (h *OperationHandler) UpdateOperation(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req models.UpdateOperationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	op, err := h.Service.UpdateOperation(r.Context(), id, &req)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if !isAdmin(r.Context()) {
		op.Cost = nil
	}
	utils.JSON(w, http.StatusOK, op)
}

func (h *OperationHandler) DeleteOperation(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Service.DeleteOperation(r.Context(), id); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{"message": "Operation deleted"})
}
