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

type TeacherHandler struct {
	Service *services.TeacherService
}

func NewTeacherHandler(s *services.TeacherService) *TeacherHandler {
	return &TeacherHandler{Service: s}
}

func (h *TeacherHandler) CreateTeacher(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTeacherRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	teacher, err := h.Service.CreateTeacher(r.Context(), &req)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.JSON(w, http.StatusCreated, teacher)
}

func (h *TeacherHandler) ListTeachers(w http.ResponseWriter, r *http.Request) {
	teachers, err := h.Service.ListTeachers(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.JSON(w, http.StatusOK, teachers)
}

func (h *TeacherHandler) GetTeacher(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	teacher, err := h.Service.GetTeacher(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Teacher not found")
		return
	}

	utils.JSON(w, http.StatusOK, teacher)
}

// GetAccount serves the account details screen: ledger plus full history
func (h *TeacherHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	account, err := h.Service.GetAccount(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Teacher not found")
		return
	}

	if !isAdmin(r.Context()) {
		redactOperationCosts(account.Operations)
	}
	utils.JSON(w, http.StatusOK, account)
}

func (h *TeacherHandler) UpdateTeacher(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req models.UpdateTeacherRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	teacher, err := h.Service.UpdateTeacher(r.Context(), id, &req)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.JSON(w, http.StatusOK, teacher)
}

func (h *TeacherHandler) DeleteTeacher(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Service.DeleteTeacher(r.Context(), id); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{"message": "Teacher and their records deleted"})
}
