package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"printshop-backend/internal/middleware"
	"printshop-backend/internal/models"
	"printshop-backend/internal/reports"
	"printshop-backend/internal/services"
	"printshop-backend/internal/timeutil"
	"printshop-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type ReportHandler struct {
	Service *services.ReportService
}

func NewReportHandler(s *services.ReportService) *ReportHandler {
	return &ReportHandler{Service: s}
}

// writeReportError distinguishes "you forgot to pick teachers" from
// "your filters matched nothing", so the UI can react differently
func writeReportError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, reports.ErrNoTeachersSelected):
		utils.JSON(w, http.StatusBadRequest, map[string]string{
			"error":  err.Error(),
			"reason": "no_teachers_selected",
		})
	case errors.Is(err, reports.ErrNothingToReport):
		utils.JSON(w, http.StatusUnprocessableEntity, map[string]string{
			"error":  err.Error(),
			"reason": "nothing_to_report",
		})
	default:
		utils.Error(w, http.StatusInternalServerError, err.Error())
	}
}

func (h *ReportHandler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	var cfg models.ReportConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	generatedBy, _ := middleware.GetNameFromContext(r.Context())
	result, err := h.Service.GenerateReport(r.Context(), cfg, generatedBy)
	if err != nil {
		writeReportError(w, err)
		return
	}

	if !isAdmin(r.Context()) {
		redactReportCosts(result)
	}
	utils.JSON(w, http.StatusOK, result)
}

// GeneratePDF assembles the report and streams it as a PDF download
func (h *ReportHandler) GeneratePDF(w http.ResponseWriter, r *http.Request) {
	var cfg models.ReportConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	generatedBy, _ := middleware.GetNameFromContext(r.Context())
	result, err := h.Service.GenerateReport(r.Context(), cfg, generatedBy)
	if err != nil {
		writeReportError(w, err)
		return
	}

	pdfBytes, err := h.Service.GeneratePDF(result)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	filename := fmt.Sprintf("report-%s-%s.pdf", result.Config.Type,
		timeutil.FormatLocal(result.GeneratedAt, timeutil.DateLayout))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(pdfBytes)
}

func (h *ReportHandler) SaveReport(w http.ResponseWriter, r *http.Request) {
	var req models.SaveReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID, _ := middleware.GetUserIDFromContext(r.Context())
	saved, err := h.Service.SaveReport(r.Context(), &req, userID)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.JSON(w, http.StatusCreated, saved)
}

func (h *ReportHandler) ListSavedReports(w http.ResponseWriter, r *http.Request) {
	saved, err := h.Service.ListSavedReports(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.JSON(w, http.StatusOK, saved)
}

func (h *ReportHandler) GetSavedReport(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	saved, err := h.Service.GetSavedReport(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Saved report not found")
		return
	}

	utils.JSON(w, http.StatusOK, saved)
}

func (h *ReportHandler) DeleteSavedReport(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Service.DeleteSavedReport(r.Context(), id); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{"message": "Saved report deleted"})
}
