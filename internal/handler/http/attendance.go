package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/suweldo/suweldo-backend-go/internal/domain/attendance"
	"github.com/suweldo/suweldo-backend-go/internal/handler/http/response"
	attendancesvc "github.com/suweldo/suweldo-backend-go/internal/service/attendance"
)

type AttendanceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService *attendancesvc.Service
	loc               *time.Location
}

func NewAttendanceHandler(attendanceService *attendancesvc.Service, loc *time.Location) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService, loc: loc}
}

func (h *attendanceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req attendance.UpsertAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	day, err := h.attendanceService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance day created", attendancesvc.ToResponse(day))
}

func (h *attendanceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req attendance.UpsertAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	day, err := h.attendanceService.Update(r.Context(), chi.URLParam(r, "attendanceID"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, attendancesvc.ToResponse(day))
}

func (h *attendanceHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	day, err := h.attendanceService.GetByID(r.Context(), chi.URLParam(r, "attendanceID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, attendancesvc.ToResponse(day))
}

func (h *attendanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.attendanceService.Delete(r.Context(), chi.URLParam(r, "attendanceID")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance day deleted", nil)
}

func (h *attendanceHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	from, err := time.ParseInLocation("2006-01-02", r.URL.Query().Get("from"), h.loc)
	if err != nil {
		response.BadRequest(w, "Query parameter 'from' must be YYYY-MM-DD", nil)
		return
	}
	to, err := time.ParseInLocation("2006-01-02", r.URL.Query().Get("to"), h.loc)
	if err != nil {
		response.BadRequest(w, "Query parameter 'to' must be YYYY-MM-DD", nil)
		return
	}

	days, err := h.attendanceService.ListByEmployeeRange(r.Context(), chi.URLParam(r, "employeeID"), from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	items := make([]attendance.AttendanceResponse, 0, len(days))
	for _, day := range days {
		items = append(items, attendancesvc.ToResponse(day))
	}
	response.Success(w, items)
}
