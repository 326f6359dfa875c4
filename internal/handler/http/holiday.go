package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/suweldo/suweldo-backend-go/internal/domain/holiday"
	"github.com/suweldo/suweldo-backend-go/internal/handler/http/response"
	holidaysvc "github.com/suweldo/suweldo-backend-go/internal/service/holiday"
)

type HolidayHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type holidayHandlerImpl struct {
	holidayService *holidaysvc.Service
	loc            *time.Location
}

func NewHolidayHandler(holidayService *holidaysvc.Service, loc *time.Location) HolidayHandler {
	return &holidayHandlerImpl{holidayService: holidayService, loc: loc}
}

func (h *holidayHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req holiday.CreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	event, err := h.holidayService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Calendar event created", holidaysvc.ToResponse(event))
}

func (h *holidayHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.holidayService.Delete(r.Context(), chi.URLParam(r, "holidayID")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Calendar event deleted", nil)
}

func (h *holidayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
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

	events, err := h.holidayService.ListByRange(r.Context(), from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	items := make([]holiday.HolidayResponse, 0, len(events))
	for _, event := range events {
		items = append(items, holidaysvc.ToResponse(event))
	}
	response.Success(w, items)
}
