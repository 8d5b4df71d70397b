package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"sibbap-loan-engine/internal/usecase/repayment"
	"sibbap-loan-engine/internal/usecase/schedule"
)

type ScheduleHandler struct {
	uc  *schedule.Usecase
	rep *repayment.Usecase
}

func NewScheduleHandler(uc *schedule.Usecase, rep *repayment.Usecase) *ScheduleHandler {
	return &ScheduleHandler{uc: uc, rep: rep}
}

type generateScheduleReq struct {
	// Canonical date `YYYY-MM-DD` (aligns with schema DATE)
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
}

func (h *ScheduleHandler) GenerateSchedule(c echo.Context) error {
	quoteID := c.Param("quote_id")
	if quoteID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing quote_id path param"})
	}
	var req generateScheduleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	start, _ := time.Parse("2006-01-02", req.StartDate)
	s, err := h.uc.Generate(c.Request().Context(), quoteID, start)
	if err != nil {
		return c.JSON(statusFor(err), errorJSON(err))
	}
	return c.JSON(http.StatusCreated, s)
}

func (h *ScheduleHandler) GetSchedule(c echo.Context) error {
	quoteID := c.Param("quote_id")
	if quoteID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing quote_id path param"})
	}
	s, err := h.uc.Get(c.Request().Context(), quoteID)
	if err != nil {
		return c.JSON(statusFor(err), errorJSON(err))
	}
	return c.JSON(http.StatusOK, s)
}

func (h *ScheduleHandler) PayInstallment(c echo.Context) error {
	quoteID := c.Param("quote_id")
	seq, err := strconv.Atoi(c.Param("sequence"))
	if quoteID == "" || err != nil || seq < 1 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid path params"})
	}
	in, err := h.rep.MarkPaid(c.Request().Context(), quoteID, seq)
	if err != nil {
		return c.JSON(statusFor(err), errorJSON(err))
	}
	return c.JSON(http.StatusOK, in)
}

type sweepOverdueReq struct {
	AsOf string `json:"as_of" validate:"required,datetime=2006-01-02"`
}

func (h *ScheduleHandler) SweepOverdue(c echo.Context) error {
	var req sweepOverdueReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	asOf, _ := time.Parse("2006-01-02", req.AsOf)
	n, err := h.rep.SweepOverdue(c.Request().Context(), asOf)
	if err != nil {
		return c.JSON(statusFor(err), errorJSON(err))
	}
	return c.JSON(http.StatusOK, map[string]int64{"marked_overdue": n})
}
