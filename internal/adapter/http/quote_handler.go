package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	quoteDomain "sibbap-loan-engine/internal/domain/quote"
	"sibbap-loan-engine/internal/usecase/quote"
)

type QuoteHandler struct{ uc *quote.Usecase }

func NewQuoteHandler(uc *quote.Usecase) *QuoteHandler { return &QuoteHandler{uc: uc} }

type createQuoteReq struct {
	LoanType           string  `json:"loan_type"           validate:"required,loantype"`
	RequestedPrincipal float64 `json:"requested_principal" validate:"omitempty,gte=0,dec2"`
	RequestedUnits     int     `json:"requested_units"     validate:"omitempty,gte=0"`
	ShareCapital       float64 `json:"share_capital"       validate:"gte=0,dec2"`
	TermMonths         int     `json:"term_months"         validate:"omitempty,gte=1,lte=84"`
	Purpose            string  `json:"purpose"`
	CoMaker            string  `json:"co_maker"`
	CoBorrower         string  `json:"co_borrower"`
}

func (h *QuoteHandler) CreateQuote(c echo.Context) error {
	var req createQuoteReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), quoteDomain.Request{
		LoanType:           req.LoanType,
		RequestedPrincipal: decimal.NewFromFloat(req.RequestedPrincipal).Round(2),
		RequestedUnits:     int64(req.RequestedUnits),
		ShareCapital:       decimal.NewFromFloat(req.ShareCapital).Round(2),
		TermMonths:         req.TermMonths,
		Purpose:            req.Purpose,
		CoMaker:            req.CoMaker,
		CoBorrower:         req.CoBorrower,
	})
	if err != nil {
		return c.JSON(statusFor(err), errorJSON(err))
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *QuoteHandler) GetQuote(c echo.Context) error {
	quoteID := c.Param("quote_id")
	if quoteID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing quote_id path param"})
	}
	dto, err := h.uc.Get(c.Request().Context(), quoteID)
	if err != nil {
		return c.JSON(statusFor(err), errorJSON(err))
	}
	return c.JSON(http.StatusOK, dto)
}
