package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	mw "loanapi/internal/adapter/middleware"
	loanUC "loanapi/internal/usecase/loan"
)

type LoanHandler struct{ uc *loanUC.Usecase }

func NewLoanHandler(uc *loanUC.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type createLoanReq struct {
	Principal        float64 `json:"principal" validate:"required,gt=0,dec2"`
	InterestRate     float64 `json:"interest_rate" validate:"required,gte=0.1,lte=0.5,rate4"`
	InstallmentCount int     `json:"installment_count" validate:"required"`
}

type adminCreateLoanReq struct {
	CustomerID       string  `json:"customer_id" validate:"required,hex32"`
	Principal        float64 `json:"principal" validate:"required,gt=0,dec2"`
	InterestRate     float64 `json:"interest_rate" validate:"required,gte=0.1,lte=0.5,rate4"`
	InstallmentCount int     `json:"installment_count" validate:"required"`
}

// CreateLoan originates a loan for the authenticated customer.
func (h *LoanHandler) CreateLoan(c echo.Context) error {
	actor, ok := mw.ActorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated"})
	}
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.CreateForActor(c.Request().Context(), actor, loanUC.CreateLoanInput{
		Principal:        decimal.NewFromFloat(req.Principal),
		InterestRate:     decimal.NewFromFloat(req.InterestRate),
		InstallmentCount: req.InstallmentCount,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

// CreateLoanByAdmin originates a loan for any customer.
func (h *LoanHandler) CreateLoanByAdmin(c echo.Context) error {
	actor, ok := mw.ActorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated"})
	}
	var req adminCreateLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.CreateByAdmin(c.Request().Context(), actor, loanUC.CreateLoanInput{
		CustomerID:       req.CustomerID,
		Principal:        decimal.NewFromFloat(req.Principal),
		InterestRate:     decimal.NewFromFloat(req.InterestRate),
		InstallmentCount: req.InstallmentCount,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) ListLoans(c echo.Context) error {
	actor, ok := mw.ActorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated"})
	}
	var filter *string
	if v := c.QueryParam("customer_id"); v != "" {
		if !reHex32.MatchString(v) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid customer_id"})
		}
		filter = &v
	}
	list, err := h.uc.List(c.Request().Context(), actor, filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	actor, ok := mw.ActorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated"})
	}
	loanID := c.Param("loan_id")
	if !reHex32.MatchString(loanID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan_id"})
	}
	dto, err := h.uc.Get(c.Request().Context(), actor, loanID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) ListInstallments(c echo.Context) error {
	actor, ok := mw.ActorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated"})
	}
	loanID := c.Param("loan_id")
	if !reHex32.MatchString(loanID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan_id"})
	}
	list, err := h.uc.Installments(c.Request().Context(), actor, loanID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}
