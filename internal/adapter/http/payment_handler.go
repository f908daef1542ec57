package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	mw "loanapi/internal/adapter/middleware"
	paymentUC "loanapi/internal/usecase/payment"
)

type PaymentHandler struct{ uc *paymentUC.Usecase }

func NewPaymentHandler(uc *paymentUC.Usecase) *PaymentHandler { return &PaymentHandler{uc: uc} }

type payLoanReq struct {
	Amount float64 `json:"amount" validate:"required,gt=0,dec2"`
}

func (h *PaymentHandler) PayLoan(c echo.Context) error {
	actor, ok := mw.ActorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated"})
	}
	loanID := c.Param("loan_id")
	if !reHex32.MatchString(loanID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan_id"})
	}
	var req payLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	outcome, err := h.uc.Pay(c.Request().Context(), loanID, decimal.NewFromFloat(req.Amount), actor)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, outcome)
}
