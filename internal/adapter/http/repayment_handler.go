package http

import (
	"net/http"

	"loan-tracker/internal/usecase/repayment"

	"github.com/labstack/echo/v4"
)

type RepaymentHandler struct{ uc *repayment.Usecase }

func NewRepaymentHandler(uc *repayment.Usecase) *RepaymentHandler {
	return &RepaymentHandler{uc: uc}
}

// field order must match repayment.RecordInput
type createRepaymentReq struct {
	LoanID     string  `json:"loanId"     validate:"required"`
	UserID     string  `json:"userId"     validate:"required"`
	AmountPaid float64 `json:"amountPaid" validate:"required,gt=0"`
}

func (h *RepaymentHandler) Create(c echo.Context) error {
	var req createRepaymentReq
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	dto, err := h.uc.Record(c.Request().Context(), repayment.RecordInput(req))
	if err != nil {
		return writeError(c, err, "Failed to create repayment")
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *RepaymentHandler) List(c echo.Context) error {
	rows, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err, "Failed to fetch repayments")
	}
	return c.JSON(http.StatusOK, map[string]any{"repayments": rows})
}
