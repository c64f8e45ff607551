package http

import (
	"net/http"

	"loan-tracker/internal/adapter/middleware"
	"loan-tracker/internal/usecase/loan"

	"github.com/labstack/echo/v4"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

// field order must match loan.SubmitInput
type applyLoanReq struct {
	Name              string  `json:"name"              validate:"required,notblank"`
	Amount            float64 `json:"amount"            validate:"required,gte=1000"`
	Tenure            int     `json:"tenure"            validate:"required,gte=1"`
	EmploymentStatus  string  `json:"employmentStatus"  validate:"required,employment"`
	EmploymentAddress string  `json:"employmentAddress" validate:"required_unless=EmploymentStatus unemployed"`
	LoanReason        string  `json:"loanReason"        validate:"required,notblank"`
}

type updateStatusReq struct {
	Status string `json:"status"`
	LoanID string `json:"loanId"`
}

type loanResponse struct {
	Message string        `json:"message"`
	Loan    *loan.LoanDTO `json:"loan"`
}

func (h *LoanHandler) ApplyLoan(c echo.Context) error {
	identity, ok := middleware.Identity(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}
	var req applyLoanReq
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	dto, err := h.uc.Submit(c.Request().Context(), identity, loan.SubmitInput(req))
	if err != nil {
		return writeError(c, err, "Failed to submit loan application")
	}
	return c.JSON(http.StatusCreated, loanResponse{Message: "Loan application submitted successfully", Loan: dto})
}

func (h *LoanHandler) MyLoans(c echo.Context) error {
	identity, ok := middleware.Identity(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}
	loans, err := h.uc.ListOwn(c.Request().Context(), identity)
	if err != nil {
		return writeError(c, err, "Failed to fetch loans")
	}
	return c.JSON(http.StatusOK, map[string]any{"loans": loans})
}

func (h *LoanHandler) AllLoans(c echo.Context) error {
	loans, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return writeError(c, err, "Server error")
	}
	return c.JSON(http.StatusOK, map[string]any{"loans": loans})
}

func (h *LoanHandler) VerifierUpdateStatus(c echo.Context) error {
	var req updateStatusReq
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	dto, err := h.uc.UpdateStatusAsVerifier(c.Request().Context(), req.LoanID, req.Status)
	if err != nil {
		return writeError(c, err, "Server error")
	}
	return c.JSON(http.StatusOK, loanResponse{Message: "Loan status updated", Loan: dto})
}

func (h *LoanHandler) AdminUpdateStatus(c echo.Context) error {
	var req updateStatusReq
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	dto, err := h.uc.UpdateStatusAsAdmin(c.Request().Context(), req.LoanID, req.Status)
	if err != nil {
		return writeError(c, err, "Server error")
	}
	return c.JSON(http.StatusOK, loanResponse{Message: "Loan status updated by admin", Loan: dto})
}
