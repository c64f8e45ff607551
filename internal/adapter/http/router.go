package http

import "github.com/labstack/echo/v4"

// Router wires handlers to paths. Auth guards the caller-scoped routes and
// Limit the mutating ones; either may be nil.
type Router struct {
	Health     *Handler
	Loans      *LoanHandler
	Repayments *RepaymentHandler
	Auth       echo.MiddlewareFunc
	Limit      echo.MiddlewareFunc
}

func (rt *Router) Register(e *echo.Echo) {
	e.GET("/health", rt.Health.Health)

	e.POST("/apply-loan", rt.Loans.ApplyLoan, chain(rt.Auth, rt.Limit)...)
	e.GET("/my-loans", rt.Loans.MyLoans, chain(rt.Auth)...)

	// Unauthenticated, as in the deployed API; see DESIGN.md.
	e.GET("/all-loans", rt.Loans.AllLoans)
	e.POST("/verifier/update-status", rt.Loans.VerifierUpdateStatus)
	e.POST("/admin/update-status", rt.Loans.AdminUpdateStatus)

	e.POST("/repayments", rt.Repayments.Create, chain(rt.Limit)...)
	e.GET("/repayments", rt.Repayments.List)
}

func chain(mws ...echo.MiddlewareFunc) []echo.MiddlewareFunc {
	out := make([]echo.MiddlewareFunc, 0, len(mws))
	for _, m := range mws {
		if m != nil {
			out = append(out, m)
		}
	}
	return out
}
