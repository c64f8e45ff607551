package loan

import (
	"time"

	domain "loan-tracker/internal/domain/loan"
	"loan-tracker/internal/domain/user"
)

type SubmitInput struct {
	Name              string
	Amount            float64
	Tenure            int
	EmploymentStatus  string
	EmploymentAddress string
	LoanReason        string
}

type LoanDTO struct {
	ID                string    `json:"id"`
	UserID            string    `json:"userId"`
	Name              string    `json:"name"`
	Amount            float64   `json:"amount"`
	Tenure            int       `json:"tenure"`
	EmploymentStatus  string    `json:"employmentStatus"`
	EmploymentAddress string    `json:"employmentAddress,omitempty"`
	LoanReason        string    `json:"loanReason"`
	Status            string    `json:"status"`
	LoanSubmittedAt   string    `json:"loanSubmittedAt"`
	SubmittedDate     string    `json:"submittedDate"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// UserDTO carries only the public fields of a user.
type UserDTO struct {
	ID       string `json:"id"`
	UserName string `json:"userName"`
	Email    string `json:"email"`
}

// LoanWithUserDTO is a loan plus its submitter, when the submitter resolves.
type LoanWithUserDTO struct {
	LoanDTO
	User *UserDTO `json:"user"`
}

func ToLoanDTO(a *domain.Application) LoanDTO {
	return LoanDTO{
		ID:                a.ID,
		UserID:            a.UserID,
		Name:              a.Name,
		Amount:            a.Amount,
		Tenure:            a.Tenure,
		EmploymentStatus:  string(a.EmploymentStatus),
		EmploymentAddress: a.EmploymentAddress,
		LoanReason:        a.LoanReason,
		Status:            string(a.Status),
		LoanSubmittedAt:   a.LoanSubmittedAt,
		SubmittedDate:     a.SubmittedDate,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
}

func ToUserDTO(u user.User) *UserDTO {
	return &UserDTO{ID: u.ID, UserName: u.UserName, Email: u.Email}
}
