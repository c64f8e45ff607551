package loan

import (
	"strings"
	"time"

	"loan-tracker/internal/domain/apperr"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusVerified Status = "verified"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

type EmploymentStatus string

const (
	EmploymentEmployed     EmploymentStatus = "employed"
	EmploymentUnemployed   EmploymentStatus = "unemployed"
	EmploymentSelfEmployed EmploymentStatus = "self-employed"
)

func (e EmploymentStatus) Valid() bool {
	switch e {
	case EmploymentEmployed, EmploymentUnemployed, EmploymentSelfEmployed:
		return true
	}
	return false
}

const (
	MinAmount = 1000
	MinTenure = 1

	submittedTimeLayout = "3:04 PM"
	submittedDateLayout = "January 2, 2006"
)

// Application is one loan request and its lifecycle status.
type Application struct {
	ID                string           `gorm:"primaryKey;size:32;column:id" json:"id"`
	UserID            string           `gorm:"size:64;not null;index:idx_loan_applications_user" json:"userId"`
	Name              string           `gorm:"size:255;not null" json:"name"`
	Amount            float64          `gorm:"type:decimal(18,2);not null" json:"amount"`
	Tenure            int              `gorm:"not null" json:"tenure"`
	EmploymentStatus  EmploymentStatus `gorm:"type:enum('employed','unemployed','self-employed');not null" json:"employmentStatus"`
	EmploymentAddress string           `gorm:"type:text" json:"employmentAddress,omitempty"`
	LoanReason        string           `gorm:"type:text;not null" json:"loanReason"`
	Status            Status           `gorm:"type:enum('pending','verified','approved','rejected');default:'pending';index" json:"status"`
	LoanSubmittedAt   string           `gorm:"size:16" json:"loanSubmittedAt"`
	SubmittedDate     string           `gorm:"size:32" json:"submittedDate"`
	CreatedAt         time.Time        `gorm:"autoCreateTime;index" json:"createdAt"`
	UpdatedAt         time.Time        `gorm:"autoUpdateTime;index" json:"updatedAt"`
}

func (Application) TableName() string { return "loan_applications" }

// Fields is the client-supplied part of an application.
type Fields struct {
	Name              string
	Amount            float64
	Tenure            int
	EmploymentStatus  string
	EmploymentAddress string
	LoanReason        string
}

// NewApplication validates f and builds a pending application for userID.
// The submission strings are rendered from submittedAt once, here.
func NewApplication(id, userID string, f Fields, submittedAt time.Time) (*Application, error) {
	a := &Application{
		ID:                id,
		UserID:            strings.TrimSpace(userID),
		Name:              strings.TrimSpace(f.Name),
		Amount:            f.Amount,
		Tenure:            f.Tenure,
		EmploymentStatus:  EmploymentStatus(strings.TrimSpace(f.EmploymentStatus)),
		EmploymentAddress: strings.TrimSpace(f.EmploymentAddress),
		LoanReason:        strings.TrimSpace(f.LoanReason),
		Status:            StatusPending,
		LoanSubmittedAt:   submittedAt.Format(submittedTimeLayout),
		SubmittedDate:     submittedAt.Format(submittedDateLayout),
	}

	var fields []apperr.FieldError
	add := func(field, msg string) { fields = append(fields, apperr.FieldError{Field: field, Message: msg}) }

	if a.UserID == "" {
		add("userId", "is required")
	}
	if a.Name == "" {
		add("name", "is required")
	}
	if a.Amount < MinAmount {
		add("amount", "minimum loan amount is 1000")
	}
	if a.Tenure < MinTenure {
		add("tenure", "tenure must be at least 1 month")
	}
	switch {
	case a.EmploymentStatus == "":
		add("employmentStatus", "is required")
	case !a.EmploymentStatus.Valid():
		add("employmentStatus", "must be one of employed, unemployed, self-employed")
	case a.EmploymentStatus != EmploymentUnemployed && a.EmploymentAddress == "":
		add("employmentAddress", "is required unless unemployed")
	}
	if a.LoanReason == "" {
		add("loanReason", "is required")
	}

	if len(fields) > 0 {
		return nil, &apperr.ValidationError{Message: "invalid loan application", Fields: fields}
	}
	return a, nil
}
