package domain

import "time"

type ComplaintStatus string

const (
	ComplaintNew        ComplaintStatus = "New"
	ComplaintInProgress ComplaintStatus = "In Progress"
	ComplaintResolved   ComplaintStatus = "Resolved"
)

// Complaint is a contact-form submission handled by admins.
type Complaint struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name" validate:"required"`
	Email     string          `json:"email" validate:"required,email"`
	Subject   string          `json:"subject"`
	Message   string          `json:"message" gorm:"type:text"`
	Status    ComplaintStatus `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}
