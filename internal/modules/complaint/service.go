package complaint

import (
	"context"
	"strings"

	"primedrew/internal/domain"
)

type Service struct {
	complaints ComplaintRepository
}

func NewService(complaints ComplaintRepository) *Service {
	return &Service{complaints: complaints}
}

// Create files a contact-form complaint; no account required.
func (s *Service) Create(ctx context.Context, req CreateComplaintRequest) (*domain.Complaint, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, ErrValidation
	}

	c := &domain.Complaint{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Subject: strings.TrimSpace(req.Subject),
		Message: req.Message,
		Status:  domain.ComplaintNew,
	}
	if err := s.complaints.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) List(ctx context.Context, statusFilter string) ([]domain.Complaint, error) {
	status := domain.ComplaintStatus(statusFilter)
	if statusFilter != "" && !validStatus(status) {
		return nil, ErrInvalidStatus
	}
	return s.complaints.List(ctx, status)
}

func (s *Service) UpdateStatus(ctx context.Context, id int64, statusStr string) error {
	status := domain.ComplaintStatus(statusStr)
	if !validStatus(status) {
		return ErrInvalidStatus
	}

	ok, err := s.complaints.SetStatus(ctx, id, status)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func validStatus(s domain.ComplaintStatus) bool {
	switch s {
	case domain.ComplaintNew, domain.ComplaintInProgress, domain.ComplaintResolved:
		return true
	}
	return false
}
