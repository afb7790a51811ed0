package complaint

import (
	"context"

	"primedrew/internal/domain"
)

type ComplaintRepository interface {
	Create(ctx context.Context, c *domain.Complaint) error
	GetByID(ctx context.Context, id int64) (*domain.Complaint, error)
	List(ctx context.Context, status domain.ComplaintStatus) ([]domain.Complaint, error)
	SetStatus(ctx context.Context, id int64, status domain.ComplaintStatus) (bool, error)
}
