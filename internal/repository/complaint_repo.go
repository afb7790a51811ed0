package repository

import (
	"context"
	"time"

	"primedrew/internal/domain"

	"gorm.io/gorm"
)

type ComplaintRepository struct {
	db *gorm.DB
}

func NewComplaintRepository(db *gorm.DB) *ComplaintRepository {
	return &ComplaintRepository{db: db}
}

type complaintModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	Email     string    `gorm:"column:email"`
	Subject   *string   `gorm:"column:subject"`
	Message   string    `gorm:"column:message"`
	Status    string    `gorm:"column:status"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (complaintModel) TableName() string { return "complaints" }

func toDomainComplaint(m complaintModel) *domain.Complaint {
	return &domain.Complaint{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   strOrEmpty(m.Subject),
		Message:   m.Message,
		Status:    domain.ComplaintStatus(m.Status),
		CreatedAt: m.CreatedAt,
	}
}

func toComplaintModel(c *domain.Complaint) complaintModel {
	return complaintModel{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Subject:   strOrNil(c.Subject),
		Message:   c.Message,
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt,
	}
}

func (r *ComplaintRepository) Create(ctx context.Context, c *domain.Complaint) error {
	m := toComplaintModel(c)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*c = *toDomainComplaint(m)
	return nil
}

func (r *ComplaintRepository) GetByID(ctx context.Context, id int64) (*domain.Complaint, error) {
	var m complaintModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainComplaint(m), nil
}

// List returns complaints, newest first, optionally narrowed by status.
func (r *ComplaintRepository) List(ctx context.Context, status domain.ComplaintStatus) ([]domain.Complaint, error) {
	q := r.db.WithContext(ctx).Model(&complaintModel{})
	if status != "" {
		q = q.Where("status = ?", string(status))
	}

	var ms []complaintModel
	if err := q.Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Complaint, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainComplaint(m))
	}
	return out, nil
}

func (r *ComplaintRepository) SetStatus(ctx context.Context, id int64, status domain.ComplaintStatus) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&complaintModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
