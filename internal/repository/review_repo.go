package repository

import (
	"context"
	"math"
	"time"

	"primedrew/internal/domain"

	"gorm.io/gorm"
)

// defaultRating is what a listing shows while nobody has reviewed it.
const defaultRating = 4.0

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

type reviewModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	BookingID int64     `gorm:"column:booking_id;uniqueIndex"`
	UserID    int64     `gorm:"column:user_id"`
	VehicleID int64     `gorm:"column:vehicle_id"`
	Rating    float64   `gorm:"column:rating"`
	Comment   *string   `gorm:"column:comment"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (reviewModel) TableName() string { return "reviews" }

func toDomainReview(m reviewModel) *domain.Review {
	return &domain.Review{
		ID:        m.ID,
		BookingID: m.BookingID,
		UserID:    m.UserID,
		VehicleID: m.VehicleID,
		Rating:    m.Rating,
		Comment:   strOrEmpty(m.Comment),
		CreatedAt: m.CreatedAt,
	}
}

func toReviewModel(rv *domain.Review) reviewModel {
	return reviewModel{
		ID:        rv.ID,
		BookingID: rv.BookingID,
		UserID:    rv.UserID,
		VehicleID: rv.VehicleID,
		Rating:    rv.Rating,
		Comment:   strOrNil(rv.Comment),
		CreatedAt: rv.CreatedAt,
	}
}

// CreateAndRecalc inserts the review and recomputes the vehicle's rating in
// the same transaction. The rating is the arithmetic mean of all review
// ratings, rounded to one decimal; the listing default only applies to a
// vehicle with no reviews, which cannot happen right after an insert.
func (r *ReviewRepository) CreateAndRecalc(ctx context.Context, rv *domain.Review) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := toReviewModel(rv)
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		*rv = *toDomainReview(m)

		var ratings []float64
		if err := tx.Model(&reviewModel{}).
			Where("vehicle_id = ?", rv.VehicleID).
			Pluck("rating", &ratings).Error; err != nil {
			return err
		}

		mean := defaultRating
		if len(ratings) > 0 {
			var sum float64
			for _, v := range ratings {
				sum += v
			}
			mean = sum / float64(len(ratings))
		}
		rounded := math.Round(mean*10) / 10

		return tx.Model(&vehicleModel{}).
			Where("id = ?", rv.VehicleID).
			Updates(map[string]interface{}{
				"rating":     rounded,
				"updated_at": time.Now().UTC(),
			}).Error
	})
}

func (r *ReviewRepository) ExistsForBooking(ctx context.Context, bookingID int64) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&reviewModel{}).
		Where("booking_id = ?", bookingID).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

func (r *ReviewRepository) ListByVehicle(ctx context.Context, vehicleID int64) ([]domain.Review, error) {
	var ms []reviewModel
	tx := r.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("created_at DESC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Review, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainReview(m))
	}
	return out, nil
}
