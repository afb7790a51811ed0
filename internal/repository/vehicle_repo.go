package repository

import (
	"context"
	"time"

	"primedrew/internal/domain"

	"gorm.io/gorm"
)

type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

func (r *VehicleRepository) DB() *gorm.DB { return r.db }

type vehicleModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	HostID        int64     `gorm:"column:host_id"`
	Code          string    `gorm:"column:code;uniqueIndex"`
	Name          string    `gorm:"column:name"`
	Brand         string    `gorm:"column:brand"`
	Type          string    `gorm:"column:type"`
	Fuel          string    `gorm:"column:fuel"`
	Gear          string    `gorm:"column:gear"`
	City          string    `gorm:"column:city"`
	SubCity       *string   `gorm:"column:sub_city"`
	Latitude      *float64  `gorm:"column:latitude"`
	Longitude     *float64  `gorm:"column:longitude"`
	BasePrice     float64   `gorm:"column:base_price"`
	Rating        float64   `gorm:"column:rating"`
	ImageURL      *string   `gorm:"column:image_url"`
	KmsPerUnit    int       `gorm:"column:kms_per_unit"`
	Features      *string   `gorm:"column:features"`
	Specification *string   `gorm:"column:specification"`
	IsAvailable   bool      `gorm:"column:is_available"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (vehicleModel) TableName() string { return "vehicles" }

func toDomainVehicle(m vehicleModel) *domain.Vehicle {
	return &domain.Vehicle{
		ID:            m.ID,
		HostID:        m.HostID,
		Code:          m.Code,
		Name:          m.Name,
		Brand:         m.Brand,
		Type:          m.Type,
		Fuel:          domain.FuelType(m.Fuel),
		Gear:          m.Gear,
		City:          m.City,
		SubCity:       strOrEmpty(m.SubCity),
		Latitude:      m.Latitude,
		Longitude:     m.Longitude,
		BasePrice:     m.BasePrice,
		Rating:        m.Rating,
		ImageURL:      strOrEmpty(m.ImageURL),
		KmsPerUnit:    m.KmsPerUnit,
		Features:      strOrEmpty(m.Features),
		Specification: strOrEmpty(m.Specification),
		IsAvailable:   m.IsAvailable,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toVehicleModel(v *domain.Vehicle) vehicleModel {
	return vehicleModel{
		ID:            v.ID,
		HostID:        v.HostID,
		Code:          v.Code,
		Name:          v.Name,
		Brand:         v.Brand,
		Type:          v.Type,
		Fuel:          string(v.Fuel),
		Gear:          v.Gear,
		City:          v.City,
		SubCity:       strOrNil(v.SubCity),
		Latitude:      v.Latitude,
		Longitude:     v.Longitude,
		BasePrice:     v.BasePrice,
		Rating:        v.Rating,
		ImageURL:      strOrNil(v.ImageURL),
		KmsPerUnit:    v.KmsPerUnit,
		Features:      strOrNil(v.Features),
		Specification: strOrNil(v.Specification),
		IsAvailable:   v.IsAvailable,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

func (r *VehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	m := toVehicleModel(v)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*v = *toDomainVehicle(m)
	return nil
}

func (r *VehicleRepository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	var m vehicleModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainVehicle(m), nil
}

func (r *VehicleRepository) GetByCode(ctx context.Context, code string) (*domain.Vehicle, error) {
	var m vehicleModel
	tx := r.db.WithContext(ctx).Where("code = ?", code).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainVehicle(m), nil
}

// VehicleFilter narrows inventory listings. Zero values mean "no filter".
type VehicleFilter struct {
	City          string
	Type          string
	Fuel          string
	MaxPrice      float64
	OnlyAvailable bool
}

func (r *VehicleRepository) List(ctx context.Context, f VehicleFilter) ([]domain.Vehicle, error) {
	q := r.db.WithContext(ctx).Model(&vehicleModel{})
	if f.City != "" {
		q = q.Where("city = ?", f.City)
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.Fuel != "" {
		q = q.Where("fuel = ?", f.Fuel)
	}
	if f.MaxPrice > 0 {
		q = q.Where("base_price <= ?", f.MaxPrice)
	}
	if f.OnlyAvailable {
		q = q.Where("is_available = ?", true)
	}

	var ms []vehicleModel
	if err := q.Order("rating DESC, base_price ASC").Find(&ms).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Vehicle, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainVehicle(m))
	}
	return out, nil
}

func (r *VehicleRepository) ListByHost(ctx context.Context, hostID int64) ([]domain.Vehicle, error) {
	var ms []vehicleModel
	tx := r.db.WithContext(ctx).
		Where("host_id = ?", hostID).
		Order("created_at DESC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Vehicle, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainVehicle(m))
	}
	return out, nil
}

func (r *VehicleRepository) CountByHost(ctx context.Context, hostID int64) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&vehicleModel{}).
		Where("host_id = ?", hostID).
		Count(&cnt)
	return cnt, tx.Error
}

func (r *VehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	m := toVehicleModel(v)
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r *VehicleRepository) SetAvailability(ctx context.Context, vehicleID int64, available bool, now time.Time) error {
	return r.db.WithContext(ctx).Model(&vehicleModel{}).
		Where("id = ?", vehicleID).
		Updates(map[string]interface{}{
			"is_available": available,
			"updated_at":   now,
		}).Error
}

// SetAvailabilityForHost flips every vehicle of one host at once; used when
// an admin blocks or unblocks a host account.
func (r *VehicleRepository) SetAvailabilityForHost(ctx context.Context, hostID int64, available bool, now time.Time) error {
	return r.db.WithContext(ctx).Model(&vehicleModel{}).
		Where("host_id = ?", hostID).
		Updates(map[string]interface{}{
			"is_available": available,
			"updated_at":   now,
		}).Error
}

func (r *VehicleRepository) SetRating(ctx context.Context, vehicleID int64, rating float64, now time.Time) error {
	return r.db.WithContext(ctx).Model(&vehicleModel{}).
		Where("id = ?", vehicleID).
		Updates(map[string]interface{}{
			"rating":     rating,
			"updated_at": now,
		}).Error
}
