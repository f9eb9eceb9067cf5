// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Vehicle
// model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition. Invariants on the payload (required
// fields, non-empty image set, cover image sync) are the service layer's job.
//
// Error semantics:
//   - When a vehicle is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors the raw gorm error is propagated.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jrautos/go-dealer-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// CreateVehicle inserts a new Vehicle row with a generated UUID and UTC
// creation timestamp. The caller supplies all descriptive fields; the row is
// persisted exactly as given. On success, it returns the persisted Vehicle.
func CreateVehicle(ctx context.Context, db *gorm.DB, v *domain.Vehicle) (*domain.Vehicle, error) {
	v.ID = uuid.NewString()
	v.CreatedAt = time.Now().UTC()
	if err := db.WithContext(ctx).Create(v).Error; err != nil {
		return nil, err
	}
	return v, nil
}

// ListVehicles returns all vehicles (available or not), newest first.
// It returns an empty slice when the inventory is empty.
func ListVehicles(ctx context.Context, db *gorm.DB) ([]domain.Vehicle, error) {
	var out []domain.Vehicle
	err := db.WithContext(ctx).
		Order("created_at desc").
		Find(&out).Error
	return out, err
}

// ListAvailableVehicles returns only available vehicles, newest first.
// This is the public-inventory query.
func ListAvailableVehicles(ctx context.Context, db *gorm.DB) ([]domain.Vehicle, error) {
	var out []domain.Vehicle
	err := db.WithContext(ctx).
		Where("available = ?", true).
		Order("created_at desc").
		Find(&out).Error
	return out, err
}

// GetVehicle fetches a single vehicle by ID, or ErrNotFound if missing.
func GetVehicle(ctx context.Context, db *gorm.DB, id string) (*domain.Vehicle, error) {
	var v domain.Vehicle
	if err := db.WithContext(ctx).Where("id = ?", id).First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

// UpdateVehicle applies the given column map to the vehicle identified by id
// and returns the updated row. A map (rather than a struct) is used so the
// availability toggle can patch a single boolean without zeroing the rest.
// Returns ErrNotFound when no row matches.
func UpdateVehicle(ctx context.Context, db *gorm.DB, id string, cols map[string]any) (*domain.Vehicle, error) {
	cols["updated_at"] = time.Now().UTC()
	res := db.WithContext(ctx).
		Model(&domain.Vehicle{}).
		Where("id = ?", id).
		Updates(cols)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return GetVehicle(ctx, db, id)
}

// DeleteVehicle removes the vehicle row permanently. Returns ErrNotFound when
// no row matches. There is no soft delete: the admin action is irreversible.
func DeleteVehicle(ctx context.Context, db *gorm.DB, id string) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Vehicle{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
