// Package services – VehicleService
//
// This file implements the VehicleService, which manages the lifecycle of
// inventory listings. It validates create payloads (required descriptive
// fields, non-empty image set), enforces the cover-image invariant
// (cover_image == images[0] at every write), translates partial update
// patches into column maps, and coordinates repository operations.
//
// Service-level errors (ErrVehicleNotFound, ErrMissingFields, ErrNoImages,
// ErrEmptyPatch) are returned for predictable cases so handlers can map them
// to HTTP results consistently.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/jrautos/go-dealer-backend/internal/domain"
	"github.com/jrautos/go-dealer-backend/internal/repo"
)

// VehicleInput is the full field set required to create a listing, with
// named, typed fields rather than a dynamic field bag. All descriptive
// fields and both descriptions are required; Images must be non-empty.
type VehicleInput struct {
	Name          string
	Year          string
	Brand         string
	BodyType      string
	Engine        string
	Fuel          string
	Transmission  string
	DescriptionES string
	DescriptionEN string
	Images        []string
}

// VehiclePatch is a partial update: nil fields are left untouched. The
// availability toggle sends a patch with only Available set; a full edit
// sets every field. When Images is present it must be non-empty and the
// stored cover image is recomputed from its first element.
type VehiclePatch struct {
	Name          *string
	Year          *string
	Brand         *string
	BodyType      *string
	Engine        *string
	Fuel          *string
	Transmission  *string
	DescriptionES *string
	DescriptionEN *string
	Images        *[]string
	Available     *bool
}

// VehicleService provides inventory operations for both the public site
// (available listings only) and the admin panel (full CRUD).
type VehicleService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

// Create validates the input and persists a new listing. The stored
// cover_image is always the first element of the (cleaned) image list,
// regardless of what the client sent. New listings default to available.
func (s *VehicleService) Create(ctx context.Context, in VehicleInput) (*domain.Vehicle, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	images := cleanImages(in.Images)
	if len(images) == 0 {
		return nil, ErrNoImages
	}
	v := &domain.Vehicle{
		Name:          strings.TrimSpace(in.Name),
		Year:          strings.TrimSpace(in.Year),
		Brand:         strings.TrimSpace(in.Brand),
		BodyType:      strings.TrimSpace(in.BodyType),
		Engine:        strings.TrimSpace(in.Engine),
		Fuel:          strings.TrimSpace(in.Fuel),
		Transmission:  strings.TrimSpace(in.Transmission),
		DescriptionES: strings.TrimSpace(in.DescriptionES),
		DescriptionEN: strings.TrimSpace(in.DescriptionEN),
		Images:        images,
		CoverImage:    images[0],
		Available:     true,
	}
	return repo.CreateVehicle(ctx, s.DB, v)
}

// Update applies a partial patch to an existing listing and returns the
// updated record. Patched text fields must be non-empty; a patched image
// list must be non-empty and forces cover_image = images[0].
func (s *VehicleService) Update(ctx context.Context, id string, p VehiclePatch) (*domain.Vehicle, error) {
	cols := map[string]any{}

	set := func(col string, v *string) error {
		if v == nil {
			return nil
		}
		t := strings.TrimSpace(*v)
		if t == "" {
			return fmt.Errorf("%w: %s", ErrMissingFields, col)
		}
		cols[col] = t
		return nil
	}
	for _, f := range []struct {
		col string
		v   *string
	}{
		{"name", p.Name},
		{"year", p.Year},
		{"brand", p.Brand},
		{"body_type", p.BodyType},
		{"engine", p.Engine},
		{"fuel", p.Fuel},
		{"transmission", p.Transmission},
		{"description_es", p.DescriptionES},
		{"description_en", p.DescriptionEN},
	} {
		if err := set(f.col, f.v); err != nil {
			return nil, err
		}
	}

	if p.Images != nil {
		images := cleanImages(*p.Images)
		if len(images) == 0 {
			return nil, ErrNoImages
		}
		cols["images"] = domain.Images(images)
		cols["cover_image"] = images[0]
	}
	if p.Available != nil {
		cols["available"] = *p.Available
	}

	if len(cols) == 0 {
		return nil, ErrEmptyPatch
	}

	v, err := repo.UpdateVehicle(ctx, s.DB, id, cols)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrVehicleNotFound
	}
	return v, err
}

// Delete removes a listing permanently.
func (s *VehicleService) Delete(ctx context.Context, id string) error {
	err := repo.DeleteVehicle(ctx, s.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrVehicleNotFound
	}
	return err
}

// Get fetches a single listing by id.
func (s *VehicleService) Get(ctx context.Context, id string) (*domain.Vehicle, error) {
	v, err := repo.GetVehicle(ctx, s.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrVehicleNotFound
	}
	return v, err
}

// List returns the full inventory, hidden listings included (admin view).
func (s *VehicleService) List(ctx context.Context) ([]domain.Vehicle, error) {
	return repo.ListVehicles(ctx, s.DB)
}

// ListAvailable returns only available listings (public view).
func (s *VehicleService) ListAvailable(ctx context.Context) ([]domain.Vehicle, error) {
	return repo.ListAvailableVehicles(ctx, s.DB)
}

// validate checks that every required create field is present.
func (in VehicleInput) validate() error {
	for _, f := range []struct {
		name, v string
	}{
		{"name", in.Name},
		{"year", in.Year},
		{"brand", in.Brand},
		{"bodyType", in.BodyType},
		{"engine", in.Engine},
		{"fuel", in.Fuel},
		{"transmission", in.Transmission},
		{"description_es", in.DescriptionES},
		{"description_en", in.DescriptionEN},
	} {
		if strings.TrimSpace(f.v) == "" {
			return fmt.Errorf("%w: %s", ErrMissingFields, f.name)
		}
	}
	return nil
}

// cleanImages trims entries and drops blanks, preserving order.
func cleanImages(in []string) domain.Images {
	out := make(domain.Images, 0, len(in))
	for _, s := range in {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}
