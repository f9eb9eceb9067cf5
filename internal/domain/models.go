// Package domain defines the persistence models for vehicle listings,
// contact messages, and status checks. These types are mapped with GORM
// and form the core data layer of the dealership backend.
package domain

import "time"

// Vehicle represents one inventory listing. Descriptive fields are plain
// text: the admin panel enforces "required, non-empty" and nothing more.
//
// Invariants enforced by the service layer at every write:
//   - Images is non-empty whenever a vehicle is persisted.
//   - CoverImage always equals Images[0] at time of write; it is a
//     denormalized copy kept for cheap thumbnail rendering and is never
//     edited independently.
//
// Vehicles are hard-deleted: there is no soft-delete marker because the
// admin delete action is confirmed interactively and irreversible.
//
// Available carries no column default: GORM skips zero-valued fields that
// have a default tag on insert, which would store an unavailable listing as
// available. The service sets Available on create instead.
type Vehicle struct {
	ID            string    `json:"id"             gorm:"type:char(36);primaryKey"`
	Name          string    `json:"name"           gorm:"type:varchar(255);not null"`
	Year          string    `json:"year"           gorm:"type:varchar(16);not null"`
	Brand         string    `json:"brand"          gorm:"type:varchar(64);not null"`
	BodyType      string    `json:"bodyType"       gorm:"column:body_type;type:varchar(64);not null"`
	Engine        string    `json:"engine"         gorm:"type:varchar(64);not null"`
	Fuel          string    `json:"fuel"           gorm:"type:varchar(32);not null"`
	Transmission  string    `json:"transmission"   gorm:"type:varchar(32);not null"`
	DescriptionES string    `json:"description_es" gorm:"column:description_es;type:text;not null"`
	DescriptionEN string    `json:"description_en" gorm:"column:description_en;type:text;not null"`
	Images        Images    `json:"images"         gorm:"type:text;not null;serializer:json"`
	CoverImage    string    `json:"cover_image"    gorm:"type:text;not null"`
	Available     bool      `json:"available"      gorm:"not null"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName returns the database table name for Vehicle.
func (Vehicle) TableName() string { return "vehicles" }

// Images is an ordered sequence of image references (URLs or upload-result
// identifiers). Insertion order is display order; element 0 is the cover.
type Images []string

// Cover returns the first image, or "" when the sequence is empty.
func (im Images) Cover() string {
	if len(im) == 0 {
		return ""
	}
	return im[0]
}

// ContactMessage represents one inbound inquiry from the public contact
// form. Records are append-only: there is no update operation, and the
// admin view is read-only.
type ContactMessage struct {
	ID        string    `json:"id"         gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name"       gorm:"type:varchar(255);not null"`
	Email     string    `json:"email"      gorm:"type:varchar(255);not null"`
	Phone     string    `json:"phone,omitempty" gorm:"type:varchar(32)"`
	Message   string    `json:"message"    gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name for ContactMessage.
func (ContactMessage) TableName() string { return "contact_messages" }

// StatusCheck is an uptime-probe record created by external monitors.
type StatusCheck struct {
	ID         string    `json:"id"          gorm:"type:char(36);primaryKey"`
	ClientName string    `json:"client_name" gorm:"type:varchar(255);not null"`
	Timestamp  time.Time `json:"timestamp"`
}

// TableName returns the database table name for StatusCheck.
func (StatusCheck) TableName() string { return "status_checks" }
