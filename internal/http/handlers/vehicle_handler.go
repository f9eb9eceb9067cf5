// Vehicle HTTP handlers.
//
// This file exposes the inventory endpoints:
//   - GET    /api/vehicles              (public, available listings only)
//   - GET    /api/vehicles/{id}         (public detail)
//   - GET    /api/admin/vehicles        (admin, full inventory)
//   - POST   /api/admin/vehicles        (create)
//   - PUT    /api/admin/vehicles/{id}   (full or partial update)
//   - DELETE /api/admin/vehicles/{id}   (hard delete)
//
// Handlers are transport-thin: they validate input, call application
// services, and translate results (including sentinel errors) into HTTP
// responses.
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jrautos/go-dealer-backend/internal/domain"
	"github.com/jrautos/go-dealer-backend/internal/services"
)

//
// Service contracts (context-aware)
//

// VehicleService defines the inventory operations consumed by HTTP handlers.
// Implementations must be safe for concurrent use and honor the provided
// context for cancellation.
type VehicleService interface {
	Create(ctx context.Context, in services.VehicleInput) (*domain.Vehicle, error)
	Update(ctx context.Context, id string, p services.VehiclePatch) (*domain.Vehicle, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*domain.Vehicle, error)
	List(ctx context.Context) ([]domain.Vehicle, error)
	ListAvailable(ctx context.Context) ([]domain.Vehicle, error)
}

// ContactService defines contact-form operations consumed by HTTP handlers.
type ContactService interface {
	Submit(ctx context.Context, name, email, phone, message string) (*domain.ContactMessage, error)
	List(ctx context.Context, limit int) ([]domain.ContactMessage, error)
}

// AuthService defines admin authentication used by the login endpoint.
type AuthService interface {
	Login(password string) (token string, err error)
}

// StatusService records and lists uptime-probe entries.
type StatusService interface {
	Record(ctx context.Context, clientName string) (*domain.StatusCheck, error)
	List(ctx context.Context, limit int) ([]domain.StatusCheck, error)
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints for vehicles, contacts, auth, uploads,
// status checks, and the FAQ bot. It depends on abstract service interfaces
// to keep transport concerns separate from business logic.
type Handlers struct {
	vehicleSvc  VehicleService
	contactSvc  ContactService
	authSvc     AuthService
	statusSvc   StatusService
	store       ImageStore
	faq         FAQProvider
	defaultLang string
}

// New constructs a Handlers instance bound to the given services.
func New(
	vehicleSvc VehicleService,
	contactSvc ContactService,
	authSvc AuthService,
	statusSvc StatusService,
	store ImageStore,
	faq FAQProvider,
	defaultLang string,
) *Handlers {
	return &Handlers{
		vehicleSvc:  vehicleSvc,
		contactSvc:  contactSvc,
		authSvc:     authSvc,
		statusSvc:   statusSvc,
		store:       store,
		faq:         faq,
		defaultLang: defaultLang,
	}
}

//
// DTOs
//

// VehicleRequest is the JSON payload for creating or updating a listing.
// On PUT every field is optional: absent fields keep their stored value,
// which is how the dashboard's availability toggle sends only `available`.
type VehicleRequest struct {
	Name          *string   `json:"name" example:"Corolla XEi"`
	Year          *string   `json:"year" example:"2019"`
	Brand         *string   `json:"brand" example:"Toyota"`
	BodyType      *string   `json:"bodyType" example:"Sedán"`
	Engine        *string   `json:"engine" example:"1.8"`
	Fuel          *string   `json:"fuel" example:"Nafta"`
	Transmission  *string   `json:"transmission" example:"Automática"`
	DescriptionES *string   `json:"description_es" example:"Muy buen estado"`
	DescriptionEN *string   `json:"description_en" example:"Great condition"`
	Images        *[]string `json:"images"`
	Available     *bool     `json:"available"`
}

// strOrEmpty dereferences an optional string field for create payloads,
// where the service enforces presence.
func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// vehicleFail maps service-layer sentinel errors to HTTP responses.
func vehicleFail(c *gin.Context, err error, writeCode string) {
	switch {
	case errors.Is(err, services.ErrVehicleNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "vehicle not found")
	case errors.Is(err, services.ErrMissingFields),
		errors.Is(err, services.ErrNoImages),
		errors.Is(err, services.ErrEmptyPatch):
		fail(c, http.StatusBadRequest, ErrCodeValidation, err.Error())
	default:
		fail(c, http.StatusInternalServerError, writeCode, err.Error())
	}
}

//
// Handlers
//

// ListPublicVehicles godoc
// @ID          listPublicVehicles
// @Summary     List available vehicles
// @Description Returns the listings currently offered for sale, newest first.
// @Tags        Vehicles
// @Produce     json
// @Success     200  {array}   domain.Vehicle
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /vehicles [get]
func (h *Handlers) ListPublicVehicles(c *gin.Context) {
	items, err := h.vehicleSvc.ListAvailable(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, items)
}

// GetVehicle godoc
// @ID          getVehicle
// @Summary     Get a vehicle
// @Description Returns a single listing by id.
// @Tags        Vehicles
// @Produce     json
// @Param       id  path  string  true  "Vehicle ID (UUID)"  format(uuid)
// @Success     200  {object}  domain.Vehicle
// @Failure     400  {object}  handlers.ErrorResponse "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse "Vehicle not found"
// @Router      /vehicles/{id} [get]
func (h *Handlers) GetVehicle(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "vehicle id must be a UUID")
		return
	}
	v, err := h.vehicleSvc.Get(c.Request.Context(), id)
	if err != nil {
		vehicleFail(c, err, ErrCodeInternal)
		return
	}
	ok(c, http.StatusOK, v)
}

// ListAdminVehicles godoc
// @ID          listAdminVehicles
// @Summary     List all vehicles (admin)
// @Description Returns the full inventory including hidden listings.
// @Tags        Admin
// @Produce     json
// @Security    BearerAuth
// @Success     200  {array}   domain.Vehicle
// @Failure     401  {object}  handlers.ErrorResponse "Unauthorized"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /admin/vehicles [get]
func (h *Handlers) ListAdminVehicles(c *gin.Context) {
	items, err := h.vehicleSvc.List(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, items)
}

// CreateVehicle godoc
// @ID          createVehicle
// @Summary     Create a vehicle
// @Description Creates a listing. All descriptive fields and a non-empty image list are required; the cover image is always the first image.
// @Tags        Admin
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body  body  handlers.VehicleRequest  true  "Vehicle payload"
// @Success     201  {object}  domain.Vehicle
// @Failure     400  {object}  handlers.ErrorResponse "Validation failed"
// @Failure     401  {object}  handlers.ErrorResponse "Unauthorized"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /admin/vehicles [post]
func (h *Handlers) CreateVehicle(c *gin.Context) {
	var req VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	var images []string
	if req.Images != nil {
		images = *req.Images
	}
	in := services.VehicleInput{
		Name:          strOrEmpty(req.Name),
		Year:          strOrEmpty(req.Year),
		Brand:         strOrEmpty(req.Brand),
		BodyType:      strOrEmpty(req.BodyType),
		Engine:        strOrEmpty(req.Engine),
		Fuel:          strOrEmpty(req.Fuel),
		Transmission:  strOrEmpty(req.Transmission),
		DescriptionES: strOrEmpty(req.DescriptionES),
		DescriptionEN: strOrEmpty(req.DescriptionEN),
		Images:        images,
	}

	v, err := h.vehicleSvc.Create(c.Request.Context(), in)
	if err != nil {
		vehicleFail(c, err, ErrCodeCreateFailed)
		return
	}
	ok(c, http.StatusCreated, v)
}

// UpdateVehicle godoc
// @ID          updateVehicle
// @Summary     Update a vehicle
// @Description Applies a full or partial update. Absent fields keep their stored value; sending only `available` toggles visibility. A patched image list must be non-empty and resets the cover image.
// @Tags        Admin
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id    path  string                   true  "Vehicle ID (UUID)"  format(uuid)
// @Param       body  body  handlers.VehicleRequest  true  "Fields to update"
// @Success     200  {object}  domain.Vehicle
// @Failure     400  {object}  handlers.ErrorResponse "Validation failed"
// @Failure     401  {object}  handlers.ErrorResponse "Unauthorized"
// @Failure     404  {object}  handlers.ErrorResponse "Vehicle not found"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /admin/vehicles/{id} [put]
func (h *Handlers) UpdateVehicle(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "vehicle id must be a UUID")
		return
	}

	var req VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	p := services.VehiclePatch{
		Name:          req.Name,
		Year:          req.Year,
		Brand:         req.Brand,
		BodyType:      req.BodyType,
		Engine:        req.Engine,
		Fuel:          req.Fuel,
		Transmission:  req.Transmission,
		DescriptionES: req.DescriptionES,
		DescriptionEN: req.DescriptionEN,
		Images:        req.Images,
		Available:     req.Available,
	}

	v, err := h.vehicleSvc.Update(c.Request.Context(), id, p)
	if err != nil {
		vehicleFail(c, err, ErrCodeUpdateFailed)
		return
	}
	ok(c, http.StatusOK, v)
}

// DeleteVehicle godoc
// @ID          deleteVehicle
// @Summary     Delete a vehicle
// @Description Permanently removes a listing.
// @Tags        Admin
// @Produce     json
// @Security    BearerAuth
// @Param       id  path  string  true  "Vehicle ID (UUID)"  format(uuid)
// @Success     204  {string}  string "No Content"
// @Failure     400  {object}  handlers.ErrorResponse "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse "Unauthorized"
// @Failure     404  {object}  handlers.ErrorResponse "Vehicle not found"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /admin/vehicles/{id} [delete]
func (h *Handlers) DeleteVehicle(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "vehicle id must be a UUID")
		return
	}
	if err := h.vehicleSvc.Delete(c.Request.Context(), id); err != nil {
		vehicleFail(c, err, ErrCodeDeleteFailed)
		return
	}
	noContent(c)
}
