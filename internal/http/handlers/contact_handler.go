// Contact and status-check HTTP handlers.
//
//   - POST /api/contact              (public contact form)
//   - GET  /api/admin/contacts       (admin inbox)
//   - POST /api/status, GET /api/status (uptime probes)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jrautos/go-dealer-backend/internal/utils"
)

// ContactRequest is the JSON payload of the public contact form. Phone is
// optional; the email format is enforced at binding time.
type ContactRequest struct {
	Name    string `json:"name" binding:"required" example:"Juan Pérez"`
	Email   string `json:"email" binding:"required,email" example:"juan@example.com"`
	Phone   string `json:"phone" example:"+54 9 11 5555-5555"`
	Message string `json:"message" binding:"required" example:"Consulta por el Corolla 2019"`
}

// StatusRequest is the JSON payload for recording a status check.
type StatusRequest struct {
	ClientName string `json:"client_name" binding:"required" example:"uptime-robot"`
}

// SubmitContact godoc
// @ID          submitContact
// @Summary     Submit a contact message
// @Description Persists a contact-form submission and returns the stored record. An email notification is sent in the background; its failure never fails the request.
// @Tags        Contact
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.ContactRequest  true  "Contact payload"
// @Success     201  {object}  domain.ContactMessage
// @Failure     400  {object}  handlers.ErrorResponse "Validation failed"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /contact [post]
func (h *Handlers) SubmitContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeValidation, "name, valid email and message are required")
		return
	}

	m, err := h.contactSvc.Submit(c.Request.Context(), req.Name, req.Email, req.Phone, req.Message)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		return
	}
	ok(c, http.StatusCreated, m)
}

// ListContacts godoc
// @ID          listContacts
// @Summary     List contact messages (admin)
// @Description Returns contact-form submissions, newest first.
// @Tags        Admin
// @Produce     json
// @Security    BearerAuth
// @Param       limit  query  int  false  "Maximum records returned"  default(1000)
// @Success     200  {array}   domain.ContactMessage
// @Failure     401  {object}  handlers.ErrorResponse "Unauthorized"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /admin/contacts [get]
func (h *Handlers) ListContacts(c *gin.Context) {
	limit := utils.AtoiDefault(c.Query("limit"), 1000)
	items, err := h.contactSvc.List(c.Request.Context(), limit)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, items)
}

// CreateStatusCheck godoc
// @ID          createStatusCheck
// @Summary     Record a status check
// @Tags        Status
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.StatusRequest  true  "Status payload"
// @Success     201  {object}  domain.StatusCheck
// @Failure     400  {object}  handlers.ErrorResponse "Validation failed"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /status [post]
func (h *Handlers) CreateStatusCheck(c *gin.Context) {
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeValidation, "client_name is required")
		return
	}
	sc, err := h.statusSvc.Record(c.Request.Context(), req.ClientName)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		return
	}
	ok(c, http.StatusCreated, sc)
}

// ListStatusChecks godoc
// @ID          listStatusChecks
// @Summary     List status checks
// @Tags        Status
// @Produce     json
// @Param       limit  query  int  false  "Maximum records returned"  default(1000)
// @Success     200  {array}   domain.StatusCheck
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /status [get]
func (h *Handlers) ListStatusChecks(c *gin.Context) {
	limit := utils.AtoiDefault(c.Query("limit"), 1000)
	items, err := h.statusSvc.List(c.Request.Context(), limit)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, items)
}
