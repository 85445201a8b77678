package handler

import (
	"github.com/gin-gonic/gin"
	partnerapp "github.com/sistemaempresa/backend/internal/application/partner"
)

// TransporterHandler handles the /Transportadora endpoints
type TransporterHandler struct {
	BaseHandler
	transporterService *partnerapp.TransporterService
}

// NewTransporterHandler creates a new TransporterHandler
func NewTransporterHandler(transporterService *partnerapp.TransporterService) *TransporterHandler {
	return &TransporterHandler{
		transporterService: transporterService,
	}
}

// List godoc
// @ID           listTransporters
// @Summary      List transporters
// @Description  Active transporters ordered by name unless incluirInativos is set
// @Tags         Transportadora
// @Produce      json
// @Param        search          query    string false "Name or document filter"
// @Param        incluirInativos query    bool   false "Include deactivated records"
// @Param        ordenarPor      query    string false "Sort column"
// @Param        direcao         query    string false "asc or desc"
// @Success      200             {array}  partnerapp.TransporterResponse
// @Failure      400             {object} dto.ErrorResponse
// @Failure      500             {object} dto.ErrorResponse
// @Router       /Transportadora [get]
func (h *TransporterHandler) List(c *gin.Context) {
	var req partnerapp.ListRequest
	if !h.bindQuery(c, &req) {
		return
	}

	transporters, err := h.transporterService.List(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, transporters)
}

// GetByID godoc
// @ID           getTransporterById
// @Summary      Get transporter by ID
// @Tags         Transportadora
// @Produce      json
// @Param        id  path     int true "Transporter ID"
// @Success      200 {object} partnerapp.TransporterResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /Transportadora/{id} [get]
func (h *TransporterHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	transporter, err := h.transporterService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, transporter)
}

// Create godoc
// @ID           createTransporter
// @Summary      Create a transporter
// @Tags         Transportadora
// @Accept       json
// @Produce      json
// @Param        request body     partnerapp.TransporterRequest true "Transporter"
// @Success      201     {object} partnerapp.TransporterResponse
// @Failure      400     {object} dto.ErrorResponse
// @Router       /Transportadora [post]
func (h *TransporterHandler) Create(c *gin.Context) {
	var req partnerapp.TransporterRequest
	if !h.bindJSON(c, &req) {
		return
	}

	transporter, err := h.transporterService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, transporter)
}

// Update godoc
// @ID           updateTransporter
// @Summary      Update a transporter
// @Tags         Transportadora
// @Accept       json
// @Produce      json
// @Param        id      path     int                           true "Transporter ID"
// @Param        request body     partnerapp.TransporterRequest true "Transporter"
// @Success      200     {object} partnerapp.TransporterResponse
// @Failure      400     {object} dto.ErrorResponse
// @Failure      404     {object} dto.ErrorResponse
// @Router       /Transportadora/{id} [put]
func (h *TransporterHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	var req partnerapp.TransporterRequest
	if !h.bindJSON(c, &req) {
		return
	}

	transporter, err := h.transporterService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, transporter)
}

// Delete godoc
// @ID           deleteTransporter
// @Summary      Deactivate a transporter
// @Description  Soft delete: the record stays with ativo=false
// @Tags         Transportadora
// @Param        id  path     int true "Transporter ID"
// @Success      204
// @Failure      404 {object} dto.ErrorResponse
// @Router       /Transportadora/{id} [delete]
func (h *TransporterHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	if err := h.transporterService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
