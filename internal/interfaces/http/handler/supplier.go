package handler

import (
	"github.com/gin-gonic/gin"
	partnerapp "github.com/sistemaempresa/backend/internal/application/partner"
)

// SupplierHandler handles the /Fornecedor endpoints
type SupplierHandler struct {
	BaseHandler
	supplierService *partnerapp.SupplierService
}

// NewSupplierHandler creates a new SupplierHandler
func NewSupplierHandler(supplierService *partnerapp.SupplierService) *SupplierHandler {
	return &SupplierHandler{
		supplierService: supplierService,
	}
}

// List godoc
// @ID           listSuppliers
// @Summary      List suppliers
// @Description  Active suppliers ordered by name unless incluirInativos is set
// @Tags         Fornecedor
// @Produce      json
// @Param        search          query    string false "Name or document filter"
// @Param        incluirInativos query    bool   false "Include deactivated records"
// @Param        ordenarPor      query    string false "Sort column"
// @Param        direcao         query    string false "asc or desc"
// @Success      200             {array}  partnerapp.SupplierResponse
// @Failure      400             {object} dto.ErrorResponse
// @Failure      500             {object} dto.ErrorResponse
// @Router       /Fornecedor [get]
func (h *SupplierHandler) List(c *gin.Context) {
	var req partnerapp.ListRequest
	if !h.bindQuery(c, &req) {
		return
	}

	suppliers, err := h.supplierService.List(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, suppliers)
}

// GetByID godoc
// @ID           getSupplierById
// @Summary      Get supplier by ID
// @Tags         Fornecedor
// @Produce      json
// @Param        id  path     int true "Supplier ID"
// @Success      200 {object} partnerapp.SupplierResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /Fornecedor/{id} [get]
func (h *SupplierHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	supplier, err := h.supplierService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, supplier)
}

// Create godoc
// @ID           createSupplier
// @Summary      Create a supplier
// @Tags         Fornecedor
// @Accept       json
// @Produce      json
// @Param        request body     partnerapp.SupplierRequest true "Supplier"
// @Success      201     {object} partnerapp.SupplierResponse
// @Failure      400     {object} dto.ErrorResponse
// @Router       /Fornecedor [post]
func (h *SupplierHandler) Create(c *gin.Context) {
	var req partnerapp.SupplierRequest
	if !h.bindJSON(c, &req) {
		return
	}

	supplier, err := h.supplierService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, supplier)
}

// Update godoc
// @ID           updateSupplier
// @Summary      Update a supplier
// @Tags         Fornecedor
// @Accept       json
// @Produce      json
// @Param        id      path     int                        true "Supplier ID"
// @Param        request body     partnerapp.SupplierRequest true "Supplier"
// @Success      200     {object} partnerapp.SupplierResponse
// @Failure      400     {object} dto.ErrorResponse
// @Failure      404     {object} dto.ErrorResponse
// @Router       /Fornecedor/{id} [put]
func (h *SupplierHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	var req partnerapp.SupplierRequest
	if !h.bindJSON(c, &req) {
		return
	}

	supplier, err := h.supplierService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, supplier)
}

// Delete godoc
// @ID           deleteSupplier
// @Summary      Deactivate a supplier
// @Description  Soft delete: the record stays with ativo=false
// @Tags         Fornecedor
// @Param        id  path     int true "Supplier ID"
// @Success      204
// @Failure      404 {object} dto.ErrorResponse
// @Router       /Fornecedor/{id} [delete]
func (h *SupplierHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	if err := h.supplierService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
