package handler

import (
	"github.com/gin-gonic/gin"
	partnerapp "github.com/sistemaempresa/backend/internal/application/partner"
)

// ClientHandler handles the /Cliente endpoints
type ClientHandler struct {
	BaseHandler
	clientService *partnerapp.ClientService
}

// NewClientHandler creates a new ClientHandler
func NewClientHandler(clientService *partnerapp.ClientService) *ClientHandler {
	return &ClientHandler{
		clientService: clientService,
	}
}

// List godoc
// @ID           listClients
// @Summary      List clients
// @Description  Active clients ordered by name unless incluirInativos is set
// @Tags         Cliente
// @Produce      json
// @Param        search          query    string false "Name or document filter"
// @Param        incluirInativos query    bool   false "Include deactivated records"
// @Param        ordenarPor      query    string false "Sort column"
// @Param        direcao         query    string false "asc or desc"
// @Success      200             {array}  partnerapp.ClientResponse
// @Failure      400             {object} dto.ErrorResponse
// @Failure      500             {object} dto.ErrorResponse
// @Router       /Cliente [get]
func (h *ClientHandler) List(c *gin.Context) {
	var req partnerapp.ListRequest
	if !h.bindQuery(c, &req) {
		return
	}

	clients, err := h.clientService.List(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, clients)
}

// GetByID godoc
// @ID           getClientById
// @Summary      Get client by ID
// @Tags         Cliente
// @Produce      json
// @Param        id  path     int true "Client ID"
// @Success      200 {object} partnerapp.ClientResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /Cliente/{id} [get]
func (h *ClientHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	client, err := h.clientService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, client)
}

// Create godoc
// @ID           createClient
// @Summary      Create a client
// @Tags         Cliente
// @Accept       json
// @Produce      json
// @Param        request body     partnerapp.ClientRequest true "Client"
// @Success      201     {object} partnerapp.ClientResponse
// @Failure      400     {object} dto.ErrorResponse
// @Router       /Cliente [post]
func (h *ClientHandler) Create(c *gin.Context) {
	var req partnerapp.ClientRequest
	if !h.bindJSON(c, &req) {
		return
	}

	client, err := h.clientService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, client)
}

// Update godoc
// @ID           updateClient
// @Summary      Update a client
// @Tags         Cliente
// @Accept       json
// @Produce      json
// @Param        id      path     int                      true "Client ID"
// @Param        request body     partnerapp.ClientRequest true "Client"
// @Success      200     {object} partnerapp.ClientResponse
// @Failure      400     {object} dto.ErrorResponse
// @Failure      404     {object} dto.ErrorResponse
// @Router       /Cliente/{id} [put]
func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	var req partnerapp.ClientRequest
	if !h.bindJSON(c, &req) {
		return
	}

	client, err := h.clientService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, client)
}

// Delete godoc
// @ID           deleteClient
// @Summary      Deactivate a client
// @Description  Soft delete: the record stays with ativo=false
// @Tags         Cliente
// @Param        id  path     int true "Client ID"
// @Success      204
// @Failure      404 {object} dto.ErrorResponse
// @Router       /Cliente/{id} [delete]
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	if err := h.clientService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
