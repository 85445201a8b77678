package handler

import (
	"github.com/gin-gonic/gin"
	locationapp "github.com/sistemaempresa/backend/internal/application/location"
)

// StateHandler handles the /Estado endpoints
type StateHandler struct {
	BaseHandler
	stateService *locationapp.StateService
}

// NewStateHandler creates a new StateHandler
func NewStateHandler(stateService *locationapp.StateService) *StateHandler {
	return &StateHandler{
		stateService: stateService,
	}
}

// List godoc
// @ID           listStates
// @Summary      List states
// @Description  Returns states ordered by name, optionally restricted to one country
// @Tags         Estado
// @Produce      json
// @Param        paisId query    int false "Country ID"
// @Success      200    {array}  locationapp.StateResponse
// @Failure      400    {object} dto.ErrorResponse
// @Failure      500    {object} dto.ErrorResponse
// @Router       /Estado [get]
func (h *StateHandler) List(c *gin.Context) {
	countryID, ok := h.optionalQueryID(c, "paisId")
	if !ok {
		return
	}

	states, err := h.stateService.List(c.Request.Context(), countryID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, states)
}

// ListDetailed godoc
// @ID           listStatesDetailed
// @Summary      List states with country names
// @Description  Includes states detached from their country by a forced delete
// @Tags         Estado
// @Produce      json
// @Success      200 {array}  locationapp.StateResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /Estado/detalhado [get]
func (h *StateHandler) ListDetailed(c *gin.Context) {
	states, err := h.stateService.ListDetailed(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, states)
}

// ListByCountry godoc
// @ID           listStatesByCountry
// @Summary      List the states of a country
// @Tags         Estado
// @Produce      json
// @Param        paisId path     int true "Country ID"
// @Success      200    {array}  locationapp.StateResponse
// @Failure      404    {object} dto.ErrorResponse
// @Router       /Estado/porPais/{paisId} [get]
func (h *StateHandler) ListByCountry(c *gin.Context) {
	countryID, ok := h.parseID(c, "paisId")
	if !ok {
		return
	}

	states, err := h.stateService.ListByCountry(c.Request.Context(), countryID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, states)
}

// GetByID godoc
// @ID           getStateById
// @Summary      Get state by ID
// @Tags         Estado
// @Produce      json
// @Param        id  path     int true "State ID"
// @Success      200 {object} locationapp.StateResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /Estado/{id} [get]
func (h *StateHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	state, err := h.stateService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, state)
}

// Create godoc
// @ID           createState
// @Summary      Create a state
// @Tags         Estado
// @Accept       json
// @Produce      json
// @Param        request body     locationapp.StateRequest true "State"
// @Success      201     {object} locationapp.StateResponse
// @Failure      400     {object} dto.ErrorResponse
// @Router       /Estado [post]
func (h *StateHandler) Create(c *gin.Context) {
	var req locationapp.StateRequest
	if !h.bindJSON(c, &req) {
		return
	}

	state, err := h.stateService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, state)
}

// Update godoc
// @ID           updateState
// @Summary      Update a state
// @Tags         Estado
// @Accept       json
// @Produce      json
// @Param        id      path     int                      true "State ID"
// @Param        request body     locationapp.StateRequest true "State"
// @Success      200     {object} locationapp.StateResponse
// @Failure      400     {object} dto.ErrorResponse
// @Failure      404     {object} dto.ErrorResponse
// @Router       /Estado/{id} [put]
func (h *StateHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	var req locationapp.StateRequest
	if !h.bindJSON(c, &req) {
		return
	}

	state, err := h.stateService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, state)
}

// Delete godoc
// @ID           deleteState
// @Summary      Delete a state
// @Description  Refused with HAS_DEPENDENTS while any city references the state
// @Tags         Estado
// @Param        id  path     int true "State ID"
// @Success      204
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /Estado/{id} [delete]
func (h *StateHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	if err := h.stateService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// ForceDelete godoc
// @ID           forceDeleteState
// @Summary      Force-delete a state
// @Description  Detaches the state's cities (estadoId becomes null) and deletes the state in one transaction
// @Tags         Estado
// @Produce      json
// @Param        id  path     int true "State ID"
// @Success      200 {object} dto.MessageResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /Estado/ExcluirForcado/{id} [post]
func (h *StateHandler) ForceDelete(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	if _, err := h.stateService.ForceDelete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Message(c, "Estado excluído com sucesso (modo forçado).")
}
