package handler

import (
	"github.com/gin-gonic/gin"
	locationapp "github.com/sistemaempresa/backend/internal/application/location"
)

// CityHandler handles the /Cidade endpoints
type CityHandler struct {
	BaseHandler
	cityService *locationapp.CityService
}

// NewCityHandler creates a new CityHandler
func NewCityHandler(cityService *locationapp.CityService) *CityHandler {
	return &CityHandler{
		cityService: cityService,
	}
}

// List godoc
// @ID           listCities
// @Summary      List cities
// @Description  Returns cities ordered by name, optionally restricted to one state
// @Tags         Cidade
// @Produce      json
// @Param        estadoId query    int false "State ID"
// @Success      200      {array}  locationapp.CityResponse
// @Failure      400      {object} dto.ErrorResponse
// @Failure      500      {object} dto.ErrorResponse
// @Router       /Cidade [get]
func (h *CityHandler) List(c *gin.Context) {
	stateID, ok := h.optionalQueryID(c, "estadoId")
	if !ok {
		return
	}

	cities, err := h.cityService.List(c.Request.Context(), stateID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, cities)
}

// ListByState godoc
// @ID           listCitiesByState
// @Summary      List the cities of a state
// @Description  Also served at /Cidade/porestado/{id} and /Cidade/PorEstado/{id}. An unknown state yields an empty list.
// @Tags         Cidade
// @Produce      json
// @Param        id  path     int true "State ID"
// @Success      200 {array}  locationapp.CityResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /Cidade/estado/{id} [get]
func (h *CityHandler) ListByState(c *gin.Context) {
	stateID, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	cities, err := h.cityService.ListByState(c.Request.Context(), stateID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, cities)
}

// GetByID godoc
// @ID           getCityById
// @Summary      Get city by ID
// @Tags         Cidade
// @Produce      json
// @Param        id  path     int true "City ID"
// @Success      200 {object} locationapp.CityResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /Cidade/{id} [get]
func (h *CityHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	city, err := h.cityService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, city)
}

// Dependents godoc
// @ID           getCityDependents
// @Summary      Count the records referencing a city
// @Description  Clients, suppliers, employees and transporters whose cidadeId is the city
// @Tags         Cidade
// @Produce      json
// @Param        id  path     int true "City ID"
// @Success      200 {object} locationapp.CityDependentsResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /Cidade/{id}/dependentes [get]
func (h *CityHandler) Dependents(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	deps, err := h.cityService.Dependents(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, deps)
}

// Create godoc
// @ID           createCity
// @Summary      Create a city
// @Description  The referenced state must exist; otherwise 400 with mensagem and sugestao
// @Tags         Cidade
// @Accept       json
// @Produce      json
// @Param        request body     locationapp.CityRequest true "City"
// @Success      201     {object} locationapp.CityResponse
// @Failure      400     {object} dto.ErrorResponse
// @Router       /Cidade [post]
func (h *CityHandler) Create(c *gin.Context) {
	var req locationapp.CityRequest
	if !h.bindJSON(c, &req) {
		return
	}

	city, err := h.cityService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, city)
}

// Update godoc
// @ID           updateCity
// @Summary      Update a city
// @Tags         Cidade
// @Accept       json
// @Produce      json
// @Param        id      path     int                     true "City ID"
// @Param        request body     locationapp.CityRequest true "City"
// @Success      200     {object} locationapp.CityResponse
// @Failure      400     {object} dto.ErrorResponse
// @Failure      404     {object} dto.ErrorResponse
// @Router       /Cidade/{id} [put]
func (h *CityHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	var req locationapp.CityRequest
	if !h.bindJSON(c, &req) {
		return
	}

	city, err := h.cityService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, city)
}

// Delete godoc
// @ID           deleteCity
// @Summary      Delete a city
// @Description  Refused with HAS_DEPENDENTS while any client, supplier, employee or transporter references the city. Also served as POST /Cidade/Excluir/{id}.
// @Tags         Cidade
// @Produce      json
// @Param        id  path     int true "City ID"
// @Success      200 {object} dto.MessageResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /Cidade/{id} [delete]
func (h *CityHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	if err := h.cityService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Message(c, "Cidade excluída com sucesso.")
}

// ForceDelete godoc
// @ID           forceDeleteCity
// @Summary      Force-delete a city
// @Description  Clears cidadeId on every dependent record and deletes the city in one transaction
// @Tags         Cidade
// @Produce      json
// @Param        id  path     int true "City ID"
// @Success      200 {object} dto.MessageResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /Cidade/ExcluirForcado/{id} [post]
func (h *CityHandler) ForceDelete(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	if _, err := h.cityService.ForceDelete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Message(c, "Cidade excluída com sucesso (modo forçado).")
}
