package handler

import (
	"github.com/gin-gonic/gin"
	locationapp "github.com/sistemaempresa/backend/internal/application/location"
)

// CountryHandler handles the /Pais endpoints
type CountryHandler struct {
	BaseHandler
	countryService *locationapp.CountryService
}

// NewCountryHandler creates a new CountryHandler
func NewCountryHandler(countryService *locationapp.CountryService) *CountryHandler {
	return &CountryHandler{
		countryService: countryService,
	}
}

// List godoc
// @ID           listCountries
// @Summary      List countries
// @Description  Returns every country ordered by name
// @Tags         Pais
// @Produce      json
// @Success      200 {array}  locationapp.CountryResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /Pais [get]
func (h *CountryHandler) List(c *gin.Context) {
	countries, err := h.countryService.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, countries)
}

// GetByID godoc
// @ID           getCountryById
// @Summary      Get country by ID
// @Tags         Pais
// @Produce      json
// @Param        id  path     int true "Country ID"
// @Success      200 {object} locationapp.CountryResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /Pais/{id} [get]
func (h *CountryHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	country, err := h.countryService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, country)
}

// Create godoc
// @ID           createCountry
// @Summary      Create a country
// @Tags         Pais
// @Accept       json
// @Produce      json
// @Param        request body     locationapp.CountryRequest true "Country"
// @Success      201     {object} locationapp.CountryResponse
// @Failure      400     {object} dto.ErrorResponse
// @Failure      500     {object} dto.ErrorResponse
// @Router       /Pais [post]
func (h *CountryHandler) Create(c *gin.Context) {
	var req locationapp.CountryRequest
	if !h.bindJSON(c, &req) {
		return
	}

	country, err := h.countryService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, country)
}

// Update godoc
// @ID           updateCountry
// @Summary      Update a country
// @Tags         Pais
// @Accept       json
// @Produce      json
// @Param        id      path     int                        true "Country ID"
// @Param        request body     locationapp.CountryRequest true "Country"
// @Success      200     {object} locationapp.CountryResponse
// @Failure      400     {object} dto.ErrorResponse
// @Failure      404     {object} dto.ErrorResponse
// @Router       /Pais/{id} [put]
func (h *CountryHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	var req locationapp.CountryRequest
	if !h.bindJSON(c, &req) {
		return
	}

	country, err := h.countryService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, country)
}

// Delete godoc
// @ID           deleteCountry
// @Summary      Delete a country
// @Description  Refused with HAS_DEPENDENTS while any state references the country
// @Tags         Pais
// @Param        id  path     int true "Country ID"
// @Success      204
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /Pais/{id} [delete]
func (h *CountryHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	if err := h.countryService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// ForceDelete godoc
// @ID           forceDeleteCountry
// @Summary      Force-delete a country
// @Description  Detaches the country's states (paisId becomes null) and deletes the country in one transaction
// @Tags         Pais
// @Produce      json
// @Param        id  path     int true "Country ID"
// @Success      200 {object} dto.MessageResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /Pais/ExcluirForcado/{id} [post]
func (h *CountryHandler) ForceDelete(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	if _, err := h.countryService.ForceDelete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Message(c, "País excluído com sucesso (modo forçado).")
}
