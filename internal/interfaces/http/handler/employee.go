package handler

import (
	"github.com/gin-gonic/gin"
	partnerapp "github.com/sistemaempresa/backend/internal/application/partner"
)

// EmployeeHandler handles the /Funcionario endpoints
type EmployeeHandler struct {
	BaseHandler
	employeeService *partnerapp.EmployeeService
}

// NewEmployeeHandler creates a new EmployeeHandler
func NewEmployeeHandler(employeeService *partnerapp.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{
		employeeService: employeeService,
	}
}

// List godoc
// @ID           listEmployees
// @Summary      List employees
// @Description  Active employees ordered by name unless incluirInativos is set
// @Tags         Funcionario
// @Produce      json
// @Param        search          query    string false "Name or document filter"
// @Param        incluirInativos query    bool   false "Include deactivated records"
// @Param        ordenarPor      query    string false "Sort column"
// @Param        direcao         query    string false "asc or desc"
// @Success      200             {array}  partnerapp.EmployeeResponse
// @Failure      400             {object} dto.ErrorResponse
// @Failure      500             {object} dto.ErrorResponse
// @Router       /Funcionario [get]
func (h *EmployeeHandler) List(c *gin.Context) {
	var req partnerapp.ListRequest
	if !h.bindQuery(c, &req) {
		return
	}

	employees, err := h.employeeService.List(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, employees)
}

// GetByID godoc
// @ID           getEmployeeById
// @Summary      Get employee by ID
// @Tags         Funcionario
// @Produce      json
// @Param        id  path     int true "Employee ID"
// @Success      200 {object} partnerapp.EmployeeResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /Funcionario/{id} [get]
func (h *EmployeeHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	employee, err := h.employeeService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, employee)
}

// Create godoc
// @ID           createEmployee
// @Summary      Create an employee
// @Tags         Funcionario
// @Accept       json
// @Produce      json
// @Param        request body     partnerapp.EmployeeRequest true "Employee"
// @Success      201     {object} partnerapp.EmployeeResponse
// @Failure      400     {object} dto.ErrorResponse
// @Router       /Funcionario [post]
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req partnerapp.EmployeeRequest
	if !h.bindJSON(c, &req) {
		return
	}

	employee, err := h.employeeService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, employee)
}

// Update godoc
// @ID           updateEmployee
// @Summary      Update an employee
// @Tags         Funcionario
// @Accept       json
// @Produce      json
// @Param        id      path     int                        true "Employee ID"
// @Param        request body     partnerapp.EmployeeRequest true "Employee"
// @Success      200     {object} partnerapp.EmployeeResponse
// @Failure      400     {object} dto.ErrorResponse
// @Failure      404     {object} dto.ErrorResponse
// @Router       /Funcionario/{id} [put]
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	var req partnerapp.EmployeeRequest
	if !h.bindJSON(c, &req) {
		return
	}

	employee, err := h.employeeService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, employee)
}

// Delete godoc
// @ID           deleteEmployee
// @Summary      Deactivate an employee
// @Description  Soft delete: the record stays with ativo=false
// @Tags         Funcionario
// @Param        id  path     int true "Employee ID"
// @Success      204
// @Failure      404 {object} dto.ErrorResponse
// @Router       /Funcionario/{id} [delete]
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	if err := h.employeeService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
