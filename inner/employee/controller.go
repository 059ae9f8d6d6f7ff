package employee

import (
	"context"
	"errors"
	"regexp"

	"emps/inner/common"
	"emps/inner/validator"
	"emps/inner/web"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Controller struct {
	server          *web.Server
	employeeService Svc
	validator       Validator
	idPattern       *regexp.Regexp
	logger          *common.Logger
}

// Validator - движок декларативной валидации, вызывается на границе,
// до обращения к сервису
type Validator interface {
	Validate(request any) error
}

// интерфейс сервиса employee.Service
type Svc interface {
	CreateEmployee(ctx context.Context, request Request) (Response, error)
	FindById(ctx context.Context, id string) (Response, error)
	FindAll(ctx context.Context) ([]Response, error)
	Update(ctx context.Context, id string, request Request) (Response, error)
	DeleteById(ctx context.Context, id string) error
}

func NewController(server *web.Server, employeeService Svc, vld Validator, idPrefix string, logger *common.Logger) *Controller {
	return &Controller{
		server:          server,
		employeeService: employeeService,
		validator:       vld,
		idPattern:       regexp.MustCompile("^" + regexp.QuoteMeta(idPrefix) + `-\d{8}-\d{6}-\d{4}$`),
		logger:          logger,
	}
}

// функция для регистрации маршрутов
func (c *Controller) RegisterRoutes() {
	// полный маршрут получится "/api/v1/employees"
	api := c.server.GroupApiV1
	api.Post("/employees", c.CreateEmployee)
	api.Get("/employees/hello", c.Hello)
	api.Get("/employees/:id", c.GetEmployee)
	api.Get("/employees", c.GetAllEmployees)
	api.Put("/employees/:id", c.UpdateEmployee)
	api.Delete("/employees/:id", c.DeleteEmployee)
}

// CreateEmployee создание нового сотрудника
// @Summary Create an employee record
// @Description Creates a new employee with the provided details and validates the inputs
// @Tags employees
// @Accept json
// @Produce json
// @Param request body employee.Request true "Employee data to create"
// @Success 201 {object} common.Response[employee.Response]
// @Failure 400 {object} common.ErrorResponse
// @Failure 409 {object} common.ErrorResponse
// @Failure 500 {object} common.ErrorResponse
// @Router /employees [post]
func (c *Controller) CreateEmployee(ctx *fiber.Ctx) error {

	// анмаршалим JSON body запроса в структуру Request
	var request Request
	if err := ctx.BodyParser(&request); err != nil {
		c.logger.ErrorCtx(ctx, "Failed to parse create employee request", zap.Error(err))
		return common.ErrResponse(ctx, fiber.StatusBadRequest, common.ErrCodeValidation, err.Error())
	}

	c.logger.InfoCtx(ctx, "Api Request: creating new employee", common.ParseRequestBody(ctx.Body())...)

	// при нарушении правил полей отвечаем сразу, до сервиса запрос не доходит
	if err := c.validator.Validate(request); err != nil {
		return c.validationFailure(ctx, err)
	}

	created, err := c.employeeService.CreateEmployee(ctx.UserContext(), request)
	if err != nil {
		return c.translateError(ctx, err)
	}

	c.logger.InfoCtx(ctx, "Api Response: employee created", zap.String("empId", created.EmpId))
	return common.OkResponse(ctx, fiber.StatusCreated, "Employee created successfully", created)
}

// Hello проверка доступности сервиса
// @Summary Service greeting
// @Tags employees
// @Produce plain
// @Success 200 {string} string
// @Router /employees/hello [get]
func (c *Controller) Hello(ctx *fiber.Ctx) error {
	return ctx.SendString("Hello from Employee Service")
}

// GetEmployee получение сотрудника по empId
// @Summary Fetch employee by ID
// @Description Fetches the complete employee record by employee id
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} common.Response[employee.Response]
// @Failure 404 {object} common.ErrorResponse
// @Failure 500 {object} common.ErrorResponse
// @Router /employees/{id} [get]
func (c *Controller) GetEmployee(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	found, err := c.employeeService.FindById(ctx.UserContext(), id)
	if err != nil {
		return c.translateError(ctx, err)
	}

	return common.OkResponse(ctx, fiber.StatusOK, "Employee retrieved successfully", found)
}

// GetAllEmployees получение всех сотрудников
// @Summary Fetch all employees
// @Tags employees
// @Produce json
// @Success 200 {object} common.Response[[]employee.Response]
// @Failure 500 {object} common.ErrorResponse
// @Router /employees [get]
func (c *Controller) GetAllEmployees(ctx *fiber.Ctx) error {
	employees, err := c.employeeService.FindAll(ctx.UserContext())
	if err != nil {
		return c.translateError(ctx, err)
	}
	// пустая база - пустой список, а не ошибка
	if employees == nil {
		employees = []Response{}
	}
	return common.OkResponse(ctx, fiber.StatusOK, "All employees retrieved successfully", employees)
}

// UpdateEmployee обновление сотрудника по empId
// @Summary Update an existing employee
// @Description Updates an employee's information by their unique ID. All provided fields replace the stored values, empId never changes.
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID in format <prefix>-YYYYMMDD-HHMMSS-NNNN"
// @Param request body employee.Request true "Employee data to update"
// @Success 200 {object} common.Response[employee.Response]
// @Failure 400 {object} common.ErrorResponse
// @Failure 404 {object} common.ErrorResponse
// @Failure 409 {object} common.ErrorResponse
// @Failure 500 {object} common.ErrorResponse
// @Router /employees/{id} [put]
func (c *Controller) UpdateEmployee(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	// неправильный формат идентификатора - ошибка валидации, а не "not found"
	if !c.idPattern.MatchString(id) {
		c.logger.WarnCtx(ctx, "Invalid employee ID format", zap.String("empId", id))
		return common.ErrResponse(ctx, fiber.StatusBadRequest, common.ErrCodeValidation,
			"Invalid employee ID format")
	}

	var request Request
	if err := ctx.BodyParser(&request); err != nil {
		c.logger.ErrorCtx(ctx, "Failed to parse update employee request", zap.Error(err))
		return common.ErrResponse(ctx, fiber.StatusBadRequest, common.ErrCodeValidation, err.Error())
	}

	if err := c.validator.Validate(request); err != nil {
		return c.validationFailure(ctx, err)
	}

	updated, err := c.employeeService.Update(ctx.UserContext(), id, request)
	if err != nil {
		return c.translateError(ctx, err)
	}

	return common.OkResponse(ctx, fiber.StatusOK, "Employee updated successfully", updated)
}

// DeleteEmployee удаление сотрудника по empId
// @Summary Delete an employee
// @Tags employees
// @Param id path string true "Employee ID"
// @Success 204 "No Content"
// @Failure 404 {object} common.ErrorResponse
// @Failure 500 {object} common.ErrorResponse
// @Router /employees/{id} [delete]
func (c *Controller) DeleteEmployee(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	c.logger.InfoCtx(ctx, "Deleting employee", zap.String("empId", id))

	if err := c.employeeService.DeleteById(ctx.UserContext(), id); err != nil {
		return c.translateError(ctx, err)
	}

	// успешное удаление - 204 без тела
	return ctx.SendStatus(fiber.StatusNoContent)
}

// validationFailure отвечает конвертом ошибки валидации с картой
// "поле -> сообщение". Возвращаемое значение - ошибка записи ответа,
// обработчик возвращает его сразу и к сервису не обращается.
func (c *Controller) validationFailure(ctx *fiber.Ctx, err error) error {
	c.logger.WarnCtx(ctx, "Employee request validation failed", zap.Error(err))

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return common.ValidationErrResponse(ctx, "Data validation error", validationErrs.FieldMap())
	}
	return common.ErrResponse(ctx, fiber.StatusBadRequest, common.ErrCodeValidation, err.Error())
}

// translateError переводит типизированные ошибки сервиса в конверт ошибки
// с соответствующим HTTP-статусом, всё неклассифицированное - в 500
// без внутренних подробностей
func (c *Controller) translateError(ctx *fiber.Ctx, err error) error {
	var validationErr common.RequestValidationError
	var invalidDataErr common.InvalidEmployeeDataError
	var notFoundErr common.NotFoundError
	var alreadyExistsErr common.AlreadyExistsError

	switch {
	case errors.As(err, &validationErr):
		return common.ValidationErrResponse(ctx, validationErr.Message, validationErr.Errors)
	case errors.As(err, &invalidDataErr):
		return common.ErrResponse(ctx, fiber.StatusBadRequest, common.ErrCodeInvalidData, invalidDataErr.Message)
	case errors.As(err, &notFoundErr):
		return common.ErrResponse(ctx, fiber.StatusNotFound, common.ErrCodeNotFound, notFoundErr.Message)
	case errors.As(err, &alreadyExistsErr):
		return common.ErrResponse(ctx, fiber.StatusConflict, common.ErrCodeDuplicate, alreadyExistsErr.Message)
	default:
		c.logger.ErrorCtx(ctx, "Unclassified error", zap.Error(err))
		return common.ErrResponse(ctx, fiber.StatusInternalServerError, common.ErrCodeInternalServer,
			"An unexpected error occurred")
	}
}
