package employee

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"emps/inner/common"

	"go.uber.org/zap"
)

// верхняя граница стажа в годах, бизнес-правило сервиса
const maxExperienceYears = 50

type Service struct {
	repo     Repo
	idPrefix string
	logger   *common.Logger
}

type Repo interface {
	FindById(ctx context.Context, id string) (Entity, error)
	FindAll(ctx context.Context) ([]Entity, error)
	ExistsByNameAndDesignation(ctx context.Context, name, designation string) (bool, error)
	Save(ctx context.Context, employee *Entity) error
	DeleteById(ctx context.Context, id string) error
}

// функция-конструктор
func NewService(repo Repo, idPrefix string, logger *common.Logger) *Service {
	return &Service{
		repo:     repo,
		idPrefix: idPrefix,
		logger:   logger,
	}
}

// CreateEmployee создаёт нового сотрудника: валидация, бизнес-правила,
// генерация empId, проверка дубликата, сохранение
func (svc *Service) CreateEmployee(ctx context.Context, request Request) (Response, error) {
	svc.logger.Info("Creating new employee", zap.Stringp("name", request.Name))

	// правила формы полей проверены на границе, здесь - только бизнес-правила
	if err := svc.checkBusinessRules(request); err != nil {
		return Response{}, err
	}

	entity := request.ToEntity()

	// проверяем наличие в базе данных работника с таким же именем и должностью
	isExist, err := svc.repo.ExistsByNameAndDesignation(ctx, entity.Name, entity.Designation)
	if err != nil {
		svc.logger.Error("Failed to check if employee exists",
			zap.String("name", entity.Name),
			zap.Error(err))
		return Response{}, fmt.Errorf("error finding employee by name %s: %w", entity.Name, err)
	}
	if isExist {
		svc.logger.Warn("Employee with this name and designation already exists",
			zap.String("name", entity.Name),
			zap.String("designation", entity.Designation))
		return Response{}, common.AlreadyExistsError{
			Message: fmt.Sprintf("employee with name %s and designation %s already exists",
				entity.Name, entity.Designation),
		}
	}

	// empId присваивается ровно один раз, при создании
	entity.EmpId = svc.generateEmpId()

	if err := svc.repo.Save(ctx, &entity); err != nil {
		// гонка двух одновременных создании: ограничение уникальности
		// в базе срабатывает после нашей проверки
		if IsUniqueViolation(err) {
			svc.logger.Warn("Unique constraint violated on save",
				zap.String("name", entity.Name),
				zap.Error(err))
			return Response{}, common.AlreadyExistsError{
				Message: fmt.Sprintf("employee with name %s and designation %s already exists",
					entity.Name, entity.Designation),
			}
		}
		svc.logger.Error("Failed to save new employee",
			zap.String("name", entity.Name),
			zap.Error(err))
		return Response{}, fmt.Errorf("error creating employee with name %s: %w", entity.Name, err)
	}

	svc.logger.Info("Employee created successfully",
		zap.String("name", entity.Name),
		zap.String("empId", entity.EmpId))
	return entity.toResponse(), nil
}

// FindById возвращает сотрудника по empId
func (svc *Service) FindById(ctx context.Context, id string) (Response, error) {
	svc.logger.Debug("Finding employee by ID", zap.String("empId", id))

	entity, err := svc.repo.FindById(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			svc.logger.Warn("Employee not found", zap.String("empId", id))
			return Response{}, common.NewNotFoundError(fmt.Sprintf("Employee not found with Id: %s", id))
		}
		svc.logger.Error("Failed to find employee by ID",
			zap.String("empId", id),
			zap.Error(err))
		return Response{}, fmt.Errorf("error finding employee with id %s: %w", id, err)
	}

	return entity.toResponse(), nil
}

// FindAll возвращает всех сотрудников в порядке, который отдаёт база
func (svc *Service) FindAll(ctx context.Context) ([]Response, error) {
	svc.logger.Debug("Finding all employees")

	entities, err := svc.repo.FindAll(ctx)
	if err != nil {
		svc.logger.Error("Failed to find all employees", zap.Error(err))
		return nil, fmt.Errorf("error finding all employees: %w", err)
	}

	responses := make([]Response, len(entities))
	for i, entity := range entities {
		responses[i] = entity.toResponse()
	}
	svc.logger.Debug("Found all employees", zap.Int("count", len(responses)))
	return responses, nil
}

// Update обновляет существующего сотрудника: все заполненные поля запроса
// переносятся в сущность, empId не меняется
func (svc *Service) Update(ctx context.Context, id string, request Request) (Response, error) {
	svc.logger.Info("Updating employee", zap.String("empId", id))

	// бизнес-правила применяются и на обновлении, симметрично созданию
	if err := svc.checkBusinessRules(request); err != nil {
		return Response{}, err
	}

	entity, err := svc.repo.FindById(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			svc.logger.Warn("Employee not found for update", zap.String("empId", id))
			return Response{}, common.NewNotFoundError(fmt.Sprintf("Employee not found with Id: %s", id))
		}
		svc.logger.Error("Failed to find employee for update",
			zap.String("empId", id),
			zap.Error(err))
		return Response{}, fmt.Errorf("error finding employee with id %s: %w", id, err)
	}

	request.ApplyTo(&entity)

	if err := svc.repo.Save(ctx, &entity); err != nil {
		if IsUniqueViolation(err) {
			svc.logger.Warn("Unique constraint violated on update",
				zap.String("empId", id),
				zap.Error(err))
			return Response{}, common.AlreadyExistsError{
				Message: fmt.Sprintf("employee with name %s and designation %s already exists",
					entity.Name, entity.Designation),
			}
		}
		svc.logger.Error("Failed to save updated employee",
			zap.String("empId", id),
			zap.Error(err))
		return Response{}, fmt.Errorf("error updating employee with id %s: %w", id, err)
	}

	svc.logger.Info("Employee updated successfully", zap.String("empId", id))
	return entity.toResponse(), nil
}

// DeleteById удаляет сотрудника по empId, несуществующий id - ошибка "not found"
func (svc *Service) DeleteById(ctx context.Context, id string) error {
	svc.logger.Info("Deleting employee by ID", zap.String("empId", id))

	_, err := svc.repo.FindById(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			svc.logger.Warn("Employee not found for delete", zap.String("empId", id))
			return common.NewNotFoundError(fmt.Sprintf("Employee not found with Id: %s", id))
		}
		svc.logger.Error("Failed to find employee for delete",
			zap.String("empId", id),
			zap.Error(err))
		return fmt.Errorf("error finding employee with id %s: %w", id, err)
	}

	if err := svc.repo.DeleteById(ctx, id); err != nil {
		svc.logger.Error("Failed to delete employee by ID",
			zap.String("empId", id),
			zap.Error(err))
		return fmt.Errorf("error deleting employee with id %s: %w", id, err)
	}

	svc.logger.Info("Employee deleted successfully", zap.String("empId", id))
	return nil
}

// generateEmpId генерирует человекочитаемый идентификатор вида
// "<prefix>-YYYYMMDD-HHMMSS-NNNN". Разрешение метки времени - секунда,
// случайный суффикс четырёхзначный, так что гарантия уникальности
// вероятностная: совпадение идентификаторов поглощается upsert-ом
// в репозитории.
func (svc *Service) generateEmpId() string {
	timestamp := time.Now().Format("20060102-150405")
	randomDigits := 1000 + rand.IntN(9000)
	return fmt.Sprintf("%s-%s-%04d", svc.idPrefix, timestamp, randomDigits)
}

// бизнес-правила, которые не выражаются правилами отдельных полей
func (svc *Service) checkBusinessRules(request Request) error {
	if request.ExperienceYears != nil && *request.ExperienceYears > maxExperienceYears {
		svc.logger.Error("Invalid experience", zap.Float64("empExperienceYears", *request.ExperienceYears))
		return common.InvalidEmployeeDataError{
			Message: fmt.Sprintf("experience must be less than 50. Provided experience: %.1f years",
				*request.ExperienceYears),
		}
	}
	if request.PerformanceRating != nil &&
		(*request.PerformanceRating < 1 || *request.PerformanceRating > 5) {
		svc.logger.Error("Invalid performance rating", zap.Int("empPerformanceRating", *request.PerformanceRating))
		return common.InvalidEmployeeDataError{
			Message: fmt.Sprintf("Performance rating must be between 1 and 5. Provided performance rating: %d",
				*request.PerformanceRating),
		}
	}
	return nil
}
