package common

// Символьные коды ошибок, которые отдаются клиенту в поле errorCode
const (
	ErrCodeValidation     = "VALIDATION_ERROR"
	ErrCodeInvalidData    = "INVALID_EMPLOYEE_DATA"
	ErrCodeNotFound       = "EMPLOYEE_NOT_FOUND"
	ErrCodeDuplicate      = "DUPLICATE_EMPLOYEE"
	ErrCodeInternalServer = "INTERNAL_SERVER_ERROR"
)

// RequestValidationError - ошибка валидации запроса,
// Errors содержит карту "поле -> сообщение" для ответа клиенту
type RequestValidationError struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func (err RequestValidationError) Error() string {
	return err.Message
}

// InvalidEmployeeDataError - нарушение бизнес-правила в сервисе
// (стаж больше 50 лет, оценка вне диапазона 1..5)
type InvalidEmployeeDataError struct {
	Message string `json:"message"`
}

func (err InvalidEmployeeDataError) Error() string {
	return err.Message
}

// AlreadyExistsError - конфликт уникальности (имя + должность)
type AlreadyExistsError struct {
	Message string `json:"message"`
}

func (err AlreadyExistsError) Error() string {
	return err.Message
}

// NotFoundError - сущность не найдена
type NotFoundError struct {
	Message string `json:"message"`
}

func (err NotFoundError) Error() string {
	return err.Message
}

// NewNotFoundError создаёт новую ошибку "not found"
func NewNotFoundError(message string) error {
	return NotFoundError{Message: message}
}
