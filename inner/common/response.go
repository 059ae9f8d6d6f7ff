package common

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// формат отметки времени в ответах API
const timestampLayout = "2006-01-02T15:04:05"

// Response - единый конверт успешного ответа
type Response[T any] struct {
	Success    bool   `json:"success"`
	Data       T      `json:"data,omitempty"`
	Message    string `json:"message,omitempty"`
	Path       string `json:"path,omitempty"`
	StatusCode int    `json:"statusCode"`
	Timestamp  string `json:"timestamp"`
} // @name Response

// ErrorResponse - единый конверт ответа с ошибкой
type ErrorResponse struct {
	Success      bool              `json:"success"`
	Status       int               `json:"status"`
	ErrorCode    string            `json:"errorCode"`
	ErrorMessage string            `json:"errorMessage,omitempty"`
	Details      string            `json:"details,omitempty"`
	Errors       map[string]string `json:"errors,omitempty"`
	Path         string            `json:"path,omitempty"`
	Timestamp    string            `json:"timestamp"`
} // @name ErrorResponse

// OkResponse формирует успешный ответ с данными, завёрнутыми в конверт
func OkResponse[T any](c *fiber.Ctx, statusCode int, message string, data T) error {
	return c.Status(statusCode).JSON(&Response[T]{
		Success:    true,
		Data:       data,
		Message:    message,
		Path:       c.OriginalURL(),
		StatusCode: statusCode,
		Timestamp:  time.Now().Format(timestampLayout),
	})
}

// ErrResponse формирует ответ с ошибкой
func ErrResponse(
	c *fiber.Ctx,
	status int,
	errorCode string,
	errorMessage string,
) error {
	return c.Status(status).JSON(&ErrorResponse{
		Success:      false,
		Status:       status,
		ErrorCode:    errorCode,
		ErrorMessage: errorMessage,
		Path:         c.OriginalURL(),
		Timestamp:    time.Now().Format(timestampLayout),
	})
}

// ValidationErrResponse формирует ответ с ошибками валидации,
// errors - карта "поле -> сообщение"
func ValidationErrResponse(c *fiber.Ctx, errorMessage string, errors map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(&ErrorResponse{
		Success:      false,
		Status:       fiber.StatusBadRequest,
		ErrorCode:    ErrCodeValidation,
		ErrorMessage: errorMessage,
		Errors:       errors,
		Path:         c.OriginalURL(),
		Timestamp:    time.Now().Format(timestampLayout),
	})
}
