package domain

import (
	"fmt"
)

type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Err        error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Code:       e.Code,
		Message:    e.Message,
		StatusCode: e.StatusCode,
		Err:        err,
	}
}

// Pre-defined errors
var (
	ErrInternal = &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "An unexpected error occurred",
		StatusCode: 500,
	}

	ErrBadRequest = &AppError{
		Code:       "BAD_REQUEST",
		Message:    "Invalid request",
		StatusCode: 400,
	}

	ErrNotFound = &AppError{
		Code:       "NOT_FOUND",
		Message:    "Resource not found",
		StatusCode: 404,
	}

	ErrPersonNotFound = &AppError{
		Code:       "PERSON_NOT_FOUND",
		Message:    "Persona no encontrada",
		StatusCode: 404,
	}

	ErrEventNotFound = &AppError{
		Code:       "EVENT_NOT_FOUND",
		Message:    "Evento no encontrado",
		StatusCode: 404,
	}

	ErrEventAlreadyResolved = &AppError{
		Code:       "EVENT_ALREADY_RESOLVED",
		Message:    "El evento ya fue resuelto",
		StatusCode: 409,
	}

	ErrCameraNotFound = &AppError{
		Code:       "CAMERA_NOT_FOUND",
		Message:    "Cámara no encontrada",
		StatusCode: 404,
	}

	ErrPersonExists = &AppError{
		Code:       "PERSON_EXISTS",
		Message:    "Ya existe una persona registrada con ese nombre",
		StatusCode: 409,
	}

	ErrNameRequired = &AppError{
		Code:       "NAME_REQUIRED",
		Message:    "El nombre es obligatorio",
		StatusCode: 400,
	}

	ErrImageRequired = &AppError{
		Code:       "IMAGE_REQUIRED",
		Message:    "Se requiere una imagen para registrar",
		StatusCode: 400,
	}

	ErrInvalidImage = &AppError{
		Code:       "INVALID_IMAGE",
		Message:    "Invalid image format or corrupted file",
		StatusCode: 422,
	}

	ErrInvalidSeverity = &AppError{
		Code:       "INVALID_SEVERITY",
		Message:    "Severity must be baja, media, alta or critica",
		StatusCode: 422,
	}

	ErrInvalidConfigKey = &AppError{
		Code:       "INVALID_CONFIG_KEY",
		Message:    "Unknown configuration key",
		StatusCode: 422,
	}

	ErrValidationFailed = &AppError{
		Code:       "VALIDATION_FAILED",
		Message:    "Request validation failed",
		StatusCode: 422,
	}
)
