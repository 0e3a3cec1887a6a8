package domain

import (
	"errors"
	"fmt"
)

// Kind - категория ошибки, по которой выбирается HTTP ответ
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindConflict
	KindBadRequest
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindBadRequest:
		return "bad_request"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// FieldError - ошибка валидации одного поля запроса
type FieldError struct {
	Field          string // имя поля в JSON
	Tag            string // правило валидации, например "required"
	Param          string // параметр правила, например "0" для gt=0
	DefaultMessage string // сообщение для клиента
}

// Failure - доменная ошибка одной из четырёх категорий
type Failure struct {
	Kind    Kind
	Message string
	Fields  []FieldError // только для KindValidation
	Err     error        // Wrapped error для контекста
}

// Error реализует интерфейс error
func (f *Failure) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("%s: %v", f.Message, f.Err)
	}
	return f.Message
}

// Unwrap позволяет использовать errors.Is и errors.As
func (f *Failure) Unwrap() error {
	return f.Err
}

// NotFound - запрашиваемый ресурс не существует
func NotFound(message string) *Failure {
	return &Failure{Kind: KindNotFound, Message: message}
}

// NotFoundf - NotFound с форматированием сообщения
func NotFoundf(format string, args ...any) *Failure {
	return NotFound(fmt.Sprintf(format, args...))
}

// Conflict - конфликт состояния (дубликат, недопустимый переход)
func Conflict(message string) *Failure {
	return &Failure{Kind: KindConflict, Message: message}
}

// Conflictf - Conflict с форматированием сообщения
func Conflictf(format string, args ...any) *Failure {
	return Conflict(fmt.Sprintf(format, args...))
}

// BadRequest - некорректный аргумент
func BadRequest(message string) *Failure {
	return &Failure{Kind: KindBadRequest, Message: message}
}

// BadRequestf - BadRequest с форматированием сообщения
func BadRequestf(format string, args ...any) *Failure {
	return BadRequest(fmt.Sprintf(format, args...))
}

// Validation - ошибка валидации входных данных, поля в порядке обнаружения
func Validation(fields ...FieldError) *Failure {
	return &Failure{
		Kind:    KindValidation,
		Message: "validation failed",
		Fields:  fields,
	}
}

// Wrap оборачивает обычную ошибку в доменную с контекстом
func Wrap(kind Kind, err error, message string) *Failure {
	return &Failure{Kind: kind, Message: message, Err: err}
}

// AsFailure ищет доменную ошибку в цепочке обёрток
func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

// IsKind проверяет, является ли ошибка доменной ошибкой указанной категории
func IsKind(err error, kind Kind) bool {
	f, ok := AsFailure(err)
	return ok && f.Kind == kind
}
