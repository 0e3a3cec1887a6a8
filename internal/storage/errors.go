package storage

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"fct/internal/domain"
)

// Storage layer errors
var (
	// ErrNotFound возвращается когда запрашиваемый ресурс не найден
	ErrNotFound = errors.New("resource not found")

	// ErrAlreadyExists возвращается при попытке создать ресурс который уже существует
	ErrAlreadyExists = errors.New("resource already exists")

	// ErrConflict возвращается при конфликте данных
	ErrConflict = errors.New("data conflict")

	// ErrInvalidData возвращается когда база отвергла значения (NOT NULL, CHECK, формат)
	ErrInvalidData = errors.New("invalid data")
)

// PostgreSQL error codes
const (
	UniqueViolation           = "23505"
	ForeignKeyViolation       = "23503"
	NotNullViolation          = "23502"
	CheckViolation            = "23514"
	InvalidTextRepresentation = "22P02"
)

// Translate преобразует ошибки хранилища в доменные ошибки.
// Нераспознанные ошибки возвращаются без изменений.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := domain.AsFailure(err); ok {
		return err
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, ErrNotFound):
		return domain.Wrap(domain.KindNotFound, err, ErrNotFound.Error())
	case errors.Is(err, ErrAlreadyExists):
		return domain.Wrap(domain.KindConflict, err, ErrAlreadyExists.Error())
	case errors.Is(err, ErrConflict):
		return domain.Wrap(domain.KindConflict, err, ErrConflict.Error())
	case errors.Is(err, ErrInvalidData):
		return domain.Wrap(domain.KindBadRequest, err, ErrInvalidData.Error())
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case UniqueViolation:
		return domain.Wrap(domain.KindConflict, err, ErrAlreadyExists.Error())
	case ForeignKeyViolation:
		return domain.Wrap(domain.KindConflict, err, ErrConflict.Error())
	case NotNullViolation, CheckViolation, InvalidTextRepresentation:
		return domain.Wrap(domain.KindBadRequest, err, ErrInvalidData.Error())
	default:
		return err
	}
}
