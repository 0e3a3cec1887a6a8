package responder

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"fct/internal/api"
	"fct/internal/domain"
	"fct/internal/storage"
	"fct/internal/validation"
)

// DefaultValidationMessage - сообщение для ошибки валидации без ошибок полей
const DefaultValidationMessage = "Validation error"

// Response - HTTP статус и тело ответа с ошибкой
type Response struct {
	Status int
	Body   api.ApiError
}

// Responder переводит ошибки обработки запроса в HTTP ответы.
// Не имеет изменяемого состояния и безопасен для конкурентного использования.
type Responder struct {
	validationFallback string
	translator         *validation.Translator
}

type Option func(*Responder)

// WithValidationFallback задаёт сообщение для ошибки валидации без ошибок полей
func WithValidationFallback(message string) Option {
	return func(r *Responder) {
		if message != "" {
			r.validationFallback = message
		}
	}
}

// WithTranslator задаёт каталог сообщений для ошибок валидатора
func WithTranslator(t *validation.Translator) Option {
	return func(r *Responder) {
		if t != nil {
			r.translator = t
		}
	}
}

func New(opts ...Option) *Responder {
	r := &Responder{
		validationFallback: DefaultValidationMessage,
		translator:         validation.NewTranslator(nil),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve выбирает HTTP ответ для ошибки.
// ok == false означает, что ошибка не относится ни к одной из категорий.
func (r *Responder) Resolve(err error) (Response, bool) {
	if err == nil {
		return Response{}, false
	}

	failure, ok := r.classify(err)
	if !ok {
		return Response{}, false
	}

	switch failure.Kind {
	case domain.KindNotFound:
		return newResponse(http.StatusNotFound, api.ErrCodeNotFound, failure.Message), true
	case domain.KindConflict:
		return newResponse(http.StatusConflict, api.ErrCodeConflict, failure.Message), true
	case domain.KindBadRequest:
		return newResponse(http.StatusBadRequest, api.ErrCodeBadRequest, failure.Message), true
	case domain.KindValidation:
		return newResponse(http.StatusBadRequest, api.ErrCodeValidationError, r.validationMessage(failure)), true
	default:
		return Response{}, false
	}
}

// Respond записывает ответ для ошибки, прерывает цепочку обработчиков и
// возвращает записанный ответ. Если ошибка не распознана, ничего не пишет.
func (r *Responder) Respond(c *gin.Context, err error) (Response, bool) {
	resp, ok := r.Resolve(err)
	if !ok {
		return Response{}, false
	}
	c.AbortWithStatusJSON(resp.Status, resp.Body)
	return resp, true
}

// Bind разбирает JSON тело запроса в obj. При ошибке регистрирует её
// в контексте gin и возвращает false.
func Bind(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		_ = c.Error(err).SetType(gin.ErrorTypeBind)
		return false
	}
	return true
}

func (r *Responder) classify(err error) (*domain.Failure, bool) {
	if failure, ok := domain.AsFailure(err); ok {
		return failure, true
	}

	if failure, ok := r.translator.Failure(err); ok {
		return failure, true
	}

	if failure, ok := malformedBody(err); ok {
		return failure, true
	}

	return domain.AsFailure(storage.Translate(err))
}

func (r *Responder) validationMessage(failure *domain.Failure) string {
	if len(failure.Fields) == 0 {
		return r.validationFallback
	}
	return failure.Fields[0].DefaultMessage
}

// malformedBody распознаёт ошибки разбора JSON тела запроса
func malformedBody(err error) (*domain.Failure, bool) {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError

	switch {
	case errors.As(err, &syntaxErr):
		return domain.Wrap(domain.KindBadRequest, err, "malformed JSON body"), true
	case errors.As(err, &typeErr):
		return domain.Wrap(domain.KindBadRequest, err, "invalid type for field "+typeErr.Field), true
	case errors.Is(err, io.EOF):
		return domain.Wrap(domain.KindBadRequest, err, "request body is empty"), true
	case errors.Is(err, io.ErrUnexpectedEOF):
		return domain.Wrap(domain.KindBadRequest, err, "malformed JSON body"), true
	default:
		return nil, false
	}
}

func newResponse(status int, code, message string) Response {
	return Response{
		Status: status,
		Body: api.ApiError{
			Code:    code,
			Message: message,
		},
	}
}
