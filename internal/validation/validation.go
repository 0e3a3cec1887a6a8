package validation

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"fct/internal/domain"
)

// DefaultMessages - сообщения по умолчанию для правил валидации.
// Ключ "tag=param" имеет приоритет над "tag".
var DefaultMessages = map[string]string{
	"required": "must not be blank",
	"gt=0":     "must be positive",
	"gte=0":    "must be greater than or equal to 0",
	"lt=0":     "must be negative",
	"gt":       "must be greater than {param}",
	"gte":      "must be greater than or equal to {param}",
	"lt":       "must be less than {param}",
	"lte":      "must be less than or equal to {param}",
	"min":      "must be at least {param}",
	"max":      "must be at most {param}",
	"len":      "length must be {param}",
	"oneof":    "must be one of [{param}]",
	"email":    "must be a well-formed email address",
	"uuid":     "must be a valid UUID",
	"url":      "must be a valid URL",
	"datetime": "must match format {param}",
}

// UnknownRuleMessage используется для правил, которых нет в каталоге
const UnknownRuleMessage = "is invalid"

// Translator превращает ошибки validator в доменные FieldError
type Translator struct {
	messages map[string]string
}

// NewTranslator создаёт Translator с каталогом DefaultMessages,
// дополненным переопределениями overrides
func NewTranslator(overrides map[string]string) *Translator {
	messages := make(map[string]string, len(DefaultMessages)+len(overrides))
	for k, v := range DefaultMessages {
		messages[k] = v
	}
	for k, v := range overrides {
		messages[k] = v
	}
	return &Translator{messages: messages}
}

// Message возвращает сообщение для правила tag с параметром param
func (t *Translator) Message(tag, param, field string) string {
	template, ok := "", false
	if param != "" {
		template, ok = t.messages[tag+"="+param]
	}
	if !ok {
		template, ok = t.messages[tag]
	}
	if !ok {
		template = UnknownRuleMessage
	}

	return strings.NewReplacer("{param}", param, "{field}", field).Replace(template)
}

// Translate конвертирует ошибки валидатора, сохраняя их порядок
// (порядок объявления полей структуры)
func (t *Translator) Translate(errs validator.ValidationErrors) []domain.FieldError {
	fields := make([]domain.FieldError, 0, len(errs))
	for _, fe := range errs {
		fields = append(fields, domain.FieldError{
			Field:          fe.Field(),
			Tag:            fe.Tag(),
			Param:          fe.Param(),
			DefaultMessage: t.Message(fe.Tag(), fe.Param(), fe.Field()),
		})
	}
	return fields
}

// Failure распознаёт ошибки валидатора (в том числе ошибки валидации
// слайсов из gin binding) и возвращает доменную ошибку валидации
func (t *Translator) Failure(err error) (*domain.Failure, bool) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return domain.Validation(t.Translate(validationErrs)...), true
	}

	var sliceErrs binding.SliceValidationError
	if errors.As(err, &sliceErrs) {
		var fields []domain.FieldError
		for _, e := range sliceErrs {
			if errors.As(e, &validationErrs) {
				fields = append(fields, t.Translate(validationErrs)...)
			}
		}
		return domain.Validation(fields...), true
	}

	return nil, false
}

// LoadMessages читает YAML файл с переопределениями сообщений.
// Пустой путь означает отсутствие переопределений.
func LoadMessages(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read validation messages file: %w", err)
	}

	var messages map[string]string
	if err := yaml.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("failed to parse validation messages file: %w", err)
	}

	return messages, nil
}

// RegisterJSONNames заставляет валидатор сообщать имена полей из тега json
func RegisterJSONNames(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Setup настраивает валидатор, который gin использует при binding
func Setup() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected gin binding validator engine")
	}
	RegisterJSONNames(v)
	return nil
}
