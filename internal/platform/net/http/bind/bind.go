// Package bind decodes and validates JSON request bodies.
// Validation messages are translated into the request's negotiated locale (en or zh)
package bind

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	perr "billnote/internal/platform/errors"
	"billnote/internal/platform/logger"
	pnet "billnote/internal/platform/net"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
	"golang.org/x/text/language"
)

// FieldLevel aliases validator.FieldLevel
type FieldLevel = validator.FieldLevel

// ValidatorSvc holds the validator and one translator per supported locale
type ValidatorSvc struct {
	Validator   *validator.Validate
	translators map[string]ut.Translator
}

var (
	vOnce    sync.Once
	vSvc     *ValidatorSvc
	jsonMore = func(dec *json.Decoder) bool { return dec.More() } // seam
)

// Get returns the validator singleton
func Get() *ValidatorSvc {
	vOnce.Do(func() {
		enLoc, zhLoc := en.New(), zh.New()
		uni := ut.New(enLoc, enLoc, zhLoc)
		enT, _ := uni.GetTranslator("en")
		zhT, _ := uni.GetTranslator("zh")

		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonName)

		_ = en_translations.RegisterDefaultTranslations(v, enT)
		_ = zh_translations.RegisterDefaultTranslations(v, zhT)

		vSvc = &ValidatorSvc{
			Validator:   v,
			translators: map[string]ut.Translator{"en": enT, "zh": zhT},
		}
	})
	return vSvc
}

// jsonName reports fields by their json name; "-" and untagged fields keep the Go name
func jsonName(fld reflect.StructField) string {
	tag, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if tag == "" || tag == "-" {
		return fld.Name
	}
	return tag
}

// Translator picks the translator for lang's base language, defaulting to en
func (s *ValidatorSvc) Translator(lang language.Tag) ut.Translator {
	base, _ := lang.Base()
	if t, ok := s.translators[base.String()]; ok {
		return t
	}
	return s.translators["en"]
}

// RegisterTag registers a custom validation tag along with its message per
// locale ("en", "zh"). Messages use {0} for the field name
func RegisterTag(tag string, fn validator.Func, messages map[string]string) error {
	s := Get()
	if err := s.Validator.RegisterValidation(tag, fn); err != nil {
		return err
	}
	for loc, t := range s.translators {
		msg, ok := messages[loc]
		if !ok {
			msg = messages["en"]
		}
		if msg == "" {
			continue
		}
		err := s.Validator.RegisterTranslation(tag, t,
			func(t ut.Translator) error { return t.Add(tag, msg, true) },
			func(t ut.Translator, fe validator.FieldError) string {
				out, _ := t.T(tag, fe.Field(), fe.Param())
				return out
			},
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// JSONOptions controls parsing behavior
type JSONOptions struct {
	MaxBytes        int64 // default 1MB
	DisallowUnknown bool  // default true
	AllowEmptyBody  bool
}

func defaultJSONOptions() JSONOptions {
	return JSONOptions{MaxBytes: 1 << 20, DisallowUnknown: true}
}

// ParseJSON decodes JSON into T, validates it and maps failures to coded errors.
// Validation failures carry the offending field and a message in the request locale
func ParseJSON[T any](r *http.Request, opts ...JSONOptions) (T, error) {
	var zero T
	o := defaultJSONOptions()
	if len(opts) > 0 {
		o = opts[0]
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.C(r.Context()).Error().Err(err).Msg("failed to close request body")
		}
	}()

	var reader io.Reader = r.Body
	if !o.AllowEmptyBody {
		buf := make([]byte, 1)
		n, _ := r.Body.Read(buf)
		if n == 0 {
			return zero, perr.JSONErrf("empty body")
		}
		reader = io.MultiReader(bytes.NewReader(buf[:n]), r.Body)
	}
	if o.MaxBytes > 0 {
		reader = io.LimitReader(reader, o.MaxBytes)
	}

	dec := json.NewDecoder(reader)
	if o.DisallowUnknown {
		dec.DisallowUnknownFields()
	}

	var dst T
	if err := dec.Decode(&dst); err != nil {
		if o.AllowEmptyBody && errors.Is(err, io.EOF) {
			return dst, nil
		}
		return zero, perr.JSONErrf("invalid JSON: %v", err)
	}
	if jsonMore(dec) {
		return zero, perr.JSONErrf("unexpected trailing data")
	}

	if err := Get().Validator.Struct(dst); err != nil {
		var inv *validator.InvalidValidationError
		if errors.As(err, &inv) {
			logger.C(r.Context()).Error().Err(inv).Msg("validator internal error")
			return zero, perr.JSONErrf("validation error")
		}
		field, msg := FieldAndMessage(err, pnet.Locale(r.Context(), language.English))
		return zero, perr.WithField(perr.New(perr.ErrorCodeValidation, msg), field)
	}
	return dst, nil
}

// FieldAndMessage returns the first failing field and its message in lang
func FieldAndMessage(err error, lang language.Tag) (field, message string) {
	if err == nil {
		return "", ""
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fe.Field(), fe.Translate(Get().Translator(lang))
	}
	return "", err.Error()
}
