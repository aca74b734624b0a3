package catalog

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/folio-tui/folio/internal/models"
)

// linkTag marks fields that must hold an http(s) URL or a mailto: address.
const linkTag = "link"

var (
	validateOnce sync.Once
	validate     *validator.Validate
	validateErr  error
)

func validatorInstance() (*validator.Validate, error) {
	validateOnce.Do(func() {
		validate, validateErr = newValidator()
	})
	return validate, validateErr
}

func newValidator() (*validator.Validate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation(linkTag, validLink); err != nil {
		return nil, fmt.Errorf("register %s validation: %w", linkTag, err)
	}
	return v, nil
}

// validLink accepts http(s) URLs with a host and mailto: addresses.
func validLink(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if rest, ok := strings.CutPrefix(raw, "mailto:"); ok {
		return strings.Contains(rest, "@")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Validate checks a catalog against its field rules.
func Validate(cat *models.Catalog) error {
	if cat == nil {
		return errors.New("catalog is nil")
	}
	v, err := validatorInstance()
	if err != nil {
		return err
	}
	err = v.Struct(cat)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("invalid catalog: %s", strings.Join(msgs, "; "))
}
