package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"
	"gopkg.in/yaml.v3"

	"github.com/chiranperera/inner-most/internal/config"
)

var Module = fx.Module("content",
	fx.Provide(NewSite),
)

//go:embed site.yaml
var defaultSite []byte

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		validateInst = v
	})
	return validateInst
}

// Default returns the embedded sample content.
func Default() (*Site, error) {
	site, err := Decode(bytes.NewReader(defaultSite))
	if err != nil {
		return nil, fmt.Errorf("embedded content: %w", err)
	}
	return site, nil
}

// Load reads and validates a YAML content file.
func Load(path string) (*Site, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open content %s: %w", path, err)
	}
	defer f.Close()

	site, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("content %s: %w", path, err)
	}
	return site, nil
}

// Decode parses YAML content from r and validates it. Unknown keys are rejected.
func Decode(r io.Reader) (*Site, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var site Site
	if err := dec.Decode(&site); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("content is empty")
		}
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if err := site.Validate(); err != nil {
		return nil, err
	}
	return &site, nil
}

// Validate checks the content invariants: required fields, positive ages, unique
// profile ids and non-empty hrefs.
func (s *Site) Validate() error {
	err := validatorInstance().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate content: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("invalid content: %s", strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Site.")
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "unique":
		return fmt.Sprintf("%s must have unique %s values", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}

// NewSite provides the content for the server: CONTENT_PATH when set, otherwise
// the embedded sample content.
func NewSite(cfg *config.Config, log *slog.Logger) (*Site, error) {
	var (
		site *Site
		err  error
	)
	if cfg.Site.ContentPath != "" {
		site, err = Load(cfg.Site.ContentPath)
	} else {
		site, err = Default()
	}
	if err != nil {
		return nil, err
	}

	log.Info("content loaded",
		slog.String("source", sourceName(cfg.Site.ContentPath)),
		slog.Int("profiles", len(site.Profiles)),
		slog.Int("features", len(site.Features)),
	)
	return site, nil
}

func sourceName(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}
