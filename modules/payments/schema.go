package payments

import (
	"strings"

	"github.com/tryanzu/cashapp/modules/helpers"
)

const (
	FIELD_CHECKBOX = "checkbox"
	FIELD_TEXT     = "text"
	FIELD_TEXTAREA = "textarea"
)

// FormField declares a single admin option of a gateway.
type FormField struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Label       string `json:"label,omitempty"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	Default     string `json:"default"`
	DescTip     bool   `json:"desc_tip,omitempty"`
}

type Schema []FormField

func (s Schema) Defaults() map[string]string {
	values := make(map[string]string, len(s))
	for _, field := range s {
		values[field.Key] = field.Default
	}

	return values
}

// Coerce turns a submitted admin form into the raw values to persist.
// Unknown keys are dropped, an unchecked checkbox is simply absent.
func (s Schema) Coerce(form map[string]string) map[string]string {
	values := make(map[string]string, len(s))
	for _, field := range s {
		raw := form[field.Key]

		switch field.Type {
		case FIELD_CHECKBOX:
			if helpers.IsTruthy(raw) {
				values[field.Key] = "yes"
			} else {
				values[field.Key] = "no"
			}
		case FIELD_TEXTAREA:
			values[field.Key] = raw
		default:
			values[field.Key] = strings.TrimSpace(raw)
		}
	}

	return values
}

// LoadOptions reads the persisted options of gateway id. Missing keys fall
// back to the schema defaults, persisted empty strings are kept.
func LoadOptions(store SettingsStore, id string, schema Schema) (map[string]string, error) {
	persisted, err := store.Load(id)
	if err != nil {
		return nil, err
	}

	values := schema.Defaults()
	for key, value := range persisted {
		values[key] = value
	}

	return values, nil
}

// SaveOptions overwrites the persisted options of gateway id.
func SaveOptions(store SettingsStore, id string, schema Schema, form map[string]string) error {
	values := schema.Coerce(form)
	if err := store.Save(id, values); err != nil {
		return err
	}

	log.Infof("gateway options saved	id=%s", id)
	return nil
}
