package materialize

import (
	"fmt"
	"reflect"
	"time"

	"github.com/go-viper/mapstructure/v2"

	"relation-factory/internal/record"
	"relation-factory/internal/relation"
)

// Options control decoding.
type Options struct {
	// Strict fails on attributes the type does not declare.
	Strict bool
}

// timeLayouts are tried in order for timestamp attributes.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999 MST",
	"2006-01-02 15:04:05.999999999 -0700",
	"2006-01-02T15:04:05.999999999",
	time.DateTime,
	time.DateOnly,
}

var timeType = reflect.TypeFor[time.Time]()

// Entity constructs a new entity of type d from rec and marks it as imported
// when the type supports it. rec is read, not modified.
func Entity(d *relation.Descriptor, rec record.Record, opts Options) (any, error) {
	entity := d.New()

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           entity,
		TagName:          "json",
		WeaklyTypedInput: true,
		Squash:           true,
		ErrorUnused:      opts.Strict,
		DecodeHook:       stringToTimeHook,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build decoder for %s: %w", d.ID(), err)
	}

	if err := decoder.Decode(map[string]any(rec)); err != nil {
		return nil, fmt.Errorf("failed to construct %s: %w", d.ID(), err)
	}

	if d.SupportsImporting() {
		if imp, ok := entity.(relation.Importer); ok {
			imp.SetImporting(true)
		}
	}

	return entity, nil
}

// stringToTimeHook parses exported timestamps. Empty strings decode to the
// zero time.
func stringToTimeHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != timeType {
		return data, nil
	}

	s := reflect.ValueOf(data).String()
	if s == "" {
		return time.Time{}, nil
	}

	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return nil, fmt.Errorf("unrecognized timestamp %q", s)
}
