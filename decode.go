package params

import (
	"fmt"
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
)

// Scan decodes the resolved value map into the target struct pointer.
// Fields are matched by the `param` tag against full parameter names, with
// weakly typed conversion plus duration, RFC3339 time, and comma-separated
// slice decode hooks:
//
//	type Settings struct {
//	    Tape     string        `param:"backup_tape"`
//	    Blocking int           `param:"backup_blocking"`
//	    Timeout  time.Duration `param:"timeout"`
//	}
func (v Values) Scan(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("scan target must be a non-nil pointer, got %T", target)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "param",
		WeaklyTypedInput: true,
		DecodeHook:       decodeHook(),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(map[string]any(v)); err != nil {
		return fmt.Errorf("decode failed: %w", err)
	}

	return nil
}

// decodeHook returns the composite decode hook applied during Scan.
func decodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToTimeHookFunc(time.RFC3339),
		mapstructure.StringToSliceHookFunc(","),
	)
}
