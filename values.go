package params

import (
	"fmt"
	"reflect"
	"strconv"
)

// Values is the resolved value map produced by CollectValues, keyed by
// full parameter name. One entry exists per registered parameter; an entry
// may hold a converted value, a raw string, a compiled default, or nil.
// The typed accessors attempt conversion from common representations.
type Values map[string]any

// Get retrieves a resolved value. The second return value reports whether
// the parameter was collected.
func (v Values) Get(name string) (any, bool) {
	value, collected := v[name]
	return value, collected
}

// String retrieves a string value, converting common scalar types.
// A nil value is returned as an empty string.
func (v Values) String(name string) (string, error) {
	val, collected := v[name]
	if !collected {
		return "", fmt.Errorf("parameter not collected: %s", name)
	}
	if val == nil {
		return "", nil
	}

	if s, ok := val.(string); ok {
		return s, nil
	}

	switch t := val.(type) {
	case fmt.Stringer:
		return t.String(), nil
	case []byte:
		return string(t), nil
	case bool:
		return strconv.FormatBool(t), nil
	case error:
		return t.Error(), nil
	}

	r := reflect.ValueOf(val)
	switch r.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(r.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(r.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(r.Float(), 'f', -1, 64), nil
	}

	return "", fmt.Errorf("cannot convert type %T to string for parameter %s", val, name)
}

// Int64 retrieves an integer value, converting numeric types, parsable
// strings, and booleans.
func (v Values) Int64(name string) (int64, error) {
	val, collected := v[name]
	if !collected {
		return 0, fmt.Errorf("parameter not collected: %s", name)
	}
	if val == nil {
		return 0, fmt.Errorf("value for parameter %s is nil, cannot convert to int64", name)
	}

	r := reflect.ValueOf(val)
	switch r.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return r.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := r.Uint()
		if u > uint64(^uint64(0)>>1) {
			return 0, fmt.Errorf("cannot convert %d to int64 for parameter %s: overflow", u, name)
		}
		return int64(u), nil
	case reflect.Float32, reflect.Float64:
		return int64(r.Float()), nil
	case reflect.String:
		s := r.String()
		if i, err := strconv.ParseInt(s, 0, 64); err == nil {
			return i, nil
		} else if f, ferr := strconv.ParseFloat(s, 64); ferr == nil {
			return int64(f), nil
		} else {
			return 0, fmt.Errorf("cannot convert %q to int64 for parameter %s: %w", s, name, err)
		}
	case reflect.Bool:
		if r.Bool() {
			return 1, nil
		}
		return 0, nil
	}

	return 0, fmt.Errorf("cannot convert type %T to int64 for parameter %s", val, name)
}

// Bool retrieves a boolean value, converting numeric types (zero is false)
// and parsable strings.
func (v Values) Bool(name string) (bool, error) {
	val, collected := v[name]
	if !collected {
		return false, fmt.Errorf("parameter not collected: %s", name)
	}
	if val == nil {
		return false, fmt.Errorf("value for parameter %s is nil, cannot convert to bool", name)
	}

	r := reflect.ValueOf(val)
	switch r.Kind() {
	case reflect.Bool:
		return r.Bool(), nil
	case reflect.String:
		s := r.String()
		if b, err := strconv.ParseBool(s); err == nil {
			return b, nil
		} else {
			return false, fmt.Errorf("cannot convert %q to bool for parameter %s: %w", s, name, err)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return r.Int() != 0, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return r.Uint() != 0, nil
	case reflect.Float32, reflect.Float64:
		return r.Float() != 0, nil
	}

	return false, fmt.Errorf("cannot convert type %T to bool for parameter %s", val, name)
}

// Float64 retrieves a floating point value, converting numeric types and
// parsable strings.
func (v Values) Float64(name string) (float64, error) {
	val, collected := v[name]
	if !collected {
		return 0, fmt.Errorf("parameter not collected: %s", name)
	}
	if val == nil {
		return 0, fmt.Errorf("value for parameter %s is nil, cannot convert to float64", name)
	}

	r := reflect.ValueOf(val)
	switch r.Kind() {
	case reflect.Float32, reflect.Float64:
		return r.Float(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(r.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(r.Uint()), nil
	case reflect.String:
		s := r.String()
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f, nil
		} else {
			return 0, fmt.Errorf("cannot convert %q to float64 for parameter %s: %w", s, name, err)
		}
	}

	return 0, fmt.Errorf("cannot convert type %T to float64 for parameter %s", val, name)
}

// Strings retrieves a string list value. A []string is returned as is, a
// []any must hold strings, and a scalar string is split on commas the way
// the ToList converter would.
func (v Values) Strings(name string) ([]string, error) {
	val, collected := v[name]
	if !collected {
		return nil, fmt.Errorf("parameter not collected: %s", name)
	}
	if val == nil {
		return nil, nil
	}

	switch t := val.(type) {
	case []string:
		return t, nil
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("cannot convert element %T to string for parameter %s", item, name)
			}
			out = append(out, s)
		}
		return out, nil
	case string:
		split, err := ToList(t)
		if err != nil {
			return nil, err
		}
		return split.([]string), nil
	}

	return nil, fmt.Errorf("cannot convert type %T to []string for parameter %s", val, name)
}
