package marshal

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/max-scw/dmc-service/identifier"
	"github.com/max-scw/dmc-service/message"
)

// Unmarshal errors.
var (
	// ErrNotPointer indicates the target is not a pointer.
	ErrNotPointer = errors.New("target must be a pointer")
	// ErrNotStruct indicates the target is not a struct.
	ErrNotStruct = errors.New("target must be a struct")
)

// Unmarshaler populates Go structs from a parsed or built field list.
type Unmarshaler interface {
	// Unmarshal populates the struct pointed to by v with data from fields.
	// Struct fields should be tagged with dmc tags naming the Data
	// Identifier to read.
	//
	// Example:
	//   type Item struct {
	//       Serial   string    `dmc:"S"`
	//       Quantity int       `dmc:"Q"`
	//       BestBy   time.Time `dmc:"16D,format=060102"`
	//   }
	//
	//   var item Item
	//   err := unmarshaler.Unmarshal(fields, &item)
	Unmarshal(fields []message.Field, v interface{}) error
}

// unmarshaler is the concrete implementation of Unmarshaler.
type unmarshaler struct {
	config *marshalConfig
}

// NewUnmarshaler creates a new Unmarshaler with the given options.
func NewUnmarshaler(opts ...Option) Unmarshaler {
	cfg := defaultConfig()
	cfg.applyOptions(opts...)
	return &unmarshaler{config: cfg}
}

// Unmarshal populates the struct pointed to by v with data from fields.
func (u *unmarshaler) Unmarshal(fields []message.Field, v interface{}) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr {
		return ErrNotPointer
	}
	if rv.IsNil() {
		return ErrNilPointer
	}

	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return ErrNotStruct
	}

	index := indexByDI(fields)
	return u.unmarshalStruct(index, rv)
}

// indexByDI groups fields by Data Identifier, preserving wire order within
// each group so repeated DIs unmarshal into a slice in the order they
// appeared.
func indexByDI(fields []message.Field) map[identifier.DI][]message.Field {
	index := make(map[identifier.DI][]message.Field, len(fields))
	for _, f := range fields {
		index[f.DI] = append(index[f.DI], f)
	}
	return index
}

// unmarshalStruct unmarshals indexed fields into a struct value.
func (u *unmarshaler) unmarshalStruct(index map[identifier.DI][]message.Field, rv reflect.Value) error {
	rt := rv.Type()

	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		fieldType := rt.Field(i)

		if !field.CanSet() && !(fieldType.Anonymous && field.Kind() == reflect.Struct) {
			continue
		}

		tag := fieldType.Tag.Get(u.config.tagName)
		if tag == "" {
			if field.Kind() == reflect.Struct && fieldType.Type != reflect.TypeOf(time.Time{}) {
				if err := u.unmarshalStruct(index, field); err != nil {
					return err
				}
			}
			continue
		}

		tagInfo, err := parseTag(tag)
		if err != nil {
			return fmt.Errorf("field %s: %w", fieldType.Name, err)
		}
		if !tagInfo.hasDI() {
			continue
		}

		matches := index[identifier.DI(tagInfo.di)]
		if len(matches) == 0 {
			continue
		}

		if err := u.unmarshalField(matches, field, tagInfo); err != nil {
			return fmt.Errorf("field %s: %w", fieldType.Name, err)
		}
	}

	return nil
}

// unmarshalField sets field from the matched message.Field(s) for its DI.
func (u *unmarshaler) unmarshalField(matches []message.Field, field reflect.Value, tagInfo *tagInfo) error {
	if field.Kind() == reflect.Slice {
		return u.unmarshalSlice(matches, field, tagInfo)
	}

	if field.Kind() == reflect.Ptr {
		ptr := reflect.New(field.Type().Elem())
		if err := u.setFieldValue(ptr.Elem(), matches[0].Raw, tagInfo); err != nil {
			return err
		}
		field.Set(ptr)
		return nil
	}

	return u.setFieldValue(field, matches[0].Raw, tagInfo)
}

// unmarshalSlice unmarshals every matched field into a slice element.
func (u *unmarshaler) unmarshalSlice(matches []message.Field, field reflect.Value, tagInfo *tagInfo) error {
	elemType := field.Type().Elem()
	slice := reflect.MakeSlice(field.Type(), len(matches), len(matches))

	for i, m := range matches {
		elem := slice.Index(i)

		if elemType.Kind() == reflect.Ptr {
			ptr := reflect.New(elemType.Elem())
			if err := u.setFieldValue(ptr.Elem(), m.Raw, tagInfo); err != nil {
				return err
			}
			elem.Set(ptr)
		} else if err := u.setFieldValue(elem, m.Raw, tagInfo); err != nil {
			return err
		}
	}

	field.Set(slice)
	return nil
}

// setFieldValue sets the field value from a string, performing type conversion.
func (u *unmarshaler) setFieldValue(field reflect.Value, value string, tagInfo *tagInfo) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
		return nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return u.setIntValue(field, value)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return u.setUintValue(field, value)

	case reflect.Float32, reflect.Float64:
		return u.setFloatValue(field, value)

	case reflect.Bool:
		return u.setBoolValue(field, value)

	case reflect.Struct:
		if field.Type() == reflect.TypeOf(time.Time{}) {
			return u.setTimeValue(field, value, tagInfo)
		}
		return fmt.Errorf("%w: %s", ErrUnsupportedType, field.Type().String())

	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedType, field.Type().String())
	}
}

func (u *unmarshaler) setIntValue(field reflect.Value, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	i, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fmt.Errorf("cannot parse %q as int: %w", value, err)
	}
	field.SetInt(i)
	return nil
}

func (u *unmarshaler) setUintValue(field reflect.Value, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	i, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return fmt.Errorf("cannot parse %q as uint: %w", value, err)
	}
	field.SetUint(i)
	return nil
}

func (u *unmarshaler) setFloatValue(field reflect.Value, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("cannot parse %q as float: %w", value, err)
	}
	field.SetFloat(f)
	return nil
}

// setBoolValue sets a boolean field value.
// Accepts: "true", "false", "1", "0", "Y", "N", "yes", "no" (case-insensitive).
func (u *unmarshaler) setBoolValue(field reflect.Value, value string) error {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" {
		return nil
	}
	switch value {
	case "true", "1", "y", "yes":
		field.SetBool(true)
	case "false", "0", "n", "no":
		field.SetBool(false)
	default:
		return fmt.Errorf("cannot parse %q as bool", value)
	}
	return nil
}

// setTimeValue sets a time.Time field value, falling back to the common
// ANSI MH10.8.2 date layouts when the configured format doesn't match.
func (u *unmarshaler) setTimeValue(field reflect.Value, value string, tagInfo *tagInfo) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	format := tagInfo.getTimeFormat(u.config.timeFormat)

	t, err := time.ParseInLocation(format, value, u.config.timeLocation)
	if err != nil {
		formats := []string{"060102", "0601021504", "20060102", "2006-01-02"}
		for _, f := range formats {
			if len(value) != len(f) {
				continue
			}
			if t, err = time.ParseInLocation(f, value, u.config.timeLocation); err == nil {
				break
			}
		}
		if err != nil {
			return fmt.Errorf("cannot parse %q as time with format %q: %w", value, format, err)
		}
	}

	field.Set(reflect.ValueOf(t))
	return nil
}
