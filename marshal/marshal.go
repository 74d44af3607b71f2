package marshal

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/max-scw/dmc-service/identifier"
	"github.com/max-scw/dmc-service/message"
)

// Marshal errors.
var (
	// ErrNotStructValue indicates the value is not a struct.
	ErrNotStructValue = errors.New("value must be a struct or pointer to struct")

	// ErrNilPointer indicates a nil pointer was passed.
	ErrNilPointer = errors.New("nil pointer")

	// ErrUnsupportedType indicates a Go type the marshaler cannot convert.
	ErrUnsupportedType = errors.New("unsupported type")
)

// Marshaler converts Go structs into the flat []message.Field slice that
// service.BuildMessage and build.Build consume.
type Marshaler interface {
	// Marshal emits one message.Field per tagged field of v. The struct
	// fields should be tagged with dmc tags naming the Data Identifier.
	//
	// Example:
	//   type Item struct {
	//       Serial   string    `dmc:"S"`
	//       Quantity int       `dmc:"Q"`
	//       BestBy   time.Time `dmc:"16D,format=060102"`
	//   }
	//
	//   item := Item{Serial: "12345", Quantity: 10}
	//   fields, err := marshaler.Marshal(item)
	Marshal(v interface{}) ([]message.Field, error)
}

// marshaler is the concrete implementation of Marshaler.
type marshaler struct {
	config *marshalConfig
}

// NewMarshaler creates a new Marshaler with the given options.
func NewMarshaler(opts ...Option) Marshaler {
	cfg := defaultConfig()
	cfg.applyOptions(opts...)
	return &marshaler{config: cfg}
}

// Marshal emits one message.Field per tagged field of v.
func (m *marshaler) Marshal(v interface{}) ([]message.Field, error) {
	rv, err := m.getStructValue(v)
	if err != nil {
		return nil, err
	}

	var fields []message.Field
	if err := m.marshalStruct(rv, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// getStructValue extracts the reflect.Value of a struct from an interface.
func (m *marshaler) getStructValue(v interface{}) (reflect.Value, error) {
	rv := reflect.ValueOf(v)

	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return reflect.Value{}, ErrNilPointer
		}
		rv = rv.Elem()
	}

	if rv.Kind() != reflect.Struct {
		return reflect.Value{}, ErrNotStructValue
	}

	return rv, nil
}

// marshalStruct appends one message.Field per tagged field of rv to out.
func (m *marshaler) marshalStruct(rv reflect.Value, out *[]message.Field) error {
	rt := rv.Type()

	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		fieldType := rt.Field(i)

		if !fieldType.IsExported() && !(fieldType.Anonymous && field.Kind() == reflect.Struct) {
			continue
		}

		tag := fieldType.Tag.Get(m.config.tagName)
		if tag == "" {
			// An untagged nested struct is a grouping device, not a
			// Data Identifier: flatten its fields into the same list.
			if field.Kind() == reflect.Struct && fieldType.Type != reflect.TypeOf(time.Time{}) {
				if err := m.marshalStruct(field, out); err != nil {
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

		if tagInfo.shouldOmit(m.config.omitEmpty) && isZeroValue(field) {
			continue
		}

		if err := m.marshalField(field, tagInfo, out); err != nil {
			return fmt.Errorf("field %s: %w", fieldType.Name, err)
		}
	}

	return nil
}

// marshalField appends the message.Field(s) produced by a single tagged
// struct field to out.
func (m *marshaler) marshalField(field reflect.Value, tagInfo *tagInfo, out *[]message.Field) error {
	// Handle slice types: one message.Field per element, same Data
	// Identifier, in ANSI MH10.8.2's repeated-DI style.
	if field.Kind() == reflect.Slice {
		return m.marshalSlice(field, tagInfo, out)
	}

	if field.Kind() == reflect.Ptr {
		if field.IsNil() {
			return nil
		}
		field = field.Elem()
	}

	value, err := m.fieldToString(field, tagInfo)
	if err != nil {
		return err
	}

	if value == "" && tagInfo.shouldOmit(m.config.omitEmpty) {
		return nil
	}

	*out = append(*out, message.Field{
		DI:    identifier.DI(tagInfo.di),
		Raw:   value,
		Typed: fieldToValue(field, value),
		Valid: true,
	})
	return nil
}

// marshalSlice marshals a slice field into repeated message.Field entries.
func (m *marshaler) marshalSlice(field reflect.Value, tagInfo *tagInfo, out *[]message.Field) error {
	for i := 0; i < field.Len(); i++ {
		elem := field.Index(i)

		if elem.Kind() == reflect.Ptr {
			if elem.IsNil() {
				continue
			}
			elem = elem.Elem()
		}

		value, err := m.fieldToString(elem, tagInfo)
		if err != nil {
			return err
		}
		if value == "" {
			continue
		}

		*out = append(*out, message.Field{
			DI:    identifier.DI(tagInfo.di),
			Raw:   value,
			Typed: fieldToValue(elem, value),
			Valid: true,
		})
	}

	return nil
}

// fieldToString converts a field value to its wire string representation.
func (m *marshaler) fieldToString(field reflect.Value, tagInfo *tagInfo) (string, error) {
	if field.Kind() == reflect.Ptr {
		if field.IsNil() {
			return "", nil
		}
		field = field.Elem()
	}

	switch field.Kind() {
	case reflect.String:
		return field.String(), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(field.Int(), 10), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(field.Uint(), 10), nil

	case reflect.Float32:
		return strconv.FormatFloat(field.Float(), 'f', -1, 32), nil

	case reflect.Float64:
		return strconv.FormatFloat(field.Float(), 'f', -1, 64), nil

	case reflect.Bool:
		if field.Bool() {
			return "1", nil
		}
		return "0", nil

	case reflect.Struct:
		if field.Type() == reflect.TypeOf(time.Time{}) {
			return m.timeToString(field.Interface().(time.Time), tagInfo), nil
		}
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, field.Type().String())

	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, field.Type().String())
	}
}

// timeToString formats a time.Time value as a string.
func (m *marshaler) timeToString(t time.Time, tagInfo *tagInfo) string {
	if t.IsZero() {
		return ""
	}

	format := tagInfo.getTimeFormat(m.config.timeFormat)
	return t.In(m.config.timeLocation).Format(format)
}

// fieldToValue mirrors fieldToString into the cast Value a parsed field of
// the same Go type would carry after the validator's casting step
// (validate.WithCast), so a built message round-trips without re-parsing.
func fieldToValue(field reflect.Value, raw string) message.Value {
	switch field.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return message.IntValue(field.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return message.IntValue(int64(field.Uint()))
	case reflect.Float32, reflect.Float64:
		return message.RealValue(field.Float())
	case reflect.Struct:
		if field.Type() == reflect.TypeOf(time.Time{}) {
			return message.TimestampValue(field.Interface().(time.Time))
		}
	}
	return message.StringValue(raw)
}

// isZeroValue checks if a value is the zero value for its type.
func isZeroValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Ptr:
		return v.IsNil()
	case reflect.Struct:
		if v.Type() == reflect.TypeOf(time.Time{}) {
			return v.Interface().(time.Time).IsZero()
		}
		for i := 0; i < v.NumField(); i++ {
			if !isZeroValue(v.Field(i)) {
				return false
			}
		}
		return true
	}
	return false
}
