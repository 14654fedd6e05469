package props

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/ghetzel/go-stockutil/stringutil"
	"github.com/ghetzel/go-stockutil/typeutil"
)

// UnmarshalMap copies values from data into the fields of the struct pointed
// to by target. Fields are matched by their `key:"name[,omitempty]"` tag, or
// by field name when untagged; a tag of "-" skips the field. Values are
// converted to the field's type when the types differ.
func UnmarshalMap(data map[string]interface{}, target interface{}) error {
	if target == nil {
		return fmt.Errorf("Cannot unmarshal map into non-existent target")
	}

	ptr := reflect.ValueOf(target)

	if ptr.Kind() != reflect.Ptr || ptr.IsNil() {
		return fmt.Errorf("Unmarshal map only accepts a pointer to a struct")
	}

	targetStruct := ptr.Elem()

	if targetStruct.Kind() != reflect.Struct {
		return fmt.Errorf("Cannot unmarshal map into type %T", target)
	}

	for i := 0; i < targetStruct.NumField(); i++ {
		var specParts []string

		field := targetStruct.Type().Field(i)
		value := targetStruct.Field(i)

		if keyTagSpec := field.Tag.Get(`key`); keyTagSpec != `` {
			specParts = strings.Split(keyTagSpec, `,`)
		} else {
			specParts = []string{field.Name}
		}

		if specParts[0] == `-` || !value.CanSet() {
			continue
		}

		dataValue, ok := data[specParts[0]]

		if !ok {
			continue
		}

		skipField := false

		for _, tagFlag := range specParts[1:] {
			switch tagFlag {
			case `omitempty`:
				if typeutil.IsZero(dataValue) {
					skipField = true
				}
			}
		}

		if skipField || dataValue == nil {
			continue
		}

		dv := reflect.ValueOf(dataValue)

		if !dv.Type().AssignableTo(value.Type()) {
			converted, err := convertValue(dv, value.Type())

			if err != nil {
				return fmt.Errorf("Cannot convert '%v' (type %T) to field %s type %s", dataValue, dataValue, field.Name, field.Type.String())
			}

			dv = converted
		}

		value.Set(dv)
	}

	return nil
}

func convertValue(dv reflect.Value, to reflect.Type) (reflect.Value, error) {
	switch dv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Struct, reflect.Array, reflect.Func, reflect.Chan:
		return dv, fmt.Errorf("unsupported source kind %v", dv.Kind())
	}

	// numbers and strings go through their textual form; reflect would turn
	// an int into a rune
	if dv.Kind() != reflect.String && to.Kind() != reflect.String && dv.Type().ConvertibleTo(to) {
		return dv.Convert(to), nil
	}

	converted, err := stringutil.ConvertTo(kindToConvertType(to.Kind()), fmt.Sprint(dv.Interface()))

	if err != nil {
		return dv, err
	} else if converted == nil {
		return dv, fmt.Errorf("no value")
	}

	cv := reflect.ValueOf(converted)

	if !cv.Type().ConvertibleTo(to) {
		return dv, fmt.Errorf("cannot convert %T to %v", converted, to)
	}

	return cv.Convert(to), nil
}

func kindToConvertType(kind reflect.Kind) stringutil.ConvertType {
	switch kind {
	case reflect.Bool:
		return stringutil.Boolean
	case reflect.Float32, reflect.Float64:
		return stringutil.Float
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return stringutil.Integer
	default:
		return stringutil.String
	}
}
