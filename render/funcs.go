package render

import (
	"fmt"
	"reflect"
	"strconv"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"stylekit/styles"
)

// funcMap returns slim-sprig functions with style helpers on top. Helpers
// shadow sprig functions with the same name.
func (r *Renderer) funcMap() template.FuncMap {
	funcs := sprig.FuncMap()

	funcs["rem"] = rem
	funcs["px"] = px
	funcs["rgba"] = rgba
	funcs["hexColor"] = hexColor
	funcs["border"] = border
	funcs["borderWidth"] = borderWidth
	funcs["ellipsis"] = ellipsis
	funcs["props"] = props
	funcs["media"] = r.media
	funcs["mediaCustom"] = func(label string, args ...any) (string, error) {
		return text(styles.MediaCustom().Wrap(label, args...))
	}
	funcs["mediaHedron"] = func(label string, args ...any) (string, error) {
		return text(styles.MediaHedron().Wrap(label, args...))
	}
	funcs["noPadAndMargin"] = styles.NoPadAndMargin.String
	funcs["allDescendantNoPadAndMargin"] = styles.AllDescendantNoPadAndMargin.String
	return funcs
}

// text lets fragments flow into sprig string functions through pipelines.
func text(f styles.Fragment, err error) (string, error) {
	return string(f), err
}

// pixels accepts whatever template may hand over as a length: numbers of any
// kind from literals, variables and sprig arithmetic, or strings.
func pixels(v any) (float64, error) {
	switch t := v.(type) {
	case string:
		return styles.ParsePixelLength(t)
	case styles.Fragment:
		return styles.ParsePixelLength(string(t))
	case int:
		return styles.ParsePixelLength(t)
	case int64:
		return styles.ParsePixelLength(t)
	case float64:
		return styles.ParsePixelLength(t)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return styles.ParsePixelLength(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return styles.ParsePixelLength(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return styles.ParsePixelLength(rv.Float())
	}
	return 0, styles.NewError(styles.ErrorKindInvalidLengthFormat, "expected number or px string, got %T", v)
}

func rem(v any) (string, error) {
	n, err := pixels(v)
	if err != nil {
		return "", err
	}
	return styles.PixelsToRootRelative(n)
}

func px(v any) (float64, error) {
	return pixels(v)
}

func hexColor(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	_, ok = styles.ParseHexColor(s)
	return ok
}

func opacity(v any) (float64, error) {
	switch t := v.(type) {
	case bool, nil:
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err == nil {
			return f, nil
		}
	default:
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return float64(rv.Int()), nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return float64(rv.Uint()), nil
		case reflect.Float32, reflect.Float64:
			return rv.Float(), nil
		}
	}
	return 0, styles.NewError(styles.ErrorKindInvalidOpacity, "opacity must be a number, got %T", v)
}

func rgba(hex, alpha any) (string, error) {
	s, ok := hex.(string)
	if !ok {
		return "", styles.NewError(styles.ErrorKindInvalidColorFormat, "color must be a string, got %T", hex)
	}
	a, err := opacity(alpha)
	if err != nil {
		return "", err
	}
	return styles.HexToRGBA(s, a)
}

func position(v any) (styles.Position, error) {
	switch t := v.(type) {
	case string:
		return styles.Position(t), nil
	case styles.Position:
		return t, nil
	}
	return "", styles.NewError(styles.ErrorKindInvalidPosition, "position must be a string, got %T", v)
}

// borderWidth: width [position]
func borderWidth(width any, rest ...any) (string, error) {
	n, err := pixels(width)
	if err != nil {
		return "", err
	}
	pos := styles.PositionAll
	if len(rest) > 0 {
		if pos, err = position(rest[0]); err != nil {
			return "", err
		}
	}
	if len(rest) > 1 {
		return "", fmt.Errorf("borderWidth takes at most 2 arguments, got %d", len(rest)+1)
	}
	return text(styles.BorderWidthDeclaration(n, pos))
}

// border: width color [position [style]]
func border(width, color any, rest ...any) (string, error) {
	c, ok := color.(string)
	if !ok {
		return "", styles.NewError(styles.ErrorKindInvalidColorFormat, "color must be a string, got %T", color)
	}
	n, err := pixels(width)
	if err != nil {
		return "", err
	}

	pos, style := styles.PositionAll, ""
	if len(rest) > 0 {
		if pos, err = position(rest[0]); err != nil {
			return "", err
		}
	}
	if len(rest) > 1 {
		if style, ok = rest[1].(string); !ok {
			return "", styles.NewError(styles.ErrorKindInvalidStyleType, "border style must be a string, got %T", rest[1])
		}
	}
	if len(rest) > 2 {
		return "", fmt.Errorf("border takes at most 4 arguments, got %d", len(rest)+2)
	}
	return text(styles.BorderDeclaration(n, c, pos, style))
}

// ellipsis: width [isMax]
func ellipsis(width any, rest ...any) (string, error) {
	var w string
	switch t := width.(type) {
	case string:
		w = t
	case styles.Fragment:
		w = string(t)
	default:
		if _, err := pixels(width); err != nil {
			return "", err
		}
		w = fmt.Sprint(width)
	}

	isMax := false
	if len(rest) > 0 {
		b, ok := rest[0].(bool)
		if !ok {
			return "", styles.NewError(styles.ErrorKindInvalidFlagType, "max flag must be a boolean, got %T", rest[0])
		}
		isMax = b
	}
	if len(rest) > 1 {
		return "", fmt.Errorf("ellipsis takes at most 2 arguments, got %d", len(rest)+1)
	}
	return styles.EllipsisDeclaration(w, isMax).String(), nil
}

// props: properties allowList
func props(properties any, allowed any) (styles.Flags, error) {
	list, err := allowList(allowed)
	if err != nil {
		return nil, err
	}
	m, err := propsMap(properties)
	if err != nil {
		return nil, err
	}
	return styles.FilterAllowedProps(m, list), nil
}

func allowList(v any) ([]string, error) {
	switch t := v.(type) {
	case []string:
		return t, nil
	case nil:
	default:
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			break
		}
		list := make([]string, 0, rv.Len())
		for i := range rv.Len() {
			s, ok := rv.Index(i).Interface().(string)
			if !ok {
				return nil, styles.NewError(styles.ErrorKindInvalidAllowListType, "allow list element %d is %T, not a string", i, rv.Index(i).Interface())
			}
			list = append(list, s)
		}
		return list, nil
	}
	return nil, styles.NewError(styles.ErrorKindInvalidAllowListType, "allow list must be a list of strings, got %T", v)
}

func propsMap(v any) (map[string]any, error) {
	if m, ok := v.(map[string]any); ok {
		return m, nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String || rv.IsNil() {
		return nil, styles.NewError(styles.ErrorKindInvalidPropsType, "properties must be a map with string keys, got %T", v)
	}
	m := make(map[string]any, rv.Len())
	for it := rv.MapRange(); it.Next(); {
		m[it.Key().String()] = it.Value().Interface()
	}
	return m, nil
}

// media: set label args...
func (r *Renderer) media(set, label string, args ...any) (string, error) {
	h, ok := r.sets[set]
	if !ok {
		return "", styles.NewError(styles.ErrorKindUnknownBreakpoint, "no breakpoint set %q", set)
	}
	return text(h.Wrap(label, args...))
}
