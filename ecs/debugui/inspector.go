package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
)

// Inspector shows every value published to a Monitor as a read-only tree.
type Inspector struct {
	monitor *Monitor
}

func NewInspector(monitor *Monitor) *Inspector {
	return &Inspector{monitor: monitor}
}

func (in *Inspector) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(360, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 300), imgui.CondOnce)

	if !imgui.BeginV("Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	names := in.monitor.Names()
	if len(names) == 0 {
		imgui.Text("Nothing published")
	}

	for _, name := range names {
		value, _ := in.monitor.Value(name)
		if imgui.TreeNodeStr(name) {
			in.renderValue(reflect.ValueOf(value))
			imgui.TreePop()
		}
	}

	imgui.End()
}

func (in *Inspector) renderValue(val reflect.Value) {
	if val.Kind() == reflect.Pointer && !val.IsNil() {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		imgui.Text(FormatValue(val))
		return
	}

	for _, field := range globalReflectionCache.Fields(val.Type()) {
		in.renderField(field.Name, val.Field(field.Index))
	}
}

func (in *Inspector) renderField(name string, val reflect.Value) {
	if val.Kind() == reflect.Pointer && !val.IsNil() {
		val = val.Elem()
	}

	switch val.Kind() {
	case reflect.Struct:
		if imgui.TreeNodeStr(name) {
			in.renderValue(val)
			imgui.TreePop()
		}

	case reflect.Array, reflect.Slice:
		if imgui.TreeNodeStr(fmt.Sprintf("%s [%d]", name, val.Len())) {
			for i := range val.Len() {
				in.renderField(fmt.Sprintf("[%d]", i), val.Index(i))
			}
			imgui.TreePop()
		}

	default:
		imgui.Text(fmt.Sprintf("%s: %s", name, FormatValue(val)))
	}
}

// FormatValue renders a leaf value for display. Values implementing
// fmt.Stringer are shown through String.
func FormatValue(val reflect.Value) string {
	if !val.IsValid() {
		return "<invalid>"
	}

	switch val.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		if val.IsNil() {
			return "nil"
		}
	}

	if val.CanInterface() {
		if s, ok := val.Interface().(fmt.Stringer); ok {
			return s.String()
		}
	}

	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fmt.Sprintf("%d", val.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return fmt.Sprintf("%d", val.Uint())
	case reflect.Float32, reflect.Float64:
		return fmt.Sprintf("%.2f", val.Float())
	case reflect.Map:
		return fmt.Sprintf("map[%d items]", val.Len())
	case reflect.Slice:
		return fmt.Sprintf("[%d items]", val.Len())
	}

	if val.CanInterface() {
		return fmt.Sprintf("%v", val.Interface())
	}
	return val.Kind().String()
}
