package report

import (
	"reflect"
	"sync"
	"time"
	"unicode"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
	"github.com/modern-go/reflect2"
)

// Naming selects how untagged struct fields are named in output. Explicit json tags always win.
type Naming int

const (
	AsDeclared Naming = iota
	CamelCase
)

func (n Naming) String() string {
	if n == CamelCase {
		return "camelCase"
	}
	return "asDeclared"
}

// Format is the serialization contract of one report.
type Format struct {
	OmitNulls  bool
	DateLayout string // Go time layout; empty keeps RFC 3339
	Naming     Naming
	Indent     bool
}

var apis sync.Map // Format -> jsoniter.API

// Marshal renders v under f. Each distinct Format gets its own frozen json-iterator config,
// so the naming and date rules of one report never leak into another.
func (f Format) Marshal(v any) ([]byte, error) {
	return f.api().Marshal(v)
}

func (f Format) api() jsoniter.API {
	if cached, ok := apis.Load(f); ok {
		return cached.(jsoniter.API)
	}
	cfg := jsoniter.Config{
		EscapeHTML:             false,
		SortMapKeys:            true,
		ValidateJsonRawMessage: true,
	}
	if f.Indent {
		cfg.IndentionStep = 2
	}
	api := cfg.Froze()
	api.RegisterExtension(&formatExtension{format: f})
	actual, _ := apis.LoadOrStore(f, api)
	return actual.(jsoniter.API)
}

var timeType = reflect.TypeOf(time.Time{})

type formatExtension struct {
	jsoniter.DummyExtension
	format Format
}

func (ext *formatExtension) UpdateStructDescriptor(sd *jsoniter.StructDescriptor) {
	for _, binding := range sd.Fields {
		name := binding.Field.Name()
		if name == "" || !unicode.IsUpper([]rune(name)[0]) {
			continue
		}
		if ext.format.Naming == CamelCase && !explicitlyNamed(binding.Field.Tag()) {
			renamed := ToCamelCase(name)
			binding.ToNames = []string{renamed}
			binding.FromNames = []string{renamed}
		}
		if ext.format.OmitNulls && binding.Field.Type().IsNullable() {
			binding.Encoder = &nilSkippingEncoder{ValEncoder: binding.Encoder, typ: binding.Field.Type()}
		}
	}
}

func (ext *formatExtension) CreateEncoder(typ reflect2.Type) jsoniter.ValEncoder {
	if ext.format.DateLayout != "" && typ.Type1() == timeType {
		return &timeEncoder{layout: ext.format.DateLayout}
	}
	return nil
}

func explicitlyNamed(tag reflect.StructTag) bool {
	v, ok := tag.Lookup("json")
	if !ok {
		return false
	}
	for i := 0; i < len(v); i++ {
		if v[i] == ',' {
			return i > 0
		}
	}
	return v != ""
}

// nilSkippingEncoder reports nil pointer, slice and map fields as absent so the struct encoder skips them.
type nilSkippingEncoder struct {
	jsoniter.ValEncoder
	typ reflect2.Type
}

func (e *nilSkippingEncoder) IsEmbeddedPtrNil(ptr unsafe.Pointer) bool {
	return e.typ.UnsafeIsNil(ptr)
}

type timeEncoder struct {
	layout string
}

func (e *timeEncoder) IsEmpty(ptr unsafe.Pointer) bool {
	return (*time.Time)(ptr).IsZero()
}

func (e *timeEncoder) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	stream.WriteString((*time.Time)(ptr).Format(e.layout))
}

// ToCamelCase lowercases the leading run of capitals: "FullName" → "fullName", "ID" → "id", "URLPath" → "urlPath".
func ToCamelCase(s string) string {
	runes := []rune(s)
	if len(runes) == 0 || !unicode.IsUpper(runes[0]) {
		return s
	}
	for i := 0; i < len(runes); i++ {
		if i == 1 && !unicode.IsUpper(runes[i]) {
			break
		}
		if i > 0 && i+1 < len(runes) && !unicode.IsUpper(runes[i+1]) {
			break
		}
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}
