package resolver

import (
	"encoding/json"

	"github.com/concave-dev/gns3util/cmd/gns3util/display"
	"github.com/tidwall/gjson"
)

// item is one entry of a collection: its fields in server order plus the
// parsed values for lookups.
type item struct {
	fields []display.Field
	values map[string]gjson.Result
}

func newItem(obj gjson.Result) item {
	it := item{values: make(map[string]gjson.Result)}
	obj.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		it.fields = append(it.fields, display.Field{Key: name, Value: formatValue(value)})
		it.values[name] = value
		return true
	})
	return it
}

// value returns the field as text and whether it was present.
func (it item) value(field string) (string, bool) {
	v, ok := it.values[field]
	if !ok || v.Type == gjson.Null {
		return "", false
	}
	return v.String(), true
}

// valueOr returns the field as text, or fallback when it is missing.
func (it item) valueOr(field, fallback string) string {
	if v, ok := it.value(field); ok {
		return v
	}
	return fallback
}

// parseItems reads a collection document. Arrays yield their object
// elements; a lone object is a one-item collection; anything else is empty.
func parseItems(raw json.RawMessage) []item {
	doc := gjson.ParseBytes(raw)
	if doc.IsObject() {
		return []item{newItem(doc)}
	}
	if !doc.IsArray() {
		return nil
	}

	var items []item
	doc.ForEach(func(_, value gjson.Result) bool {
		if value.IsObject() {
			items = append(items, newItem(value))
		}
		return true
	})
	return items
}

// formatValue renders strings without quotes and everything else as JSON.
func formatValue(v gjson.Result) string {
	if v.Type == gjson.String {
		return v.String()
	}
	return v.Raw
}
