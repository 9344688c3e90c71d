package forms

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Decode builds a message from posted field values keyed by json field name.
// Unknown fields are ignored.
func Decode[T Message](values map[string]string) (T, error) {
	var msg T
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           &msg,
	})
	if err != nil {
		return msg, err
	}
	if err := decoder.Decode(values); err != nil {
		return msg, fmt.Errorf("forms: decode %T: %w", msg, err)
	}
	return msg, nil
}

// Values flattens a posted form, keeping the first value of each field.
func Values(posted url.Values) map[string]string {
	out := make(map[string]string, len(posted))
	for key, list := range posted {
		if len(list) == 0 {
			continue
		}
		out[key] = strings.TrimSpace(list[0])
	}
	return out
}
