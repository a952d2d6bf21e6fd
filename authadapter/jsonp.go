package authadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// UnwrapJSONP decodes the JSON payload of a callback-wrapped response such
// as `callback( {"openid":"..."} );` into v. The payload is the text
// strictly between the first '(' and the first ')'. Numbers decode as
// json.Number so large ids keep every digit.
func UnwrapJSONP(data string, v any) error {
	return unwrapJSONP("", data, v)
}

func unwrapJSONP(adapter, data string, v any) error {
	start := strings.IndexByte(data, '(')
	end := strings.IndexByte(data, ')')
	if start == -1 || end == -1 || end < start {
		return invalidAuth(adapter)
	}

	dec := json.NewDecoder(strings.NewReader(data[start+1 : end]))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("parse response data: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("parse response data: unexpected data after JSON value")
	}
	return nil
}
