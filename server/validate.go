package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
)

var ErrEmptyBody = errors.New("request body must be a json array")

// decodeRecords decodes a json array from the request body into out and validates every element
func (s Server) decodeRecords(r *http.Request, out any) error {
	if r.Body == nil {
		return ErrEmptyBody
	}

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}

	records := reflect.ValueOf(out).Elem()
	if records.Kind() != reflect.Slice {
		return ErrEmptyBody
	}
	if records.IsNil() {
		return ErrEmptyBody
	}

	for i := 0; i < records.Len(); i++ {
		if err := s.validate.Struct(records.Index(i).Interface()); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}

	return nil
}
