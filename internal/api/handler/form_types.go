package handler

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// The admin UI sends content as multipart forms (files attached) while API
// clients send JSON. These types accept both encodings of the same field.

// optBool is an optional boolean: "true"/"false" in forms, a bool or a
// quoted bool in JSON.
type optBool struct {
	set   bool
	value bool
}

func (b *optBool) UnmarshalParam(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	b.set, b.value = true, v
	return nil
}

func (b *optBool) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var s string
	if json.Unmarshal(data, &s) == nil {
		return b.UnmarshalParam(s)
	}
	var v bool
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	b.set, b.value = true, v
	return nil
}

func (b optBool) ptr() *bool {
	if !b.set {
		return nil
	}
	v := b.value
	return &v
}

// optInt is an optional integer.
type optInt struct {
	set   bool
	value int
}

func (n *optInt) UnmarshalParam(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	n.set, n.value = true, v
	return nil
}

func (n *optInt) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var s string
	if json.Unmarshal(data, &s) == nil {
		return n.UnmarshalParam(s)
	}
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.set, n.value = true, v
	return nil
}

func (n optInt) ptr() *int {
	if !n.set {
		return nil
	}
	v := n.value
	return &v
}

// stringList is a comma separated string in forms and either that or an
// array in JSON. A nil list means "not sent".
type stringList []string

func (l *stringList) UnmarshalParam(s string) error {
	*l = splitList(s)
	return nil
}

func (l *stringList) UnmarshalJSON(data []byte) error {
	var s string
	if json.Unmarshal(data, &s) == nil {
		*l = splitList(s)
		return nil
	}
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*l = splitList(strings.Join(items, ","))
	return nil
}

func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// stringMap is a JSON object, sent as a JSON string in forms.
type stringMap map[string]string

func (m *stringMap) UnmarshalParam(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var v map[string]string
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return err
	}
	*m = v
	return nil
}

func (m *stringMap) UnmarshalJSON(data []byte) error {
	var s string
	if json.Unmarshal(data, &s) == nil {
		return m.UnmarshalParam(s)
	}
	var v map[string]string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*m = v
	return nil
}

// optDate accepts YYYY-MM-DD or RFC 3339.
type optDate struct {
	t *time.Time
}

func (d *optDate) UnmarshalParam(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range []string{time.DateOnly, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			d.t = &t
			return nil
		}
	}
	return &time.ParseError{Layout: time.DateOnly, Value: s}
}

func (d *optDate) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return d.UnmarshalParam(s)
}

func optString(s string) *string {
	if s = strings.TrimSpace(s); s == "" {
		return nil
	}
	return &s
}
