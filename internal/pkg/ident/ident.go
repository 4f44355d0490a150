// Package ident holds the identifier type shared by backend payloads and persisted client state.
package ident

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
)

// ID is an opaque identifier. The backend emits integer ids, older client state
// holds millisecond timestamps and local records use UUIDs, so decoding accepts
// both JSON numbers and strings.
type ID string

func New() ID {
	return ID(uuid.NewString())
}

func (id ID) String() string { return string(id) }

func (id ID) IsZero() bool { return strings.TrimSpace(string(id)) == "" }

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}
