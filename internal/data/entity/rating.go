package entity

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// Rating keeps the rating exactly as the client sent it. Clients send
// either a JSON number (8) or a JSON string ("8"); both are stored and
// echoed back untouched.
type Rating []byte

// NewRating builds a numeric rating.
func NewRating(n int) Rating {
	return Rating(strconv.Itoa(n))
}

// RatingFromString converts a form or command line value. Numeric text
// becomes a JSON number, anything else a JSON string, and the empty
// string an absent rating.
func RatingFromString(s string) Rating {
	if s == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil && json.Valid([]byte(s)) {
		return Rating(s)
	}
	quoted, _ := json.Marshal(s)
	return Rating(quoted)
}

// Present reports whether the rating counts as supplied. Missing, null,
// empty string, zero and false are all treated as absent.
func (r Rating) Present() bool {
	raw := bytes.TrimSpace(r)
	if len(raw) == 0 {
		return false
	}

	switch string(raw) {
	case "null", "false", `""`:
		return false
	}

	if raw[0] == '-' || (raw[0] >= '0' && raw[0] <= '9') {
		n, err := strconv.ParseFloat(string(raw), 64)
		return err != nil || n != 0
	}

	return true
}

// String renders the rating for plain text output: strings unquoted,
// everything else verbatim.
func (r Rating) String() string {
	raw := bytes.TrimSpace(r)
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	return string(raw)
}

func (r Rating) MarshalJSON() ([]byte, error) {
	if len(r) == 0 {
		return []byte("null"), nil
	}
	if !json.Valid(r) {
		return nil, errors.New("entity.Rating: invalid JSON value " + strings.TrimSpace(string(r)))
	}
	return r, nil
}

func (r *Rating) UnmarshalJSON(data []byte) error {
	if r == nil {
		return errors.New("entity.Rating: UnmarshalJSON on nil pointer")
	}
	*r = append((*r)[0:0], data...)
	return nil
}
