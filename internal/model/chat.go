package model

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ChatRequest is the body accepted by POST /api/chat.  Both fields are
// optional and may hold any JSON value; see Value for how each is rendered
// into the reply.
type ChatRequest struct {
	Message  Value `json:"message"`
	Language Value `json:"language"`
}

// UnmarshalJSON accepts any JSON object or array.  An array carries no named
// fields, so it leaves the request empty.  Keys match exactly: "Message" is
// not "message".  A repeated key keeps its last value.
func (r *ChatRequest) UnmarshalJSON(b []byte) error {
	*r = ChatRequest{}
	if t := bytes.TrimSpace(b); len(t) > 0 && t[0] == '[' {
		return nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return err
	}
	if raw, ok := fields["message"]; ok {
		r.Message = Value{raw: raw, set: true}
	}
	if raw, ok := fields["language"]; ok {
		r.Language = Value{raw: raw, set: true}
	}
	return nil
}

// Reply builds the echo reply for the request.
func (r ChatRequest) Reply() ChatResponse {
	return ChatResponse{Reply: "You said (" + r.Language.String() + "): " + r.Message.String()}
}

// ChatResponse is returned by POST /api/chat.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// Value holds a raw JSON value that may be absent from the request.
// String renders it the way a JavaScript template literal would, so an
// absent value becomes "undefined".
type Value struct {
	raw json.RawMessage
	set bool
}

// UnmarshalJSON records the raw value, including a literal null.
func (v *Value) UnmarshalJSON(b []byte) error {
	v.raw = append(v.raw[:0], b...)
	v.set = true
	return nil
}

// Present reports whether the field appeared in the request body.
func (v Value) Present() bool { return v.set }

func (v Value) String() string {
	if !v.set {
		return "undefined"
	}
	return render(v.raw, false)
}

// render converts a raw JSON value to text.  Inside an array, null renders
// as the empty string.
func render(raw json.RawMessage, inArray bool) string {
	t := bytes.TrimSpace(raw)
	if len(t) == 0 {
		return ""
	}
	switch t[0] {
	case 'n':
		if inArray {
			return ""
		}
		return "null"
	case 't', 'f':
		return string(t)
	case '"':
		var s string
		if err := json.Unmarshal(t, &s); err != nil {
			return string(t)
		}
		return s
	case '{':
		return "[object Object]"
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(t, &items); err != nil {
			return string(t)
		}
		parts := make([]string, len(items))
		for i, it := range items {
			parts[i] = render(it, true)
		}
		return strings.Join(parts, ",")
	default:
		f, err := strconv.ParseFloat(string(t), 64)
		if err != nil && !math.IsInf(f, 0) {
			return string(t)
		}
		return formatNumber(f)
	}
}

// formatNumber prints a float the way number-to-string conversion does in
// JavaScript: plain decimals between 1e-6 and 1e21, exponent form outside.
func formatNumber(f float64) string {
	switch {
	case f == 0:
		return "0"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	if abs := math.Abs(f); abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	s := strconv.FormatFloat(f, 'e', -1, 64) // e.g. 1e-07, 1.5e+21
	mant, exp, _ := strings.Cut(s, "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	return mant + "e" + sign + digits
}
