package gosms

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// successCode is the only gateway code that counts as a successful submit.
const successCode = "202"

// Reply is the gateway's answer reduced to one shape, whether the gateway
// returned a bare status string or a structured object.
type Reply struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Raw     string `json:"raw"`
}

var codeMessages = map[string]string{
	"202":  "SMS Submitted Successfully",
	"1001": "Invalid Number",
	"1002": "Sender ID not correct or sender ID is disabled",
	"1003": "Required fields are missing",
	"1005": "Internal Error",
	"1007": "Balance Insufficient",
	"1011": "User ID not found",
	"1032": "IP Not whitelisted, contact your provider",
}

// ParseReply resolves the gateway's polymorphic payload once, at the
// boundary. Object payloads carry the code in response_code or code and a
// message in error_message or message, first match wins; any other payload
// is treated as a bare code string.
func ParseReply(body []byte) Reply {
	code := ""
	message := ""

	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err == nil && payload != nil {
		code = fieldString(payload, "response_code", "code")
		message = fieldString(payload, "error_message", "message")
	} else {
		code = bareCode(body)
	}

	if message == "" {
		message = codeMessage(code)
	}

	return Reply{
		Success: code == successCode,
		Code:    code,
		Message: message,
		Raw:     string(body),
	}
}

// bareCode handles non-object payloads: a JSON string, a JSON number, or
// plain text all reduce to their trimmed string form.
func bareCode(body []byte) string {
	var s string
	if err := json.Unmarshal(body, &s); err == nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(string(body))
}

func fieldString(payload map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		v, ok := payload[k]
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case string:
			return strings.TrimSpace(t)
		case float64:
			return strconv.FormatFloat(t, 'f', -1, 64)
		default:
			return fmt.Sprintf("%v", t)
		}
	}
	return ""
}

func codeMessage(code string) string {
	if m, ok := codeMessages[code]; ok {
		return m
	}
	return fmt.Sprintf("Error code: %s", code)
}
