package gosms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseReplyBareSuccessString(t *testing.T) {
	r := ParseReply([]byte(`"202"`))
	assert.True(t, r.Success)
	assert.Equal(t, "202", r.Code)
	assert.Equal(t, "SMS Submitted Successfully", r.Message)
}

func TestParseReplyPlainTextCode(t *testing.T) {
	r := ParseReply([]byte(" 202 "))
	assert.True(t, r.Success)
	assert.Equal(t, "202", r.Code)
}

func TestParseReplyObjectWithNumericCode(t *testing.T) {
	r := ParseReply([]byte(`{"response_code": 1032}`))
	assert.False(t, r.Success)
	assert.Equal(t, "1032", r.Code)
	assert.Equal(t, "IP Not whitelisted, contact your provider", r.Message)
}

func TestParseReplyObjectWithExplicitMessage(t *testing.T) {
	r := ParseReply([]byte(`{"response_code": "1007", "error_message": "Top up your account"}`))
	assert.False(t, r.Success)
	assert.Equal(t, "1007", r.Code)
	assert.Equal(t, "Top up your account", r.Message)
}

func TestParseReplyCodeFieldFallback(t *testing.T) {
	r := ParseReply([]byte(`{"code": "1001", "message": "bad number"}`))
	assert.Equal(t, "1001", r.Code)
	assert.Equal(t, "bad number", r.Message)
}

func TestParseReplyFirstCodeFieldWins(t *testing.T) {
	r := ParseReply([]byte(`{"response_code": "202", "code": "1001"}`))
	assert.True(t, r.Success)
	assert.Equal(t, "202", r.Code)
}

func TestParseReplyUnknownCodeGetsGenericMessage(t *testing.T) {
	r := ParseReply([]byte(`{"response_code": 9999}`))
	assert.False(t, r.Success)
	assert.Equal(t, "Error code: 9999", r.Message)
}

func TestParseReplyKeepsRawPayload(t *testing.T) {
	body := `{"response_code": "202", "success_message": "ok"}`
	r := ParseReply([]byte(body))
	assert.Equal(t, body, r.Raw)
}

func TestParseReplyInsufficientBalance(t *testing.T) {
	r := ParseReply([]byte(`{"response_code": 1007}`))
	assert.False(t, r.Success)
	assert.Equal(t, "Balance Insufficient", r.Message)
}
