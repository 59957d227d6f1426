package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mdKamrul-h/bulksms-proxy/pkg/config"
	"github.com/mdKamrul-h/bulksms-proxy/pkg/gosms"
	"go.uber.org/zap"
)

// maxBulkRecipients caps a single bulk request.
const maxBulkRecipients = 100

// maxRequestChars caps the estimated on-wire size of a bulk gateway call.
const maxRequestChars = 2000

// paramAllowance is the fixed estimate for api key, sender id and the
// other non-message query parameters.
const paramAllowance = 200

type SMSHandler struct {
	cfg config.Config
	gw  *gosms.Client
	log *zap.Logger
}

func NewSMSHandler(cfg config.Config, gw *gosms.Client, log *zap.Logger) *SMSHandler {
	return &SMSHandler{cfg: cfg, gw: gw, log: log}
}

type SendSMSRequest struct {
	Number   string `json:"number" binding:"required"`
	Message  string `json:"message" binding:"required"`
	SenderID string `json:"senderid"`
}

type BulkSMSRequest struct {
	Numbers  []string `json:"numbers" binding:"required"`
	Message  string   `json:"message" binding:"required"`
	SenderID string   `json:"senderid"`
}

func (h *SMSHandler) Balance(c *gin.Context) {
	body, err := h.gw.Balance(c.Request.Context())
	if err != nil {
		h.log.Error("Balance check failed", zap.Error(err))
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    rawPayload(body),
	})
}

func (h *SMSHandler) SendSMS(c *gin.Context) {
	var req SendSMSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, gosms.NewValidationError("number and message are required"))
		return
	}

	enc := gosms.Classify(req.Message)
	if gosms.MessageLength(req.Message) > enc.Limit {
		h.writeError(c, budgetError(enc))
		return
	}

	reply, err := h.gw.Send(c.Request.Context(), gosms.SendParams{
		Type:     enc.Type,
		Numbers:  gosms.NormalizeNumber(req.Number),
		SenderID: h.senderID(req.SenderID),
		Message:  req.Message,
	})
	if err != nil {
		h.log.Error("SMS send failed", zap.Error(err))
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": reply.Success,
		"code":    reply.Code,
		"message": reply.Message,
		"data":    gin.H{"raw": reply.Raw},
	})
}

func (h *SMSHandler) SendBulkSMS(c *gin.Context) {
	var req BulkSMSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, gosms.NewValidationError("numbers and message are required"))
		return
	}

	if len(req.Numbers) == 0 {
		h.writeError(c, gosms.NewValidationError("numbers list cannot be empty"))
		return
	}
	if len(req.Numbers) > maxBulkRecipients {
		h.writeError(c, gosms.NewValidationError(
			"Too many recipients: got %d, maximum is %d", len(req.Numbers), maxBulkRecipients))
		return
	}

	valid := make([]string, 0, len(req.Numbers))
	for _, raw := range req.Numbers {
		if n, ok := gosms.NormalizeBulkNumber(raw); ok {
			valid = append(valid, n)
		}
	}
	if len(valid) == 0 {
		h.writeError(c, gosms.NewValidationError("No valid phone numbers"))
		return
	}

	enc := gosms.Classify(req.Message)
	msgLen := gosms.MessageLength(req.Message)
	if msgLen > enc.Limit {
		h.writeError(c, budgetError(enc))
		return
	}

	// Unicode text roughly triples once percent-escaped on the wire.
	joined := strings.Join(valid, ",")
	weight := 1
	if enc.Unicode {
		weight = 3
	}
	if len(joined)+msgLen*weight+paramAllowance > maxRequestChars {
		h.writeError(c, gosms.NewValidationError(
			"Request too large: reduce the number of recipients or shorten the message"))
		return
	}

	reply, err := h.gw.Send(c.Request.Context(), gosms.SendParams{
		Type:     enc.Type,
		Numbers:  joined,
		SenderID: h.senderID(req.SenderID),
		Message:  req.Message,
	})
	if err != nil {
		h.log.Error("Bulk SMS send failed", zap.Error(err), zap.Int("recipients", len(valid)))
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": reply.Success,
		"code":    reply.Code,
		"message": reply.Message,
		"data": gin.H{
			"raw":       reply.Raw,
			"sent_to":   len(valid),
			"requested": len(req.Numbers),
			"invalid":   len(req.Numbers) - len(valid),
		},
	})
}

func (h *SMSHandler) senderID(requested string) string {
	if requested != "" {
		return requested
	}
	return h.cfg.SenderID
}

// writeError maps the error taxonomy onto HTTP statuses: validation
// failures are the caller's fault, everything else is a transport fault.
func (h *SMSHandler) writeError(c *gin.Context, err error) {
	var verr *gosms.ValidationError
	status := http.StatusInternalServerError
	if errors.As(err, &verr) {
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{
		"success": false,
		"error":   err.Error(),
	})
}

func budgetError(enc gosms.Encoding) *gosms.ValidationError {
	return gosms.NewValidationError(
		"Message exceeds %d characters allowed for %s messages", enc.Limit, enc.Type)
}

// rawPayload passes the gateway body through as parsed JSON when possible,
// otherwise as a trimmed string.
func rawPayload(body []byte) interface{} {
	var data interface{}
	if err := json.Unmarshal(body, &data); err != nil {
		return strings.TrimSpace(string(body))
	}
	return data
}
