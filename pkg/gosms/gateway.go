package gosms

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mdKamrul-h/bulksms-proxy/metrics"
	"go.uber.org/zap"
)

// defaultTimeout bounds every gateway call. There is no retry: a timed-out
// call surfaces as a TransportError and the caller decides what to do.
const defaultTimeout = 30 * time.Second

const (
	sendEndpoint    = "/smsapi"
	balanceEndpoint = "/getBalanceApi"
)

// Client talks to the bulk-SMS gateway over HTTP. All state is read-only
// after construction, so a single Client is safe for concurrent use.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     *zap.Logger
}

func NewClient(baseURL, apiKey string, log *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: defaultTimeout},
		log:     log,
	}
}

// SendParams carries one outbound send. Numbers holds a single normalized
// number or a comma-separated list for bulk sends.
type SendParams struct {
	Type     string
	Numbers  string
	SenderID string
	Message  string
}

// Balance fetches the account balance and returns the raw gateway payload.
func (c *Client) Balance(ctx context.Context) ([]byte, error) {
	q := url.Values{}
	q.Set("api_key", c.apiKey)
	return c.get(ctx, balanceEndpoint, q)
}

// Send submits one SMS request and interprets the gateway's reply. A
// gateway-reported failure code comes back inside the Reply, not as err.
func (c *Client) Send(ctx context.Context, p SendParams) (Reply, error) {
	q := url.Values{}
	q.Set("api_key", c.apiKey)
	q.Set("type", p.Type)
	q.Set("number", p.Numbers)
	q.Set("senderid", p.SenderID)
	q.Set("message", p.Message)

	body, err := c.get(ctx, sendEndpoint, q)
	if err != nil {
		return Reply{}, err
	}

	reply := ParseReply(body)
	metrics.SmsSubmittedTotal.WithLabelValues(p.Type, reply.Code).Inc()
	c.log.Info("Gateway reply",
		zap.String("code", reply.Code),
		zap.Bool("success", reply.Success),
		zap.String("type", p.Type),
	)
	return reply, nil
}

func (c *Client) get(ctx context.Context, endpoint string, q url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, &TransportError{Msg: "Failed to build gateway request", Err: err}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.GatewayCallDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.GatewayFailureTotal.WithLabelValues(endpoint).Inc()
		msg := ClassifyNetError(err)
		c.log.Error("Gateway call failed",
			zap.String("endpoint", endpoint),
			zap.String("fault", msg),
			zap.Error(err),
		)
		return nil, &TransportError{Msg: msg, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.GatewayFailureTotal.WithLabelValues(endpoint).Inc()
		return nil, &TransportError{Msg: ClassifyNetError(err), Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.GatewayFailureTotal.WithLabelValues(endpoint).Inc()
		c.log.Error("Gateway returned non-2xx status",
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode),
		)
		return nil, &TransportError{
			Msg: fmt.Sprintf("SMS provider responded with status %d %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
		}
	}

	metrics.GatewaySuccessTotal.WithLabelValues(endpoint).Inc()
	return body, nil
}
