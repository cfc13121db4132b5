package hermes

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
)

const (
	// SubjectAnalysisRequest carries request/reply analysis calls.
	SubjectAnalysisRequest = "betterfriend.analysis.request"
	// SubjectAnalysisCompleted is published after every served analysis.
	SubjectAnalysisCompleted = "betterfriend.analysis.completed"
	// SubjectRegistered announces the service on startup.
	SubjectRegistered = "swarm.agent.betterfriend.registered"

	queueGroup = "betterfriend"
)

// AnalysisRequest is the payload of SubjectAnalysisRequest.
type AnalysisRequest struct {
	Text string `json:"text"`
	Goal string `json:"goal"`
}

// AnalysisCompleted is the SubjectAnalysisCompleted event. It carries counts
// only, never transcript text.
type AnalysisCompleted struct {
	ID             string  `json:"id"`
	Goal           string  `json:"goal"`
	Source         string  `json:"source"`
	Transport      string  `json:"transport"`
	Messages       int     `json:"messages"`
	SentimentScore float64 `json:"sentiment_score"`
	SentimentLabel string  `json:"sentiment_label"`
	Bids           int     `json:"bids"`
	TurningToward  int     `json:"turning_toward"`
	TurningAway    int     `json:"turning_away"`
	TurningAgainst int     `json:"turning_against"`
	Criticism      int     `json:"criticism"`
	Defensiveness  int     `json:"defensiveness"`
	Stonewalling   int     `json:"stonewalling"`
	RepairAttempts int     `json:"repair_attempts"`
	Timestamp      string  `json:"timestamp"`
}

// ErrorReply is sent back when a request handler fails.
type ErrorReply struct {
	Error string `json:"error"`
}

// Handler answers a request. The returned value is JSON-encoded as the reply;
// an error is sent as ErrorReply.
type Handler func(ctx context.Context, subject string, data []byte) (any, error)

type Client struct {
	conn   *nats.Conn
	subs   []*nats.Subscription
	logger *slog.Logger
}

func NewClient(ctx context.Context, url, token string, logger *slog.Logger) (*Client, error) {
	opts := []nats.Option{
		nats.Name("betterfriend"),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(60),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			logger.Info("nats reconnected")
		}),
	}
	if token != "" {
		opts = append(opts, nats.Token(token))
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	return &Client{conn: nc, logger: logger}, nil
}

func (c *Client) Publish(subject string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	return c.conn.Publish(subject, payload)
}

func (c *Client) Subscribe(subject string, handler func(subject string, data []byte)) error {
	sub, err := c.conn.Subscribe(subject, func(msg *nats.Msg) {
		handler(msg.Subject, msg.Data)
	})
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", subject, err)
	}
	c.subs = append(c.subs, sub)
	c.logger.Info("subscribed", "subject", subject)
	return nil
}

// Serve answers requests on subject within a queue group, so several
// instances share the load. Each request gets its own context bounded by
// timeout.
func (c *Client) Serve(subject string, timeout time.Duration, handler Handler) error {
	sub, err := c.conn.QueueSubscribe(subject, queueGroup, func(msg *nats.Msg) {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		reply, err := handler(ctx, msg.Subject, msg.Data)
		if msg.Reply == "" {
			return
		}
		payload, err := encodeReply(reply, err)
		if err != nil {
			c.logger.Error("failed to encode reply", "subject", msg.Subject, "error", err)
			return
		}
		if err := msg.Respond(payload); err != nil {
			c.logger.Warn("failed to send reply", "subject", msg.Subject, "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("queue subscribe %s: %w", subject, err)
	}
	c.subs = append(c.subs, sub)
	c.logger.Info("serving", "subject", subject, "queue", queueGroup)
	return nil
}

// Request sends a request and decodes the reply into out. An ErrorReply is
// returned as an error.
func (c *Client) Request(ctx context.Context, subject string, data, out any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	msg, err := c.conn.RequestWithContext(ctx, subject, payload)
	if err != nil {
		return fmt.Errorf("request %s: %w", subject, err)
	}
	return decodeReply(msg.Data, out)
}

func encodeReply(reply any, handlerErr error) ([]byte, error) {
	if handlerErr != nil {
		return json.Marshal(ErrorReply{Error: handlerErr.Error()})
	}
	return json.Marshal(reply)
}

func decodeReply(data []byte, out any) error {
	var e ErrorReply
	if json.Unmarshal(data, &e) == nil && e.Error != "" {
		return fmt.Errorf("remote handler: %s", e.Error)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("unmarshal reply: %w", err)
	}
	return nil
}

func (c *Client) Close() {
	for _, sub := range c.subs {
		_ = sub.Unsubscribe()
	}
	c.conn.Close()
}
