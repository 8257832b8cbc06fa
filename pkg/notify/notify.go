// Package notify delivers the decision-form submission to an external
// webhook. Delivery is fire-and-forget: failures are logged at debug level
// and never surfaced to the user.
package notify

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/romdo/go-debounce"

	"github.com/metaclub/clubos-pitch/pkg/logger"
)

// Submission is the JSON body posted to the webhook.
type Submission struct {
	Name      string `json:"name"`
	Timezone  string `json:"timezone"`
	Decision  string `json:"decision"`
	Message   string `json:"message,omitempty"`
	Source    string `json:"source"`
	Timestamp string `json:"timestamp"`
}

// Notifier posts submissions to a configured webhook URL. Rapid repeated
// submits are coalesced so only the last one within the debounce window is
// sent.
type Notifier struct {
	client    *resty.Client
	url       string
	debounced func()
	cancel    func()
	pending   Submission
	now       func() time.Time
}

// Option customizes a Notifier.
type Option func(*Notifier)

// WithClock overrides the timestamp source, for tests.
func WithClock(now func() time.Time) Option {
	return func(n *Notifier) { n.now = now }
}

// New creates a Notifier. An empty url disables delivery entirely (the demo
// still works; submits become no-ops).
func New(url string, timeout time.Duration, opts ...Option) *Notifier {
	n := &Notifier{
		client: resty.New().SetTimeout(timeout),
		url:    url,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(n)
	}
	n.debounced, n.cancel = debounce.NewWithMaxWait(500*time.Millisecond, 2*time.Second, n.deliver)
	return n
}

// Submit queues a submission for delivery. Returns immediately.
func (n *Notifier) Submit(s Submission) {
	if n.url == "" {
		return
	}
	s.Source = "clubos-pitch"
	s.Timestamp = n.now().UTC().Format(time.RFC3339)
	n.pending = s
	n.debounced()
}

// Close cancels any pending delivery.
func (n *Notifier) Close() {
	if n.cancel != nil {
		n.cancel()
	}
}

func (n *Notifier) deliver() {
	ctx, cancel := context.WithTimeout(context.Background(), n.client.GetClient().Timeout)
	defer cancel()
	resp, err := n.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(n.pending).
		Post(n.url)
	log := logger.FromContext(ctx)
	if err != nil {
		log.Debug("webhook delivery failed", "error", err)
		return
	}
	log.Debug("webhook delivered", "status", resp.StatusCode())
}
