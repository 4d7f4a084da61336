package notification

import "gopkg.in/gomail.v2"

// Delivery strategies. Exactly one is active per deployment.
const (
	StrategyInline     = "inline"
	StrategyAttachment = "attachment"
)

// Sender abstracts the outbound mail transport so tests can capture messages
// without an SMTP server.
type Sender interface {
	Send(m ...*gomail.Message) error
}

// Config carries the transport identity and delivery strategy for the
// dispatcher. Credentials live in the Sender; nothing here is read from
// ambient process state.
type Config struct {
	From       string
	VenueName  string
	VenueEmail string
	Strategy   string
}

type smtpSender struct {
	dialer *gomail.Dialer
}

func (s *smtpSender) Send(m ...*gomail.Message) error {
	return s.dialer.DialAndSend(m...)
}

// NewSMTPSender returns a Sender that dials the configured SMTP server for
// each dispatch.
func NewSMTPSender(host string, port int, username, password string) Sender {
	return &smtpSender{dialer: gomail.NewDialer(host, port, username, password)}
}
