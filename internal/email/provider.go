package email

// Message is a rendered email ready to be delivered.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Provider delivers email messages.
type Provider interface {
	Send(msg *Message) error
}

// NoopProvider discards messages. Used when email delivery is disabled.
type NoopProvider struct{}

func (NoopProvider) Send(msg *Message) error { return nil }
