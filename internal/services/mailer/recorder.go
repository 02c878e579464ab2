package mailer

import "sync"

// Message is one captured send.
type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// Recorder captures messages instead of delivering them. Used by tests and
// local development.
type Recorder struct {
	mu       sync.Mutex
	messages []Message
	// Err, when set, is returned from Send to exercise failure paths.
	Err error
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Send(to, subject, text, html string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.messages = append(r.messages, Message{To: to, Subject: subject, Text: text, HTML: html})
	return nil
}

// Messages returns a copy of everything sent so far.
func (r *Recorder) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Message, len(r.messages))
	copy(out, r.messages)
	return out
}
