package session

import (
	"io"
)

// WriterPublisher writes each published message as a line.
type WriterPublisher struct {
	w io.Writer
}

func NewWriterPublisher(w io.Writer) *WriterPublisher {
	return &WriterPublisher{w: w}
}

func (p *WriterPublisher) Publish(data []byte) error {
	if _, err := p.w.Write(data); err != nil {
		return err
	}
	_, err := io.WriteString(p.w, "\n")
	return err
}
