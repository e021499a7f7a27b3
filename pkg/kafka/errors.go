package kafka

import "errors"

var (
	// ErrProducerClosed indicates the producer has been closed.
	ErrProducerClosed = errors.New("kafka producer is closed")

	// ErrNoBrokers indicates no broker addresses were configured.
	ErrNoBrokers = errors.New("at least one kafka broker is required")

	// ErrEmptyTopic indicates the topic name is empty.
	ErrEmptyTopic = errors.New("topic cannot be empty")

	// ErrEmptyKey indicates the message key is empty.
	ErrEmptyKey = errors.New("message key cannot be empty")

	// ErrEmptyValue indicates the message value is empty.
	ErrEmptyValue = errors.New("message value cannot be empty")
)
