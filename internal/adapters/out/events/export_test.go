package events

// CloseChannel closes the publisher's current channel the way a broker-side
// failure would.
func CloseChannel(p *AMQPPublisher) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ch.Close()
}
