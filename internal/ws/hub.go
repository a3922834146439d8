// Package ws streams interview flow updates to the browser. Each interview
// flow is a topic; sockets subscribe to one flow and receive every state
// change and final transcript line applied to it.
package ws

import (
	"encoding/json"
	"log"
	"sync"
)

type Hub struct {
	mu     sync.RWMutex
	topics map[string]map[*Client]bool
	logger *log.Logger
}

func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.Default()
	}
	return &Hub{
		topics: make(map[string]map[*Client]bool),
		logger: logger,
	}
}

// Subscribe attaches a client to a flow's topic.
func (h *Hub) Subscribe(topic string, client *Client) {
	h.mu.Lock()
	subs, ok := h.topics[topic]
	if !ok {
		subs = make(map[*Client]bool)
		h.topics[topic] = subs
	}
	subs[client] = true
	total := len(subs)
	h.mu.Unlock()

	h.logger.Printf("ws | subscribed topic=%s clients=%d", topic, total)
}

// Unsubscribe detaches a client; the topic is dropped with its last client.
func (h *Hub) Unsubscribe(topic string, client *Client) {
	h.mu.Lock()
	if subs, ok := h.topics[topic]; ok {
		if subs[client] {
			delete(subs, client)
			close(client.send)
		}
		if len(subs) == 0 {
			delete(h.topics, topic)
		}
	}
	h.mu.Unlock()
}

// Publish fans a message out to every subscriber of a topic. Slow clients
// whose buffers are full get dropped rather than blocking the rest. Sends
// happen under the read lock; Unsubscribe closes a client's send channel
// only under the write lock, so a send can never race a close.
func (h *Hub) Publish(topic string, message []byte) {
	h.mu.RLock()
	var slow []*Client
	for client := range h.topics[topic] {
		select {
		case client.send <- message:
		default:
			slow = append(slow, client)
		}
	}
	h.mu.RUnlock()

	for _, client := range slow {
		h.Unsubscribe(topic, client)
		h.logger.Printf("ws | dropped slow client topic=%s", topic)
	}
}

// PublishJSON marshals v and publishes it. Marshal failures are logged and
// the message is dropped.
func (h *Hub) PublishJSON(topic string, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		h.logger.Printf("ws | marshal failed topic=%s err=%v", topic, err)
		return
	}
	h.Publish(topic, payload)
}

// SubscriberCount reports how many sockets watch a topic.
func (h *Hub) SubscriberCount(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.topics[topic])
}
