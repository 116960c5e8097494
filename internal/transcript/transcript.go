// Package transcript holds the conversations shown by the shell. It is an
// in-memory store: there is no model backend, sent messages are appended
// locally.
package transcript

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Role identifies who wrote a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Message is one entry in a conversation.
type Message struct {
	ID        string
	Role      Role
	Content   string
	CreatedAt time.Time
}

// Conversation is a titled list of messages.
type Conversation struct {
	ID        string
	Title     string
	Model     string
	Messages  []Message
	UpdatedAt time.Time
}

// Store is a concurrency-safe set of conversations.
type Store struct {
	mu    sync.RWMutex
	convs map[string]*Conversation
	now   func() time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		convs: make(map[string]*Conversation),
		now:   time.Now,
	}
}

// Create adds a new conversation and returns a copy of it.
func (s *Store) Create(title, model string) Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()

	if title == "" {
		title = "New chat"
	}
	c := &Conversation{
		ID:        uuid.NewString(),
		Title:     title,
		Model:     model,
		UpdatedAt: s.now(),
	}
	s.convs[c.ID] = c
	return c.clone()
}

// Append adds a message to a conversation. It returns false if the
// conversation does not exist.
func (s *Store) Append(convID string, role Role, content string) (Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.convs[convID]
	if !ok {
		return Message{}, false
	}
	msg := Message{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		CreatedAt: s.now(),
	}
	c.Messages = append(c.Messages, msg)
	c.UpdatedAt = msg.CreatedAt
	return msg, true
}

// Get returns a copy of a conversation.
func (s *Store) Get(id string) (Conversation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.convs[id]
	if !ok {
		return Conversation{}, false
	}
	return c.clone(), true
}

// List returns copies of all conversations, most recently updated first.
func (s *Store) List() []Conversation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Conversation, 0, len(s.convs))
	for _, c := range s.convs {
		out = append(out, c.clone())
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].Title < out[j].Title
		}
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out
}

// Len returns the number of conversations.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.convs)
}

func (c *Conversation) clone() Conversation {
	out := *c
	out.Messages = append([]Message(nil), c.Messages...)
	return out
}
