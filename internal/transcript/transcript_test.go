package transcript

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

// fakeClock returns a store whose clock advances one second per call.
func fakeClock(s *Store) {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	n := 0
	s.now = func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Second)
	}
}

func TestCreate_AssignsIDAndDefaultTitle(t *testing.T) {
	s := NewStore()

	c := s.Create("", "sonnet")

	if _, err := uuid.Parse(c.ID); err != nil {
		t.Errorf("ID %q is not a uuid: %v", c.ID, err)
	}
	if c.Title != "New chat" {
		t.Errorf("Title = %q, want %q", c.Title, "New chat")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestAppend(t *testing.T) {
	s := NewStore()
	c := s.Create("Greeting", "")

	msg, ok := s.Append(c.ID, RoleUser, "hello")
	if !ok {
		t.Fatal("Append returned false for existing conversation")
	}
	if msg.Role != RoleUser || msg.Content != "hello" || msg.ID == "" {
		t.Errorf("unexpected message %+v", msg)
	}

	got, _ := s.Get(c.ID)
	if len(got.Messages) != 1 {
		t.Fatalf("Messages = %d, want 1", len(got.Messages))
	}

	if _, ok := s.Append("missing", RoleUser, "x"); ok {
		t.Error("Append to missing conversation should fail")
	}
}

func TestGet_ReturnsCopy(t *testing.T) {
	s := NewStore()
	c := s.Create("Copy", "")
	s.Append(c.ID, RoleUser, "one")

	got, _ := s.Get(c.ID)
	got.Messages[0].Content = "mutated"
	got.Title = "mutated"

	again, _ := s.Get(c.ID)
	if again.Messages[0].Content != "one" || again.Title != "Copy" {
		t.Error("Get should return an independent copy")
	}
}

func TestList_MostRecentFirst(t *testing.T) {
	s := NewStore()
	fakeClock(s)

	a := s.Create("a", "")
	b := s.Create("b", "")
	s.Append(a.ID, RoleUser, "bump")

	list := s.List()
	if len(list) != 2 || list[0].ID != a.ID || list[1].ID != b.ID {
		t.Errorf("List order = %v, want [a b]", []string{list[0].Title, list[1].Title})
	}
}
