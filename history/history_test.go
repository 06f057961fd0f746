package history

import (
	"fmt"
	"testing"

	"go.aimuz.me/medtrans/internal/types"
)

func newStore(t *testing.T, limit int) *Store {
	t.Helper()
	s, err := New(limit)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
	return s
}

func translation(i int) types.Translation {
	return types.Translation{
		RequestID:      fmt.Sprintf("req-%d", i),
		SourceLang:     "en",
		TargetLang:     "es",
		Text:           fmt.Sprintf("text %d", i),
		TranslatedText: fmt.Sprintf("texto %d", i),
	}
}

func TestStore_RecentNewestFirst(t *testing.T) {
	s := newStore(t, 10)

	for i := 1; i <= 3; i++ {
		if _, err := s.Add(translation(i)); err != nil {
			t.Fatalf("Add(%d): %v", i, err)
		}
	}

	got, err := s.Recent(0)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for i, want := range []string{"req-3", "req-2", "req-1"} {
		if got[i].ID != want {
			t.Errorf("entry %d = %q, want %q", i, got[i].ID, want)
		}
	}
	if got[0].TranslatedText != "texto 3" || got[0].CreatedAt == 0 {
		t.Errorf("entry = %+v", got[0])
	}
}

func TestStore_RecentLimit(t *testing.T) {
	s := newStore(t, 10)
	for i := 1; i <= 5; i++ {
		if _, err := s.Add(translation(i)); err != nil {
			t.Fatal(err)
		}
	}

	got, err := s.Recent(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].ID != "req-5" || got[1].ID != "req-4" {
		t.Errorf("Recent(2) = %+v", got)
	}
}

func TestStore_PrunesOldest(t *testing.T) {
	s := newStore(t, 3)
	for i := 1; i <= 7; i++ {
		if _, err := s.Add(translation(i)); err != nil {
			t.Fatal(err)
		}
	}

	if s.Len() != 3 {
		t.Errorf("Len = %d, want 3", s.Len())
	}
	got, err := s.Recent(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 || got[0].ID != "req-7" || got[2].ID != "req-5" {
		t.Errorf("entries = %+v", got)
	}
}

func TestStore_Empty(t *testing.T) {
	s := newStore(t, 0)

	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}
	got, err := s.Recent(5)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("Recent on empty store = %+v", got)
	}
}

func TestStore_GeneratesID(t *testing.T) {
	s := newStore(t, 5)
	tl := translation(1)
	tl.RequestID = ""

	e, err := s.Add(tl)
	if err != nil {
		t.Fatal(err)
	}
	if e.ID == "" {
		t.Error("expected generated id")
	}
}
