package surface

import (
	"testing"

	"github.com/yohamta/donburi"
)

type label struct{ Text string }

var (
	labelC = donburi.NewComponentType[label]()
	markC  = donburi.NewTag()
)

func TestAttachRemove(t *testing.T) {
	s := New("section", 960, 540)

	a := s.Attach(labelC)
	b := s.Attach(labelC, markC)
	if a == nil || b == nil {
		t.Fatal("attach on mounted surface returned nil")
	}
	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}
	if got := s.Count(markC); got != 1 {
		t.Errorf("Count(mark) = %d, want 1", got)
	}

	id := a.Entity()
	if !s.Remove(id) {
		t.Error("Remove of attached node returned false")
	}
	if s.Remove(id) {
		t.Error("second Remove returned true")
	}
	if s.Entry(id) != nil {
		t.Error("Entry resolved a removed node")
	}
	if !s.Remove(b.Entity()) {
		t.Error("Remove returned false")
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d after removing everything", s.Len())
	}
}

func TestUnmountedSurface(t *testing.T) {
	s := New("section", 100, 100)
	kept := s.Attach(labelC)

	s.Unmount()
	if s.Mounted() {
		t.Fatal("still mounted")
	}
	if s.Attach(labelC) != nil {
		t.Error("attached to unmounted surface")
	}
	if !s.Remove(kept.Entity()) {
		t.Error("could not detach an in-flight node after unmount")
	}

	s.Remount()
	if s.Attach(labelC) == nil {
		t.Error("attach failed after remount")
	}
}

func TestNilSurface(t *testing.T) {
	var s *Surface
	if s.Mounted() || s.Len() != 0 || s.Count(labelC) != 0 {
		t.Error("nil surface reported content")
	}
	if s.Attach(labelC) != nil {
		t.Error("nil surface attached a node")
	}
	if s.Remove(1) || s.Entry(1) != nil {
		t.Error("nil surface resolved a node")
	}
	if w, h := s.Size(); w != 0 || h != 0 {
		t.Errorf("nil size = %vx%v", w, h)
	}
	s.Resize(1, 1)
	s.Unmount()
	s.Remount()
	if s.Name() != "<nil>" {
		t.Errorf("nil name = %q", s.Name())
	}
}

func TestResize(t *testing.T) {
	s := New("page", 960, 540)
	s.Resize(1280, 720)
	if w, h := s.Size(); w != 1280 || h != 720 {
		t.Errorf("size = %vx%v, want 1280x720", w, h)
	}
}
