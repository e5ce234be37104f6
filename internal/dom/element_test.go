package dom

import (
	"errors"
	"testing"
)

func TestAppendChildErrors(t *testing.T) {
	doc := NewDocument()
	defer doc.Close()

	parent := NewElement("div")
	child := NewElement("span")
	if err := parent.AppendChild(child); err != nil {
		t.Fatalf("AppendChild error: %v", err)
	}

	if err := parent.AppendChild(nil); !errors.Is(err, ErrNilElement) {
		t.Errorf("nil child error = %v, want ErrNilElement", err)
	}
	if err := child.AppendChild(parent); !errors.Is(err, ErrHierarchy) {
		t.Errorf("cycle error = %v, want ErrHierarchy", err)
	}
	if err := child.AppendChild(child); !errors.Is(err, ErrHierarchy) {
		t.Errorf("self append error = %v, want ErrHierarchy", err)
	}
	if err := parent.AppendChild(doc.Body()); !errors.Is(err, ErrHierarchy) {
		t.Errorf("body append error = %v, want ErrHierarchy", err)
	}
}

func TestAppendChildMoves(t *testing.T) {
	a := NewElement("div")
	b := NewElement("div")
	child := NewElement("span")

	_ = a.AppendChild(child)
	_ = b.AppendChild(child)

	if len(a.Children()) != 0 {
		t.Error("child should have been removed from its old parent")
	}
	if child.Parent() != b {
		t.Error("child parent should be b")
	}
	if b.RemoveChild(NewElement("p")) {
		t.Error("RemoveChild of a stranger should return false")
	}
}

func TestLifecycleOrder(t *testing.T) {
	doc := NewDocument()
	defer doc.Close()

	parent := NewElement("div")
	child := NewElement("span")
	_ = parent.AppendChild(child)

	var events []string
	parent.AddAttachListener(func(*Element) { events = append(events, "attach parent") })
	child.AddAttachListener(func(*Element) { events = append(events, "attach child") })
	parent.AddDetachListener(func(*Element) { events = append(events, "detach parent") })
	child.AddDetachListener(func(el *Element) {
		if el != child {
			t.Error("detach listener should receive its own element")
		}
		events = append(events, "detach child")
	})

	if parent.IsAttached() {
		t.Fatal("parent should start detached")
	}
	_ = doc.Body().AppendChild(parent)
	if !child.IsAttached() || child.Document() != doc {
		t.Fatal("child should be attached to the document")
	}
	parent.RemoveFromParent()
	if child.IsAttached() || child.Document() != nil {
		t.Fatal("child should be detached")
	}

	want := []string{"attach parent", "attach child", "detach child", "detach parent"}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("events[%d] = %q, want %q", i, events[i], want[i])
		}
	}
}

func TestLifecycleListenerRemove(t *testing.T) {
	doc := NewDocument()
	defer doc.Close()

	el := NewElement("div")
	calls := 0
	reg := el.AddDetachListener(func(*Element) { calls++ })
	if _, detach := el.LifecycleListenerCount(); detach != 1 {
		t.Fatalf("detach listeners = %d, want 1", detach)
	}

	reg.Remove()
	reg.Remove()
	if _, detach := el.LifecycleListenerCount(); detach != 0 {
		t.Errorf("detach listeners = %d, want 0", detach)
	}

	_ = doc.Body().AppendChild(el)
	el.RemoveFromParent()
	if calls != 0 {
		t.Errorf("removed listener called %d times", calls)
	}
}

func TestDetachListenerFiresEachTime(t *testing.T) {
	doc := NewDocument()
	defer doc.Close()

	el := NewElement("div")
	calls := 0
	el.AddDetachListener(func(*Element) { calls++ })

	for i := 0; i < 3; i++ {
		_ = doc.Body().AppendChild(el)
		el.RemoveFromParent()
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestCombine(t *testing.T) {
	var order []int
	reg := Combine(
		NewRegistration(func() { order = append(order, 1) }),
		nil,
		NewRegistration(func() { order = append(order, 2) }),
	)
	reg.Remove()
	reg.Remove()

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("order = %v, want [1 2]", order)
	}
	NewRegistration(nil).Remove()
}

func TestAttributesAndText(t *testing.T) {
	el := NewElement("label").SetAttribute("for", "name").SetText("Name")
	if v, ok := el.Attribute("for"); !ok || v != "name" {
		t.Errorf("Attribute(for) = %q, %v", v, ok)
	}
	if _, ok := el.Attribute("missing"); ok {
		t.Error("missing attribute should not be present")
	}
	if el.Text() != "Name" || el.Tag() != "label" || el.ID() == "" {
		t.Error("unexpected element state")
	}
}
