package view

import (
	"reflect"
	"testing"
)

func TestPage_RegionsAreIndependent(t *testing.T) {
	p := NewPage()

	p.Pinned().SetPlaceholder("No pinned tasks")
	p.Unpinned().Append(Row{Name: "A", Toggle: &Toggle{Label: "○", Action: ActionPin}})
	p.Unpinned().Append(Row{Name: "B"})

	snap := p.Snapshot()
	if snap.Pinned.Len() != 1 {
		t.Errorf("expected placeholder to count as one child, got %d", snap.Pinned.Len())
	}
	if snap.Pinned.Text() != "No pinned tasks" {
		t.Errorf("expected placeholder text, got %q", snap.Pinned.Text())
	}
	if got := snap.Unpinned.Names(); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Errorf("expected [A B], got %v", got)
	}
	if snap.Unpinned.Text() != "A○B" {
		t.Errorf("expected text %q, got %q", "A○B", snap.Unpinned.Text())
	}
}

func TestPage_AppendReplacesPlaceholder(t *testing.T) {
	p := NewPage()
	p.Unpinned().SetPlaceholder("No tasks")
	p.Unpinned().Append(Row{Name: "A"})

	snap := p.Snapshot()
	if snap.Unpinned.Placeholder != "" {
		t.Errorf("expected placeholder to be dropped, got %q", snap.Unpinned.Placeholder)
	}
	if snap.Unpinned.Len() != 1 {
		t.Errorf("expected 1 child, got %d", snap.Unpinned.Len())
	}
}

func TestPage_ClearEmptiesRegion(t *testing.T) {
	p := NewPage()
	p.Pinned().Append(Row{Name: "A"})
	p.Pinned().Clear()

	if n := p.Snapshot().Pinned.Len(); n != 0 {
		t.Errorf("expected empty region, got %d children", n)
	}
}

func TestPage_SnapshotIsACopy(t *testing.T) {
	p := NewPage()
	toggle := &Toggle{Label: "○", Action: ActionPin}
	p.Unpinned().Append(Row{Name: "A", Toggle: toggle})
	toggle.Label = "changed"

	snap := p.Snapshot()
	snap.Unpinned.Rows[0].Name = "mutated"

	again := p.Snapshot()
	if again.Unpinned.Rows[0].Name != "A" {
		t.Errorf("snapshot mutation leaked into page: %q", again.Unpinned.Rows[0].Name)
	}
	if again.Unpinned.Rows[0].Toggle.Label != "○" {
		t.Errorf("toggle mutation leaked into page: %q", again.Unpinned.Rows[0].Toggle.Label)
	}
}

func TestPage_InputAndError(t *testing.T) {
	p := NewPage()
	p.SetInput("abc")
	p.SetError("boom")

	if p.Input() != "abc" {
		t.Errorf("expected input %q, got %q", "abc", p.Input())
	}
	if p.Error() != "boom" {
		t.Errorf("expected error %q, got %q", "boom", p.Error())
	}
	snap := p.Snapshot()
	if snap.Input != "abc" || snap.Error != "boom" {
		t.Errorf("unexpected snapshot %+v", snap)
	}
}

func TestAction_String(t *testing.T) {
	if ActionPin.String() != "pin" || ActionUnpin.String() != "unpin" {
		t.Errorf("unexpected action names: %s, %s", ActionPin, ActionUnpin)
	}
}
