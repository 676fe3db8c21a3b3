package manager_test

import (
	"bytes"
	"errors"
	"log"
	"reflect"
	"strings"
	"testing"
	"time"

	"pintask/internal/manager"
	"pintask/internal/seed"
	"pintask/internal/task"
	"pintask/internal/testutil"
	"pintask/internal/view"
)

// newManager returns a manager over a fresh page with a manual scheduler.
func newManager(t *testing.T) (*manager.Manager, *view.Page, *testutil.ManualScheduler) {
	t.Helper()
	page := view.NewPage()
	sched := testutil.NewManualScheduler()
	m := manager.New(page, manager.WithScheduler(sched))
	m.Initialize()
	return m, page, sched
}

// enter types value into the input and presses Enter.
func enter(m *manager.Manager, page *view.Page, value string) {
	page.SetInput(value)
	m.Submit()
}

func names(tasks []task.Task) []string {
	result := make([]string, len(tasks))
	for i, t := range tasks {
		result[i] = t.Name
	}
	return result
}

func TestSubmit_AddsTask(t *testing.T) {
	m, page, _ := newManager(t)

	enter(m, page, "New Task")

	tasks := m.Tasks()
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	if tasks[0].Name != "New Task" {
		t.Errorf("expected name %q, got %q", "New Task", tasks[0].Name)
	}
	if tasks[0].IsPinned {
		t.Error("new task should be unpinned")
	}
	snap := page.Snapshot()
	if snap.Unpinned.Len() != 1 {
		t.Errorf("expected 1 unpinned row, got %d", snap.Unpinned.Len())
	}
	if snap.Input != "" {
		t.Errorf("expected input to be cleared, got %q", snap.Input)
	}
}

func TestSubmit_TrimsName(t *testing.T) {
	m, page, _ := newManager(t)

	enter(m, page, "  padded  ")

	if got := names(m.Tasks()); !reflect.DeepEqual(got, []string{"padded"}) {
		t.Errorf("expected [padded], got %v", got)
	}
}

func TestSubmit_EmptyShowsError(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n"} {
		t.Run("input="+strings.ReplaceAll(input, "\n", `\n`), func(t *testing.T) {
			m, page, _ := newManager(t)

			enter(m, page, input)

			if m.Len() != 0 {
				t.Errorf("expected no tasks, got %d", m.Len())
			}
			if page.Error() != manager.EmptyFieldMessage {
				t.Errorf("expected error %q, got %q", manager.EmptyFieldMessage, page.Error())
			}
		})
	}
}

func TestAdd_Programmatic(t *testing.T) {
	m, page, _ := newManager(t)

	if err := m.Add("New Method Task"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := names(m.Tasks()); !reflect.DeepEqual(got, []string{"New Method Task"}) {
		t.Errorf("expected [New Method Task], got %v", got)
	}
	if page.Snapshot().Unpinned.Len() != 1 {
		t.Errorf("expected 1 unpinned row, got %d", page.Snapshot().Unpinned.Len())
	}
}

func TestAdd_EmptyReturnsError(t *testing.T) {
	m, page, _ := newManager(t)

	err := m.Add("  ")
	if !errors.Is(err, manager.ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
	var verr *manager.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if verr.Input != "  " {
		t.Errorf("expected rejected input to be kept, got %q", verr.Input)
	}
	if m.Len() != 0 {
		t.Errorf("expected collection unchanged, got %d tasks", m.Len())
	}
	if page.Error() != "" {
		t.Errorf("programmatic add should not touch the error slot, got %q", page.Error())
	}
}

func TestFilter_SubstringCaseInsensitive(t *testing.T) {
	m, _, _ := newManager(t)
	for _, name := range []string{"Task 1", "Another Task", "xyz"} {
		if err := m.Add(name); err != nil {
			t.Fatalf("add %q: %v", name, err)
		}
	}

	got := names(m.Filter("task"))
	want := []string{"Task 1", "Another Task"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if m.Len() != 3 {
		t.Errorf("filter must not mutate state, got %d tasks", m.Len())
	}
}

func TestFilter_NoMatchReturnsEmpty(t *testing.T) {
	m, _, _ := newManager(t)
	_ = m.Add("abc")

	got := m.Filter("zzz")
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}

func TestRefresh_PrefixFilterFromInput(t *testing.T) {
	m, page, _ := newManager(t)
	enter(m, page, "Task 1")
	enter(m, page, "Another Task")

	page.SetInput("Task")
	m.Refresh()

	snap := page.Snapshot()
	if got := snap.Unpinned.Names(); !reflect.DeepEqual(got, []string{"Task 1"}) {
		t.Errorf("expected prefix match [Task 1], got %v", got)
	}
}

func TestRefreshUnpinned_NoMatchShowsPlaceholder(t *testing.T) {
	m, page, _ := newManager(t)
	_ = m.Add("alpha")

	m.RefreshUnpinned("beta")

	if got := page.Snapshot().Unpinned.Placeholder; got != manager.NoTasksPlaceholder {
		t.Errorf("expected placeholder %q, got %q", manager.NoTasksPlaceholder, got)
	}
}

func TestRender_PlainRows(t *testing.T) {
	m, page, _ := newManager(t)
	_ = m.Add("Task 1")
	_ = m.Add("Task 2")

	m.Render(m.Filter("1"))

	snap := page.Snapshot()
	if got := snap.Unpinned.Names(); !reflect.DeepEqual(got, []string{"Task 1"}) {
		t.Fatalf("expected [Task 1], got %v", got)
	}
	if snap.Unpinned.Rows[0].Toggle != nil {
		t.Error("live filter rows should have no toggle")
	}
}

func TestRender_EmptyHasNoPlaceholder(t *testing.T) {
	m, page, _ := newManager(t)
	m.Render(nil)

	if snap := page.Snapshot(); snap.Unpinned.Len() != 0 {
		t.Errorf("expected empty unpinned view, got %d children", snap.Unpinned.Len())
	}
}

func TestHandleInput_LiveFilter(t *testing.T) {
	m, page, _ := newManager(t)
	_ = m.Add("Task 1")
	_ = m.Add("Another Task")
	_ = m.Add("xyz")

	m.HandleInput("TASK")

	snap := page.Snapshot()
	if snap.Input != "TASK" {
		t.Errorf("expected input to be stored, got %q", snap.Input)
	}
	want := []string{"Task 1", "Another Task"}
	if got := snap.Unpinned.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestTogglePin_PartitionsViews(t *testing.T) {
	m, page, _ := newManager(t)
	_ = m.Add("A")
	_ = m.Add("B")

	if !m.TogglePin("A") {
		t.Fatal("expected toggle to find A")
	}

	snap := page.Snapshot()
	if got := snap.Pinned.Names(); !reflect.DeepEqual(got, []string{"A"}) {
		t.Errorf("expected pinned [A], got %v", got)
	}
	if got := snap.Unpinned.Names(); !reflect.DeepEqual(got, []string{"B"}) {
		t.Errorf("expected unpinned [B], got %v", got)
	}
	pinnedRow := snap.Pinned.Rows[0]
	if pinnedRow.Toggle == nil || pinnedRow.Toggle.Label != manager.PinnedLabel || pinnedRow.Toggle.Action != view.ActionUnpin {
		t.Errorf("unexpected pinned toggle %+v", pinnedRow.Toggle)
	}
	unpinnedRow := snap.Unpinned.Rows[0]
	if unpinnedRow.Toggle == nil || unpinnedRow.Toggle.Label != manager.UnpinnedLabel || unpinnedRow.Toggle.Action != view.ActionPin {
		t.Errorf("unexpected unpinned toggle %+v", unpinnedRow.Toggle)
	}
}

func TestTogglePin_TwiceRestores(t *testing.T) {
	m, page, _ := newManager(t)
	enter(m, page, "Unpin Task")

	m.TogglePin("Unpin Task")
	m.TogglePin("Unpin Task")

	if m.Tasks()[0].IsPinned {
		t.Error("expected task to be unpinned after two toggles")
	}
	snap := page.Snapshot()
	if snap.Pinned.Len() != 1 || snap.Pinned.Placeholder != manager.NoPinnedPlaceholder {
		t.Errorf("expected pinned placeholder, got %+v", snap.Pinned)
	}
	if got := snap.Unpinned.Names(); !reflect.DeepEqual(got, []string{"Unpin Task"}) {
		t.Errorf("expected unpinned [Unpin Task], got %v", got)
	}
}

func TestTogglePin_FirstMatchOnly(t *testing.T) {
	m, _, _ := newManager(t)
	_ = m.Add("dup")
	_ = m.Add("dup")

	m.TogglePin("dup")

	tasks := m.Tasks()
	if !tasks[0].IsPinned || tasks[1].IsPinned {
		t.Errorf("expected only the first duplicate pinned, got %v/%v", tasks[0].IsPinned, tasks[1].IsPinned)
	}
}

func TestTogglePin_CaseSensitive(t *testing.T) {
	m, _, _ := newManager(t)
	_ = m.Add("Task")

	if m.TogglePin("task") {
		t.Error("name lookup should be case-sensitive")
	}
}

func TestPinUnpin(t *testing.T) {
	m, page, _ := newManager(t)
	_ = m.Add("A")

	if !m.Pin("A") {
		t.Fatal("expected Pin to change state")
	}
	if m.Pin("A") {
		t.Error("pinning a pinned task should be a no-op")
	}
	if got := page.Snapshot().Pinned.Names(); !reflect.DeepEqual(got, []string{"A"}) {
		t.Errorf("expected pinned [A], got %v", got)
	}

	if !m.Unpin("A") {
		t.Fatal("expected Unpin to change state")
	}
	if m.Unpin("A") {
		t.Error("unpinning an unpinned task should be a no-op")
	}
	if got := page.Snapshot().Unpinned.Names(); !reflect.DeepEqual(got, []string{"A"}) {
		t.Errorf("expected unpinned [A], got %v", got)
	}
}

func TestPinUnpin_UnknownNameIsNoop(t *testing.T) {
	m, page, _ := newManager(t)
	_ = m.Add("A")
	before := page.Snapshot()

	if m.Pin("missing") || m.Unpin("missing") || m.TogglePin("missing") {
		t.Error("operations on a missing name should report no change")
	}
	if after := page.Snapshot(); !reflect.DeepEqual(before, after) {
		t.Errorf("page changed on no-op: before %+v, after %+v", before, after)
	}
}

func TestPin_RespectsCurrentInputPrefix(t *testing.T) {
	m, page, _ := newManager(t)
	_ = m.Add("apple")
	_ = m.Add("banana")
	_ = m.Add("avocado")

	page.SetInput("a")
	m.Pin("banana")

	if got := page.Snapshot().Unpinned.Names(); !reflect.DeepEqual(got, []string{"apple", "avocado"}) {
		t.Errorf("expected [apple avocado], got %v", got)
	}
}

func TestInitialize_EmptyPlaceholders(t *testing.T) {
	_, page, _ := newManager(t)

	snap := page.Snapshot()
	if snap.Unpinned.Text() != manager.NoTasksPlaceholder {
		t.Errorf("expected %q, got %q", manager.NoTasksPlaceholder, snap.Unpinned.Text())
	}
	if snap.Pinned.Text() != manager.NoPinnedPlaceholder {
		t.Errorf("expected %q, got %q", manager.NoPinnedPlaceholder, snap.Pinned.Text())
	}
}

func TestPlaceholders_Independent(t *testing.T) {
	m, page, _ := newManager(t)
	_ = m.Add("A")

	snap := page.Snapshot()
	if snap.Unpinned.Placeholder != "" {
		t.Errorf("unpinned view should list A, got placeholder %q", snap.Unpinned.Placeholder)
	}
	if snap.Pinned.Placeholder != manager.NoPinnedPlaceholder {
		t.Errorf("expected pinned placeholder, got %q", snap.Pinned.Placeholder)
	}

	m.Pin("A")
	snap = page.Snapshot()
	if snap.Unpinned.Placeholder != manager.NoTasksPlaceholder {
		t.Errorf("expected unpinned placeholder, got %q", snap.Unpinned.Placeholder)
	}
	if snap.Pinned.Placeholder != "" {
		t.Errorf("pinned view should list A, got placeholder %q", snap.Pinned.Placeholder)
	}
}

func TestEveryTaskInExactlyOneView(t *testing.T) {
	m, page, _ := newManager(t)
	for _, name := range []string{"a", "b", "c", "d"} {
		_ = m.Add(name)
	}
	m.Pin("b")
	m.TogglePin("d")

	snap := page.Snapshot()
	seen := map[string]int{}
	for _, row := range append(snap.Pinned.Rows, snap.Unpinned.Rows...) {
		seen[row.TaskID]++
	}
	for _, tk := range m.Tasks() {
		if seen[tk.ID] != 1 {
			t.Errorf("task %q rendered %d times", tk.Name, seen[tk.ID])
		}
	}
}

func TestShowError_ClearsAfterDuration(t *testing.T) {
	m, page, sched := newManager(t)

	m.ShowError("Error message")
	if page.Error() != "Error message" {
		t.Fatalf("expected message to be shown immediately, got %q", page.Error())
	}

	sched.Advance(manager.ErrorDisplayDuration - time.Millisecond)
	if page.Error() != "Error message" {
		t.Errorf("message cleared too early")
	}

	sched.Advance(time.Millisecond)
	if page.Error() != "" {
		t.Errorf("expected message to be cleared, got %q", page.Error())
	}
}

func TestShowError_NewMessageNotClearedByStaleTimer(t *testing.T) {
	m, page, sched := newManager(t)

	m.ShowError("first")
	sched.Advance(1500 * time.Millisecond)
	m.ShowError("second")

	sched.Advance(600 * time.Millisecond)
	if page.Error() != "second" {
		t.Errorf("stale timer cleared the newer message, got %q", page.Error())
	}

	sched.Advance(1400 * time.Millisecond)
	if page.Error() != "" {
		t.Errorf("expected second message to be cleared, got %q", page.Error())
	}
	if sched.Pending() != 0 {
		t.Errorf("expected no pending callbacks, got %d", sched.Pending())
	}
}

func TestShowError_RealTimer(t *testing.T) {
	if testing.Short() {
		t.Skip("waits for the real error display duration")
	}
	page := view.NewPage()
	m := manager.New(page)

	m.ShowError("Error message")
	if page.Error() != "Error message" {
		t.Fatalf("expected message to be shown immediately, got %q", page.Error())
	}

	time.Sleep(manager.ErrorDisplayDuration + 100*time.Millisecond)
	if page.Error() != "" {
		t.Errorf("expected message to be cleared, got %q", page.Error())
	}
}

func TestSeed(t *testing.T) {
	m, page, _ := newManager(t)

	skipped := m.Seed([]seed.Entry{
		{Name: "one"},
		{Name: "  "},
		{Name: " two ", Pinned: true},
	})

	if skipped != 1 {
		t.Errorf("expected 1 skipped entry, got %d", skipped)
	}
	if got := names(m.Tasks()); !reflect.DeepEqual(got, []string{"one", "two"}) {
		t.Errorf("expected [one two], got %v", got)
	}
	snap := page.Snapshot()
	if got := snap.Pinned.Names(); !reflect.DeepEqual(got, []string{"two"}) {
		t.Errorf("expected pinned [two], got %v", got)
	}
	if got := snap.Unpinned.Names(); !reflect.DeepEqual(got, []string{"one"}) {
		t.Errorf("expected unpinned [one], got %v", got)
	}
}

func TestTasks_ReturnsCopy(t *testing.T) {
	m, _, _ := newManager(t)
	_ = m.Add("A")

	tasks := m.Tasks()
	tasks[0].IsPinned = true

	if m.Tasks()[0].IsPinned {
		t.Error("mutating the returned slice changed manager state")
	}
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	m := manager.New(view.NewPage(), manager.WithLogger(log.New(&buf, "debug: ", 0)))

	_ = m.Add("A")

	if !strings.Contains(buf.String(), `added task "A"`) {
		t.Errorf("expected debug log for add, got %q", buf.String())
	}
}
