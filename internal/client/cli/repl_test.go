package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
}

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	return f.record("register")
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) WhoAmI(ctx context.Context) error { return f.record("whoami") }
func (f *fakeExec) Browse(ctx context.Context) error { return f.record("browse") }
func (f *fakeExec) ShowOutfit(ctx context.Context) error { return f.record("show") }
func (f *fakeExec) Blogs(ctx context.Context) error { return f.record("blogs") }
func (f *fakeExec) ReadBlog(ctx context.Context) error { return f.record("readblog") }
func (f *fakeExec) Categories(ctx context.Context) error { return f.record("categories") }
func (f *fakeExec) Folders(ctx context.Context) error { return f.record("folders") }
func (f *fakeExec) NewFolder(ctx context.Context) error { return f.record("newfolder") }
func (f *fakeExec) DeleteFolder(ctx context.Context) error { return f.record("delfolder") }
func (f *fakeExec) SaveStyle(ctx context.Context) error { return f.record("save") }
func (f *fakeExec) RemoveStyle(ctx context.Context) error { return f.record("unsave") }
func (f *fakeExec) Like(ctx context.Context) error { return f.record("like") }
func (f *fakeExec) Unlike(ctx context.Context) error { return f.record("unlike") }
func (f *fakeExec) Liked(ctx context.Context) error { return f.record("liked") }
func (f *fakeExec) Upload(ctx context.Context) error { return f.record("upload") }
func (f *fakeExec) Backup(ctx context.Context) error { return f.record("backup") }
func (f *fakeExec) Restore(ctx context.Context) error { return f.record("restore") }

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"browse",
		"folders",
		"save",
		"like",
		"foobar",
		"logout",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "browse", "folders", "save", "like", "logout"}
	if len(exec.calls) < len(wantOrder) {
		t.Fatalf("few calls: %+v", exec.calls)
	}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
}

func TestRunREPL_ShortBrowseAlias(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("b\nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 1 || exec.calls[0] != "browse" {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_BlankLinesAndEOF(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("\n\n")
	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
