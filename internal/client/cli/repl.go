package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Browse(ctx context.Context) error
	ShowOutfit(ctx context.Context) error
	Blogs(ctx context.Context) error
	ReadBlog(ctx context.Context) error
	Categories(ctx context.Context) error
	Folders(ctx context.Context) error
	NewFolder(ctx context.Context) error
	DeleteFolder(ctx context.Context) error
	SaveStyle(ctx context.Context) error
	RemoveStyle(ctx context.Context) error
	Like(ctx context.Context) error
	Unlike(ctx context.Context) error
	Liked(ctx context.Context) error
	Upload(ctx context.Context) error
	Backup(ctx context.Context) error
	Restore(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the AfriStyle CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("afristyle %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (b)rowse, show, blogs, readblog, categories, folders, newfolder, delfolder, save, unsave, like, unlike, liked, whoami, upload, backup, restore, logout, exit")
			} else {
				printlnFn("Available commands: register, login, (b)rowse, show, blogs, readblog, categories, like, unlike, liked, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "b", "browse":
			_ = a.Browse(ctx)

		case "show":
			_ = a.ShowOutfit(ctx)

		case "blogs":
			_ = a.Blogs(ctx)

		case "readblog":
			_ = a.ReadBlog(ctx)

		case "categories":
			_ = a.Categories(ctx)

		case "folders":
			_ = a.Folders(ctx)

		case "newfolder":
			_ = a.NewFolder(ctx)

		case "delfolder":
			_ = a.DeleteFolder(ctx)

		case "save":
			_ = a.SaveStyle(ctx)

		case "unsave":
			_ = a.RemoveStyle(ctx)

		case "like":
			_ = a.Like(ctx)

		case "unlike":
			_ = a.Unlike(ctx)

		case "liked":
			_ = a.Liked(ctx)

		case "upload":
			_ = a.Upload(ctx)

		case "backup":
			_ = a.Backup(ctx)

		case "restore":
			_ = a.Restore(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
