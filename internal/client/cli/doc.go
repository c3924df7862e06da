// Package cli implements the interactive AfriStyle command-line client.
//
// The entry point is NewApp + (*App).Run: Run restores the persisted session,
// then drops into a read–eval–print loop (see runREPL) dispatching commands
// against the state containers in internal/client/state.
//
// Command surface
//
//	Not signed in:
//	  - register, login
//	  - browse, show, blogs, readblog, categories
//	  - like, unlike, liked
//	  - exit | quit
//
//	Signed in additionally:
//	  - whoami, logout
//	  - folders, newfolder, delfolder, save, unsave
//	  - upload, backup, restore
//
// Outfits are addressed by the numeric style # printed next to each item in
// browse/folders output. The numbers are stable for the lifetime of the
// process only.
package cli
