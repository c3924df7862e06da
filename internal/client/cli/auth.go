package cli

import (
	"context"
	"os"

	"github.com/afristyle/afristyle/internal/common"
)

// getSimpleText, getPassword and getDisplayID are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getDisplayID = GetDisplayID

// Register prompts for an email, display name and password and creates a new
// account. A successful registration signs the user in immediately.
//
// The password byte slice is wiped before returning. Any I/O or API error is
// returned unchanged.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, "Enter display name", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.session.Register(ctx, email, string(password), name)
	if err != nil {
		a.log.Error(ctx, "registration failed", "error", err)
		return err
	}

	printlnFn("Welcome,", user.Name)
	return nil
}

// Login prompts for credentials and authenticates. The password is wiped
// before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.session.Login(ctx, email, string(password))
	if err != nil {
		a.log.Error(ctx, "login failed", "error", err)
		return err
	}

	printlnFn("Welcome back,", user.Name)
	return nil
}

// Logout signs out. The session layer guarantees local sign-out even when
// the server cannot be reached, so this never fails.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	printlnFn("Signed out.")
	return nil
}

// WhoAmI prints the signed-in account.
func (a *App) WhoAmI(ctx context.Context) error {
	user := a.session.CurrentUser()
	if user == nil {
		printlnFn("Not signed in.")
		return nil
	}
	printlnFn(user.Name, "<"+user.Email+">")
	return nil
}
