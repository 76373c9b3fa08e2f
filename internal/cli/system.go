package cli

import (
	"fmt"
	"os"
)

type InitCmd struct{}

func (c *InitCmd) Run(ctx *Context) error {
	if err := os.MkdirAll(ctx.DataDir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	fmt.Printf("Initialized studenthub data directory at %s\n", ctx.DataDir)
	return nil
}

type LoginCmd struct {
	User string `arg:"" help:"User id to sign in as."`
}

func (c *LoginCmd) Run(ctx *Context) error {
	if err := ctx.Session.Login(c.User); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	fmt.Printf("Signed in as %s\n", c.User)
	return nil
}

type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx *Context) error {
	if ctx.Session.CurrentUser() == "" {
		fmt.Println("Not signed in.")
		return nil
	}
	if err := ctx.Session.Logout(); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}
	fmt.Println("Signed out.")
	return nil
}

type WhoamiCmd struct{}

func (c *WhoamiCmd) Run(ctx *Context) error {
	user := ctx.Session.CurrentUser()
	if user == "" {
		fmt.Println("Not signed in.")
		return nil
	}
	fmt.Println(user)
	return nil
}
