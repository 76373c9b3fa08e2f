package cli

import "github.com/mkhalil/studenthub/internal/tui"

type DashboardCmd struct{}

func (c *DashboardCmd) Run(ctx *Context) error {
	if _, err := ctx.Repo(); err != nil {
		return err
	}
	return tui.Run(ctx.Hub, ctx.Analytics)
}
