package cli

import "fmt"

type QuoteCmd struct{}

// Run prints the quote of the day. Quotes are global content, so this works
// even while signed out.
func (c *QuoteCmd) Run(ctx *Context) error {
	quote, ok := ctx.Analytics.TodayQuote()
	if !ok {
		fmt.Println("No quotes available.")
		return nil
	}

	fmt.Printf("%q\n", quote.Text)
	if quote.Author != "" {
		fmt.Printf("    - %s\n", quote.Author)
	}
	return nil
}
