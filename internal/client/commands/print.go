package commands

import (
	"context"
	"fmt"

	"cardvault/internal/client/display"
	"cardvault/internal/core"
)

// printResponse renders an envelope: data (and pagination) on success,
// the error code and message on failure.
func printResponse(resp *core.Response, err error) error {
	if err != nil {
		return err
	}
	if !resp.Success {
		fmt.Printf("%s[%s] %s%s\n", display.Red, resp.Error.Code, resp.Error.Message, display.Reset)
		if len(resp.Error.Details) > 0 {
			display.PrettyPrintJSON(resp.Error.Details)
		}
		return nil
	}
	display.PrettyPrintJSON(resp.Data)
	if resp.Pagination != nil {
		p := resp.Pagination
		fmt.Printf("%sPage %d/%d (%d items)%s\n", display.Cyan, p.CurrentPage, p.TotalPages, p.TotalItems, display.Reset)
	}
	return nil
}

func ctx() context.Context {
	return context.Background()
}
