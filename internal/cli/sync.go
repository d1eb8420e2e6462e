package cli

import (
	"context"
	"fmt"
	"time"
)

type SyncCmd struct{}

func (c *SyncCmd) Run(ctx *Context) error {
	engine, err := ctx.Engine()
	if err != nil {
		return err
	}

	reqCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	sent, remaining, err := engine.FlushOutbox(reqCtx)
	if err != nil {
		return err
	}

	if sent == 0 && remaining == 0 {
		fmt.Println("Nothing to sync.")
		return nil
	}
	fmt.Printf("Delivered %d queued payload(s).\n", sent)
	if remaining > 0 {
		fmt.Println(pendingStyle.Render(fmt.Sprintf("%d payload(s) still queued; the remote may be unreachable.", remaining)))
	}
	return nil
}
