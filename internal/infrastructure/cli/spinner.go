package cli

import (
	"context"
	"io"
	"time"

	"github.com/briandowns/spinner"

	"github.com/doeshing/hey-go/internal/ports"
)

// spinningClient animates a spinner while the model is thinking.
type spinningClient struct {
	ports.LLMClient
	out io.Writer
}

func newSpinningClient(client ports.LLMClient, out io.Writer) *spinningClient {
	return &spinningClient{LLMClient: client, out: out}
}

func (c *spinningClient) Query(ctx context.Context, req ports.ChatRequest) (string, error) {
	s := spinner.New(spinner.CharSets[14], 80*time.Millisecond, spinner.WithWriter(c.out))
	s.Start()
	defer s.Stop()
	return c.LLMClient.Query(ctx, req)
}
