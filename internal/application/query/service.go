package query

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/doeshing/hey-go/internal/domain"
	"github.com/doeshing/hey-go/internal/ports"
)

// Service orchestrates the query lifecycle end-to-end.
type Service struct {
	Detector  ports.EnvironmentDetector
	LLM       ports.LLMClient
	History   ports.HistoryRepository
	Clipboard ports.Clipboard
	Executor  ports.CommandExecutor
	Input     ports.LineReader
	Out       io.Writer
	Err       io.Writer
	Logger    ports.Logger
	Now       func() time.Time
}

// Run processes a single natural-language query. The returned error is only
// set when the model could not be queried; everything after that degrades.
func (s *Service) Run(req domain.QueryRequest) (domain.QueryResponse, error) {
	if s.Detector == nil || s.LLM == nil || s.Executor == nil || s.Out == nil || s.Err == nil || s.Logger == nil {
		return domain.QueryResponse{}, errors.New("query.Service dependencies not satisfied")
	}

	ctx := req.Context
	if ctx == nil {
		ctx = context.Background()
	}

	env := s.Detector.Detect()

	reply, err := s.LLM.Query(ctx, s.chatRequest(req, env, req.Prompt, req.Explain))
	if err != nil {
		return domain.QueryResponse{Environment: env}, err
	}
	fmt.Fprintln(s.Out, reply)

	resp := domain.QueryResponse{
		Reply:       reply,
		Command:     domain.ExtractCommand(reply),
		Environment: env,
	}

	s.record(req.Prompt, resp.Command, env.Shell)

	if req.Copy {
		resp.Copied = s.copy(resp.Command)
	}

	flow := &runFlow{svc: s, ctx: ctx, req: req, env: env, resp: &resp}
	flow.drive()
	return resp, nil
}

func (s *Service) chatRequest(req domain.QueryRequest, env domain.Environment, prompt string, explain bool) ports.ChatRequest {
	return ports.ChatRequest{
		Prompt:   prompt,
		Explain:  explain,
		Shell:    env.Shell,
		Platform: env.Platform,
		Endpoint: req.Endpoint,
		Model:    req.Model,
	}
}

func (s *Service) record(query, command, shell string) {
	if s.History == nil {
		return
	}
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	if err := s.History.Append(domain.NewHistoryEntry(now(), query, command, shell)); err != nil {
		s.Logger.Warn("history append failed", map[string]interface{}{
			"path":  s.History.Path(),
			"error": err.Error(),
		})
	}
}

func (s *Service) copy(command string) bool {
	if s.Clipboard != nil && s.Clipboard.Copy(command) {
		fmt.Fprintln(s.Out, "Copied to clipboard.")
		return true
	}
	fmt.Fprintln(s.Err, "Could not copy to clipboard.")
	return false
}

var _ domain.QueryService = (*Service)(nil)
