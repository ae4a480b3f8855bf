package query

import (
	"context"
	"fmt"
	"strings"

	"github.com/doeshing/hey-go/internal/domain"
)

const (
	runPrompt            = "\nRun it? [y/N] "
	installOfferPrompt   = "\n'%s' not found. Ask LLM how to install it? [y/N] "
	installRunPrompt     = "\nRun install command? [y/N] "
	installQueryTemplate = "How do I install '%s'?"
)

type state int

const (
	stateIdle state = iota
	stateAwaitRunConfirm
	stateAwaitInstallOffer
	stateAwaitInstallRunConfirm
	stateDone
)

func (s state) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateAwaitRunConfirm:
		return "await-run-confirm"
	case stateAwaitInstallOffer:
		return "await-install-offer"
	case stateAwaitInstallRunConfirm:
		return "await-install-run-confirm"
	case stateDone:
		return "done"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// runFlow walks the run / install-offer dialogue for one generated command.
// Every prompt is answered through the service's single LineReader.
type runFlow struct {
	svc  *Service
	ctx  context.Context
	req  domain.QueryRequest
	env  domain.Environment
	resp *domain.QueryResponse

	visited []state
}

func (f *runFlow) drive() {
	st := stateIdle
	for {
		f.visited = append(f.visited, st)
		if st == stateDone {
			return
		}
		next := f.step(st)
		f.svc.Logger.Debug("run flow transition", map[string]interface{}{"from": st.String(), "to": next.String()})
		st = next
	}
}

func (f *runFlow) step(st state) state {
	switch st {
	case stateIdle:
		switch {
		case f.req.RunNow:
			return f.execute()
		case f.req.NoRun:
			return stateDone
		case f.req.Interactive && !f.req.StdinPiped:
			return stateAwaitRunConfirm
		default:
			return stateDone
		}
	case stateAwaitRunConfirm:
		if f.confirm(runPrompt) {
			return f.execute()
		}
		return stateDone
	case stateAwaitInstallOffer:
		return f.offerInstall()
	case stateAwaitInstallRunConfirm:
		install := f.resp.Install
		if install.Command != "" && f.confirm(installRunPrompt) {
			install.Execution = f.run(install.Command)
		}
		return stateDone
	default:
		return stateDone
	}
}

// execute runs the generated command, or moves to the install offer when its
// program is missing and someone is watching the terminal.
func (f *runFlow) execute() state {
	command := f.resp.Command
	if command == "" {
		return stateDone
	}
	name := f.svc.Executor.FirstWord(command)
	if !f.svc.Executor.Available(name) {
		f.svc.Logger.Debug("executable not on PATH", map[string]interface{}{"name": name})
		return f.missing(name)
	}

	f.resp.Execution = f.run(command)
	if f.resp.Execution.ExitCode == domain.ExitCommandNotFound {
		return f.missing(name)
	}
	return stateDone
}

func (f *runFlow) missing(name string) state {
	if !f.req.Interactive || name == "" {
		return stateDone
	}
	f.resp.Install = &domain.InstallAttempt{Executable: name}
	return stateAwaitInstallOffer
}

func (f *runFlow) offerInstall() state {
	install := f.resp.Install
	if !f.confirm(fmt.Sprintf(installOfferPrompt, install.Executable)) {
		return stateDone
	}

	prompt := fmt.Sprintf(installQueryTemplate, install.Executable)
	reply, err := f.svc.LLM.Query(f.ctx, f.svc.chatRequest(f.req, f.env, prompt, true))
	if err != nil {
		fmt.Fprintf(f.svc.Err, "Error: %v\n", err)
		return stateDone
	}
	fmt.Fprintf(f.svc.Out, "\n%s\n", reply)

	install.Reply = reply
	install.Command = domain.ExtractCommand(reply)
	return stateAwaitInstallRunConfirm
}

func (f *runFlow) run(command string) *domain.ExecutionResult {
	code, err := f.svc.Executor.Run(f.ctx, command, f.env.Shell)
	result := &domain.ExecutionResult{Command: command, Ran: err == nil, ExitCode: code, Err: err}
	if err != nil {
		fmt.Fprintf(f.svc.Err, "Error: %v\n", err)
	}
	return result
}

// confirm asks a y/N question. End of input or an interrupt counts as no.
func (f *runFlow) confirm(prompt string) bool {
	if f.svc.Input == nil {
		return false
	}
	answer, err := f.svc.Input.ReadLine(prompt)
	if err != nil {
		fmt.Fprintln(f.svc.Out)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
