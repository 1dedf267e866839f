// Package orchestrator decides, per generation request, whether the site
// comes from the remote completion service or from the local template
// generator, and degrades to templates whenever the remote path yields
// nothing usable.
package orchestrator

import (
	"context"
	"errors"
	"log"

	"sitegen_server/internal/ai"
	"sitegen_server/internal/generator"
	"sitegen_server/internal/parser"
	"sitegen_server/internal/types"
)

// Outcome names which path produced the final file mapping.
type Outcome string

const (
	OutcomeUseRemote                  Outcome = "remote"
	OutcomeUseTemplate                Outcome = "template"
	OutcomeFallbackAfterRemoteFailure Outcome = "template-fallback"
)

// ErrEmptyGeneration is returned when the chosen path produced zero
// files. It should not occur for well-formed settings and aborts the
// request; no archive gets produced.
var ErrEmptyGeneration = errors.New("generation produced no files")

// Result is the full answer to one generation request. Notice carries a
// human-readable downgrade explanation when the remote path was skipped
// or abandoned.
type Result struct {
	Files   types.FileMapping
	Outcome Outcome
	Notice  string
}

// Orchestrator holds the remote client (nil when the capability is
// unavailable) and whether a credential was resolvable at startup.
type Orchestrator struct {
	remote        ai.CompletionClient
	hasCredential bool
}

func New(remote ai.CompletionClient, hasCredential bool) *Orchestrator {
	return &Orchestrator{remote: remote, hasCredential: hasCredential}
}

// Generate runs the decision chain. The remote service is attempted at
// most once, only when requested, credentialed and available; any remote
// error or unparseable response discards the attempt entirely and the
// template generator produces the result instead. Remote and template
// output are never mixed.
func (o *Orchestrator) Generate(ctx context.Context, settings types.Settings, useRemote bool) (Result, error) {
	result := Result{Outcome: OutcomeUseTemplate}

	switch {
	case !useRemote:
		// Template-only request.
	case !o.hasCredential:
		result.Notice = "No API key configured; generated from built-in templates instead."
	case o.remote == nil:
		result.Notice = "Remote generation is unavailable; generated from built-in templates instead."
	default:
		text, err := o.remote.CompleteSite(ctx, settings)
		if err != nil {
			log.Printf("Remote generation failed, falling back to templates: %v", err)
			result.Outcome = OutcomeFallbackAfterRemoteFailure
			result.Notice = "The AI service could not generate the site; generated from built-in templates instead."
			break
		}
		files := parser.Extract(text)
		if len(files) == 0 {
			log.Printf("Remote generation returned %d chars but nothing parseable, falling back to templates", len(text))
			result.Outcome = OutcomeFallbackAfterRemoteFailure
			result.Notice = "The AI response could not be parsed; generated from built-in templates instead."
			break
		}
		result.Outcome = OutcomeUseRemote
		result.Files = files
	}

	if result.Outcome != OutcomeUseRemote {
		result.Files = generator.Generate(settings)
	}

	if len(result.Files) == 0 {
		return Result{}, ErrEmptyGeneration
	}
	return result, nil
}
