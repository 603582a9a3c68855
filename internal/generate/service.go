// Package generate orchestrates one generation pass: discovery, naming,
// merge, and (in reference mode) the attach and assignment protocol.
//
// The service owns no settings; every call takes the immutable settings
// value for that run. Queue and stats state lives in the attacher the
// service is built around, never in package globals.
package generate

import (
	"context"
	"fmt"

	"viewgen/internal/attach"
	"viewgen/internal/ctxlog"
	"viewgen/internal/diagnostic"
	"viewgen/internal/discover"
	"viewgen/internal/merge"
	"viewgen/internal/naming"
	"viewgen/internal/settings"
	"viewgen/scene"
)

// Input is one root's generation input. Loading and saving the artifact
// text is the caller's responsibility; the core only transforms strings.
type Input struct {
	// Root is the tree to scan.
	Root *scene.Node

	// Existing is the current artifact text; empty means first
	// generation.
	Existing string

	// ArtifactPath is where the caller stores the artifact; it keys the
	// compiled-unit lookup and the pending attach queue.
	ArtifactPath string
}

// Result is one root's generation output.
type Result struct {
	// ClassName is the class name derived from the root.
	ClassName string

	// Text is the merged artifact text.
	Text string

	// Changed reports whether Text differs byte-for-byte from the input;
	// the caller skips the file write otherwise, so the host's
	// recompilation pipeline is not re-triggered spuriously.
	Changed bool

	// Diagnostics collects per-pass notices: marker recoveries, name
	// collisions, reference assignment misses.
	Diagnostics *diagnostic.Diagnostics

	// AttachStatus is set in reference mode: applied or queued.
	AttachStatus attach.Status

	// Stats is the reference assignment report, present only when the
	// attach step completed within this pass.
	Stats *attach.Stats
}

// Service runs generation passes against one attacher.
type Service struct {
	attacher *attach.Attacher
}

// NewService builds a Service around the given attacher.
func NewService(attacher *attach.Attacher) *Service {
	return &Service{attacher: attacher}
}

// CollectFields returns the final descriptor list for a root without
// touching any artifact: discovery plus the naming pipeline. Callers use
// it to assign references without writing a file; the list is identical to
// the one a full Generate embeds.
func (s *Service) CollectFields(root *scene.Node, cfg settings.Settings) []discover.Descriptor {
	return naming.Rename(discover.Discover(root, cfg), cfg, nil)
}

// Generate runs one pass for one root. The derived class name failing the
// identifier or case rules aborts the pass with settings.ErrInvalidClassName
// and produces nothing.
func (s *Service) Generate(ctx context.Context, in Input, cfg settings.Settings) (Result, error) {
	diag := &diagnostic.Diagnostics{}

	className := in.Root.Name
	if err := cfg.Class.ValidateClassName(className); err != nil {
		diag.AddError(diagnostic.CodeInvalidName, err.Error(), in.Root.ID, "")

		return Result{Diagnostics: diag}, err
	}

	descs := naming.Rename(discover.Discover(in.Root, cfg), cfg, diag)

	text, err := merge.Merge(ctx, in.Existing, className, descs, cfg, diag)
	if err != nil {
		return Result{Diagnostics: diag}, fmt.Errorf("merging artifact for %s: %w", className, err)
	}

	result := Result{
		ClassName:   className,
		Text:        text,
		Changed:     text != in.Existing,
		Diagnostics: diag,
	}

	if cfg.Mode == settings.ModeReference {
		result.AttachStatus = s.attacher.Request(in.Root, className, in.ArtifactPath)

		if result.AttachStatus == attach.StatusApplied {
			stats := s.attacher.AssignReferences(in.Root, className, descs)
			result.Stats = &stats

			if stats.MissingPath > 0 {
				diag.AddWarning(diagnostic.CodeMissingPath,
					fmt.Sprintf("%d node paths failed to resolve", stats.MissingPath), in.Root.ID, "")
			}

			if stats.MissingCapability > 0 {
				diag.AddWarning(diagnostic.CodeMissingCapability,
					fmt.Sprintf("%d capabilities failed to resolve", stats.MissingCapability), in.Root.ID, "")
			}
		}
	}

	return result, nil
}

// RootResult pairs one root of a batch with its outcome.
type RootResult struct {
	RootID string
	Result Result
	Err    error
}

// GenerateAll runs one pass per input. A failing root never aborts the
// batch; its error is reported in its own slot.
func (s *Service) GenerateAll(ctx context.Context, inputs []Input, cfg settings.Settings) []RootResult {
	log := ctxlog.FromContext(ctx)
	out := make([]RootResult, 0, len(inputs))

	for _, in := range inputs {
		result, err := s.Generate(ctx, in, cfg)
		if err != nil {
			log.Warn("generation failed", "root", in.Root.ID, "error", err)
		}

		out = append(out, RootResult{RootID: in.Root.ID, Result: result, Err: err})
	}

	return out
}

// Attacher exposes the service's attacher for stats queries and reload
// inspection.
func (s *Service) Attacher() *attach.Attacher {
	return s.attacher
}
