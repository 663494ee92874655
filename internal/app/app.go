// Package app implements the application layer for lockcmp.
package app

import (
	"context"
	"io"
	"os"

	"go.trai.ch/lockcmp/internal/core/domain"
	"go.trai.ch/lockcmp/internal/core/ports"
	"go.trai.ch/lockcmp/internal/engine/reconciler"
	"go.trai.ch/lockcmp/internal/ui/report"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	source     ports.LockfileSource
	tracer     ports.Tracer
	reconciler *reconciler.Reconciler
	out        io.Writer
}

// New creates a new App instance writing its report to stdout.
func New(source ports.LockfileSource, tracer ports.Tracer, rec *reconciler.Reconciler) *App {
	return &App{
		source:     source,
		tracer:     tracer,
		reconciler: rec,
		out:        os.Stdout,
	}
}

// WithTracer replaces the tracer, e.g. with the progrock recorder when
// progress reporting is requested.
func (a *App) WithTracer(t ports.Tracer) *App {
	a.tracer = t
	return a
}

// WithOutput redirects the report (used for testing).
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// Compare executes one comparison run: load both lockfiles, converge their
// universes onto the common package names, and report the per-name verdicts.
// It returns domain.ErrVersionMismatch when any common package differs; the
// report has already been written by then.
func (a *App) Compare(ctx context.Context, cmp *domain.Comparison) error {
	defer func() { _ = a.tracer.Close() }()

	rep := report.New(a.out, cmp.Verbose)

	sideA, err := a.loadSide(ctx, "load lockfile A", cmp.A, rep)
	if err != nil {
		return err
	}
	sideB, err := a.loadSide(ctx, "load lockfile B", cmp.B, rep)
	if err != nil {
		return err
	}

	names, err := a.reconcile(ctx, sideA, sideB, rep)
	if err != nil {
		return zerr.Wrap(err, "failed to reconcile universes")
	}

	_, span := a.tracer.Start(ctx, "diff")
	allSame := rep.Diff(sideA.Universe, sideB.Universe, names)
	rep.Summary(allSame)
	if !allSame {
		span.RecordError(domain.ErrVersionMismatch)
		span.End()
		return domain.ErrVersionMismatch
	}
	span.End()
	return nil
}

func (a *App) loadSide(ctx context.Context, stage string, spec *domain.Spec, rep *report.Reporter) (*reconciler.Side, error) {
	ctx, span := a.tracer.Start(ctx, stage)
	defer span.End()

	lf, err := a.source.Load(ctx, spec.Source)
	if err != nil {
		span.RecordError(err)
		return nil, zerr.Wrap(err, "failed to load lockfile")
	}
	rep.Loaded(lf)

	return &reconciler.Side{Spec: spec, Lockfile: lf}, nil
}

func (a *App) reconcile(ctx context.Context, sideA, sideB *reconciler.Side, rep *report.Reporter) ([]string, error) {
	_, span := a.tracer.Start(ctx, "reconcile")
	defer span.End()

	names, err := a.reconciler.Reconcile(sideA, sideB, rep)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return names, nil
}
