// Package report renders the comparison output with consistent color profile
// and TTY handling.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"go.trai.ch/lockcmp/internal/core/domain"
)

// ColorProfile returns the color profile to use for report output.
// It checks if NO_COLOR is set, returning Ascii if so.
// Otherwise, it detects the terminal's capabilities automatically.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// Reporter writes the human-readable comparison report. It implements the
// reconciler's progress sink so convergence events interleave with the diff
// in the order they happen.
type Reporter struct {
	out     *termenv.Output
	verbose bool
}

// New creates a Reporter writing to w with the environment's color profile.
func New(w io.Writer, verbose bool) *Reporter {
	return NewWithProfile(w, ColorProfile(), verbose)
}

// NewWithProfile creates a Reporter with an explicit color profile (used for
// testing).
func NewWithProfile(w io.Writer, profile termenv.Profile, verbose bool) *Reporter {
	if w == nil {
		w = os.Stdout
	}
	return &Reporter{
		out:     termenv.NewOutput(w, termenv.WithProfile(profile), termenv.WithTTY(true)),
		verbose: verbose,
	}
}

// Loaded announces a fetched lockfile. Verbose only.
func (r *Reporter) Loaded(lf *domain.Lockfile) {
	if !r.verbose {
		return
	}
	r.printf("loaded %s (%d packages, fingerprint %016x)\n", lf.Source, len(lf.Packages), lf.Fingerprint)
}

// Discovered announces a package inserted into a universe. Verbose only.
func (r *Reporter) Discovered(source string, pkg *domain.Package) {
	if !r.verbose {
		return
	}
	r.printf("found %s %s %s\n", source, pkg.Name, pkg.Version)
}

// UniverseSizes reports the universe sizes after the discovery pass.
func (r *Reporter) UniverseSizes(a, b, common int) {
	r.printf("%d packages in lockfile A\n", a)
	r.printf("%d packages in lockfile B\n", b)
	r.printf("%d packages in common\n", common)
}

// Narrowing reports the exclusions injected before the verification pass.
func (r *Reporter) Narrowing(excludedA, excludedB int) {
	r.printf("excluding packages outside intersection and recalculating\n")
	r.printf("excluded %d more packages from lockfile A\n", excludedA)
	r.printf("excluded %d more packages from lockfile B\n", excludedB)
}

// Diff prints the per-name verdicts for the common names and reports whether
// every common package carries the same version on both sides. SAME lines
// appear only in verbose mode; DIFFERENT lines always print, followed by the
// dependency path that led each side to its version.
func (r *Reporter) Diff(ua, ub *domain.Universe, names []string) bool {
	allSame := true
	for _, name := range names {
		a, ok := ua.Lookup(name)
		if !ok {
			continue
		}
		b, ok := ub.Lookup(name)
		if !ok {
			continue
		}

		if a.Package.Version == b.Package.Version {
			if r.verbose {
				verdict := r.out.String("SAME").Foreground(termenv.ANSIGreen).String()
				r.printf("%s %s %s\n", verdict, name, a.Package.Version)
			}
			continue
		}

		allSame = false
		verdict := r.out.String("DIFFERENT").Foreground(termenv.ANSIRed).String()
		r.printf("%s %s %s vs. %s\n", verdict, name, a.Package.Version, b.Package.Version)
		r.printf("  path A: %s\n", domain.PathString(a.Path))
		r.printf("  path B: %s\n", domain.PathString(b.Path))
	}
	return allSame
}

// Summary prints the closing line of a fully matching comparison.
func (r *Reporter) Summary(allSame bool) {
	if allSame {
		r.printf("All packages have the same versions\n")
	}
}

func (r *Reporter) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}
