// Package scan enumerates editor packages and collects their key bindings.
package scan

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/llehouerou/cheatsheet/internal/keymap"
)

// Keymap file names looked up in each package directory.
const (
	defaultKeymap  = "Default.sublime-keymap"
	keymapTemplate = "Default (%s).sublime-keymap"
)

// Progress reports the progress of a scan.
type Progress struct {
	Phase   string // "scanning", "done"
	Current int
	Total   int
	Package string
}

// PackageStats holds per-package scan results.
type PackageStats struct {
	Name    string
	File    string // keymap file that was read
	Entries int    // entries kept after filtering
	Dropped int    // entries removed by the cap or the single-key filter
}

// Failure records a package whose keymap could not be read or parsed.
type Failure struct {
	Package string
	File    string
	Err     error
}

func (f Failure) Error() string {
	return fmt.Sprintf("%s: %v", f.Package, f.Err)
}

func (f Failure) Unwrap() error { return f.Err }

// Result holds everything a scan produced.
type Result struct {
	Entries  []keymap.Entry
	Packages []PackageStats
	Failures []Failure
}

// Summary returns a one-line description of the result.
func (r Result) Summary() string {
	s := fmt.Sprintf("%s in %s",
		english.Plural(len(r.Entries), "binding", ""),
		english.Plural(len(r.Packages), "package", ""))
	if n := len(r.Failures); n > 0 {
		s += fmt.Sprintf(", %s failed", humanize.Comma(int64(n)))
	}
	return s
}

// Scanner reads the keymap of every package under Root.
type Scanner struct {
	Root            string
	Platform        string   // "OSX", "Linux" or "Windows"
	Ignored         []string // package names to skip
	MaxPerPackage   int      // <= 0 = unlimited
	IgnoreSingleKey bool
	Logger          *log.Logger

	// Progress, when set, receives updates and is closed when Scan returns.
	Progress chan<- Progress
}

// Scan walks Root and returns the collected entries in package order
// (case-insensitive), then file order within each package.
//
// A package whose keymap cannot be parsed is logged, recorded in
// Result.Failures and skipped. Only a missing Root or a cancelled context
// fail the scan as a whole.
func (s *Scanner) Scan(ctx context.Context) (Result, error) {
	if s.Progress != nil {
		defer close(s.Progress)
	}
	logger := s.logger()

	names, err := s.packageNames()
	if err != nil {
		return Result{}, err
	}

	var res Result
	for i, name := range names {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		s.report(Progress{Phase: "scanning", Current: i, Total: len(names), Package: name})

		path := s.keymapPath(name)
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			logger.Warn("read keymap", "package", name, "err", err)
			res.Failures = append(res.Failures, Failure{Package: name, File: path, Err: err})
			continue
		}
		entries, err := keymap.Parse(name, data)
		if err != nil {
			logger.Warn("skipping package", "package", name, "file", filepath.Base(path), "err", err)
			res.Failures = append(res.Failures, Failure{Package: name, File: path, Err: err})
			continue
		}

		kept := s.filter(entries)
		logger.Debug("scanned package", "package", name, "entries", len(kept))
		res.Entries = append(res.Entries, kept...)
		res.Packages = append(res.Packages, PackageStats{
			Name:    name,
			File:    path,
			Entries: len(kept),
			Dropped: len(entries) - len(kept),
		})
	}

	s.report(Progress{Phase: "done", Current: len(names), Total: len(names)})
	return res, nil
}

func (s *Scanner) filter(entries []keymap.Entry) []keymap.Entry {
	kept := make([]keymap.Entry, 0, len(entries))
	for _, e := range entries {
		if s.MaxPerPackage > 0 && len(kept) >= s.MaxPerPackage {
			break
		}
		if s.IgnoreSingleKey && e.IsSingleKey() {
			continue
		}
		kept = append(kept, e)
	}
	return kept
}

// packageNames lists the non-ignored directories under Root, sorted
// case-insensitively.
func (s *Scanner) packageNames() ([]string, error) {
	dirents, err := os.ReadDir(s.Root)
	if err != nil {
		return nil, fmt.Errorf("read packages dir: %w", err)
	}

	names := make([]string, 0, len(dirents))
	for _, d := range dirents {
		if slices.Contains(s.Ignored, d.Name()) {
			continue
		}
		if !isDir(filepath.Join(s.Root, d.Name())) {
			continue
		}
		names = append(names, d.Name())
	}
	slices.SortStableFunc(names, func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	return names, nil
}

// keymapPath returns the platform keymap of a package, falling back to the
// generic one, or "" when the package has neither.
func (s *Scanner) keymapPath(pkg string) string {
	dir := filepath.Join(s.Root, pkg)
	if s.Platform != "" {
		p := filepath.Join(dir, fmt.Sprintf(keymapTemplate, s.Platform))
		if isFile(p) {
			return p
		}
	}
	p := filepath.Join(dir, defaultKeymap)
	if isFile(p) {
		return p
	}
	return ""
}

func (s *Scanner) report(p Progress) {
	if s.Progress != nil {
		s.Progress <- p
	}
}

func (s *Scanner) logger() *log.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return log.Default()
}

// PlatformName maps a GOOS value to the platform suffix used in keymap
// file names.
func PlatformName(goos string) string {
	switch goos {
	case "darwin":
		return "OSX"
	case "windows":
		return "Windows"
	default:
		return "Linux"
	}
}

// IsKeymapFile reports whether name is a keymap file the scanner reads.
func IsKeymapFile(name string) bool {
	return name == defaultKeymap ||
		(strings.HasPrefix(name, "Default (") && strings.HasSuffix(name, ").sublime-keymap"))
}

// ErrNoPackages is returned by callers that require at least one package.
var ErrNoPackages = errors.New("no packages with key bindings found")

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
