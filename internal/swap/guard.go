package swap

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

var (
	// ErrCandidateMissing means there is no candidate tree to compare
	// against. Callers treat this as "run a single phase", not a failure.
	ErrCandidateMissing = errors.New("candidate directory not found")

	// ErrStaleTemp means a temp directory from a previous run is still
	// on disk, so the tree is in an unknown state. Automatic recovery
	// would be unsafe; the user has to inspect and clean up by hand.
	ErrStaleTemp = errors.New("temp directory already exists; a previous run may have failed")
)

// Guard swaps the active implementation directory with a candidate
// sibling and guarantees the original layout comes back. At most one
// guard may be active per root; the stale-temp precondition enforces
// this across process invocations.
type Guard struct {
	root      string
	active    string
	candidate string
	temp      string
	swapped   bool
}

func NewGuard(root, active, candidate string) *Guard {
	return &Guard{
		root:      root,
		active:    active,
		candidate: candidate,
		temp:      active + "-original-temp",
	}
}

func (g *Guard) ActivePath() string    { return filepath.Join(g.root, g.active) }
func (g *Guard) CandidatePath() string { return filepath.Join(g.root, g.candidate) }
func (g *Guard) TempPath() string      { return filepath.Join(g.root, g.temp) }
func (g *Guard) Swapped() bool         { return g.swapped }

func (g *Guard) CandidateExists() bool {
	return exists(g.CandidatePath())
}

// Swap moves the active tree aside and puts the candidate in its
// place. Preconditions are checked before any rename so a failure
// leaves the tree untouched. If the second rename fails the first is
// rolled back, so the tree is never left half-swapped.
func (g *Guard) Swap() error {
	active := g.ActivePath()
	candidate := g.CandidatePath()
	temp := g.TempPath()

	if !exists(candidate) {
		return fmt.Errorf("%s: %w", candidate, ErrCandidateMissing)
	}
	if exists(temp) {
		return fmt.Errorf("%s: %w", temp, ErrStaleTemp)
	}

	fmt.Printf("Renaming %s -> %s\n", active, temp)
	if err := os.Rename(active, temp); err != nil {
		return fmt.Errorf("renaming active to temp: %w", err)
	}

	fmt.Printf("Renaming %s -> %s\n", candidate, active)
	if err := os.Rename(candidate, active); err != nil {
		if rerr := os.Rename(temp, active); rerr != nil {
			log.Printf("warning: restoring active tree after failed swap: %v", rerr)
		}
		return fmt.Errorf("renaming candidate to active: %w", err)
	}

	g.swapped = true
	return nil
}

// Restore undoes a swap. It is idempotent: calling it when never
// swapped, or a second time after a successful restore, is a no-op.
func (g *Guard) Restore() error {
	if !g.swapped {
		return nil
	}

	active := g.ActivePath()
	candidate := g.CandidatePath()
	temp := g.TempPath()

	fmt.Println("Restoring directory layout...")
	if exists(active) {
		fmt.Printf("Renaming %s -> %s\n", active, candidate)
		if err := os.Rename(active, candidate); err != nil {
			return fmt.Errorf("renaming active to candidate: %w", err)
		}
	}
	if exists(temp) {
		fmt.Printf("Renaming %s -> %s\n", temp, active)
		if err := os.Rename(temp, active); err != nil {
			return fmt.Errorf("renaming temp to active: %w", err)
		}
	}
	g.swapped = false
	return nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
