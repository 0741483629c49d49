// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package browser

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"

	"github.com/boswachter/observations/models"
)

// ErrorMessage is shown for every failed load.
const ErrorMessage = "Error fetching data"

var ErrBusy = errors.New("load already in progress")

type State int

const (
	Idle State = iota
	Loading
	Loaded
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	}
	return "unknown"
}

type Lister interface {
	List(ctx context.Context, offset, limit int) ([]models.Observation, error)
}

type View struct {
	State        State
	Observations []models.Observation
	Error        string
}

// Browser lists previously submitted observations.
type Browser struct {
	lister Lister

	mu     sync.Mutex
	state  State
	items  []models.Observation
	errMsg string
}

func New(l Lister) *Browser {
	return &Browser{lister: l}
}

// Load fetches the collection once. There is no paging and no retry.
func (b *Browser) Load(ctx context.Context) error {
	b.mu.Lock()
	if b.state == Loading {
		b.mu.Unlock()
		return ErrBusy
	}
	b.state = Loading
	b.errMsg = ""
	b.mu.Unlock()

	items, err := b.lister.List(ctx, 0, 0)

	b.mu.Lock()
	defer b.mu.Unlock()
	if err != nil {
		slog.Error("failed to load observations", "error", err)
		b.state = Failed
		b.items = nil
		b.errMsg = ErrorMessage
		return err
	}

	if items == nil {
		items = []models.Observation{}
	}
	b.state = Loaded
	b.items = items
	return nil
}

func (b *Browser) View() View {
	b.mu.Lock()
	defer b.mu.Unlock()
	return View{State: b.state, Observations: slices.Clone(b.items), Error: b.errMsg}
}
