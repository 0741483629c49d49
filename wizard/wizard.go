// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package wizard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/boswachter/observations/device"
	"github.com/boswachter/observations/identity"
	"github.com/boswachter/observations/models"
)

// State is a wizard stage.
type State int

const (
	SelectingImage State = iota
	EditingMetadata
	Submitted
)

func (s State) String() string {
	switch s {
	case SelectingImage:
		return "selecting_image"
	case EditingMetadata:
		return "editing_metadata"
	case Submitted:
		return "submitted"
	}
	return "unknown"
}

var (
	ErrBusy         = errors.New("another operation is in progress")
	ErrCanceled     = errors.New("image selection canceled")
	ErrInvalidState = errors.New("operation not allowed in current state")
	ErrUnknownField = errors.New("unknown field")
	ErrMissingField = errors.New("missing required field")
	ErrSubmitFailed = errors.New("submission failed")
	ErrNoProvider   = errors.New("missing capability provider")
)

// ImageSource is the image picker. ok is false when the user canceled.
type ImageSource interface {
	Pick(ctx context.Context) (img device.Image, ok bool, err error)
}

type Locator interface {
	Locate(ctx context.Context) (device.Coordinate, error)
}

type AssetMetadata interface {
	ModTime(ctx context.Context, ref string) (time.Time, error)
}

type Submitter interface {
	Submit(ctx context.Context, obs models.ObservationCreate) (models.CreateObservationResponse, error)
}

// Providers are the capabilities a wizard drives. Now defaults to
// time.Now.
type Providers struct {
	Images    ImageSource
	Locator   Locator
	Assets    AssetMetadata
	Identity  identity.Store
	Submitter Submitter
	Now       func() time.Time
}

// Draft is the observation being edited. Count stays text until submission.
type Draft struct {
	Species       string
	ObservedCount string
	Gender        string
	Age           string
	Health        string
	Location      string
	Remarks       string
	Timestamp     time.Time
	Username      string
}

// View is a snapshot for rendering.
type View struct {
	State     State
	Draft     Draft
	Image     string
	Loading   bool
	Error     string
	Submitted *models.Observation
}

// Wizard runs the capture flow SelectingImage → EditingMetadata →
// Submitted. At most one provider call is outstanding at a time.
type Wizard struct {
	cfg      Config
	p        Providers
	username string

	mu        sync.Mutex
	state     State
	draft     Draft
	image     string
	busy      bool
	errMsg    string
	submitted *models.Observation
}

// New reads the username once and returns a wizard in SelectingImage.
func New(ctx context.Context, cfg Config, p Providers) (*Wizard, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if p.Images == nil || p.Locator == nil || p.Assets == nil || p.Identity == nil || p.Submitter == nil {
		return nil, ErrNoProvider
	}
	if p.Now == nil {
		p.Now = time.Now
	}

	username, err := p.Identity.Username(ctx)
	if err != nil {
		return nil, fmt.Errorf("read username: %w", err)
	}

	return &Wizard{
		cfg:      cfg,
		p:        p,
		username: username,
		state:    SelectingImage,
		draft:    Draft{Username: username},
	}, nil
}

func (w *Wizard) View() View {
	w.mu.Lock()
	defer w.mu.Unlock()

	return View{
		State:     w.state,
		Draft:     w.draft,
		Image:     w.image,
		Loading:   w.busy,
		Error:     w.errMsg,
		Submitted: w.submitted,
	}
}

// begin claims the single in-flight slot. Callers hold w.mu.
func (w *Wizard) begin(want State) error {
	if w.busy {
		return ErrBusy
	}
	if w.state != want {
		return fmt.Errorf("%w: %s", ErrInvalidState, w.state)
	}
	w.busy = true
	return nil
}

// SelectImage picks a photo and geotags it. Geotag failures are reported
// in the view but still advance to EditingMetadata.
func (w *Wizard) SelectImage(ctx context.Context) error {
	w.mu.Lock()
	if err := w.begin(SelectingImage); err != nil {
		w.mu.Unlock()
		return err
	}
	w.mu.Unlock()

	img, ok, err := w.p.Images.Pick(ctx)
	if err != nil || !ok {
		w.mu.Lock()
		w.busy = false
		if err != nil {
			w.errMsg = "image selection failed: " + err.Error()
		}
		w.mu.Unlock()
		if err != nil {
			return err
		}
		return ErrCanceled
	}

	var geotagErr string
	location := ""
	if coord, err := w.p.Locator.Locate(ctx); err != nil {
		geotagErr = "could not determine location: " + err.Error()
	} else {
		location = coord.String()
	}

	// Capture time wins over the asset's modification time; with neither
	// the timestamp stays unset until submission.
	ts := img.CaptureTime
	if ts.IsZero() {
		mod, err := w.p.Assets.ModTime(ctx, img.Ref)
		if err != nil {
			slog.Warn("asset metadata unavailable", "image", img.Ref, "error", err)
		} else {
			ts = mod
		}
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.busy = false
	w.image = img.Ref
	w.draft.Location = location
	w.draft.Timestamp = ts
	w.errMsg = geotagErr
	w.state = EditingMetadata
	return nil
}

// UpdateField overwrites one field. No validation happens here. Edits
// are refused with ErrBusy while a provider call is outstanding.
func (w *Wizard) UpdateField(f Field, value string) error {
	if !w.cfg.Active(f) {
		return fmt.Errorf("%w: %q", ErrUnknownField, f)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.busy {
		return ErrBusy
	}

	switch f {
	case FieldSpecies:
		w.draft.Species = value
	case FieldObservedCount:
		w.draft.ObservedCount = value
	case FieldGender:
		w.draft.Gender = value
	case FieldAge:
		w.draft.Age = value
	case FieldHealth:
		w.draft.Health = value
	case FieldLocation:
		w.draft.Location = value
	case FieldRemarks:
		w.draft.Remarks = value
	}
	return nil
}

// SetLocation applies a map tap.
func (w *Wizard) SetLocation(c device.Coordinate) error {
	return w.UpdateField(FieldLocation, c.String())
}

// Submit validates the draft and sends it once. On failure the wizard
// stays in EditingMetadata with the error in the view.
func (w *Wizard) Submit(ctx context.Context) error {
	w.mu.Lock()
	if err := w.begin(EditingMetadata); err != nil {
		w.mu.Unlock()
		return err
	}

	obs, err := w.build()
	if err != nil {
		w.busy = false
		w.errMsg = err.Error()
		w.mu.Unlock()
		return err
	}
	w.mu.Unlock()

	res, err := w.p.Submitter.Submit(ctx, obs)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.busy = false

	if err != nil {
		slog.Error("observation submission failed", "species", obs.Species, "error", err)
		w.errMsg = ErrSubmitFailed.Error()
		return fmt.Errorf("%w: %w", ErrSubmitFailed, err)
	}

	stored := res.Observation
	if stored.ID == 0 {
		stored.ObservationCreate = obs
	}
	w.submitted = &stored
	w.image = ""
	w.draft = Draft{Username: w.username}
	w.errMsg = ""
	w.state = Submitted
	return nil
}

// build turns the draft into a request. Callers hold w.mu.
func (w *Wizard) build() (models.ObservationCreate, error) {
	d := w.draft
	values := map[Field]string{
		FieldSpecies:       d.Species,
		FieldObservedCount: d.ObservedCount,
		FieldGender:        d.Gender,
		FieldAge:           d.Age,
		FieldHealth:        d.Health,
		FieldLocation:      d.Location,
		FieldRemarks:       d.Remarks,
	}
	for _, f := range w.cfg.Required {
		if strings.TrimSpace(values[f]) == "" {
			return models.ObservationCreate{}, fmt.Errorf("%w: %s", ErrMissingField, f)
		}
	}

	count := 1
	if w.cfg.Active(FieldObservedCount) && strings.TrimSpace(d.ObservedCount) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(d.ObservedCount))
		if err != nil {
			return models.ObservationCreate{}, models.ErrInvalidCount
		}
		count = n
	}

	ts := d.Timestamp
	if ts.IsZero() {
		ts = w.p.Now()
	}

	obs := models.ObservationCreate{
		Species:               d.Species,
		ObservedCount:         count,
		Gender:                orUnknown(d.Gender, models.GenderUnknown),
		Age:                   orUnknown(d.Age, models.AgeUnknown),
		Health:                d.Health,
		Location:              d.Location,
		Timestamp:             ts.UnixMilli(),
		User:                  w.username,
		AdditionalDescription: d.Remarks,
	}
	if err := obs.Validate(); err != nil {
		return models.ObservationCreate{}, err
	}
	return obs, nil
}

func orUnknown(v, unknown string) string {
	if v == "" {
		return unknown
	}
	return v
}

// Reset starts a blank observation. The username is kept.
func (w *Wizard) Reset() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.busy {
		return ErrBusy
	}
	w.state = SelectingImage
	w.draft = Draft{Username: w.username}
	w.image = ""
	w.errMsg = ""
	w.submitted = nil
	return nil
}
