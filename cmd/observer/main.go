package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/boswachter/observations/browser"
	"github.com/boswachter/observations/client"
	"github.com/boswachter/observations/cliparse"
	"github.com/boswachter/observations/device"
	"github.com/boswachter/observations/identity"
	"github.com/boswachter/observations/models"
	"github.com/boswachter/observations/wizard"
)

const usage = `usage: observer [-server URL] [-identity FILE] <command> [flags]

commands:
  login <username>   save the observer name
  submit [flags]     capture and submit one observation
  list               show submitted observations
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		slog.Error("observer failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	if err := cliparse.LoadDotEnv(".env"); err != nil {
		return err
	}

	cfg, rest, err := cliparse.ParseClientFlags(args)
	if err != nil {
		return err
	}
	if len(rest) == 0 {
		fmt.Fprint(out, usage)
		return errors.New("missing command")
	}

	ids := identity.NewFileStore(cfg.IdentityFile)
	api := client.New(cfg.ServerURL)

	switch rest[0] {
	case "login":
		return runLogin(ctx, ids, rest[1:], out)
	case "submit":
		return runSubmit(ctx, ids, api, rest[1:], out)
	case "list":
		return runList(ctx, api, out)
	}
	fmt.Fprint(out, usage)
	return fmt.Errorf("unknown command %q", rest[0])
}

func runLogin(ctx context.Context, ids identity.Store, args []string, out io.Writer) error {
	name, err := identity.Login(ctx, ids, strings.Join(args, " "))
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Logged in as %s\n", name)
	return nil
}

func runSubmit(ctx context.Context, ids identity.Store, api *client.Client, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("submit", flag.ContinueOnError)
	image := fs.String("image", "", "Photo to attach (empty cancels)")
	taken := fs.String("taken", "", "Capture time, RFC 3339 (default: file modification time)")
	gps := fs.String("gps", "", "Device position \"lat, lon\"")
	tap := fs.String("at", "", "Override location \"lat, lon\"")
	species := fs.String("species", "", "Species: "+strings.Join(models.AllSpecies, ", "))
	count := fs.String("count", "", "Number of animals")
	gender := fs.String("gender", "", "Gender: "+strings.Join(models.AllGenders, ", "))
	age := fs.String("age", "", "Age: "+strings.Join(models.AllAges, ", "))
	health := fs.String("health", "", "Health 1-5")
	remarks := fs.String("remarks", "", "Additional description")
	if err := fs.Parse(args); err != nil {
		return err
	}

	src := device.FileImageSource{Path: *image}
	if *taken != "" {
		t, err := time.Parse(time.RFC3339, *taken)
		if err != nil {
			return fmt.Errorf("invalid -taken: %w", err)
		}
		src.CaptureTime = t
	}

	var locator device.StaticLocator
	if *gps != "" {
		c, err := parseCoordinate(*gps)
		if err != nil {
			return fmt.Errorf("invalid -gps: %w", err)
		}
		locator.Coord = &c
	}

	w, err := wizard.New(ctx, wizard.DefaultConfig(), wizard.Providers{
		Images:    src,
		Locator:   locator,
		Assets:    device.FileAssetMetadata{},
		Identity:  ids,
		Submitter: api,
	})
	if err != nil {
		return err
	}

	if err := w.SelectImage(ctx); err != nil {
		if errors.Is(err, wizard.ErrCanceled) {
			fmt.Fprintln(out, "No image selected")
			return nil
		}
		return err
	}
	if msg := w.View().Error; msg != "" {
		fmt.Fprintln(out, "Warning:", msg)
	}

	fields := map[wizard.Field]string{
		wizard.FieldSpecies:       *species,
		wizard.FieldObservedCount: *count,
		wizard.FieldGender:        *gender,
		wizard.FieldAge:           *age,
		wizard.FieldHealth:        *health,
		wizard.FieldRemarks:       *remarks,
	}
	for f, v := range fields {
		if err := w.UpdateField(f, v); err != nil {
			return err
		}
	}
	if *tap != "" {
		c, err := parseCoordinate(*tap)
		if err != nil {
			return fmt.Errorf("invalid -at: %w", err)
		}
		if err := w.SetLocation(c); err != nil {
			return err
		}
	}

	if err := w.Submit(ctx); err != nil {
		return err
	}

	obs := w.View().Submitted
	fmt.Fprintf(out, "Submitted observation #%d: %s %s\n", obs.ID, humanize.Comma(int64(obs.ObservedCount)), obs.Species)
	return nil
}

func runList(ctx context.Context, api *client.Client, out io.Writer) error {
	b := browser.New(api)
	if err := b.Load(ctx); err != nil {
		return fmt.Errorf("%s: %w", b.View().Error, err)
	}

	v := b.View()
	if len(v.Observations) == 0 {
		fmt.Fprintln(out, "No observations yet")
		return nil
	}
	for _, o := range v.Observations {
		when := "unknown time"
		if o.Timestamp > 0 {
			when = humanize.Time(time.UnixMilli(o.Timestamp))
		}
		fmt.Fprintf(out, "#%d  %s x%s  %s/%s  by %s  %s", o.ID, o.Species, humanize.Comma(int64(o.ObservedCount)), o.Gender, o.Age, o.User, when)
		if o.Location != "" {
			fmt.Fprintf(out, "  @ %s", o.Location)
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintf(out, "%s observations\n", humanize.Comma(int64(len(v.Observations))))
	return nil
}

// parseCoordinate reads "lat, lon".
func parseCoordinate(s string) (device.Coordinate, error) {
	lat, lon, ok := strings.Cut(s, ",")
	if !ok {
		return device.Coordinate{}, fmt.Errorf("expected \"lat, lon\", got %q", s)
	}
	la, err := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	if err != nil {
		return device.Coordinate{}, err
	}
	lo, err := strconv.ParseFloat(strings.TrimSpace(lon), 64)
	if err != nil {
		return device.Coordinate{}, err
	}
	if la < -90 || la > 90 || lo < -180 || lo > 180 {
		return device.Coordinate{}, fmt.Errorf("coordinate out of range: %q", s)
	}
	return device.Coordinate{Lat: la, Lon: lo}, nil
}
