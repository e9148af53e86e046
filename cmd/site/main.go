// Command site serves, exports and publishes the TurboHomes marketing site.
//
// Usage:
//
//	site serve   [-addr :8080]
//	site export  [-out out] [-prune]
//	site publish [-out out] [-prune]
//	site routes
//
// Settings come from the environment; see internal/config.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	website "github.com/turbohomes/website"
	"github.com/turbohomes/website/internal/config"
)

var errUsage = errors.New("usage: site <serve|export|publish|routes> [flags]")

type cli struct {
	stdout io.Writer
	stderr io.Writer
	load   func() (*config.Config, error)
	opts   []website.Option
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	c := &cli{stdout: os.Stdout, stderr: os.Stderr, load: config.Load}
	if err := c.run(ctx, os.Args[1:]); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func (c *cli) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "serve":
		return c.serve(ctx, args[1:])
	case "export":
		return c.export(ctx, args[1:])
	case "publish":
		return c.publish(ctx, args[1:])
	case "routes":
		return c.routes(ctx, args[1:])
	default:
		return fmt.Errorf("unknown command %q\n%w", args[0], errUsage)
	}
}

func (c *cli) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	return fs
}

// site loads config and builds the site. The caller closes it.
func (c *cli) site(ctx context.Context) (*website.Site, *config.Config, error) {
	cfg, err := c.load()
	if err != nil {
		return nil, nil, err
	}
	s, err := website.New(ctx, cfg, c.opts...)
	if err != nil {
		return nil, nil, err
	}
	return s, cfg, nil
}

func (c *cli) serve(ctx context.Context, args []string) error {
	fs := c.flags("serve")
	addr := fs.String("addr", "", "listen address (default: HTTP_ADDR)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	s, cfg, err := c.site(ctx)
	if err != nil {
		return err
	}
	if *addr == "" {
		*addr = cfg.HTTPAddr
	}
	if err := s.Serve(ctx, *addr); err != nil {
		_ = s.Close(context.Background())
		return err
	}
	return nil
}

func (c *cli) export(ctx context.Context, args []string) (err error) {
	fs := c.flags("export")
	out := fs.String("out", "", "output directory (default: EXPORT_DIR)")
	prune := fs.Bool("prune", false, "remove files left by earlier exports")
	if err := fs.Parse(args); err != nil {
		return err
	}

	s, cfg, err := c.site(ctx)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, s.Close(context.Background())) }()

	if *out == "" {
		*out = cfg.ExportDir
	}
	m, err := s.Export(ctx, *out, *prune)
	if err != nil {
		return err
	}

	var size int64
	for _, f := range m.Files {
		size += f.Size
	}
	fmt.Fprintf(c.stdout, "exported %d files (%d bytes) to %s\n", len(m.Files), size, *out)
	return nil
}

func (c *cli) publish(ctx context.Context, args []string) (err error) {
	fs := c.flags("publish")
	out := fs.String("out", "", "export directory (default: EXPORT_DIR)")
	prune := fs.Bool("prune", false, "delete stale local files and bucket objects")
	if err := fs.Parse(args); err != nil {
		return err
	}

	s, cfg, err := c.site(ctx)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, s.Close(context.Background())) }()

	if *out == "" {
		*out = cfg.ExportDir
	}
	report, err := s.Publish(ctx, *out, *prune)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.stdout, "uploaded %d files (%d bytes), deleted %d in %s\n",
		report.Uploaded, report.Bytes, report.Deleted, report.Took.Round(time.Millisecond))
	return nil
}

func (c *cli) routes(ctx context.Context, args []string) (err error) {
	fs := c.flags("routes")
	if err := fs.Parse(args); err != nil {
		return err
	}

	s, _, err := c.site(ctx)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, s.Close(context.Background())) }()

	for _, r := range s.Routes() {
		fmt.Fprintf(c.stdout, "%s\t%s\t%s\n", r.Locale, r.Kind, r.Path)
	}
	return nil
}
