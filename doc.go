// Package website assembles the TurboHomes marketing site.
//
// A Site wires the content catalog, the route table, the dictionaries and
// the page handlers into one HTTP handler, and drives the same handler for
// static export and publishing:
//
//	cfg, err := config.Load()
//	if err != nil {
//		return err
//	}
//	site, err := website.New(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	return site.Serve(cfg.HTTPAddr)
//
// Middleware runs in this order: RequestID, Metrics, Locale, Recover,
// PageCache. Health, metrics and static files bypass it.
package website
