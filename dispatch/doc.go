// Package dispatch serves HTTP requests through a routing.Finder.
//
// A Dispatcher turns each *http.Request into a routing request: the path is
// cleaned of dot segments, the host is stripped of its port and converted
// to lowercase ASCII, and the accepted format is negotiated from the Accept
// header. The matched route's controller binding selects the handler
// registered with Handle:
//
//	finder := routing.NewFinder(routes, aliases)
//	d := dispatch.New(finder, dispatch.WithLogger(logger))
//	d.HandleFunc("articles", "list", func(w http.ResponseWriter, r *http.Request) {
//	    page, _ := dispatch.Param(r, "page")
//	    format := dispatch.CurrentMatch(r).Format()
//	    ...
//	})
//
// Requests no route matches go to the not-found handler (404 by default).
// A matched route whose controller has no registered handler is answered
// with 500 and logged.
//
// # Metrics
//
// NewMetrics builds prometheus collectors counting dispatches per route and
// outcome and timing route lookups:
//
//	m := dispatch.NewMetrics("brickoo")
//	prometheus.MustRegister(m.Collectors()...)
//	d := dispatch.New(finder, dispatch.WithMetrics(m))
package dispatch
