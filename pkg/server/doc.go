// Package server provides a local preview server for documents built
// with the htmlgen API.
//
// Pages are registered as factories and rendered per request:
//
//	s := server.New(&server.Config{Addr: "localhost:3000", EnableReload: true})
//	s.HandlePage("/", func() *html.Page {
//	    return html.NewPage().AddTitle("Home").AddHeader(1, "Hello")
//	})
//	err := s.Start(ctx)
//
// The server exposes Prometheus metrics at /metrics, traces each
// render with OpenTelemetry, and optionally injects a live-reload
// client connected to a WebSocket hub; call Reload().NotifyReload()
// to refresh connected browsers.
package server
