package profiling

import (
	"net"
	"net/http"
	"net/http/pprof"

	"github.com/kaspanet/kaspadns/infrastructure/logger"
	"github.com/kaspanet/kaspadns/util/panics"
)

// Start serves the pprof handlers on localhost:port in the background.
// A failing listener is logged and doesn't stop the caller.
func Start(port string, log *logger.Logger) {
	listenAddr := net.JoinHostPort("localhost", port)
	server := &http.Server{Addr: listenAddr, Handler: profileMux()}

	spawn := panics.GoroutineWrapperFunc(log)
	spawn("profiling.Start", func() {
		log.Infof("Profile server listening on %s", listenAddr)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Errorf("Profile server stopped: %s", err)
		}
	})
}

func profileMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	mux.Handle("/", http.RedirectHandler("/debug/pprof/", http.StatusSeeOther))
	return mux
}
