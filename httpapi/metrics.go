package httpapi

import (
	"fmt"
	"net/http"
	"sync/atomic"
)

// metrics counts requests per endpoint, exposed as Prometheus text
// exposition on GET /metrics. Formats counters with fmt.Fprintf rather
// than pulling in a metrics library, since nothing else here wires a
// real Prometheus client.
type metrics struct {
	buildRequests  uint64
	imageRequests  uint64
	parseRequests  uint64
	countRequests  uint64
	encodingErrors uint64
}

func (m *metrics) writeText(w http.ResponseWriter) {
	fmt.Fprintf(w, "dmc_build_requests_total %d\n", atomic.LoadUint64(&m.buildRequests))
	fmt.Fprintf(w, "dmc_image_requests_total %d\n", atomic.LoadUint64(&m.imageRequests))
	fmt.Fprintf(w, "dmc_parse_requests_total %d\n", atomic.LoadUint64(&m.parseRequests))
	fmt.Fprintf(w, "dmc_count_ascii_requests_total %d\n", atomic.LoadUint64(&m.countRequests))
	fmt.Fprintf(w, "dmc_encoding_errors_total %d\n", atomic.LoadUint64(&m.encodingErrors))
}
