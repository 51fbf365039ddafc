/*
Package observability turns solver hooks into Prometheus metrics.

Metrics can be served over HTTP (see Registry) or written once at the end of
a batch run with WriteTextfile.
*/
package observability
