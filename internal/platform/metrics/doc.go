// Package metrics keeps in-process request counters and mirrors every
// increment to an OpenTelemetry Int64Counter. The counters are exposed as
// plain text or JSON for scraping without an exporter.
package metrics
