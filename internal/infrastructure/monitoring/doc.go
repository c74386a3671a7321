/*
Package monitoring provides Prometheus metrics for the rendering host and
split layouts.

# Overview

Collectors are registered on a private registry per Metrics value, so
several documents or tests can each own one without clashing on the
global registry.

# Features

- Document flushes, flush duration and flushed change counts
- Before-client-response tasks run, replaced, canceled and pending
- Split layout slot re-renders and splitter style recalculations

# Usage

	metrics := monitoring.NewMetrics("splitlayout")
	doc := dom.NewDocument(dom.WithMetrics(metrics))

	handler := promhttp.HandlerFor(metrics.Registry(), promhttp.HandlerOpts{})

A nil *Metrics is accepted everywhere and records nothing.
*/
package monitoring
