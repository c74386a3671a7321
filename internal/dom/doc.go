/*
Package dom provides the in-memory element tree that server-side components
render into.

# Overview

A Document mirrors the client's DOM for one UI. Components mutate Elements
(attributes, properties, inline style, theme names, children) and every
mutation of an attached element is appended to the document's change log.
Flush drains the log once per round trip.

# Before client response

Components that need to post-process the tree register a task with
BeforeClientResponse. At most one task is pending per owner element: a new
registration replaces the pending one, so repeated requests inside one
round trip collapse into a single run.

	doc := dom.NewDocument(dom.WithLogger(logger.Logger))
	doc.Attach(layout.Element())
	changes := doc.Flush()

# Threading

A Document and its elements belong to one UI goroutine and are not safe for
concurrent use.
*/
package dom
