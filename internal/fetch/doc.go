// Package fetch tracks the lifecycle of remote reads and writes as
// view state. A Resource represents one remote read and exposes a
// snapshot of {data, loading, error} that templates can render without
// knowing anything about transports. Keyed resources depend on a
// parameter such as an entity id and skip fetching while the key is
// unset. Actions wrap one-shot writes like login and record their
// outcome the same way.
//
// Resources are safe for concurrent use. When loads overlap, only the
// most recently started load may publish its result; settlements from
// superseded loads are discarded.
package fetch
