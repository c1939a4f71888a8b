package codegen

// Options controls driver-level behavior of code generation that has no
// bearing on the semantics of the compiled program — the config-level
// knobs config.Config exposes, threaded down to the point that actually
// emits text.
type Options struct {
	// MainAlias, when true, emits a `_main` label alongside `main` for
	// macOS linkage (see genFunction). Defaults to true.
	MainAlias bool
}

// DefaultOptions mirrors config.Default(): the _main alias is emitted.
func DefaultOptions() Options {
	return Options{MainAlias: true}
}
