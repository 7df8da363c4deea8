package health

// ModelChecker reports whether the price model is loaded.
type ModelChecker interface {
	Available() bool
}

// AssetChecker reports whether an optional static asset can be served.
type AssetChecker interface {
	Exists() bool
}
