package tapeline

// Version is the library version, overridable via -ldflags.
var Version = "0.3.0"
