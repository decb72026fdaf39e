package config

// FlagSet reports which flags were set on the command line. *pflag.FlagSet
// satisfies it.
type FlagSet interface {
	Changed(name string) bool
}

// Apply copies a config file value into target unless the flag was set
// explicitly or the file left the value out.
func Apply[T any](flags FlagSet, name string, target, value *T) {
	if value == nil {
		return
	}
	if flags != nil && flags.Changed(name) {
		return
	}
	*target = *value
}
