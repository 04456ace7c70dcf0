// Package logging provides leveled output for goto-cd.
//
// Verbosity is controlled by two flags:
//
//   - --verbose: shows info messages
//   - --debug: shows info and debug messages
//
// Warnings and errors are always written to stderr. The store packages
// only call Debugf, so a zero Logger keeps them silent.
//
//	log := &logging.Logger{Verbose: verbose, Debug: debug}
//	log.Infof("switched to profile %s", name)
package logging
