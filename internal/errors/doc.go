// Package errors provides the error values returned by the goto-cd store.
//
// Callers match them with errors.Is rather than comparing strings:
//
//	if errors.Is(err, gerrors.ErrNotFound) {
//	    // alias or profile is missing
//	}
//
// Internal packages wrap the sentinels with context:
//
//	return fmt.Errorf("teleport %q: %w", alias, errors.ErrNotFound)
package errors
