package cli

import (
	"github.com/roach88/dynstore/internal/store"
)

// openStore resolves the table definition and opens the store. Every
// command except create expects the definition file to exist already.
func openStore(opts *RootOptions) (*store.Store, error) {
	if opts.Def == "" {
		return nil, &ExitError{
			Code:    ExitCommandError,
			Message: "pass --def or set DYNSTORE_DEF to a table definition YAML file",
		}
	}
	def, err := LoadTableDef(opts.Def)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "load table definition", err)
	}
	desc, err := def.Descriptor()
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid table definition", err)
	}
	s, err := store.Open(opts.DB, desc)
	if err != nil {
		return nil, WrapExitError(ExitFailure, "open store", err)
	}
	return s, nil
}
