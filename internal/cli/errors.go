package cli

import "errors"

// errDatasetRequired indicates a subcommand was invoked without the
// persistent --dataset flag, which every subcommand except the bare root
// requires.
var errDatasetRequired = errors.New("cli: --dataset is required")
