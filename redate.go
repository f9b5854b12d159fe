// Package redate interactively rewrites the author and committer dates
// of commits in a local git repository.
//
// Related packages: config, datefmt, gitlog, model, runner, vcs, vcs/gitcli
package redate

import "github.com/redate/redate/config"

// Config holds most of the configuration variables for redate. This struct is
// intended for command-line use, so not all of its attributes are applicable
// to every operation.
//
// See "go doc github.com/redate/redate/config Config" for more information.
type Config = config.Config
