package core

import "errors"

var errRepoRequired = errors.New("no repository configured")
