package tree

import "errors"

// ErrUnknownVariant indicates a variant name that is not basic, random or colored.
var ErrUnknownVariant = errors.New("tree: unknown variant")
