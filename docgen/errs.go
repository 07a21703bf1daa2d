package docgen

import "errors"

// ErrSerialize reports that a leaf value could not be converted to its
// canonical text form. It aborts the whole render; no partial output is
// usable. Mapping and list traversal itself cannot fail.
var ErrSerialize = errors.New("serialization error")
