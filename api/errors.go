package api

import "errors"

// ErrorInvalidCapacity is raised, as panic, when a container is
// constructed with a negative capacity hint.
var ErrorInvalidCapacity = errors.New("api.invalidcapacity")

// ErrorDuplicateKey is returned by add-style inserts when the key
// is already present. Overwrite-style inserts never return this.
var ErrorDuplicateKey = errors.New("api.duplicatekey")

// ErrorKeyMissing is returned when an operation that requires the
// key to be present finds it absent.
var ErrorKeyMissing = errors.New("api.keymissing")

// ErrorConcurrentModification is raised, as panic, when a node
// handle or iterator is used after the container underwent a
// structural mutation. Detection is lazy, on next access.
var ErrorConcurrentModification = errors.New("api.concurrentmodification")
