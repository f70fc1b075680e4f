package archive

import "errors"

// Sentinel errors returned (wrapped) by [Archiver.Process]. Each aborts the
// language directory being processed.
var (
	ErrMediaDirMissing = errors.New("media directory not found")
	ErrDocumentRead    = errors.New("cannot read document")
	ErrMoveCollision   = errors.New("archive destination already exists")
)
