package store

import "errors"

var ErrIO = errors.New("io error")
var ErrCorruptState = errors.New("corrupt state")
var ErrDocumentNotFound = errors.New("document not found")
