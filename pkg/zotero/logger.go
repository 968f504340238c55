package zotero

import (
	"github.com/op/go-logging"
)

const module = "zotero"

var logger = logging.MustGetLogger(module)

// Decoding reports unknown members and roles at debug level. The module is
// kept at WARNING until the application asks for more with SetLogLevel.
// logging.SetBackend resets all module levels.
func init() {
	logging.SetLevel(logging.WARNING, module)
}

// SetLogLevel sets the level of the zotero logging module.
func SetLogLevel(level logging.Level) {
	logging.SetLevel(level, module)
}

// SetLogger replaces the package logger. Call it before decoding starts.
func SetLogger(l *logging.Logger) {
	if l != nil {
		logger = l
	}
}
