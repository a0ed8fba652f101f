// Package cliutil holds the logging and request-correlation setup shared by
// tcosecheck's subcommands. The verification core itself never logs; all of
// this is strictly an ambient, CLI-side concern.
package cliutil

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// NewRequestLogger returns a logger tagged with a fresh request id, and the
// id itself, so that a batch of verification attempts (e.g. one
// `tcosecheck verify` run per file) can be traced per file in the log output.
func NewRequestLogger(textFormat bool) (*logrus.Entry, string) {
	logger := logrus.New()
	if textFormat {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	requestID := uuid.NewString()
	return logger.WithField("request_id", requestID), requestID
}
