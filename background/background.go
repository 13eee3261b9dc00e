package background

import (
	"github.com/sirupsen/logrus"

	"github.com/helpconnect/helpconnect-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "background")
}

// Background maintains common clients and functions for all background
// workers.
type Background struct {
	Store store.HelpConnectCore
}

func New(s store.HelpConnectCore) *Background {
	return &Background{
		Store: s,
	}
}
