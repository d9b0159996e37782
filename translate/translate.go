// Package translate formats user-facing messages for the current locale.
package translate

//go:generate go tool gotext -srclang=en-US update -out=catalog.go -lang=en-US github.com/ezrec/aurc/...

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	mu      sync.RWMutex
	printer *message.Printer
)

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("aurc: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// SetLanguage overrides the detected locale, e.g. from a command line flag.
func SetLanguage(name string) (err error) {
	tag, err := language.Parse(name)
	if err != nil {
		return
	}

	mu.Lock()
	printer = message.NewPrinter(tag)
	mu.Unlock()

	return
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	mu.RLock()
	defer mu.RUnlock()

	return printer.Sprintf(key, args...)
}
