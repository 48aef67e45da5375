package messages

import "github.com/midian/base/errors"

// Key identifies a message template in a Table.
type Key string

// Lookup keys, one per kind.
const (
	KeyHTTPStatus Key = "http-status-code-error"
	KeyHTTPError  Key = "http-exception-error"
	KeySocket     Key = "socket-exception-error"
	KeyNetwork    Key = "network-not-connected"
	KeyParse      Key = "parse-failed"
	KeyIO         Key = "io-exception-error"
	KeyRuntime    Key = "runtime-error"
	KeyServer     Key = "server-error"
)

var kindKeys = map[errors.Kind]Key{
	errors.KindHTTPStatus: KeyHTTPStatus,
	errors.KindHTTPError:  KeyHTTPError,
	errors.KindSocket:     KeySocket,
	errors.KindNetwork:    KeyNetwork,
	errors.KindParse:      KeyParse,
	errors.KindIO:         KeyIO,
	errors.KindRuntime:    KeyRuntime,
	errors.KindServer:     KeyServer,
}

// KeyFor returns the lookup key of kind.
func KeyFor(kind errors.Kind) (Key, bool) {
	key, ok := kindKeys[kind]
	return key, ok
}

// Keys returns every lookup key in kind tag order.
func Keys() []Key {
	kinds := errors.Kinds()
	keys := make([]Key, 0, len(kinds))
	for _, k := range kinds {
		keys = append(keys, kindKeys[k])
	}
	return keys
}

func validKey(key Key) bool {
	for _, k := range kindKeys {
		if k == key {
			return true
		}
	}
	return false
}
