package identity

import "errors"

// ErrUnknownKeyState names the case where a facade operation needs a
// prefix's current key state but the log holds no entries for it. The
// facade operations do not return it: that case surfaces as
// kel.ErrNotFound from the log.
var ErrUnknownKeyState = errors.New("identity: no key state for prefix")
