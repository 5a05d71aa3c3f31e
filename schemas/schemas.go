package schemas

import "embed"

// FormsFS содержит JSON-схемы клиентских форм.
//
//go:embed forms
var FormsFS embed.FS
