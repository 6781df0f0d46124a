package action

// Kind identifies what an execution copies to the clipboard.
type Kind int

const (
	// CopyCode copies the textual :code: form.
	CopyCode Kind = iota

	// CopyEmoji copies the emoji glyph.
	CopyEmoji
)

// String returns the action name used in configuration.
func (k Kind) String() string {
	switch k {
	case CopyEmoji:
		return "copy_emoji"
	default:
		return "copy_code"
	}
}

// ParseKind maps an action name to its Kind. Unknown names report false.
func ParseKind(name string) (Kind, bool) {
	switch name {
	case "copy_code":
		return CopyCode, true
	case "copy_emoji":
		return CopyEmoji, true
	default:
		return CopyCode, false
	}
}

// KindOrDefault parses name and falls back to CopyCode for unknown names.
func KindOrDefault(name string) Kind {
	k, _ := ParseKind(name)
	return k
}

// Definition describes an action to the host.
type Definition struct {
	Kind      Kind   `json:"-"`
	Name      string `json:"name"`
	Label     string `json:"label"`
	ShortDesc string `json:"short_desc"`
}

// Definitions returns the actions offered for every suggestion.
func Definitions() []Definition {
	return []Definition{
		{
			Kind:      CopyCode,
			Name:      CopyCode.String(),
			Label:     "Copy emoji code",
			ShortDesc: "Copy the emoji :code: to clipboard",
		},
		{
			Kind:      CopyEmoji,
			Name:      CopyEmoji.String(),
			Label:     "Copy emoji",
			ShortDesc: "Copy emoji to clipboard",
		},
	}
}
