package layout

// Common holds the fields every node accepts.
type Common struct {
	Kind string `mapstructure:"kind"`
	// Style is either a description string ("bold fg=#f00") or a map of
	// style.Termenv fields.
	Style any `mapstructure:"style"`
}

type textNode struct {
	Common `mapstructure:",squash"`
	Text   string `mapstructure:"text"`
	Wrap   int    `mapstructure:"wrap"`
	Align  string `mapstructure:"align"`
}

type fillNode struct {
	Common `mapstructure:",squash"`
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	With   string `mapstructure:"with"`
}

type lineNode struct {
	Common `mapstructure:",squash"`
	Axis   string `mapstructure:"axis"`
	Length int    `mapstructure:"length"`
	Stroke string `mapstructure:"stroke"`
}

type dividerNode struct {
	Common `mapstructure:",squash"`
	Length int    `mapstructure:"length"`
	Label  string `mapstructure:"label"`
	Stroke string `mapstructure:"stroke"`
}

type frameNode struct {
	Common `mapstructure:",squash"`
	Stroke string `mapstructure:"stroke"`
	Title  string `mapstructure:"title"`
	Child  any    `mapstructure:"child"`
}

type joinNode struct {
	Common   `mapstructure:",squash"`
	Axis     string `mapstructure:"axis"`
	At       string `mapstructure:"at"`
	Gap      int    `mapstructure:"gap"`
	Children []any  `mapstructure:"children"`
}

type overlayNode struct {
	Common   `mapstructure:",squash"`
	Decider  string `mapstructure:"decider"`
	Children []any  `mapstructure:"children"`
}

type padNode struct {
	Common `mapstructure:",squash"`
	Left   int `mapstructure:"left"`
	Right  int `mapstructure:"right"`
	Top    int `mapstructure:"top"`
	Bottom int `mapstructure:"bottom"`
	// Width and Height grow the child to a total size, adding space on the
	// edges named by Horizontal (default right) and Vertical (default bottom).
	Width      int    `mapstructure:"width"`
	Height     int    `mapstructure:"height"`
	Horizontal string `mapstructure:"horizontal"`
	Vertical   string `mapstructure:"vertical"`
	Child      any    `mapstructure:"child"`
}

type markdownNode struct {
	Common `mapstructure:",squash"`
	Source string `mapstructure:"source"`
	Width  int    `mapstructure:"width"`
}

type refNode struct {
	Common `mapstructure:",squash"`
	Ref    string `mapstructure:"ref"`
}

// Kinds lists the node kinds a document may use.
var Kinds = []string{"text", "fill", "line", "divider", "frame", "join", "overlay", "pad", "markdown", "ref"}
