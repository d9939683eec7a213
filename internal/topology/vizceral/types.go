// Package vizceral holds the wire schema read by the Vizceral traffic
// dashboard and the translation from topology nodes into it.
//
// Optional fields are pointers without omitempty: the dashboard expects them
// to be present and null rather than missing.
package vizceral

type Renderer string

const (
	RendererGlobal       Renderer = "global"
	RendererRegion       Renderer = "region"
	RendererFocusedChild Renderer = "focusedChild"
)

type Severity int

const (
	SeverityInfo    Severity = 0
	SeverityWarning Severity = 1
	SeverityError   Severity = 2
)

type Node struct {
	Renderer    Renderer     `json:"renderer" yaml:"renderer"`
	Name        string       `json:"name" yaml:"name"`
	DisplayName *string      `json:"displayName" yaml:"displayName"`
	EntryNode   *string      `json:"entryNode" yaml:"entryNode"`
	Updated     *int64       `json:"updated" yaml:"updated"`
	MaxVolume   *int64       `json:"maxVolume" yaml:"maxVolume"`
	Class       *string      `json:"class" yaml:"class"`
	Nodes       []Node       `json:"nodes" yaml:"nodes"`
	Connections []Connection `json:"connections" yaml:"connections"`
	Notices     []Notice     `json:"notices" yaml:"notices"`
}

type Connection struct {
	Source  string   `json:"source" yaml:"source"`
	Target  string   `json:"target" yaml:"target"`
	Metrics *Metrics `json:"metrics" yaml:"metrics"`
	Notices []Notice `json:"notices" yaml:"notices"`
	Class   *string  `json:"class" yaml:"class"`
}

type Metrics struct {
	Normal  float64 `json:"normal" yaml:"normal"`
	Warning float64 `json:"warning" yaml:"warning"`
	Danger  float64 `json:"danger" yaml:"danger"`
}

type Notice struct {
	Title    string    `json:"title" yaml:"title"`
	Link     *string   `json:"link" yaml:"link"`
	Severity *Severity `json:"severity" yaml:"severity"`
}
