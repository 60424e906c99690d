// Package events provides interaction event types
package events

// Type discriminates the interaction signals a client can report.
type Type string

const (
	TypeClick      Type = "click"
	TypePageVisit  Type = "pageVisit"
	TypeScroll     Type = "scroll"
	TypeVisibility Type = "visibility"
)

// Event is one raw interaction signal forwarded by the browser.
type Event struct {
	Type          Type   `json:"type"`
	Category      string `json:"category,omitempty"`
	Path          string `json:"path,omitempty"`
	ScrollPercent int    `json:"scrollPercent,omitempty"`
	Visible       bool   `json:"visible,omitempty"`
}
